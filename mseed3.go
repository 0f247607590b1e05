// Package mseed3 reads, writes, and transcodes miniSEED version 3 records —
// the standard archival record format for time-series seismological data.
//
// A miniSEED3 record is a self-contained, binary, variable-length unit
// carrying one run of contiguous samples from one channel, a source
// identifier, a JSON side-car of extra headers, a CRC32C checksum over the
// whole record, and a timeseries payload in one of nine encodings (plain
// integers, plain floats, Steim-1/2/3 differencing compression, text,
// opaque).
//
// # Basic usage
//
// Reading records from a stream until EOF:
//
//	r := bufio.NewReader(f)
//	for {
//	    rec, err := mseed3.ReadRecord(r)
//	    if errors.Is(err, io.EOF) {
//	        break
//	    }
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(rec)
//	}
//
// Building and writing a record from an Int32 sample array:
//
//	start := time.Date(2014, time.November, 28, 12, 0, 9, 0, time.UTC)
//	rec := mseed3.NewRecord(start, 10.0, sourceid.Parse("FDSN:CO_BIRD_00_H_H_Z"),
//	    extraheaders.Empty(), payload.Int32([]int32{0, 1, -1, 5, 3, -5, 10, -1, 1, 0}))
//	n, crc, err := mseed3.WriteRecord(w, rec)
//
// # Package structure
//
// This package is a thin convenience wrapper over record, header, sourceid,
// extraheaders, payload, and encoding; Steim-1 compression is not wrapped
// here and lives in package steim1. For fine-grained control over any one
// of those concerns, use the relevant package directly.
package mseed3

import (
	"io"
	"time"

	"github.com/crotwell/mseed3/encoding"
	"github.com/crotwell/mseed3/extraheaders"
	"github.com/crotwell/mseed3/header"
	"github.com/crotwell/mseed3/payload"
	"github.com/crotwell/mseed3/record"
	"github.com/crotwell/mseed3/sourceid"
)

// Record is the in-memory form of one miniSEED3 record.
type Record = record.Record

// ReadRecord parses a single record from r, verifying its CRC32C.
func ReadRecord(r io.Reader) (Record, error) {
	return record.Read(r)
}

// WriteRecord serializes rec to w, reconciling its length fields and
// stamping a freshly computed CRC32C. It returns the total bytes written
// and the CRC stamped into the record.
func WriteRecord(w io.Writer, rec Record) (uint32, uint32, error) {
	return record.Write(w, rec)
}

// NewRecord builds a Record from a UTC start time, a sample rate (or,
// negated, a sample period), a source identifier, an extra-headers blob,
// and a payload. The header's length fields and sample count are
// reconciled against the identifier and payload given.
func NewRecord(start time.Time, sampleRatePeriod float64, id sourceid.Identifier,
	extras extraheaders.ExtraHeaders, pl payload.Payload,
) Record {
	h := header.New(start, pl.Encoding(), sampleRatePeriod, 0)
	return record.New(h, id, extras, pl)
}

// FakeChannel returns a placeholder FDSN identifier, useful for quick
// records built from raw sample data with no real channel to name; callers
// producing records for archival should always supply a real identifier.
func FakeChannel() sourceid.Identifier {
	return sourceid.Fdsn("XX", "FAKE", "", "L", "H", "Z")
}

// DataEncoding re-exports encoding.DataEncoding for callers that only need
// to name an encoding, not build a full payload.
type DataEncoding = encoding.DataEncoding
