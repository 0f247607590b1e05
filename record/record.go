// Package record implements the miniSEED3 record codec: composing a Header,
// a source Identifier, ExtraHeaders, and a Payload into a CRC32C-checked
// binary record, and parsing one back.
package record

import (
	"fmt"
	"hash/crc32"
	"io"

	"github.com/crotwell/mseed3/encoding"
	"github.com/crotwell/mseed3/errs"
	"github.com/crotwell/mseed3/extraheaders"
	"github.com/crotwell/mseed3/header"
	"github.com/crotwell/mseed3/internal/pool"
	"github.com/crotwell/mseed3/payload"
	"github.com/crotwell/mseed3/sourceid"
)

// castagnoli is the CRC32C (Castagnoli) table used for every record
// checksum. There is no third-party CRC32C implementation in this module's
// dependency stack, so this is the one component built directly on the
// standard library; see DESIGN.md.
var castagnoli = crc32.MakeTable(crc32.Castagnoli)

// Record is the in-memory form of one miniSEED3 record: its fixed header,
// source identifier, extra-headers blob, and payload.
type Record struct {
	Header       header.Header
	Identifier   sourceid.Identifier
	ExtraHeaders extraheaders.ExtraHeaders
	Payload      payload.Payload
}

// New builds a Record, reconciling the header's length and sample-count
// fields from the identifier, extra headers, and payload given. This is
// deliberately cheap: it does not render the extra-headers JSON just to
// measure it, so ExtraHeadersLength is left as given in h and is only made
// authoritative by Write.
func New(h header.Header, id sourceid.Identifier, extras extraheaders.ExtraHeaders, pl payload.Payload) Record {
	h.IdentifierLength = uint8(id.ByteLen()) //nolint:gosec // identifier length fits in a byte per the grammar
	h.DataLength = pl.ByteLen()
	h.NumSamples = pl.ReconcileNumSamples(h.NumSamples)

	if pl.HasFixedEncoding() {
		h.Encoding = pl.Encoding()
	}

	return Record{Header: h, Identifier: id, ExtraHeaders: extras, Payload: pl}
}

// GetRecordSize returns the total on-the-wire byte length of this record's
// header, as currently reconciled.
func (r Record) GetRecordSize() uint32 {
	return r.Header.GetRecordSize()
}

// Read parses a single record from r, verifying its CRC32C and the
// consistency of its declared data length against its encoding and sample
// count.
//
// The digest is computed over the header (with its CRC field zeroed), then
// the identifier bytes, then the extra-headers bytes, then the payload
// bytes, in that exact on-disk order — the CRC is order-dependent and must
// see each section's bytes unmodified and in full.
func Read(r io.Reader) (Record, error) {
	hdrBuf := make([]byte, header.Size)
	if _, err := io.ReadFull(r, hdrBuf); err != nil {
		return Record{}, fmt.Errorf("%w: %w", errs.ErrIO, err)
	}

	h, err := header.Parse(hdrBuf)
	if err != nil {
		return Record{}, err
	}

	digestBuf := make([]byte, header.Size)
	copy(digestBuf, hdrBuf)
	digestBuf[header.CRCOffset] = 0
	digestBuf[header.CRCOffset+1] = 0
	digestBuf[header.CRCOffset+2] = 0
	digestBuf[header.CRCOffset+3] = 0

	digest := crc32.New(castagnoli)
	digest.Write(digestBuf) //nolint:errcheck // hash.Hash.Write never returns an error

	idBuf := make([]byte, h.IdentifierLength)
	if _, err := io.ReadFull(r, idBuf); err != nil {
		return Record{}, fmt.Errorf("%w: %w", errs.ErrIO, err)
	}
	digest.Write(idBuf) //nolint:errcheck

	id, err := sourceid.ParseBytes(idBuf)
	if err != nil {
		return Record{}, err
	}

	ehBuf := make([]byte, h.ExtraHeadersLength)
	if _, err := io.ReadFull(r, ehBuf); err != nil {
		return Record{}, fmt.Errorf("%w: %w", errs.ErrIO, err)
	}
	digest.Write(ehBuf) //nolint:errcheck

	var extras extraheaders.ExtraHeaders
	if len(ehBuf) > 2 {
		extras = extraheaders.FromRaw(string(ehBuf))
	} else {
		extras = extraheaders.Empty()
	}

	expectedDataLength := expectedDataLength(h.Encoding, h.NumSamples, h.DataLength)

	if h.DataLength != expectedDataLength {
		return Record{}, fmt.Errorf("%w: expected %d for %d samples of %s, got %d",
			errs.ErrDataLength, expectedDataLength, h.NumSamples, h.Encoding, h.DataLength)
	}

	dataBuf := make([]byte, h.DataLength)
	if _, err := io.ReadFull(r, dataBuf); err != nil {
		return Record{}, fmt.Errorf("%w: %w", errs.ErrIO, err)
	}
	digest.Write(dataBuf) //nolint:errcheck

	computed := digest.Sum32()
	if computed != h.CRC {
		return Record{}, fmt.Errorf("%w: computed 0x%X, header 0x%X", errs.ErrCrcInvalid, computed, h.CRC)
	}

	pl := payload.Raw(dataBuf)
	h.NumSamples = pl.ReconcileNumSamples(h.NumSamples)

	return Record{Header: h, Identifier: id, ExtraHeaders: extras, Payload: pl}, nil
}

// expectedDataLength computes the data length the header must declare for
// the given encoding and sample count; encodings with no fixed element size
// (Raw/Steim*/Opaque/Unknown) are trusted as-is from the header.
func expectedDataLength(enc encoding.DataEncoding, numSamples, actual uint32) uint32 {
	switch enc {
	case encoding.Int16:
		return 2 * numSamples
	case encoding.Int32, encoding.Float32:
		return 4 * numSamples
	case encoding.Float64:
		return 8 * numSamples
	default:
		return actual
	}
}

// Write serializes rec to w, reconciling its identifier/extra-header/data
// lengths and sample count, computing its CRC32C over the fully serialized
// buffer with the CRC field zeroed, and patching the CRC into the output.
// It returns the total bytes written and the CRC stamped into the record.
//
// The record is assembled in a pooled scratch buffer that grows to hold the
// final record, then written to w in three pieces (the bytes before the CRC
// field, the CRC itself, and the bytes after) without ever exposing a
// record with a stale CRC to the writer.
func Write(w io.Writer, rec Record) (uint32, uint32, error) {
	idBytes := rec.Identifier.Bytes()
	dataLength := rec.Payload.ByteLen()
	numSamples := rec.Payload.ReconcileNumSamples(rec.Header.NumSamples)

	ehText, err := rec.ExtraHeaders.Serialize()
	if err != nil {
		return 0, 0, err
	}

	var extraHeadersLength uint16
	if len(ehText) > 2 {
		extraHeadersLength = uint16(len(ehText)) //nolint:gosec // JSON extra-header blobs fit in a uint16
	}

	h := rec.Header
	h.IdentifierLength = uint8(len(idBytes)) //nolint:gosec // identifier length fits in a byte per the grammar
	h.ExtraHeadersLength = extraHeadersLength
	h.DataLength = dataLength
	h.NumSamples = numSamples

	if rec.Payload.HasFixedEncoding() {
		h.Encoding = rec.Payload.Encoding()
	}

	h.CRC = 0

	buf := pool.GetRecordBuffer()
	defer pool.PutRecordBuffer(buf)

	buf.MustWrite(h.Emit(nil))
	buf.MustWrite(idBytes)

	if extraHeadersLength > 0 {
		buf.MustWrite([]byte(ehText))
	}

	buf.B = rec.Payload.WriteTo(buf.B)

	crc := crc32.Checksum(buf.Bytes(), castagnoli)

	if _, err := w.Write(buf.Bytes()[:header.CRCOffset]); err != nil {
		return 0, 0, fmt.Errorf("%w: %w", errs.ErrIO, err)
	}

	var crcBytes [4]byte
	putUint32LE(crcBytes[:], crc)

	if _, err := w.Write(crcBytes[:]); err != nil {
		return 0, 0, fmt.Errorf("%w: %w", errs.ErrIO, err)
	}

	if _, err := w.Write(buf.Bytes()[header.CRCOffset+4:]); err != nil {
		return 0, 0, fmt.Errorf("%w: %w", errs.ErrIO, err)
	}

	return uint32(buf.Len()), crc, nil //nolint:gosec // record length fits in a uint32
}

func putUint32LE(dst []byte, v uint32) {
	dst[0] = byte(v)
	dst[1] = byte(v >> 8)
	dst[2] = byte(v >> 16)
	dst[3] = byte(v >> 24)
}

// String renders a short human-readable diagnostic summary, not part of the
// wire format.
func (r Record) String() string {
	return fmt.Sprintf("  %s, %s", r.Identifier, r.Header)
}
