// Package errs collects the sentinel errors returned by the mseed3 codec
// packages (header, sourceid, extraheaders, steim1, record).
//
// Callers match these with errors.Is, the same way the rest of this module's
// tests do:
//
//	_, err := header.Parse(buf)
//	if errors.Is(err, errs.ErrBadRecordIndicator) {
//	    // not a miniSEED3 record
//	}
//
// Errors that carry caller-useful detail (an offset, a byte count, the raw
// text that failed to parse) wrap the sentinel with fmt.Errorf("%w: ...", ...)
// so errors.Is still matches while the detail remains in the message.
package errs

import "errors"

var (
	// ErrIO wraps an underlying reader/writer failure.
	ErrIO = errors.New("i/o error")

	// ErrInsufficientBytes is returned when fewer than 40 bytes are
	// available to parse a fixed header.
	ErrInsufficientBytes = errors.New("insufficient bytes for fixed header")

	// ErrBadRecordIndicator is returned when bytes 0..2 of a header are not 'M','S'.
	ErrBadRecordIndicator = errors.New("bad record indicator")

	// ErrUnknownFormatVersion is returned when the format version byte is not 3.
	ErrUnknownFormatVersion = errors.New("unknown format version")

	// ErrIdentifierParse names a string that does not match the FDSN source
	// identifier grammar. No function in this module returns it:
	// sourceid.Parse falls back to a Raw identifier instead.
	ErrIdentifierParse = errors.New("source identifier parse error")

	// ErrNotUTF8 is returned when identifier bytes are not valid UTF-8.
	// Extra-header bytes are not checked for UTF-8 validity.
	ErrNotUTF8 = errors.New("bytes are not valid utf-8")

	// ErrJSON is returned when the extra-headers blob is not parseable JSON.
	ErrJSON = errors.New("invalid json")

	// ErrExtraHeaderNotObject is returned when the extra-headers JSON parses
	// but its top-level value is not an object.
	ErrExtraHeaderNotObject = errors.New("extra headers top level is not an object")

	// ErrExtraHeaderValidation is returned when the reserved FDSN sub-object
	// is present but its value is not itself an object.
	ErrExtraHeaderValidation = errors.New("extra headers FDSN key is not an object")

	// ErrDataLength is returned when the header-declared data length is
	// inconsistent with the encoding and sample count.
	ErrDataLength = errors.New("data length mismatch")

	// ErrCrcInvalid is returned when the computed CRC32C does not match the
	// header's stored CRC.
	ErrCrcInvalid = errors.New("crc32c mismatch")

	// ErrUnknownEncoding names a DataEncoding the codec does not know how to
	// interpret. No function in this module returns it: payload.FromBytes
	// wraps the bytes of an unknown encoding as a Raw payload instead.
	ErrUnknownEncoding = errors.New("unknown data encoding")

	// ErrCompression is returned when a Steim encode/decode invariant is violated.
	ErrCompression = errors.New("steim compression error")

	// ErrDateParse names an ISO-8601 start-time string that fails to parse.
	// No function in this module parses such strings or returns it.
	ErrDateParse = errors.New("date parse error")
)
