// Package header implements the miniSEED3 fixed header: a 40-byte,
// little-endian structure carrying the record's start time, sample rate,
// encoding, CRC, and the byte lengths of the three sections that follow it
// (identifier, extra headers, payload).
package header

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/crotwell/mseed3/encoding"
	"github.com/crotwell/mseed3/errs"
)

// le is the fixed little-endian byte order for every integer and float
// field in the fixed header; miniSEED3 headers have no per-record
// endianness choice to abstract over.
var le = binary.LittleEndian

// Size is the fixed on-disk size of a miniSEED3 header, in bytes.
const Size = 40

// CRCOffset is the byte offset of the 4-byte CRC32C field within the header.
// Callers computing the record checksum must zero these 4 bytes first.
const CRCOffset = 28

// FormatVersion is the only format_version byte this codec accepts.
const FormatVersion = 3

// recordIndicator is the required first two bytes of every header, "MS".
var recordIndicator = [2]byte{'M', 'S'}

// Header is the fixed 40-byte section of a miniSEED3 record.
//
// Header is a plain value type. The three length fields and NumSamples are
// authoritative as read from the wire, but a Header built programmatically
// does not need to set them correctly: record.Write recomputes all four
// from the identifier, extra headers, and payload it is given, rebuilding
// them inside the writer rather than requiring the caller to keep them in
// sync.
type Header struct {
	Flags      uint8
	Nanosecond uint32 // sub-second offset, always in [0, 999_999_999]
	Year       uint16
	DayOfYear  uint16 // 1..366
	Hour       uint8  // 0..23
	Minute     uint8  // 0..59
	Second     uint8  // 0..60, 60 only at a leap second
	Encoding   encoding.DataEncoding

	// SampleRatePeriod is an IEEE double; by convention positive values are
	// a rate in samples/second and negative values are a negated period in
	// seconds/sample.
	SampleRatePeriod float64

	NumSamples         uint32
	CRC                uint32
	PublicationVersion uint8

	IdentifierLength   uint8
	ExtraHeadersLength uint16
	DataLength         uint32
}

// New builds a Header from a UTC instant. Use this for the common case of
// building a record from a time.Time with no leap second involved; for a
// leap-second instant (wall-clock second 60) use NewAt directly.
func New(start time.Time, enc encoding.DataEncoding, sampleRatePeriod float64, numSamples int) Header {
	start = start.UTC()

	return Header{
		Nanosecond:         uint32(start.Nanosecond()), //nolint:gosec // time.Time.Nanosecond() is always in [0, 999999999]
		Year:               uint16(start.Year()),       //nolint:gosec // miniSEED3 years fit in uint16
		DayOfYear:          uint16(start.YearDay()),
		Hour:               uint8(start.Hour()),
		Minute:             uint8(start.Minute()),
		Second:             uint8(start.Second()),
		Encoding:           enc,
		SampleRatePeriod:   sampleRatePeriod,
		NumSamples:         uint32(numSamples), //nolint:gosec // caller-controlled sample counts fit in uint32
		PublicationVersion: 0,
	}
}

// NewAt builds a Header from explicit calendar fields, the way a leap-second
// instant must be constructed: pass second=59 and nanosecond in
// [1_000_000_000, 1_999_999_999) to represent the leap second itself, and
// NewAt normalizes that into second=60 with a sub-second remainder strictly
// less than 1e9. For a non-leap-second instant, pass nanosecond <
// 1_000_000_000 and it passes through unchanged.
func NewAt(year int, dayOfYear int, hour, minute, second int, nanosecond uint64, enc encoding.DataEncoding, sampleRatePeriod float64, numSamples int) Header {
	sec, ns := normalizeLeapSecond(second, nanosecond)

	return Header{
		Nanosecond:         ns,
		Year:               uint16(year), //nolint:gosec // miniSEED3 years fit in uint16
		DayOfYear:          uint16(dayOfYear),
		Hour:               uint8(hour),
		Minute:             uint8(minute),
		Second:             sec,
		Encoding:           enc,
		SampleRatePeriod:   sampleRatePeriod,
		NumSamples:         uint32(numSamples), //nolint:gosec // caller-controlled sample counts fit in uint32
		PublicationVersion: 0,
	}
}

// normalizeLeapSecond folds a nanosecond count >= 1e9 into the second field,
// so that the stored nanosecond is always the sub-second remainder.
func normalizeLeapSecond(second int, nanosecond uint64) (uint8, uint32) {
	for nanosecond >= 1_000_000_000 {
		second++
		nanosecond -= 1_000_000_000
	}

	return uint8(second), uint32(nanosecond) //nolint:gosec // callers pass calendar-range values
}

// Parse reads exactly Size bytes and returns the decoded Header.
//
// Fails with errs.ErrInsufficientBytes if fewer than Size bytes are given,
// errs.ErrBadRecordIndicator if bytes 0..2 aren't "MS", and
// errs.ErrUnknownFormatVersion if byte 2 isn't FormatVersion.
func Parse(buf []byte) (Header, error) {
	if len(buf) < Size {
		return Header{}, fmt.Errorf("%w: have %d, need %d", errs.ErrInsufficientBytes, len(buf), Size)
	}

	if buf[0] != recordIndicator[0] || buf[1] != recordIndicator[1] {
		return Header{}, fmt.Errorf("%w: got %d,%d", errs.ErrBadRecordIndicator, buf[0], buf[1])
	}

	if buf[2] != FormatVersion {
		return Header{}, fmt.Errorf("%w: got %d", errs.ErrUnknownFormatVersion, buf[2])
	}

	h := Header{
		Flags:              buf[3],
		Nanosecond:         le.Uint32(buf[4:8]),
		Year:               le.Uint16(buf[8:10]),
		DayOfYear:          le.Uint16(buf[10:12]),
		Hour:               buf[12],
		Minute:             buf[13],
		Second:             buf[14],
		Encoding:           encoding.FromByte(buf[15]),
		SampleRatePeriod:   math.Float64frombits(le.Uint64(buf[16:24])),
		NumSamples:         le.Uint32(buf[24:28]),
		CRC:                le.Uint32(buf[28:32]),
		PublicationVersion: buf[32],
		IdentifierLength:   buf[33],
		ExtraHeadersLength: le.Uint16(buf[34:36]),
		DataLength:         le.Uint32(buf[36:40]),
	}

	return h, nil
}

// Emit writes exactly Size bytes to the end of dst and returns the grown slice.
func (h Header) Emit(dst []byte) []byte {
	var buf [Size]byte

	buf[0], buf[1] = recordIndicator[0], recordIndicator[1]
	buf[2] = FormatVersion
	buf[3] = h.Flags
	le.PutUint32(buf[4:8], h.Nanosecond)
	le.PutUint16(buf[8:10], h.Year)
	le.PutUint16(buf[10:12], h.DayOfYear)
	buf[12] = h.Hour
	buf[13] = h.Minute
	buf[14] = h.Second
	buf[15] = h.Encoding.Byte()
	le.PutUint64(buf[16:24], math.Float64bits(h.SampleRatePeriod))
	le.PutUint32(buf[24:28], h.NumSamples)
	le.PutUint32(buf[28:32], h.CRC)
	buf[32] = h.PublicationVersion
	buf[33] = h.IdentifierLength
	le.PutUint16(buf[34:36], h.ExtraHeadersLength)
	le.PutUint32(buf[36:40], h.DataLength)

	return append(dst, buf[:]...)
}

// GetRecordSize returns the total byte length of the record this header
// describes: the fixed header plus the three length fields. Like the Rust
// original, this trusts IdentifierLength/ExtraHeadersLength/DataLength as
// they stand on this value, so it is only authoritative for a Header that
// was either just parsed or just reconciled by record.Write.
func (h Header) GetRecordSize() uint32 {
	return uint32(Size) + uint32(h.IdentifierLength) + uint32(h.ExtraHeadersLength) + h.DataLength
}

// StartTimeISO formats the start time as ISO-8601 with nanosecond precision
// and a trailing Z, preserving Second==60 for a leap-second instant exactly
// as stored (time.Time cannot represent that value, so this formats the
// calendar fields directly rather than going through a time.Time).
func (h Header) StartTimeISO() string {
	month, day := monthDayFromOrdinal(int(h.Year), int(h.DayOfYear))

	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d.%09dZ",
		h.Year, month, day, h.Hour, h.Minute, h.Second, h.Nanosecond)
}

// StartTimeUTC returns the start time as a time.Time. For a leap-second
// instant (Second==60) this rolls forward to the following second, since
// time.Time has no native leap-second representation; callers that need the
// leap second preserved verbatim should use StartTimeISO instead.
func (h Header) StartTimeUTC() time.Time {
	second := int(h.Second)
	if second == 60 {
		second = 59
		return time.Date(int(h.Year), time.January, int(h.DayOfYear), int(h.Hour), int(h.Minute), second,
			int(h.Nanosecond), time.UTC).Add(time.Second)
	}

	return time.Date(int(h.Year), time.January, int(h.DayOfYear), int(h.Hour), int(h.Minute), second,
		int(h.Nanosecond), time.UTC)
}

// monthDayFromOrdinal converts a (year, day-of-year) pair into a (month, day)
// pair, relying on time.Date's normalization of an out-of-range day.
func monthDayFromOrdinal(year, dayOfYear int) (time.Month, int) {
	t := time.Date(year, time.January, dayOfYear, 0, 0, 0, 0, time.UTC)
	return t.Month(), t.Day()
}

// CRCHexString formats the CRC as "0x" followed by uppercase hex with no
// leading zero padding, e.g. "0x642B7389".
func (h Header) CRCHexString() string {
	return fmt.Sprintf("0x%X", h.CRC)
}

// String renders a short multi-line diagnostic summary, not part of the wire format.
func (h Header) String() string {
	return fmt.Sprintf(
		"version %d, %d bytes (format: %d)\n"+
			"             start time: %s\n"+
			"      number of samples: %d\n"+
			"       sample rate (Hz): %g\n"+
			"                  flags: [%08b] 8 bits\n"+
			"                    CRC: %s\n"+
			"    extra header length: %d bytes\n"+
			"    data payload length: %d bytes\n"+
			"       payload encoding: %s (val: %d)",
		h.PublicationVersion, h.GetRecordSize(), FormatVersion,
		h.StartTimeISO(),
		h.NumSamples,
		h.SampleRatePeriod,
		h.Flags,
		h.CRCHexString(),
		h.ExtraHeadersLength,
		h.DataLength,
		h.Encoding, h.Encoding.Byte(),
	)
}
