// Package encoding defines DataEncoding, the total mapping between the
// miniSEED3 header's encoding code byte and the nine named payload variants.
package encoding

import "fmt"

// DataEncoding identifies how a record's payload bytes are laid out on disk.
//
//	0   Text, UTF-8 allowed, ASCII recommended for portability, no structure defined
//	1   16-bit integer (two's complement), little-endian
//	3   32-bit integer (two's complement), little-endian
//	4   32-bit float (IEEE 754), little-endian
//	5   64-bit float (IEEE 754), little-endian
//	10  Steim-1 integer compression, big-endian
//	11  Steim-2 integer compression, big-endian
//	19  Steim-3 integer compression, big-endian (rare in archives)
//	100 Opaque data, special-use only, not intended for archiving
//
// Any other byte value parses to Unknown, carrying the raw byte. The mapping
// is total and round-trips for every byte 0..255: DataEncoding(b).Byte() == b.
type DataEncoding uint16

const (
	Text    DataEncoding = 0
	Int16   DataEncoding = 1
	Int32   DataEncoding = 3
	Float32 DataEncoding = 4
	Float64 DataEncoding = 5
	Steim1  DataEncoding = 10
	Steim2  DataEncoding = 11
	Steim3  DataEncoding = 19
	Opaque  DataEncoding = 100

	// unknownBase is added to an Unknown code's raw byte so that FromByte
	// and Byte stay total, inverse functions over the full byte range
	// without colliding with the named codes above (all < 256).
	unknownBase DataEncoding = 0x100
)

// FromByte maps a header encoding code byte to its DataEncoding variant.
// Bytes that don't name one of the nine known variants map to an Unknown
// value that still remembers the original byte via Byte().
func FromByte(b byte) DataEncoding {
	switch DataEncoding(b) {
	case Text, Int16, Int32, Float32, Float64, Steim1, Steim2, Steim3, Opaque:
		return DataEncoding(b)
	default:
		return unknownBase + DataEncoding(b)
	}
}

// Byte returns the on-disk code byte for this encoding, the inverse of FromByte.
func (e DataEncoding) Byte() byte {
	if e >= unknownBase {
		return byte(e - unknownBase)
	}

	return byte(e)
}

// IsUnknown reports whether this value came from a code byte outside the
// nine named encodings.
func (e DataEncoding) IsUnknown() bool {
	return e >= unknownBase
}

// String returns a human-readable name for the encoding, for diagnostics.
func (e DataEncoding) String() string {
	switch e {
	case Text:
		return "Text, UTF-8 allowed, ASCII recommended for portability, no structure defined"
	case Int16:
		return "16-bit integer (two's complement), little-endian"
	case Int32:
		return "32-bit integer (two's complement), little-endian"
	case Float32:
		return "32-bit float (IEEE 754), little-endian"
	case Float64:
		return "64-bit float (IEEE 754), little-endian"
	case Steim1:
		return "Steim-1 integer compression, big-endian"
	case Steim2:
		return "Steim-2 integer compression, big-endian"
	case Steim3:
		return "Steim-3 integer compression, big-endian (rare in archives)"
	case Opaque:
		return "Opaque data, special-use only, not intended for archiving"
	default:
		return fmt.Sprintf("unknown encoding: %d", e.Byte())
	}
}
