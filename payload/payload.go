// Package payload implements EncodedPayload, the tagged union of the nine
// on-disk payload representations a miniSEED3 record can carry.
package payload

import (
	"encoding/binary"
	"fmt"

	"github.com/crotwell/mseed3/encoding"
)

// le is the little-endian byte order used by every typed-primitive variant.
// Steim1/Steim2/Steim3 frames are big-endian internally but carried here as
// opaque bytes, so no byte-order conversion happens at this layer for them.
var le = binary.LittleEndian

// kind tags which of the nine variants a Payload holds.
type kind uint8

const (
	kindRaw kind = iota
	kindInt16
	kindInt32
	kindFloat32
	kindFloat64
	kindSteim1
	kindSteim2
	kindSteim3
	kindOpaque
)

// Payload is a tagged union over the nine on-the-wire payload variants a
// miniSEED3 record can carry. Exactly one of the typed slices or byte
// slices is populated, selected by the constructor used to build it.
type Payload struct {
	k kind

	raw    []byte
	i16    []int16
	i32    []int32
	f32    []float32
	f64    []float64
	steim1 []byte
	steim2 []byte
	steim3 []byte
	opaque []byte
}

// Raw wraps arbitrary passthrough bytes, encoding.Text's natural payload.
func Raw(b []byte) Payload { return Payload{k: kindRaw, raw: b} }

// Int16 wraps a little-endian 16-bit integer sample array.
func Int16(v []int16) Payload { return Payload{k: kindInt16, i16: v} }

// Int32 wraps a little-endian 32-bit integer sample array.
func Int32(v []int32) Payload { return Payload{k: kindInt32, i32: v} }

// Float32 wraps a little-endian IEEE-754 32-bit sample array.
func Float32(v []float32) Payload { return Payload{k: kindFloat32, f32: v} }

// Float64 wraps a little-endian IEEE-754 64-bit sample array.
func Float64(v []float64) Payload { return Payload{k: kindFloat64, f64: v} }

// Steim1 wraps pre-encoded Steim-1 compressed frames, carried as opaque
// big-endian bytes (see package steim1 for the codec).
func Steim1(b []byte) Payload { return Payload{k: kindSteim1, steim1: b} }

// Steim2 wraps pre-encoded Steim-2 compressed frames.
func Steim2(b []byte) Payload { return Payload{k: kindSteim2, steim2: b} }

// Steim3 wraps pre-encoded Steim-3 compressed frames.
func Steim3(b []byte) Payload { return Payload{k: kindSteim3, steim3: b} }

// Opaque wraps special-use data not intended for archiving.
func Opaque(b []byte) Payload { return Payload{k: kindOpaque, opaque: b} }

// HasFixedEncoding reports whether this payload variant implies a specific
// DataEncoding on the wire. Every variant except Raw does; a Raw payload is
// opaque passthrough bytes and carries no opinion about which code the
// header should declare (Text, Unknown(b), or anything else is up to the
// caller/header).
func (p Payload) HasFixedEncoding() bool {
	return p.k != kindRaw
}

// Encoding returns the DataEncoding this payload variant corresponds to.
// For a Raw payload this is only a default (encoding.Text); callers that
// need to preserve a specific header-declared code for Raw bytes should
// check HasFixedEncoding first.
func (p Payload) Encoding() encoding.DataEncoding {
	switch p.k {
	case kindInt16:
		return encoding.Int16
	case kindInt32:
		return encoding.Int32
	case kindFloat32:
		return encoding.Float32
	case kindFloat64:
		return encoding.Float64
	case kindSteim1:
		return encoding.Steim1
	case kindSteim2:
		return encoding.Steim2
	case kindSteim3:
		return encoding.Steim3
	case kindOpaque:
		return encoding.Opaque
	default:
		return encoding.Text
	}
}

// ByteLen returns the exact on-the-wire byte length of this payload.
func (p Payload) ByteLen() uint32 {
	switch p.k {
	case kindRaw:
		return uint32(len(p.raw))
	case kindInt16:
		return 2 * uint32(len(p.i16))
	case kindInt32:
		return 4 * uint32(len(p.i32))
	case kindFloat32:
		return 4 * uint32(len(p.f32))
	case kindFloat64:
		return 8 * uint32(len(p.f64))
	case kindSteim1:
		return uint32(len(p.steim1))
	case kindSteim2:
		return uint32(len(p.steim2))
	case kindSteim3:
		return uint32(len(p.steim3))
	case kindOpaque:
		return uint32(len(p.opaque))
	default:
		return 0
	}
}

// WriteTo appends this payload's on-the-wire bytes to dst and returns the
// grown slice. Typed-primitive variants are encoded little-endian; the
// byte-slice variants (Raw, Steim1/2/3, Opaque) pass through unchanged.
func (p Payload) WriteTo(dst []byte) []byte {
	switch p.k {
	case kindRaw:
		return append(dst, p.raw...)
	case kindInt16:
		for _, v := range p.i16 {
			var b [2]byte
			le.PutUint16(b[:], uint16(v)) //nolint:gosec // two's-complement reinterpretation, not a range check
			dst = append(dst, b[:]...)
		}
		return dst
	case kindInt32:
		for _, v := range p.i32 {
			var b [4]byte
			le.PutUint32(b[:], uint32(v)) //nolint:gosec // two's-complement reinterpretation, not a range check
			dst = append(dst, b[:]...)
		}
		return dst
	case kindFloat32:
		for _, v := range p.f32 {
			var b [4]byte
			le.PutUint32(b[:], float32bits(v))
			dst = append(dst, b[:]...)
		}
		return dst
	case kindFloat64:
		for _, v := range p.f64 {
			var b [8]byte
			le.PutUint64(b[:], float64bits(v))
			dst = append(dst, b[:]...)
		}
		return dst
	case kindSteim1:
		return append(dst, p.steim1...)
	case kindSteim2:
		return append(dst, p.steim2...)
	case kindSteim3:
		return append(dst, p.steim3...)
	case kindOpaque:
		return append(dst, p.opaque...)
	default:
		return dst
	}
}

// ReconcileNumSamples returns the authoritative sample count for this
// payload: for the four typed-primitive variants it is the array length,
// since those slices are the ground truth; for the byte-carrying variants
// (Raw, Steim1/2/3, Opaque) the header's declared count is returned
// unchanged, since those encodings don't self-describe a sample count at
// this layer.
func (p Payload) ReconcileNumSamples(headerNumSamples uint32) uint32 {
	switch p.k {
	case kindInt16:
		return uint32(len(p.i16)) //nolint:gosec // sample counts fit in uint32
	case kindInt32:
		return uint32(len(p.i32)) //nolint:gosec
	case kindFloat32:
		return uint32(len(p.f32)) //nolint:gosec
	case kindFloat64:
		return uint32(len(p.f64)) //nolint:gosec
	default:
		return headerNumSamples
	}
}

// Int16Samples returns the wrapped array and true if this is an Int16 payload.
func (p Payload) Int16Samples() ([]int16, bool) { return p.i16, p.k == kindInt16 }

// Int32Samples returns the wrapped array and true if this is an Int32 payload.
func (p Payload) Int32Samples() ([]int32, bool) { return p.i32, p.k == kindInt32 }

// Float32Samples returns the wrapped array and true if this is a Float32 payload.
func (p Payload) Float32Samples() ([]float32, bool) { return p.f32, p.k == kindFloat32 }

// Float64Samples returns the wrapped array and true if this is a Float64 payload.
func (p Payload) Float64Samples() ([]float64, bool) { return p.f64, p.k == kindFloat64 }

// RawBytes returns the wrapped bytes and true if this is a Raw payload.
func (p Payload) RawBytes() ([]byte, bool) { return p.raw, p.k == kindRaw }

// Steim1Bytes returns the wrapped frames and true if this is a Steim1 payload.
func (p Payload) Steim1Bytes() ([]byte, bool) { return p.steim1, p.k == kindSteim1 }

// Steim2Bytes returns the wrapped frames and true if this is a Steim2 payload.
func (p Payload) Steim2Bytes() ([]byte, bool) { return p.steim2, p.k == kindSteim2 }

// Steim3Bytes returns the wrapped frames and true if this is a Steim3 payload.
func (p Payload) Steim3Bytes() ([]byte, bool) { return p.steim3, p.k == kindSteim3 }

// OpaqueBytes returns the wrapped bytes and true if this is an Opaque payload.
func (p Payload) OpaqueBytes() ([]byte, bool) { return p.opaque, p.k == kindOpaque }

// FromBytes builds a Payload from raw on-the-wire bytes according to enc,
// decoding the little-endian typed-primitive variants and passing the rest
// through as opaque bytes keyed by the encoding's named variant.
func FromBytes(enc encoding.DataEncoding, b []byte) Payload {
	switch enc {
	case encoding.Int16:
		out := make([]int16, len(b)/2)
		for i := range out {
			out[i] = int16(le.Uint16(b[i*2 : i*2+2])) //nolint:gosec // two's-complement reinterpretation
		}
		return Int16(out)
	case encoding.Int32:
		out := make([]int32, len(b)/4)
		for i := range out {
			out[i] = int32(le.Uint32(b[i*4 : i*4+4])) //nolint:gosec
		}
		return Int32(out)
	case encoding.Float32:
		out := make([]float32, len(b)/4)
		for i := range out {
			out[i] = float32frombits(le.Uint32(b[i*4 : i*4+4]))
		}
		return Float32(out)
	case encoding.Float64:
		out := make([]float64, len(b)/8)
		for i := range out {
			out[i] = float64frombits(le.Uint64(b[i*8 : i*8+8]))
		}
		return Float64(out)
	case encoding.Steim1:
		return Steim1(b)
	case encoding.Steim2:
		return Steim2(b)
	case encoding.Steim3:
		return Steim3(b)
	case encoding.Opaque:
		return Opaque(b)
	default:
		return Raw(b)
	}
}

// String renders a short human-readable diagnostic summary, not part of the
// wire format.
func (p Payload) String() string {
	switch p.k {
	case kindRaw:
		return fmt.Sprintf("Raw bytes, %d bytes", len(p.raw))
	case kindInt16:
		return fmt.Sprintf("Int16, %d samples", len(p.i16))
	case kindInt32:
		return fmt.Sprintf("Int32, %d samples", len(p.i32))
	case kindFloat32:
		return fmt.Sprintf("Float32, %d samples", len(p.f32))
	case kindFloat64:
		return fmt.Sprintf("Float64, %d samples", len(p.f64))
	case kindSteim1:
		return fmt.Sprintf("Steim1, %d bytes", len(p.steim1))
	case kindSteim2:
		return fmt.Sprintf("Steim2, %d bytes", len(p.steim2))
	case kindSteim3:
		return fmt.Sprintf("Steim3, %d bytes", len(p.steim3))
	case kindOpaque:
		return fmt.Sprintf("Opaque, %d bytes", len(p.opaque))
	default:
		return "unknown payload"
	}
}
