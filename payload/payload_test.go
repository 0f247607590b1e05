package payload_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/crotwell/mseed3/encoding"
	"github.com/crotwell/mseed3/payload"
)

func TestInt16ByteLenAndWriteTo(t *testing.T) {
	p := payload.Int16([]int16{1, -1, 32767, -32768})
	assert.Equal(t, uint32(8), p.ByteLen())
	assert.Equal(t, encoding.Int16, p.Encoding())

	b := p.WriteTo(nil)
	assert.Len(t, b, 8)

	back := payload.FromBytes(encoding.Int16, b)
	v, ok := back.Int16Samples()
	assert.True(t, ok)
	assert.Equal(t, []int16{1, -1, 32767, -32768}, v)
}

func TestInt32RoundTrip(t *testing.T) {
	samples := []int32{0, 1, -1, 5, 3, -5, 10, -1, 1, 0}
	p := payload.Int32(samples)
	assert.Equal(t, uint32(40), p.ByteLen())

	b := p.WriteTo(nil)
	back := payload.FromBytes(encoding.Int32, b)
	v, ok := back.Int32Samples()
	assert.True(t, ok)
	assert.Equal(t, samples, v)
}

func TestFloat32RoundTrip(t *testing.T) {
	samples := []float32{1.5, -2.25, 0}
	p := payload.Float32(samples)

	b := p.WriteTo(nil)
	back := payload.FromBytes(encoding.Float32, b)
	v, ok := back.Float32Samples()
	assert.True(t, ok)
	assert.Equal(t, samples, v)
}

func TestFloat64RoundTrip(t *testing.T) {
	samples := []float64{1.5, -2.25, 0}
	p := payload.Float64(samples)

	b := p.WriteTo(nil)
	back := payload.FromBytes(encoding.Float64, b)
	v, ok := back.Float64Samples()
	assert.True(t, ok)
	assert.Equal(t, samples, v)
}

func TestRawPassesThroughUnchanged(t *testing.T) {
	raw := []byte{1, 2, 3, 4, 5}
	p := payload.Raw(raw)
	assert.Equal(t, uint32(5), p.ByteLen())

	b := p.WriteTo(nil)
	assert.Equal(t, raw, b)
}

func TestSteimBytesPassThrough(t *testing.T) {
	frames := make([]byte, 64)
	p := payload.Steim1(frames)
	assert.Equal(t, encoding.Steim1, p.Encoding())
	assert.Equal(t, uint32(64), p.ByteLen())
	assert.Equal(t, frames, p.WriteTo(nil))
}

func TestReconcileNumSamples(t *testing.T) {
	typed := payload.Int32([]int32{1, 2, 3})
	assert.Equal(t, uint32(3), typed.ReconcileNumSamples(999))

	opaque := payload.Opaque([]byte{1, 2, 3})
	assert.Equal(t, uint32(999), opaque.ReconcileNumSamples(999))
}

func TestUnknownEncodingFallsBackToRaw(t *testing.T) {
	b := []byte{9, 9, 9}
	p := payload.FromBytes(encoding.FromByte(77), b)

	got, ok := p.RawBytes()
	assert.True(t, ok)
	assert.Equal(t, b, got)
}
