package encoding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crotwell/mseed3/encoding"
)

func TestFromByteRoundTrip(t *testing.T) {
	for b := 0; b < 256; b++ {
		got := encoding.FromByte(byte(b))
		require.Equal(t, byte(b), got.Byte(), "round trip for byte %d", b)
	}
}

func TestNamedCodes(t *testing.T) {
	cases := []struct {
		enc  encoding.DataEncoding
		code byte
	}{
		{encoding.Text, 0},
		{encoding.Int16, 1},
		{encoding.Int32, 3},
		{encoding.Float32, 4},
		{encoding.Float64, 5},
		{encoding.Steim1, 10},
		{encoding.Steim2, 11},
		{encoding.Steim3, 19},
		{encoding.Opaque, 100},
	}

	for _, c := range cases {
		assert.Equal(t, c.code, c.enc.Byte())
		assert.False(t, c.enc.IsUnknown())
		assert.Equal(t, c.enc, encoding.FromByte(c.code))
	}
}

func TestUnknownCode(t *testing.T) {
	got := encoding.FromByte(200)
	assert.True(t, got.IsUnknown())
	assert.Equal(t, byte(200), got.Byte())
	assert.Contains(t, got.String(), "200")
}
