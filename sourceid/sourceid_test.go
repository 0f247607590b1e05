package sourceid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crotwell/mseed3/errs"
	"github.com/crotwell/mseed3/sourceid"
)

func TestParseFdsn(t *testing.T) {
	id := sourceid.Parse("FDSN:XX_TEST__L_H_Z")
	require.True(t, id.IsFdsn())

	net, sta, loc, band, src, sub := id.Components()
	assert.Equal(t, "XX", net)
	assert.Equal(t, "TEST", sta)
	assert.Equal(t, "", loc)
	assert.Equal(t, "L", band)
	assert.Equal(t, "H", src)
	assert.Equal(t, "Z", sub)
	assert.Equal(t, "FDSN:XX_TEST__L_H_Z", id.String())
}

func TestStringRoundTripForEveryFdsnParse(t *testing.T) {
	inputs := []string{
		"FDSN:XX_TEST__L_H_Z",
		"FDSN:CO_BIRD_00_H_H_Z",
		"FDSN:NN_SSSSSSSS_LL_BB_SSS_UUU",
	}

	for _, s := range inputs {
		id := sourceid.Parse(s)
		require.True(t, id.IsFdsn(), "expected %q to parse as Fdsn", s)
		assert.Equal(t, s, id.String())
	}
}

func TestParseFallsBackToRaw(t *testing.T) {
	id := sourceid.Parse("not-an-fdsn-identifier")
	assert.False(t, id.IsFdsn())
	assert.Equal(t, "not-an-fdsn-identifier", id.String())
}

func TestParseMalformedFdsnPrefixFallsBackToRaw(t *testing.T) {
	// Starts with the FDSN: prefix but fails the grammar (missing the
	// required SRC field) — still falls back to Raw, never a parse error.
	id := sourceid.Parse("FDSN:XX_TEST___")
	assert.False(t, id.IsFdsn())
}

func TestByteLen(t *testing.T) {
	id := sourceid.Parse("FDSN:XX_TEST__L_H_Z")
	assert.Len(t, id.Bytes(), id.ByteLen())
	assert.Equal(t, 19, id.ByteLen())

	raw := sourceid.Raw("x")
	assert.Equal(t, 1, raw.ByteLen())
}

func TestParseBytesRejectsNonUTF8(t *testing.T) {
	_, err := sourceid.ParseBytes([]byte{0xff, 0xfe, 0xfd})
	assert.ErrorIs(t, err, errs.ErrNotUTF8)
}

func TestParseBytesAcceptsValidUTF8(t *testing.T) {
	id, err := sourceid.ParseBytes([]byte("FDSN:XX_TEST__L_H_Z"))
	require.NoError(t, err)
	assert.True(t, id.IsFdsn())
}

func TestIdentifierLength1And255(t *testing.T) {
	id1 := sourceid.Raw("A")
	assert.Equal(t, 1, id1.ByteLen())

	long := make([]byte, 255)
	for i := range long {
		long[i] = 'A'
	}

	id255 := sourceid.Raw(string(long))
	assert.Equal(t, 255, id255.ByteLen())
}
