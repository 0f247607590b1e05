package mseed3_test

import (
	"bytes"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mseed3 "github.com/crotwell/mseed3"
	"github.com/crotwell/mseed3/encoding"
	"github.com/crotwell/mseed3/extraheaders"
	"github.com/crotwell/mseed3/payload"
	"github.com/crotwell/mseed3/sourceid"
)

// TestInt16SinusoidScenario is the INT16 sinusoid end-to-end scenario:
// 500 samples, sample_rate=1.0, identifier FDSN:XX_TEST__L_H_Z, no extras.
func TestInt16SinusoidScenario(t *testing.T) {
	samples := make([]int16, 500)
	for i := range samples {
		samples[i] = int16(1000 * math.Sin(float64(i)*2*math.Pi/50)) //nolint:gosec
	}

	start := time.Date(2012, time.January, 1, 0, 0, 0, 0, time.UTC)
	id := sourceid.Fdsn("XX", "TEST", "", "L", "H", "Z")
	rec := mseed3.NewRecord(start, 1.0, id, extraheaders.Empty(), payload.Int16(samples))

	// 40-byte fixed header + 19-byte "FDSN:XX_TEST__L_H_Z" identifier + no
	// extras + 1000 bytes of Int16 payload (500 samples x 2 bytes).
	const wantSize = 40 + 19 + 1000

	var buf bytes.Buffer
	n, crc, err := mseed3.WriteRecord(&buf, rec)
	require.NoError(t, err)
	assert.Equal(t, uint32(wantSize), n)
	assert.Equal(t, uint32(1000), rec.Header.DataLength)

	back, err := mseed3.ReadRecord(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, crc, back.Header.CRC)
	assert.Equal(t, uint32(wantSize), back.GetRecordSize())

	raw, ok := back.Payload.RawBytes()
	require.True(t, ok)

	decoded := payload.FromBytes(encoding.Int16, raw)
	v, ok := decoded.Int16Samples()
	require.True(t, ok)
	assert.Equal(t, samples, v)
}

func TestFakeChannelIsFdsn(t *testing.T) {
	assert.True(t, mseed3.FakeChannel().IsFdsn())
}
