package extraheaders_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crotwell/mseed3/errs"
	"github.com/crotwell/mseed3/extraheaders"
)

func TestEmptyIsEmpty(t *testing.T) {
	assert.True(t, extraheaders.Empty().IsEmpty())
	assert.True(t, extraheaders.FromRaw("").IsEmpty())
	assert.True(t, extraheaders.FromRaw("{}").IsEmpty())
	assert.True(t, extraheaders.FromMap(map[string]any{}).IsEmpty())
}

func TestSerializeEmptyYieldsZeroBytes(t *testing.T) {
	text, err := extraheaders.Empty().Serialize()
	require.NoError(t, err)
	assert.Empty(t, text)

	text, err = extraheaders.FromRaw("{}").Serialize()
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestParseRawObject(t *testing.T) {
	eh := extraheaders.FromRaw(`{"FDSN":{"Time":{"Quality":100}}}`)

	m, err := eh.Map()
	require.NoError(t, err)
	assert.Contains(t, m, "FDSN")
}

func TestParseRejectsNonObjectTopLevel(t *testing.T) {
	eh := extraheaders.FromRaw(`[1,2,3]`)

	_, err := eh.Parse()
	assert.ErrorIs(t, err, errs.ErrExtraHeaderNotObject)
}

func TestParseRejectsInvalidJSON(t *testing.T) {
	eh := extraheaders.FromRaw(`not json`)

	_, err := eh.Parse()
	assert.ErrorIs(t, err, errs.ErrJSON)
}

func TestValidateRequiresFDSNKeyToBeObject(t *testing.T) {
	bad := extraheaders.FromRaw(`{"FDSN":"not an object"}`)
	assert.ErrorIs(t, bad.Validate(), errs.ErrExtraHeaderValidation)

	good := extraheaders.FromRaw(`{"FDSN":{"Time":{}}}`)
	assert.NoError(t, good.Validate())
}

func TestValidateIgnoresAbsentFDSNKey(t *testing.T) {
	eh := extraheaders.FromRaw(`{"other":1}`)
	assert.NoError(t, eh.Validate())
}

func TestSerializeFromMap(t *testing.T) {
	eh := extraheaders.FromMap(map[string]any{"a": 1.0})

	text, err := eh.Serialize()
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, text)
}
