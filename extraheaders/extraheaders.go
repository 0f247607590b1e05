// Package extraheaders implements the miniSEED3 extra-headers JSON side-car:
// an optional JSON object carried after the source identifier and before the
// payload, with a reserved top-level "FDSN" key that, if present, must itself
// be an object.
package extraheaders

import (
	"encoding/json"

	"github.com/crotwell/mseed3/errs"
)

// FDSNKey is the reserved top-level key validated by Validate.
const FDSNKey = "FDSN"

// emptyObject is the canonical on-the-wire text for a logically-empty blob.
const emptyObject = "{}"

// ExtraHeaders carries the extra-headers JSON blob in one of two live
// representations: Raw preserves the exact bytes read from a record for
// round-trip fidelity, Parsed holds a decoded tree for mutation. There is
// no implicit lazy parsing under an immutable facade: callers move between
// the two explicitly via Parse/Serialize.
type ExtraHeaders struct {
	raw    string
	parsed map[string]any
	isRaw  bool
}

// Empty returns the logically-empty extra headers value, serializing to 0
// bytes on write.
func Empty() ExtraHeaders {
	return ExtraHeaders{isRaw: true, raw: ""}
}

// FromRaw wraps pre-encoded JSON text as a Raw value, preserved byte-for-byte
// until Parse is called. A length-0 or "{}" text is treated as logically empty.
func FromRaw(text string) ExtraHeaders {
	return ExtraHeaders{isRaw: true, raw: text}
}

// FromMap wraps an already-decoded JSON object as a Parsed value.
func FromMap(m map[string]any) ExtraHeaders {
	return ExtraHeaders{isRaw: false, parsed: m}
}

// IsEmpty reports whether this value serializes to 0 bytes: an empty Raw
// string, the literal "{}", or a Parsed value with no keys.
func (h ExtraHeaders) IsEmpty() bool {
	if h.isRaw {
		return len(h.raw) == 0 || h.raw == emptyObject
	}

	return len(h.parsed) == 0
}

// Parse decodes a Raw value into a Parsed one. If h is already Parsed, it is
// returned unchanged. Fails with errs.ErrJSON if the text isn't valid JSON,
// or errs.ErrExtraHeaderNotObject if it parses to something other than a
// JSON object at the top level.
func (h ExtraHeaders) Parse() (ExtraHeaders, error) {
	if !h.isRaw {
		return h, nil
	}

	if h.IsEmpty() {
		return FromMap(map[string]any{}), nil
	}

	var v any
	if err := json.Unmarshal([]byte(h.raw), &v); err != nil {
		return ExtraHeaders{}, errs.ErrJSON
	}

	m, ok := v.(map[string]any)
	if !ok {
		return ExtraHeaders{}, errs.ErrExtraHeaderNotObject
	}

	return FromMap(m), nil
}

// Validate checks the reserved FDSN key, if present, has an object value.
// Fails with errs.ErrExtraHeaderValidation otherwise.
func (h ExtraHeaders) Validate() error {
	parsed, err := h.Parse()
	if err != nil {
		return err
	}

	if v, ok := parsed.parsed[FDSNKey]; ok {
		if _, ok := v.(map[string]any); !ok {
			return errs.ErrExtraHeaderValidation
		}
	}

	return nil
}

// Serialize renders the on-the-wire JSON text form. A Raw value's bytes are
// returned unchanged; a Parsed value is marshaled with Go's stable map-key
// ordering (encoding/json sorts object keys alphabetically). A logically
// empty value serializes to "" (zero bytes), not "{}".
func (h ExtraHeaders) Serialize() (string, error) {
	if h.isRaw {
		if h.IsEmpty() {
			return "", nil
		}

		return h.raw, nil
	}

	if len(h.parsed) == 0 {
		return "", nil
	}

	b, err := json.Marshal(h.parsed)
	if err != nil {
		return "", errs.ErrJSON
	}

	return string(b), nil
}

// Map returns the decoded object, parsing a Raw value first if needed.
func (h ExtraHeaders) Map() (map[string]any, error) {
	parsed, err := h.Parse()
	if err != nil {
		return nil, err
	}

	return parsed.parsed, nil
}
