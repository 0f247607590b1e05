// Package sourceid implements the miniSEED3 source identifier: either a
// structured FDSN channel name or an opaque raw string for identifiers that
// don't match the FDSN grammar.
package sourceid

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/crotwell/mseed3/errs"
)

// Prefix is the literal prefix of an on-the-wire FDSN identifier.
const Prefix = "FDSN:"

// fdsnRegexp implements the FDSN source identifier grammar:
//
//	FDSN: NET(1-8) _ STA(1-8,dash ok) _ LOC(0-8,dash ok) _ BAND(0+) _ SRC(1+) _ SUB(0+)
var fdsnRegexp = regexp.MustCompile(
	`^FDSN:([A-Z0-9]{1,8})_([-A-Z0-9]{1,8})_([-A-Z0-9]{0,8})_([A-Z0-9]*)_([A-Z0-9]+)_([A-Z0-9]*)$`,
)

// Identifier is a miniSEED3 source identifier: either a parsed Fdsn value
// or an opaque Raw string — a tagged union with two constructors and two
// readers, not a class hierarchy.
type Identifier struct {
	isFdsn bool
	raw    string

	network   string
	station   string
	location  string
	band      string
	source    string
	subsource string
}

// Fdsn builds an Identifier from its six structured components.
func Fdsn(network, station, location, band, source, subsource string) Identifier {
	return Identifier{
		isFdsn:    true,
		network:   network,
		station:   station,
		location:  location,
		band:      band,
		source:    source,
		subsource: subsource,
	}
}

// Raw builds an opaque, non-FDSN Identifier from arbitrary text.
func Raw(text string) Identifier {
	return Identifier{raw: text}
}

// Parse matches s against the FDSN grammar. A match yields an Fdsn
// identifier with the six components captured; anything else (including a
// string that merely starts with "FDSN:" but fails the grammar) falls back
// to Raw — there is no fail path here for well-formed text.
func Parse(s string) Identifier {
	m := fdsnRegexp.FindStringSubmatch(s)
	if m == nil {
		return Raw(s)
	}

	return Fdsn(m[1], m[2], m[3], m[4], m[5], m[6])
}

// ParseBytes decodes b as UTF-8 and parses it as an Identifier.
// Fails with errs.ErrNotUTF8 if b isn't valid UTF-8.
func ParseBytes(b []byte) (Identifier, error) {
	if !utf8.Valid(b) {
		return Identifier{}, errs.ErrNotUTF8
	}

	return Parse(string(b)), nil
}

// IsFdsn reports whether this identifier parsed as a structured FDSN name.
func (id Identifier) IsFdsn() bool {
	return id.isFdsn
}

// Components returns the six FDSN fields. Only meaningful when IsFdsn is true.
func (id Identifier) Components() (network, station, location, band, source, subsource string) {
	return id.network, id.station, id.location, id.band, id.source, id.subsource
}

// String renders the on-the-wire form: "FDSN:NET_STA_LOC_BAND_SRC_SUB" for an
// Fdsn identifier, or the raw text unchanged for a Raw one.
func (id Identifier) String() string {
	if !id.isFdsn {
		return id.raw
	}

	return fmt.Sprintf("%s%s_%s_%s_%s_%s_%s",
		Prefix, id.network, id.station, id.location, id.band, id.source, id.subsource)
}

// Bytes returns the UTF-8 on-the-wire byte form of this identifier.
func (id Identifier) Bytes() []byte {
	return []byte(id.String())
}

// ByteLen returns the exact on-the-wire byte length of this identifier,
// matching len(id.Bytes()) without allocating.
func (id Identifier) ByteLen() int {
	if !id.isFdsn {
		return len(id.raw)
	}

	// 5 for "FDSN:" + 5 separators between the 6 components.
	return 10 + len(id.network) + len(id.station) + len(id.location) +
		len(id.band) + len(id.source) + len(id.subsource)
}
