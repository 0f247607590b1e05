package catalog_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/crotwell/mseed3/catalog"
	"github.com/crotwell/mseed3/encoding"
	"github.com/crotwell/mseed3/extraheaders"
	"github.com/crotwell/mseed3/header"
	"github.com/crotwell/mseed3/payload"
	"github.com/crotwell/mseed3/record"
	"github.com/crotwell/mseed3/sourceid"
)

func makeRecord(net, sta string) record.Record {
	start := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	h := header.New(start, encoding.Int16, 1.0, 0)
	id := sourceid.Fdsn(net, sta, "", "L", "H", "Z")

	return record.New(h, id, extraheaders.Empty(), payload.Int16([]int16{1, 2, 3}))
}

func TestIndexGroupsByIdentifier(t *testing.T) {
	idx := catalog.NewIndex()

	r1 := makeRecord("XX", "AAA")
	r2 := makeRecord("XX", "AAA")
	r3 := makeRecord("XX", "BBB")

	idx.Add(r1)
	idx.Add(r2)
	idx.Add(r3)

	assert.Equal(t, 2, idx.Len())
	assert.Len(t, idx.Lookup(r1.Identifier.String()), 2)
	assert.Len(t, idx.Lookup(r3.Identifier.String()), 1)
	assert.Empty(t, idx.Lookup("FDSN:ZZ_NOPE__L_H_Z"))
}

func TestIdentifierHashIsStableForEqualIdentifiers(t *testing.T) {
	r1 := makeRecord("XX", "AAA")
	r2 := makeRecord("XX", "AAA")

	assert.Equal(t, catalog.IdentifierHash(r1), catalog.IdentifierHash(r2))
}
