// Package catalog indexes records by the xxHash64 of their source
// identifier, for callers assembling an in-memory catalog of records read
// from a stream without re-parsing identifier strings on every lookup.
package catalog

import (
	"github.com/crotwell/mseed3/internal/hash"
	"github.com/crotwell/mseed3/record"
)

// IdentifierHash returns the xxHash64 of a record's on-the-wire source
// identifier string, used as the Index key.
func IdentifierHash(rec record.Record) uint64 {
	return hash.ID(rec.Identifier.String())
}

// Index groups records by their identifier hash, preserving arrival order
// within each bucket (later records from the same channel commonly arrive
// time-ordered in a stream).
type Index struct {
	buckets map[uint64][]record.Record
}

// NewIndex returns an empty Index.
func NewIndex() *Index {
	return &Index{buckets: make(map[uint64][]record.Record)}
}

// Add inserts rec under its identifier hash.
func (idx *Index) Add(rec record.Record) {
	h := IdentifierHash(rec)
	idx.buckets[h] = append(idx.buckets[h], rec)
}

// Lookup returns the records sharing ident's identifier hash, in the order
// they were added.
func (idx *Index) Lookup(ident string) []record.Record {
	return idx.buckets[hash.ID(ident)]
}

// Len returns the number of distinct identifier hashes in the index.
func (idx *Index) Len() int {
	return len(idx.buckets)
}
