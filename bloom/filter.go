// Package bloom provides the command index, backed by a Bloom filter.
package bloom

import (
	"github.com/bits-and-blooms/bloom/v3"
	"github.com/fwojciec/tldr"
)

// DefaultFalsePositiveRate is the filter accuracy used by NewIndex.
const DefaultFalsePositiveRate = 0.01

// Ensure Index implements tldr.CommandIndex at compile time.
var _ tldr.CommandIndex = (*Index)(nil)

// Index is an immutable set of command names. Lookups go through a Bloom
// filter first so most unknown names never touch the exact set.
type Index struct {
	f     *bloom.BloomFilter
	names map[string]struct{}
}

// NewIndex builds an index from names. Duplicates are ignored.
func NewIndex(names []string) *Index {
	n := uint(len(names))
	if n == 0 {
		n = 1
	}
	idx := &Index{
		f:     bloom.NewWithEstimates(n, DefaultFalsePositiveRate),
		names: make(map[string]struct{}, len(names)),
	}
	for _, name := range names {
		idx.f.AddString(name)
		idx.names[name] = struct{}{}
	}
	return idx
}

// Build has the signature expected by fs.Cache.
func Build(names []string) tldr.CommandIndex {
	return NewIndex(names)
}

// Contains reports whether command is in the index. Names are matched
// case-sensitively.
func (idx *Index) Contains(command string) bool {
	if !idx.f.TestString(command) {
		return false
	}
	_, ok := idx.names[command]
	return ok
}

// IsEmpty reports whether the index holds no names.
func (idx *Index) IsEmpty() bool {
	return len(idx.names) == 0
}

// Len returns the number of distinct names.
func (idx *Index) Len() int {
	return len(idx.names)
}
