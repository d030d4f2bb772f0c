package corpus

import (
	"fmt"
	"sync"

	"textintel/internal/domain"
)

// Store holds the append-only collection of embedded texts. Entries are
// never mutated or removed after insertion, so a snapshot is just a copy
// of the slice header: readers keep scoring against it while writers
// grow the corpus.
type Store struct {
	mu        sync.RWMutex
	entries   []domain.Entry
	nextSeq   uint64
	dimension int
}

// NewStore creates an empty corpus for vectors of the given dimension.
func NewStore(dimension int) *Store {
	return &Store{dimension: dimension}
}

// Append inserts entries as one atomic batch. Every vector is validated
// against the corpus dimension before anything is written; a single
// malformed entry rejects the whole call. Sequence numbers are assigned
// contiguously in call order under the write lock, so concurrent appends
// never duplicate or skip one. Returns the new total size.
func (s *Store) Append(entries []domain.Entry) (int, error) {
	for i := range entries {
		if len(entries[i].Vector) != s.dimension {
			return 0, fmt.Errorf("%w: entry %d has %d dimensions, corpus has %d",
				domain.ErrDimensionMismatch, i, len(entries[i].Vector), s.dimension)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range entries {
		e := entries[i]
		e.Seq = s.nextSeq
		s.nextSeq++
		s.entries = append(s.entries, e)
	}
	return len(s.entries), nil
}

// Snapshot returns a consistent point-in-time view of all entries
// appended so far. Callers must treat the result as read-only; later
// appends are not visible through it.
func (s *Store) Snapshot() []domain.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries[:len(s.entries):len(s.entries)]
}

// Size returns the current entry count.
func (s *Store) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Dimension returns the fixed vector dimensionality.
func (s *Store) Dimension() int {
	return s.dimension
}
