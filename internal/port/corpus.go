package port

import "textintel/internal/domain"

// Corpus holds the append-only collection of embedded texts.
type Corpus interface {
	// Append inserts entries atomically, assigning contiguous sequence
	// numbers, and returns the new total size. Entries whose vector
	// length disagrees with the corpus dimension reject the whole batch.
	Append(entries []domain.Entry) (int, error)

	// Snapshot returns a consistent point-in-time view of all entries.
	// The returned slice and its entries must never be mutated.
	Snapshot() []domain.Entry

	// Size returns the current entry count.
	Size() int

	// Dimension returns the fixed vector dimensionality.
	Dimension() int
}
