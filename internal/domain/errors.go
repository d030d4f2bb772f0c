package domain

import "errors"

var (
	// ErrInvalidInput marks caller mistakes: empty text, empty list,
	// non-positive result count. Always recoverable per request.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDimensionMismatch marks a vector whose length disagrees with the
	// corpus dimensionality. The offending append is rejected wholesale.
	ErrDimensionMismatch = errors.New("vector dimension mismatch")

	// ErrEmbedding wraps failures from the embedding collaborator. The
	// core propagates these without retrying.
	ErrEmbedding = errors.New("embedding failed")
)
