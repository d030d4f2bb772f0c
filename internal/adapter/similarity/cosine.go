package similarity

import (
	"fmt"
	"math"

	"textintel/internal/domain"
)

// Cosine computes the cosine similarity between two vectors, in [-1, 1].
// Accumulation is done in float64 to limit rounding drift. If either
// vector has zero magnitude the similarity is 0: a zero vector has no
// direction, and ranking must not blow up on it.
func Cosine(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", domain.ErrDimensionMismatch, len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0, nil
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}
