package usecase

import (
	"context"
	"fmt"
	"strings"

	"textintel/internal/domain"
	"textintel/internal/port"
	"textintel/internal/worker"
)

// Summary condenses texts through the configured summarizer, offloading
// the call to the worker pool like every other model-bound operation.
type Summary struct {
	summarizer   port.Summarizer
	pool         *worker.Pool
	maxSentences int
}

// NewSummary creates a summarize use case keeping up to maxSentences.
func NewSummary(summarizer port.Summarizer, pool *worker.Pool, maxSentences int) *Summary {
	if maxSentences <= 0 {
		maxSentences = 3
	}
	return &Summary{
		summarizer:   summarizer,
		pool:         pool,
		maxSentences: maxSentences,
	}
}

// Summarize returns a short summary of the text.
func (s *Summary) Summarize(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: text must not be empty", domain.ErrInvalidInput)
	}

	var summary string
	err := s.pool.Do(ctx, func() error {
		var err error
		summary, err = s.summarizer.Summarize(text, s.maxSentences)
		return err
	})
	if err != nil {
		return "", err
	}
	return summary, nil
}
