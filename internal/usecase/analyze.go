package usecase

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"textintel/internal/domain"
	"textintel/internal/port"
	"textintel/internal/worker"
)

// Analyzer runs sentiment classification and keyword extraction over a
// text, both on the worker pool and concurrently with each other.
type Analyzer struct {
	sentiment   port.SentimentClassifier
	keywords    port.KeywordExtractor
	pool        *worker.Pool
	maxKeywords int
}

// NewAnalyzer creates an analyzer returning up to maxKeywords keywords.
func NewAnalyzer(sentiment port.SentimentClassifier, keywords port.KeywordExtractor, pool *worker.Pool, maxKeywords int) *Analyzer {
	if maxKeywords <= 0 {
		maxKeywords = 10
	}
	return &Analyzer{
		sentiment:   sentiment,
		keywords:    keywords,
		pool:        pool,
		maxKeywords: maxKeywords,
	}
}

// Analyze classifies sentiment and extracts keywords for the text.
func (a *Analyzer) Analyze(ctx context.Context, text string) (domain.Analysis, error) {
	if strings.TrimSpace(text) == "" {
		return domain.Analysis{}, fmt.Errorf("%w: text must not be empty", domain.ErrInvalidInput)
	}

	var result domain.Analysis
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return a.pool.Do(ctx, func() error {
			result.Sentiment = a.sentiment.Classify(text)
			return nil
		})
	})
	g.Go(func() error {
		return a.pool.Do(ctx, func() error {
			result.Keywords = a.keywords.Extract(text, a.maxKeywords)
			return nil
		})
	})
	if err := g.Wait(); err != nil {
		return domain.Analysis{}, err
	}
	return result, nil
}
