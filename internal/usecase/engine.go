package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"textintel/internal/adapter/similarity"
	"textintel/internal/domain"
	"textintel/internal/port"
	"textintel/internal/worker"
)

// DefaultMaxTopK bounds how many results a single search may request.
const DefaultMaxTopK = 100

// Engine is the semantic search engine: it embeds queries and new texts
// through the worker pool and ranks corpus entries by cosine similarity.
// The engine holds no per-request state; all durable state lives in the
// corpus, so any number of callers may share one instance.
type Engine struct {
	embedder port.Embedder
	corpus   port.Corpus
	pool     *worker.Pool
	maxTopK  int
}

// NewEngine creates a search engine over the given corpus. maxTopK
// bounds how many results one search may return; zero or negative
// falls back to DefaultMaxTopK. The dispatcher validates against the
// same configured bound, so requests it admits are never re-clamped.
func NewEngine(embedder port.Embedder, corpus port.Corpus, pool *worker.Pool, maxTopK int) *Engine {
	if maxTopK <= 0 {
		maxTopK = DefaultMaxTopK
	}
	return &Engine{
		embedder: embedder,
		corpus:   corpus,
		pool:     pool,
		maxTopK:  maxTopK,
	}
}

// Search embeds the query, scores every corpus entry against it and
// returns up to k texts ranked by descending similarity. Ties are broken
// by insertion order, earlier entry first. Asking for more results than
// the corpus holds returns everything; an empty corpus returns an empty
// result. Both are valid outcomes, not errors.
func (e *Engine) Search(ctx context.Context, query string, k int) ([]string, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: query must not be empty", domain.ErrInvalidInput)
	}
	if k <= 0 {
		return nil, fmt.Errorf("%w: k must be positive", domain.ErrInvalidInput)
	}
	if k > e.maxTopK {
		k = e.maxTopK
	}

	queryVec, err := e.embed(ctx, []string{query})
	if err != nil {
		return nil, err
	}

	snapshot := e.corpus.Snapshot()
	if len(snapshot) == 0 {
		return []string{}, nil
	}

	scored := make([]domain.ScoredEntry, len(snapshot))
	for i, entry := range snapshot {
		score, err := similarity.Cosine(queryVec[0], entry.Vector)
		if err != nil {
			return nil, fmt.Errorf("failed to score entry %d: %w", entry.Seq, err)
		}
		scored[i] = domain.ScoredEntry{Entry: entry, Score: score}
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Entry.Seq < scored[j].Entry.Seq
	})

	if k > len(scored) {
		k = len(scored)
	}
	results := make([]string, k)
	for i := 0; i < k; i++ {
		results[i] = scored[i].Entry.Text
	}
	return results, nil
}

// Add embeds each text and appends the resulting entries to the corpus
// as one atomic batch. Any embedding failure aborts the whole call; no
// partial ingestion. Returns the corpus size after the append.
func (e *Engine) Add(ctx context.Context, texts []string) (int, error) {
	if len(texts) == 0 {
		return 0, fmt.Errorf("%w: texts must not be empty", domain.ErrInvalidInput)
	}
	for i, text := range texts {
		if strings.TrimSpace(text) == "" {
			return 0, fmt.Errorf("%w: text %d is empty", domain.ErrInvalidInput, i)
		}
	}

	vectors, err := e.embed(ctx, texts)
	if err != nil {
		return 0, err
	}
	if len(vectors) != len(texts) {
		return 0, fmt.Errorf("%w: got %d vectors for %d texts", domain.ErrEmbedding, len(vectors), len(texts))
	}

	entries := make([]domain.Entry, len(texts))
	for i, text := range texts {
		entries[i] = domain.Entry{Text: text, Vector: vectors[i]}
	}
	return e.corpus.Append(entries)
}

// CorpusSize returns the current number of corpus entries.
func (e *Engine) CorpusSize() int {
	return e.corpus.Size()
}

// embed runs the blocking embedding call on the worker pool so the
// corpus lock is never held while waiting on the model.
func (e *Engine) embed(ctx context.Context, texts []string) ([][]float32, error) {
	var vectors [][]float32
	err := e.pool.Do(ctx, func() error {
		var err error
		vectors, err = e.embedder.Embed(ctx, texts)
		return err
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrEmbedding, err)
	}
	return vectors, nil
}
