package embedding

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"strconv"

	"go.etcd.io/bbolt"

	"textintel/internal/port"
)

var bucketEmbeddings = []byte("embeddings")

// CachedEmbedder wraps an Embedder with a BoltDB cache keyed by model
// and text, so repeated queries and re-ingested texts skip the model
// call. Cache writes are best-effort; a failed put never fails the
// embedding request.
type CachedEmbedder struct {
	inner port.Embedder
	db    *bbolt.DB
}

type cachedVector struct {
	Vector []float32 `json:"v"`
}

// NewCachedEmbedder creates the cache bucket and wraps inner.
func NewCachedEmbedder(inner port.Embedder, db *bbolt.DB) (*CachedEmbedder, error) {
	err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketEmbeddings)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create embeddings bucket: %w", err)
	}
	return &CachedEmbedder{inner: inner, db: db}, nil
}

// cacheKey encodes model and dimension alongside the text, so a cache
// file surviving a dimension change never serves vectors of the wrong
// length into a corpus built with the new dimensionality.
func (e *CachedEmbedder) cacheKey(text string) []byte {
	sum := sha256.Sum256([]byte(e.inner.ModelName() + "\x00" + strconv.Itoa(e.inner.Dimension()) + "\x00" + text))
	return sum[:]
}

// Embed returns cached vectors where available and embeds only the
// misses, preserving input order.
func (e *CachedEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	var missing []int

	err := e.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketEmbeddings)
		if b == nil {
			missing = make([]int, len(texts))
			for i := range texts {
				missing[i] = i
			}
			return nil
		}
		for i, text := range texts {
			data := b.Get(e.cacheKey(text))
			if data == nil {
				missing = append(missing, i)
				continue
			}
			var stored cachedVector
			if err := json.Unmarshal(data, &stored); err != nil {
				missing = append(missing, i)
				continue
			}
			vectors[i] = stored.Vector
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("embedding cache read failed: %w", err)
	}

	if len(missing) == 0 {
		return vectors, nil
	}

	missingTexts := make([]string, len(missing))
	for i, idx := range missing {
		missingTexts[i] = texts[idx]
	}

	embedded, err := e.inner.Embed(ctx, missingTexts)
	if err != nil {
		return nil, err
	}
	if len(embedded) != len(missing) {
		return nil, fmt.Errorf("embedder returned %d vectors for %d texts", len(embedded), len(missing))
	}
	for i, idx := range missing {
		vectors[idx] = embedded[i]
	}

	_ = e.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(bucketEmbeddings)
		for i, idx := range missing {
			data, err := json.Marshal(cachedVector{Vector: embedded[i]})
			if err != nil {
				continue
			}
			if err := b.Put(e.cacheKey(texts[idx]), data); err != nil {
				return err
			}
		}
		return nil
	})

	return vectors, nil
}

// Dimension returns the wrapped embedder's dimension.
func (e *CachedEmbedder) Dimension() int {
	return e.inner.Dimension()
}

// ModelName returns the wrapped embedder's model name.
func (e *CachedEmbedder) ModelName() string {
	return e.inner.ModelName()
}
