package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/schollz/progressbar/v3"
	"go.etcd.io/bbolt"
	"go.uber.org/zap"

	"textintel/config"
	"textintel/internal/adapter/corpus"
	"textintel/internal/adapter/embedding"
	"textintel/internal/adapter/fs"
	"textintel/internal/port"
	"textintel/internal/usecase"
	"textintel/internal/worker"
)

func buildLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Logging.Level, err)
	}
	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = level
	return zapCfg.Build()
}

// buildEmbedder assembles the configured embedder, optionally wrapped
// with the BoltDB cache. The returned cleanup closes the cache.
func buildEmbedder(cfg *config.Config) (port.Embedder, func(), error) {
	var emb port.Embedder
	switch cfg.Embedding.Provider {
	case "hash", "":
		emb = embedding.NewHashEmbedder(cfg.Embedding.Dimension)
	case "openai":
		e, err := embedding.NewOpenAIEmbedder(embedding.Options{
			APIKeyEnv: cfg.Embedding.APIKeyEnv,
			Model:     cfg.Embedding.Model,
			BaseURL:   cfg.Embedding.BaseURL,
			Dimension: cfg.Embedding.Dimension,
			BatchSize: cfg.Embedding.BatchSize,
			Timeout:   time.Duration(cfg.Embedding.TimeoutSecs) * time.Second,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("openai embedder init failed: %w", err)
		}
		emb = e
	case "ollama":
		baseURL := cfg.Embedding.BaseURL
		if baseURL == "" {
			baseURL = "http://localhost:11434/v1"
		}
		e, err := embedding.NewOpenAIEmbedder(embedding.Options{
			Model:     cfg.Embedding.Model,
			BaseURL:   baseURL,
			Dimension: cfg.Embedding.Dimension,
			BatchSize: cfg.Embedding.BatchSize,
			Timeout:   time.Duration(cfg.Embedding.TimeoutSecs) * time.Second,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("ollama embedder init failed: %w", err)
		}
		emb = e
	default:
		return nil, nil, fmt.Errorf("unknown embedding provider: %s", cfg.Embedding.Provider)
	}

	cleanup := func() {}
	if cfg.Embedding.CachePath != "" {
		db, err := bbolt.Open(cfg.Embedding.CachePath, 0o600, nil)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open embedding cache: %w", err)
		}
		cached, err := embedding.NewCachedEmbedder(emb, db)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		emb = cached
		cleanup = func() { db.Close() }
	}

	return emb, cleanup, nil
}

func buildEngine(cfg *config.Config, emb port.Embedder) (*usecase.Engine, *worker.Pool) {
	pool := worker.NewPool(cfg.Workers.Size)
	store := corpus.NewStore(emb.Dimension())
	return usecase.NewEngine(emb, store, pool, cfg.Search.MaxTopK), pool
}

// preloadCorpus embeds and appends texts from files matching the globs,
// batch by batch, with a progress bar on stderr.
func preloadCorpus(ctx context.Context, engine *usecase.Engine, globs []string, batchSize int) error {
	texts, err := fs.NewLoader(globs).Load(".")
	if err != nil {
		return fmt.Errorf("failed to load corpus files: %w", err)
	}
	if len(texts) == 0 {
		return nil
	}
	if batchSize <= 0 {
		batchSize = 100
	}

	bar := progressbar.NewOptions(len(texts),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetDescription("Embedding corpus"),
		progressbar.OptionOnCompletion(func() {
			fmt.Println()
		}),
	)
	for i := 0; i < len(texts); i += batchSize {
		end := i + batchSize
		if end > len(texts) {
			end = len(texts)
		}
		if _, err := engine.Add(ctx, texts[i:end]); err != nil {
			return fmt.Errorf("failed to ingest corpus batch: %w", err)
		}
		_ = bar.Add(end - i)
	}
	return nil
}
