package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"textintel/internal/adapter/analyzer"
	"textintel/internal/server"
	"textintel/internal/usecase"
)

var serveCorpusGlobs []string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the text intelligence HTTP server",
	Long: `Start the HTTP and WebSocket server.

Examples:
  textintel serve
  textintel serve --corpus "docs/**/*.txt" --config textintel.yaml`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringSliceVar(&serveCorpusGlobs, "corpus", nil, "glob patterns of text files to preload into the corpus")
}

func runServe(cmd *cobra.Command, args []string) error {
	logger, err := buildLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	emb, cleanup, err := buildEmbedder(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	engine, pool := buildEngine(cfg, emb)
	analyzeUC := usecase.NewAnalyzer(
		analyzer.NewLexiconClassifier(),
		analyzer.NewFrequencyKeywordExtractor(),
		pool,
		cfg.Analyze.MaxKeywords,
	)
	summaryUC := usecase.NewSummary(
		analyzer.NewFrequencySummarizer(),
		pool,
		cfg.Summarize.MaxSentences,
	)

	if len(serveCorpusGlobs) > 0 {
		if err := preloadCorpus(cmd.Context(), engine, serveCorpusGlobs, cfg.Embedding.BatchSize); err != nil {
			return err
		}
		logger.Info("corpus preloaded",
			zap.Int("size", engine.CorpusSize()),
			zap.String("model", emb.ModelName()),
		)
	}

	srv := server.NewServer(server.Config{
		ListenAddr:  cfg.Server.ListenAddr,
		DefaultTopK: cfg.Search.DefaultTopK,
		MaxTopK:     cfg.Search.MaxTopK,
	}, engine, analyzeUC, summaryUC, logger)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("shutting down", zap.String("signal", sig.String()))
		if err := srv.Shutdown(); err != nil {
			fmt.Fprintf(os.Stderr, "shutdown failed: %v\n", err)
		}
	}()

	return srv.Run()
}
