package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"textintel/config"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "textintel",
	Short: "Text intelligence service - sentiment, keywords, summaries and semantic search",
	Long: `textintel serves text intelligence operations over HTTP and WebSocket:
sentiment classification, keyword extraction, summarization and semantic
search over a growable in-memory corpus.

Example usage:
  textintel serve                          # Start the HTTP server
  textintel serve --corpus "docs/**/*.txt" # Preload the corpus from files
  textintel search -q "feline behavior" --corpus "docs/**/*.txt"
  textintel analyze "I love this product"`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			wd, werr := os.Getwd()
			if werr != nil {
				return fmt.Errorf("failed to get working directory: %w", werr)
			}
			cfg, err = config.LoadFromDir(wd)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./textintel.yaml)")
}
