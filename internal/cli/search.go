package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	searchQuery  string
	searchTopK   int
	searchGlobs  []string
	searchAsJSON bool
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "One-shot semantic search over files",
	Long: `Build a corpus from the given files and search it once.

Examples:
  textintel search -q "feline behavior" --corpus "docs/**/*.txt"
  textintel search -q "error handling" --corpus "notes/*.txt" --top-k 10 --json`,
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().StringVarP(&searchQuery, "query", "q", "", "search query (required)")
	searchCmd.Flags().IntVarP(&searchTopK, "top-k", "k", 0, "number of results (default from config)")
	searchCmd.Flags().StringSliceVar(&searchGlobs, "corpus", nil, "glob patterns of text files to search (required)")
	searchCmd.Flags().BoolVar(&searchAsJSON, "json", false, "output as JSON")
	searchCmd.MarkFlagRequired("query")
	searchCmd.MarkFlagRequired("corpus")
}

func runSearch(cmd *cobra.Command, args []string) error {
	emb, cleanup, err := buildEmbedder(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	engine, _ := buildEngine(cfg, emb)
	if err := preloadCorpus(cmd.Context(), engine, searchGlobs, cfg.Embedding.BatchSize); err != nil {
		return err
	}
	if engine.CorpusSize() == 0 {
		return fmt.Errorf("no texts found for patterns %v", searchGlobs)
	}

	topK := cfg.Search.DefaultTopK
	if searchTopK > 0 {
		topK = searchTopK
	}

	results, err := engine.Search(cmd.Context(), searchQuery, topK)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchAsJSON {
		output, _ := json.MarshalIndent(results, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}
	fmt.Printf("Found %d results for: %s\n\n", len(results), searchQuery)
	for i, text := range results {
		if len(text) > 500 {
			text = text[:500] + "..."
		}
		fmt.Printf("--- [%d] ---\n%s\n\n", i+1, text)
	}
	return nil
}
