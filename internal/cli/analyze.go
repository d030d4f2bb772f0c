package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"textintel/internal/adapter/analyzer"
	"textintel/internal/usecase"
	"textintel/internal/worker"
)

var analyzeAsJSON bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze [text]",
	Short: "Analyze sentiment and keywords of a text",
	Long: `Classify sentiment and extract keywords. Reads the text from the
argument, or from stdin when no argument is given.

Examples:
  textintel analyze "I love this product, it works great"
  cat review.txt | textintel analyze --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().BoolVar(&analyzeAsJSON, "json", false, "output as JSON")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	var text string
	if len(args) == 1 {
		text = args[0]
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		text = string(data)
	}

	analyzeUC := usecase.NewAnalyzer(
		analyzer.NewLexiconClassifier(),
		analyzer.NewFrequencyKeywordExtractor(),
		worker.NewPool(cfg.Workers.Size),
		cfg.Analyze.MaxKeywords,
	)

	result, err := analyzeUC.Analyze(cmd.Context(), text)
	if err != nil {
		return fmt.Errorf("analyze failed: %w", err)
	}

	if analyzeAsJSON {
		output, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	fmt.Printf("Sentiment: %s\n", result.Sentiment)
	fmt.Printf("Keywords:  %s\n", strings.Join(result.Keywords, ", "))
	return nil
}
