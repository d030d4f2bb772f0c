package analyzer

import (
	"strings"
	"testing"

	"textintel/internal/domain"
)

func TestTokenize_RemovesStopwordsAndCase(t *testing.T) {
	tok := NewTokenizer()

	got := tok.Tokenize("The Quick brown fox, and the lazy DOG!")
	want := []string{"quick", "brown", "fox", "lazy", "dog"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestClassify(t *testing.T) {
	c := NewLexiconClassifier()

	tests := []struct {
		text string
		want domain.Sentiment
	}{
		{"I love this product, it is great and works perfect", domain.SentimentPositive},
		{"Terrible experience, everything is broken and slow", domain.SentimentNegative},
		{"The package arrived on a Tuesday", domain.SentimentNeutral},
		{"I love it but I also hate it", domain.SentimentNeutral},
		{"", domain.SentimentNeutral},
	}
	for _, tt := range tests {
		if got := c.Classify(tt.text); got != tt.want {
			t.Errorf("Classify(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestExtract_RanksByFrequency(t *testing.T) {
	e := NewFrequencyKeywordExtractor()

	text := "database performance matters. database indexes improve performance. tuning the database helps."
	got := e.Extract(text, 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 keywords, got %v", got)
	}
	if got[0] != "database" {
		t.Errorf("expected top keyword 'database', got %q", got[0])
	}
	if got[1] != "performance" {
		t.Errorf("expected second keyword 'performance', got %q", got[1])
	}
}

func TestExtract_EmptyText(t *testing.T) {
	e := NewFrequencyKeywordExtractor()
	if got := e.Extract("", 5); got != nil {
		t.Errorf("expected nil for empty text, got %v", got)
	}
}

func TestExtract_FewerKeywordsThanMax(t *testing.T) {
	e := NewFrequencyKeywordExtractor()
	got := e.Extract("singleton", 10)
	if len(got) != 1 || got[0] != "singleton" {
		t.Errorf("expected [singleton], got %v", got)
	}
}

func TestSummarize_PicksFrequentSentencesInOrder(t *testing.T) {
	s := NewFrequencySummarizer()

	text := "Search engines rank documents. Ranking uses document scores. " +
		"Bananas are yellow. Document ranking and scores drive search."
	got, err := s.Summarize(text, 2)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(got, "Bananas") {
		t.Errorf("off-topic sentence survived summarization: %q", got)
	}
	if !strings.Contains(got, "Ranking uses document scores") {
		t.Errorf("expected high-frequency sentence in summary, got %q", got)
	}
	// Selected sentences keep their original order.
	first := strings.Index(got, "Ranking uses")
	second := strings.Index(got, "Document ranking")
	if first > second && second != -1 {
		t.Errorf("summary reordered sentences: %q", got)
	}
}

func TestSummarize_ShortTextReturnedWhole(t *testing.T) {
	s := NewFrequencySummarizer()

	got, err := s.Summarize("Just one sentence here.", 3)
	if err != nil {
		t.Fatal(err)
	}
	if got != "Just one sentence here." {
		t.Errorf("expected text unchanged, got %q", got)
	}
}

func TestSummarize_NoPunctuation(t *testing.T) {
	s := NewFrequencySummarizer()

	got, err := s.Summarize("no terminal punctuation at all", 2)
	if err != nil {
		t.Fatal(err)
	}
	if got != "no terminal punctuation at all" {
		t.Errorf("expected trimmed original text, got %q", got)
	}
}
