package port

import "textintel/internal/domain"

// SentimentClassifier labels a text as positive, negative or neutral.
type SentimentClassifier interface {
	Classify(text string) domain.Sentiment
}

// KeywordExtractor returns up to max salient keywords for a text.
type KeywordExtractor interface {
	Extract(text string, max int) []string
}

// Summarizer condenses a text into at most maxSentences sentences.
type Summarizer interface {
	Summarize(text string, maxSentences int) (string, error)
}
