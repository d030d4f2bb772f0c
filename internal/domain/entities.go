package domain

// Entry is one immutable corpus member: the original text plus its
// embedding vector. Seq is assigned at append time, is unique, and
// strictly increases in append order.
type Entry struct {
	Seq    uint64
	Text   string
	Vector []float32
}

// ScoredEntry pairs an entry with its similarity to a query vector.
type ScoredEntry struct {
	Entry Entry
	Score float64
}

// Sentiment is the polarity label produced by the sentiment classifier.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// Analysis is the combined result of sentiment classification and
// keyword extraction over a single text.
type Analysis struct {
	Sentiment Sentiment `json:"sentiment"`
	Keywords  []string  `json:"keywords"`
}
