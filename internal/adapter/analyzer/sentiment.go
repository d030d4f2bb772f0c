package analyzer

import "textintel/internal/domain"

// LexiconClassifier labels sentiment by counting polarity words. It is
// the local stand-in for a model-backed classifier and keeps the same
// contract: text in, one of positive/negative/neutral out.
type LexiconClassifier struct {
	tokenizer *Tokenizer
	positive  map[string]struct{}
	negative  map[string]struct{}
}

// NewLexiconClassifier creates a classifier with the built-in lexicon.
func NewLexiconClassifier() *LexiconClassifier {
	return &LexiconClassifier{
		tokenizer: NewTokenizer(),
		positive:  wordSet(positiveWords),
		negative:  wordSet(negativeWords),
	}
}

// Classify returns the dominant polarity of the text. Ties and texts
// with no polarity words are neutral.
func (c *LexiconClassifier) Classify(text string) domain.Sentiment {
	var pos, neg int
	for _, tok := range c.tokenizer.Tokenize(text) {
		if _, ok := c.positive[tok]; ok {
			pos++
		}
		if _, ok := c.negative[tok]; ok {
			neg++
		}
	}

	switch {
	case pos > neg:
		return domain.SentimentPositive
	case neg > pos:
		return domain.SentimentNegative
	default:
		return domain.SentimentNeutral
	}
}

func wordSet(words []string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

var positiveWords = []string{
	"good", "great", "excellent", "amazing", "wonderful", "fantastic",
	"love", "loved", "loves", "like", "liked", "likes", "enjoy",
	"enjoyed", "happy", "glad", "pleased", "delightful", "brilliant",
	"awesome", "best", "better", "superb", "perfect", "impressive",
	"beautiful", "positive", "recommend", "recommended", "helpful",
	"friendly", "reliable", "fast", "smooth", "success", "successful",
	"win", "winning", "favorite", "satisfied", "thrilled", "outstanding",
}

var negativeWords = []string{
	"bad", "terrible", "awful", "horrible", "poor", "worst", "worse",
	"hate", "hated", "hates", "dislike", "disliked", "angry", "sad",
	"upset", "disappointed", "disappointing", "annoying", "annoyed",
	"broken", "slow", "buggy", "fail", "failed", "failure", "useless",
	"negative", "problem", "problems", "issue", "issues", "wrong",
	"unhappy", "frustrating", "frustrated", "crash", "crashed", "ugly",
	"boring", "mediocre", "regret", "waste", "wasted", "defective",
}
