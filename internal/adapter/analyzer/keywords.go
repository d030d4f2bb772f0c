package analyzer

import "sort"

// FrequencyKeywordExtractor ranks tokens by how often they occur,
// stopwords already filtered by the tokenizer. First occurrence wins
// ties so results are deterministic.
type FrequencyKeywordExtractor struct {
	tokenizer *Tokenizer
}

// NewFrequencyKeywordExtractor creates a frequency-based extractor.
func NewFrequencyKeywordExtractor() *FrequencyKeywordExtractor {
	return &FrequencyKeywordExtractor{tokenizer: NewTokenizer()}
}

// Extract returns up to max keywords ordered by descending frequency.
func (e *FrequencyKeywordExtractor) Extract(text string, max int) []string {
	if max <= 0 {
		max = 10
	}

	tokens := e.tokenizer.Tokenize(text)
	if len(tokens) == 0 {
		return nil
	}

	freq := make(map[string]int)
	firstSeen := make(map[string]int)
	for i, tok := range tokens {
		if _, ok := firstSeen[tok]; !ok {
			firstSeen[tok] = i
		}
		freq[tok]++
	}

	unique := make([]string, 0, len(freq))
	for tok := range freq {
		unique = append(unique, tok)
	}
	sort.Slice(unique, func(i, j int) bool {
		if freq[unique[i]] != freq[unique[j]] {
			return freq[unique[i]] > freq[unique[j]]
		}
		return firstSeen[unique[i]] < firstSeen[unique[j]]
	})

	if max > len(unique) {
		max = len(unique)
	}
	return unique[:max]
}
