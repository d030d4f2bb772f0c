package analyzer

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

var sentencePattern = regexp.MustCompile(`(?m)(?U)([^.!?]+[.!?])`)

// FrequencySummarizer condenses text by scoring sentences with
// normalized token frequency and keeping the best ones in their
// original order.
type FrequencySummarizer struct {
	tokenizer *Tokenizer
}

// NewFrequencySummarizer creates a frequency-based summarizer.
func NewFrequencySummarizer() *FrequencySummarizer {
	return &FrequencySummarizer{tokenizer: NewTokenizer()}
}

// Summarize returns at most maxSentences sentences from text.
func (s *FrequencySummarizer) Summarize(text string, maxSentences int) (string, error) {
	if maxSentences <= 0 {
		maxSentences = 3
	}

	sentences := sentencePattern.FindAllString(text, -1)
	if len(sentences) == 0 {
		return strings.TrimSpace(text), nil
	}
	if len(sentences) <= maxSentences {
		return joinTrimmed(sentences), nil
	}

	freq := make(map[string]float64)
	for _, sent := range sentences {
		for _, tok := range s.tokenizer.Tokenize(sent) {
			freq[tok]++
		}
	}
	var maxFreq float64
	for _, f := range freq {
		if f > maxFreq {
			maxFreq = f
		}
	}
	if maxFreq > 0 {
		for tok, f := range freq {
			freq[tok] = f / maxFreq
		}
	}

	type scored struct {
		idx   int
		score float64
	}
	scores := make([]scored, len(sentences))
	for i, sent := range sentences {
		tokens := s.tokenizer.Tokenize(sent)
		var total float64
		for _, tok := range tokens {
			total += freq[tok]
		}
		// Length normalization keeps long sentences from dominating.
		if n := float64(len(tokens)); n > 0 {
			total /= math.Sqrt(n)
		}
		scores[i] = scored{idx: i, score: total}
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].score > scores[j].score
	})

	selected := make([]int, maxSentences)
	for i := 0; i < maxSentences; i++ {
		selected[i] = scores[i].idx
	}
	sort.Ints(selected)

	picked := make([]string, len(selected))
	for i, idx := range selected {
		picked[i] = sentences[idx]
	}
	return joinTrimmed(picked), nil
}

func joinTrimmed(sentences []string) string {
	out := make([]string, len(sentences))
	for i, s := range sentences {
		out[i] = strings.TrimSpace(s)
	}
	return strings.Join(out, " ")
}
