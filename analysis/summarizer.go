package analysis

import (
	"sort"
	"strings"
)

const (
	// minSummarySentences is both the short-circuit threshold and the floor
	minSummarySentences = 5
	// summaryDivisor keeps one sentence in five
	summaryDivisor      = 5

	leadSentences       = 3
	conclusionSentences = 3
)

// summaryStems boost sentences that carry legal substance
var summaryStems = []string{"agree", "contract", "party", "oblig", "right", "term", "condit", "law"}

// Summarizer selects the most salient sentences of a document
type Summarizer struct {
	split func(string) []string
}

// NewSummarizer creates an extractive summarizer using punkt sentence boundaries
func NewSummarizer() *Summarizer {
	return &Summarizer{split: SplitSentences}
}

// Summarize returns roughly the top fifth of the sentences of text, in their
// original order. Texts of five sentences or fewer are returned unchanged.
func (s *Summarizer) Summarize(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	sentences := s.split(text)
	if len(sentences) <= minSummarySentences {
		return text
	}

	type scored struct {
		index int
		score float64
	}
	ranked := make([]scored, len(sentences))
	for i, sentence := range sentences {
		ranked[i] = scored{index: i, score: sentenceScore(i, len(sentences), sentence)}
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].score > ranked[b].score
	})

	keep := summaryLength(len(sentences))
	selected := make([]int, 0, keep)
	for _, r := range ranked[:keep] {
		selected = append(selected, r.index)
	}
	sort.Ints(selected)

	parts := make([]string, len(selected))
	for i, idx := range selected {
		parts[i] = sentences[idx]
	}
	return strings.Join(parts, " ")
}

// summaryLength is ceil(20%) of the sentence count, at least five and never
// more than the sentences available
func summaryLength(n int) int {
	keep := (n + summaryDivisor - 1) / summaryDivisor
	keep = max(keep, minSummarySentences)
	return min(keep, n)
}

func sentenceScore(i, total int, sentence string) float64 {
	position := 1.0
	switch {
	case i < leadSentences:
		position = 1.5
	case i >= total-conclusionSentences:
		position = 1.2
	}

	length := 1.0
	switch words := len(strings.Fields(sentence)); {
	case words < 5:
		length = 0.8
	case words > 30:
		length = 0.9
	}

	lower := strings.ToLower(sentence)
	hits := 0
	for _, stem := range summaryStems {
		if strings.Contains(lower, stem) {
			hits++
		}
	}
	keyword := 1.0 + 0.1*float64(hits)

	return position * length * keyword
}
