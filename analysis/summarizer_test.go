package analysis

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numberedSentences(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("Clause %d covers the monthly rent payment.", i+1)
	}
	return out
}

func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, "", NewSummarizer().Summarize(""))
}

func TestSummarize_ShortTextUnchanged(t *testing.T) {
	text := "The tenant pays rent. The owner fixes the roof. Both sign the lease."

	assert.Equal(t, text, NewSummarizer().Summarize(text))
}

func TestSummarize_UniformFiftySentences(t *testing.T) {
	sentences := numberedSentences(50)
	text := strings.Join(sentences, " ")

	summary := NewSummarizer().Summarize(text)

	got := SplitSentences(summary)
	require.Len(t, got, 10)
	want := []string{
		sentences[0], sentences[1], sentences[2], sentences[3], sentences[4],
		sentences[5], sentences[6], sentences[47], sentences[48], sentences[49],
	}
	assert.Equal(t, want, got)
}

func TestSummarize_FloorOfFive(t *testing.T) {
	s := &Summarizer{split: splitAfterTerminators}
	sentences := numberedSentences(8)

	summary := s.Summarize(strings.Join(sentences, " "))

	assert.Len(t, splitAfterTerminators(summary), 5)
}

func TestSummarize_PrefersLegalKeywords(t *testing.T) {
	sentences := numberedSentences(12)
	sentences[6] = "Each party agrees that the contract terms and conditions follow the law."
	s := &Summarizer{split: splitAfterTerminators}

	summary := s.Summarize(strings.Join(sentences, " "))

	assert.Contains(t, summary, sentences[6])
	assert.NotContains(t, summary, sentences[5])
}

func TestSummaryLength(t *testing.T) {
	tests := []struct{ n, want int }{
		{3, 3},
		{6, 5},
		{25, 5},
		{26, 6},
		{50, 10},
		{51, 11},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, summaryLength(tt.n), "n=%d", tt.n)
	}
}

func TestSentenceScore(t *testing.T) {
	assert.InDelta(t, 1.5*0.8*1.0, sentenceScore(0, 10, "Too short."), 1e-9)
	assert.InDelta(t, 1.2*1.0*1.1, sentenceScore(9, 10, "The contract starts on the first of June."), 1e-9)
	assert.InDelta(t, 1.0*1.0*1.0, sentenceScore(5, 10, "Rent is paid by bank transfer each month."), 1e-9)
}
