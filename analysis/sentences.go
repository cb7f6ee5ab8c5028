package analysis

import (
	"strings"
	"sync"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

var (
	tokenizerOnce sync.Once
	tokenizerMu   sync.Mutex
	tokenizer     *sentences.DefaultSentenceTokenizer
	tokenizerErr  error
)

// SplitSentences tokenizes text into sentences using the English punkt model.
// If the model cannot be loaded it falls back to splitting after terminal
// punctuation.
func SplitSentences(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	tokenizerOnce.Do(func() {
		tokenizer, tokenizerErr = english.NewSentenceTokenizer(nil)
	})
	var raw []string
	if tokenizerErr != nil {
		raw = splitAfterTerminators(text)
	} else {
		tokenizerMu.Lock()
		for _, sentence := range tokenizer.Tokenize(text) {
			raw = append(raw, sentence.Text)
		}
		tokenizerMu.Unlock()
	}

	out := make([]string, 0, len(raw))
	for _, sentence := range raw {
		if s := strings.TrimSpace(sentence); s != "" {
			out = append(out, s)
		}
	}
	return out
}
