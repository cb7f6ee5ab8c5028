package document

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"legalease-backend/analysis"
	"legalease-backend/models"
)

var (
	pageFooter   = regexp.MustCompile(`Page \d+ of \d+`)
	digitLine    = regexp.MustCompile(`(?m)^[ \t]*\d+[ \t]*$`)
	paragraphGap = regexp.MustCompile(`\n[ \t]*\n\s*`)
	spaceRun     = regexp.MustCompile(`\s+`)
)

// Preprocess cleans extracted text: control characters, page footers and
// bare page numbers are dropped, whitespace inside a paragraph collapses to
// single spaces, and paragraphs stay separated by one blank line.
func Preprocess(text string) string {
	text = strings.Map(func(r rune) rune {
		switch {
		case r == '\n':
			return r
		case r == '\r':
			return -1
		case r == '\t' || r == '\v' || r == '\f':
			return ' '
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, text)

	text = pageFooter.ReplaceAllString(text, "")
	text = digitLine.ReplaceAllString(text, "")

	var paragraphs []string
	for _, p := range paragraphGap.Split(text, -1) {
		p = strings.TrimSpace(spaceRun.ReplaceAllString(p, " "))
		if p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return strings.Join(paragraphs, "\n\n")
}

// ExtractMetadata counts characters, sentences and clauses in text
func ExtractMetadata(text string) models.Metadata {
	return models.Metadata{
		Length:       utf8.RuneCountInString(text),
		NumSentences: len(analysis.SplitSentences(text)),
		NumClauses:   len(SplitClauses(text)),
	}
}

// SplitClauses splits text at semicolons and at periods followed by
// whitespace and a capital letter
func SplitClauses(text string) []string {
	var clauses []string
	start := 0
	add := func(end int) {
		if c := strings.TrimSpace(text[start:end]); c != "" {
			clauses = append(clauses, c)
		}
	}

	for i := 0; i < len(text); i++ {
		switch text[i] {
		case ';':
			add(i)
			start = i + 1
		case '.':
			if i+2 < len(text) && isSpace(text[i+1]) && 'A' <= text[i+2] && text[i+2] <= 'Z' {
				add(i)
				start = i + 1
			}
		}
	}
	add(len(text))
	return clauses
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}
