package analysis

import (
	"regexp"
	"sort"
	"strings"
)

// longSentenceWords is the word count above which a sentence is broken up
const longSentenceWords = 15

type replacement struct {
	pattern string
	with    string
}

type rule struct {
	re   *regexp.Regexp
	with string
}

var (
	compiledPhrases     = compileRules(phraseReplacements, regexp.QuoteMeta)
	compiledKidFriendly = compileRules(kidFriendlyPatterns, nil)

	sentenceBreak  = regexp.MustCompile(`[.!?]\s+`)
	clauseBreak    = regexp.MustCompile(`;|, (?:and|but|or|however|therefore|nevertheless|furthermore|moreover|thus|consequently)`)
	passiveSingle  = regexp.MustCompile(`is (\w+)ed by`)
	passivePlural  = regexp.MustCompile(`are (\w+)ed by`)
	repeatedPeriod = regexp.MustCompile(`\.{2,}`)
	periodCapital  = regexp.MustCompile(`\.([A-Z])`)
	whitespaceRun  = regexp.MustCompile(`\s+`)
)

// literalReplacements run in order after the pattern table
var literalReplacements = []replacement{
	{"the Committee", "Person A"},
	{"the Contractor", "Person B"},
	{"Subject to the terms and conditions", "Following the rules"},
	{"as set forth", "written"},
	{"as an independent contractor", "as a worker"},
	{"independent contractor", "worker"},
	{"hereby", ""},
	{"shall be", "is"},
	{"shall", "will"},
	{"may be amended", "can be changed"},
	{"supplemented with", "added to with"},
	{"rendered by", "done by"},
	{"collectively are", "are all"},
	{"incorporated by reference", "included"},
}

var numberWords = []rule{
	{regexp.MustCompile(`\b1\b`), "one"},
	{regexp.MustCompile(`\b2\b`), "two"},
	{regexp.MustCompile(`\b3\b`), "three"},
	{regexp.MustCompile(`\b4\b`), "four"},
	{regexp.MustCompile(`\b5\b`), "five"},
	{regexp.MustCompile(`\b6\b`), "six"},
	{regexp.MustCompile(`\b7\b`), "seven"},
	{regexp.MustCompile(`\b8\b`), "eight"},
	{regexp.MustCompile(`\b9\b`), "nine"},
	{regexp.MustCompile(`\b10\b`), "ten"},
}

func compileRules(table []replacement, quote func(string) string) []rule {
	rules := make([]rule, 0, len(table))
	for _, r := range table {
		pattern := r.pattern
		if quote != nil {
			pattern = quote(pattern)
		}
		rules = append(rules, rule{re: regexp.MustCompile(`(?i)` + pattern), with: r.with})
	}
	return rules
}

// Simplifier rewrites legal text into plain, short sentences.
// Output is plain-English-leaning, not grammatically validated: the passive
// rewrite is a heuristic that mangles irregular verbs.
type Simplifier struct {
	terms []rule
}

// NewSimplifier compiles the catalog's legal term dictionary.
// An empty dictionary disables term substitution.
func NewSimplifier(catalog *Catalog) *Simplifier {
	s := &Simplifier{}
	if catalog == nil {
		return s
	}

	terms := make(LegalTermDictionary, 0, len(catalog.LegalTerms))
	for _, t := range catalog.LegalTerms {
		if strings.TrimSpace(t.Term) != "" {
			terms = append(terms, t)
		}
	}
	if catalog.TermOrder == TermOrderLongestFirst {
		sort.SliceStable(terms, func(i, j int) bool {
			return len(terms[i].Term) > len(terms[j].Term)
		})
	}

	for _, t := range terms {
		s.terms = append(s.terms, rule{
			re:   regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(t.Term) + `\b`),
			with: t.Plain,
		})
	}
	return s
}

// Simplify runs the full rewriting pipeline. Each stage consumes the output
// of the previous one.
func (s *Simplifier) Simplify(text string) string {
	if text == "" {
		return ""
	}

	out := s.substituteTerms(text)
	out = applyRules(out, compiledPhrases)
	out = breakLongSentences(out)
	out = applyRules(out, compiledKidFriendly)
	out = applyLiterals(out)
	out = applyRules(out, numberWords)
	return normalizePunctuation(out)
}

func (s *Simplifier) substituteTerms(text string) string {
	return applyRules(text, s.terms)
}

func applyRules(text string, rules []rule) string {
	for _, r := range rules {
		text = r.re.ReplaceAllLiteralString(text, r.with)
	}
	return text
}

func applyLiterals(text string) string {
	for _, r := range literalReplacements {
		text = strings.ReplaceAll(text, r.pattern, r.with)
	}
	text = passiveSingle.ReplaceAllString(text, "${1}s")
	return passivePlural.ReplaceAllString(text, "${1}")
}

// breakLongSentences splits sentences over fifteen words on semicolons and
// on commas followed by a transition word
func breakLongSentences(text string) string {
	var out []string
	for _, sentence := range splitAfterTerminators(text) {
		if len(strings.Fields(sentence)) <= longSentenceWords {
			out = append(out, sentence)
			continue
		}
		for _, part := range clauseBreak.Split(sentence, -1) {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if !strings.HasSuffix(part, ".") && !strings.HasSuffix(part, "!") && !strings.HasSuffix(part, "?") {
				part += "."
			}
			out = append(out, part)
		}
	}
	return strings.Join(out, " ")
}

// splitAfterTerminators splits on whitespace runs that follow '.', '!' or '?'
func splitAfterTerminators(text string) []string {
	var out []string
	start := 0
	for _, loc := range sentenceBreak.FindAllStringIndex(text, -1) {
		out = append(out, text[start:loc[0]+1])
		start = loc[1]
	}
	return append(out, text[start:])
}

func normalizePunctuation(text string) string {
	text = strings.ReplaceAll(text, ";", ".")
	text = strings.ReplaceAll(text, ":", ".")
	text = repeatedPeriod.ReplaceAllLiteralString(text, ".")
	text = periodCapital.ReplaceAllString(text, ". ${1}")
	return whitespaceRun.ReplaceAllLiteralString(text, " ")
}
