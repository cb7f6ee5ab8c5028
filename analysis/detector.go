package analysis

import (
	"strings"
)

// paragraphSeparator splits the document into paragraphs
const paragraphSeparator = "\n\n"

const (
	baseConfidence   = 0.5
	confidencePerHit = 0.2
	maxConfidence    = 0.9
)

// RiskyClause is a paragraph-level span flagged with a risk type
type RiskyClause struct {
	Text       string  `json:"text"`
	RiskType   string  `json:"risk_type"`
	StartIndex int     `json:"start_index"`
	EndIndex   int     `json:"end_index"`
	Confidence float64 `json:"confidence"`
}

// Detector tags paragraphs containing configured risk keywords
type Detector struct {
	categories []lowerCategory
}

type lowerCategory struct {
	name     string
	keywords []string
}

// NewDetector creates a detector over the catalog's keyword set
func NewDetector(catalog *Catalog) *Detector {
	d := &Detector{}
	if catalog == nil {
		return d
	}
	for _, category := range catalog.RiskKeywords {
		lc := lowerCategory{name: category.Name}
		for _, keyword := range category.Keywords {
			if keyword == "" {
				continue
			}
			lc.keywords = append(lc.keywords, strings.ToLower(keyword))
		}
		d.categories = append(d.categories, lc)
	}
	return d
}

// Detect returns the risky clauses of text, ordered by start index.
// A paragraph is tagged with at most one risk type: the first category, in
// keyword-set order, with a keyword occurring in it.
func (d *Detector) Detect(text string) []RiskyClause {
	clauses := make([]RiskyClause, 0)
	if text == "" {
		return clauses
	}

	offset := 0
	for _, paragraph := range strings.Split(text, paragraphSeparator) {
		start := offset
		offset += len(paragraph) + len(paragraphSeparator)

		if strings.TrimSpace(paragraph) == "" {
			continue
		}

		lower := strings.ToLower(paragraph)
		if clause, ok := d.match(paragraph, lower, start); ok {
			clauses = append(clauses, clause)
		}
	}

	return dedupeClauses(clauses)
}

// match finds the first category with a keyword present in the paragraph
func (d *Detector) match(paragraph, lower string, start int) (RiskyClause, bool) {
	for _, category := range d.categories {
		for _, keyword := range category.keywords {
			if !strings.Contains(lower, keyword) {
				continue
			}
			return RiskyClause{
				Text:       paragraph,
				RiskType:   category.name,
				StartIndex: start,
				EndIndex:   start + len(paragraph),
				Confidence: confidence(strings.Count(lower, keyword)),
			}, true
		}
	}
	return RiskyClause{}, false
}

func confidence(matches int) float64 {
	return min(maxConfidence, baseConfidence+confidencePerHit*float64(matches))
}

// dedupeClauses keeps the first clause for each (start, end) span
func dedupeClauses(clauses []RiskyClause) []RiskyClause {
	type span struct{ start, end int }
	seen := make(map[span]struct{}, len(clauses))
	unique := make([]RiskyClause, 0, len(clauses))
	for _, clause := range clauses {
		key := span{clause.StartIndex, clause.EndIndex}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, clause)
	}
	return unique
}
