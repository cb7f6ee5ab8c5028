package dictionary

import (
	"encoding/json"
	"fmt"

	"legalease-backend/analysis"
	"legalease-backend/models"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Dictionaries are JSON objects whose key order is meaningful, so they go
// through an ordered map rather than a Go map.

// EncodeRiskKeywords renders a keyword set as an indented JSON object
func EncodeRiskKeywords(set analysis.RiskKeywordSet) ([]byte, error) {
	om := orderedmap.New[string, []string]()
	for _, category := range set {
		om.Set(category.Name, category.Keywords)
	}
	return json.MarshalIndent(om, "", "  ")
}

// DecodeRiskKeywords parses a {"category": ["keyword", ...]} object in document order
func DecodeRiskKeywords(data []byte) (analysis.RiskKeywordSet, error) {
	om := orderedmap.New[string, []string]()
	if err := json.Unmarshal(data, om); err != nil {
		return nil, fmt.Errorf("failed to decode risk keywords: %w", err)
	}

	set := make(analysis.RiskKeywordSet, 0, om.Len())
	for pair := om.Oldest(); pair != nil; pair = pair.Next() {
		set = append(set, analysis.RiskCategory{Name: pair.Key, Keywords: pair.Value})
	}
	return set, nil
}

// EncodeLegalTerms renders a term dictionary as an indented JSON object
func EncodeLegalTerms(terms analysis.LegalTermDictionary) ([]byte, error) {
	om := orderedmap.New[string, string]()
	for _, term := range terms {
		om.Set(term.Term, term.Plain)
	}
	return json.MarshalIndent(om, "", "  ")
}

// DecodeLegalTerms parses a {"term": "plain"} object in document order
func DecodeLegalTerms(data []byte) (analysis.LegalTermDictionary, error) {
	om := orderedmap.New[string, string]()
	if err := json.Unmarshal(data, om); err != nil {
		return nil, fmt.Errorf("failed to decode legal terms: %w", err)
	}

	terms := make(analysis.LegalTermDictionary, 0, om.Len())
	for pair := om.Oldest(); pair != nil; pair = pair.Next() {
		terms = append(terms, analysis.LegalTerm{Term: pair.Key, Plain: pair.Value})
	}
	return terms, nil
}

// EncodeQuiz renders quiz questions as an indented JSON array
func EncodeQuiz(questions []models.QuizQuestion) ([]byte, error) {
	return json.MarshalIndent(questions, "", "  ")
}

// DecodeQuiz parses quiz questions, dropping entries that cannot be answered
func DecodeQuiz(data []byte) ([]models.QuizQuestion, error) {
	var questions []models.QuizQuestion
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("failed to decode quiz: %w", err)
	}

	valid := questions[:0]
	for _, q := range questions {
		if q.Question == "" || q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			continue
		}
		valid = append(valid, q)
	}
	return valid, nil
}

// DefaultDocument returns the indented default JSON for a category
func DefaultDocument(category string) ([]byte, error) {
	switch category {
	case CategoryRiskKeywords:
		return EncodeRiskKeywords(analysis.DefaultRiskKeywords())
	case CategoryLegalTerms:
		return EncodeLegalTerms(analysis.DefaultLegalTerms())
	case CategoryLegalQuiz:
		return EncodeQuiz(DefaultQuiz())
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownCategory, category)
	}
}

// DefaultQuiz returns the built-in Indian law quiz
func DefaultQuiz() []models.QuizQuestion {
	return []models.QuizQuestion{
		{
			Question:      "Under Indian Contract Act, what is the minimum age for entering into a valid contract?",
			Options:       []string{"16 years", "18 years", "21 years", "No minimum age"},
			CorrectAnswer: 1,
			Explanation:   "According to the Indian Contract Act, a person must be at least 18 years old to enter into a valid contract. Contracts made by minors (under 18) are typically void.",
		},
		{
			Question:      "Which of the following is NOT an essential element of a valid contract?",
			Options:       []string{"Offer and acceptance", "Free consent", "Written documentation", "Lawful consideration"},
			CorrectAnswer: 2,
			Explanation:   "Written documentation is NOT an essential element of a valid contract in India. Verbal contracts can be valid as long as they contain other essential elements.",
		},
		{
			Question:      "Under the Right to Information Act, within how many days must a public authority provide information?",
			Options:       []string{"10 days", "30 days", "45 days", "60 days"},
			CorrectAnswer: 1,
			Explanation:   "Under the Right to Information Act, 2005, a public authority is required to provide information within 30 days of receiving the request.",
		},
		{
			Question:      "What is the limitation period for filing a suit for recovery of movable property under the Limitation Act?",
			Options:       []string{"1 year", "3 years", "7 years", "12 years"},
			CorrectAnswer: 1,
			Explanation:   "Under the Limitation Act, 1963, the limitation period for filing a suit for recovery of movable property is 3 years.",
		},
		{
			Question:      "Which of the following is a valid ground for divorce under the Hindu Marriage Act?",
			Options:       []string{"Different political opinions", "Conversion to another religion", "Financial disagreements", "Different food preferences"},
			CorrectAnswer: 1,
			Explanation:   "Conversion to another religion is a valid ground for divorce under the Hindu Marriage Act, 1955.",
		},
	}
}
