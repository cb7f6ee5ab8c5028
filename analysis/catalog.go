// Package analysis holds the deterministic text-processing routines run over
// an uploaded legal document: risk detection, risk scoring, extractive
// summarization and jargon simplification.
//
// Every component is built from an immutable Catalog and is safe for
// concurrent use.
package analysis

import (
	"errors"
	"fmt"
)

// RiskLevel is the three-tier label produced by the Scorer
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// RiskCategory is one named group of risk keywords
type RiskCategory struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

// RiskKeywordSet is the ordered list of risk categories.
// Order matters: the detector assigns a paragraph to the first category that matches.
type RiskKeywordSet []RiskCategory

// LegalTerm maps a legal term or phrase to a plain-language replacement
type LegalTerm struct {
	Term  string `json:"term"`
	Plain string `json:"plain"`
}

// LegalTermDictionary is the ordered list of legal terms, in insertion order
type LegalTermDictionary []LegalTerm

// RiskWeightTable maps a risk type to its weight in [0,1]
type RiskWeightTable map[string]float64

// Thresholds are the ascending score boundaries used for classification
type Thresholds struct {
	Low    float64 `json:"low"`
	Medium float64 `json:"medium"`
	High   float64 `json:"high"`
}

// TermOrder selects how overlapping legal terms are resolved in the simplifier
type TermOrder string

const (
	// TermOrderInsertion applies terms in dictionary order
	TermOrderInsertion TermOrder = "insertion"
	// TermOrderLongestFirst applies longer terms before shorter ones
	TermOrderLongestFirst TermOrder = "longest"
)

// DefaultRiskWeight is used for risk types missing from the weight table
const DefaultRiskWeight = 0.5

var ErrInvalidThresholds = errors.New("risk thresholds must be ascending and within [0,1]")

// Catalog bundles the configuration tables shared by all components
type Catalog struct {
	RiskKeywords RiskKeywordSet
	RiskWeights  RiskWeightTable
	Thresholds   Thresholds
	LegalTerms   LegalTermDictionary
	TermOrder    TermOrder
}

// DefaultThresholds returns the standard 0.3 / 0.6 / 0.8 boundaries
func DefaultThresholds() Thresholds {
	return Thresholds{Low: 0.3, Medium: 0.6, High: 0.8}
}

// Validate checks that the thresholds are ascending and inside [0,1]
func (t Thresholds) Validate() error {
	if t.Low < 0 || t.High > 1 || t.Low > t.Medium || t.Medium > t.High {
		return fmt.Errorf("%w: got %.2f/%.2f/%.2f", ErrInvalidThresholds, t.Low, t.Medium, t.High)
	}
	return nil
}

// DefaultRiskWeights returns the static weight per known risk type
func DefaultRiskWeights() RiskWeightTable {
	return RiskWeightTable{
		"auto_renewal":             0.8,
		"termination_restrictions": 0.7,
		"unilateral_changes":       0.9,
		"liability_limitations":    0.6,
		"indemnification":          0.5,
		"jurisdiction":             0.4,
		"confidentiality":          0.3,
		"payment_terms":            0.4,
		"ip_rights":                0.6,
		"vague_terms":              0.7,
	}
}

// Weight returns the weight of riskType, or DefaultRiskWeight when unknown
func (w RiskWeightTable) Weight(riskType string) float64 {
	if weight, ok := w[riskType]; ok {
		return weight
	}
	return DefaultRiskWeight
}

// DefaultRiskKeywords returns the built-in keyword set written to the
// dictionary store when none exists
func DefaultRiskKeywords() RiskKeywordSet {
	return RiskKeywordSet{
		{Name: "auto_renewal", Keywords: []string{"automatically renew", "auto renewal", "auto-renewal"}},
		{Name: "termination_restrictions", Keywords: []string{"may not terminate", "termination fee", "early termination"}},
		{Name: "unilateral_changes", Keywords: []string{"sole discretion", "modify without notice", "unilaterally amend"}},
		{Name: "liability_limitations", Keywords: []string{"no liability", "not be liable", "limit liability"}},
		{Name: "indemnification", Keywords: []string{"indemnify", "hold harmless", "defend against"}},
	}
}

// DefaultCatalog returns a catalog built entirely from the built-in tables
func DefaultCatalog() *Catalog {
	return &Catalog{
		RiskKeywords: DefaultRiskKeywords(),
		RiskWeights:  DefaultRiskWeights(),
		Thresholds:   DefaultThresholds(),
		LegalTerms:   DefaultLegalTerms(),
		TermOrder:    TermOrderInsertion,
	}
}
