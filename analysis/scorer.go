package analysis

// scoreDamping is added to the clause count before normalizing so that one or
// two clauses cannot saturate the score
const scoreDamping = 2

// Scorer aggregates risky clauses into a score and a level
type Scorer struct {
	weights    RiskWeightTable
	thresholds Thresholds
}

// NewScorer creates a scorer using the catalog's weights and thresholds.
// A nil catalog falls back to the defaults.
func NewScorer(catalog *Catalog) *Scorer {
	s := &Scorer{
		weights:    DefaultRiskWeights(),
		thresholds: DefaultThresholds(),
	}
	if catalog == nil {
		return s
	}
	if catalog.RiskWeights != nil {
		s.weights = catalog.RiskWeights
	}
	if catalog.Thresholds != (Thresholds{}) {
		s.thresholds = catalog.Thresholds
	}
	return s
}

// Score returns the normalized risk score in [0,1] and its level
func (s *Scorer) Score(clauses []RiskyClause) (float64, RiskLevel) {
	if len(clauses) == 0 {
		return 0.0, RiskLow
	}

	total := 0.0
	for _, clause := range clauses {
		total += s.weights.Weight(clause.RiskType) * clause.Confidence
	}

	score := min(1.0, total/float64(len(clauses)+scoreDamping))
	return score, s.Level(score)
}

// Level classifies a score against the configured thresholds
func (s *Scorer) Level(score float64) RiskLevel {
	switch {
	case score < s.thresholds.Low:
		return RiskLow
	case score < s.thresholds.Medium:
		return RiskMedium
	default:
		return RiskHigh
	}
}

var recommendations = map[RiskLevel][]string{
	RiskLow: {
		"Review standard terms for clarity and understanding.",
		"Ensure all parties and dates are correctly identified.",
		"Verify that contract meets your business needs.",
	},
	RiskMedium: {
		"Consider negotiating terms with higher risk weights.",
		"Have a legal professional review the contract before signing.",
		"Document any verbal agreements or clarifications in writing.",
	},
	RiskHigh: {
		"Consult with legal counsel before proceeding.",
		"Negotiate to modify or remove high-risk clauses.",
		"Consider alternative options or contracts if available.",
	},
}

// Recommendations returns the advisory texts for a risk level.
// Unknown levels get the high-risk advice.
func Recommendations(level RiskLevel) []string {
	advice, ok := recommendations[level]
	if !ok {
		advice = recommendations[RiskHigh]
	}
	out := make([]string, len(advice))
	copy(out, advice)
	return out
}
