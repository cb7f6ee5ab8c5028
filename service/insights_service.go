package service

import (
	"context"
	"errors"
	"path/filepath"
	"slices"
	"strings"

	"legalease-backend/analysis"
	"legalease-backend/models"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrNotEnoughDocuments is returned when a comparison names fewer than two documents
var ErrNotEnoughDocuments = errors.New("comparison needs at least two documents")

// minCompareDocuments is the smallest comparison
const minCompareDocuments = 2

// wordsPerMinute drives the reading time estimate of a comparison
const wordsPerMinute = 250

// complexityWordsPerSentence is the average sentence length that maps to full complexity
const complexityWordsPerSentence = 50

// Highlight levels derived from clause confidence
const (
	HighlightHigh   = "high"
	HighlightMedium = "medium"
	HighlightLow    = "low"
)

// InsightsService derives dashboard views from analyzed documents
type InsightsService struct {
	documents *DocumentService
}

// NewInsightsService creates a new insights service
func NewInsightsService(documents *DocumentService) *InsightsService {
	return &InsightsService{documents: documents}
}

// RiskLabel turns a risk type into its display label, "auto_renewal" becomes "Auto Renewal"
func RiskLabel(riskType string) string {
	// a Caser keeps state between calls and cannot be shared
	return cases.Title(language.English).String(strings.ReplaceAll(riskType, "_", " "))
}

// RiskCount is the number of clauses of one risk type
type RiskCount struct {
	RiskType string `json:"risk_type"`
	Label    string `json:"label"`
	Count    int    `json:"count"`
}

// Distribution counts clauses per risk type, most frequent first.
// Ties keep the order in which the types first appear.
func (s *InsightsService) Distribution(clauses []analysis.RiskyClause) []RiskCount {
	counts := make([]RiskCount, 0)
	index := make(map[string]int)
	for _, clause := range clauses {
		riskType := clause.RiskType
		if riskType == "" {
			riskType = "unknown"
		}
		i, ok := index[riskType]
		if !ok {
			i = len(counts)
			index[riskType] = i
			counts = append(counts, RiskCount{RiskType: riskType, Label: RiskLabel(riskType)})
		}
		counts[i].Count++
	}
	slices.SortStableFunc(counts, func(a, b RiskCount) int {
		return b.Count - a.Count
	})
	return counts
}

// DocumentDistribution is Distribution over a session document
func (s *InsightsService) DocumentDistribution(ctx context.Context, sessionID string, id uuid.UUID) ([]RiskCount, error) {
	doc, err := s.documents.Get(ctx, sessionID, id)
	if err != nil {
		return nil, err
	}
	return s.Distribution(doc.RiskyClauses), nil
}

// Segment is a run of document text, flagged when it is a risky clause
type Segment struct {
	Text       string  `json:"text"`
	Risky      bool    `json:"risky"`
	RiskType   string  `json:"risk_type,omitempty"`
	Label      string  `json:"label,omitempty"`
	Level      string  `json:"level,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
}

// HighlightLevel maps a clause confidence onto a display level
func HighlightLevel(confidence float64) string {
	switch {
	case confidence > 0.7:
		return HighlightHigh
	case confidence > 0.4:
		return HighlightMedium
	default:
		return HighlightLow
	}
}

// Highlights splits text into plain and flagged segments. Clauses are taken in
// ascending start order; a clause overlapping an earlier one is skipped.
func (s *InsightsService) Highlights(text string, clauses []analysis.RiskyClause) []Segment {
	sorted := slices.Clone(clauses)
	slices.SortStableFunc(sorted, func(a, b analysis.RiskyClause) int {
		return a.StartIndex - b.StartIndex
	})

	segments := make([]Segment, 0, 2*len(sorted)+1)
	last := 0
	for _, clause := range sorted {
		start, end := clause.StartIndex, min(clause.EndIndex, len(text))
		if start < last || start >= end {
			continue
		}
		if start > last {
			segments = append(segments, Segment{Text: text[last:start]})
		}
		segments = append(segments, Segment{
			Text:       text[start:end],
			Risky:      true,
			RiskType:   clause.RiskType,
			Label:      RiskLabel(clause.RiskType),
			Level:      HighlightLevel(clause.Confidence),
			Confidence: clause.Confidence,
		})
		last = end
	}
	if last < len(text) {
		segments = append(segments, Segment{Text: text[last:]})
	}
	return segments
}

// DocumentHighlights is Highlights over a session document's processed text
func (s *InsightsService) DocumentHighlights(ctx context.Context, sessionID string, id uuid.UUID) ([]Segment, error) {
	doc, err := s.documents.Get(ctx, sessionID, id)
	if err != nil {
		return nil, err
	}
	return s.Highlights(doc.ProcessedText, doc.RiskyClauses), nil
}

// DocumentMetrics is one row of a comparison
type DocumentMetrics struct {
	ID           uuid.UUID          `json:"id"`
	Filename     string             `json:"filename"`
	RiskScore    float64            `json:"risk_score"`
	RiskLevel    analysis.RiskLevel `json:"risk_level"`
	Length       int                `json:"length"`
	Sentences    int                `json:"sentences"`
	Clauses      int                `json:"clauses"`
	RiskyClauses int                `json:"risky_clauses"`
}

// DocumentProfile holds the normalized dimensions of a document, each in [0,1]
type DocumentProfile struct {
	ID          uuid.UUID `json:"id"`
	Filename    string    `json:"filename"`
	RiskScore   float64   `json:"risk_score"`
	Length      float64   `json:"length"`
	Complexity  float64   `json:"complexity"`
	Clauses     float64   `json:"clauses"`
	ReadingTime float64   `json:"reading_time"`
}

// RiskMatrixRow counts one risk type across the compared documents
type RiskMatrixRow struct {
	RiskType string `json:"risk_type"`
	Label    string `json:"label"`
	Counts   []int  `json:"counts"`
}

// Comparison puts several documents side by side
type Comparison struct {
	Documents  []DocumentMetrics `json:"documents"`
	Profiles   []DocumentProfile `json:"profiles"`
	RiskMatrix []RiskMatrixRow   `json:"risk_matrix"`
}

// Compare builds a comparison of session documents in the requested order
func (s *InsightsService) Compare(ctx context.Context, sessionID string, ids []uuid.UUID) (*Comparison, error) {
	if len(ids) < minCompareDocuments {
		return nil, ErrNotEnoughDocuments
	}

	docs := make([]*models.DocumentRecord, 0, len(ids))
	seen := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		doc, err := s.documents.Get(ctx, sessionID, id)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	if len(docs) < minCompareDocuments {
		return nil, ErrNotEnoughDocuments
	}

	return s.compare(docs), nil
}

func (s *InsightsService) compare(docs []*models.DocumentRecord) *Comparison {
	out := &Comparison{
		Documents: make([]DocumentMetrics, 0, len(docs)),
		Profiles:  make([]DocumentProfile, 0, len(docs)),
	}

	maxLength, maxClauses, maxReading := 0, 0, 0.0
	for _, doc := range docs {
		maxLength = max(maxLength, doc.Metadata.Length)
		maxClauses = max(maxClauses, doc.Metadata.NumClauses)
		maxReading = max(maxReading, readingMinutes(doc))
	}

	for _, doc := range docs {
		out.Documents = append(out.Documents, DocumentMetrics{
			ID:           doc.ID,
			Filename:     doc.Filename,
			RiskScore:    doc.RiskScore,
			RiskLevel:    doc.RiskLevel,
			Length:       doc.Metadata.Length,
			Sentences:    doc.Metadata.NumSentences,
			Clauses:      doc.Metadata.NumClauses,
			RiskyClauses: len(doc.RiskyClauses),
		})
		out.Profiles = append(out.Profiles, DocumentProfile{
			ID:          doc.ID,
			Filename:    doc.Filename,
			RiskScore:   doc.RiskScore,
			Length:      ratio(float64(doc.Metadata.Length), float64(maxLength)),
			Complexity:  complexity(doc.Metadata),
			Clauses:     ratio(float64(doc.Metadata.NumClauses), float64(maxClauses)),
			ReadingTime: ratio(readingMinutes(doc), maxReading),
		})
	}

	counts := make(map[string][]int)
	for i, doc := range docs {
		for _, clause := range doc.RiskyClauses {
			row, ok := counts[clause.RiskType]
			if !ok {
				row = make([]int, len(docs))
				counts[clause.RiskType] = row
			}
			row[i]++
		}
	}
	out.RiskMatrix = make([]RiskMatrixRow, 0, len(counts))
	for riskType, row := range counts {
		out.RiskMatrix = append(out.RiskMatrix, RiskMatrixRow{
			RiskType: riskType,
			Label:    RiskLabel(riskType),
			Counts:   row,
		})
	}
	slices.SortFunc(out.RiskMatrix, func(a, b RiskMatrixRow) int {
		return strings.Compare(a.RiskType, b.RiskType)
	})

	return out
}

func ratio(v, maxV float64) float64 {
	if maxV <= 0 {
		return 0
	}
	return v / maxV
}

// complexity is the average sentence length against a 50 character ceiling
func complexity(m models.Metadata) float64 {
	if m.NumSentences == 0 {
		return 0
	}
	return min(1.0, float64(m.Length)/float64(m.NumSentences)/complexityWordsPerSentence)
}

func readingMinutes(doc *models.DocumentRecord) float64 {
	return float64(doc.Metadata.Length) / wordsPerMinute
}

// Overview summarizes every document of a session
type Overview struct {
	TotalDocuments    int                        `json:"total_documents"`
	AverageRiskScore  float64                    `json:"average_risk_score"`
	RiskLevels        map[analysis.RiskLevel]int `json:"risk_levels"`
	FileTypes         map[string]int             `json:"file_types"`
	TotalRiskyClauses int                        `json:"total_risky_clauses"`
	CommonRisks       []RiskCount                `json:"common_risks"`
}

// Overview aggregates the session's documents
func (s *InsightsService) Overview(ctx context.Context, sessionID string) (*Overview, error) {
	docs, err := s.documents.ListRecords(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.overview(docs), nil
}

func (s *InsightsService) overview(docs []*models.DocumentRecord) *Overview {
	out := &Overview{
		TotalDocuments: len(docs),
		RiskLevels: map[analysis.RiskLevel]int{
			analysis.RiskLow:    0,
			analysis.RiskMedium: 0,
			analysis.RiskHigh:   0,
		},
		FileTypes:   make(map[string]int),
		CommonRisks: make([]RiskCount, 0),
	}
	if len(docs) == 0 {
		return out
	}

	total := 0.0
	var clauses []analysis.RiskyClause
	for _, doc := range docs {
		total += doc.RiskScore
		out.RiskLevels[doc.RiskLevel]++
		fileType := strings.ToUpper(strings.TrimPrefix(doc.FileType, "."))
		if fileType == "" {
			fileType = strings.ToUpper(strings.TrimPrefix(filepath.Ext(doc.Filename), "."))
		}
		out.FileTypes[fileType]++
		clauses = append(clauses, doc.RiskyClauses...)
	}
	out.AverageRiskScore = total / float64(len(docs))
	out.TotalRiskyClauses = len(clauses)
	out.CommonRisks = s.Distribution(clauses)
	return out
}
