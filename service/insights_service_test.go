package service

import (
	"context"
	"strings"
	"testing"

	"legalease-backend/analysis"
	"legalease-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clause(riskType string, start, end int, confidence float64) analysis.RiskyClause {
	return analysis.RiskyClause{RiskType: riskType, StartIndex: start, EndIndex: end, Confidence: confidence}
}

func TestRiskLabel(t *testing.T) {
	assert.Equal(t, "Auto Renewal", RiskLabel("auto_renewal"))
	assert.Equal(t, "Ip Rights", RiskLabel("ip_rights"))
	assert.Equal(t, "Jurisdiction", RiskLabel("jurisdiction"))
}

func TestInsightsService_Distribution(t *testing.T) {
	s := NewInsightsService(nil)

	got := s.Distribution([]analysis.RiskyClause{
		clause("jurisdiction", 0, 1, 0.7),
		clause("auto_renewal", 0, 1, 0.7),
		clause("auto_renewal", 0, 1, 0.7),
		clause("indemnification", 0, 1, 0.7),
	})

	assert.Equal(t, []RiskCount{
		{RiskType: "auto_renewal", Label: "Auto Renewal", Count: 2},
		{RiskType: "jurisdiction", Label: "Jurisdiction", Count: 1},
		{RiskType: "indemnification", Label: "Indemnification", Count: 1},
	}, got)
	assert.NotNil(t, s.Distribution(nil))
}

func TestHighlightLevel(t *testing.T) {
	assert.Equal(t, HighlightHigh, HighlightLevel(0.9))
	assert.Equal(t, HighlightMedium, HighlightLevel(0.7))
	assert.Equal(t, HighlightMedium, HighlightLevel(0.5))
	assert.Equal(t, HighlightLow, HighlightLevel(0.4))
}

func TestInsightsService_Highlights(t *testing.T) {
	s := NewInsightsService(nil)
	text := "Intro.\n\nRenews automatically.\n\nOutro."
	start := strings.Index(text, "Renews")
	end := start + len("Renews automatically.")

	segments := s.Highlights(text, []analysis.RiskyClause{clause("auto_renewal", start, end, 0.9)})

	require.Len(t, segments, 3)
	assert.Equal(t, Segment{Text: "Intro.\n\n"}, segments[0])
	assert.Equal(t, Segment{
		Text:       "Renews automatically.",
		Risky:      true,
		RiskType:   "auto_renewal",
		Label:      "Auto Renewal",
		Level:      HighlightHigh,
		Confidence: 0.9,
	}, segments[1])
	assert.Equal(t, Segment{Text: "\n\nOutro."}, segments[2])

	var rebuilt strings.Builder
	for _, seg := range segments {
		rebuilt.WriteString(seg.Text)
	}
	assert.Equal(t, text, rebuilt.String())
}

func TestInsightsService_HighlightsOrdersAndSkipsOverlaps(t *testing.T) {
	s := NewInsightsService(nil)
	text := "aaaa bbbb cccc"

	segments := s.Highlights(text, []analysis.RiskyClause{
		clause("b", 5, 9, 0.5),
		clause("a", 0, 4, 0.5),
		clause("overlap", 2, 6, 0.5),
		clause("past_end", 10, 99, 0.3),
	})

	require.Len(t, segments, 5)
	assert.Equal(t, "a", segments[0].RiskType)
	assert.Equal(t, " ", segments[1].Text)
	assert.Equal(t, "b", segments[2].RiskType)
	assert.Equal(t, "cccc", segments[4].Text)
	assert.Equal(t, HighlightLow, segments[4].Level)

	assert.Equal(t, []Segment{{Text: "plain"}}, s.Highlights("plain", nil))
	assert.Empty(t, s.Highlights("", nil))
}

func record(name string, score float64, level analysis.RiskLevel, meta models.Metadata, clauses ...analysis.RiskyClause) *models.DocumentRecord {
	return &models.DocumentRecord{
		ID:           uuid.New(),
		Filename:     name,
		FileType:     ".txt",
		RiskScore:    score,
		RiskLevel:    level,
		Metadata:     meta,
		RiskyClauses: clauses,
	}
}

func TestInsightsService_Compare(t *testing.T) {
	s := NewInsightsService(nil)
	a := record("a.txt", 0.6, analysis.RiskHigh, models.Metadata{Length: 1000, NumSentences: 10, NumClauses: 20},
		clause("auto_renewal", 0, 1, 0.7), clause("auto_renewal", 2, 3, 0.7), clause("jurisdiction", 4, 5, 0.7))
	b := record("b.txt", 0.2, analysis.RiskLow, models.Metadata{Length: 500, NumSentences: 20, NumClauses: 10},
		clause("indemnification", 0, 1, 0.7))

	cmp := s.compare([]*models.DocumentRecord{a, b})

	require.Len(t, cmp.Documents, 2)
	assert.Equal(t, DocumentMetrics{
		ID: a.ID, Filename: "a.txt", RiskScore: 0.6, RiskLevel: analysis.RiskHigh,
		Length: 1000, Sentences: 10, Clauses: 20, RiskyClauses: 3,
	}, cmp.Documents[0])

	require.Len(t, cmp.Profiles, 2)
	assert.InDelta(t, 1.0, cmp.Profiles[0].Length, 1e-9)
	assert.InDelta(t, 0.5, cmp.Profiles[1].Length, 1e-9)
	// 1000/10/50 caps at 1, 500/20/50
	assert.InDelta(t, 1.0, cmp.Profiles[0].Complexity, 1e-9)
	assert.InDelta(t, 0.5, cmp.Profiles[1].Complexity, 1e-9)
	assert.InDelta(t, 0.5, cmp.Profiles[1].Clauses, 1e-9)
	assert.InDelta(t, 0.5, cmp.Profiles[1].ReadingTime, 1e-9)

	assert.Equal(t, []RiskMatrixRow{
		{RiskType: "auto_renewal", Label: "Auto Renewal", Counts: []int{2, 0}},
		{RiskType: "indemnification", Label: "Indemnification", Counts: []int{0, 1}},
		{RiskType: "jurisdiction", Label: "Jurisdiction", Counts: []int{1, 0}},
	}, cmp.RiskMatrix)
}

func TestInsightsService_CompareNeedsTwoDocuments(t *testing.T) {
	documents := newTestDocumentService(t)
	s := NewInsightsService(documents)
	ctx := context.Background()
	res, err := documents.AnalyzeText(ctx, testSession, "lease.txt", leaseText)
	require.NoError(t, err)
	id := res.Document.ID

	_, err = s.Compare(ctx, testSession, []uuid.UUID{id})
	assert.ErrorIs(t, err, ErrNotEnoughDocuments)

	_, err = s.Compare(ctx, testSession, []uuid.UUID{id, id})
	assert.ErrorIs(t, err, ErrNotEnoughDocuments)

	_, err = s.Compare(ctx, testSession, []uuid.UUID{id, uuid.New()})
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestInsightsService_Overview(t *testing.T) {
	s := NewInsightsService(nil)
	docs := []*models.DocumentRecord{
		record("a.pdf", 0.6, analysis.RiskHigh, models.Metadata{}, clause("auto_renewal", 0, 1, 0.7)),
		record("b.txt", 0.2, analysis.RiskLow, models.Metadata{}, clause("auto_renewal", 0, 1, 0.7), clause("jurisdiction", 0, 1, 0.7)),
	}
	docs[0].FileType = ".pdf"

	got := s.overview(docs)

	assert.Equal(t, 2, got.TotalDocuments)
	assert.InDelta(t, 0.4, got.AverageRiskScore, 1e-9)
	assert.Equal(t, map[analysis.RiskLevel]int{analysis.RiskLow: 1, analysis.RiskMedium: 0, analysis.RiskHigh: 1}, got.RiskLevels)
	assert.Equal(t, map[string]int{"PDF": 1, "TXT": 1}, got.FileTypes)
	assert.Equal(t, 3, got.TotalRiskyClauses)
	require.Len(t, got.CommonRisks, 2)
	assert.Equal(t, "auto_renewal", got.CommonRisks[0].RiskType)
	assert.Equal(t, 2, got.CommonRisks[0].Count)

	empty := s.overview(nil)
	assert.Equal(t, 0, empty.TotalDocuments)
	assert.Equal(t, 0.0, empty.AverageRiskScore)
	assert.NotNil(t, empty.CommonRisks)
}
