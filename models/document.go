package models

import (
	"time"

	"legalease-backend/analysis"

	"github.com/google/uuid"
)

// Metadata holds simple structural counts over a document's processed text
type Metadata struct {
	Length       int `json:"length"`
	NumSentences int `json:"num_sentences"`
	NumClauses   int `json:"num_clauses"`
}

// Translation is a document's text and summary rendered in another language
type Translation struct {
	Text    string `json:"text"`
	Summary string `json:"summary"`
}

// DocumentRecord represents an analyzed document held in a session
type DocumentRecord struct {
	ID             uuid.UUID              `json:"id"`
	Filename       string                 `json:"filename"`
	FileType       string                 `json:"file_type"`
	FileSize       int64                  `json:"file_size"`
	Checksum       string                 `json:"checksum"`
	RawText        string                 `json:"raw_text"`
	ProcessedText  string                 `json:"processed_text"`
	Metadata       Metadata               `json:"metadata"`
	Summary        string                 `json:"summary"`
	RiskyClauses   []analysis.RiskyClause `json:"risky_clauses"`
	RiskScore      float64                `json:"risk_score"`
	RiskLevel      analysis.RiskLevel     `json:"risk_level"`
	SimplifiedText string                 `json:"simplified_text"`
	Translations   map[string]Translation `json:"translations"`
	CreatedAt      time.Time              `json:"created_at"`
}

// DocumentSummary is the list view of a DocumentRecord
type DocumentSummary struct {
	ID           uuid.UUID          `json:"id"`
	Filename     string             `json:"filename"`
	FileType     string             `json:"file_type"`
	RiskScore    float64            `json:"risk_score"`
	RiskLevel    analysis.RiskLevel `json:"risk_level"`
	RiskyClauses int                `json:"risky_clauses"`
	CreatedAt    time.Time          `json:"created_at"`
}

// Brief returns the list view of the record
func (d *DocumentRecord) Brief() DocumentSummary {
	return DocumentSummary{
		ID:           d.ID,
		Filename:     d.Filename,
		FileType:     d.FileType,
		RiskScore:    d.RiskScore,
		RiskLevel:    d.RiskLevel,
		RiskyClauses: len(d.RiskyClauses),
		CreatedAt:    d.CreatedAt,
	}
}
