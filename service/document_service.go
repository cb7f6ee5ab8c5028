package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"legalease-backend/analysis"
	"legalease-backend/document"
	"legalease-backend/metrics"
	"legalease-backend/models"
	"legalease-backend/repository"
	"legalease-backend/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultMaxFileSize = 10 * 1024 * 1024

var (
	ErrNotPlainText        = errors.New("document is not plain text")
	ErrEmptyDocument       = errors.New("document contains no text")
	ErrFileTooLarge        = errors.New("file exceeds the maximum size")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrExtractionFailed    = errors.New("failed to extract document text")
	ErrStagingFailed       = errors.New("failed to stage uploaded file")
	ErrDocumentNotFound    = errors.New("document not found")
	ErrMissingSession      = errors.New("session id is required")
)

// CatalogSource provides the analysis catalog
type CatalogSource interface {
	Catalog(ctx context.Context) *analysis.Catalog
}

// DocumentService runs the analysis workflow and keeps results in the session
type DocumentService struct {
	catalogs    CatalogSource
	sessions    *repository.SessionRepository
	storage     storage.Storage
	logger      *zap.Logger
	maxFileSize int64

	mu       sync.Mutex
	pipeline *pipeline
}

// DocumentServiceOption is a functional option for DocumentService
type DocumentServiceOption func(*DocumentService)

// WithCatalogSource sets where the analysis catalog comes from
func WithCatalogSource(src CatalogSource) DocumentServiceOption {
	return func(s *DocumentService) {
		s.catalogs = src
	}
}

// WithSessionRepository sets the session repository
func WithSessionRepository(repo *repository.SessionRepository) DocumentServiceOption {
	return func(s *DocumentService) {
		s.sessions = repo
	}
}

// WithStorage sets the storage used to stage uploads
func WithStorage(st storage.Storage) DocumentServiceOption {
	return func(s *DocumentService) {
		s.storage = st
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) DocumentServiceOption {
	return func(s *DocumentService) {
		s.logger = logger
	}
}

// WithMaxFileSize sets the upload limit in bytes
func WithMaxFileSize(n int64) DocumentServiceOption {
	return func(s *DocumentService) {
		s.maxFileSize = n
	}
}

// NewDocumentService creates a new document service
func NewDocumentService(opts ...DocumentServiceOption) *DocumentService {
	s := &DocumentService{
		logger:      zap.NewNop(),
		maxFileSize: defaultMaxFileSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// pipeline holds the analysis components built from one catalog
type pipeline struct {
	catalog    *analysis.Catalog
	detector   *analysis.Detector
	scorer     *analysis.Scorer
	summarizer *analysis.Summarizer
	simplifier *analysis.Simplifier
}

func (s *DocumentService) components(ctx context.Context) *pipeline {
	catalog := analysis.DefaultCatalog()
	if s.catalogs != nil {
		catalog = s.catalogs.Catalog(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pipeline == nil || s.pipeline.catalog != catalog {
		s.pipeline = &pipeline{
			catalog:    catalog,
			detector:   analysis.NewDetector(catalog),
			scorer:     analysis.NewScorer(catalog),
			summarizer: analysis.NewSummarizer(),
			simplifier: analysis.NewSimplifier(catalog),
		}
	}
	return s.pipeline
}

// UploadRequest represents an uploaded file to analyze
type UploadRequest struct {
	SessionID string
	Filename  string
	Size      int64
	Content   io.Reader
}

// AnalyzeResult represents the outcome of an analysis request
type AnalyzeResult struct {
	Document  *models.DocumentRecord
	Duplicate bool
}

// MaxFileSize returns the upload limit in bytes
func (s *DocumentService) MaxFileSize() int64 {
	return s.maxFileSize
}

// Upload validates, stages, extracts and analyzes an uploaded file.
// Uploading the same bytes twice in a session returns the first record.
func (s *DocumentService) Upload(ctx context.Context, req UploadRequest) (*AnalyzeResult, error) {
	if req.SessionID == "" {
		return nil, ErrMissingSession
	}
	if !document.IsSupported(req.Filename) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFileType, document.FileType(req.Filename))
	}
	if req.Size > s.maxFileSize {
		return nil, ErrFileTooLarge
	}

	data, err := io.ReadAll(io.LimitReader(req.Content, s.maxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if int64(len(data)) > s.maxFileSize {
		return nil, ErrFileTooLarge
	}

	checksum := document.Checksum(data)
	if existing, err := s.sessions.FindByChecksum(ctx, req.SessionID, checksum); err == nil {
		s.logger.Info("Duplicate upload", zap.String("document_id", existing.ID.String()))
		return &AnalyzeResult{Document: existing, Duplicate: true}, nil
	}

	id := uuid.New()
	staged, err := s.stage(ctx, id, req.Filename, data)
	if err != nil {
		return nil, err
	}

	doc, err := s.process(ctx, id, req.Filename, staged)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.AddDocument(ctx, req.SessionID, doc); err != nil {
		return nil, fmt.Errorf("failed to store document: %w", err)
	}
	return &AnalyzeResult{Document: doc}, nil
}

// stage writes the upload to storage and reads it back for extraction.
// The staged copy is always removed.
func (s *DocumentService) stage(ctx context.Context, id uuid.UUID, filename string, data []byte) ([]byte, error) {
	if s.storage == nil {
		return data, nil
	}

	key := storage.UploadKey(id, filename)
	if err := s.storage.Put(ctx, key, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStagingFailed, err)
	}
	defer func() {
		if err := s.storage.Delete(context.WithoutCancel(ctx), key); err != nil {
			s.logger.Warn("Failed to remove staged upload", zap.String("key", key), zap.Error(err))
		}
	}()

	rc, err := s.storage.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStagingFailed, err)
	}
	defer rc.Close()

	staged, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStagingFailed, err)
	}
	return staged, nil
}

// AnalyzeText analyzes pasted text and stores it in the session
func (s *DocumentService) AnalyzeText(ctx context.Context, sessionID, filename, text string) (*AnalyzeResult, error) {
	if sessionID == "" {
		return nil, ErrMissingSession
	}
	if filename == "" {
		filename = "pasted.txt"
	}
	if int64(len(text)) > s.maxFileSize {
		return nil, ErrFileTooLarge
	}

	data := []byte(text)
	checksum := document.Checksum(data)
	if existing, err := s.sessions.FindByChecksum(ctx, sessionID, checksum); err == nil {
		return &AnalyzeResult{Document: existing, Duplicate: true}, nil
	}

	doc, err := s.buildRecord(ctx, uuid.New(), filename, data, text)
	if err != nil {
		return nil, err
	}
	doc.FileType = document.ExtTXT
	if err := s.sessions.AddDocument(ctx, sessionID, doc); err != nil {
		return nil, fmt.Errorf("failed to store document: %w", err)
	}
	return &AnalyzeResult{Document: doc}, nil
}

// Process extracts and analyzes a file without storing it anywhere
func (s *DocumentService) Process(ctx context.Context, filename string, data []byte) (*models.DocumentRecord, error) {
	if !document.IsSupported(filename) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFileType, document.FileType(filename))
	}
	return s.process(ctx, uuid.New(), filename, data)
}

func (s *DocumentService) process(ctx context.Context, id uuid.UUID, filename string, data []byte) (*models.DocumentRecord, error) {
	raw, err := document.Extract(filename, data)
	if err != nil {
		if errors.Is(err, document.ErrUnsupportedFileType) {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedFileType, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}
	return s.buildRecord(ctx, id, filename, data, raw)
}

func (s *DocumentService) buildRecord(ctx context.Context, id uuid.UUID, filename string, data []byte, raw string) (*models.DocumentRecord, error) {
	if !document.IsPlainText(raw) {
		return nil, ErrNotPlainText
	}
	processed := document.Preprocess(raw)
	if processed == "" {
		return nil, ErrEmptyDocument
	}

	start := time.Now()
	doc := &models.DocumentRecord{
		ID:            id,
		Filename:      filepath.Base(filename),
		FileType:      document.FileType(filename),
		FileSize:      int64(len(data)),
		Checksum:      document.Checksum(data),
		RawText:       raw,
		ProcessedText: processed,
		Translations:  make(map[string]models.Translation),
		CreatedAt:     start.UTC(),
	}

	p := s.components(ctx)
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		doc.Metadata = document.ExtractMetadata(processed)
		return nil
	})
	g.Go(func() error {
		doc.Summary = p.summarizer.Summarize(processed)
		return nil
	})
	g.Go(func() error {
		doc.RiskyClauses = p.detector.Detect(processed)
		doc.RiskScore, doc.RiskLevel = p.scorer.Score(doc.RiskyClauses)
		return nil
	})
	g.Go(func() error {
		doc.SimplifiedText = p.simplifier.Simplify(processed)
		return nil
	})
	_ = g.Wait()

	elapsed := time.Since(start)
	metrics.AnalysisDuration.Observe(elapsed.Seconds())
	metrics.DocumentsAnalyzed.WithLabelValues(string(doc.RiskLevel)).Inc()
	s.logger.Info("Document analyzed",
		zap.String("document_id", doc.ID.String()),
		zap.String("file_type", doc.FileType),
		zap.Int("risky_clauses", len(doc.RiskyClauses)),
		zap.Float64("risk_score", doc.RiskScore),
		zap.Duration("elapsed", elapsed))

	return doc, nil
}

// RiskReport is the stateless risk analysis of a text
type RiskReport struct {
	RiskyClauses    []analysis.RiskyClause `json:"risky_clauses"`
	RiskScore       float64                `json:"risk_score"`
	RiskLevel       analysis.RiskLevel     `json:"risk_level"`
	Recommendations []string               `json:"recommendations"`
}

// Summarize runs the extractive summarizer on text
func (s *DocumentService) Summarize(ctx context.Context, text string) (string, error) {
	if !document.IsPlainText(text) {
		return "", ErrNotPlainText
	}
	return s.components(ctx).summarizer.Summarize(text), nil
}

// Simplify runs the jargon simplifier on text
func (s *DocumentService) Simplify(ctx context.Context, text string) (string, error) {
	if !document.IsPlainText(text) {
		return "", ErrNotPlainText
	}
	return s.components(ctx).simplifier.Simplify(text), nil
}

// DetectRisks runs risk detection and scoring on text
func (s *DocumentService) DetectRisks(ctx context.Context, text string) (*RiskReport, error) {
	if !document.IsPlainText(text) {
		return nil, ErrNotPlainText
	}
	p := s.components(ctx)
	clauses := p.detector.Detect(text)
	score, level := p.scorer.Score(clauses)
	return &RiskReport{
		RiskyClauses:    clauses,
		RiskScore:       score,
		RiskLevel:       level,
		Recommendations: analysis.Recommendations(level),
	}, nil
}

// Get retrieves a document from the session
func (s *DocumentService) Get(ctx context.Context, sessionID string, id uuid.UUID) (*models.DocumentRecord, error) {
	doc, err := s.sessions.GetDocument(ctx, sessionID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}
	return doc, nil
}

// DocumentList is the session's documents and the active one
type DocumentList struct {
	Documents        []models.DocumentSummary `json:"documents"`
	ActiveDocumentID *uuid.UUID               `json:"active_document_id,omitempty"`
}

// List returns the documents of a session
func (s *DocumentService) List(ctx context.Context, sessionID string) (*DocumentList, error) {
	docs, err := s.sessions.ListDocuments(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	list := &DocumentList{Documents: make([]models.DocumentSummary, 0, len(docs))}
	for _, doc := range docs {
		list.Documents = append(list.Documents, doc.Brief())
	}
	if active, err := s.sessions.ActiveDocumentID(ctx, sessionID); err == nil {
		list.ActiveDocumentID = active
	}
	return list, nil
}

// ListRecords returns the full records of a session
func (s *DocumentService) ListRecords(ctx context.Context, sessionID string) ([]*models.DocumentRecord, error) {
	return s.sessions.ListDocuments(ctx, sessionID)
}

// Delete removes a document from the session
func (s *DocumentService) Delete(ctx context.Context, sessionID string, id uuid.UUID) error {
	if err := s.sessions.DeleteDocument(ctx, sessionID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrDocumentNotFound
		}
		return err
	}
	return nil
}

// Recommendations returns the advice for a document's risk level
func (s *DocumentService) Recommendations(ctx context.Context, sessionID string, id uuid.UUID) (analysis.RiskLevel, []string, error) {
	doc, err := s.Get(ctx, sessionID, id)
	if err != nil {
		return "", nil, err
	}
	return doc.RiskLevel, analysis.Recommendations(doc.RiskLevel), nil
}

// SaveTranslation stores a translation on a session document
func (s *DocumentService) SaveTranslation(ctx context.Context, sessionID string, id uuid.UUID, lang string, tr models.Translation) (*models.DocumentRecord, error) {
	doc, err := s.Get(ctx, sessionID, id)
	if err != nil {
		return nil, err
	}
	if doc.Translations == nil {
		doc.Translations = make(map[string]models.Translation)
	}
	doc.Translations[strings.ToLower(lang)] = tr

	if err := s.sessions.UpdateDocument(ctx, sessionID, doc); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}
	return doc, nil
}

// ClearSession drops every document and the chat history of a session
func (s *DocumentService) ClearSession(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return ErrMissingSession
	}
	return s.sessions.Clear(ctx, sessionID)
}
