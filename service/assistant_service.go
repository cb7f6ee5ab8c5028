package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"legalease-backend/llm"
	"legalease-backend/metrics"
	"legalease-backend/models"
	"legalease-backend/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	ErrEmptyQuery          = errors.New("query must not be empty")
	ErrEmptyTopic          = errors.New("topic must not be empty")
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrJobCreationFailed   = errors.New("failed to create generation job")
	ErrJobNotFound         = errors.New("generation job not found")
)

// Generation parameters per operation
var (
	chatParams  = llm.Params{Temperature: 0.7, MaxTokens: 1024}
	guideParams = llm.Params{Temperature: 0.4, MaxTokens: 8000}
	textParams  = llm.Params{Temperature: 0.3, MaxTokens: 1024}
)

// chatHistoryWindow is how many past messages accompany a chat query
const chatHistoryWindow = 10

// aiSummaryWords is the target length of an AI summary
const aiSummaryWords = 500

// Guide job step names
const (
	stepDraftingGuide = "Drafting Guide"
	stepFinalizing    = "Finalizing Guide"
)

// Language is a translation target
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// SupportedLanguages lists the translation targets in display order
var SupportedLanguages = []Language{
	{Code: "en", Name: "English"},
	{Code: "hi", Name: "Hindi"},
	{Code: "mr", Name: "Marathi"},
	{Code: "ta", Name: "Tamil"},
	{Code: "te", Name: "Telugu"},
	{Code: "kn", Name: "Kannada"},
	{Code: "ml", Name: "Malayalam"},
	{Code: "bn", Name: "Bengali"},
	{Code: "gu", Name: "Gujarati"},
	{Code: "pa", Name: "Punjabi"},
}

// LanguageName returns the display name of a language code
func LanguageName(code string) (string, bool) {
	code = strings.ToLower(code)
	for _, lang := range SupportedLanguages {
		if lang.Code == code {
			return lang.Name, true
		}
	}
	return "", false
}

// AssistantService handles the language model backed features
type AssistantService struct {
	client    llm.Client
	documents *DocumentService
	sessions  *repository.SessionRepository
	jobRepo   *repository.GenerationJobRepository
	logger    *zap.Logger
}

// AssistantServiceOption is a functional option for AssistantService
type AssistantServiceOption func(*AssistantService)

// AssistantWithClient sets the language model client
func AssistantWithClient(client llm.Client) AssistantServiceOption {
	return func(s *AssistantService) {
		s.client = client
	}
}

// AssistantWithDocumentService sets the document service
func AssistantWithDocumentService(documents *DocumentService) AssistantServiceOption {
	return func(s *AssistantService) {
		s.documents = documents
	}
}

// AssistantWithSessionRepository sets the session repository
func AssistantWithSessionRepository(repo *repository.SessionRepository) AssistantServiceOption {
	return func(s *AssistantService) {
		s.sessions = repo
	}
}

// AssistantWithGenerationJobRepository sets the generation job repository
func AssistantWithGenerationJobRepository(repo *repository.GenerationJobRepository) AssistantServiceOption {
	return func(s *AssistantService) {
		s.jobRepo = repo
	}
}

// AssistantWithLogger sets the logger
func AssistantWithLogger(logger *zap.Logger) AssistantServiceOption {
	return func(s *AssistantService) {
		s.logger = logger
	}
}

// NewAssistantService creates a new assistant service
func NewAssistantService(opts ...AssistantServiceOption) *AssistantService {
	s := &AssistantService{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// complete runs one completion and records its outcome
func (s *AssistantService) complete(ctx context.Context, operation string, messages []llm.Message, params llm.Params) (string, error) {
	if s.client == nil {
		return "", llm.ErrNotConfigured
	}

	start := time.Now()
	out, err := s.client.Complete(ctx, messages, params)
	metrics.LLMDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.LLMRequests.WithLabelValues(operation, llmResult(err)).Inc()
		s.logger.Warn("Language model request failed",
			zap.String("operation", operation),
			zap.String("provider", s.client.Provider()),
			zap.Error(err))
		return "", err
	}
	metrics.LLMRequests.WithLabelValues(operation, "ok").Inc()
	return out, nil
}

func llmResult(err error) string {
	switch {
	case errors.Is(err, llm.ErrNotConfigured):
		return "not_configured"
	case errors.Is(err, llm.ErrAuthFailed):
		return "auth_failed"
	case errors.Is(err, llm.ErrRateLimited):
		return "rate_limited"
	case errors.Is(err, llm.ErrUnavailable):
		return "unavailable"
	default:
		return "error"
	}
}

// ChatResult is the assistant's reply to a query
type ChatResult struct {
	Reply   string               `json:"reply"`
	History []models.ChatMessage `json:"history"`
}

// Chat answers a query with the session's recent history as context.
// The query and the reply are appended to the history only on success.
func (s *AssistantService) Chat(ctx context.Context, sessionID, query string) (*ChatResult, error) {
	if sessionID == "" {
		return nil, ErrMissingSession
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	history, err := s.sessions.ChatHistory(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	messages := []llm.Message{{Role: models.RoleSystem, Content: chatSystemPrompt}}
	messages = append(messages, recentHistory(history, chatHistoryWindow)...)
	messages = append(messages, llm.Message{Role: models.RoleUser, Content: query})

	reply, err := s.complete(ctx, "chat", messages, chatParams)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	turn := []models.ChatMessage{
		{Role: models.RoleUser, Content: query, CreatedAt: now},
		{Role: models.RoleAssistant, Content: reply, CreatedAt: now},
	}
	if err := s.sessions.AppendChat(ctx, sessionID, turn...); err != nil {
		return nil, fmt.Errorf("failed to store chat history: %w", err)
	}

	return &ChatResult{Reply: reply, History: append(history, turn...)}, nil
}

// recentHistory returns the last n messages that have both a role and content
func recentHistory(history []models.ChatMessage, n int) []llm.Message {
	if len(history) > n {
		history = history[len(history)-n:]
	}
	out := make([]llm.Message, 0, len(history))
	for _, msg := range history {
		if msg.Role == "" || msg.Content == "" {
			continue
		}
		out = append(out, llm.Message{Role: msg.Role, Content: msg.Content})
	}
	return out
}

// History returns the session's chat history
func (s *AssistantService) History(ctx context.Context, sessionID string) ([]models.ChatMessage, error) {
	return s.sessions.ChatHistory(ctx, sessionID)
}

// CreateGuideJob creates a guide generation job and returns immediately
func (s *AssistantService) CreateGuideJob(ctx context.Context, sessionID, topic string) (*models.GenerationJob, error) {
	if s.jobRepo == nil {
		return nil, errors.New("generation job repository not set")
	}
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, ErrEmptyTopic
	}

	job := &models.GenerationJob{
		ID:        uuid.New(),
		SessionID: sessionID,
		Topic:     topic,
		Status:    models.JobStatusPending,
		Steps: models.GenerationSteps{
			{Name: stepDraftingGuide, Status: models.StepPending},
			{Name: stepFinalizing, Status: models.StepPending},
		},
	}
	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, ErrJobCreationFailed
	}
	return job, nil
}

// ProcessGuide generates the guide of a job. It runs in the background and
// records failures on the job itself.
func (s *AssistantService) ProcessGuide(ctx context.Context, jobID uuid.UUID) error {
	if s.jobRepo == nil {
		return errors.New("generation job repository not set")
	}

	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return fmt.Errorf("failed to load generation job: %w", err)
	}

	if err := s.jobRepo.UpdateStatus(ctx, jobID, models.JobStatusInProgress); err != nil {
		return fmt.Errorf("failed to update job status: %w", err)
	}

	if err := s.updateStepStatus(ctx, jobID, stepDraftingGuide, models.StepInProgress); err != nil {
		s.markJobFailed(ctx, jobID, "INTERNAL_ERROR", "failed to update step: "+err.Error())
		return err
	}

	guide, err := s.complete(ctx, "guide", []llm.Message{
		{Role: models.RoleSystem, Content: guideSystemPrompt},
		{Role: models.RoleUser, Content: guideUserPrompt(job.Topic)},
	}, guideParams)
	if err != nil {
		_ = s.updateStepStatus(ctx, jobID, stepDraftingGuide, models.StepFailed)
		s.markJobFailed(ctx, jobID, ErrorCode(err), err.Error())
		return fmt.Errorf("failed to generate guide: %w", err)
	}

	if err := s.updateStepStatus(ctx, jobID, stepDraftingGuide, models.StepCompleted); err != nil {
		s.markJobFailed(ctx, jobID, "INTERNAL_ERROR", "failed to update step: "+err.Error())
		return err
	}
	if err := s.updateStepStatus(ctx, jobID, stepFinalizing, models.StepInProgress); err != nil {
		s.markJobFailed(ctx, jobID, "INTERNAL_ERROR", "failed to update step: "+err.Error())
		return err
	}

	guide = strings.TrimSpace(guide)

	if err := s.updateStepStatus(ctx, jobID, stepFinalizing, models.StepCompleted); err != nil {
		s.markJobFailed(ctx, jobID, "INTERNAL_ERROR", "failed to update step: "+err.Error())
		return err
	}
	if err := s.jobRepo.Complete(ctx, jobID, guide); err != nil {
		return fmt.Errorf("failed to complete job: %w", err)
	}

	s.logger.Info("Guide generated", zap.String("job_id", jobID.String()), zap.Int("length", len(guide)))
	return nil
}

// updateStepStatus updates the status of a specific step
func (s *AssistantService) updateStepStatus(ctx context.Context, jobID uuid.UUID, stepName, status string) error {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return err
	}

	steps := job.Steps.Clone()
	for i := range steps {
		if steps[i].Name == stepName {
			steps[i].Status = status
			break
		}
	}
	return s.jobRepo.UpdateProgress(ctx, jobID, stepName, steps)
}

// markJobFailed marks a job as failed
func (s *AssistantService) markJobFailed(ctx context.Context, jobID uuid.UUID, code, message string) {
	if err := s.jobRepo.Fail(ctx, jobID, code, message); err != nil {
		s.logger.Error("Failed to mark job as failed", zap.String("job_id", jobID.String()), zap.Error(err))
	}
}

// GetJob retrieves a guide job. Jobs of other sessions are reported missing.
func (s *AssistantService) GetJob(ctx context.Context, sessionID string, jobID uuid.UUID) (*models.GenerationJob, error) {
	if s.jobRepo == nil {
		return nil, errors.New("generation job repository not set")
	}
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil || job.SessionID != sessionID {
		return nil, ErrJobNotFound
	}
	return job, nil
}

// AISummary asks the model for a summary of a session document
func (s *AssistantService) AISummary(ctx context.Context, sessionID string, id uuid.UUID) (string, error) {
	doc, err := s.documents.Get(ctx, sessionID, id)
	if err != nil {
		return "", err
	}
	return s.complete(ctx, "summary", []llm.Message{
		{Role: models.RoleSystem, Content: summarySystemPrompt},
		{Role: models.RoleUser, Content: fmt.Sprintf(summaryUserPrompt, aiSummaryWords, doc.ProcessedText)},
	}, textParams)
}

// AISimplify asks the model for a plain-English rendering of a session document
func (s *AssistantService) AISimplify(ctx context.Context, sessionID string, id uuid.UUID) (string, error) {
	doc, err := s.documents.Get(ctx, sessionID, id)
	if err != nil {
		return "", err
	}
	return s.complete(ctx, "simplify", []llm.Message{
		{Role: models.RoleSystem, Content: simplifySystemPrompt},
		{Role: models.RoleUser, Content: simplifyUserPrompt + doc.ProcessedText},
	}, textParams)
}

// Translate renders a session document's text and summary in lang and stores
// the result on the document. English returns the source unchanged.
func (s *AssistantService) Translate(ctx context.Context, sessionID string, id uuid.UUID, lang string) (*models.Translation, error) {
	name, ok := LanguageName(lang)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, lang)
	}
	lang = strings.ToLower(lang)

	doc, err := s.documents.Get(ctx, sessionID, id)
	if err != nil {
		return nil, err
	}

	tr := models.Translation{Text: doc.ProcessedText, Summary: doc.Summary}
	if lang != "en" {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			out, err := s.translate(gctx, name, doc.ProcessedText)
			tr.Text = out
			return err
		})
		g.Go(func() error {
			out, err := s.translate(gctx, name, doc.Summary)
			tr.Summary = out
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	if _, err := s.documents.SaveTranslation(ctx, sessionID, id, lang, tr); err != nil {
		return nil, err
	}
	return &tr, nil
}

func (s *AssistantService) translate(ctx context.Context, language, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}
	return s.complete(ctx, "translate", []llm.Message{
		{Role: models.RoleSystem, Content: fmt.Sprintf(translateSystemPrompt, language)},
		{Role: models.RoleUser, Content: text},
	}, textParams)
}

// ErrorCode returns the API error code for a language model error
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, llm.ErrNotConfigured):
		return "LLM_NOT_CONFIGURED"
	case errors.Is(err, llm.ErrAuthFailed):
		return "LLM_AUTH_FAILED"
	case errors.Is(err, llm.ErrRateLimited):
		return "LLM_RATE_LIMITED"
	case errors.Is(err, llm.ErrUnavailable):
		return "LLM_UNAVAILABLE"
	default:
		return "GENERATION_FAILED"
	}
}
