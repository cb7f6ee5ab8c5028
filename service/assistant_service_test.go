package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"legalease-backend/llm"
	"legalease-backend/models"
	"legalease-backend/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type completion struct {
	messages []llm.Message
	params   llm.Params
}

// fakeClient answers every completion with reply, or fails with err
type fakeClient struct {
	mu    sync.Mutex
	reply func(messages []llm.Message) string
	err   error
	calls []completion
}

func (f *fakeClient) Complete(ctx context.Context, messages []llm.Message, params llm.Params) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, completion{messages: messages, params: params})
	if f.err != nil {
		return "", f.err
	}
	if f.reply == nil {
		return "ok", nil
	}
	return f.reply(messages), nil
}

func (f *fakeClient) Provider() string { return "fake" }

func (f *fakeClient) Calls() []completion {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]completion(nil), f.calls...)
}

type assistantFixture struct {
	client    *fakeClient
	sessions  *repository.SessionRepository
	documents *DocumentService
	assistant *AssistantService
}

func newAssistantFixture(t *testing.T, client *fakeClient) *assistantFixture {
	t.Helper()
	sessions := repository.NewSessionRepository()
	documents := newTestDocumentService(t, WithSessionRepository(sessions))
	return &assistantFixture{
		client:    client,
		sessions:  sessions,
		documents: documents,
		assistant: NewAssistantService(
			AssistantWithClient(client),
			AssistantWithDocumentService(documents),
			AssistantWithSessionRepository(sessions),
			AssistantWithGenerationJobRepository(repository.NewGenerationJobRepository()),
		),
	}
}

func TestAssistantService_ChatSendsRecentHistory(t *testing.T) {
	f := newAssistantFixture(t, &fakeClient{})
	ctx := context.Background()

	var history []models.ChatMessage
	for i := 0; i < 12; i++ {
		history = append(history, models.ChatMessage{Role: models.RoleUser, Content: fmt.Sprintf("q%d", i)})
	}
	history[11].Content = ""
	require.NoError(t, f.sessions.AppendChat(ctx, testSession, history...))

	res, err := f.assistant.Chat(ctx, testSession, "  What is a lease?  ")

	require.NoError(t, err)
	assert.Equal(t, "ok", res.Reply)
	calls := f.client.Calls()
	require.Len(t, calls, 1)
	sent := calls[0].messages
	// system prompt, q2..q10 (q11 is empty), query
	require.Len(t, sent, 11)
	assert.Equal(t, models.RoleSystem, sent[0].Role)
	assert.Equal(t, "q2", sent[1].Content)
	assert.Equal(t, "q10", sent[9].Content)
	assert.Equal(t, llm.Message{Role: models.RoleUser, Content: "What is a lease?"}, sent[10])
	assert.Equal(t, chatParams, calls[0].params)

	stored, err := f.assistant.History(ctx, testSession)
	require.NoError(t, err)
	require.Len(t, stored, 14)
	assert.Equal(t, models.RoleAssistant, stored[13].Role)
	assert.Equal(t, "ok", stored[13].Content)
	assert.Len(t, res.History, 14)
}

func TestAssistantService_ChatNotConfigured(t *testing.T) {
	client, err := llm.New(context.Background(), llm.Config{Provider: llm.ProviderGroq}, nil)
	require.NoError(t, err)
	sessions := repository.NewSessionRepository()
	assistant := NewAssistantService(AssistantWithClient(client), AssistantWithSessionRepository(sessions))

	_, err = assistant.Chat(context.Background(), testSession, "hello")

	assert.ErrorIs(t, err, llm.ErrNotConfigured)
	history, err := sessions.ChatHistory(context.Background(), testSession)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestAssistantService_ChatValidation(t *testing.T) {
	f := newAssistantFixture(t, &fakeClient{})

	_, err := f.assistant.Chat(context.Background(), testSession, "   ")
	assert.ErrorIs(t, err, ErrEmptyQuery)

	_, err = f.assistant.Chat(context.Background(), "", "hi")
	assert.ErrorIs(t, err, ErrMissingSession)
	assert.Empty(t, f.client.Calls())
}

func TestAssistantService_GuideJobCompletes(t *testing.T) {
	f := newAssistantFixture(t, &fakeClient{reply: func([]llm.Message) string { return "  # Guide\n\nStep one.  " }})
	ctx := context.Background()

	job, err := f.assistant.CreateGuideJob(ctx, testSession, "tenant eviction")
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusPending, job.Status)

	require.NoError(t, f.assistant.ProcessGuide(ctx, job.ID))

	done, err := f.assistant.GetJob(ctx, testSession, job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusCompleted, done.Status)
	require.NotNil(t, done.Result)
	assert.Equal(t, "# Guide\n\nStep one.", *done.Result)
	require.NotNil(t, done.CompletedAt)
	for _, step := range done.Steps {
		assert.Equal(t, models.StepCompleted, step.Status, step.Name)
	}

	calls := f.client.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, guideParams, calls[0].params)
	assert.Contains(t, calls[0].messages[1].Content, "'tenant eviction'")
}

func TestAssistantService_GuideJobFailureRecordsCode(t *testing.T) {
	f := newAssistantFixture(t, &fakeClient{err: fmt.Errorf("%w: slow down", llm.ErrRateLimited)})
	ctx := context.Background()

	job, err := f.assistant.CreateGuideJob(ctx, testSession, "bail")
	require.NoError(t, err)

	err = f.assistant.ProcessGuide(ctx, job.ID)
	assert.ErrorIs(t, err, llm.ErrRateLimited)

	failed, err := f.assistant.GetJob(ctx, testSession, job.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusFailed, failed.Status)
	require.NotNil(t, failed.ErrorCode)
	assert.Equal(t, "LLM_RATE_LIMITED", *failed.ErrorCode)
	assert.Equal(t, models.StepFailed, failed.Steps[0].Status)
	assert.Equal(t, models.StepPending, failed.Steps[1].Status)
}

func TestAssistantService_GuideJobValidationAndOwnership(t *testing.T) {
	f := newAssistantFixture(t, &fakeClient{})
	ctx := context.Background()

	_, err := f.assistant.CreateGuideJob(ctx, testSession, " ")
	assert.ErrorIs(t, err, ErrEmptyTopic)

	job, err := f.assistant.CreateGuideJob(ctx, testSession, "wills")
	require.NoError(t, err)

	_, err = f.assistant.GetJob(ctx, "someone-else", job.ID)
	assert.ErrorIs(t, err, ErrJobNotFound)
	_, err = f.assistant.GetJob(ctx, testSession, uuid.New())
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestAssistantService_AISummaryAndSimplify(t *testing.T) {
	f := newAssistantFixture(t, &fakeClient{})
	ctx := context.Background()
	res, err := f.documents.AnalyzeText(ctx, testSession, "lease.txt", leaseText)
	require.NoError(t, err)

	_, err = f.assistant.AISummary(ctx, testSession, res.Document.ID)
	require.NoError(t, err)
	_, err = f.assistant.AISimplify(ctx, testSession, res.Document.ID)
	require.NoError(t, err)

	calls := f.client.Calls()
	require.Len(t, calls, 2)
	for _, call := range calls {
		assert.Equal(t, textParams, call.params)
		assert.Contains(t, call.messages[1].Content, leaseText)
	}
	assert.Contains(t, calls[0].messages[1].Content, "approximately 500 words")

	_, err = f.assistant.AISummary(ctx, testSession, uuid.New())
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestAssistantService_TranslateStoresResult(t *testing.T) {
	client := &fakeClient{reply: func(messages []llm.Message) string {
		return "[hi] " + messages[1].Content
	}}
	f := newAssistantFixture(t, client)
	ctx := context.Background()
	res, err := f.documents.AnalyzeText(ctx, testSession, "lease.txt", leaseText)
	require.NoError(t, err)

	tr, err := f.assistant.Translate(ctx, testSession, res.Document.ID, "HI")

	require.NoError(t, err)
	assert.Equal(t, "[hi] "+leaseText, tr.Text)
	assert.Equal(t, "[hi] "+res.Document.Summary, tr.Summary)
	for _, call := range client.Calls() {
		assert.True(t, strings.Contains(call.messages[0].Content, "Hindi"))
	}

	doc, err := f.documents.Get(ctx, testSession, res.Document.ID)
	require.NoError(t, err)
	assert.Equal(t, *tr, doc.Translations["hi"])
}

func TestAssistantService_TranslateEnglishIsIdentity(t *testing.T) {
	f := newAssistantFixture(t, &fakeClient{})
	ctx := context.Background()
	res, err := f.documents.AnalyzeText(ctx, testSession, "lease.txt", leaseText)
	require.NoError(t, err)

	tr, err := f.assistant.Translate(ctx, testSession, res.Document.ID, "en")

	require.NoError(t, err)
	assert.Equal(t, leaseText, tr.Text)
	assert.Empty(t, f.client.Calls())

	_, err = f.assistant.Translate(ctx, testSession, res.Document.ID, "fr")
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)
}

func TestErrorCode(t *testing.T) {
	assert.Equal(t, "LLM_NOT_CONFIGURED", ErrorCode(llm.ErrNotConfigured))
	assert.Equal(t, "LLM_AUTH_FAILED", ErrorCode(fmt.Errorf("%w: 401", llm.ErrAuthFailed)))
	assert.Equal(t, "LLM_UNAVAILABLE", ErrorCode(llm.ErrUnavailable))
	assert.Equal(t, "GENERATION_FAILED", ErrorCode(llm.ErrEmptyResponse))
}
