package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/googleapis/gax-go/v2/apierror"
	"go.uber.org/zap"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
)

// GeminiClient talks to Google's Gemini models
type GeminiClient struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

// NewGeminiClient creates a Gemini client
func NewGeminiClient(ctx context.Context, cfg Config, logger *zap.Logger) (*GeminiClient, error) {
	model := cfg.Model
	if model == "" {
		model = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	logger.Info("Gemini client initialized", zap.String("model", model))
	return &GeminiClient{client: client, model: model, logger: logger}, nil
}

// Provider returns the provider name
func (g *GeminiClient) Provider() string { return ProviderGemini }

// Close releases the underlying connection
func (g *GeminiClient) Close() error {
	return g.client.Close()
}

// Complete replays the conversation as chat history and sends its last user turn
func (g *GeminiClient) Complete(ctx context.Context, messages []Message, params Params) (string, error) {
	model := g.client.GenerativeModel(g.model)
	model.SetTemperature(params.Temperature)
	if params.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(params.MaxTokens))
	}

	var (
		system  []genai.Part
		history []*genai.Content
	)
	for _, m := range messages {
		switch m.Role {
		case "system":
			system = append(system, genai.Text(m.Content))
		case "assistant":
			history = append(history, &genai.Content{Role: "model", Parts: []genai.Part{genai.Text(m.Content)}})
		default:
			history = append(history, &genai.Content{Role: "user", Parts: []genai.Part{genai.Text(m.Content)}})
		}
	}
	if len(system) > 0 {
		model.SystemInstruction = &genai.Content{Parts: system}
	}
	if len(history) == 0 || history[len(history)-1].Role != "user" {
		return "", errors.New("conversation must end with a user message")
	}

	last := history[len(history)-1]
	cs := model.StartChat()
	cs.History = history[:len(history)-1]

	resp, err := cs.SendMessage(ctx, last.Parts...)
	if err != nil {
		g.logger.Warn("Gemini API call failed", zap.Error(err))
		return "", mapGeminiError(err)
	}

	var b strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				b.WriteString(string(text))
			}
		}
	}
	if b.Len() == 0 {
		return "", ErrEmptyResponse
	}
	return b.String(), nil
}

func mapGeminiError(err error) error {
	var apiErr *apierror.APIError
	if errors.As(err, &apiErr) {
		if code := apiErr.HTTPCode(); code > 0 {
			return statusError(code, err)
		}
		switch apiErr.GRPCStatus().Code() {
		case codes.Unauthenticated, codes.PermissionDenied:
			return fmt.Errorf("%w: %v", ErrAuthFailed, err)
		case codes.ResourceExhausted:
			return fmt.Errorf("%w: %v", ErrRateLimited, err)
		case codes.Unavailable, codes.Internal, codes.DeadlineExceeded:
			return fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return err
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("gemini request canceled: %w", err)
	}
	return transportError(err)
}
