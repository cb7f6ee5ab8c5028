package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// GroqClient talks to Groq's OpenAI-compatible chat completions endpoint
type GroqClient struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

// NewGroqClient creates a Groq client
func NewGroqClient(cfg Config, logger *zap.Logger) *GroqClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultGroqURL
	}
	model := cfg.Model
	if model == "" {
		model = DefaultGroqModel
	}

	oc := openai.DefaultConfig(cfg.APIKey)
	oc.BaseURL = baseURL
	oc.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	logger.Info("Initializing Groq client", zap.String("model", model), zap.String("base_url", baseURL))
	return &GroqClient{
		client: openai.NewClientWithConfig(oc),
		model:  model,
		logger: logger,
	}
}

// Provider returns the provider name
func (g *GroqClient) Provider() string { return ProviderGroq }

// Complete sends messages and returns the first choice's content
func (g *GroqClient) Complete(ctx context.Context, messages []Message, params Params) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:       g.model,
		Messages:    make([]openai.ChatCompletionMessage, 0, len(messages)),
		Temperature: params.Temperature,
		MaxTokens:   params.MaxTokens,
		TopP:        1,
	}
	for _, m := range messages {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		g.logger.Warn("Groq API call failed", zap.Error(err))
		return "", mapGroqError(err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", ErrEmptyResponse
	}
	g.logger.Debug("Received response from Groq",
		zap.String("finish_reason", string(resp.Choices[0].FinishReason)),
		zap.Int("total_tokens", resp.Usage.TotalTokens))
	return resp.Choices[0].Message.Content, nil
}

func mapGroqError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return statusError(apiErr.HTTPStatusCode, err)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return statusError(reqErr.HTTPStatusCode, err)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("groq request canceled: %w", err)
	}
	return transportError(err)
}
