// Package llm wraps the hosted language models behind one chat-completion
// interface.
package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Providers
const (
	ProviderGroq   = "groq"
	ProviderGemini = "gemini"
)

// Defaults for the supported providers
const (
	DefaultGroqURL     = "https://api.groq.com/openai/v1"
	DefaultGroqModel   = "llama-3.3-70b-versatile"
	DefaultGeminiModel = "gemini-1.5-flash"
	DefaultTimeout     = 60 * time.Second
)

var (
	ErrNotConfigured = errors.New("language model API key not configured")
	ErrAuthFailed    = errors.New("language model authentication failed")
	ErrRateLimited   = errors.New("language model rate limit exceeded")
	ErrUnavailable   = errors.New("language model service unavailable")
	ErrEmptyResponse = errors.New("language model returned no content")
	ErrUnknown       = errors.New("unknown language model provider")
)

// Message is one chat turn sent to the model
type Message struct {
	Role    string
	Content string
}

// Params tunes a single completion
type Params struct {
	Temperature float32
	MaxTokens   int
}

// Client produces a chat completion for a message list
type Client interface {
	Complete(ctx context.Context, messages []Message, params Params) (string, error)
	Provider() string
}

// Config selects and configures a provider
type Config struct {
	Provider string
	APIKey   string
	BaseURL  string
	Model    string
	Timeout  time.Duration
}

// New creates the client for cfg.Provider. A missing API key yields a client
// whose every call fails with ErrNotConfigured.
func New(ctx context.Context, cfg Config, logger *zap.Logger) (Client, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	switch cfg.Provider {
	case ProviderGroq, "":
		if cfg.APIKey == "" {
			logger.Warn("GROQ_API_KEY not set, assistant features disabled")
			return unconfigured{provider: ProviderGroq}, nil
		}
		return NewGroqClient(cfg, logger), nil
	case ProviderGemini:
		if cfg.APIKey == "" {
			logger.Warn("GEMINI_API_KEY not set, assistant features disabled")
			return unconfigured{provider: ProviderGemini}, nil
		}
		return NewGeminiClient(ctx, cfg, logger)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknown, cfg.Provider)
	}
}

type unconfigured struct {
	provider string
}

func (u unconfigured) Complete(context.Context, []Message, Params) (string, error) {
	return "", ErrNotConfigured
}

func (u unconfigured) Provider() string { return u.provider }

// statusError maps a provider HTTP status onto the package errors
func statusError(status int, err error) error {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return fmt.Errorf("%w: %v", ErrAuthFailed, err)
	case status == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %v", ErrRateLimited, err)
	case status >= http.StatusInternalServerError:
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	default:
		return err
	}
}

// transportError maps timeouts and cancellations onto ErrUnavailable
func transportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: request timed out: %v", ErrUnavailable, err)
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

// Configured reports whether c can reach a provider
func Configured(c Client) bool {
	if c == nil {
		return false
	}
	_, missing := c.(unconfigured)
	return !missing
}
