// Package config resolves the server configuration from the environment,
// an optional .env file and an optional YAML config file.
package config

import (
	"errors"
	"fmt"
	"time"

	"legalease-backend/analysis"
	"legalease-backend/llm"
	"legalease-backend/storage"

	"github.com/spf13/viper"
)

// Dictionary backends
const (
	DictionaryBackendStorage  = "storage"
	DictionaryBackendPostgres = "postgres"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the resolved configuration
type Config struct {
	Port      string
	GinMode   string
	LogLevel  string
	LogFormat string

	Storage storage.StorageConfig

	DictionaryBackend string
	DatabaseURL       string

	LLM llm.Config

	Thresholds    analysis.Thresholds
	TermOrder     analysis.TermOrder
	MaxFileSizeMB int64

	SessionIdleTimeout time.Duration
}

// SetDefaults registers the default for every key on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("gin_mode", "release")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("storage_type", string(storage.StorageTypeLocal))
	v.SetDefault("storage_local_path", "./storage/files")
	v.SetDefault("aws_region", "us-east-1")
	v.SetDefault("dictionary_backend", DictionaryBackendStorage)
	v.SetDefault("llm_provider", llm.ProviderGroq)
	v.SetDefault("groq_api_url", llm.DefaultGroqURL)
	v.SetDefault("groq_model", llm.DefaultGroqModel)
	v.SetDefault("gemini_model", llm.DefaultGeminiModel)
	v.SetDefault("llm_timeout", llm.DefaultTimeout)
	v.SetDefault("risk_threshold_low", 0.3)
	v.SetDefault("risk_threshold_medium", 0.6)
	v.SetDefault("risk_threshold_high", 0.8)
	v.SetDefault("simplifier_term_order", string(analysis.TermOrderInsertion))
	v.SetDefault("max_file_size_mb", 10)
	v.SetDefault("session_idle_timeout", 24*time.Hour)
}

// BindEnv maps keys onto environment variables. Every key is also reachable
// through AutomaticEnv under its upper-case name.
func BindEnv(v *viper.Viper) error {
	v.AutomaticEnv()
	// GROUPQ_API_KEY is the name older deployments used
	return v.BindEnv("groq_api_key", "GROQ_API_KEY", "GROUPQ_API_KEY")
}

// Load reads the configuration from v
func Load(v *viper.Viper) (*Config, error) {
	provider := v.GetString("llm_provider")
	llmCfg := llm.Config{
		Provider: provider,
		Timeout:  v.GetDuration("llm_timeout"),
	}
	switch provider {
	case llm.ProviderGemini:
		llmCfg.APIKey = v.GetString("gemini_api_key")
		llmCfg.Model = v.GetString("gemini_model")
	default:
		llmCfg.APIKey = v.GetString("groq_api_key")
		llmCfg.BaseURL = v.GetString("groq_api_url")
		llmCfg.Model = v.GetString("groq_model")
	}

	cfg := &Config{
		Port:      v.GetString("port"),
		GinMode:   v.GetString("gin_mode"),
		LogLevel:  v.GetString("log_level"),
		LogFormat: v.GetString("log_format"),
		Storage: storage.StorageConfig{
			Type:         storage.StorageType(v.GetString("storage_type")),
			LocalPath:    v.GetString("storage_local_path"),
			S3Bucket:     v.GetString("aws_s3_bucket"),
			S3Region:     v.GetString("aws_region"),
			AWSAccessKey: v.GetString("aws_access_key_id"),
			AWSSecretKey: v.GetString("aws_secret_access_key"),
		},
		DictionaryBackend: v.GetString("dictionary_backend"),
		DatabaseURL:       v.GetString("database_url"),
		LLM:               llmCfg,
		Thresholds: analysis.Thresholds{
			Low:    v.GetFloat64("risk_threshold_low"),
			Medium: v.GetFloat64("risk_threshold_medium"),
			High:   v.GetFloat64("risk_threshold_high"),
		},
		TermOrder:          analysis.TermOrder(v.GetString("simplifier_term_order")),
		MaxFileSizeMB:      v.GetInt64("max_file_size_mb"),
		SessionIdleTimeout: v.GetDuration("session_idle_timeout"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the server cannot run with
func (c *Config) Validate() error {
	if err := c.Thresholds.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	switch c.Storage.Type {
	case storage.StorageTypeLocal:
	case storage.StorageTypeS3:
		if c.Storage.S3Bucket == "" {
			return fmt.Errorf("%w: AWS_S3_BUCKET is required when STORAGE_TYPE=s3", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown STORAGE_TYPE %q", ErrInvalidConfig, c.Storage.Type)
	}

	switch c.DictionaryBackend {
	case DictionaryBackendStorage:
	case DictionaryBackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("%w: DATABASE_URL is required when DICTIONARY_BACKEND=postgres", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown DICTIONARY_BACKEND %q", ErrInvalidConfig, c.DictionaryBackend)
	}

	switch c.LLM.Provider {
	case llm.ProviderGroq, llm.ProviderGemini:
	default:
		return fmt.Errorf("%w: unknown LLM_PROVIDER %q", ErrInvalidConfig, c.LLM.Provider)
	}

	switch c.TermOrder {
	case analysis.TermOrderInsertion, analysis.TermOrderLongestFirst:
	default:
		return fmt.Errorf("%w: unknown SIMPLIFIER_TERM_ORDER %q", ErrInvalidConfig, c.TermOrder)
	}

	if c.MaxFileSizeMB <= 0 {
		return fmt.Errorf("%w: MAX_FILE_SIZE_MB must be positive", ErrInvalidConfig)
	}
	return nil
}

// MaxFileSize returns the upload limit in bytes
func (c *Config) MaxFileSize() int64 {
	return c.MaxFileSizeMB * 1024 * 1024
}
