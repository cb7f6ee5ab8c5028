package config

import (
	"testing"
	"time"

	"legalease-backend/analysis"
	"legalease-backend/llm"
	"legalease-backend/storage"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(t *testing.T) *viper.Viper {
	t.Helper()
	v := viper.New()
	SetDefaults(v)
	require.NoError(t, BindEnv(v))
	return v
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(newViper(t))

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, storage.StorageTypeLocal, cfg.Storage.Type)
	assert.Equal(t, DictionaryBackendStorage, cfg.DictionaryBackend)
	assert.Equal(t, llm.ProviderGroq, cfg.LLM.Provider)
	assert.Equal(t, llm.DefaultGroqModel, cfg.LLM.Model)
	assert.Equal(t, analysis.DefaultThresholds(), cfg.Thresholds)
	assert.Equal(t, analysis.TermOrderInsertion, cfg.TermOrder)
	assert.Equal(t, int64(10*1024*1024), cfg.MaxFileSize())
	assert.Equal(t, 24*time.Hour, cfg.SessionIdleTimeout)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("GROUPQ_API_KEY", "legacy-key")
	t.Setenv("RISK_THRESHOLD_LOW", "0.25")
	t.Setenv("SIMPLIFIER_TERM_ORDER", "longest")
	t.Setenv("MAX_FILE_SIZE_MB", "2")

	cfg, err := Load(newViper(t))

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "legacy-key", cfg.LLM.APIKey)
	assert.InDelta(t, 0.25, cfg.Thresholds.Low, 1e-9)
	assert.Equal(t, analysis.TermOrderLongestFirst, cfg.TermOrder)
	assert.Equal(t, int64(2*1024*1024), cfg.MaxFileSize())
}

func TestLoad_GroqKeyWinsOverLegacyName(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "new-key")
	t.Setenv("GROUPQ_API_KEY", "legacy-key")

	cfg, err := Load(newViper(t))

	require.NoError(t, err)
	assert.Equal(t, "new-key", cfg.LLM.APIKey)
}

func TestLoad_Gemini(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "gemini")
	t.Setenv("GEMINI_API_KEY", "g-key")

	cfg, err := Load(newViper(t))

	require.NoError(t, err)
	assert.Equal(t, "g-key", cfg.LLM.APIKey)
	assert.Equal(t, llm.DefaultGeminiModel, cfg.LLM.Model)
	assert.Empty(t, cfg.LLM.BaseURL)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"thresholds out of order", map[string]string{"RISK_THRESHOLD_LOW": "0.7"}},
		{"s3 without bucket", map[string]string{"STORAGE_TYPE": "s3"}},
		{"unknown storage", map[string]string{"STORAGE_TYPE": "ftp"}},
		{"postgres without url", map[string]string{"DICTIONARY_BACKEND": "postgres"}},
		{"unknown provider", map[string]string{"LLM_PROVIDER": "carrier-pigeon"}},
		{"unknown term order", map[string]string{"SIMPLIFIER_TERM_ORDER": "random"}},
		{"zero file size", map[string]string{"MAX_FILE_SIZE_MB": "0"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, val := range tt.env {
				t.Setenv(k, val)
			}

			_, err := Load(newViper(t))

			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}
