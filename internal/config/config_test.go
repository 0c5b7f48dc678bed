package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"TRIPGEN_HTTP_ADDR", "TRIPGEN_CORS_ORIGINS", "TRIPGEN_LLM_PROVIDER", "TRIPGEN_LLM_TIMEOUT",
		"TRIPGEN_LLM_BASE_URL", "TRIPGEN_LLM_MODEL", "OPENROUTER_API_KEY", "GEMINI_API_KEY",
		"TRIPGEN_STORE", "TRIPGEN_MONGO_URI", "TRIPGEN_MONGO_DB", "TRIPGEN_DB_DSN",
		"TRIPGEN_REDIS_ADDR", "TRIPGEN_LOG_LEVEL", "TRIPGEN_LOG_DEV",
	} {
		t.Setenv(k, "")
	}
}

func TestFromEnv_MissingOpenRouterKey(t *testing.T) {
	clearEnv(t)

	_, err := FromEnv()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingCredential)
	assert.Contains(t, err.Error(), "OPENROUTER_API_KEY")
}

func TestFromEnv_MissingGeminiKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("TRIPGEN_LLM_PROVIDER", "gemini")
	t.Setenv("OPENROUTER_API_KEY", "or-key")

	_, err := FromEnv()
	assert.ErrorIs(t, err, ErrMissingCredential)
}

func TestFromEnv_MissingKeyStillFillsStore(t *testing.T) {
	clearEnv(t)
	t.Setenv("TRIPGEN_STORE", "postgres")
	t.Setenv("TRIPGEN_DB_DSN", "postgres://u:p@db:5432/trips")

	cfg, err := FromEnv()
	assert.ErrorIs(t, err, ErrMissingCredential)
	assert.Equal(t, StorePostgres, cfg.Store.Backend)
	assert.Equal(t, "postgres://u:p@db:5432/trips", cfg.DB.DSN)
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENROUTER_API_KEY", "or-key")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":3001", cfg.HTTP.Addr)
	assert.Equal(t, []string{"*"}, cfg.HTTP.CORSOrigins)
	assert.Equal(t, ProviderOpenRouter, cfg.LLM.Provider)
	assert.Equal(t, "or-key", cfg.LLM.APIKey)
	assert.Equal(t, "https://openrouter.ai/api/v1/", cfg.LLM.BaseURL)
	assert.Equal(t, "nvidia/nemotron-3-nano-30b-a3b:free", cfg.LLM.Model)
	assert.Equal(t, 20*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, StoreMongo, cfg.Store.Backend)
	assert.Equal(t, "tripgen", cfg.Mongo.Database)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.Dev)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("TRIPGEN_LLM_PROVIDER", "Gemini")
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("TRIPGEN_LLM_TIMEOUT", "5s")
	t.Setenv("TRIPGEN_STORE", "postgres")
	t.Setenv("TRIPGEN_CORS_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("TRIPGEN_LOG_DEV", "true")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, ProviderGemini, cfg.LLM.Provider)
	assert.Equal(t, "gemini-2.0-flash", cfg.LLM.Model)
	assert.Equal(t, 5*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, StorePostgres, cfg.Store.Backend)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.HTTP.CORSOrigins)
	assert.True(t, cfg.Log.Dev)
}

func TestFromEnv_UnknownValues(t *testing.T) {
	t.Run("provider", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("TRIPGEN_LLM_PROVIDER", "carrier-pigeon")
		_, err := FromEnv()
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrMissingCredential)
	})

	t.Run("store", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("OPENROUTER_API_KEY", "or-key")
		t.Setenv("TRIPGEN_STORE", "floppy")
		_, err := FromEnv()
		require.Error(t, err)
	})
}

func TestEnvOrDefaultDuration_InvalidFallsBack(t *testing.T) {
	t.Setenv("TRIPGEN_TEST_DURATION", "soon")
	assert.Equal(t, time.Minute, envOrDefaultDuration("TRIPGEN_TEST_DURATION", time.Minute))
}
