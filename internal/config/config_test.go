package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, ":8080", cfg.HTTPAddr())
	assert.Equal(t, "https://api.fda.gov", cfg.DrugLabelBaseURL)
	assert.Equal(t, 5*time.Second, cfg.DrugLabelTimeout)
	assert.Equal(t, 3*time.Second, cfg.TranslateTimeout)
	assert.Equal(t, 24*time.Hour, cfg.TranslationCacheTTL)
	assert.Equal(t, "en", cfg.DefaultLanguage)
	assert.Equal(t, 2, cfg.MinQueryLength)
	assert.True(t, cfg.DrugLabelEnabled)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("MEDTRACK_HTTP_PORT", "9090")
	t.Setenv("MEDTRACK_DEFAULT_LANGUAGE", " ES ")
	t.Setenv("MEDTRACK_TRANSLATE_TIMEOUT", "750ms")
	t.Setenv("MEDTRACK_REDIS_ADDR", "redis:6379")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.Equal(t, "es", cfg.DefaultLanguage)
	assert.Equal(t, 750*time.Millisecond, cfg.TranslateTimeout)
	assert.Equal(t, true, cfg.Summary()["redis"])
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("MEDTRACK_DRUG_LABEL_TIMEOUT", "0s")
	t.Setenv("MEDTRACK_MIN_QUERY_LENGTH", "0")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DRUG_LABEL_TIMEOUT")
	assert.Contains(t, err.Error(), "MIN_QUERY_LENGTH")
}

func TestLoad_ParseError(t *testing.T) {
	t.Setenv("MEDTRACK_HTTP_PORT", "not-a-number")

	_, err := Load()
	assert.Error(t, err)
}

func TestSummary_HasNoSecrets(t *testing.T) {
	cfg := &Config{PostgresDSN: "postgres://u:p@h/db", RedisPassword: "pw", TranslateAPIKey: "k", AuthAPIKey: "a"}
	for _, v := range cfg.Summary() {
		s, ok := v.(string)
		if !ok {
			continue
		}
		assert.NotContains(t, s, "p@h")
		assert.NotEqual(t, "pw", s)
	}
}
