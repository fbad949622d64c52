package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Prefix de las variables de entorno: MEDTRACK_HTTP_PORT, MEDTRACK_LOG_LEVEL, ...
const Prefix = "MEDTRACK"

// Config del servicio. Lo opcional vacío apaga la integración correspondiente:
// sin POSTGRES_DSN se usa memoria, sin REDIS_ADDR caché en proceso, sin
// TRANSLATE_BASE_URL no se traduce, sin AUTH_BASE_URL modo dev (X-Debug-User-ID).
type Config struct {
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`
	AppName   string `envconfig:"APP_NAME" default:"medtrack-core"`

	PostgresDSN string `envconfig:"POSTGRES_DSN" default:""`

	RedisAddr     string `envconfig:"REDIS_ADDR" default:""`
	RedisPassword string `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	AuthBaseURL string `envconfig:"AUTH_BASE_URL" default:""`
	AuthAPIKey  string `envconfig:"AUTH_API_KEY" default:""`

	DrugLabelBaseURL string        `envconfig:"DRUG_LABEL_BASE_URL" default:"https://api.fda.gov"`
	DrugLabelAPIKey  string        `envconfig:"DRUG_LABEL_API_KEY" default:""`
	DrugLabelTimeout time.Duration `envconfig:"DRUG_LABEL_TIMEOUT" default:"5s"`
	DrugLabelEnabled bool          `envconfig:"DRUG_LABEL_ENABLED" default:"true"`

	TranslateBaseURL    string        `envconfig:"TRANSLATE_BASE_URL" default:""`
	TranslateAPIKey     string        `envconfig:"TRANSLATE_API_KEY" default:""`
	TranslateTimeout    time.Duration `envconfig:"TRANSLATE_TIMEOUT" default:"3s"`
	TranslationCacheTTL time.Duration `envconfig:"TRANSLATION_CACHE_TTL" default:"24h"`

	DefaultLanguage string `envconfig:"DEFAULT_LANGUAGE" default:"en"`
	MinQueryLength  int    `envconfig:"MIN_QUERY_LENGTH" default:"2"`
}

// Load lee el entorno y valida.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	cfg.DefaultLanguage = strings.ToLower(strings.TrimSpace(cfg.DefaultLanguage))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		errs = append(errs, fmt.Errorf("HTTP_PORT out of range: %d", c.HTTPPort))
	}
	if c.DrugLabelTimeout <= 0 {
		errs = append(errs, errors.New("DRUG_LABEL_TIMEOUT must be > 0"))
	}
	if c.TranslateTimeout <= 0 {
		errs = append(errs, errors.New("TRANSLATE_TIMEOUT must be > 0"))
	}
	if c.TranslationCacheTTL <= 0 {
		errs = append(errs, errors.New("TRANSLATION_CACHE_TTL must be > 0"))
	}
	if strings.TrimSpace(c.DefaultLanguage) == "" {
		errs = append(errs, errors.New("DEFAULT_LANGUAGE is required"))
	}
	if c.MinQueryLength < 1 {
		errs = append(errs, fmt.Errorf("MIN_QUERY_LENGTH must be >= 1: %d", c.MinQueryLength))
	}
	return errors.Join(errs...)
}

func (c *Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

// Summary devuelve campos aptos para loguear (sin secretos).
func (c *Config) Summary() map[string]any {
	return map[string]any{
		"http_port":             c.HTTPPort,
		"postgres":              c.PostgresDSN != "",
		"redis":                 c.RedisAddr != "",
		"auth_verifier":         c.AuthBaseURL != "",
		"drug_label_enabled":    c.DrugLabelEnabled,
		"drug_label_base_url":   c.DrugLabelBaseURL,
		"translation":           c.TranslateBaseURL != "",
		"default_language":      c.DefaultLanguage,
		"min_query_length":      c.MinQueryLength,
		"translation_cache_ttl": c.TranslationCacheTTL.String(),
	}
}
