package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medtrack-core/internal/adapters/auth/iam"
	"medtrack-core/internal/adapters/druglabels/openfda"
	mem "medtrack-core/internal/adapters/storage/memory"
	pg "medtrack-core/internal/adapters/storage/postgres"
	rediscache "medtrack-core/internal/adapters/storage/redis"
	"medtrack-core/internal/adapters/translation"
	"medtrack-core/internal/adapters/translation/libre"
	"medtrack-core/internal/config"
	"medtrack-core/internal/platform/logger"
	"medtrack-core/internal/ports/auth"
	"medtrack-core/internal/ports/druglabels"
	ports "medtrack-core/internal/ports/translation"
	"medtrack-core/internal/router"
)

// @title medtrack-core API
// @version 1.0
// @description Búsqueda de medicamentos, dosis orientativas por edad y feed de alertas de interacción / stock bajo.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.NewFromEnv().Error("invalid configuration", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})
	log.Info("configuration loaded", cfg.Summary())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := router.Options{
		Logger:           log,
		AuthVerifier:     authVerifier(cfg, log),
		DrugLabels:       drugLabels(cfg, log),
		Translator:       translator(cfg, log),
		DefaultLanguage:  cfg.DefaultLanguage,
		MinQueryLength:   cfg.MinQueryLength,
		RemoteTimeout:    cfg.DrugLabelTimeout,
		TranslateTimeout: cfg.TranslateTimeout,
	}

	if cfg.PostgresDSN != "" {
		db, err := pg.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			log.Error("postgres unavailable", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		defer db.Close()
		opts.DB = db
	}

	srv := &http.Server{
		Addr:         cfg.HTTPAddr(),
		Handler:      router.NewRouter(opts),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info("starting server", map[string]any{"addr": srv.Addr})
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}

// authVerifier: sin AUTH_BASE_URL => nil => modo dev (X-Debug-User-ID).
func authVerifier(cfg *config.Config, log logger.Logger) auth.AuthVerifier {
	if cfg.AuthBaseURL == "" {
		log.Warn("no auth verifier configured, running in dev mode", nil)
		return nil
	}
	c, err := iam.NewClient(iam.Config{BaseURL: cfg.AuthBaseURL, APIKey: cfg.AuthAPIKey})
	if err != nil {
		log.Error("iam client disabled", map[string]any{"error": err.Error()})
		return nil
	}
	return iam.NewVerifier(c)
}

func drugLabels(cfg *config.Config, log logger.Logger) druglabels.Source {
	if !cfg.DrugLabelEnabled {
		return nil
	}
	c, err := openfda.NewClient(openfda.Config{
		BaseURL: cfg.DrugLabelBaseURL,
		APIKey:  cfg.DrugLabelAPIKey,
		Timeout: cfg.DrugLabelTimeout,
	})
	if err != nil {
		log.Warn("remote drug labels disabled", map[string]any{"error": err.Error()})
		return nil
	}
	return c
}

// translator arma libre + caché (redis si hay REDIS_ADDR, si no en proceso).
func translator(cfg *config.Config, log logger.Logger) ports.Translator {
	if cfg.TranslateBaseURL == "" {
		return nil
	}
	c, err := libre.NewClient(libre.Config{
		BaseURL: cfg.TranslateBaseURL,
		APIKey:  cfg.TranslateAPIKey,
		Timeout: cfg.TranslateTimeout,
	})
	if err != nil {
		log.Warn("translation disabled", map[string]any{"error": err.Error()})
		return nil
	}

	var cache ports.Cache = mem.NewTranslationCache()
	if cfg.RedisAddr != "" {
		cache = rediscache.NewTranslationCache(rediscache.NewClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB))
	}

	return translation.NewCached(c, cache, log, translation.CachedOptions{
		TTL:        cfg.TranslationCacheTTL,
		SourceLang: cfg.DefaultLanguage,
	})
}
