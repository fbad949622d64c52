package router

import (
	"database/sql"
	"net/http"
	"time"

	mem "medtrack-core/internal/adapters/storage/memory"
	pg "medtrack-core/internal/adapters/storage/postgres"
	"medtrack-core/internal/domain/alerts"
	"medtrack-core/internal/domain/dosage"
	"medtrack-core/internal/domain/drugs"
	"medtrack-core/internal/domain/medications"
	"medtrack-core/internal/domain/symptoms"
	"medtrack-core/internal/middleware"
	"medtrack-core/internal/platform/i18n"
	"medtrack-core/internal/platform/logger"
	"medtrack-core/internal/ports/auth"
	"medtrack-core/internal/ports/druglabels"
	"medtrack-core/internal/ports/translation"

	_ "medtrack-core/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)
	Logger       logger.Logger

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Overrides explícitos (tests / wiring custom). Ganan sobre DB.
	Medications medications.Repository
	Dismissals  alerts.DismissalStore

	DrugLabels druglabels.Source      // nil = solo dataset local
	Translator translation.Translator // nil = sin traducción

	DefaultLanguage  string
	MinQueryLength   int
	RemoteTimeout    time.Duration
	TranslateTimeout time.Duration
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier, log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	medRepo, dismissals := repositories(opts)

	// Services por módulo
	medsSvc := medications.NewService(medRepo)

	matcher := drugs.NewMatcher(symptoms.Default(), opts.DrugLabels, log, drugs.Options{
		MinQueryLength: opts.MinQueryLength,
		RemoteTimeout:  opts.RemoteTimeout,
	})
	drugsSvc := drugs.NewService(matcher, drugs.DefaultCatalog(), medsSvc, log)

	resolver := dosage.NewResolver(dosage.DefaultTable())

	agg := alerts.NewAggregator(opts.Translator, i18n.Default(), log, alerts.Options{
		DefaultLanguage:  opts.DefaultLanguage,
		TranslateTimeout: opts.TranslateTimeout,
	})
	alertsSvc := alerts.NewService(medsSvc, dismissals, agg)

	// Rutas por módulo
	drugs.RegisterRoutes(r, drugsSvc)
	dosage.RegisterRoutes(r, resolver)
	medications.RegisterRoutes(r, medsSvc)
	alerts.RegisterRoutes(r, alertsSvc)

	return r
}

func repositories(opts Options) (medications.Repository, alerts.DismissalStore) {
	var (
		medRepo    medications.Repository
		dismissals alerts.DismissalStore
	)

	if opts.DB != nil {
		medRepo = pg.NewMedicationsRepo(opts.DB)
		dismissals = pg.NewDismissalsRepo(opts.DB)
	} else {
		medRepo = mem.NewMedicationRepo()
		dismissals = mem.NewDismissalRepo()
	}

	if opts.Medications != nil {
		medRepo = opts.Medications
	}
	if opts.Dismissals != nil {
		dismissals = opts.Dismissals
	}
	return medRepo, dismissals
}
