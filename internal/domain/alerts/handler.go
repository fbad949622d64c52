package alerts

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"medtrack-core/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/me/alerts", feedHandler(svc))
	r.Post("/me/alerts/{alertID}/dismiss", dismissHandler(svc))
}

type alertResponse struct {
	ID                 string `json:"id"`
	Kind               Kind   `json:"kind"`
	Title              string `json:"title"`
	Message            string `json:"message"`
	SourceMedicationID string `json:"source_medication_id"`
	Severity           string `json:"severity,omitempty"`
}

type feedResponse struct {
	Alerts       []alertResponse `json:"alerts"`
	AllClear     bool            `json:"all_clear"`
	AllClearText string          `json:"all_clear_text,omitempty"`
}

// feedHandler godoc
// @Summary Feed de alertas
// @Description Alertas de interacción y de stock bajo del usuario, sin las descartadas. El texto libre se traduce a lang (best-effort).
// @Tags alerts
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param lang query string false "Idioma (en, es, hi). Default: idioma del usuario"
// @Success 200 {object} feedResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 500 {string} string "internal error"
// @Router /me/alerts [get]
func feedHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		lang := r.URL.Query().Get("lang")
		if strings.TrimSpace(lang) == "" {
			lang = claims.Language
		}

		feed, err := svc.Feed(r.Context(), claims.UserID, lang)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := feedResponse{
			Alerts:       make([]alertResponse, 0, len(feed.Alerts)),
			AllClear:     feed.AllClear,
			AllClearText: feed.AllClearText,
		}
		for _, a := range feed.Alerts {
			out.Alerts = append(out.Alerts, alertResponse(a))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// dismissHandler godoc
// @Summary Descartar alerta
// @Description Agrega el ID al conjunto de descartadas del usuario. Idempotente.
// @Tags alerts
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param alertID path string true "ID de la alerta (p.ej. low-stock:{medicationId})"
// @Success 204 {string} string "no content"
// @Failure 400 {string} string "invalid input"
// @Failure 401 {string} string "unauthorized"
// @Router /me/alerts/{alertID}/dismiss [post]
func dismissHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		alertID := chi.URLParam(r, "alertID")
		// chi rutea sobre RawPath cuando existe (p.ej. "%2F" en el nombre del medicamento)
		if r.URL.RawPath != "" {
			unescaped, err := url.PathUnescape(alertID)
			if err != nil {
				http.Error(w, "invalid input", http.StatusBadRequest)
				return
			}
			alertID = unescaped
		}

		err := svc.Dismiss(r.Context(), claims.UserID, alertID)
		switch {
		case err == nil:
			w.WriteHeader(http.StatusNoContent)
		case errors.Is(err, ErrInvalidInput):
			http.Error(w, "invalid input", http.StatusBadRequest)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
