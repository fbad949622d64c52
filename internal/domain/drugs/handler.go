package drugs

import (
	"encoding/json"
	"net/http"

	"medtrack-core/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/drugs/search", searchHandler(svc))
}

type candidateResponse struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Dosage      string `json:"dosage"`
	Description string `json:"description"`
	Source      Source `json:"source"`
	Score       int    `json:"match_score"`
}

type searchResponse struct {
	Query      string              `json:"query"`
	Category   string              `json:"category"`
	Results    []candidateResponse `json:"results"`
	Suggestion string              `json:"suggestion,omitempty"`
}

// searchHandler godoc
// @Summary Buscar medicamentos
// @Description Busca en el catálogo local, en las medicaciones del usuario y (best-effort) en la fuente remota de etiquetas. Acepta síntomas en varios idiomas. Si no hay resultados puede devolver una sugerencia ortográfica.
// @Tags drugs
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, ID de usuario para depuración"
// @Param q query string true "Texto libre, nombre o síntoma"
// @Param category query string false "All (default), Your Medications o una categoría"
// @Success 200 {object} searchResponse
// @Router /drugs/search [get]
func searchHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Usuario opcional: sin claims se busca solo en el catálogo.
		userID := ""
		if claims, ok := middleware.GetClaims(r.Context()); ok {
			userID = claims.UserID
		}

		category := r.URL.Query().Get("category")
		if category == "" {
			category = CategoryAll
		}

		res := svc.Search(r.Context(), userID, r.URL.Query().Get("q"), category)
		writeJSON(w, http.StatusOK, toSearchResponse(res))
	}
}

func toSearchResponse(res Result) searchResponse {
	out := searchResponse{
		Query:      res.Query,
		Category:   res.Category,
		Results:    make([]candidateResponse, 0, len(res.Candidates)),
		Suggestion: res.Suggestion,
	}
	for _, c := range res.Candidates {
		out.Results = append(out.Results, candidateResponse{
			Name:        c.Name,
			Category:    c.Category,
			Dosage:      c.Dosage,
			Description: c.Description,
			Source:      c.Source,
			Score:       c.Score,
		})
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
