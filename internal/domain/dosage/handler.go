package dosage

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, resolver *Resolver) {
	r.Get("/dosage", recommendHandler(resolver))
}

// recommendationResponse es la recomendación educativa devuelta por la API.
type recommendationResponse struct {
	Medicine     string  `json:"medicine"`
	MatchedAs    string  `json:"matched_as"`
	MatchScore   float64 `json:"match_score"`
	Category     string  `json:"category"`
	Age          int     `json:"age"`
	Gender       Gender  `json:"gender,omitempty"`
	AgeGroup     string  `json:"age_group"`
	Dosage       string  `json:"dosage"`
	Frequency    string  `json:"frequency"`
	MaxDaily     string  `json:"max_daily"`
	Notes        string  `json:"notes,omitempty"`
	GenderNote   string  `json:"gender_note,omitempty"`
	FallbackBand bool    `json:"fallback_band"`
	Disclaimer   string  `json:"disclaimer"`
}

type notFoundResponse struct {
	Error    string   `json:"error"`
	Query    string   `json:"query"`
	Examples []string `json:"examples"`
}

// recommendHandler godoc
// @Summary Recomendación de dosis por edad
// @Description Resuelve el nombre (tolera typos y alias) y devuelve la banda de edad correspondiente. Si la edad supera todas las bandas se usa la última. Siempre incluye un disclaimer: no es una indicación clínica.
// @Tags dosage
// @Produce json
// @Param name query string true "Nombre del medicamento (>= 2 caracteres)"
// @Param age query int true "Edad en años (0-150)"
// @Param gender query string false "male, female u other"
// @Success 200 {object} recommendationResponse
// @Failure 400 {string} string "invalid medicine name / invalid age"
// @Failure 404 {object} notFoundResponse
// @Router /dosage [get]
func recommendHandler(resolver *Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		rec, err := resolver.Recommend(q.Get("name"), q.Get("age"), q.Get("gender"))
		if err != nil {
			var nf *NotFoundError
			switch {
			case errors.Is(err, ErrInvalidName), errors.Is(err, ErrInvalidAge):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.As(err, &nf):
				writeJSON(w, http.StatusNotFound, notFoundResponse{
					Error:    nf.Error(),
					Query:    nf.Query,
					Examples: nf.Examples,
				})
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toRecommendationResponse(rec))
	}
}

func toRecommendationResponse(rec Recommendation) recommendationResponse {
	return recommendationResponse{
		Medicine:     rec.Medicine,
		MatchedAs:    rec.MatchedAs,
		MatchScore:   rec.MatchScore,
		Category:     rec.Category,
		Age:          rec.Age,
		Gender:       rec.Gender,
		AgeGroup:     rec.AgeGroup,
		Dosage:       rec.Dosage,
		Frequency:    rec.Frequency,
		MaxDaily:     rec.MaxDaily,
		Notes:        rec.Notes,
		GenderNote:   rec.GenderNote,
		FallbackBand: rec.FallbackBand,
		Disclaimer:   rec.Disclaimer,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
