package drugs

import (
	"context"
	"strings"

	"medtrack-core/internal/domain/medications"
	"medtrack-core/internal/platform/logger"
)

// MedicationLister evita acoplar drugs al repositorio concreto.
type MedicationLister interface {
	ListByOwner(ctx context.Context, ownerUserID string) ([]medications.Medication, error)
}

// Service arma el dataset local (catálogo + medicaciones del usuario) y busca.
type Service struct {
	matcher *Matcher
	catalog []Candidate
	meds    MedicationLister
	log     logger.Logger
}

func NewService(matcher *Matcher, catalog []Candidate, meds MedicationLister, log logger.Logger) *Service {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		matcher: matcher,
		catalog: catalog,
		meds:    meds,
		log:     log,
	}
}

// Search nunca falla: si no se pueden leer las medicaciones del usuario se busca
// solo en el catálogo.
func (s *Service) Search(ctx context.Context, userID, query, category string) Result {
	return s.matcher.Search(ctx, query, category, s.Dataset(ctx, userID))
}

// Dataset = catálogo + medicaciones del usuario (source user).
func (s *Service) Dataset(ctx context.Context, userID string) []Candidate {
	out := make([]Candidate, 0, len(s.catalog))
	out = append(out, s.catalog...)

	userID = strings.TrimSpace(userID)
	if userID == "" || s.meds == nil {
		return out
	}

	meds, err := s.meds.ListByOwner(ctx, userID)
	if err != nil {
		s.log.Warn("list user medications failed, searching catalog only", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return out
	}
	for _, m := range meds {
		out = append(out, FromMedication(m))
	}
	return out
}

func FromMedication(m medications.Medication) Candidate {
	return Candidate{
		Name:     m.Name,
		Category: CategoryMine,
		Dosage:   m.Dosage,
		Source:   SourceUser,
	}
}
