package alerts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"medtrack-core/internal/domain/medications"
	"medtrack-core/internal/platform/metrics"
)

var ErrInvalidInput = errors.New("invalid input")

type MedicationLister interface {
	ListByOwner(ctx context.Context, ownerUserID string) ([]medications.Medication, error)
}

// DismissalStore persiste los IDs descartados por usuario. Dismiss es idempotente.
type DismissalStore interface {
	Dismiss(ctx context.Context, userID, alertID string) error
	List(ctx context.Context, userID string) (Dismissed, error)
}

type Service struct {
	meds       MedicationLister
	dismissals DismissalStore
	agg        *Aggregator
}

func NewService(meds MedicationLister, dismissals DismissalStore, agg *Aggregator) *Service {
	if agg == nil {
		agg = NewAggregator(nil, nil, nil, Options{})
	}
	return &Service{
		meds:       meds,
		dismissals: dismissals,
		agg:        agg,
	}
}

func (s *Service) Feed(ctx context.Context, userID, lang string) (Feed, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Feed{}, ErrInvalidInput
	}

	meds, err := s.meds.ListByOwner(ctx, userID)
	if err != nil {
		return Feed{}, fmt.Errorf("list medications: %w", err)
	}
	dismissed, err := s.dismissals.List(ctx, userID)
	if err != nil {
		return Feed{}, fmt.Errorf("list dismissals: %w", err)
	}

	feed := Feed{Alerts: s.agg.Compute(ctx, meds, dismissed, lang)}
	if len(feed.Alerts) == 0 {
		feed.AllClear = true
		feed.AllClearText = s.agg.AllClearText(lang)
	}
	return feed, nil
}

func (s *Service) Dismiss(ctx context.Context, userID, alertID string) error {
	userID = strings.TrimSpace(userID)
	alertID = strings.TrimSpace(alertID)
	if userID == "" || alertID == "" {
		return ErrInvalidInput
	}
	if err := s.dismissals.Dismiss(ctx, userID, alertID); err != nil {
		return err
	}
	metrics.ObserveDismissal()
	return nil
}
