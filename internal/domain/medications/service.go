package medications

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

const minutesPerDay = 24 * 60

// Service expone la colección de medicaciones a los demás módulos (search, alerts).
// Las escrituras reales (mark-taken, edición, borrado) ocurren fuera de este core;
// Save existe para que adapters/ingesta puedan sincronizar.
type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *Service) Save(ctx context.Context, m Medication) (Medication, error) {
	m.ID = strings.TrimSpace(m.ID)
	m.OwnerUserID = strings.TrimSpace(m.OwnerUserID)
	m.Name = strings.TrimSpace(m.Name)

	if m.ID == "" || m.OwnerUserID == "" || m.Name == "" {
		return Medication{}, ErrInvalidInput
	}
	if err := validate(m); err != nil {
		return Medication{}, err
	}

	now := s.now()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now

	if err := s.repo.Save(ctx, m); err != nil {
		return Medication{}, err
	}
	return m, nil
}

func (s *Service) Get(ctx context.Context, id string) (Medication, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Medication{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) ([]Medication, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByOwner(ctx, ownerUserID)
}

func validate(m Medication) error {
	if m.Inventory.CurrentQuantity < 0 || m.Inventory.LowStockThreshold < 0 {
		return fmt.Errorf("%w: inventory quantities must be >= 0", ErrInvalidInput)
	}

	seen := make(map[int]struct{}, len(m.Schedule))
	for _, minute := range m.Schedule {
		if minute < 0 || minute >= minutesPerDay {
			return fmt.Errorf("%w: schedule minute %d out of range", ErrInvalidInput, minute)
		}
		if _, dup := seen[minute]; dup {
			return fmt.Errorf("%w: duplicate schedule minute %d", ErrInvalidInput, minute)
		}
		seen[minute] = struct{}{}
	}
	return nil
}
