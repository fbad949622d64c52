package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"medtrack-core/internal/domain/medications"
)

type medicationRepo struct {
	mu   sync.RWMutex
	byID map[string]medications.Medication
}

func NewMedicationRepo() medications.Repository {
	return &medicationRepo{
		byID: make(map[string]medications.Medication),
	}
}

// Save hace upsert por ID.
func (r *medicationRepo) Save(ctx context.Context, m medications.Medication) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(m.ID) == "" {
		return errors.New("medication id required")
	}
	r.byID[m.ID] = clone(m)
	return nil
}

func (r *medicationRepo) GetByID(ctx context.Context, id string) (medications.Medication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.byID[id]
	if !ok {
		return medications.Medication{}, fmt.Errorf("%w: medication %s", medications.ErrNotFound, id)
	}
	return clone(m), nil
}

func (r *medicationRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]medications.Medication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]medications.Medication, 0)
	for _, m := range r.byID {
		if m.OwnerUserID == ownerUserID {
			out = append(out, clone(m))
		}
	}

	// Orden estable por created_at asc, luego id (el feed de alertas depende del orden)
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

// clone copia los slices para que el llamador no mute el estado del repo.
func clone(m medications.Medication) medications.Medication {
	m.Schedule = append([]int(nil), m.Schedule...)
	m.Interactions = append([]medications.Interaction(nil), m.Interactions...)
	m.DoseHistory = append(m.DoseHistory[:0:0], m.DoseHistory...)
	return m
}
