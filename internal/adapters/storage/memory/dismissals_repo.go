package memory

import (
	"context"
	"sync"

	"medtrack-core/internal/domain/alerts"
)

// dismissalRepo no sobrevive a un reinicio del proceso.
type dismissalRepo struct {
	mu     sync.RWMutex
	byUser map[string]alerts.Dismissed
}

func NewDismissalRepo() alerts.DismissalStore {
	return &dismissalRepo{
		byUser: make(map[string]alerts.Dismissed),
	}
}

func (r *dismissalRepo) Dismiss(ctx context.Context, userID, alertID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.byUser[userID]
	if !ok {
		set = alerts.NewDismissed()
		r.byUser[userID] = set
	}
	set[alertID] = struct{}{}
	return nil
}

func (r *dismissalRepo) List(ctx context.Context, userID string) (alerts.Dismissed, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(alerts.Dismissed, len(r.byUser[userID]))
	for id := range r.byUser[userID] {
		out[id] = struct{}{}
	}
	return out, nil
}
