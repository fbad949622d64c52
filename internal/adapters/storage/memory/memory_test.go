package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"medtrack-core/internal/domain/alerts"
	"medtrack-core/internal/domain/medications"
	"medtrack-core/internal/ports/translation"
)

func TestMedicationRepo_SaveListGet(t *testing.T) {
	ctx := context.Background()
	repo := NewMedicationRepo()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for _, m := range []medications.Medication{
		{ID: "b", OwnerUserID: "u1", Name: "Second", CreatedAt: base.Add(time.Hour), Schedule: []int{600, 480}},
		{ID: "a", OwnerUserID: "u1", Name: "First", CreatedAt: base},
		{ID: "c", OwnerUserID: "u2", Name: "Other", CreatedAt: base},
	} {
		if err := repo.Save(ctx, m); err != nil {
			t.Fatalf("save %s: %v", m.ID, err)
		}
	}

	list, err := repo.ListByOwner(ctx, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].ID != "a" || list[1].ID != "b" {
		t.Fatalf("unexpected order: %+v", list)
	}

	// mutar la copia no afecta al repo
	list[1].Schedule[0] = 1
	got, err := repo.GetByID(ctx, "b")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Schedule[0] != 600 {
		t.Fatalf("repo state leaked: %v", got.Schedule)
	}

	_, err = repo.GetByID(ctx, "missing")
	if !errors.Is(err, medications.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := repo.Save(ctx, medications.Medication{ID: " "}); err == nil {
		t.Fatalf("expected error for empty id")
	}
}

func TestDismissalRepo_Idempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewDismissalRepo()

	for i := 0; i < 2; i++ {
		if err := repo.Dismiss(ctx, "u1", alerts.LowStockID("m1")); err != nil {
			t.Fatalf("dismiss: %v", err)
		}
	}

	set, _ := repo.List(ctx, "u1")
	if len(set) != 1 || !set.Has("low-stock:m1") {
		t.Fatalf("unexpected set: %v", set)
	}

	other, _ := repo.List(ctx, "u2")
	if len(other) != 0 {
		t.Fatalf("u2 should have no dismissals: %v", other)
	}
}

func TestTranslationCache_TTL(t *testing.T) {
	ctx := context.Background()
	c := NewTranslationCache()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	_ = c.Set(ctx, "es|hello", "hola", time.Minute)
	_ = c.Set(ctx, "es|bye", "adiós", 0)

	if v, err := c.Get(ctx, "es|hello"); err != nil || v != "hola" {
		t.Fatalf("got %q, %v", v, err)
	}

	now = now.Add(2 * time.Minute)
	if _, err := c.Get(ctx, "es|hello"); !errors.Is(err, translation.ErrCacheMiss) {
		t.Fatalf("expected miss after ttl, got %v", err)
	}
	if v, err := c.Get(ctx, "es|bye"); err != nil || v != "adiós" {
		t.Fatalf("no-ttl entry should survive: %q, %v", v, err)
	}
	if c.Len() != 1 {
		t.Fatalf("expired entry should be evicted, len=%d", c.Len())
	}
}
