package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"medtrack-core/internal/domain/medications"
)

type MedicationsRepo struct {
	db *sql.DB
}

func NewMedicationsRepo(db *sql.DB) *MedicationsRepo {
	return &MedicationsRepo{db: db}
}

const medicationColumns = `
			id, owner_user_id,
			name, dosage,
			schedule, active,
			inventory_enabled, current_quantity, low_stock_threshold,
			interactions, dose_history,
			created_at, updated_at`

// Save hace upsert por id; created_at no se pisa.
func (r *MedicationsRepo) Save(ctx context.Context, m medications.Medication) error {
	schedule, interactions, history, err := encodeJSONColumns(m)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO medications (`+medicationColumns+`
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			dosage = EXCLUDED.dosage,
			schedule = EXCLUDED.schedule,
			active = EXCLUDED.active,
			inventory_enabled = EXCLUDED.inventory_enabled,
			current_quantity = EXCLUDED.current_quantity,
			low_stock_threshold = EXCLUDED.low_stock_threshold,
			interactions = EXCLUDED.interactions,
			dose_history = EXCLUDED.dose_history,
			updated_at = EXCLUDED.updated_at
	`,
		m.ID,
		m.OwnerUserID,
		m.Name,
		m.Dosage,
		schedule,
		m.Active,
		m.Inventory.Enabled,
		m.Inventory.CurrentQuantity,
		m.Inventory.LowStockThreshold,
		interactions,
		history,
		m.CreatedAt,
		m.UpdatedAt,
	)
	return err
}

func (r *MedicationsRepo) GetByID(ctx context.Context, id string) (medications.Medication, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return medications.Medication{}, medications.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT`+medicationColumns+`
		FROM medications
		WHERE id = $1
	`, id)

	m, err := scanMedication(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return medications.Medication{}, fmt.Errorf("%w: medication %s", medications.ErrNotFound, id)
		}
		return medications.Medication{}, err
	}
	return m, nil
}

func (r *MedicationsRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]medications.Medication, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT`+medicationColumns+`
		FROM medications
		WHERE owner_user_id = $1
		ORDER BY created_at ASC, id ASC
	`, ownerUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]medications.Medication, 0)
	for rows.Next() {
		m, err := scanMedication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}

	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMedication(s rowScanner) (medications.Medication, error) {
	var (
		m                               medications.Medication
		schedule, interactions, history []byte
	)
	if err := s.Scan(
		&m.ID,
		&m.OwnerUserID,
		&m.Name,
		&m.Dosage,
		&schedule,
		&m.Active,
		&m.Inventory.Enabled,
		&m.Inventory.CurrentQuantity,
		&m.Inventory.LowStockThreshold,
		&interactions,
		&history,
		&m.CreatedAt,
		&m.UpdatedAt,
	); err != nil {
		return medications.Medication{}, err
	}

	if err := decodeJSON(schedule, &m.Schedule); err != nil {
		return medications.Medication{}, fmt.Errorf("medication %s schedule: %w", m.ID, err)
	}
	var its []medications.InteractionPayload
	if err := decodeJSON(interactions, &its); err != nil {
		return medications.Medication{}, fmt.Errorf("medication %s interactions: %w", m.ID, err)
	}
	m.Interactions = medications.FromPayload(medications.Payload{Interactions: its}).Interactions
	if err := decodeJSON(history, &m.DoseHistory); err != nil {
		return medications.Medication{}, fmt.Errorf("medication %s dose_history: %w", m.ID, err)
	}
	return m, nil
}

// Las columnas jsonb nunca se guardan como NULL: listas vacías son "[]".
func encodeJSONColumns(m medications.Medication) (schedule, interactions, history []byte, err error) {
	p := medications.ToPayload(m)

	if schedule, err = json.Marshal(nonNil(p.Schedule)); err != nil {
		return nil, nil, nil, err
	}
	if interactions, err = json.Marshal(nonNil(p.Interactions)); err != nil {
		return nil, nil, nil, err
	}
	if history, err = json.Marshal(nonNil(m.DoseHistory)); err != nil {
		return nil, nil, nil, err
	}
	return schedule, interactions, history, nil
}

func decodeJSON(raw []byte, dst any) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dst)
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

var _ medications.Repository = (*MedicationsRepo)(nil)
