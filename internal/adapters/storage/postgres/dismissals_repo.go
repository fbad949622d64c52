package postgres

import (
	"context"
	"database/sql"
	"time"

	"medtrack-core/internal/domain/alerts"
)

type DismissalsRepo struct {
	db  *sql.DB
	now func() time.Time
}

func NewDismissalsRepo(db *sql.DB) *DismissalsRepo {
	return &DismissalsRepo{db: db, now: time.Now}
}

// Dismiss es idempotente: un segundo dismiss del mismo id no hace nada.
func (r *DismissalsRepo) Dismiss(ctx context.Context, userID, alertID string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO alert_dismissals (user_id, alert_id, dismissed_at)
		VALUES ($1,$2,$3)
		ON CONFLICT (user_id, alert_id) DO NOTHING
	`, userID, alertID, r.now().UTC())
	return err
}

func (r *DismissalsRepo) List(ctx context.Context, userID string) (alerts.Dismissed, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT alert_id
		FROM alert_dismissals
		WHERE user_id = $1
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := alerts.NewDismissed()
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out[id] = struct{}{}
	}
	return out, rows.Err()
}

var _ alerts.DismissalStore = (*DismissalsRepo)(nil)
