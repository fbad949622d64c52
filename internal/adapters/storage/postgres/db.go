package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Esquema esperado:
//
//	medications(id text pk, owner_user_id text, name text, dosage text,
//	            schedule jsonb, active bool,
//	            inventory_enabled bool, current_quantity int, low_stock_threshold int,
//	            interactions jsonb, dose_history jsonb,
//	            created_at timestamptz, updated_at timestamptz)
//	alert_dismissals(user_id text, alert_id text, dismissed_at timestamptz,
//	                 primary key (user_id, alert_id))

// Open abre un pool a Postgres usando pgx (database/sql) y verifica la conexión.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return db, nil
}
