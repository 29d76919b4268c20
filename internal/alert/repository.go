package alert

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Repository handles alert persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new alert repository with database dependency injected
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create appends a new alert
func (r *Repository) Create(ctx context.Context, alertType, title, message string, triggeredBy *int64) (*Alert, error) {
	query := `
		INSERT INTO ashram_alerts (type, title, message, triggered_by)
		VALUES ($1, $2, $3, $4)
		RETURNING id, type, title, message, triggered_by, created_at
	`

	alert := &Alert{}
	err := r.db.QueryRowContext(ctx, query, alertType, title, message, triggeredBy).Scan(
		&alert.ID,
		&alert.Type,
		&alert.Title,
		&alert.Message,
		&alert.TriggeredBy,
		&alert.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create alert: %w", err)
	}

	return alert, nil
}

// ListLatest retrieves the most recent alerts, newest first
func (r *Repository) ListLatest(ctx context.Context, limit int) ([]*Alert, error) {
	query := `
		SELECT id, type, title, message, triggered_by, created_at
		FROM ashram_alerts
		ORDER BY created_at DESC
		LIMIT $1
	`
	return r.list(ctx, query, limit)
}

// ListSince retrieves alerts created at or after the given time, newest first
func (r *Repository) ListSince(ctx context.Context, since time.Time) ([]*Alert, error) {
	query := `
		SELECT id, type, title, message, triggered_by, created_at
		FROM ashram_alerts
		WHERE created_at >= $1
		ORDER BY created_at DESC
	`
	return r.list(ctx, query, since)
}

func (r *Repository) list(ctx context.Context, query string, arg interface{}) ([]*Alert, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	defer rows.Close()

	var alerts []*Alert
	for rows.Next() {
		alert := &Alert{}
		if err := rows.Scan(
			&alert.ID,
			&alert.Type,
			&alert.Title,
			&alert.Message,
			&alert.TriggeredBy,
			&alert.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan alert: %w", err)
		}
		alerts = append(alerts, alert)
	}

	return alerts, nil
}
