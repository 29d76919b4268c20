package seva

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"
)

// Repository handles seva check-in persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new seva repository with database dependency injected
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Insert creates a new open check-in. The partial unique index on
// (member_id, seva_type) WHERE checked_out_at IS NULL rejects a second
// open record for the pair; that violation, not a prior read, is the
// conflict signal.
func (r *Repository) Insert(ctx context.Context, memberID int64, sevaType string) (*CheckIn, error) {
	query := `
		INSERT INTO ashram_seva (member_id, seva_type)
		VALUES ($1, $2)
		RETURNING id, member_id, seva_type, checked_in_at, checked_out_at, duration_minutes
	`

	checkIn := &CheckIn{}
	err := r.db.QueryRowContext(ctx, query, memberID, sevaType).Scan(
		&checkIn.ID,
		&checkIn.MemberID,
		&checkIn.SevaType,
		&checkIn.CheckedInAt,
		&checkIn.CheckedOutAt,
		&checkIn.DurationMinutes,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, ErrAlreadyCheckedIn
		}
		return nil, fmt.Errorf("failed to check in: %w", err)
	}

	return checkIn, nil
}

// GetOpen retrieves the open check-in for a (member, type) pair, nil if none
func (r *Repository) GetOpen(ctx context.Context, memberID int64, sevaType string) (*CheckIn, error) {
	query := `
		SELECT id, member_id, seva_type, checked_in_at, checked_out_at, duration_minutes
		FROM ashram_seva
		WHERE member_id = $1 AND seva_type = $2 AND checked_out_at IS NULL
	`

	checkIn := &CheckIn{}
	err := r.db.QueryRowContext(ctx, query, memberID, sevaType).Scan(
		&checkIn.ID,
		&checkIn.MemberID,
		&checkIn.SevaType,
		&checkIn.CheckedInAt,
		&checkIn.CheckedOutAt,
		&checkIn.DurationMinutes,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get open check-in: %w", err)
	}

	return checkIn, nil
}

// Close sets checked_out_at and the derived duration on an open record.
// The IS NULL predicate keeps a double checkout from rewriting a closed
// row; zero rows means the record was already closed (or never existed).
func (r *Repository) Close(ctx context.Context, id int64, checkedOutAt time.Time, durationMinutes int) (*CheckIn, error) {
	query := `
		UPDATE ashram_seva
		SET checked_out_at = $2, duration_minutes = $3
		WHERE id = $1 AND checked_out_at IS NULL
		RETURNING id, member_id, seva_type, checked_in_at, checked_out_at, duration_minutes
	`

	checkIn := &CheckIn{}
	err := r.db.QueryRowContext(ctx, query, id, checkedOutAt, durationMinutes).Scan(
		&checkIn.ID,
		&checkIn.MemberID,
		&checkIn.SevaType,
		&checkIn.CheckedInAt,
		&checkIn.CheckedOutAt,
		&checkIn.DurationMinutes,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to close check-in: %w", err)
	}

	return checkIn, nil
}

// History retrieves a member's check-ins, most recent first
func (r *Repository) History(ctx context.Context, memberID int64, limit int) ([]*CheckIn, error) {
	query := `
		SELECT id, member_id, seva_type, checked_in_at, checked_out_at, duration_minutes
		FROM ashram_seva
		WHERE member_id = $1
		ORDER BY checked_in_at DESC
		LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, query, memberID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}
	defer rows.Close()

	var checkIns []*CheckIn
	for rows.Next() {
		checkIn := &CheckIn{}
		if err := rows.Scan(
			&checkIn.ID,
			&checkIn.MemberID,
			&checkIn.SevaType,
			&checkIn.CheckedInAt,
			&checkIn.CheckedOutAt,
			&checkIn.DurationMinutes,
		); err != nil {
			return nil, fmt.Errorf("failed to scan check-in: %w", err)
		}
		checkIns = append(checkIns, checkIn)
	}

	return checkIns, nil
}

// ListSince retrieves check-ins begun at or after the given time together
// with the member's name, most recent first
func (r *Repository) ListSince(ctx context.Context, since time.Time) ([]*CheckIn, []string, error) {
	query := `
		SELECT s.id, s.member_id, s.seva_type, s.checked_in_at, s.checked_out_at, s.duration_minutes, m.name
		FROM ashram_seva s
		JOIN ashram_members m ON m.id = s.member_id
		WHERE s.checked_in_at >= $1
		ORDER BY s.checked_in_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, since)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list check-ins: %w", err)
	}
	defer rows.Close()

	var checkIns []*CheckIn
	var names []string
	for rows.Next() {
		checkIn := &CheckIn{}
		var name string
		if err := rows.Scan(
			&checkIn.ID,
			&checkIn.MemberID,
			&checkIn.SevaType,
			&checkIn.CheckedInAt,
			&checkIn.CheckedOutAt,
			&checkIn.DurationMinutes,
			&name,
		); err != nil {
			return nil, nil, fmt.Errorf("failed to scan check-in: %w", err)
		}
		checkIns = append(checkIns, checkIn)
		names = append(names, name)
	}

	return checkIns, names, nil
}
