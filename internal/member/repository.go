package member

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
)

// Repository handles member data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new member repository with database dependency injected
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new member. The unique index on telegram_id is the
// authority on duplicate registrations; a violation surfaces as
// ErrTelegramIDTaken rather than trusting a prior read.
func (r *Repository) Create(ctx context.Context, name string, mode Mode, telegramID *string) (*Member, error) {
	query := `
		INSERT INTO ashram_members (name, mode, telegram_id)
		VALUES ($1, $2, $3)
		RETURNING id, name, mode, telegram_id, joined_at
	`

	member := &Member{}
	err := r.db.QueryRowContext(ctx, query, name, mode, telegramID).Scan(
		&member.ID,
		&member.Name,
		&member.Mode,
		&member.TelegramID,
		&member.JoinedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrTelegramIDTaken
		}
		return nil, fmt.Errorf("failed to create member: %w", err)
	}

	return member, nil
}

// GetByID retrieves a member by their ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*Member, error) {
	query := `
		SELECT id, name, mode, telegram_id, joined_at
		FROM ashram_members
		WHERE id = $1
	`

	member := &Member{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&member.ID,
		&member.Name,
		&member.Mode,
		&member.TelegramID,
		&member.JoinedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return member, nil
}

// GetByTelegramID retrieves a member by their bot channel id
func (r *Repository) GetByTelegramID(ctx context.Context, telegramID string) (*Member, error) {
	query := `
		SELECT id, name, mode, telegram_id, joined_at
		FROM ashram_members
		WHERE telegram_id = $1
	`

	member := &Member{}
	err := r.db.QueryRowContext(ctx, query, telegramID).Scan(
		&member.ID,
		&member.Name,
		&member.Mode,
		&member.TelegramID,
		&member.JoinedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get member by telegram id: %w", err)
	}

	return member, nil
}

// List retrieves all members with pagination
func (r *Repository) List(ctx context.Context, limit, offset int) ([]*Member, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM ashram_members`
	if err := r.db.QueryRowContext(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count members: %w", err)
	}

	query := `
		SELECT id, name, mode, telegram_id, joined_at
		FROM ashram_members
		ORDER BY joined_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []*Member
	for rows.Next() {
		member := &Member{}
		if err := rows.Scan(
			&member.ID,
			&member.Name,
			&member.Mode,
			&member.TelegramID,
			&member.JoinedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, member)
	}

	return members, total, nil
}

// SwitchMode flips a member between physical and remote in a single statement
func (r *Repository) SwitchMode(ctx context.Context, id int64) (*Member, error) {
	query := `
		UPDATE ashram_members
		SET mode = CASE mode WHEN 'physical' THEN 'remote' ELSE 'physical' END
		WHERE id = $1
		RETURNING id, name, mode, telegram_id, joined_at
	`

	member := &Member{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&member.ID,
		&member.Name,
		&member.Mode,
		&member.TelegramID,
		&member.JoinedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to switch mode: %w", err)
	}

	return member, nil
}

// isUniqueViolation reports whether err is a Postgres unique constraint error
func isUniqueViolation(err error) bool {
	if pqErr, ok := err.(*pq.Error); ok {
		return pqErr.Code == "23505"
	}
	return false
}
