package task

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const taskColumns = `id, title, description, category, risk_level, location,
		skill_tags, status, claimed_by, claimed_by_name, claimed_at, completed_at, created_at`

// Repository handles task data persistence. All state transitions are
// expressed as conditional updates so the database is the sole authority
// on who wins a race; zero rows affected means the precondition no longer
// holds, never that the update silently applied.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new task repository with database dependency injected
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func scanTask(row interface{ Scan(...interface{}) error }) (*SevaTask, error) {
	task := &SevaTask{}
	err := row.Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.Category,
		&task.RiskLevel,
		&task.Location,
		pq.Array(&task.SkillTags),
		&task.Status,
		&task.ClaimedBy,
		&task.ClaimedByName,
		&task.ClaimedAt,
		&task.CompletedAt,
		&task.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return task, nil
}

// Create inserts a new open task onto the board
func (r *Repository) Create(ctx context.Context, req *CreateTaskRequest) (*SevaTask, error) {
	query := `
		INSERT INTO seva_tasks (title, description, category, risk_level, location, skill_tags)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + taskColumns

	task, err := scanTask(r.db.QueryRowContext(ctx, query,
		req.Title, req.Description, req.Category, req.RiskLevel, req.Location, pq.Array(req.SkillTags)))
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

// GetByID retrieves a task by its ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*SevaTask, error) {
	query := `SELECT ` + taskColumns + ` FROM seva_tasks WHERE id = $1`

	task, err := scanTask(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return task, nil
}

// List retrieves tasks, open first then newest first
func (r *Repository) List(ctx context.Context) ([]*SevaTask, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM seva_tasks
		ORDER BY status ASC, created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*SevaTask
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}

	return tasks, nil
}

// Claim atomically moves an open task to claimed for the given actor.
// The status predicate is the concurrency contract: of two racing
// claimers, exactly one matches a row still in 'open'. Returns nil when
// zero rows matched; the caller then looks at the current row to tell
// NotFound from Conflict.
func (r *Repository) Claim(ctx context.Context, id uuid.UUID, actorID int64, actorName string) (*SevaTask, error) {
	query := `
		UPDATE seva_tasks
		SET status = 'claimed', claimed_by = $2, claimed_by_name = $3, claimed_at = NOW()
		WHERE id = $1 AND status = 'open'
		RETURNING ` + taskColumns

	task, err := scanTask(r.db.QueryRowContext(ctx, query, id, actorID, actorName))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to claim task: %w", err)
	}
	return task, nil
}

// Complete atomically moves a task claimed by the actor to complete.
// Returns nil when zero rows matched.
func (r *Repository) Complete(ctx context.Context, id uuid.UUID, actorID int64) (*SevaTask, error) {
	query := `
		UPDATE seva_tasks
		SET status = 'complete', completed_at = NOW()
		WHERE id = $1 AND status = 'claimed' AND claimed_by = $2
		RETURNING ` + taskColumns

	task, err := scanTask(r.db.QueryRowContext(ctx, query, id, actorID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to complete task: %w", err)
	}
	return task, nil
}

// Release returns a task claimed by the actor to the open pool, clearing
// the claim fields. Returns nil when zero rows matched.
func (r *Repository) Release(ctx context.Context, id uuid.UUID, actorID int64) (*SevaTask, error) {
	query := `
		UPDATE seva_tasks
		SET status = 'open', claimed_by = NULL, claimed_by_name = NULL, claimed_at = NULL
		WHERE id = $1 AND status = 'claimed' AND claimed_by = $2
		RETURNING ` + taskColumns

	task, err := scanTask(r.db.QueryRowContext(ctx, query, id, actorID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to release task: %w", err)
	}
	return task, nil
}
