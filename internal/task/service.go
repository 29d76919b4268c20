package task

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// Common errors
var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrTaskAlreadyClaimed = errors.New("this task was just claimed by someone else, please refresh")
	ErrTaskNotClaimed     = errors.New("task is not currently claimed")
	ErrNotClaimant        = errors.New("task is claimed by another member")
)

// Filter selects which slice of the board a listing returns
type Filter string

const (
	FilterOpen Filter = "open"
	FilterMine Filter = "mine"
	FilterAll  Filter = "all"
)

// Actor identifies the member performing a claim/complete/release
type Actor struct {
	ID   int64
	Name string
}

// repository is the persistence surface the service needs
type repository interface {
	Create(ctx context.Context, req *CreateTaskRequest) (*SevaTask, error)
	GetByID(ctx context.Context, id uuid.UUID) (*SevaTask, error)
	List(ctx context.Context) ([]*SevaTask, error)
	Claim(ctx context.Context, id uuid.UUID, actorID int64, actorName string) (*SevaTask, error)
	Complete(ctx context.Context, id uuid.UUID, actorID int64) (*SevaTask, error)
	Release(ctx context.Context, id uuid.UUID, actorID int64) (*SevaTask, error)
}

// Service handles task board business logic
type Service struct {
	repo repository
}

// NewService creates a new task service with repository dependency injected
func NewService(repo repository) *Service {
	return &Service{repo: repo}
}

// Create puts a new open task on the board
func (s *Service) Create(ctx context.Context, req *CreateTaskRequest) (*SevaTask, error) {
	return s.repo.Create(ctx, req)
}

// GetByID retrieves a task by its ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*SevaTask, error) {
	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

// List returns the board filtered to open tasks, the actor's tasks, or all.
// The mine filter without an actor degrades to an empty list.
func (s *Service) List(ctx context.Context, filter Filter, actor *Actor) ([]*SevaTask, error) {
	tasks, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	switch filter {
	case FilterOpen:
		filtered := make([]*SevaTask, 0, len(tasks))
		for _, t := range tasks {
			if t.Status == StatusOpen {
				filtered = append(filtered, t)
			}
		}
		return filtered, nil
	case FilterMine:
		filtered := make([]*SevaTask, 0)
		if actor == nil {
			return filtered, nil
		}
		for _, t := range tasks {
			if t.ClaimedBy != nil && *t.ClaimedBy == actor.ID {
				filtered = append(filtered, t)
			}
		}
		return filtered, nil
	default:
		return tasks, nil
	}
}

// Claim attempts to claim an open task for the actor. The conditional
// update in the repository decides the race; when it reports zero rows the
// current row disambiguates a missing task from one already claimed.
func (s *Service) Claim(ctx context.Context, id uuid.UUID, actor Actor) (*SevaTask, error) {
	task, err := s.repo.Claim(ctx, id, actor.ID, actor.Name)
	if err != nil {
		return nil, err
	}
	if task != nil {
		return task, nil
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrTaskNotFound
	}
	return nil, ErrTaskAlreadyClaimed
}

// Complete marks a task the actor has claimed as complete. Authorization is
// by identity match against claimed_by, not role.
func (s *Service) Complete(ctx context.Context, id uuid.UUID, actor Actor) (*SevaTask, error) {
	task, err := s.repo.Complete(ctx, id, actor.ID)
	if err != nil {
		return nil, err
	}
	if task != nil {
		return task, nil
	}

	return nil, s.explainTransitionFailure(ctx, id, actor)
}

// Release returns a task the actor has claimed to the open pool, so an
// abandoned claim is never stuck forever.
func (s *Service) Release(ctx context.Context, id uuid.UUID, actor Actor) (*SevaTask, error) {
	task, err := s.repo.Release(ctx, id, actor.ID)
	if err != nil {
		return nil, err
	}
	if task != nil {
		return task, nil
	}

	return nil, s.explainTransitionFailure(ctx, id, actor)
}

// explainTransitionFailure turns a zero-row claimed-task transition into the
// right sentinel by inspecting the current row
func (s *Service) explainTransitionFailure(ctx context.Context, id uuid.UUID, actor Actor) error {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current == nil {
		return ErrTaskNotFound
	}
	// Ownership outranks state: a non-claimant is refused whether the task
	// is still claimed or already complete
	if current.ClaimedBy != nil && *current.ClaimedBy != actor.ID {
		return ErrNotClaimant
	}
	if current.Status != StatusClaimed {
		return ErrTaskNotClaimed
	}
	// Claimed by the actor yet the guarded update matched nothing: the row
	// changed between the update and this read. Ask the caller to retry.
	return ErrTaskAlreadyClaimed
}
