package task

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRepository struct {
	createFn   func(ctx context.Context, req *CreateTaskRequest) (*SevaTask, error)
	getByIDFn  func(ctx context.Context, id uuid.UUID) (*SevaTask, error)
	listFn     func(ctx context.Context) ([]*SevaTask, error)
	claimFn    func(ctx context.Context, id uuid.UUID, actorID int64, actorName string) (*SevaTask, error)
	completeFn func(ctx context.Context, id uuid.UUID, actorID int64) (*SevaTask, error)
	releaseFn  func(ctx context.Context, id uuid.UUID, actorID int64) (*SevaTask, error)
}

func (m *mockRepository) Create(ctx context.Context, req *CreateTaskRequest) (*SevaTask, error) {
	return m.createFn(ctx, req)
}

func (m *mockRepository) GetByID(ctx context.Context, id uuid.UUID) (*SevaTask, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockRepository) List(ctx context.Context) ([]*SevaTask, error) {
	return m.listFn(ctx)
}

func (m *mockRepository) Claim(ctx context.Context, id uuid.UUID, actorID int64, actorName string) (*SevaTask, error) {
	return m.claimFn(ctx, id, actorID, actorName)
}

func (m *mockRepository) Complete(ctx context.Context, id uuid.UUID, actorID int64) (*SevaTask, error) {
	return m.completeFn(ctx, id, actorID)
}

func (m *mockRepository) Release(ctx context.Context, id uuid.UUID, actorID int64) (*SevaTask, error) {
	return m.releaseFn(ctx, id, actorID)
}

func openTask(id uuid.UUID) *SevaTask {
	return &SevaTask{
		ID:        id,
		Title:     "Sweep the meditation hall",
		RiskLevel: RiskAnyone,
		Location:  LocationOnsite,
		Status:    StatusOpen,
		CreatedAt: time.Date(2026, 3, 1, 6, 0, 0, 0, time.UTC),
	}
}

func claimedTask(id uuid.UUID, by int64, name string) *SevaTask {
	t := openTask(id)
	t.Status = StatusClaimed
	t.ClaimedBy = &by
	t.ClaimedByName = &name
	at := time.Date(2026, 3, 1, 7, 0, 0, 0, time.UTC)
	t.ClaimedAt = &at
	return t
}

func TestClaim_OpenTask(t *testing.T) {
	id := uuid.New()
	repo := &mockRepository{
		claimFn: func(_ context.Context, gotID uuid.UUID, actorID int64, actorName string) (*SevaTask, error) {
			assert.Equal(t, id, gotID)
			assert.Equal(t, int64(7), actorID)
			assert.Equal(t, "Priya", actorName)
			return claimedTask(id, actorID, actorName), nil
		},
	}
	service := NewService(repo)

	task, err := service.Claim(context.Background(), id, Actor{ID: 7, Name: "Priya"})

	require.NoError(t, err)
	assert.Equal(t, StatusClaimed, task.Status)
	require.NotNil(t, task.ClaimedBy)
	assert.Equal(t, int64(7), *task.ClaimedBy)
}

func TestClaim_LostRace(t *testing.T) {
	id := uuid.New()
	repo := &mockRepository{
		// The conditional update matched nothing: someone else got there first
		claimFn: func(context.Context, uuid.UUID, int64, string) (*SevaTask, error) {
			return nil, nil
		},
		getByIDFn: func(context.Context, uuid.UUID) (*SevaTask, error) {
			return claimedTask(id, 3, "Arjun"), nil
		},
	}
	service := NewService(repo)

	task, err := service.Claim(context.Background(), id, Actor{ID: 7, Name: "Priya"})

	assert.Nil(t, task)
	assert.ErrorIs(t, err, ErrTaskAlreadyClaimed)
}

func TestClaim_TaskMissing(t *testing.T) {
	repo := &mockRepository{
		claimFn: func(context.Context, uuid.UUID, int64, string) (*SevaTask, error) {
			return nil, nil
		},
		getByIDFn: func(context.Context, uuid.UUID) (*SevaTask, error) {
			return nil, nil
		},
	}
	service := NewService(repo)

	_, err := service.Claim(context.Background(), uuid.New(), Actor{ID: 7, Name: "Priya"})

	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestComplete_ByClaimant(t *testing.T) {
	id := uuid.New()
	repo := &mockRepository{
		completeFn: func(_ context.Context, _ uuid.UUID, actorID int64) (*SevaTask, error) {
			done := claimedTask(id, actorID, "Priya")
			done.Status = StatusComplete
			at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
			done.CompletedAt = &at
			return done, nil
		},
	}
	service := NewService(repo)

	task, err := service.Complete(context.Background(), id, Actor{ID: 7, Name: "Priya"})

	require.NoError(t, err)
	assert.Equal(t, StatusComplete, task.Status)
	assert.NotNil(t, task.CompletedAt)
}

func TestComplete_ByOtherMember(t *testing.T) {
	id := uuid.New()
	repo := &mockRepository{
		completeFn: func(context.Context, uuid.UUID, int64) (*SevaTask, error) {
			return nil, nil
		},
		getByIDFn: func(context.Context, uuid.UUID) (*SevaTask, error) {
			return claimedTask(id, 3, "Arjun"), nil
		},
	}
	service := NewService(repo)

	_, err := service.Complete(context.Background(), id, Actor{ID: 7, Name: "Priya"})

	assert.ErrorIs(t, err, ErrNotClaimant)
}

func completedTask(id uuid.UUID, by int64, name string) *SevaTask {
	task := claimedTask(id, by, name)
	task.Status = StatusComplete
	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	task.CompletedAt = &at
	return task
}

func TestComplete_CompletedTaskByOtherMember(t *testing.T) {
	id := uuid.New()
	repo := &mockRepository{
		completeFn: func(context.Context, uuid.UUID, int64) (*SevaTask, error) {
			return nil, nil
		},
		getByIDFn: func(context.Context, uuid.UUID) (*SevaTask, error) {
			return completedTask(id, 3, "Arjun"), nil
		},
	}
	service := NewService(repo)

	_, err := service.Complete(context.Background(), id, Actor{ID: 7, Name: "Priya"})

	// Another member's task stays theirs even once complete
	assert.ErrorIs(t, err, ErrNotClaimant)
}

func TestComplete_CompletedTaskByClaimant(t *testing.T) {
	id := uuid.New()
	repo := &mockRepository{
		completeFn: func(context.Context, uuid.UUID, int64) (*SevaTask, error) {
			return nil, nil
		},
		getByIDFn: func(context.Context, uuid.UUID) (*SevaTask, error) {
			return completedTask(id, 7, "Priya"), nil
		},
	}
	service := NewService(repo)

	_, err := service.Complete(context.Background(), id, Actor{ID: 7, Name: "Priya"})

	assert.ErrorIs(t, err, ErrTaskNotClaimed)
}

func TestRelease_CompletedTaskByOtherMember(t *testing.T) {
	id := uuid.New()
	repo := &mockRepository{
		releaseFn: func(context.Context, uuid.UUID, int64) (*SevaTask, error) {
			return nil, nil
		},
		getByIDFn: func(context.Context, uuid.UUID) (*SevaTask, error) {
			return completedTask(id, 3, "Arjun"), nil
		},
	}
	service := NewService(repo)

	_, err := service.Release(context.Background(), id, Actor{ID: 7, Name: "Priya"})

	assert.ErrorIs(t, err, ErrNotClaimant)
}

func TestComplete_UnclaimedTask(t *testing.T) {
	id := uuid.New()
	repo := &mockRepository{
		completeFn: func(context.Context, uuid.UUID, int64) (*SevaTask, error) {
			return nil, nil
		},
		getByIDFn: func(context.Context, uuid.UUID) (*SevaTask, error) {
			return openTask(id), nil
		},
	}
	service := NewService(repo)

	_, err := service.Complete(context.Background(), id, Actor{ID: 7, Name: "Priya"})

	assert.ErrorIs(t, err, ErrTaskNotClaimed)
}

func TestComplete_TaskMissing(t *testing.T) {
	repo := &mockRepository{
		completeFn: func(context.Context, uuid.UUID, int64) (*SevaTask, error) {
			return nil, nil
		},
		getByIDFn: func(context.Context, uuid.UUID) (*SevaTask, error) {
			return nil, nil
		},
	}
	service := NewService(repo)

	_, err := service.Complete(context.Background(), uuid.New(), Actor{ID: 7, Name: "Priya"})

	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestRelease_ByClaimant(t *testing.T) {
	id := uuid.New()
	repo := &mockRepository{
		releaseFn: func(_ context.Context, _ uuid.UUID, actorID int64) (*SevaTask, error) {
			assert.Equal(t, int64(7), actorID)
			return openTask(id), nil
		},
	}
	service := NewService(repo)

	task, err := service.Release(context.Background(), id, Actor{ID: 7, Name: "Priya"})

	require.NoError(t, err)
	assert.Equal(t, StatusOpen, task.Status)
	assert.Nil(t, task.ClaimedBy)
}

func TestRelease_ByOtherMember(t *testing.T) {
	id := uuid.New()
	repo := &mockRepository{
		releaseFn: func(context.Context, uuid.UUID, int64) (*SevaTask, error) {
			return nil, nil
		},
		getByIDFn: func(context.Context, uuid.UUID) (*SevaTask, error) {
			return claimedTask(id, 3, "Arjun"), nil
		},
	}
	service := NewService(repo)

	_, err := service.Release(context.Background(), id, Actor{ID: 7, Name: "Priya"})

	assert.ErrorIs(t, err, ErrNotClaimant)
}

func TestList_Filters(t *testing.T) {
	a := openTask(uuid.New())
	b := claimedTask(uuid.New(), 7, "Priya")
	c := claimedTask(uuid.New(), 3, "Arjun")
	repo := &mockRepository{
		listFn: func(context.Context) ([]*SevaTask, error) {
			return []*SevaTask{a, b, c}, nil
		},
	}
	service := NewService(repo)

	open, err := service.List(context.Background(), FilterOpen, nil)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, a.ID, open[0].ID)

	mine, err := service.List(context.Background(), FilterMine, &Actor{ID: 7, Name: "Priya"})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, b.ID, mine[0].ID)

	all, err := service.List(context.Background(), FilterAll, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestList_MineWithoutActor(t *testing.T) {
	repo := &mockRepository{
		listFn: func(context.Context) ([]*SevaTask, error) {
			return []*SevaTask{claimedTask(uuid.New(), 7, "Priya")}, nil
		},
	}
	service := NewService(repo)

	mine, err := service.List(context.Background(), FilterMine, nil)

	require.NoError(t, err)
	assert.Empty(t, mine)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &mockRepository{
		getByIDFn: func(context.Context, uuid.UUID) (*SevaTask, error) {
			return nil, nil
		},
	}
	service := NewService(repo)

	_, err := service.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestClaim_RepositoryError(t *testing.T) {
	dbErr := errors.New("connection reset")
	repo := &mockRepository{
		claimFn: func(context.Context, uuid.UUID, int64, string) (*SevaTask, error) {
			return nil, dbErr
		},
	}
	service := NewService(repo)

	_, err := service.Claim(context.Background(), uuid.New(), Actor{ID: 7, Name: "Priya"})

	assert.ErrorIs(t, err, dbErr)
}
