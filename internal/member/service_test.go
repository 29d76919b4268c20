package member

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRepository struct {
	createFn          func(ctx context.Context, name string, mode Mode, telegramID *string) (*Member, error)
	getByIDFn         func(ctx context.Context, id int64) (*Member, error)
	getByTelegramIDFn func(ctx context.Context, telegramID string) (*Member, error)
	listFn            func(ctx context.Context, limit, offset int) ([]*Member, int, error)
	switchModeFn      func(ctx context.Context, id int64) (*Member, error)
}

func (m *mockRepository) Create(ctx context.Context, name string, mode Mode, telegramID *string) (*Member, error) {
	return m.createFn(ctx, name, mode, telegramID)
}

func (m *mockRepository) GetByID(ctx context.Context, id int64) (*Member, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockRepository) GetByTelegramID(ctx context.Context, telegramID string) (*Member, error) {
	return m.getByTelegramIDFn(ctx, telegramID)
}

func (m *mockRepository) List(ctx context.Context, limit, offset int) ([]*Member, int, error) {
	return m.listFn(ctx, limit, offset)
}

func (m *mockRepository) SwitchMode(ctx context.Context, id int64) (*Member, error) {
	return m.switchModeFn(ctx, id)
}

func TestRegister_Succeeds(t *testing.T) {
	repo := &mockRepository{
		createFn: func(_ context.Context, name string, mode Mode, telegramID *string) (*Member, error) {
			assert.Equal(t, "Priya", name)
			assert.Equal(t, ModePhysical, mode)
			assert.Nil(t, telegramID)
			return &Member{ID: 1, Name: name, Mode: mode,
				JoinedAt: time.Date(2026, 3, 1, 6, 0, 0, 0, time.UTC)}, nil
		},
	}
	service := NewService(repo)

	created, err := service.Register(context.Background(), &RegisterRequest{
		Name: "Priya",
		Mode: "physical",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
}

func TestRegister_TelegramIDTaken(t *testing.T) {
	tgID := "tg-1001"
	repo := &mockRepository{
		getByTelegramIDFn: func(_ context.Context, telegramID string) (*Member, error) {
			assert.Equal(t, tgID, telegramID)
			return &Member{ID: 1, Name: "Priya", Mode: ModePhysical, TelegramID: &tgID}, nil
		},
	}
	service := NewService(repo)

	_, err := service.Register(context.Background(), &RegisterRequest{
		Name:       "Impostor",
		Mode:       "remote",
		TelegramID: &tgID,
	})

	assert.ErrorIs(t, err, ErrTelegramIDTaken)
}

func TestRegister_DuplicateNamesAllowed(t *testing.T) {
	repo := &mockRepository{
		createFn: func(_ context.Context, name string, mode Mode, _ *string) (*Member, error) {
			return &Member{ID: 2, Name: name, Mode: mode}, nil
		},
	}
	service := NewService(repo)

	created, err := service.Register(context.Background(), &RegisterRequest{
		Name: "Priya",
		Mode: "remote",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(2), created.ID)
}

func TestLookupByTelegramID_NotFound(t *testing.T) {
	repo := &mockRepository{
		getByTelegramIDFn: func(context.Context, string) (*Member, error) {
			return nil, nil
		},
	}
	service := NewService(repo)

	_, err := service.LookupByTelegramID(context.Background(), "tg-9999")

	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestSwitchMode_NotFound(t *testing.T) {
	repo := &mockRepository{
		switchModeFn: func(context.Context, int64) (*Member, error) {
			return nil, nil
		},
	}
	service := NewService(repo)

	_, err := service.SwitchMode(context.Background(), 99)

	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestSwitchMode_Flips(t *testing.T) {
	repo := &mockRepository{
		switchModeFn: func(_ context.Context, id int64) (*Member, error) {
			return &Member{ID: id, Name: "Priya", Mode: ModeRemote}, nil
		},
	}
	service := NewService(repo)

	updated, err := service.SwitchMode(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, ModeRemote, updated.Mode)
}

func TestList_ClampsPagination(t *testing.T) {
	repo := &mockRepository{
		listFn: func(_ context.Context, limit, offset int) ([]*Member, int, error) {
			assert.Equal(t, 20, limit)
			assert.Equal(t, 0, offset)
			return []*Member{}, 0, nil
		},
	}
	service := NewService(repo)

	_, _, err := service.List(context.Background(), -1, -1)

	require.NoError(t, err)
}
