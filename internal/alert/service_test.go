package alert

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRepository struct {
	createFn     func(ctx context.Context, alertType, title, message string, triggeredBy *int64) (*Alert, error)
	listLatestFn func(ctx context.Context, limit int) ([]*Alert, error)
	listSinceFn  func(ctx context.Context, since time.Time) ([]*Alert, error)
}

func (m *mockRepository) Create(ctx context.Context, alertType, title, message string, triggeredBy *int64) (*Alert, error) {
	return m.createFn(ctx, alertType, title, message, triggeredBy)
}

func (m *mockRepository) ListLatest(ctx context.Context, limit int) ([]*Alert, error) {
	return m.listLatestFn(ctx, limit)
}

func (m *mockRepository) ListSince(ctx context.Context, since time.Time) ([]*Alert, error) {
	return m.listSinceFn(ctx, since)
}

func TestBroadcast_Succeeds(t *testing.T) {
	by := int64(7)
	repo := &mockRepository{
		createFn: func(_ context.Context, alertType, title, message string, triggeredBy *int64) (*Alert, error) {
			assert.Equal(t, TypeSatsang, alertType)
			assert.Equal(t, "Satsang!", title)
			require.NotNil(t, triggeredBy)
			assert.Equal(t, int64(7), *triggeredBy)
			return &Alert{ID: 1, Type: alertType, Title: title, Message: message, TriggeredBy: triggeredBy}, nil
		},
	}
	service := NewService(repo)

	alert, err := service.Broadcast(context.Background(), TypeSatsang, "Satsang!", "Main hall in 15 minutes", &by)

	require.NoError(t, err)
	assert.Equal(t, int64(1), alert.ID)
}

func TestBroadcast_MissingFields(t *testing.T) {
	service := NewService(&mockRepository{})

	_, err := service.Broadcast(context.Background(), "", "Satsang!", "Main hall", nil)
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = service.Broadcast(context.Background(), TypeSatsang, "", "Main hall", nil)
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = service.Broadcast(context.Background(), TypeSatsang, "Satsang!", "", nil)
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestRecent_UsesRecencyWindow(t *testing.T) {
	now := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)
	repo := &mockRepository{
		listSinceFn: func(_ context.Context, since time.Time) ([]*Alert, error) {
			assert.Equal(t, now.Add(-RecencyWindow), since)
			return []*Alert{{ID: 1, Type: TypeSatsang, Title: "Satsang!", CreatedAt: now.Add(-5 * time.Minute)}}, nil
		},
	}
	service := NewService(repo)
	service.now = func() time.Time { return now }

	alerts, err := service.Recent(context.Background())

	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "Satsang!", alerts[0].Title)
}

func TestRecent_EmptyNeverNil(t *testing.T) {
	repo := &mockRepository{
		listSinceFn: func(context.Context, time.Time) ([]*Alert, error) {
			return nil, nil
		},
	}
	service := NewService(repo)

	alerts, err := service.Recent(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, alerts)
	assert.Empty(t, alerts)
}

func TestLatest_PassesWindow(t *testing.T) {
	repo := &mockRepository{
		listLatestFn: func(_ context.Context, limit int) ([]*Alert, error) {
			assert.Equal(t, LatestWindow, limit)
			return nil, nil
		},
	}
	service := NewService(repo)

	alerts, err := service.Latest(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, alerts)
}
