package member

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListHandler_MetaEchoesServedWindow(t *testing.T) {
	repo := &mockRepository{
		listFn: func(_ context.Context, limit, offset int) ([]*Member, int, error) {
			members := make([]*Member, limit)
			for i := range members {
				members[i] = &Member{ID: int64(i + 1), Name: "Hamsa", Mode: ModePhysical,
					JoinedAt: time.Date(2026, 3, 1, 6, 0, 0, 0, time.UTC)}
			}
			return members, 50, nil
		},
	}
	handler := NewHandler(NewService(repo))

	// No limit/offset in the query: the default window must be reported back
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Success bool `json:"success"`
		Meta    struct {
			Limit  int `json:"limit"`
			Offset int `json:"offset"`
			Count  int `json:"count"`
			Total  int `json:"total"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	assert.True(t, envelope.Success)
	assert.Equal(t, 20, envelope.Meta.Limit)
	assert.Equal(t, 0, envelope.Meta.Offset)
	assert.Equal(t, 20, envelope.Meta.Count)
	assert.Equal(t, 50, envelope.Meta.Total)
}

func TestListHandler_ClampsOversizedLimit(t *testing.T) {
	repo := &mockRepository{
		listFn: func(_ context.Context, limit, offset int) ([]*Member, int, error) {
			assert.Equal(t, 20, limit)
			assert.Equal(t, 0, offset)
			return []*Member{}, 0, nil
		},
	}
	handler := NewHandler(NewService(repo))

	req := httptest.NewRequest(http.MethodGet, "/?limit=5000&offset=-2", nil)
	rec := httptest.NewRecorder()
	handler.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Meta struct {
			Limit  int `json:"limit"`
			Offset int `json:"offset"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, 20, envelope.Meta.Limit)
	assert.Equal(t, 0, envelope.Meta.Offset)
}
