package seva

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepositoryInsert_OpenSessionConflict(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// The partial unique index rejects a second open record for the pair
	mock.ExpectQuery("INSERT INTO ashram_seva").
		WithArgs(int64(7), "bhojan").
		WillReturnError(&pq.Error{Code: "23505"})

	repo := NewRepository(db)
	_, err = repo.Insert(context.Background(), 7, "bhojan")

	assert.ErrorIs(t, err, ErrAlreadyCheckedIn)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryGetOpen_NoSession(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM ashram_seva").
		WithArgs(int64(7), "garden").
		WillReturnError(sql.ErrNoRows)

	repo := NewRepository(db)
	checkIn, err := repo.GetOpen(context.Background(), 7, "garden")

	require.NoError(t, err)
	assert.Nil(t, checkIn)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryClose_AlreadyClosed(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	at := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	mock.ExpectQuery("UPDATE ashram_seva").
		WithArgs(int64(42), at, 120).
		WillReturnError(sql.ErrNoRows)

	repo := NewRepository(db)
	checkIn, err := repo.Close(context.Background(), 42, at, 120)

	require.NoError(t, err)
	assert.Nil(t, checkIn)
	assert.NoError(t, mock.ExpectationsWereMet())
}
