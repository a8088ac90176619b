package db

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnjaliVanamala/Wildlife-Tracker/internal/models"
)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })
	return &DB{DB: mockDB, driver: "sqlite3"}, mock
}

func TestInsertSightings_RollsBackOnMidBatchFailure(t *testing.T) {
	database, mock := newMockDB(t)

	driverErr := errors.New("disk I/O error")
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO sightings").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO sightings").
		WillReturnError(driverErr)
	mock.ExpectRollback()

	err := database.InsertSightings(context.Background(), []models.Sighting{
		{Username: "alice", Animal: "Deer", Location: "a", Number: 1},
		{Username: "alice", Animal: "Fox", Location: "b", Number: 2},
	})
	require.ErrorIs(t, err, driverErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertSightings_BeginFailure(t *testing.T) {
	database, mock := newMockDB(t)

	mock.ExpectBegin().WillReturnError(errors.New("connection lost"))

	err := database.InsertSightings(context.Background(), []models.Sighting{
		{Username: "alice", Animal: "Deer", Location: "a", Number: 1},
	})
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSightingsByOwner_QueryFailure(t *testing.T) {
	database, mock := newMockDB(t)

	mock.ExpectQuery("FROM sightings").
		WillReturnError(errors.New("connection lost"))

	rows, err := database.SightingsByOwner(context.Background(), "alice")
	require.Error(t, err)
	assert.Nil(t, rows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRebind_PostgresPlaceholders(t *testing.T) {
	pg := &DB{driver: "postgres"}
	lite := &DB{driver: "sqlite3"}

	q := "INSERT INTO t (a, b, c) VALUES (?, ?, ?)"
	assert.Equal(t, "INSERT INTO t (a, b, c) VALUES ($1, $2, $3)", pg.rebind(q))
	assert.Equal(t, q, lite.rebind(q))
}
