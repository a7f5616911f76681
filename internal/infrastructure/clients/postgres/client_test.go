package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careloop/synthgen/internal/infrastructure/clients/postgres"
)

func TestClient_Ping(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	client := postgres.NewClientWithDB(db)
	assert.Same(t, db, client.DB())

	mock.ExpectPing()
	assert.NoError(t, client.Ping(context.Background()))

	mock.ExpectClose()
	assert.NoError(t, client.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClient_PingFailure(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	cause := errors.New("connection refused")
	mock.ExpectPing().WillReturnError(cause)

	assert.ErrorIs(t, postgres.NewClientWithDB(db).Ping(context.Background()), cause)
}
