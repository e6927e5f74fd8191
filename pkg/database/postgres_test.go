package database

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
)

func TestOpenAppliesPoolAndPings(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer sqlDB.Close()

	mock.ExpectPing() // gorm.Open
	mock.ExpectPing() // Ping

	db, err := Open(postgres.New(postgres.Config{Conn: sqlDB}), PoolConfig{MaxOpenConns: 7})
	require.NoError(t, err)

	require.NoError(t, Ping(context.Background(), db))
	assert.Equal(t, 7, sqlDB.Stats().MaxOpenConnections)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPingReportsFailure(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer sqlDB.Close()

	mock.ExpectPing()
	mock.ExpectPing().WillReturnError(errors.New("connection lost"))

	db, err := Open(postgres.New(postgres.Config{Conn: sqlDB}), PoolConfig{})
	require.NoError(t, err)

	assert.EqualError(t, Ping(context.Background(), db), "connection lost")
}
