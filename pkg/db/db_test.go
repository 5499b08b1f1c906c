package db_test

import (
	"fmt"
	"testing"

	"taproom/internal/config"
	"taproom/pkg/db"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSQLite(t *testing.T) {
	cfg := &config.Config{
		DatabaseDriver: config.DriverSQLite,
		DatabaseDSN:    fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
		MaxOpenConns:   2,
		MaxIdleConns:   1,
	}
	conn, err := db.Open(cfg)
	require.NoError(t, err)

	sqlDB, err := conn.DB()
	require.NoError(t, err)
	assert.NoError(t, sqlDB.Ping())
	assert.Equal(t, 2, sqlDB.Stats().MaxOpenConnections)

	assert.NoError(t, db.Close(conn))
}

func TestOpenUnsupportedDriver(t *testing.T) {
	_, err := db.Open(&config.Config{DatabaseDriver: "oracle", DatabaseDSN: "x"})
	assert.Error(t, err)
}
