package config_test

import (
	"testing"
	"time"

	"taproom/internal/config"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	v := viper.New()
	config.SetDefaults(v)

	cfg, err := config.FromViper(v)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.AppPort)
	assert.Equal(t, config.DriverSQLite, cfg.DatabaseDriver)
	assert.Equal(t, time.Hour, cfg.ConnMaxLifetime)
	assert.Empty(t, cfg.RabbitMQURL)
	assert.Equal(t, "user1", cfg.AuthUsername)
	assert.True(t, cfg.BootstrapData)
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	config.SetDefaults(v)
	v.Set("DATABASE_DRIVER", " Postgres ")
	v.Set("DATABASE_DSN", "host=db user=beer dbname=beer sslmode=disable")
	v.Set("DB_CONN_MAX_LIFETIME", "30m")
	v.Set("BOOTSTRAP_DATA", "false")

	cfg, err := config.FromViper(v)
	require.NoError(t, err)

	assert.Equal(t, config.DriverPostgres, cfg.DatabaseDriver)
	assert.Equal(t, 30*time.Minute, cfg.ConnMaxLifetime)
	assert.False(t, cfg.BootstrapData)
}

func TestFromViper_RejectsUnknownDriver(t *testing.T) {
	v := viper.New()
	config.SetDefaults(v)
	v.Set("DATABASE_DRIVER", "oracle")

	_, err := config.FromViper(v)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported DATABASE_DRIVER")
}

func TestFromViper_RequiresCredentials(t *testing.T) {
	v := viper.New()
	config.SetDefaults(v)
	v.Set("AUTH_PASSWORD", "")

	_, err := config.FromViper(v)
	assert.Error(t, err)
}
