package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config is the runtime configuration of the service.
type Config struct {
	AppPort string

	DatabaseDriver  string
	DatabaseDSN     string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration

	RabbitMQURL string

	AuthUsername string
	AuthPassword string

	LogLevel  string
	LogFormat string

	BootstrapData    bool
	BootstrapCSVPath string
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("DATABASE_DRIVER", DriverSQLite)
	v.SetDefault("DATABASE_DSN", "file:taproom.db?cache=shared")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", time.Hour)
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("AUTH_USERNAME", "user1")
	v.SetDefault("AUTH_PASSWORD", "password")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("BOOTSTRAP_DATA", true)
	v.SetDefault("BOOTSTRAP_CSV_PATH", "")
}

// Load reads the configuration from the environment, falling back to defaults.
func Load() (*Config, error) {
	v := viper.New()
	SetDefaults(v)
	v.AutomaticEnv() // Load environment variables
	return FromViper(v)
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		AppPort:          v.GetString("APP_PORT"),
		DatabaseDriver:   strings.ToLower(strings.TrimSpace(v.GetString("DATABASE_DRIVER"))),
		DatabaseDSN:      v.GetString("DATABASE_DSN"),
		MaxOpenConns:     v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns:     v.GetInt("DB_MAX_IDLE_CONNS"),
		ConnMaxLifetime:  v.GetDuration("DB_CONN_MAX_LIFETIME"),
		RabbitMQURL:      v.GetString("RABBITMQ_URL"),
		AuthUsername:     v.GetString("AUTH_USERNAME"),
		AuthPassword:     v.GetString("AUTH_PASSWORD"),
		LogLevel:         v.GetString("LOG_LEVEL"),
		LogFormat:        v.GetString("LOG_FORMAT"),
		BootstrapData:    v.GetBool("BOOTSTRAP_DATA"),
		BootstrapCSVPath: v.GetString("BOOTSTRAP_CSV_PATH"),
	}

	switch cfg.DatabaseDriver {
	case DriverSQLite, DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported DATABASE_DRIVER %q", cfg.DatabaseDriver)
	}
	if cfg.DatabaseDSN == "" {
		return nil, fmt.Errorf("DATABASE_DSN is required")
	}
	if cfg.AuthUsername == "" || cfg.AuthPassword == "" {
		return nil, fmt.Errorf("AUTH_USERNAME and AUTH_PASSWORD are required")
	}
	return cfg, nil
}
