package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "course_market", cfg.DB.Name)
	assert.Equal(t, "5432", cfg.DB.Port)
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("DB_NAME", "market_test")
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "market_test", cfg.DB.Name)
	assert.Equal(t, ":9090", cfg.Addr())
}

func TestDatabaseDSN(t *testing.T) {
	db := Database{
		Host:     "db.local",
		Port:     "5433",
		User:     "app",
		Password: "pw",
		Name:     "market",
	}

	assert.Equal(t,
		"host=db.local user=app password=pw dbname=market port=5433 sslmode=disable TimeZone=UTC",
		db.DSN(),
	)
}
