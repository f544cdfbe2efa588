package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "sqlite")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StorageSQLite, cfg.StorageBackend)
	assert.Equal(t, "data/ta_journal.db", cfg.SQLitePath)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, "ta-journal", cfg.JWTIssuer)
	assert.True(t, decimal.NewFromInt(1000).Equal(cfg.DefaultTARate))
	assert.Equal(t, int64(5), cfg.ReportRateLimit)
	assert.Equal(t, 15*time.Minute, cfg.ReportRatePeriod)
	assert.Equal(t, "5-M", cfg.LoginRateLimit)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowOrigins)
	assert.Equal(t, "SOUTH CENTRAL RAILWAY", cfg.OrganizationName)
	assert.NotEmpty(t, cfg.JWTSecret)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "Postgres")
	t.Setenv("PGSQL_URL", "postgres://localhost/ta")
	t.Setenv("DEFAULT_TA_RATE", "850.50")
	t.Setenv("REPORT_RATE_PERIOD", "1m")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("JWT_EXPIRY_DURATION", "not-a-duration")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, StoragePostgres, cfg.StorageBackend)
	assert.Equal(t, "postgres://localhost/ta", cfg.DatabaseURL)
	assert.True(t, decimal.RequireFromString("850.5").Equal(cfg.DefaultTARate))
	assert.Equal(t, time.Minute, cfg.ReportRatePeriod)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowOrigins)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiryDuration)
}

func TestLoadConfig_InvalidBackend(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "mongo")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "sqlite")
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig()
	assert.Error(t, err)
}
