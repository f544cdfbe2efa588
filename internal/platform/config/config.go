package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Storage backends accepted by STORAGE_BACKEND.
const (
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	EnablePprof  bool

	StorageBackend string
	DatabaseURL    string
	SQLitePath     string

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	DefaultTARate decimal.Decimal

	ReportRateLimit  int64
	ReportRatePeriod time.Duration
	LoginRateLimit   string // limiter formatted rate, e.g. "5-M"

	CORSAllowOrigins []string
	OrganizationName string

	PosthogAPIKey   string
	PosthogEndpoint string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_PPROF", false)
	viper.SetDefault("STORAGE_BACKEND", StoragePostgres)
	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("SQLITE_PATH", "data/ta_journal.db")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("JWT_EXPIRY_DURATION", "24h")
	viper.SetDefault("JWT_ISSUER", "ta-journal")
	viper.SetDefault("DEFAULT_TA_RATE", "1000")
	viper.SetDefault("REPORT_RATE_LIMIT", 5)
	viper.SetDefault("REPORT_RATE_PERIOD", "15m")
	viper.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	viper.SetDefault("CORS_ALLOW_ORIGINS", "*")
	viper.SetDefault("ORGANIZATION_NAME", "SOUTH CENTRAL RAILWAY")
	viper.SetDefault("POSTHOG_API_KEY", "")
	viper.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")

	viper.AutomaticEnv()

	cfg := &Config{
		Port:             viper.GetString("PORT"),
		IsProduction:     viper.GetBool("IS_PRODUCTION"),
		EnablePprof:      viper.GetBool("ENABLE_PPROF"),
		StorageBackend:   strings.ToLower(strings.TrimSpace(viper.GetString("STORAGE_BACKEND"))),
		DatabaseURL:      viper.GetString("PGSQL_URL"),
		SQLitePath:       viper.GetString("SQLITE_PATH"),
		JWTSecret:        viper.GetString("JWT_SECRET"),
		JWTIssuer:        viper.GetString("JWT_ISSUER"),
		ReportRateLimit:  viper.GetInt64("REPORT_RATE_LIMIT"),
		LoginRateLimit:   viper.GetString("LOGIN_RATE_LIMIT"),
		OrganizationName: viper.GetString("ORGANIZATION_NAME"),
		PosthogAPIKey:    viper.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint:  viper.GetString("POSTHOG_ENDPOINT"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	switch cfg.StorageBackend {
	case StoragePostgres:
		if cfg.DatabaseURL == "" {
			log.Println("Warning: PGSQL_URL environment variable not set.")
		}
	case StorageSQLite:
	default:
		return nil, fmt.Errorf("invalid STORAGE_BACKEND %q: must be %q or %q", cfg.StorageBackend, StoragePostgres, StorageSQLite)
	}

	if cfg.JWTSecret == "" {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.JWTExpiryDuration = durationOrDefault("JWT_EXPIRY_DURATION", 24*time.Hour)
	cfg.ReportRatePeriod = durationOrDefault("REPORT_RATE_PERIOD", 15*time.Minute)

	rate, err := decimal.NewFromString(viper.GetString("DEFAULT_TA_RATE"))
	if err != nil || rate.IsNegative() {
		rate = decimal.NewFromInt(1000)
		log.Printf("Warning: Invalid value for DEFAULT_TA_RATE ('%s'). Defaulting to %s.\n", viper.GetString("DEFAULT_TA_RATE"), rate)
	}
	cfg.DefaultTARate = rate

	if cfg.ReportRateLimit <= 0 {
		cfg.ReportRateLimit = 5
		log.Printf("Warning: REPORT_RATE_LIMIT must be positive. Defaulting to %d.\n", cfg.ReportRateLimit)
	}

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOW_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowOrigins = append(cfg.CORSAllowOrigins, origin)
		}
	}
	if len(cfg.CORSAllowOrigins) == 0 {
		cfg.CORSAllowOrigins = []string{"*"}
	}

	return cfg, nil
}

func durationOrDefault(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		}
		return fallback
	}
	return d
}
