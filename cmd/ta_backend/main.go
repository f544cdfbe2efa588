package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	portsrepo "github.com/abhiJunior/Travel-Allowance-for-Railways/internal/core/ports/repositories"
	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/core/services"
	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/handlers"
	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/middleware"
	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/platform/config"
	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/repositories/database/pgsql"
	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/repositories/database/sqlite"
	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/utils"
	"github.com/abhiJunior/Travel-Allowance-for-Railways/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
)

// @title TA Journal API
// @version 1.0
// @description Travelling Allowance journal for railway employees: monthly journey and stay entries and the GA 31 PDF.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos, closeStore, err := openStore(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize storage", slog.String("backend", cfg.StorageBackend), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStore()

	serviceContainer := services.NewServiceContainer(cfg, repos)

	posthogClient, err := utils.NewPosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	if err != nil {
		logger.Error("Failed to initialize posthog client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer posthogClient.Close()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		gin.Recovery(),
		requestid.New(),
		middleware.StructuredLoggingMiddleware(logger),
		middleware.SecurityHeaders(middleware.DefaultHeadersConfig()),
		cors.New(corsConfig(cfg)),
		middleware.UsageEvents(posthogClient),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.EnablePprof {
		pprof.Register(r)
		logger.Info("pprof enabled at /debug/pprof")
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("storage", cfg.StorageBackend))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// openStore migrates and opens the configured backend and returns its repositories.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	switch cfg.StorageBackend {
	case config.StorageSQLite:
		db, err := database.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		logger.Info("Running database migrations...")
		if err := database.MigrateSQLite(cfg.SQLitePath); err != nil {
			db.Close()
			return portsrepo.RepositoryProvider{}, nil, err
		}
		return sqlite.NewRepositoryProvider(db), closeSQL(db, logger), nil

	default:
		logger.Info("Running database migrations...")
		if err := database.MigratePostgres(cfg.DatabaseURL); err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		return pgsql.NewRepositoryProvider(pool), func() { database.ClosePgxPool(pool) }, nil
	}
}

func closeSQL(db *sql.DB, logger *slog.Logger) func() {
	return func() {
		if err := db.Close(); err != nil {
			logger.Error("Error closing SQLite database", slog.String("error", err.Error()))
		}
	}
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	if len(cfg.CORSAllowOrigins) == 1 && cfg.CORSAllowOrigins[0] == "*" {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.CORSAllowOrigins
		c.AllowCredentials = true
	}
	c.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	c.AddAllowHeaders("Authorization")
	c.AddExposeHeaders("Content-Disposition", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset")
	return c
}
