package handlers

import (
	"log/slog"

	"github.com/abhiJunior/Travel-Allowance-for-Railways/cmd/docs"
	portssvc "github.com/abhiJunior/Travel-Allowance-for-Railways/internal/core/ports/services"
	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/middleware"
	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	if err := registerValidators(); err != nil {
		slog.Error("Failed to register request validators", slog.String("error", err.Error()))
	}

	registerHomeRoutes(r)

	api := r.Group("/api")
	registerUserRoutes(api, cfg, services)
	registerJournalRoutes(api, cfg, services)

	setupSwaggerRoutes(r, cfg)
}

// registerUserRoutes wires the public auth routes and the authenticated profile routes.
func registerUserRoutes(api *gin.RouterGroup, cfg *config.Config, services *portssvc.ServiceContainer) {
	auth := newAuthHandler(services.User, services.TokenService)
	users := newUserHandler(services.User)

	rate, err := limiter.NewRateFromFormatted(cfg.LoginRateLimit)
	if err != nil {
		slog.Warn("Invalid LOGIN_RATE_LIMIT, using 5-M", slog.String("value", cfg.LoginRateLimit))
		rate, _ = limiter.NewRateFromFormatted("5-M")
	}
	loginLimit := middleware.GinMiddlewarize(limiter.New(memory.NewStore(), rate))

	user := api.Group("/user")
	{
		user.POST("/register", auth.register)
		user.POST("/login", loginLimit, auth.login)
	}

	authed := user.Group("", middleware.AuthMiddleware(cfg.JWTSecret))
	{
		authed.GET("/me", users.getMe)
		authed.PATCH("/update-profile", users.updateProfile)
	}
}

// registerJournalRoutes wires the journal and report routes, all authenticated.
func registerJournalRoutes(api *gin.RouterGroup, cfg *config.Config, services *portssvc.ServiceContainer) {
	journals := newJournalHandler(services.Journal)
	reports := newReportHandler(services.Reporting)

	pdfLimiter := limiter.New(memory.NewStore(), limiter.Rate{
		Period: cfg.ReportRatePeriod,
		Limit:  cfg.ReportRateLimit,
	})

	journal := api.Group("/journal", middleware.AuthMiddleware(cfg.JWTSecret))
	{
		journal.POST("/add", journals.addEntry)
		journal.GET("/generate-pdf/:monthYear", middleware.RateLimit(pdfLimiter, middleware.ReportLimitMessage), reports.generatePDF)
		journal.PATCH("/update-entry/:id", journals.updateEntry)
		journal.GET("/:monthYear", journals.getMonth)
		journal.DELETE("/:entryId", journals.deleteEntry)
	}
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
