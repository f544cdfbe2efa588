package services

import (
	portsrepo "github.com/abhiJunior/Travel-Allowance-for-Railways/internal/core/ports/repositories"
	portssvc "github.com/abhiJunior/Travel-Allowance-for-Railways/internal/core/ports/services"
	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/platform/config"
	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/report"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Journal = NewJournalService(repos.JournalRepo, WithDailyRate(cfg.DefaultTARate))

	var rendererOpts []report.RendererOption
	if cfg.OrganizationName != "" {
		rendererOpts = append(rendererOpts, report.WithOrganization(cfg.OrganizationName))
	}
	container.Reporting = NewReportingService(repos.UserRepo, repos.JournalRepo,
		report.NewRenderer(report.NewPDFCanvas, rendererOpts...))

	container.TokenService = NewTokenService(cfg)

	return container
}
