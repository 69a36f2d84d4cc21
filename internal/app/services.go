package app

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/artistdash-backend/internal/platform/logger"
	"github.com/yungbote/artistdash-backend/internal/services"
)

type Services struct {
	Auth    services.AuthService
	Reports services.ReportService
	Search  services.SearchService
	Catalog services.CatalogService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, repos Repos, clients Clients) (Services, error) {
	log.Info("Wiring services...")

	auth, err := services.NewAuthService(log, repos.User, clients.Denylist, cfg.Auth)
	if err != nil {
		return Services{}, fmt.Errorf("init auth service: %w", err)
	}
	return Services{
		Auth:    auth,
		Reports: services.NewReportService(db, log, repos.Catalog, nil),
		Search:  services.NewSearchService(db, log, repos.Catalog),
		Catalog: services.NewCatalogService(db, log, repos.Catalog),
	}, nil
}
