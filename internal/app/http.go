package app

import (
	"gorm.io/gorm"

	apphttp "github.com/yungbote/artistdash-backend/internal/http"
	httpH "github.com/yungbote/artistdash-backend/internal/http/handlers"
	httpMW "github.com/yungbote/artistdash-backend/internal/http/middleware"
	"github.com/yungbote/artistdash-backend/internal/observability"
	"github.com/yungbote/artistdash-backend/internal/platform/logger"
)

type Middleware struct {
	Auth *httpMW.AuthMiddleware
}

type Handlers struct {
	Health  *httpH.HealthHandler
	Auth    *httpH.AuthHandler
	Report  *httpH.ReportHandler
	Search  *httpH.SearchHandler
	Catalog *httpH.CatalogHandler
}

func wireHandlers(log *logger.Logger, db *gorm.DB, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:  httpH.NewHealthHandler(db),
		Auth:    httpH.NewAuthHandler(services.Auth),
		Report:  httpH.NewReportHandler(services.Reports),
		Search:  httpH.NewSearchHandler(services.Search),
		Catalog: httpH.NewCatalogHandler(services.Catalog),
	}
}

func wireMiddleware(log *logger.Logger, services Services) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Auth: httpMW.NewAuthMiddleware(log, services.Auth),
	}
}

func wireServer(log *logger.Logger, cfg Config, metrics *observability.Metrics, handlers Handlers, middleware Middleware) *apphttp.Server {
	return apphttp.NewServer(cfg.Server, apphttp.RouterConfig{
		Log:            log,
		Metrics:        metrics,
		CORS:           cfg.CORS,
		ServiceName:    cfg.Otel.ServiceName,
		AuthHandler:    handlers.Auth,
		AuthMiddleware: middleware.Auth,
		ReportHandler:  handlers.Report,
		SearchHandler:  handlers.Search,
		CatalogHandler: handlers.Catalog,
		HealthHandler:  handlers.Health,
	})
}
