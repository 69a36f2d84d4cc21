package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	types "github.com/yungbote/artistdash-backend/internal/domain"
	httpH "github.com/yungbote/artistdash-backend/internal/http/handlers"
	httpMW "github.com/yungbote/artistdash-backend/internal/http/middleware"
	"github.com/yungbote/artistdash-backend/internal/observability"
	"github.com/yungbote/artistdash-backend/internal/pkg/authz"
	"github.com/yungbote/artistdash-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log         *logger.Logger
	Metrics     *observability.Metrics
	CORS        httpMW.CORSConfig
	ServiceName string

	AuthHandler    *httpH.AuthHandler
	AuthMiddleware *httpMW.AuthMiddleware
	ReportHandler  *httpH.ReportHandler
	SearchHandler  *httpH.SearchHandler
	CatalogHandler *httpH.CatalogHandler
	HealthHandler  *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "artistdash"
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware(serviceName))
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.CORS))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	api := r.Group("/api")
	{
		// Auth (public)
		if cfg.AuthHandler != nil {
			api.POST("/login", cfg.AuthHandler.Login)
		}
	}

	protected := api.Group("/")
	{
		if cfg.AuthMiddleware != nil {
			protected.Use(cfg.AuthMiddleware.RequireAuth())
		}

		if cfg.AuthHandler != nil {
			protected.POST("/logout", cfg.AuthHandler.Logout)
		}

		// Reports
		if cfg.ReportHandler != nil {
			protected.GET("/dashboard", cfg.ReportHandler.Dashboard)
			protected.GET("/reports/:kind/:id", cfg.ReportHandler.Detail)
			protected.GET("/artists/:id", cfg.ReportHandler.DetailFor(types.KindArtist))
			protected.GET("/productions/:id", cfg.ReportHandler.DetailFor(types.KindProduction))
			protected.GET("/distributors/:id", cfg.ReportHandler.DetailFor(types.KindDistributor))
		}

		// Search
		if cfg.SearchHandler != nil {
			protected.GET("/search", cfg.SearchHandler.Search)
		}

		// Catalog writes
		if cfg.CatalogHandler != nil {
			insert := []gin.HandlerFunc{cfg.CatalogHandler.Insert}
			remove := []gin.HandlerFunc{cfg.CatalogHandler.Delete}
			if cfg.AuthMiddleware != nil {
				insert = append([]gin.HandlerFunc{cfg.AuthMiddleware.RequireOperation(authz.OpInsert)}, insert...)
				remove = append([]gin.HandlerFunc{cfg.AuthMiddleware.RequireOperation(authz.OpDelete)}, remove...)
			}
			protected.POST("/insert", insert...)
			protected.POST("/delete", remove...)
		}
	}

	return r
}
