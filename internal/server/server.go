package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/seafarelabs/portside/internal/bookingapi"
	catalogdomain "github.com/seafarelabs/portside/internal/catalog/domain"
	"github.com/seafarelabs/portside/internal/config"
	"github.com/seafarelabs/portside/internal/observability"
	obsmiddleware "github.com/seafarelabs/portside/internal/observability/logger"
	"github.com/seafarelabs/portside/internal/observability/metrics"
	obstracing "github.com/seafarelabs/portside/internal/observability/tracing"
	preferencedomain "github.com/seafarelabs/portside/internal/preference/domain"
	pricingdomain "github.com/seafarelabs/portside/internal/pricing/domain"
	"github.com/seafarelabs/portside/internal/snapshot"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// timeNow is swapped in tests.
var timeNow = time.Now

var Module = fx.Module("http.server",
	fx.Provide(NewEngine),
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obstracing.GinMiddleware())
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine     *gin.Engine
	cfg        config.Config
	log        *zap.Logger
	api        bookingapi.API
	catalog    catalogdomain.Service
	normalizer preferencedomain.Normalizer
	pricing    pricingdomain.Service
	store      *snapshot.Store
	obsMetrics *metrics.Metrics
}

type ServerParams struct {
	fx.In

	Gin        *gin.Engine
	Cfg        config.Config
	Log        *zap.Logger
	API        bookingapi.API
	Catalog    catalogdomain.Service
	Normalizer preferencedomain.Normalizer
	Pricing    pricingdomain.Service
	Store      *snapshot.Store
	ObsMetrics *metrics.Metrics `optional:"true"`
}

func NewServer(p ServerParams) *Server {
	s := &Server{
		engine:     p.Gin,
		cfg:        p.Cfg,
		log:        p.Log.Named("http.server"),
		api:        p.API,
		catalog:    p.Catalog,
		normalizer: p.Normalizer,
		pricing:    p.Pricing,
		store:      p.Store,
		obsMetrics: p.ObsMetrics,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	api := s.engine.Group("/api/v1")

	api.GET("/catalog/facilities", s.ListFacilityCatalog)

	api.POST("/preferences/refresh", s.RefreshPreferences)
	api.GET("/preferences/facilities", s.ListFacilityPreferences)
	api.GET("/preferences/meals", s.ListMealPreferences)
	api.GET("/preferences/export", s.ExportFacilityPreferences)

	api.GET("/reports/revenue", s.GetRevenueReport)

	api.POST("/bookings/quote", s.QuoteBooking)
	api.POST("/bookings/confirm", s.ConfirmBooking)
}

// ListFacilityCatalog returns the static facility reference table.
func (s *Server) ListFacilityCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"facilities": s.catalog.All()})
}
