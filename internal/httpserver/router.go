package httpserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"residence-facilities/internal/domain"
	facilitysvc "residence-facilities/internal/service/facility"
	"residence-facilities/internal/view"
)

type CategoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
	Get(ctx context.Context, id string) (*domain.Category, error)
}

type FacilityService interface {
	List(ctx context.Context, selection string) ([]domain.Facility, error)
	Counts(ctx context.Context) (map[string]int, error)
	Page(ctx context.Context, selection string, nav view.Navigator) (*facilitysvc.Page, error)
	Activate(ctx context.Context, ctaID string, nav view.Navigator) (view.CallToAction, error)
}

// Deps lists the services the router dispatches to.
type Deps struct {
	CategorySvc CategoryService
	FacilitySvc FacilityService
}

// buildRouter wires routes for the API.
func buildRouter(logger *zap.Logger, deps Deps, opts Options) (*gin.Engine, error) {
	if deps.CategorySvc == nil || deps.FacilitySvc == nil {
		return nil, fmt.Errorf("build router: category and facility services are required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	m, err := newMetrics(reg)
	if err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(requestLogger(logger), gin.Recovery(), cors.New(corsConfig(opts.CORSAllowedOrigins)))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps.FacilitySvc))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	h := &handlers{deps: deps, metrics: m, logger: logger}
	api := router.Group("/api")
	api.GET("/categories", h.listCategories)
	api.GET("/categories/:id", h.getCategory)
	api.GET("/facilities", h.listFacilities)
	api.GET("/page", h.page)
	api.POST("/cta/:id", h.activateCTA)
	api.GET("/cta/:id", h.activateCTA)

	return router, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}

// requestLogger logs one line per request through zap.
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("query", c.Request.URL.RawQuery),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}
