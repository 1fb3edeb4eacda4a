package server

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/haloiq/tax-api/docs"
	httpClient "github.com/haloiq/tax-api/internal/client/http"
	"github.com/haloiq/tax-api/internal/config"
	"github.com/haloiq/tax-api/internal/constants"
	"github.com/haloiq/tax-api/internal/handlers"
	"github.com/haloiq/tax-api/internal/interfaces"
	"github.com/haloiq/tax-api/internal/logger"
	"github.com/haloiq/tax-api/internal/metrics"
	"github.com/haloiq/tax-api/internal/middleware"
	"github.com/haloiq/tax-api/internal/services"
	"github.com/haloiq/tax-api/internal/taxengine"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Dependencies are the services the router dispatches to
type Dependencies struct {
	TaxService interfaces.PayrollTaxService
	Gateway    interfaces.ProviderGateway
	Metrics    *metrics.Metrics
}

// Server owns the router and the resources it started
type Server struct {
	Router      *gin.Engine
	rateLimiter *middleware.RateLimiter
}

// New builds the production dependency graph from cfg and returns the server
func New(cfg *config.Config) (*Server, error) {
	if err := handlers.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	m := metrics.New()
	gateway := services.NewProviderGateway(cfg.Provider, m,
		httpClient.WithMetricsCollector(m),
		httpClient.WithMiddleware(httpClient.LoggingMiddleware()),
	)

	logger.Info("Tax provider configured",
		zap.String("mode", cfg.Provider.Mode),
		zap.Bool("external_enabled", cfg.Provider.ExternalEnabled()),
		zap.Bool("api_key_set", cfg.Provider.APIKey != ""),
		zap.Duration("timeout", cfg.Provider.Timeout))

	return NewWithDependencies(cfg, Dependencies{
		TaxService: services.NewTaxService(taxengine.NewEngine(), cfg.DefaultTaxYear),
		Gateway:    gateway,
		Metrics:    m,
	}), nil
}

// NewWithDependencies wires routes and middleware around deps
func NewWithDependencies(cfg *config.Config, deps Dependencies) *Server {
	if cfg.Stage == constants.StageProd {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(configureCORS(cfg.CORS))
	router.Use(middleware.CorrelationIDMiddleware())
	router.Use(middleware.RequestLoggingMiddleware())

	s := &Server{Router: router}

	if deps.Metrics != nil {
		router.Use(deps.Metrics.GinMiddleware())
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	if cfg.RateLimit.RequestsPerSecond > 0 {
		s.rateLimiter = middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
		router.Use(s.rateLimiter.Middleware())
	}

	InitializeRoutes(router, deps)
	return s
}

// InitializeRoutes registers every endpoint on router
func InitializeRoutes(router *gin.Engine, deps Dependencies) {
	healthHandler := handlers.NewHealthHandler()
	taxHandler := handlers.NewTaxHandler(deps.TaxService, deps.Gateway)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", healthHandler.Health)

	v1 := router.Group("/api/v1")
	v1.Use(middleware.BodySizeLimit(middleware.DefaultMaxBodySize))
	{
		v1.GET("/tax-years", taxHandler.ListTaxYears)
		v1.POST("/calculate-taxes", taxHandler.CalculateTaxes)
	}

	router.GET("/api/tax/:code", taxHandler.GetTaxByCode)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "not found"})
	})
}

// Close releases background resources started by the server
func (s *Server) Close() {
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
}

func configureCORS(cfg config.CORSConfig) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	allowAll := false
	for _, origin := range cfg.AllowOrigins {
		if origin == "*" {
			allowAll = true
			break
		}
	}
	if allowAll {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.AllowOrigins
	}

	corsConfig.AllowMethods = cfg.AllowMethods
	corsConfig.AllowHeaders = cfg.AllowHeaders
	corsConfig.ExposeHeaders = []string{constants.ProviderHeader, middleware.CorrelationIDHeader}

	return cors.New(corsConfig)
}
