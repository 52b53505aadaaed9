// Package httpapi exposes the assistant over HTTP.
//
// Endpoints:
//
//	GET  /health        liveness probe
//	GET  /metrics       prometheus metrics
//	GET  /api/v1/info   assistant metadata and corpus statistics
//	POST /api/v1/query  run a query through the tier pipeline
package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/lendkraft/finassist/internal/assistant"
	"github.com/lendkraft/finassist/internal/logging"
)

// Config holds HTTP server configuration.
type Config struct {
	Host string
	Port int
}

// Server serves the assistant API.
type Server struct {
	echo     *echo.Echo
	router   *assistant.Router
	metrics  *Metrics
	registry *prometheus.Registry
	logger   *logging.Logger
	config   Config
}

// NewServer creates the HTTP server around a constructed router.
func NewServer(router *assistant.Router, logger *logging.Logger, cfg Config) (*Server, error) {
	if router == nil {
		return nil, fmt.Errorf("router is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			logger.Info("http request",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Int("status", c.Response().Status),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			)
			return err
		}
	})

	// Each server owns its registry; no process-global metric state.
	registry := prometheus.NewRegistry()

	s := &Server{
		echo:     e,
		router:   router,
		metrics:  NewMetrics(registry),
		registry: registry,
		logger:   logger,
		config:   cfg,
	}
	s.registerRoutes()
	return s, nil
}

func (s *Server) registerRoutes() {
	s.echo.GET("/health", s.handleHealth)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))

	v1 := s.echo.Group("/api/v1")
	v1.GET("/info", s.handleInfo)
	v1.POST("/query", s.handleQuery)
}

// QueryRequest is the request body for POST /api/v1/query.
type QueryRequest struct {
	Query       string `json:"query"`
	ExplainTier bool   `json:"explain_tier"`
}

// HealthResponse is the response body for GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

func (s *Server) handleInfo(c echo.Context) error {
	return c.JSON(http.StatusOK, s.router.GetAssistantInfo())
}

// handleQuery runs the pipeline. The envelope is returned with HTTP 200
// even for failed queries: failure is data, not a transport error.
func (s *Server) handleQuery(c echo.Context) error {
	var req QueryRequest
	if err := c.Bind(&req); err != nil {
		s.logger.Warn("invalid query request", zap.Error(err))
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query field is required")
	}

	start := time.Now()
	env := s.router.ProcessQuery(c.Request().Context(), req.Query, req.ExplainTier)
	s.metrics.ObserveQuery(string(env.Tier), env.Success, time.Since(start).Seconds())

	return c.JSON(http.StatusOK, env)
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.logger.Info("starting http server", zap.String("addr", addr))
	return s.echo.Start(addr)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.echo.Shutdown(ctx)
}

// Handler exposes the echo engine for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}
