package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"SkinScout/internal/analyzer"
	"SkinScout/internal/model"
)

// Engine is the query surface the HTTP API exposes.
type Engine interface {
	GetOpportunities(ctx context.Context, count int, maxPrice *float64, category string) analyzer.Result
	SearchOpportunities(ctx context.Context, query string, count int, maxPrice *float64) analyzer.Result
	Regime() model.Regime
}

// HTTPMetrics observes served requests.
type HTTPMetrics interface {
	RecordHTTP(route, method string, status int, seconds float64)
}

// Config holds server settings.
type Config struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// Server is the keep-alive, health, metrics and JSON query endpoint.
type Server struct {
	echo   *echo.Echo
	config Config
}

// New builds the Echo server and registers all routes. gatherer backs
// /metrics; m may be nil.
func New(cfg Config, engine Engine, gatherer prometheus.Gatherer, m HTTPMetrics) *Server {
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = 10 * time.Second
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = 30 * time.Second
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.ReadTimeout
	e.Server.WriteTimeout = cfg.WriteTimeout

	e.Use(middleware.Recover())
	e.Use(requestLogging(m))

	h := &handler{engine: engine}
	e.GET("/", h.root)
	e.GET("/healthz", h.health)
	e.GET("/api/opportunities", h.opportunities)
	e.GET("/api/search", h.search)
	if gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	return &Server{echo: e, config: cfg}
}

// Start listens in the background.
func (s *Server) Start() {
	addr := ":" + s.config.Port
	go func() {
		log.Info().Str("addr", addr).Msg("http server listening")
		if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("http server error")
		}
	}()
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()
	if err := s.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}
	log.Info().Msg("http server stopped")
	return nil
}

// Echo returns the underlying Echo instance.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

func requestLogging(m HTTPMetrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			status := c.Response().Status
			latency := time.Since(start)
			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			if m != nil {
				m.RecordHTTP(route, req.Method, status, latency.Seconds())
			}

			evt := log.Debug()
			if status >= 500 {
				evt = log.Error()
			}
			evt.Str("method", req.Method).Str("uri", req.RequestURI).Int("status", status).Dur("latency", latency).Msg("http request")
			return nil
		}
	}
}
