package server

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/otto-handler/mockstream/internal/config"
	"github.com/otto-handler/mockstream/internal/response"
	"github.com/otto-handler/mockstream/internal/stream"
)

// Server holds the Echo app and dependencies.
type Server struct {
	Echo   *echo.Echo
	Config *config.Config
	Stream *stream.Handler
}

// New builds the Echo server and registers routes.
func New(cfg *config.Config, log zerolog.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	// No write timeout: a paced stream legitimately outlives any fixed limit.
	e.Server.ReadHeaderTimeout = time.Duration(cfg.Server.ReadHeaderTimeout) * time.Second

	e.Pre(corsHeaders())
	e.Use(middleware.Recover(), requestLogger(log))

	h := stream.NewHandler(cfg.Server.Name, stream.Catalog(), log)

	e.GET("/api/v1/log-streaming/test/mock-stream/:taskId", h.MockStream)
	e.GET("/api/v1/log-streaming/health", h.Health)
	e.RouteNotFound("/*", func(c echo.Context) error {
		return response.NotFound(c, cfg.Server.Name)
	})

	return &Server{Echo: e, Config: cfg, Stream: h}
}

// Start starts the HTTP server. Blocks until the context is cancelled or
// the server fails. On context cancel, Shutdown is called.
func (s *Server) Start(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		_ = s.Shutdown(context.Background())
	}()
	return s.Echo.Start(s.Config.Server.Addr())
}

// Shutdown gracefully shuts down the server. In-flight streams are not
// drained; abrupt termination is fine for a mock server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.Echo.Shutdown(ctx)
}

// requestLogger logs one line per request through zerolog.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Error != nil {
				evt = log.Error().Err(v.Error)
			}
			evt.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	})
}
