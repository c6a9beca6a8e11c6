package discord

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"
)

const (
	healthProbeTimeout   = 3 * time.Second
	healthReadTimeout    = 5 * time.Second
	healthShutdownWindow = 5 * time.Second
)

// HTTPServer exposes the bot's health endpoint
type HTTPServer struct {
	server *http.Server
	bot    *Bot
}

// NewHTTPServer creates a new HTTP server
func NewHTTPServer(port string, bot *Bot) *HTTPServer {
	mux := http.NewServeMux()

	srv := &HTTPServer{
		server: &http.Server{
			Addr:              ":" + port,
			Handler:           mux,
			ReadHeaderTimeout: healthReadTimeout,
		},
		bot: bot,
	}

	mux.HandleFunc("GET /health", srv.HandleHealth)
	return srv
}

// Start starts the HTTP server
func (s *HTTPServer) Start() {
	go func() {
		slog.Info(LogMsgHealthStarting, "addr", s.server.Addr)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error(LogMsgHealthFailed, "error", err)
		}
	}()
}

// Stop stops the HTTP server
func (s *HTTPServer) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), healthShutdownWindow)
	defer cancel()
	if err := s.server.Shutdown(ctx); err != nil {
		slog.Error(LogMsgHealthStopFail, "error", err)
	}
}
