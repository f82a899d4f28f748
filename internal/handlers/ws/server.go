package ws

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
)

const shutdownTimeout = 5 * time.Second

// ServerConfig holds the configuration for the websocket server
type ServerConfig struct {
	// Addr is the listen address, e.g. ":3000"
	Addr string

	// Hub accepts the upgraded connections
	Hub *Hub

	// Logger for server lifecycle
	Logger *log.Logger
}

// Server exposes the hub over HTTP
type Server struct {
	addr   string
	hub    *Hub
	logger *log.Logger
	srv    *http.Server
}

// NewServer creates a new websocket server
func NewServer(cfg *ServerConfig) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Addr == "" {
		return nil, errors.New("addr cannot be empty")
	}

	if cfg.Hub == nil {
		return nil, errors.New("hub cannot be nil")
	}

	if cfg.Logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &Server{
		addr:   cfg.Addr,
		hub:    cfg.Hub,
		logger: cfg.Logger.WithPrefix("server"),
	}, nil
}

// Start begins serving and blocks until the listener fails or Stop is
// called
func (s *Server) Start() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.hub.HandleWS)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprintln(w, "ok")
	})

	s.srv = &http.Server{
		Addr:    s.addr,
		Handler: mux,
	}

	s.logger.Info("listening", "addr", s.addr)

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

// Stop drains the listener and shuts down
func (s *Server) Stop() error {
	if s.srv == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.logger.Info("shutting down")
	return s.srv.Shutdown(ctx)
}
