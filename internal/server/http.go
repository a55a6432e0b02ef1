package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/MKhiriev/go-users-api/internal/config"
	"github.com/MKhiriev/go-users-api/internal/logger"
)

type httpServer struct {
	server *http.Server

	mu       sync.Mutex
	listener net.Listener
	ready    chan struct{}

	logger *logger.Logger
}

func newHTTPServer(handler http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           handler,
			ReadHeaderTimeout: cfg.RequestTimeout,
		},
		ready:  make(chan struct{}),
		logger: logger,
	}
}

func (h *httpServer) listen() error {
	listener, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return fmt.Errorf("error listening on %s: %w", h.server.Addr, err)
	}

	h.mu.Lock()
	h.listener = listener
	h.mu.Unlock()
	close(h.ready)

	h.logger.Info().Str("address", listener.Addr().String()).Msg("HTTP server is listening")
	return nil
}

// serve blocks until the server is shut down. A graceful shutdown is not an
// error.
func (h *httpServer) serve() error {
	h.mu.Lock()
	listener := h.listener
	h.mu.Unlock()
	if listener == nil {
		return errServerNotStarted
	}

	if err := h.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server Serve: %w", err)
	}
	return nil
}

func (h *httpServer) addr() net.Addr {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.listener == nil {
		return nil
	}
	return h.listener.Addr()
}

func (h *httpServer) shutdown(ctx context.Context) error {
	h.logger.Info().Msg("HTTP server Shutdown")
	if err := h.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("HTTP server Shutdown: %w", err)
	}
	return nil
}
