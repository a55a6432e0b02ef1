package server

import "context"

// Server defines the lifecycle of the transport server managed by this
// package.
type Server interface {
	// RunServer serves requests until ctx is cancelled or the process
	// receives SIGINT, SIGTERM or SIGQUIT, then shuts down gracefully.
	// It returns an error if the listener cannot be opened or serving
	// stops unexpectedly.
	RunServer(ctx context.Context) error

	// Shutdown stops accepting connections and waits for in-flight
	// requests until ctx expires.
	Shutdown(ctx context.Context) error
}
