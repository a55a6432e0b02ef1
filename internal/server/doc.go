// Package server runs the HTTP server of the users API.
//
// It owns the server lifecycle: listening, serving until a stop signal or
// context cancellation arrives, and graceful shutdown.
package server
