package server

import "context"

// Server defines the lifecycle contract of the process's servers.
type Server interface {
	// RunServer serves until ctx is cancelled or a stop signal arrives,
	// then shuts down gracefully.
	RunServer(ctx context.Context) error

	// Shutdown stops accepting connections and waits for in-flight
	// requests until ctx expires.
	Shutdown(ctx context.Context) error
}
