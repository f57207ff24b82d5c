// Package server runs the HTTP server of the Finbank API.
//
// It owns the listener lifecycle: startup, stop signals and graceful
// shutdown that lets in-flight requests finish.
package server
