// Package server wires and runs the application's HTTP server.
//
// It owns the server lifecycle: startup, OS signal handling, and graceful
// shutdown with draining of in-flight requests.
package server
