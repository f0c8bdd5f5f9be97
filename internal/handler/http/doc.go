// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the
// web interface. Cross-cutting concerns such as request tracing, access
// logging, the per-request database connection, and session-based identity
// resolution are handled in this package before requests are delegated to
// the service layer.
package http
