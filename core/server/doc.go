// Package server holds the HTTP server configuration.
//
// The actual Fiber application is assembled by the start command; this package
// only carries the listen port and the optional API key used by the auth
// middleware.
package server
