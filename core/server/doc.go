// Package server holds the HTTP server configuration.
//
// While the start command handles the server startup, this package defines the
// settings it reads: the listen port, the API key protecting the routes and the
// path prefixes that stay public (Swagger UI).
//
// # Usage
//
// This package is embedded by core/config and read by cmd/start and the auth middleware.
package server
