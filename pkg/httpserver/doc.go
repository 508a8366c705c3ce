// Package httpserver hosts the HTTP transport: an http.Server wrapper with
// graceful shutdown on context cancellation or SIGINT/SIGTERM, functional
// options for address and timeouts, start/stop hooks for lifecycle
// logging, and an env-tagged Config for wiring through the config loader.
package httpserver
