// Package server runs the shop's HTTP server.
//
// It decides between TLS and plain HTTP according to the configured startup
// policy, serves until SIGINT, SIGTERM or SIGQUIT arrives and then shuts the
// server down gracefully within the configured timeout.
package server
