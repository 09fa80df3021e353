package server

// Server defines the lifecycle contract of the shop server.
type Server interface {
	// RunServer serves requests until a stop signal arrives or the listener
	// fails, then shuts down gracefully.
	RunServer() error

	// Shutdown stops accepting requests and waits for in-flight requests
	// within the shutdown timeout.
	Shutdown() error
}
