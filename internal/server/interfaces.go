package server

// Server defines the lifecycle contract of the application server.
type Server interface {
	// RunServer starts serving requests and blocks until a termination
	// signal arrives or the listener fails.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
