package server

// Server runs the courses API over HTTP.
type Server interface {
	// RunServer listens on the configured address and blocks until SIGINT,
	// SIGTERM or SIGQUIT, then drains in-flight requests within
	// ShutdownTimeout.
	RunServer()

	// Shutdown stops accepting connections and waits for in-flight requests
	// up to ShutdownTimeout.
	Shutdown()
}
