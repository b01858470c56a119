package server

// Server defines the common lifecycle contract for transport servers managed
// by this package.
type Server interface {
	// RunServer serves requests until SIGTERM, SIGINT or SIGQUIT arrives or a
	// transport fails, then shuts down gracefully.
	RunServer()

	// Shutdown gracefully stops every server. It is safe to call more than once.
	Shutdown()
}
