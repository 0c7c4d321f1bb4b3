package server

// Server defines the common lifecycle contract for transport servers managed
// by this package.
//
// Implementations block in [RunServer] until shutdown is requested or the
// transport fails, and release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	// A stop caused by Shutdown is not an error.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
