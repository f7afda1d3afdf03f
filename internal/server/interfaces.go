package server

// Server defines the lifecycle contract of the bot runtime.
//
// Implementations are expected to block in [RunServer] until a stop signal
// arrives or a component fails, and to release resources in [Shutdown].
type Server interface {
	// RunServer starts every component and blocks until the bot stops. It
	// returns the error that stopped it, or nil on a signal.
	RunServer() error

	// Shutdown gracefully stops the HTTP server.
	Shutdown()
}
