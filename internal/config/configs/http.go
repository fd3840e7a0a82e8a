package configs

import "time"

// HTTP defines configuration for the HTTP server. The Port specifies which
// port the server will bind to; binding to all interfaces is assumed.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// ShutdownTimeout bounds how long a graceful shutdown waits for
	// in-flight requests before the server is torn down.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}
