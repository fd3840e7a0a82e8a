package configs

import "time"

// Redis holds configuration for the optional audience preview cache. When
// Address is empty the cache is disabled and previews always hit the
// database.
type Redis struct {
	// Address is the host:port of the Redis server. Empty disables caching.
	Address string `env:"ADDRESS" envDefault:""`
	// Password for the Redis server, if any.
	Password string `env:"PASSWORD" envDefault:""`
	// DB selects the Redis logical database.
	DB int `env:"DB" envDefault:"0"`
	// PreviewTTL is how long a cached audience preview stays valid.
	PreviewTTL time.Duration `env:"PREVIEW_TTL" envDefault:"60s"`
}

// Enabled reports whether a cache address is configured.
func (c Redis) Enabled() bool {
	return c.Address != ""
}
