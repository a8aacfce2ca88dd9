// internal/workers/guidance/resolve-query/config.go
package resolvequery

import "time"

type Config struct {
	// CacheTTL bounds how long resolved answers live in Redis.
	CacheTTL time.Duration
	Timeout  time.Duration
	// SimilarityThreshold overrides the resolver's semantic cutoff.
	// Zero keeps the built-in default.
	SimilarityThreshold float64
}

func LoadConfig() *Config {
	return &Config{
		CacheTTL: 10 * time.Minute,
		Timeout:  30 * time.Second,
	}
}
