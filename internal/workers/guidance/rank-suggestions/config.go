// internal/workers/guidance/rank-suggestions/config.go
package ranksuggestions

import "time"

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 30 * time.Second,
	}
}
