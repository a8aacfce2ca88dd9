// internal/workers/guidance/analyze-conflict/config.go
package analyzeconflict

import "time"

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 30 * time.Second,
	}
}
