// internal/workers/intake/process-command/config.go
package processcommand

import "time"

type Config struct {
	Timeout   time.Duration
	DedupeTTL time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout:   30 * time.Second,
		DedupeTTL: 24 * time.Hour,
	}
}
