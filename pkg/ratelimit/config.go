package ratelimit

import "time"

// Config is the env-loadable limiter configuration. Load it with the config
// package:
//
//	var cfg ratelimit.Config
//	config.MustLoad(&cfg)
//	limiter, err := ratelimit.NewFromConfig(store, cfg)
type Config struct {
	MaxRequests int           `env:"RATE_LIMIT_MAX" envDefault:"60"`    // Requests allowed per window.
	Window      time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1m"` // Window duration, e.g. "30s" or "1m".
}
