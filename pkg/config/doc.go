// Package config loads configuration structs from environment variables.
//
// Fields are declared with `env` struct tags and parsed by caarlos0/env; a
// .env file in the working directory is loaded once per process via godotenv
// before the first parse (missing files are fine):
//
//	type LimiterConfig struct {
//	    MaxRequests int           `env:"RATE_LIMIT_MAX" envDefault:"60"`
//	    Window      time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1m"`
//	}
//
//	var cfg LimiterConfig
//	if err := config.Load(&cfg); err != nil {
//	    // missing required variables or unparseable values
//	}
//
// MustLoad panics on failure and suits configuration the process cannot start
// without.
package config
