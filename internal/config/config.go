package config

import (
	"fmt"

	"github.com/caarlos0/env/v9"
)

// Config is the full service configuration, loaded from the environment at
// startup. The pricing rule tables themselves are compiled in; only the
// serving knobs and collaborator inputs live here.
type Config struct {
	Port     int    `env:"PORT" envDefault:"8080"`
	GinMode  string `env:"GIN_MODE" envDefault:"release"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// ExchangeRates lists native-units-per-display-unit pairs, e.g.
	// "USD:7.25,EUR:7.85".
	ExchangeRates string `env:"EXCHANGE_RATES" envDefault:"USD:7.25,EUR:7.85,GBP:9.10"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
