package config

import (
	"fmt"

	env "github.com/caarlos0/env/v11"
)

type Config struct {
	DatabaseURL       string `env:"DATABASE_URL,required"`
	ReportingCurrency string `env:"REPORTING_CURRENCY" envDefault:"TRY"`
	// FallbackFXRates seeds conversions when the exchange_rates table has
	// no snapshot yet, e.g. "USD/TRY=34.20,EUR/TRY=37.10".
	FallbackFXRates string `env:"FALLBACK_FX_RATES" envDefault:""`
	Port              int    `env:"PORT" envDefault:"8080"`
	LogLevel          string `env:"LOG_LEVEL" envDefault:"info"`
	AppEnv            string `env:"APP_ENV" envDefault:"production"`

	DBMaxOpenConns     int `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	DBMaxIdleConns     int `env:"DB_MAX_IDLE_CONNS" envDefault:"10"`
	DBConnMaxLifetimeS int `env:"DB_CONN_MAX_LIFETIME_S" envDefault:"300"`
	DBConnMaxIdleTimeS int `env:"DB_CONN_MAX_IDLE_TIME_S" envDefault:"60"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	return &cfg, nil
}
