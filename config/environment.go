package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Environment struct {
	Port               string   `env:"PORT" envDefault:"4000"`
	DatabaseURL        string   `env:"DATABASE_URL,required,notEmpty"`
	DatabaseDriver     string   `env:"DATABASE_DRIVER" envDefault:"postgres"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
}

// LoadEnvironment reads the process environment. A missing DATABASE_URL is
// an error so the server fails fast at startup.
func LoadEnvironment() (Environment, error) {
	var cfg Environment
	if err := env.Parse(&cfg); err != nil {
		return Environment{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
