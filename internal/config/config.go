package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	_ "github.com/joho/godotenv/autoload"
)

// Config holds every runtime setting the server needs. Values come from the
// environment (a .env file is loaded automatically when present).
type Config struct {
	Port      int           `env:"PORT" envDefault:"8080"`
	DBPath    string        `env:"DB_PATH" envDefault:"planner.db"`
	JWTSecret string        `env:"JWT_SECRET" envDefault:"dev-only-secret-change-me"`
	JWTTTL    time.Duration `env:"JWT_TTL" envDefault:"1h"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
