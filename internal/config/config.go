package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the application configuration.
type Config struct {
	ServerPort   int    `envconfig:"PORT" default:"8080"`
	DatabasePath string `envconfig:"DATABASE_PATH" default:"./accounts.db"`
	JWTSecret    string `envconfig:"JWT_SECRET" required:"true"`
	TokenTTLMin  int    `envconfig:"TOKEN_TTL_MIN" default:"60"`
	AppEnv       string `envconfig:"APP_ENV" default:"development"`
	CORSOrigin   string `envconfig:"CORS_ORIGIN" default:"http://localhost:3000"`
}

// Load reads configuration from environment variables, picking up a local
// .env file first when one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
