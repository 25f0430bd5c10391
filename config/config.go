// Package config loads process configuration from the environment.
package config

import (
	"fmt"

	"github.com/joeshaw/envdecode"
)

type Config struct {
	Port         string `env:"PORT,default=8080"`
	DatabaseURL  string `env:"DATABASE_URL"`
	DBHost       string `env:"DB_HOST,default=localhost"`
	DBPort       string `env:"DB_PORT,default=5432"`
	DBUser       string `env:"DB_USER,default=postgres"`
	DBPassword   string `env:"DB_PASSWORD"`
	DBName       string `env:"DB_NAME,default=ecommerce"`
	JWTSecret    string `env:"JWT_SECRET,required"`
	ClientOrigin string `env:"CLIENT_URL,default=http://localhost:3000"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envdecode.StrictDecode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

// DSN returns the Postgres connection string, preferring DATABASE_URL when
// set.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort,
	)
}
