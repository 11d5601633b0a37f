// Package config loads runtime configuration from BRACKET_-prefixed
// environment variables, failing fast on startup if a required one is
// missing rather than surfacing a nil pointer deep in a handler.
package config

import (
	"fmt"
	"os"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	HTTPAddr  string
	RedisAddr string

	JWTSecret    string
	AdminKeyHash string

	IsLocal bool
}

func NewConfigFromEnv() (*Config, error) {
	c := &Config{
		IsLocal: os.Getenv("BRACKET_IS_LOCAL") == "1",
	}

	required := map[string]*string{
		"BRACKET_DB_HOST":        &c.DBHost,
		"BRACKET_DB_PORT":        &c.DBPort,
		"BRACKET_DB_USER":        &c.DBUser,
		"BRACKET_DB_PASSWORD":    &c.DBPassword,
		"BRACKET_DB_NAME":        &c.DBName,
		"BRACKET_HTTP_ADDR":      &c.HTTPAddr,
		"BRACKET_REDIS_ADDR":     &c.RedisAddr,
		"BRACKET_JWT_SECRET":     &c.JWTSecret,
		"BRACKET_ADMIN_KEY_HASH": &c.AdminKeyHash,
	}

	for name, dst := range required {
		v := os.Getenv(name)
		if v == "" {
			return nil, fmt.Errorf("config: required environment variable %s is not set", name)
		}
		*dst = v
	}

	return c, nil
}
