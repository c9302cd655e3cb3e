package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultPort = "3000"

	// DocumentRoot is where non-API paths are resolved, relative to the
	// working directory.
	DocumentRoot = "."
)

type Config struct {
	Port         string
	DocumentRoot string
}

func New() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:         getEnv("PORT", DefaultPort),
		DocumentRoot: DocumentRoot,
	}
}

func (c *Config) Validate() error {
	op := "internal/config/config.go Validate"

	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("%s: PORT %q is not a number: %w", op, c.Port, err)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("%s: PORT %d out of range 1-65535", op, port)
	}

	return nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}
