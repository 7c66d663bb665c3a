package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Driver kinds.
const (
	DriverSelenium   = "selenium"
	DriverPlaywright = "playwright"
)

// Config holds the environment-driven settings of the framework and its
// driver adapters.
type Config struct {
	Driver       string
	DriverPath   string
	DriverPort   int
	ChromeBinary string
	Headless     bool
	BaseURL      string
	Timeout      time.Duration
}

// Load reads configuration from the environment. A .env file is loaded
// first when present, but is optional.
func Load() *Config {
	// .env file is optional
	_ = godotenv.Load()

	return &Config{
		Driver:       getEnv("POM_DRIVER", DriverSelenium),
		DriverPath:   os.Getenv("BROWSER_DRIVER_PATH"),
		DriverPort:   getEnvInt("BROWSER_DRIVER_PORT", 9515),
		ChromeBinary: os.Getenv("CHROME_BINARY_PATH"),
		Headless:     getEnvBool("POM_HEADLESS", true),
		BaseURL:      getEnv("POM_BASE_URL", "http://localhost:8080"),
		Timeout:      getEnvDuration("POM_TIMEOUT", 5*time.Second),
	}
}

// getEnv - returns env variable value or fallback
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvInt - returns env variable as int or fallback
func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

// getEnvBool - returns env variable as bool or fallback
func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}

// getEnvDuration - returns env variable as duration or fallback
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}
