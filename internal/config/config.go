package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	AppAddr         string        `validate:"required"`
	APIBaseURL      string        `validate:"required,url"`
	APITimeout      time.Duration `validate:"gt=0"`
	SessionSecret   string        `validate:"required,min=16"`
	JWTSecret       string
	LoginPath       string `validate:"required,startswith=/"`
	EditProfilePath string `validate:"required,startswith=/"`
	StaticDir       string
	RateLimit       float64 `validate:"gte=0"`
}

// New loads configuration from environment variables, reading a .env file first
// when one is present. It exits the process if the result is invalid.
func New() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	return cfg
}

// Load reads and validates the configuration without exiting on failure.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		AppAddr:         getEnv("APP_ADDR", ":8080"),
		APIBaseURL:      getEnv("API_BASE_URL", ""),
		APITimeout:      getEnvDuration("API_TIMEOUT", 10*time.Second),
		SessionSecret:   getEnv("SESSION_SECRET", ""),
		JWTSecret:       getEnv("JWT_SECRET", ""),
		LoginPath:       getEnv("LOGIN_PATH", "/login"),
		EditProfilePath: getEnv("EDIT_PROFILE_PATH", "/editProfile"),
		StaticDir:       getEnv("STATIC_DIR", ""),
		RateLimit:       getEnvFloat("RATE_LIMIT", 20),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
		log.Printf("ignoring malformed %s=%q", key, value)
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
		log.Printf("ignoring malformed %s=%q", key, value)
	}
	return fallback
}
