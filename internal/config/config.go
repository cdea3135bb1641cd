package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort        string
	AppEnv         string
	APIBaseURL     string
	SecretKey      string
	SearchDebounce time.Duration
	SearchLimit    int
}

const (
	defaultPort           = "8080"
	defaultSearchDebounce = 300 * time.Millisecond
	defaultSearchLimit    = 10
)

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:        os.Getenv("APP_PORT"),
		AppEnv:         os.Getenv("APP_ENV"),
		APIBaseURL:     os.Getenv("API_BASE_URL"),
		SecretKey:      os.Getenv("SECRET_KEY"),
		SearchDebounce: defaultSearchDebounce,
		SearchLimit:    defaultSearchLimit,
	}

	if cfg.AppPort == "" {
		cfg.AppPort = defaultPort
	}

	if raw := os.Getenv("SEARCH_DEBOUNCE_MS"); raw != "" {
		if ms, err := strconv.Atoi(raw); err == nil && ms > 0 {
			cfg.SearchDebounce = time.Duration(ms) * time.Millisecond
		}
	}

	if raw := os.Getenv("SEARCH_LIMIT"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			cfg.SearchLimit = n
		}
	}

	if cfg.APIBaseURL == "" {
		log.Fatal("API_BASE_URL environment variable is required")
	}

	return cfg
}
