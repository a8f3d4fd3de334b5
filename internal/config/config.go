// Package config provides configuration for the application
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	Logging    LoggingConfig
	CORS       CORSConfig
	Dictionary DictionaryConfig
	Session    SessionConfig
	UI         UIConfig
}

// ServerConfig holds server settings
type ServerConfig struct {
	Port int `validate:"min=1,max=65535"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string `validate:"oneof=debug info warn error"`
}

// CORSConfig holds CORS settings
type CORSConfig struct {
	AllowedOrigins []string `validate:"min=1"`
}

// DictionaryConfig holds the outbound dictionary API settings
type DictionaryConfig struct {
	BaseURL       string        `validate:"required,url"`
	RandomWordURL string        `validate:"required,url"`
	Timeout       time.Duration `validate:"gt=0"`
	RetryAttempts uint          `validate:"min=1,max=5"`
	RetryDelay    time.Duration `validate:"gte=0"`
}

// SessionConfig holds user session settings
type SessionConfig struct {
	TTL           time.Duration `validate:"gt=0"`
	SweepSchedule string        `validate:"required"`
	CookieSecure  bool
}

// UIConfig holds page rendering settings
type UIConfig struct {
	SplashDelay time.Duration `validate:"gte=0"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	cfg := &Config{}
	var err error

	// Server configuration
	if cfg.Server.Port, err = intEnv("SERVER_PORT", 8080); err != nil {
		return nil, err
	}

	// Logging configuration
	cfg.Logging.Level = stringEnv("LOG_LEVEL", "info")

	// CORS configuration
	cfg.CORS.AllowedOrigins = parseOrigins(os.Getenv("CORS_ALLOWED_ORIGINS"))

	// Dictionary configuration
	cfg.Dictionary.BaseURL = stringEnv("DICTIONARY_BASE_URL", "https://api.dictionaryapi.dev/api/v2/entries/en")
	cfg.Dictionary.RandomWordURL = stringEnv("RANDOM_WORD_URL", "https://random-word-api.herokuapp.com/word?number=1")
	if cfg.Dictionary.Timeout, err = durationEnv("DICTIONARY_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	attempts, err := intEnv("DICTIONARY_RETRY_ATTEMPTS", 2)
	if err != nil {
		return nil, err
	}
	if attempts < 0 {
		return nil, fmt.Errorf("invalid DICTIONARY_RETRY_ATTEMPTS: must not be negative")
	}
	cfg.Dictionary.RetryAttempts = uint(attempts)
	if cfg.Dictionary.RetryDelay, err = durationEnv("DICTIONARY_RETRY_DELAY", 500*time.Millisecond); err != nil {
		return nil, err
	}

	// Session configuration
	if cfg.Session.TTL, err = durationEnv("SESSION_TTL", 30*time.Minute); err != nil {
		return nil, err
	}
	cfg.Session.SweepSchedule = stringEnv("SESSION_SWEEP_SCHEDULE", "@every 1m")
	if cfg.Session.CookieSecure, err = boolEnv("COOKIE_SECURE", false); err != nil {
		return nil, err
	}

	// UI configuration
	if cfg.UI.SplashDelay, err = durationEnv("SPLASH_DELAY", 3*time.Second); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// parseOrigins parses comma-separated origins, defaulting to allow all
func parseOrigins(value string) []string {
	origins := make([]string, 0)
	for _, origin := range strings.Split(value, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func stringEnv(key, def string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return def
}

func intEnv(key string, def int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return def, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func durationEnv(key string, def time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return def, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func boolEnv(key string, def bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return def, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}
