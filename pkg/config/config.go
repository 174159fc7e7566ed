package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
// All environment variables are read here and nowhere else.
type Config struct {
	// Server
	Port string
	Env  string // development, staging, production

	// Assistant (LLM boundary)
	Assistant AssistantConfig

	// Logging
	LogLevel  string
	LogFormat string
}

// AssistantConfig holds configuration for the Q&A assistant.
type AssistantConfig struct {
	Enabled bool
	APIKey  string // Gemini API key
	Model   string
	// RequestsPerMinute throttles outgoing completion calls.
	RequestsPerMinute int
	// MaxRows caps how many records are serialized into a prompt.
	MaxRows int
}

// Load reads configuration from environment variables.
// Only this function calls os.Getenv().
func Load() (*Config, error) {
	loadEnvFile()

	cfg := &Config{
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		Assistant: AssistantConfig{
			Enabled:           getEnvAsBool("ASSISTANT_ENABLED", true),
			APIKey:            getEnv("GEMINI_API_KEY", ""),
			Model:             getEnv("ASSISTANT_MODEL", "gemini-2.0-flash"),
			RequestsPerMinute: getEnvAsInt("ASSISTANT_RPM", 10),
			MaxRows:           getEnvAsInt("ASSISTANT_MAX_ROWS", 200),
		},

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks if required configuration values are set
func (c *Config) validate() error {
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	if c.Assistant.RequestsPerMinute <= 0 {
		return fmt.Errorf("ASSISTANT_RPM must be positive")
	}

	return nil
}

// loadEnvFile tries to load .env from multiple locations
func loadEnvFile() {
	paths := []string{
		".env", // Current directory
	}

	// Also try relative to executable
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}
