package config

import (
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	// Check defaults
	if cfg.Port != "8080" {
		t.Errorf("Expected Port to be 8080, got %s", cfg.Port)
	}

	if cfg.Env != "development" {
		t.Errorf("Expected Env to be development, got %s", cfg.Env)
	}

	if !cfg.Assistant.Enabled {
		t.Error("Expected assistant to be enabled by default")
	}

	if cfg.Assistant.RequestsPerMinute != 10 {
		t.Errorf("Expected ASSISTANT_RPM default 10, got %d", cfg.Assistant.RequestsPerMinute)
	}
}

func TestLoadWithCustomValues(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("ENV", "production")
	os.Setenv("ASSISTANT_ENABLED", "false")
	os.Setenv("ASSISTANT_MAX_ROWS", "50")
	os.Setenv("LOG_LEVEL", "warn")

	defer func() {
		os.Unsetenv("PORT")
		os.Unsetenv("ENV")
		os.Unsetenv("ASSISTANT_ENABLED")
		os.Unsetenv("ASSISTANT_MAX_ROWS")
		os.Unsetenv("LOG_LEVEL")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Port != "9000" {
		t.Errorf("Expected Port to be 9000, got %s", cfg.Port)
	}

	if cfg.Env != "production" {
		t.Errorf("Expected Env to be production, got %s", cfg.Env)
	}

	if cfg.Assistant.Enabled {
		t.Error("Expected assistant to be disabled")
	}

	if cfg.Assistant.MaxRows != 50 {
		t.Errorf("Expected MaxRows 50, got %d", cfg.Assistant.MaxRows)
	}

	if cfg.LogLevel != "warn" {
		t.Errorf("Expected LogLevel warn, got %s", cfg.LogLevel)
	}
}

func TestLoadRejectsInvalidEnv(t *testing.T) {
	os.Setenv("ENV", "sandbox")
	defer os.Unsetenv("ENV")

	if _, err := Load(); err == nil {
		t.Error("Expected error for invalid ENV")
	}
}

func TestLoadRejectsNonPositiveRPM(t *testing.T) {
	os.Setenv("ASSISTANT_RPM", "0")
	defer os.Unsetenv("ASSISTANT_RPM")

	if _, err := Load(); err == nil {
		t.Error("Expected error for ASSISTANT_RPM=0")
	}
}
