package logger

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/brquant/screener/pkg/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		logLevel  string
		wantLevel zerolog.Level
	}{
		{"debug level", "debug", zerolog.DebugLevel},
		{"info level", "info", zerolog.InfoLevel},
		{"warn level", "warn", zerolog.WarnLevel},
		{"warning alias", "warning", zerolog.WarnLevel},
		{"error level", "error", zerolog.ErrorLevel},
		{"unknown defaults to info", "loud", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{
				Env:       "development",
				LogLevel:  tt.logLevel,
				LogFormat: "json",
			}

			log := New(cfg)
			if log == nil {
				t.Fatal("Expected logger to be created")
			}

			if zerolog.GlobalLevel() != tt.wantLevel {
				t.Errorf("Expected global level %v, got %v", tt.wantLevel, zerolog.GlobalLevel())
			}
		})
	}
}

func TestConsoleFormat(t *testing.T) {
	cfg := &config.Config{
		Env:       "development",
		LogLevel:  "info",
		LogFormat: "console",
	}

	log := New(cfg)
	if log == nil {
		t.Fatal("Expected logger to be created")
	}

	// Chained loggers share the underlying writer and never panic.
	log.WithField("key", "value").Info("console output")
	log.WithFields(map[string]interface{}{"a": 1, "b": 2}).Debug("fields")
}

func TestNopLoggerDiscards(t *testing.T) {
	log := NewNop()
	log.Info("discarded")
	log.WithError(nil).Warn("discarded too")
}
