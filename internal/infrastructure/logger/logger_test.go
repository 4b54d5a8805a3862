package logger

import (
	"testing"

	"service_inventory/internal/config"

	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		log, err := New(config.LogConfig{Level: "warn", Format: format})
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", format, err)
		}
		if log.Core().Enabled(zap.InfoLevel) {
			t.Fatalf("%s: info should be disabled at warn level", format)
		}
		if !log.Core().Enabled(zap.ErrorLevel) {
			t.Fatalf("%s: error should be enabled", format)
		}
	}
}
