package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestStringToLogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{" warn ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			if got := stringToLogLevel(tt.in); got != tt.want {
				t.Errorf("stringToLogLevel(%q) = %v, want: %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSetupLogger(t *testing.T) {
	defaultLogger := slog.Default()
	t.Cleanup(func() { slog.SetDefault(defaultLogger) })

	t.Run("production writes json", func(t *testing.T) {
		var buf bytes.Buffer
		SetupLogger(envProduction, "info", &buf)
		slog.Info("Server listening...", "port", 8888)

		var entry map[string]any
		if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
			t.Fatalf("json.Unmarshal(%q) = %v", buf.String(), err)
		}
		if entry["msg"] != "Server listening..." {
			t.Errorf("entry[%q] = %v, want: %q", "msg", entry["msg"], "Server listening...")
		}
	})

	t.Run("development honors level", func(t *testing.T) {
		var buf bytes.Buffer
		SetupLogger("development", "warn", &buf)
		slog.Info("hidden")
		slog.Warn("shown")

		out := buf.String()
		if strings.Contains(out, "hidden") {
			t.Errorf("log output = %q, want info suppressed", out)
		}
		if !strings.Contains(out, "shown") {
			t.Errorf("log output = %q, want warn written", out)
		}
	})
}
