package logging_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"binclock/internal/logging"
)

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelWarn},
		{"loud", slog.LevelWarn},
	}
	for _, tc := range testCases {
		if got := logging.ParseLevel(tc.in); got != tc.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(logging.Options{Level: "error", Writer: &buf})

	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("info leaked through error level: %s", buf.String())
	}

	logger.Error("shown", "key", "value")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("error record missing: %s", buf.String())
	}
}
