package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNewLoggerToAttachesCommonFields(t *testing.T) {
	var buf bytes.Buffer
	logger := newLoggerTo(&buf, Config{Service: "playoff-report", Version: "dev", RunID: "abc123"})

	logger.Info("hello")

	out := buf.String()
	for _, want := range []string{"service=playoff-report", "version=dev", "run_id=abc123", "hello"} {
		if !strings.Contains(out, want) {
			t.Fatalf("log output missing %q: %s", want, out)
		}
	}
}

func TestNewLoggerToJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := newLoggerTo(&buf, Config{Format: "json", Service: "playoff-report"})

	logger.Info("hello")

	out := buf.String()
	if !strings.HasPrefix(out, "{") {
		t.Fatalf("expected JSON output, got %s", out)
	}
	if !strings.Contains(out, `"service":"playoff-report"`) {
		t.Fatalf("JSON output missing service field: %s", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw  string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.raw); got != tt.want {
			t.Fatalf("parseLevel(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := newLoggerTo(&buf, Config{Level: "warn"})

	logger.Info("dropped")
	logger.Warn("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Fatalf("info line should be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, "kept") {
		t.Fatalf("warn line missing: %s", out)
	}
}

func TestHelpersAreNilSafe(t *testing.T) {
	Info(nil, "noop")
	Warn(nil, "noop")
	Error(nil, "noop", nil)
}

func TestContextRoundTrip(t *testing.T) {
	fallback := slog.Default()
	if got := FromContext(context.Background(), fallback); got != fallback {
		t.Fatal("expected fallback logger when none stored")
	}

	var buf bytes.Buffer
	stored := newLoggerTo(&buf, Config{})
	ctx := WithContext(context.Background(), stored)
	if got := FromContext(ctx, fallback); got != stored {
		t.Fatal("expected stored logger from context")
	}
}
