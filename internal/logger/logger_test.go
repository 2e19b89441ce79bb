package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNewHandlerJSONByDefault(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(newHandler(&buf, Config{Level: "info", Env: "production"}))
	log.Info("server starting", "address", "localhost:8080")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", buf.String(), err)
	}
	if record["msg"] != "server starting" {
		t.Errorf("msg = %v, want %q", record["msg"], "server starting")
	}
	if record["address"] != "localhost:8080" {
		t.Errorf("address = %v, want %q", record["address"], "localhost:8080")
	}
}

func TestNewHandlerTextInDevelopment(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(newHandler(&buf, Config{Level: "debug", Env: "development"}))
	log.Debug("migration applied", "version", "0001")

	out := buf.String()
	if strings.HasPrefix(strings.TrimSpace(out), "{") {
		t.Fatalf("expected text output in development, got JSON: %q", out)
	}
	if !strings.Contains(out, "msg=\"migration applied\"") {
		t.Errorf("output missing message: %q", out)
	}
	if !strings.Contains(out, "version=0001") {
		t.Errorf("output missing attribute: %q", out)
	}
}

func TestNewHandlerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(newHandler(&buf, Config{Level: "warn", Env: "production"}))
	log.Info("dropped")
	if buf.Len() != 0 {
		t.Errorf("info record logged at warn level: %q", buf.String())
	}
	log.Warn("kept")
	if buf.Len() == 0 {
		t.Error("warn record not logged at warn level")
	}
}

func TestGetLevel(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"debug", "DEBUG"},
		{"INFO", "INFO"},
		{"Warn", "WARN"},
		{"error", "ERROR"},
		{"verbose", "INFO"},
		{"", "INFO"},
	}
	for _, tt := range tests {
		if got := GetLevel(tt.input); got != tt.want {
			t.Errorf("GetLevel(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
