package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: DEBUG, Format: JSONFormat, Output: &buf, Component: "test"})

	log.Info("hello", map[string]interface{}{"key": "value"})

	var entry LogEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Log output is not valid JSON: %v", err)
	}
	if entry.Level != "INFO" {
		t.Errorf("Expected level INFO, got %s", entry.Level)
	}
	if entry.Message != "hello" {
		t.Errorf("Expected message 'hello', got %s", entry.Message)
	}
	if entry.Component != "test" {
		t.Errorf("Expected component 'test', got %s", entry.Component)
	}
	if entry.Fields["key"] != "value" {
		t.Errorf("Expected field key=value, got %v", entry.Fields)
	}
}

func TestTextFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: INFO, Format: TextFormat, Output: &buf, Component: "charts"})

	log.Warnf("render took %dms", 42)

	out := buf.String()
	if !strings.Contains(out, "WARN") || !strings.Contains(out, "[charts]") || !strings.Contains(out, "render took 42ms") {
		t.Errorf("Unexpected text output: %s", out)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: WARN, Format: TextFormat, Output: &buf})

	log.Debug("hidden")
	log.Info("hidden too")
	if buf.Len() != 0 {
		t.Errorf("Expected no output below WARN, got %s", buf.String())
	}

	log.Warn("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Error("Expected WARN message to be logged")
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	base := New(Config{Level: INFO, Format: TextFormat, Output: &buf})
	tagged := base.WithComponent("fetchers")

	tagged.Info("fetching")
	if !strings.Contains(buf.String(), "[fetchers]") {
		t.Errorf("Expected component tag in output: %s", buf.String())
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  LogLevel
	}{
		{"debug", DEBUG},
		{"INFO", INFO},
		{"Warning", WARN},
		{"error", ERROR},
		{"FATAL", FATAL},
		{"bogus", -1},
	}
	for _, tt := range tests {
		if got := ParseLogLevel(tt.input); got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseLogFormat(t *testing.T) {
	if ParseLogFormat("json") != JSONFormat {
		t.Error("Expected json to parse as JSONFormat")
	}
	if ParseLogFormat("text") != TextFormat {
		t.Error("Expected text to parse as TextFormat")
	}
	if ParseLogFormat("xml") != -1 {
		t.Error("Expected unknown format to return -1")
	}
}
