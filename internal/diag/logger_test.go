package diag

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLoggerWritesJSONLines(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, DebugLevel)
	logger.Warn("above troposphere", Float64("altitude_ft", 40000), String("reason", "extrapolated"))

	line := strings.TrimSpace(buf.String())
	var decoded map[string]any
	if err := json.Unmarshal([]byte(line), &decoded); err != nil {
		t.Fatalf("expected valid JSON line, got %q: %v", line, err)
	}
	if decoded["level"] != "warn" || decoded["message"] != "above troposphere" {
		t.Fatalf("unexpected payload: %#v", decoded)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, WarnLevel)
	logger.Debug("should be dropped")
	if buf.Len() != 0 {
		t.Fatalf("expected debug message to be filtered out, got %q", buf.String())
	}
	logger.Warn("should pass")
	if buf.Len() == 0 {
		t.Fatalf("expected warn message to pass the level filter")
	}
}

func TestWithAddsFieldsWithoutMutatingReceiver(t *testing.T) {
	var buf bytes.Buffer
	base := New(&buf, DebugLevel)
	derived := base.With(String("shot_id", "abc"))
	derived.Info("hello")

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if decoded["shot_id"] != "abc" {
		t.Fatalf("expected derived field to be present, got %#v", decoded)
	}
}

func TestNopLoggerDiscardsEverything(t *testing.T) {
	logger := NewNopLogger()
	logger.Error("should never panic or write anywhere")
}

func TestGlobalLoggerDefaultsToNop(t *testing.T) {
	//1.- Without ReplaceGlobals, L() must be safe to call and silent.
	L().Info("default global logger call")
}
