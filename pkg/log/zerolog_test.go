package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

func TestZerologAdapterFields(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewZerologAdapterWithLogger(zerolog.New(&buf))

	adapter.Info("solved",
		String("source", "input.txt"),
		Int("groups", 5),
		Uint64("part1", 24000),
		Any("top", []uint64{24000, 11000, 10000}),
		Bool("strict", false),
	)

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("unmarshal log line %q: %v", buf.String(), err)
	}
	if entry["message"] != "solved" {
		t.Fatalf("message = %v, want solved", entry["message"])
	}
	if entry["level"] != "info" {
		t.Fatalf("level = %v, want info", entry["level"])
	}
	if entry["source"] != "input.txt" {
		t.Fatalf("source = %v, want input.txt", entry["source"])
	}
	// JSON numbers decode as float64.
	if entry["groups"] != float64(5) || entry["part1"] != float64(24000) {
		t.Fatalf("unexpected numeric fields: %v", entry)
	}
	top, ok := entry["top"].([]interface{})
	if !ok || len(top) != 3 {
		t.Fatalf("top = %v, want three values", entry["top"])
	}
}

func TestZerologAdapterError(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewZerologAdapterWithLogger(zerolog.New(&buf))

	adapter.Error("run failed", Err(errors.New("boom")))

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if entry["error"] != "boom" {
		t.Fatalf("error = %v, want boom", entry["error"])
	}
}

func TestZerologAdapterLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewZerologAdapter(&buf, zerolog.WarnLevel)

	adapter.Debug("hidden")
	adapter.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected no output below warn, got %q", buf.String())
	}

	adapter.Warn("shown")
	if !bytes.Contains(buf.Bytes(), []byte("shown")) {
		t.Fatalf("expected warn message in output, got %q", buf.String())
	}
}

func TestNoopLogger(t *testing.T) {
	var l Logger = NewNoopLogger()
	l.Debug("x")
	l.Info("x", String("k", "v"))
	l.Warn("x")
	l.Error("x", Err(errors.New("e")))
}
