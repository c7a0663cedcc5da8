package log

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestInit_JSONWithRequestID(t *testing.T) {
	var buf bytes.Buffer
	l := Init(ZapConfig{Level: "info", Mode: ModeProduction, Encoding: EncodingJSON, Output: &buf})

	ctx := WithRequestID(context.Background(), "req-1")
	l.Infof(ctx, "added %d tasks", 2)
	l.Debug(ctx, "dropped below level")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if entry["msg"] != "added 2 tasks" {
		t.Errorf("msg = %v", entry["msg"])
	}
	if entry["request_id"] != "req-1" {
		t.Errorf("request_id = %v", entry["request_id"])
	}
	if entry["level"] != "INFO" {
		t.Errorf("level = %v", entry["level"])
	}
}

func TestInit_UnknownLevelIsInfo(t *testing.T) {
	var buf bytes.Buffer
	l := Init(ZapConfig{Level: "loud", Encoding: EncodingConsole, Output: &buf})

	l.Debug(context.Background(), "hidden")
	l.Warn(context.Background(), "shown")

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Fatalf("unexpected output %q", out)
	}
}
