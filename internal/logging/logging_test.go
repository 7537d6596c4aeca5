package logging

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTraceWritesJSONWhenEnabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "trace.log")
	Configure(path)
	defer Configure("")
	SetTraceEnabled(true)
	defer SetTraceEnabled(false)

	Trace("link.received", map[string]interface{}{"url": "skygen://chat/1"})

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("expected trace file, got %v", err)
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		t.Fatalf("expected one trace line")
	}
	var entry struct {
		Session string                 `json:"session"`
		Event   string                 `json:"event"`
		Payload map[string]interface{} `json:"payload"`
	}
	if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
		t.Fatalf("expected valid JSON, got %v", err)
	}
	if entry.Event != "link.received" {
		t.Fatalf("expected event link.received, got %q", entry.Event)
	}
	if entry.Session != SessionID() || entry.Session == "" {
		t.Fatalf("expected session %q, got %q", SessionID(), entry.Session)
	}
	if entry.Payload["url"] != "skygen://chat/1" {
		t.Fatalf("unexpected payload %#v", entry.Payload)
	}
}

func TestTraceDisabledWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.log")
	Configure(path)
	defer Configure("")
	SetTraceEnabled(false)

	Trace("ignored", nil)

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no trace file, stat err = %v", err)
	}
}

func TestErrorAppendsToLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "errors.log")
	Configure(path)
	defer Configure("")

	Error(errors.New("inbox unreadable"))
	Error(nil)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected log file, got %v", err)
	}
	if !strings.Contains(string(data), "inbox unreadable") {
		t.Fatalf("expected error text in log, got %q", string(data))
	}
	if strings.Count(string(data), "\n") != 1 {
		t.Fatalf("expected exactly one line, got %q", string(data))
	}
}

func TestConfigureEmptyFallsBackToDefault(t *testing.T) {
	Configure("")
	if Path() != defaultLogFile {
		t.Fatalf("expected default path, got %q", Path())
	}
}
