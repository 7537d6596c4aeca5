package app

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestBuildReportDescribesRouting(t *testing.T) {
	report := BuildReport(Config{}, "skygen://device/device%2F7")
	if report.Kind != "device" || report.ID != "device/7" {
		t.Fatalf("expected device link with decoded id, got %#v", report)
	}
	if report.URL != "skygen://device/device%2F7" {
		t.Fatalf("expected canonical url, got %q", report.URL)
	}
	if report.Tab != "Devices" {
		t.Fatalf("expected Devices tab, got %q", report.Tab)
	}
	if got := report.Stacks["Devices"]; len(got) != 1 {
		t.Fatalf("expected one device entry, got %v", got)
	}
	if got := report.Stacks["Chats"]; len(got) != 0 {
		t.Fatalf("expected empty chat stack, got %v", got)
	}
}

func TestResolveWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Resolve(&buf, Config{}, "mailto:someone"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	var report Report
	if err := json.Unmarshal(buf.Bytes(), &report); err != nil {
		t.Fatalf("expected JSON report, got %v", err)
	}
	if report.Kind != "unknown" || report.URL != "mailto:someone" {
		t.Fatalf("expected unknown link echoed back, got %#v", report)
	}
	if report.Tab != "Chats" {
		t.Fatalf("expected unknown links to land on Chats, got %q", report.Tab)
	}
	if len(report.Stacks) != 5 {
		t.Fatalf("expected all five stacks, got %d", len(report.Stacks))
	}
}

func TestSendAppendsToInbox(t *testing.T) {
	inbox := filepath.Join(t.TempDir(), "spool", "inbox")
	cfg := Config{Inbox: inbox}
	if err := Send(cfg, "skygen://chat/chat-1"); err != nil {
		t.Fatalf("expected send to succeed, got %v", err)
	}
	if err := Send(cfg, "skygen://settings/help"); err != nil {
		t.Fatalf("expected second send to succeed, got %v", err)
	}
	data, err := os.ReadFile(inbox)
	if err != nil {
		t.Fatalf("expected inbox file, got %v", err)
	}
	want := "skygen://chat/chat-1\nskygen://settings/help\n"
	if string(data) != want {
		t.Fatalf("expected %q, got %q", want, string(data))
	}
	if err := Send(cfg, ""); err == nil {
		t.Fatalf("expected empty url to fail")
	}
}
