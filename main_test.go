package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/skygen-app/skygen/internal/app"
	"github.com/skygen-app/skygen/internal/config"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			Inbox:      "/tmp/skygen-inbox",
			Width:      80,
			Height:     24,
			ShowFooter: true,
			Verbose:    true,
			ClearDelay: 100 * time.Millisecond,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"inbox":   "/tmp/skygen-inbox",
			"width":   "80",
			"height":  "24",
			"footer":  "true",
			"verbose": "true",
		},
		Args: []string{"--inbox", "/tmp/skygen-inbox"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["inbox"] != "/tmp/skygen-inbox" {
		t.Fatalf("expected inbox flag %q, got %v", "/tmp/skygen-inbox", flagsValue["inbox"])
	}
	if flagsValue["width"] != "80" {
		t.Fatalf("expected width 80, got %v", flagsValue["width"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}
	if payload["session"] == "" {
		t.Fatalf("expected session id in payload")
	}
	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App != cfg.App {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}

func TestRunResolvePrintsReport(t *testing.T) {
	cfg, err := config.LoadArgs([]string{"--resolve", "skygen://settings/security"}, nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	var out bytes.Buffer
	if err := run(cfg, &out); err != nil {
		t.Fatalf("expected resolve to succeed, got %v", err)
	}
	if !strings.Contains(out.String(), `"url": "skygen://settings/security"`) {
		t.Fatalf("expected canonical url in report, got %s", out.String())
	}
}

func TestRunSendAppendsToInbox(t *testing.T) {
	inbox := filepath.Join(t.TempDir(), "inbox")
	cfg, err := config.LoadArgs([]string{"--inbox", inbox, "--send", "skygen://action/action-3"}, nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := run(cfg, nil); err != nil {
		t.Fatalf("expected send to succeed, got %v", err)
	}
	data, err := os.ReadFile(inbox)
	if err != nil {
		t.Fatalf("expected inbox written, got %v", err)
	}
	if string(data) != "skygen://action/action-3\n" {
		t.Fatalf("unexpected inbox contents %q", string(data))
	}
}
