package backend

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func nextEvent(t *testing.T, w *Watcher) Event {
	t.Helper()
	select {
	case evt, ok := <-w.Events():
		if !ok {
			t.Fatalf("expected event, channel closed")
		}
		return evt
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for inbox event")
	}
	return Event{}
}

func TestWatcherEmitsAppendedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inbox")
	if err := os.WriteFile(path, []byte("skygen://chat/old\n"), 0o644); err != nil {
		t.Fatalf("write inbox: %v", err)
	}
	w := NewWatcher(path, 10*time.Millisecond)
	defer func() {
		w.Stop()
		w.Wait()
	}()

	if err := Append(path, "skygen://device/7"); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := Append(path, "skygen://settings/help"); err != nil {
		t.Fatalf("append: %v", err)
	}

	first := nextEvent(t, w)
	second := nextEvent(t, w)
	if first.Err != nil || first.URL != "skygen://device/7" {
		t.Fatalf("expected device url, got %#v", first)
	}
	if second.Err != nil || second.URL != "skygen://settings/help" {
		t.Fatalf("expected help url, got %#v", second)
	}
}

func TestWatcherToleratesMissingFileAndTruncation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "later", "inbox")
	w := NewWatcher(path, 10*time.Millisecond)
	defer func() {
		w.Stop()
		w.Wait()
	}()

	if err := Append(path, "skygen://action/run-1"); err != nil {
		t.Fatalf("append: %v", err)
	}
	if evt := nextEvent(t, w); evt.URL != "skygen://action/run-1" {
		t.Fatalf("expected action url, got %#v", evt)
	}

	if err := os.WriteFile(path, []byte("skygen://chat\n"), 0o644); err != nil {
		t.Fatalf("truncate inbox: %v", err)
	}
	if evt := nextEvent(t, w); evt.URL != "skygen://chat" {
		t.Fatalf("expected chat url after truncation, got %#v", evt)
	}
}

func TestReadNewHoldsPartialLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inbox")
	w := &Watcher{path: path}
	if err := os.WriteFile(path, []byte("skygen://chat/1\n\n  \nskygen://dev"), 0o644); err != nil {
		t.Fatalf("write inbox: %v", err)
	}
	urls, err := w.readNew()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(urls) != 1 || urls[0] != "skygen://chat/1" {
		t.Fatalf("expected only the complete line, got %v", urls)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatalf("open inbox: %v", err)
	}
	f.WriteString("ice/9\n")
	f.Close()
	urls, err = w.readNew()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(urls) != 1 || urls[0] != "skygen://device/9" {
		t.Fatalf("expected joined partial line, got %v", urls)
	}
}

func TestReadNewKeepsLinesAfterVeryLongLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inbox")
	w := &Watcher{path: path}
	long := "skygen://chat/" + strings.Repeat("a", 70*1024)
	if err := os.WriteFile(path, []byte(long+"\nskygen://device/7\n"), 0o644); err != nil {
		t.Fatalf("write inbox: %v", err)
	}
	urls, err := w.readNew()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(urls) != 2 || urls[0] != long || urls[1] != "skygen://device/7" {
		t.Fatalf("expected the long line and the device link, got %d urls", len(urls))
	}
	if urls, _ := w.readNew(); len(urls) != 0 {
		t.Fatalf("expected nothing left to read, got %v", urls)
	}
}

func TestStopClosesEvents(t *testing.T) {
	w := NewWatcher(filepath.Join(t.TempDir(), "inbox"), 5*time.Millisecond)
	w.Stop()
	w.Wait()
	for range w.Events() {
	}
}

func TestAppendRejectsMultilineURL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inbox")
	if err := Append(path, "skygen://chat\nskygen://device/1"); err == nil {
		t.Fatalf("expected error for multi-line url")
	}
	if err := Append(path, "   "); err == nil {
		t.Fatalf("expected error for empty url")
	}
}
