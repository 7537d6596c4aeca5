package dispatcher

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/skygen-app/skygen/internal/backend"
	"github.com/skygen-app/skygen/internal/deeplink"
	"github.com/skygen-app/skygen/internal/logging"
	"github.com/skygen-app/skygen/internal/navigation"
)

func TestHandleRoutesInboxURL(t *testing.T) {
	m := navigation.NewManager(0)
	d := New(m)
	res := d.Handle(backend.Event{URL: "skygen://integration/integration-2"})
	if !res.Handled {
		t.Fatalf("expected event handled")
	}
	if res.Pending.Link != deeplink.Integration("integration-2") {
		t.Fatalf("expected integration link, got %v", res.Pending.Link)
	}
	if m.SelectedTab() != deeplink.TabIntegration {
		t.Fatalf("expected integration tab, got %s", m.SelectedTab())
	}
}

func TestHandleIgnoresErrors(t *testing.T) {
	logging.Configure(filepath.Join(t.TempDir(), "skygen.log"))
	defer logging.Configure("")

	m := navigation.NewManager(0)
	d := New(m)
	if res := d.Handle(backend.Event{Err: errors.New("read failed")}); res.Handled {
		t.Fatalf("expected error event to be skipped")
	}
	if _, ok := m.Pending(); ok {
		t.Fatalf("expected no pending link after error")
	}
}
