package table

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestFormatAlignsColumns(t *testing.T) {
	rows := [][]string{
		{"device-1", "MacBook Pro M3", "online"},
		{"device-10", "iPhone", "offline"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignLeft, AlignLeft})
	want := []string{
		"device-1   MacBook Pro M3  online",
		"device-10  iPhone          offline",
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestFormatRightAlignment(t *testing.T) {
	got := Format([][]string{{"a", "5"}, {"b", "15"}}, []Alignment{AlignLeft, AlignRight})
	if got[0] != "a   5" || got[1] != "b  15" {
		t.Fatalf("expected right aligned numbers, got %q", got)
	}
}

func TestFormatIgnoresStyling(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("on")
	got := Format([][]string{{styled, "x"}, {"off", "y"}}, nil)
	if ansi.StringWidth(got[0]) != ansi.StringWidth(got[1]) {
		t.Fatalf("expected equal visible widths, got %d and %d",
			ansi.StringWidth(got[0]), ansi.StringWidth(got[1]))
	}
}

func TestTruncate(t *testing.T) {
	lines := Truncate([]string{"abcdefgh", "ab"}, 5)
	if ansi.StringWidth(lines[0]) > 5 {
		t.Fatalf("expected truncated line within 5 cells, got %q", lines[0])
	}
	if lines[1] != "ab" {
		t.Fatalf("expected short line untouched, got %q", lines[1])
	}
	if Format(nil, nil) != nil {
		t.Fatalf("expected nil for no rows")
	}
}
