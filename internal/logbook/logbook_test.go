package logbook

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestAppendAndTail(t *testing.T) {
	lb, err := New(filepath.Join(t.TempDir(), "logs", "renders.log"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	lb.Info("first")
	lb.Warn("second")
	lb.Render("analytical-board", "r-1", "/tmp/out.md")

	lines := lb.Tail(2)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "WARN") || !strings.Contains(lines[0], "second") {
		t.Fatalf("unexpected first tailed line: %q", lines[0])
	}
	if !strings.Contains(lines[1], "rendered analytical-board (r-1)") {
		t.Fatalf("render entry malformed: %q", lines[1])
	}
}

func TestTailMissingFile(t *testing.T) {
	lb, err := New(filepath.Join(t.TempDir(), "renders.log"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if lines := lb.Tail(5); lines != nil {
		t.Fatalf("expected nil for missing file, got %v", lines)
	}
}

func TestNilReceiverIsSafe(t *testing.T) {
	var lb *Logbook
	lb.Info("ignored")
	if lb.Path() != "" {
		t.Fatal("nil logbook should report empty path")
	}
	if lb.Tail(3) != nil {
		t.Fatal("nil logbook should tail nothing")
	}
}
