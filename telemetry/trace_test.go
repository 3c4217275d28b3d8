package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTraceWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.csv")

	tw, err := NewTraceWriter(path)
	if err != nil {
		t.Fatalf("NewTraceWriter: %v", err)
	}

	records := []PoseRecord{
		{Tick: 0, X: 0, Y: 0, Heading: 0},
		{Tick: 1, X: 3.33, Y: 0, Heading: 0.1},
		{Tick: 2, X: 6.67, Y: 0, Heading: 0.2},
	}
	for _, rec := range records {
		if err := tw.Write(rec); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
	if err := tw.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want header + 3 records:\n%s", len(lines), data)
	}
	if lines[0] != "tick,x,y,heading" {
		t.Errorf("header = %q, want tick,x,y,heading", lines[0])
	}
	if !strings.HasPrefix(lines[2], "1,") {
		t.Errorf("second record = %q, want tick 1", lines[2])
	}
}

func TestTraceWriterDisabled(t *testing.T) {
	tw, err := NewTraceWriter("")
	if err != nil {
		t.Fatalf("NewTraceWriter: %v", err)
	}
	if tw != nil {
		t.Fatal("expected nil writer for empty path")
	}

	// The nil writer must be safe to use
	if err := tw.Write(PoseRecord{Tick: 1}); err != nil {
		t.Errorf("nil Write: %v", err)
	}
	if err := tw.Close(); err != nil {
		t.Errorf("nil Close: %v", err)
	}
}
