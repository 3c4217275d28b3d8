// Package telemetry provides pose tracing and tick timing for the
// demo.
package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// PoseRecord is one row of the trace CSV: the player pose after a
// tick.
type PoseRecord struct {
	Tick    int32   `csv:"tick"`
	X       float32 `csv:"x"`
	Y       float32 `csv:"y"`
	Heading float32 `csv:"heading"`
}

// TraceWriter appends per-tick pose records to a CSV file. A nil
// TraceWriter discards everything, so callers never need to branch on
// whether tracing is enabled.
type TraceWriter struct {
	file          *os.File
	headerWritten bool
}

// NewTraceWriter creates a trace writer for the given path. Returns
// nil if path is empty (tracing disabled).
func NewTraceWriter(path string) (*TraceWriter, error) {
	if path == "" {
		return nil, nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating trace directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating trace file: %w", err)
	}

	return &TraceWriter{file: f}, nil
}

// Write appends one pose record.
func (tw *TraceWriter) Write(rec PoseRecord) error {
	if tw == nil {
		return nil
	}

	records := []PoseRecord{rec}

	if !tw.headerWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, tw.file); err != nil {
			return fmt.Errorf("writing trace: %w", err)
		}
		tw.headerWritten = true
		return nil
	}

	if err := gocsv.MarshalWithoutHeaders(records, tw.file); err != nil {
		return fmt.Errorf("writing trace: %w", err)
	}
	return nil
}

// Close flushes and closes the trace file.
func (tw *TraceWriter) Close() error {
	if tw == nil {
		return nil
	}
	return tw.file.Close()
}
