package main

import (
	"fmt"
	"strings"
	"sync"
	"testing"
)

// captureReporter records every event so tests can run the pipeline
// headless and assert on what would have been printed.
type captureReporter struct {
	mu     sync.Mutex
	events []string
}

func newCaptureReporter() *captureReporter {
	return &captureReporter{}
}

func (r *captureReporter) record(level, format string, args ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, level+": "+fmt.Sprintf(format, args...))
}

func (r *captureReporter) Infof(format string, args ...interface{}) {
	r.record("INFO", format, args...)
}

func (r *captureReporter) Warnf(format string, args ...interface{}) {
	r.record("WARN", format, args...)
}

func (r *captureReporter) Errorf(format string, args ...interface{}) {
	r.record("ERROR", format, args...)
}

func (r *captureReporter) Debugf(format string, args ...interface{}) {
	r.record("DEBUG", format, args...)
}

func (r *captureReporter) contains(level, substr string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ev := range r.events {
		if strings.HasPrefix(ev, level+": ") && strings.Contains(ev, substr) {
			return true
		}
	}
	return false
}

func TestTotalBytesToString(t *testing.T) {
	cases := []struct {
		in      int64
		decimal bool
		want    string
	}{
		{512, false, "512 B"},
		{2048, false, "2.0 KiB"},
		{1500, true, "1.5 kB"},
	}
	for _, c := range cases {
		if got := totalBytesToString(c.in, c.decimal); got != c.want {
			t.Errorf("totalBytesToString(%d, %v) = %q, want %q", c.in, c.decimal, got, c.want)
		}
	}
}
