package main

import (
	"testing"
	"time"
)

func TestSplitDateToken(t *testing.T) {
	cases := []struct {
		raw         string
		year, month string
		ok          bool
	}{
		{"2025:03:22 10:11:12", "2025", "03", true},
		{"2025-03-22T10:11:12Z", "2025", "03", true},
		{"2019-07-04", "2019", "07", true},
		{"2025:3:22", "2025", "03", true},
		{"garbage", "", "", false},
		{"2025", "", "", false},
		{"", "", "", false},
	}

	for _, c := range cases {
		year, month, ok := splitDateToken(c.raw)
		if ok != c.ok || year != c.year || month != c.month {
			t.Errorf("splitDateToken(%q) = (%q, %q, %v), want (%q, %q, %v)",
				c.raw, year, month, ok, c.year, c.month, c.ok)
		}
	}
}

func TestResolveFallsBackToCurrentDate(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "nodate.txt", "no metadata in here")

	resolver := NewDateResolver(newCaptureReporter())
	defer resolver.Close()

	year, month := resolver.Resolve(path)

	now := time.Now()
	if year != now.Format("2006") || month != now.Format("01") {
		t.Errorf("Resolve fallback = (%s, %s), want current date (%s, %s)",
			year, month, now.Format("2006"), now.Format("01"))
	}
	if len(year) != 4 || len(month) != 2 {
		t.Errorf("Resolve returned badly shaped bucket: year=%q month=%q", year, month)
	}
}

func TestResolveMissingFileNeverFails(t *testing.T) {
	resolver := NewDateResolver(newCaptureReporter())
	defer resolver.Close()

	year, month := resolver.Resolve("/nonexistent/IMG_0001.JPG")
	if year == "" || month == "" {
		t.Error("Resolve returned empty bucket for missing file")
	}
}
