package main

import "sync"

// ImportMetrics aggregates per-item outcomes across all workers. All
// mutation goes through the record methods, which hold the internal lock
// only long enough to update counters; callers never see the raw fields.
type ImportMetrics struct {
	mu              sync.Mutex
	processed       int
	copied          int
	copiedSidecars  int
	skippedOther    int
	skippedExisting int
	failed          int
	totalSize       int64
	skipped         []itemNote
	existing        []string
	failures        []itemNote
}

// MetricsSnapshot is an immutable view used for the final summary.
type MetricsSnapshot struct {
	Processed       int
	Copied          int
	CopiedSidecars  int
	SkippedOther    int
	SkippedExisting int
	Failed          int
	TotalSize       int64
	Skipped         []itemNote
	Existing        []string
	Failures        []itemNote
}

func (m *ImportMetrics) RecordCopied(sidecars int, size int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.processed++
	m.copied++
	m.copiedSidecars += sidecars
	m.totalSize += size
}

func (m *ImportMetrics) RecordExisting(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.processed++
	m.skippedExisting++
	m.existing = append(m.existing, path)
}

func (m *ImportMetrics) RecordSkip(path, reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.skippedOther++
	m.skipped = append(m.skipped, itemNote{Path: path, Reason: reason})
}

func (m *ImportMetrics) RecordFailure(path, reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.processed++
	m.failed++
	m.failures = append(m.failures, itemNote{Path: path, Reason: reason})
}

func (m *ImportMetrics) Snapshot() MetricsSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return MetricsSnapshot{
		Processed:       m.processed,
		Copied:          m.copied,
		CopiedSidecars:  m.copiedSidecars,
		SkippedOther:    m.skippedOther,
		SkippedExisting: m.skippedExisting,
		Failed:          m.failed,
		TotalSize:       m.totalSize,
		Skipped:         append([]itemNote(nil), m.skipped...),
		Existing:        append([]string(nil), m.existing...),
		Failures:        append([]itemNote(nil), m.failures...),
	}
}

// renderSummary prints the end-of-run report: the counter table followed
// by the skip, already-existing and failure lists, each capped at
// SummaryMaxRows with a "+N more" marker.
func renderSummary(rep Reporter, s MetricsSnapshot, destRoot string) {
	rep.Infof("")
	rep.Infof("Import summary")
	rep.Infof("  %-32s %d", "Total main files processed", s.Processed)
	rep.Infof("  %-32s %d", "Files copied", s.Copied)
	rep.Infof("  %-32s %d", "Files skipped (already exist)", s.SkippedExisting)
	rep.Infof("  %-32s %d", "Sidecar files copied", s.CopiedSidecars)
	rep.Infof("  %-32s %d", "Items skipped (other reasons)", s.SkippedOther)
	rep.Infof("  %-32s %d", "Items failed", s.Failed)
	rep.Infof("  %-32s %s", "Total size copied", totalBytesToString(s.TotalSize, false))
	rep.Infof("  %-32s %s", "Destination root", destRoot)

	if len(s.Skipped) > 0 {
		rep.Infof("Skipped files (%d):", len(s.Skipped))
		for i, note := range s.Skipped {
			if i == SummaryMaxRows {
				rep.Infof("  ... and %d more", len(s.Skipped)-SummaryMaxRows)
				break
			}
			rep.Infof("  %s (%s)", note.Path, note.Reason)
		}
	}

	if len(s.Existing) > 0 {
		rep.Infof("Files already existing (%d):", len(s.Existing))
		for i, path := range s.Existing {
			if i == SummaryMaxRows {
				rep.Infof("  ... and %d more", len(s.Existing)-SummaryMaxRows)
				break
			}
			rep.Infof("  %s", path)
		}
	}

	if len(s.Failures) > 0 {
		rep.Infof("Failed files (%d):", len(s.Failures))
		for i, note := range s.Failures {
			if i == SummaryMaxRows {
				rep.Infof("  ... and %d more", len(s.Failures)-SummaryMaxRows)
				break
			}
			rep.Infof("  %s (%s)", note.Path, note.Reason)
		}
	}
}
