package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func importOpts(src, dest string) ImportOptions {
	opts := NewImportOptions(src, dest)
	opts.Workers = 4
	return opts
}

func TestRunImportEndToEnd(t *testing.T) {
	src := t.TempDir()
	dest := filepath.Join(t.TempDir(), "imgs")

	// Three primaries, one with two sidecars discovered per-primary.
	writeFile(t, src, "DSF0001.JPG", "first image bytes")
	writeFile(t, src, "DSF0001.XMP", "edit recipe")
	writeFile(t, src, "DSF0001.DNG", "raw negative")
	writeFile(t, src, "DSF0002.JPG", "second image bytes")
	sub := filepath.Join(src, "100_FUJI")
	if err := os.MkdirAll(sub, DirPerms); err != nil {
		t.Fatal(err)
	}
	writeFile(t, sub, "DSF0003.JPG", "third image bytes")

	rep := newCaptureReporter()
	s, err := runImport(context.Background(), importOpts(src, dest), rep)
	if err != nil {
		t.Fatalf("runImport: %v", err)
	}

	if s.Processed != 3 || s.Copied != 3 || s.CopiedSidecars != 2 || s.Failed != 0 {
		t.Errorf("snapshot = %+v", s)
	}

	// Fixture files carry no capture date, so they land in the current
	// wall-clock bucket.
	now := time.Now()
	bucket := filepath.Join(dest, now.Format("2006")+"."+now.Format("01"))
	if !isDir(bucket) {
		t.Fatalf("date bucket %s not created", bucket)
	}
	for _, name := range []string{"DSF0001.JPG", "DSF0001.XMP", "DSF0001.DNG", "DSF0002.JPG", "DSF0003.JPG"} {
		if !pathExists(filepath.Join(bucket, name)) {
			t.Errorf("%s missing from bucket", name)
		}
	}
}

func TestRunImportSecondRunSkipsExisting(t *testing.T) {
	src := t.TempDir()
	dest := t.TempDir()
	writeFile(t, src, "DSF0010.JPG", "image bytes")
	writeFile(t, src, "DSF0011.JPG", "more image bytes")

	opts := importOpts(src, dest)
	rep := newCaptureReporter()
	if _, err := runImport(context.Background(), opts, rep); err != nil {
		t.Fatalf("first run: %v", err)
	}

	s, err := runImport(context.Background(), opts, rep)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if s.Copied != 0 || s.SkippedExisting != 2 || s.Failed != 0 {
		t.Errorf("second run snapshot = %+v", s)
	}
}

func TestRunImportSkipExtension(t *testing.T) {
	src := t.TempDir()
	dest := t.TempDir()
	writeFile(t, src, "clip.mov", "video bytes")
	writeFile(t, src, "DSF0020.JPG", "image bytes")

	opts := importOpts(src, dest)
	opts.SkipExtension = ".mov"

	s, err := runImport(context.Background(), opts, newCaptureReporter())
	if err != nil {
		t.Fatalf("runImport: %v", err)
	}
	if s.SkippedOther != 1 || s.Copied != 1 {
		t.Errorf("snapshot = %+v", s)
	}
	if len(s.Skipped) != 1 || s.Skipped[0].Reason != ".mov file" {
		t.Errorf("skip notes = %+v", s.Skipped)
	}
}

func TestRunImportMissingSourceIsFatal(t *testing.T) {
	dest := t.TempDir()
	opts := importOpts(filepath.Join(dest, "nope"), dest)

	if _, err := runImport(context.Background(), opts, newCaptureReporter()); err == nil {
		t.Error("missing source did not fail the run")
	}
}

func TestRunImportDestinationNotADirectory(t *testing.T) {
	src := t.TempDir()
	dest := writeFile(t, t.TempDir(), "blocker", "")

	if _, err := runImport(context.Background(), importOpts(src, dest), newCaptureReporter()); err == nil {
		t.Error("file in place of destination did not fail the run")
	}
}

func TestRunImportCreatesDestinationRoot(t *testing.T) {
	src := t.TempDir()
	writeFile(t, src, "DSF0030.JPG", "image bytes")
	dest := filepath.Join(t.TempDir(), "new", "imgs")

	rep := newCaptureReporter()
	s, err := runImport(context.Background(), importOpts(src, dest), rep)
	if err != nil {
		t.Fatalf("runImport: %v", err)
	}
	if !isDir(dest) {
		t.Error("destination root not created")
	}
	if s.Copied != 1 {
		t.Errorf("snapshot = %+v", s)
	}
	if !rep.contains("INFO", "Created destination folder") {
		t.Error("destination creation not reported")
	}
}

func TestRunImportCancelledBeforeDispatch(t *testing.T) {
	src := t.TempDir()
	dest := t.TempDir()
	for _, name := range []string{"a.jpg", "b.jpg", "c.jpg"} {
		writeFile(t, src, name, "bytes for "+name)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s, err := runImport(ctx, importOpts(src, dest), newCaptureReporter())
	if err != nil {
		t.Fatalf("cancelled run errored: %v", err)
	}
	// Dispatch stops but the summary still renders with whatever was
	// recorded before the interrupt.
	if s.Processed > 3 {
		t.Errorf("snapshot = %+v", s)
	}
}
