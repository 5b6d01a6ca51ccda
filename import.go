package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/schollz/progressbar/v3"
)

// runImport is the import pipeline: enumerate the source tree, fan the
// primary candidates out across a bounded worker pool, and fold every
// outcome into shared metrics. Only setup problems return an error; once
// workers are dispatched the run always finishes and always renders a
// summary, however many items failed along the way.
//
// Cancelling ctx stops dispatch of new work; items already in flight run
// to completion and stay in the metrics.
func runImport(ctx context.Context, opts ImportOptions, rep Reporter) (MetricsSnapshot, error) {
	var none MetricsSnapshot

	if !isDir(opts.SrcDir) {
		return none, fmt.Errorf("source folder %q does not exist or is not accessible", opts.SrcDir)
	}

	if !pathExists(opts.DestRoot) {
		if err := os.MkdirAll(opts.DestRoot, DirPerms); err != nil {
			if deviceGone(err) {
				return none, fmt.Errorf("cannot create destination folder %q: %w", opts.DestRoot, errDeviceUnavailable)
			}
			return none, fmt.Errorf("cannot create destination folder %q: %w", opts.DestRoot, err)
		}
		rep.Infof("Created destination folder: %s", opts.DestRoot)
	} else if !isDir(opts.DestRoot) {
		return none, fmt.Errorf("destination %q exists but is not a directory", opts.DestRoot)
	}

	rep.Infof("Scanning %s for files...", opts.SrcDir)
	primaries, total, err := enumeratePrimaries(opts.SrcDir, opts.SidecarExtensions)
	if err != nil {
		if deviceGone(err) {
			return none, fmt.Errorf("failed to scan source folder, the card appears to be disconnected: %w", err)
		}
		return none, fmt.Errorf("failed to scan source folder: %w", err)
	}
	rep.Infof("Found %d files, %d of them main files", total, len(primaries))
	rep.Infof("Starting parallel import of %d main files from %s", len(primaries), opts.SrcDir)

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	metrics := &ImportMetrics{}
	bar := newImportBar(len(primaries), opts.Verbose)

	jobs := make(chan string)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resolver := NewDateResolver(rep)
			defer resolver.Close()
			for path := range jobs {
				processItem(path, opts, resolver, metrics, rep)
				bar.Add(1)
			}
		}()
	}

dispatch:
	for _, path := range primaries {
		select {
		case <-ctx.Done():
			rep.Warnf("Interrupted, no new files will be dispatched")
			break dispatch
		case jobs <- path:
		}
	}
	close(jobs)
	wg.Wait()
	bar.Finish()

	snapshot := metrics.Snapshot()
	renderSummary(rep, snapshot, opts.DestRoot)
	return snapshot, nil
}

// enumeratePrimaries walks the source tree and returns the primary
// candidates: regular files whose extension is not in the sidecar set.
// Sidecars are discovered per-primary later, so counting them here would
// process them twice.
func enumeratePrimaries(srcDir string, sidecarExts []string) ([]string, int, error) {
	extSet := make(map[string]bool, len(sidecarExts))
	for _, ext := range sidecarExts {
		extSet[strings.ToLower(ext)] = true
	}

	var primaries []string
	total := 0
	err := filepath.Walk(srcDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		total++
		if !info.Mode().IsRegular() {
			return nil
		}
		if extSet[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		primaries = append(primaries, path)
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return primaries, total, nil
}

// processItem handles one primary candidate end to end. A panic from any
// layer below is caught here and becomes a recorded failure, so one bad
// item can never take down its siblings.
func processItem(path string, opts ImportOptions, resolver *DateResolver, metrics *ImportMetrics, rep Reporter) {
	defer func() {
		if r := recover(); r != nil {
			metrics.RecordFailure(path, fmt.Sprintf("%v", r))
			rep.Errorf("Failed to process %s: %v", filepath.Base(path), r)
		}
	}()

	if opts.SkipExtension != "" && strings.EqualFold(filepath.Ext(path), opts.SkipExtension) {
		metrics.RecordSkip(path, opts.SkipExtension+" file")
		rep.Debugf("SKIP %s (%s file)", filepath.Base(path), opts.SkipExtension)
		return
	}

	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		metrics.RecordSkip(path, "not a file")
		rep.Debugf("SKIP %s (not a file)", filepath.Base(path))
		return
	}

	year, month := resolver.Resolve(path)
	destFolder, err := ensureDestination(opts.DestRoot, year, month)
	if err != nil {
		metrics.RecordFailure(path, err.Error())
		if errors.Is(err, errDeviceUnavailable) {
			rep.Errorf("%v, check that the destination drive is still connected", err)
		} else {
			rep.Errorf("%v", err)
		}
		return
	}

	rep.Debugf("Processing %s -> %s", filepath.Base(path), destFolder)

	outcome := placeFile(path, destFolder, opts, rep)
	switch {
	case outcome.AlreadyExisted:
		metrics.RecordExisting(path)
	case outcome.Success:
		metrics.RecordCopied(outcome.CopiedSidecars, info.Size())
	default:
		metrics.RecordFailure(path, "copy failed")
		rep.Warnf("Failed to copy %s, device may be disconnected", filepath.Base(path))
	}
}

// newImportBar returns the progress bar for the run. In verbose mode the
// per-file narration replaces it, so a silent bar is used instead.
func newImportBar(total int, verbose bool) *progressbar.ProgressBar {
	if verbose {
		return progressbar.DefaultSilent(int64(total))
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription("Importing files"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}
