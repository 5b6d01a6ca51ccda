package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Prefix of the rsync stats line relayed to the user after a sync.
const rsyncSummaryToken = "sent"

// buildRsyncArgs constructs the rsync argument list for a mirror run.
// Both paths get a trailing slash so rsync syncs directory contents
// rather than creating a nested folder at the destination.
func buildRsyncArgs(opts SyncOptions) []string {
	args := []string{"-avh"} // archive, verbose, human-readable
	if opts.Delete {
		args = append(args, "--delete")
	}
	if opts.ExcludeExt != "" {
		args = append(args, "--exclude=*"+opts.ExcludeExt)
	}
	return append(args,
		strings.TrimSuffix(opts.SrcDir, "/")+"/",
		strings.TrimSuffix(opts.DestDir, "/")+"/",
	)
}

// runSync mirrors one tree onto another by invoking rsync, relaying its
// transfer summary on success and its stderr on failure.
func runSync(ctx context.Context, opts SyncOptions, rep Reporter) error {
	args := buildRsyncArgs(opts)
	rep.Infof("Running: rsync %s", strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, "rsync", args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			rep.Errorf("rsync failed with code %d", exitErr.ExitCode())
			if msg := strings.TrimSpace(stderr.String()); msg != "" {
				rep.Errorf("%s", msg)
			}
			return fmt.Errorf("rsync exited with code %d", exitErr.ExitCode())
		}
		return err
	}

	rep.Infof("Rsync completed successfully")
	if line := transferSummaryLine(stdout.String()); line != "" {
		rep.Infof("%s", line)
	}
	return nil
}

// transferSummaryLine returns the last line of rsync output that starts
// with the transfer-summary token, or "" when there is none.
func transferSummaryLine(output string) string {
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if strings.HasPrefix(lines[i], rsyncSummaryToken) {
			return lines[i]
		}
	}
	return ""
}
