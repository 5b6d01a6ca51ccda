package main

import "path/filepath"

// placeFile copies one primary file and its sidecars into destFolder,
// keeping the original names. Files that already exist with identical
// content are left alone; a same-named file with different content gets a
// warning and is overwritten, so the run keeps moving instead of stopping
// to resolve conflicts.
//
// A failed primary copy aborts the item. A failed sidecar copy is reported
// and the next sidecar is tried, unless the device itself is gone, which
// stops the remaining sidecar copies; sidecars already copied stay put.
// Every failure converts to a reported outcome, nothing escapes.
func placeFile(primary, destFolder string, opts ImportOptions, rep Reporter) CopyOutcome {
	name := filepath.Base(primary)
	destPath := filepath.Join(destFolder, name)

	if pathExists(destPath) {
		if filesAreIdentical(primary, destPath, rep) {
			rep.Debugf("SKIP %s (identical file already exists)", name)
			return CopyOutcome{Success: true, AlreadyExisted: true}
		}
		rep.Warnf("File with same name exists but content differs: %s", name)
	}

	if err := copyFile(primary, destPath); err != nil {
		if deviceGone(err) {
			rep.Errorf("Device disconnected while copying %s", name)
		} else {
			rep.Errorf("Failed to copy %s: %v", name, err)
		}
		return CopyOutcome{}
	}
	rep.Debugf("Copied main file: %s", name)

	copied := 0
	for _, sidecar := range findSidecars(primary, opts.SidecarExtensions) {
		scName := filepath.Base(sidecar)
		scDest := filepath.Join(destFolder, scName)

		if pathExists(scDest) && filesAreIdentical(sidecar, scDest, rep) {
			rep.Debugf("SKIP sidecar %s (identical file already exists)", scName)
			continue
		}

		if err := copyFile(sidecar, scDest); err != nil {
			if deviceGone(err) {
				rep.Errorf("Device disconnected while copying sidecar %s", scName)
				break
			}
			rep.Errorf("Failed to copy sidecar %s: %v", scName, err)
			continue
		}
		copied++
		rep.Debugf("Copied sidecar: %s", scName)
	}

	return CopyOutcome{Success: true, CopiedSidecars: copied}
}
