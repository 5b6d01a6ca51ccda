package main

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"
)

// findSidecars returns every sibling of primary that belongs to it: a file
// whose name starts with the primary's base name (case-insensitive, exact
// or extended with a derivative suffix like "-1", "_edit" or " edited")
// and whose extension is in exts. The primary itself is never included.
//
// Two passes feed one de-duplication set keyed by the case-normalized
// path: a directory listing, and a direct probe of every recognized
// extension in both cases. The probe catches files a quirky filesystem or
// tool reports inconsistently in listings.
func findSidecars(primary string, exts []string) []string {
	dir := filepath.Dir(primary)
	base := fileStem(filepath.Base(primary))
	baseLower := strings.ToLower(base)
	primaryKey := normPathKey(primary)

	extSet := make(map[string]bool, len(exts))
	for _, ext := range exts {
		extSet[strings.ToLower(ext)] = true
	}

	seen := make(map[string]bool)
	var found []string

	add := func(path string) {
		key := normPathKey(path)
		if key == primaryKey || seen[key] {
			return
		}
		seen[key] = true
		found = append(found, path)
	}

	// Pass one: scan the directory listing.
	if entries, err := os.ReadDir(dir); err == nil {
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			name := entry.Name()
			if !extSet[strings.ToLower(filepath.Ext(name))] {
				continue
			}
			if !stemBelongsTo(strings.ToLower(fileStem(name)), baseLower) {
				continue
			}
			add(filepath.Join(dir, name))
		}
	}

	// Pass two: probe each recognized extension directly against the
	// exact base name, in both lower and upper case.
	for ext := range extSet {
		for _, probeExt := range []string{ext, strings.ToUpper(ext)} {
			probe := filepath.Join(dir, base+probeExt)
			if info, err := os.Stat(probe); err == nil && !info.IsDir() {
				add(probe)
			}
		}
	}

	sort.Strings(found)
	return found
}

func fileStem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// stemBelongsTo reports whether a sibling stem names the same shot as
// base: either equal, or base followed by a separator such as "-", "_",
// a space or "(". "dsf7942-hdr" belongs to "dsf7942"; "dsf79421" does not.
func stemBelongsTo(stem, base string) bool {
	if stem == base {
		return true
	}
	if !strings.HasPrefix(stem, base) {
		return false
	}
	rest := []rune(stem[len(base):])
	return len(rest) > 0 && !unicode.IsLetter(rest[0]) && !unicode.IsDigit(rest[0])
}

// normPathKey normalizes a path for de-duplication: absolute where
// possible, case-folded for the case-insensitive match guarantee.
func normPathKey(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = filepath.Clean(path)
	}
	return strings.ToLower(abs)
}
