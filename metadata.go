package main

import (
	"os"
	"strings"
	"time"

	exiftool "github.com/barasher/go-exiftool"
	"github.com/rwcarlsen/goexif/exif"
)

// Metadata date fields checked in order; the first one present wins.
// MediaCreateDate is where exiftool surfaces the QuickTime container
// creation date for MOV/MP4 files.
var captureDateFields = []string{
	"DateTimeOriginal",
	"CreateDate",
	"MediaCreateDate",
}

// DateResolver maps a file to the (year, month) bucket it belongs in.
// It shells out to exiftool through a long-lived process when available
// and degrades to the embedded EXIF parser, then to the current wall-clock
// date. Resolve never fails: a file we cannot date still has to be filed.
//
// A resolver is not safe for concurrent use; each worker owns its own.
type DateResolver struct {
	et  *exiftool.Exiftool
	rep Reporter
}

func NewDateResolver(rep Reporter) *DateResolver {
	et, err := exiftool.NewExiftool()
	if err != nil {
		rep.Warnf("exiftool unavailable (%v), using embedded EXIF parser", err)
		et = nil
	}
	return &DateResolver{et: et, rep: rep}
}

func (r *DateResolver) Close() {
	if r.et != nil {
		r.et.Close()
	}
}

// Resolve returns a four-digit year and a two-digit month for path.
func (r *DateResolver) Resolve(path string) (year, month string) {
	if r.et != nil {
		if y, m, ok := r.resolveExiftool(path); ok {
			return y, m
		}
	} else if y, m, ok := resolveEmbeddedExif(path); ok {
		return y, m
	}

	now := time.Now()
	return now.Format("2006"), now.Format("01")
}

func (r *DateResolver) resolveExiftool(path string) (string, string, bool) {
	metas := r.et.ExtractMetadata(path)
	if len(metas) == 0 {
		return "", "", false
	}
	if metas[0].Err != nil {
		r.rep.Errorf("Failed to read metadata from %s: %v", path, metas[0].Err)
		return "", "", false
	}

	for _, field := range captureDateFields {
		raw, ok := metas[0].Fields[field]
		if !ok {
			continue
		}
		if y, m, ok := splitDateToken(toString(raw)); ok {
			return y, m, true
		}
	}
	return "", "", false
}

// resolveEmbeddedExif reads the EXIF block directly, for hosts without
// the exiftool binary. Only covers JPEG/TIFF-style containers.
func resolveEmbeddedExif(path string) (string, string, bool) {
	f, err := os.Open(path)
	if err != nil {
		return "", "", false
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return "", "", false
	}
	t, err := x.DateTime()
	if err != nil {
		return "", "", false
	}
	return t.Format("2006"), t.Format("01"), true
}

// splitDateToken extracts year and month from a raw metadata date value.
// Values arrive as "2025:03:22 10:11:12" or "2025-03-22T10:11:12Z"; `-`
// and `:` are treated as the same separator and `T` as a space, then the
// first whitespace token is split into its date components.
func splitDateToken(raw string) (year, month string, ok bool) {
	clean := strings.ReplaceAll(raw, "-", ":")
	clean = strings.ReplaceAll(clean, "T", " ")

	tokens := strings.Fields(clean)
	if len(tokens) == 0 {
		return "", "", false
	}

	parts := strings.Split(tokens[0], ":")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}

	year, month = parts[0], parts[1]
	if len(month) == 1 {
		month = "0" + month
	}
	return year, month, true
}
