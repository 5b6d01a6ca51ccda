package main

const (
	AppName = "photoimport"

	DirPerms  = 0755
	FilePerms = 0644

	// Buffer size for streamed checksum reads.
	ChecksumBufferSize = 64 * 1024

	// How many rows of each detail list the final summary prints.
	SummaryMaxRows = 50

	DefaultWorkers       = 8
	DefaultSkipExtension = ".mov"
)

// Extensions that mark a file as a sidecar or derivative of a primary
// media file. Files with these extensions are never enumerated as
// primaries; they are discovered per-primary by the locator.
var DefaultSidecarExtensions = []string{
	".xmp", ".raf", ".fp2", ".fp3", ".photo-edit", ".dng",
}
