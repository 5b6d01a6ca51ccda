package main

// ImportOptions is the single configuration record for one import run.
// It is built once by the CLI layer and passed down unchanged.
type ImportOptions struct {
	SrcDir            string
	DestRoot          string
	SkipExtension     string // lowercase, with dot; empty means no skip
	Verbose           bool
	Workers           int
	SidecarExtensions []string
}

// NewImportOptions fills in the defaults the CLI layer does not override.
func NewImportOptions(src, dest string) ImportOptions {
	return ImportOptions{
		SrcDir:            src,
		DestRoot:          dest,
		Workers:           DefaultWorkers,
		SidecarExtensions: DefaultSidecarExtensions,
	}
}

// CopyOutcome is the result of placing one primary file and its sidecars
// into a destination folder. Immutable once returned.
type CopyOutcome struct {
	Success        bool
	CopiedSidecars int
	AlreadyExisted bool
}

// itemStatus tags how a single primary candidate ended up.
type itemStatus int

const (
	statusCopied itemStatus = iota
	statusSkipped
	statusExisting
	statusFailed
)

// itemNote pairs a source path with the reason it was skipped or failed.
type itemNote struct {
	Path   string
	Reason string
}

// SyncOptions configures the rsync mirroring workflow.
type SyncOptions struct {
	SrcDir     string
	DestDir    string
	ExcludeExt string // e.g. ".mov"; empty means no exclude
	Delete     bool
}
