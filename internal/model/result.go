package model

// Layout holds every resolved location of a generation run.
type Layout struct {
	ProjectDir Path
	SourceDir  Path
	OutputDir  Path
	// ImportBase is the relative path from OutputDir to SourceDir, with
	// forward slashes; generated specifiers are built on top of it.
	ImportBase string
	IndexFile  Path
}

// WriteStatus describes what the emitter did with the output file.
type WriteStatus string

const (
	StatusCreated   WriteStatus = "created"
	StatusUpdated   WriteStatus = "updated"
	StatusUnchanged WriteStatus = "unchanged"
	StatusDryRun    WriteStatus = "dry-run"
	StatusAborted   WriteStatus = "aborted"
)

// Result is the outcome of one generation run.
type Result struct {
	Layout  Layout
	Kind    ProjectKind
	Mode    ModuleMode
	Entries []ScanEntry
	Content []byte
	Status  WriteStatus
	// Diagnostic is set when the run was reported and aborted.
	Diagnostic error
}

// Aborted reports whether the run stopped before writing anything.
func (r Result) Aborted() bool {
	return r.Status == StatusAborted
}
