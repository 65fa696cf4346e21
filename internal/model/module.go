package model

// EntryFile is one `index.ts` or `index.js` found inside a module directory.
type EntryFile struct {
	Path             Path
	HasDefaultExport bool
}

// ModuleEntry is a sub-module directory of the source directory together
// with its entry files, in probe order (index.ts before index.js).
type ModuleEntry struct {
	DirectoryName string
	Dir           Path
	EntryFiles    []EntryFile
}

// ScanOutcome tells what the scanner decided for a directory child.
type ScanOutcome int

const (
	// OutcomeModule means the child is a directory with at least one entry file.
	OutcomeModule ScanOutcome = iota
	// OutcomeSkipped means the child contributes nothing to the barrel.
	OutcomeSkipped
)

// String returns a short label for the outcome.
func (o ScanOutcome) String() string {
	if o == OutcomeModule {
		return "module"
	}

	return "skipped"
}

// Skip reasons reported through the diagnostics channel.
const (
	ReasonPlainFile    = "plain files are not aggregated"
	ReasonNoEntryFiles = "no index.ts or index.js"
)

// ScanEntry is the per-child result of scanning the source directory.
type ScanEntry struct {
	Name    string
	Path    Path
	Outcome ScanOutcome
	Module  *ModuleEntry // set when Outcome == OutcomeModule
	Reason  string       // set when Outcome == OutcomeSkipped
}

// Skipped builds a skipped scan entry.
func Skipped(name string, path Path, reason string) ScanEntry {
	return ScanEntry{
		Name:    name,
		Path:    path,
		Outcome: OutcomeSkipped,
		Reason:  reason,
	}
}

// Modules returns the module entries of a scan in order.
func Modules(entries []ScanEntry) []ModuleEntry {
	modules := make([]ModuleEntry, 0, len(entries))

	for _, entry := range entries {
		if entry.Outcome == OutcomeModule && entry.Module != nil {
			modules = append(modules, *entry.Module)
		}
	}

	return modules
}
