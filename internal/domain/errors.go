// Package domain implements barrel generation: project classification, path
// normalization, directory scanning, statement synthesis and emission.
package domain

import "errors"

// Conditions a generation run can stop on. The first three are reported
// through the UI and abort the run without writing; the others are
// returned to the caller.
var (
	ErrInvalidModuleMode      = errors.New("mode must be esm or cjs")
	ErrMissingProjectPath     = errors.New("project path is required")
	ErrMissingSourceDirectory = errors.New("no such file or directory")
	ErrManifestParse          = errors.New("cannot parse package.json")
	// ErrDuplicateIndexFile rejects a batch in which two barrels would
	// write the same index file.
	ErrDuplicateIndexFile = errors.New("barrels write the same index file")
)

// reported reports whether err is one of the conditions that are shown to
// the user instead of being returned.
func reported(err error) bool {
	return errors.Is(err, ErrInvalidModuleMode) ||
		errors.Is(err, ErrMissingProjectPath) ||
		errors.Is(err, ErrMissingSourceDirectory)
}
