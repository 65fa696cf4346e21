// Package adapter contains infrastructure adapters for the exportall CLI.
package adapter

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path/filepath"

	m "github.com/mouse-blink/exportall/internal/model"
)

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when scanning user projects. It hides direct `os` access so the
// generation logic can be tested without touching the disk.
//
//nolint:interfacebloat // A richer interface keeps domain logic decoupled from os/fs.
type SourceFSAdapter interface {
	// FileInfo returns metadata for a path, following symlinks.
	FileInfo(path m.Path) (os.FileInfo, error)

	// Exists reports whether anything exists at path.
	Exists(path m.Path) bool

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// ReadDir returns the names of the immediate children of dir in
	// listing order.
	ReadDir(dir m.Path) ([]string, error)

	// HashFile returns a stable fingerprint (SHA-256) for the file at path.
	HashFile(path m.Path) (string, error)

	// MkdirAll creates dir and any missing parents.
	MkdirAll(dir m.Path) error

	// WriteFile writes content to a file with the given permissions,
	// truncating any previous content.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// Abs resolves elem left to right into an absolute, cleaned path. An
	// absolute element discards everything before it.
	Abs(elem ...string) (m.Path, error)

	// RelPath returns the relative path from base to target.
	RelPath(base, target m.Path) (m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// Exists reports whether path can be stat'ed.
func (a *LocalSourceFSAdapter) Exists(path m.Path) bool {
	_, err := os.Stat(string(path))

	return err == nil
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	// #nosec G304 - paths come from the scanned project
	return os.ReadFile(string(path))
}

// ReadDir lists dir. os.ReadDir returns entries sorted by file name.
func (a *LocalSourceFSAdapter) ReadDir(dir m.Path) ([]string, error) {
	entries, err := os.ReadDir(string(dir))
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}

	return names, nil
}

// HashFile returns the SHA-256 hash of the file at the provided path.
func (a *LocalSourceFSAdapter) HashFile(path m.Path) (string, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// MkdirAll creates a directory tree.
func (a *LocalSourceFSAdapter) MkdirAll(dir m.Path) error {
	return os.MkdirAll(string(dir), 0o755)
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	return os.WriteFile(string(path), content, perm)
}

// Abs resolves path elements the way a shell would resolve successive cd's.
func (a *LocalSourceFSAdapter) Abs(elem ...string) (m.Path, error) {
	resolved := ""

	for _, e := range elem {
		if e == "" {
			continue
		}

		if filepath.IsAbs(e) {
			resolved = e

			continue
		}

		resolved = filepath.Join(resolved, e)
	}

	abs, err := filepath.Abs(resolved)
	if err != nil {
		return "", err
	}

	return m.Path(abs), nil
}

// RelPath returns the relative path from base to target.
func (a *LocalSourceFSAdapter) RelPath(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
