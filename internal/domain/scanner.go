package domain

import (
	"fmt"
	"os"

	"github.com/mouse-blink/exportall/internal/adapter"
	m "github.com/mouse-blink/exportall/internal/model"
)

// entryFileNames are probed in order inside every module directory. Both
// are collected when both exist.
var entryFileNames = []string{"index.ts", "index.js"}

// Scanner enumerates the immediate children of a source directory.
type Scanner interface {
	Scan(sourceDir m.Path) ([]m.ScanEntry, error)
}

type scanner struct {
	fs adapter.SourceFSAdapter
}

// NewScanner creates a Scanner listing directories through fs.
func NewScanner(fs adapter.SourceFSAdapter) Scanner {
	return &scanner{fs: fs}
}

// Scan classifies every child of sourceDir in listing order. Directories with
// entry files become modules; everything else is returned as skipped.
func (s *scanner) Scan(sourceDir m.Path) ([]m.ScanEntry, error) {
	info, err := s.fs.FileInfo(sourceDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrMissingSourceDirectory, sourceDir)
		}

		return nil, fmt.Errorf("stat %s: %w", sourceDir, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrMissingSourceDirectory, sourceDir)
	}

	names, err := s.fs.ReadDir(sourceDir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", sourceDir, err)
	}

	entries := make([]m.ScanEntry, 0, len(names))

	for _, name := range names {
		entry, err := s.scanChild(sourceDir, name)
		if err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

func (s *scanner) scanChild(sourceDir m.Path, name string) (m.ScanEntry, error) {
	childPath := s.fs.JoinPath(string(sourceDir), name)

	info, err := s.fs.FileInfo(childPath)
	if err != nil {
		return m.ScanEntry{}, fmt.Errorf("stat %s: %w", childPath, err)
	}

	if !info.IsDir() {
		return m.Skipped(name, childPath, m.ReasonPlainFile), nil
	}

	module := &m.ModuleEntry{DirectoryName: name, Dir: childPath}

	for _, fileName := range entryFileNames {
		entryPath := s.fs.JoinPath(string(childPath), fileName)
		if s.isRegularFile(entryPath) {
			module.EntryFiles = append(module.EntryFiles, m.EntryFile{Path: entryPath})
		}
	}

	if len(module.EntryFiles) == 0 {
		return m.Skipped(name, childPath, m.ReasonNoEntryFiles), nil
	}

	return m.ScanEntry{
		Name:    name,
		Path:    childPath,
		Outcome: m.OutcomeModule,
		Module:  module,
	}, nil
}

func (s *scanner) isRegularFile(path m.Path) bool {
	info, err := s.fs.FileInfo(path)

	return err == nil && !info.IsDir()
}
