package domain

import (
	"crypto/sha256"
	"fmt"

	"github.com/mouse-blink/exportall/internal/adapter"
	m "github.com/mouse-blink/exportall/internal/model"
)

const indexFileMode = 0o644

// EmitOptions configures emission.
type EmitOptions struct {
	// DryRun reports what would happen without touching the filesystem.
	DryRun bool
}

// Emitter persists barrel content to the layout's index file.
type Emitter interface {
	Emit(layout m.Layout, content []byte, opts EmitOptions) (m.WriteStatus, error)
}

type emitter struct {
	fs adapter.SourceFSAdapter
}

// NewEmitter creates an Emitter writing through fs.
func NewEmitter(fs adapter.SourceFSAdapter) Emitter {
	return &emitter{fs: fs}
}

// Emit creates the output directory and overwrites the index file with
// content. The returned status compares content with what was there before;
// the file is written even when unchanged.
func (e *emitter) Emit(layout m.Layout, content []byte, opts EmitOptions) (m.WriteStatus, error) {
	status, err := e.compare(layout.IndexFile, content)
	if err != nil {
		return "", err
	}

	if opts.DryRun {
		return m.StatusDryRun, nil
	}

	if err := e.fs.MkdirAll(layout.OutputDir); err != nil {
		return "", fmt.Errorf("cannot create directory %s: %w", layout.OutputDir, err)
	}

	if err := e.fs.WriteFile(layout.IndexFile, content, indexFileMode); err != nil {
		return "", fmt.Errorf("write %s: %w", layout.IndexFile, err)
	}

	return status, nil
}

func (e *emitter) compare(path m.Path, content []byte) (m.WriteStatus, error) {
	if !e.fs.Exists(path) {
		return m.StatusCreated, nil
	}

	previous, err := e.fs.HashFile(path)
	if err != nil {
		return "", fmt.Errorf("hash %s: %w", path, err)
	}

	if previous == fmt.Sprintf("%x", sha256.Sum256(content)) {
		return m.StatusUnchanged, nil
	}

	return m.StatusUpdated, nil
}
