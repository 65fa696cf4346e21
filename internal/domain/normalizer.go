package domain

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/mouse-blink/exportall/internal/adapter"
	m "github.com/mouse-blink/exportall/internal/model"
)

// DefaultTarget is the output directory used when none is given.
const DefaultTarget = "."

// Normalizer turns user supplied paths into a resolved Layout and builds
// import specifiers relative to the output directory.
type Normalizer interface {
	ResolveProject(segments []string) (m.Path, error)
	Layout(projectDir m.Path, source, target string, kind m.ProjectKind) (m.Layout, error)
	Specifier(layout m.Layout, moduleName string) string
}

type normalizer struct {
	fs adapter.SourceFSAdapter
}

// NewNormalizer creates a Normalizer resolving paths through fs.
func NewNormalizer(fs adapter.SourceFSAdapter) Normalizer {
	return &normalizer{fs: fs}
}

// NormalizeSourcePath trims whitespace and a trailing slash and makes the
// path explicitly relative by prefixing "./" unless it already starts with
// "./" or "../".
func NormalizeSourcePath(source string) string {
	source = strings.TrimSpace(source)
	source = strings.TrimSuffix(source, "/")
	source = strings.TrimSpace(source)

	if !strings.HasPrefix(source, "./") && !strings.HasPrefix(source, "../") {
		source = "./" + source
	}

	return source
}

// ResolveProject joins the project path segments into one absolute path.
// A single absolute segment is returned cleaned.
func (n *normalizer) ResolveProject(segments []string) (m.Path, error) {
	nonEmpty := make([]string, 0, len(segments))

	for _, s := range segments {
		if s = strings.TrimSpace(s); s != "" {
			nonEmpty = append(nonEmpty, s)
		}
	}

	if len(nonEmpty) == 0 {
		return "", ErrMissingProjectPath
	}

	return n.fs.Abs(nonEmpty...)
}

// Layout resolves the source and output directories against projectDir and
// computes the import base from the output directory to the source.
func (n *normalizer) Layout(projectDir m.Path, source, target string, kind m.ProjectKind) (m.Layout, error) {
	if strings.TrimSpace(target) == "" {
		target = DefaultTarget
	}

	outputDir, err := n.fs.Abs(string(projectDir), target)
	if err != nil {
		return m.Layout{}, fmt.Errorf("resolve target %q: %w", target, err)
	}

	sourceDir, err := n.fs.Abs(string(projectDir), NormalizeSourcePath(source))
	if err != nil {
		return m.Layout{}, fmt.Errorf("resolve source %q: %w", source, err)
	}

	rel, err := n.fs.RelPath(outputDir, sourceDir)
	if err != nil {
		return m.Layout{}, fmt.Errorf("relate %s to %s: %w", sourceDir, outputDir, err)
	}

	return m.Layout{
		ProjectDir: projectDir,
		SourceDir:  sourceDir,
		OutputDir:  outputDir,
		ImportBase: forwardSlashes(filepath.ToSlash(string(rel))),
		IndexFile:  n.fs.JoinPath(string(outputDir), kind.IndexFileName()),
	}, nil
}

// Specifier returns the module specifier for a sub-module directory. It
// always uses forward slashes and always starts with "./" or "../".
func (n *normalizer) Specifier(layout m.Layout, moduleName string) string {
	specifier := forwardSlashes(path.Join(forwardSlashes(layout.ImportBase), moduleName))
	if !strings.HasPrefix(specifier, "./") && !strings.HasPrefix(specifier, "../") {
		specifier = "./" + specifier
	}

	return specifier
}

func forwardSlashes(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}
