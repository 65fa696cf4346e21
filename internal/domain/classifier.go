package domain

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mouse-blink/exportall/internal/adapter"
	m "github.com/mouse-blink/exportall/internal/model"
)

const (
	manifestFile   = "package.json"
	tsConfigFile   = "tsconfig.json"
	typescriptDeps = "typescript"
)

// Classifier decides whether a project is a TypeScript project.
type Classifier interface {
	Classify(projectDir m.Path) (m.ProjectKind, error)
}

type classifier struct {
	fs adapter.SourceFSAdapter
}

// NewClassifier creates a Classifier reading project files through fs.
func NewClassifier(fs adapter.SourceFSAdapter) Classifier {
	return &classifier{fs: fs}
}

// Classify returns ProjectTypeScript when package.json lists typescript in
// dependencies or devDependencies, or when tsconfig.json exists in the
// project root. A package.json that is not valid JSON is an error.
//
// An empty projectDir fails with ErrMissingProjectPath. The workflow never
// gets here with one, since Normalizer.ResolveProject rejects it first; the
// check guards direct callers.
func (c *classifier) Classify(projectDir m.Path) (m.ProjectKind, error) {
	if projectDir == "" {
		return m.ProjectJavaScript, ErrMissingProjectPath
	}

	hasDep, err := c.manifestHasTypeScript(c.fs.JoinPath(string(projectDir), manifestFile))
	if err != nil {
		return m.ProjectJavaScript, err
	}

	if hasDep || c.fs.Exists(c.fs.JoinPath(string(projectDir), tsConfigFile)) {
		return m.ProjectTypeScript, nil
	}

	return m.ProjectJavaScript, nil
}

func (c *classifier) manifestHasTypeScript(path m.Path) (bool, error) {
	data, err := c.fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}

		return false, fmt.Errorf("read %s: %w", path, err)
	}

	var manifest map[string]json.RawMessage
	if err := json.Unmarshal(data, &manifest); err != nil {
		return false, fmt.Errorf("%w: %s: %w", ErrManifestParse, path, err)
	}

	for _, field := range []string{"dependencies", "devDependencies"} {
		raw, ok := manifest[field]
		if !ok {
			continue
		}

		var deps map[string]json.RawMessage
		// Non-object dependency fields are ignored, not fatal.
		if err := json.Unmarshal(raw, &deps); err != nil {
			continue
		}

		if _, ok := deps[typescriptDeps]; ok {
			return true, nil
		}
	}

	return false, nil
}
