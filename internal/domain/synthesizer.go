package domain

import (
	"fmt"

	m "github.com/mouse-blink/exportall/internal/model"
)

// Synthesizer produces the statements re-exporting one entry file.
type Synthesizer interface {
	Synthesize(moduleName, specifier string, entry m.EntryFile) []string
}

// NewSynthesizer returns the Synthesizer for mode.
func NewSynthesizer(mode m.ModuleMode) (Synthesizer, error) {
	switch mode {
	case m.ModeESM:
		return esmSynthesizer{}, nil
	case m.ModeCJS:
		return cjsSynthesizer{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidModuleMode, mode)
	}
}

type esmSynthesizer struct{}

// Synthesize re-exports every named export and, when the entry has a default
// export, aliases it under the module's directory name.
func (esmSynthesizer) Synthesize(moduleName, specifier string, entry m.EntryFile) []string {
	lines := []string{fmt.Sprintf("export * from '%s';", specifier)}

	if entry.HasDefaultExport {
		lines = append(lines, fmt.Sprintf("export { default as %s } from '%s';", moduleName, specifier))
	}

	return lines
}

type cjsSynthesizer struct{}

func (cjsSynthesizer) Synthesize(moduleName, specifier string, _ m.EntryFile) []string {
	return []string{fmt.Sprintf("module.exports.%s = require('%s');", moduleName, specifier)}
}
