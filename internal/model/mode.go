package model

// ModuleMode selects the module system used for generated statements.
type ModuleMode string

const (
	// ModeESM emits `export * from` / `export { default as x } from` statements.
	ModeESM ModuleMode = "esm"
	// ModeCJS emits `module.exports.x = require()` statements.
	ModeCJS ModuleMode = "cjs"
)

// DefaultModuleMode is used when no mode is requested.
const DefaultModuleMode = ModeESM

// Valid reports whether the mode is one of the supported module systems.
func (m ModuleMode) Valid() bool {
	return m == ModeESM || m == ModeCJS
}
