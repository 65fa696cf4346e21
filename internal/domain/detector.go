package domain

import "bytes"

// DefaultExportMarker is the literal text that marks a default export.
const DefaultExportMarker = "export default"

// DefaultExportDetector decides whether module source has a default export.
type DefaultExportDetector interface {
	HasDefaultExport(source []byte) bool
}

// HeuristicDetector looks for DefaultExportMarker anywhere in the source. It
// matches inside comments and strings too, and misses default exports that
// do not spell out the marker (e.g. `export { x as default }`).
type HeuristicDetector struct {
	marker []byte
}

// NewHeuristicDetector returns a detector for DefaultExportMarker.
func NewHeuristicDetector() *HeuristicDetector {
	return &HeuristicDetector{marker: []byte(DefaultExportMarker)}
}

// HasDefaultExport reports whether the marker occurs in source.
func (d *HeuristicDetector) HasDefaultExport(source []byte) bool {
	return bytes.Contains(source, d.marker)
}
