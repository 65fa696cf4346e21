package model

// ProjectKind is the classification of the host project.
type ProjectKind int

const (
	// ProjectJavaScript is any project not recognised as TypeScript.
	ProjectJavaScript ProjectKind = iota
	// ProjectTypeScript has a typescript dependency or a tsconfig.json.
	ProjectTypeScript
)

// String returns a human readable name of the kind.
func (k ProjectKind) String() string {
	if k == ProjectTypeScript {
		return "typescript"
	}

	return "javascript"
}

// IndexFileName returns the barrel file name written for this kind.
func (k ProjectKind) IndexFileName() string {
	if k == ProjectTypeScript {
		return "index.ts"
	}

	return "index.js"
}
