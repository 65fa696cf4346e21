package model

import "strings"

// ExportBuffer accumulates generated statements for one run.
type ExportBuffer struct {
	lines []string
}

// Append adds statements to the end of the buffer.
func (b *ExportBuffer) Append(lines ...string) {
	b.lines = append(b.lines, lines...)
}

// Len returns the number of buffered statements.
func (b *ExportBuffer) Len() int {
	return len(b.lines)
}

// Lines returns a copy of the buffered statements.
func (b *ExportBuffer) Lines() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)

	return out
}

// Bytes renders the buffer, one statement per line, each newline terminated.
func (b *ExportBuffer) Bytes() []byte {
	var sb strings.Builder

	for _, line := range b.lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	return []byte(sb.String())
}
