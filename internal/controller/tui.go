package controller

import (
	"fmt"
	"io"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/exportall/internal/model"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	nameStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
)

// TUI implements UI with lipgloss styled output for interactive terminals.
// Multi-barrel runs are shown as a Bubble Tea progress view; lines produced
// meanwhile are held back and printed when the batch finishes.
type TUI struct {
	output io.Writer
	errOut io.Writer
	mu     sync.Mutex

	batch     *tea.Program
	batchDone chan struct{}
	pending   []string
}

// NewTUI creates a new TUI.
func NewTUI(output, errOut io.Writer) *TUI {
	return &TUI{output: output, errOut: errOut}
}

// DisplayDiagnostic prints the aborting condition in red.
func (t *TUI) DisplayDiagnostic(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	_, _ = fmt.Fprintln(t.errOut, errorStyle.Render("✗ "+err.Error()))
}

// DisplaySkipped prints a skipped entry in gray.
func (t *TUI) DisplaySkipped(entry m.ScanEntry) {
	t.println(stepStyle.Render(fmt.Sprintf("  skip %s (%s)", entry.Path, entry.Reason)))
}

// DisplayResult prints the run summary.
func (t *TUI) DisplayResult(result m.Result) {
	if result.Aborted() {
		return
	}

	style := successStyle
	if result.Status == m.StatusUnchanged || result.Status == m.StatusDryRun {
		style = infoStyle
	}

	lines := []string{style.Render("✓ " + resultSummary(result))}
	if result.Status == m.StatusDryRun {
		lines = append(lines, strings.TrimSuffix(string(result.Content), "\n"))
	}

	t.println(lines...)

	if p := t.program(); p != nil {
		p.Send(barrelDoneMsg{indexFile: string(result.Layout.IndexFile)})
	}
}

// DisplayPlan prints one styled line per scanned entry.
func (t *TUI) DisplayPlan(result m.Result) error {
	if result.Aborted() {
		return nil
	}

	var sb strings.Builder

	sb.WriteString(infoStyle.Render(fmt.Sprintf("%s (%s, %s)", result.Layout.IndexFile, result.Kind, result.Mode)))
	sb.WriteString("\n")

	for _, entry := range result.Entries {
		if entry.Outcome == m.OutcomeSkipped {
			sb.WriteString(stepStyle.Render(fmt.Sprintf("  - %s: %s", entry.Name, entry.Reason)))
		} else {
			sb.WriteString(fmt.Sprintf("  %s %s [%s]",
				nameStyle.Render(entry.Name), entryFileNames(entry), defaultExportFlags(entry)))
		}

		sb.WriteString("\n")
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	_, err := fmt.Fprint(t.output, sb.String())

	return err
}

// StartBatch starts the progress view for runs of more than one barrel.
func (t *TUI) StartBatch(total int) {
	if total < 2 {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.batch != nil {
		return
	}

	p := tea.NewProgram(newBatchModel(total), tea.WithOutput(t.output), tea.WithInput(nil))
	done := make(chan struct{})

	go func() {
		defer close(done)

		_, _ = p.Run()
	}()

	t.batch = p
	t.batchDone = done
}

// FinishBatch stops the progress view and prints the held back lines.
func (t *TUI) FinishBatch() {
	t.mu.Lock()
	p, done := t.batch, t.batchDone
	t.mu.Unlock()

	if p == nil {
		return
	}

	p.Send(batchDoneMsg{})
	<-done

	t.mu.Lock()
	defer t.mu.Unlock()

	for _, line := range t.pending {
		_, _ = fmt.Fprintln(t.output, line)
	}

	t.batch = nil
	t.batchDone = nil
	t.pending = nil
}

func (t *TUI) program() *tea.Program {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.batch
}

func (t *TUI) println(lines ...string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.batch != nil {
		t.pending = append(t.pending, lines...)

		return
	}

	for _, line := range lines {
		_, _ = fmt.Fprintln(t.output, line)
	}
}
