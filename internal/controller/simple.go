package controller

import (
	"bytes"
	"fmt"
	"sync"

	m "github.com/mouse-blink/exportall/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using the cobra Command's output streams.
type SimpleUI struct {
	cmd *cobra.Command
	mu  sync.Mutex
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayDiagnostic prints the aborting condition on the error stream.
func (s *SimpleUI) DisplayDiagnostic(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), "error: %v\n", err)
}

// DisplaySkipped prints a skipped entry.
func (s *SimpleUI) DisplaySkipped(entry m.ScanEntry) {
	s.printf("=> skip %s (%s)\n", entry.Path, entry.Reason)
}

// DisplayResult prints a one-line summary, and the content on dry runs.
func (s *SimpleUI) DisplayResult(result m.Result) {
	if result.Aborted() {
		return
	}

	s.printf("%s\n", resultSummary(result))

	if result.Status == m.StatusDryRun {
		s.printf("%s", result.Content)
	}
}

// DisplayPlan prints the scan as a table.
func (s *SimpleUI) DisplayPlan(result m.Result) error {
	if result.Aborted() {
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Entry", "Outcome", "Files", "Default"})
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
	})

	modules := 0

	for _, entry := range result.Entries {
		if entry.Outcome == m.OutcomeModule {
			modules++
		}

		table.Append([]string{
			entry.Name,
			entry.Outcome.String(),
			entryFileNames(entry),
			defaultExportFlags(entry),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Modules %d", modules),
		fmt.Sprintf("%d", len(result.Entries)),
		"",
		"",
	})

	table.Render()
	s.printf("%s (%s, %s)\n\n%s", result.Layout.IndexFile, result.Kind, result.Mode, tableBuffer.String())

	return nil
}

// StartBatch prints how many barrels a multi-barrel run generates.
func (s *SimpleUI) StartBatch(total int) {
	if total > 1 {
		s.printf("generating %d barrels\n", total)
	}
}

// FinishBatch is a no-op; plain output is written as results arrive.
func (s *SimpleUI) FinishBatch() {}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
