// Package controller provides output adapters for displaying barrel generation results.
package controller

import (
	"fmt"
	"strings"

	m "github.com/mouse-blink/exportall/internal/model"
)

// UI defines how generation runs are reported to the user.
// Implementations must be safe for use by concurrent runs.
type UI interface {
	// DisplayDiagnostic shows a condition that aborted a run.
	DisplayDiagnostic(err error)
	// DisplaySkipped shows a source directory child that was not aggregated.
	DisplaySkipped(entry m.ScanEntry)
	// DisplayResult shows the outcome of a generation run.
	DisplayResult(result m.Result)
	// DisplayPlan shows what a run would aggregate, without writing.
	DisplayPlan(result m.Result) error
	// StartBatch announces that total independent runs are about to start.
	StartBatch(total int)
	// FinishBatch ends the batch opened by StartBatch and flushes its output.
	FinishBatch()
}

func entryFileNames(entry m.ScanEntry) string {
	if entry.Module == nil {
		return ""
	}

	names := make([]string, 0, len(entry.Module.EntryFiles))
	for _, file := range entry.Module.EntryFiles {
		names = append(names, lastElem(string(file.Path)))
	}

	return strings.Join(names, ", ")
}

func defaultExportFlags(entry m.ScanEntry) string {
	if entry.Module == nil {
		return entry.Reason
	}

	flags := make([]string, 0, len(entry.Module.EntryFiles))

	for _, file := range entry.Module.EntryFiles {
		if file.HasDefaultExport {
			flags = append(flags, "default")
		} else {
			flags = append(flags, "-")
		}
	}

	return strings.Join(flags, ", ")
}

func statementCount(result m.Result) int {
	return strings.Count(string(result.Content), "\n")
}

func resultSummary(result m.Result) string {
	return fmt.Sprintf("%s %s (%s, %s, %d statements)",
		result.Status, result.Layout.IndexFile, result.Kind, result.Mode, statementCount(result))
}

func lastElem(p string) string {
	if i := strings.LastIndexAny(p, `/\`); i >= 0 {
		return p[i+1:]
	}

	return p
}
