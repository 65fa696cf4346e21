package controller

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	m "github.com/mouse-blink/exportall/internal/model"
	"github.com/spf13/cobra"
)

func sampleResult() m.Result {
	return m.Result{
		Layout: m.Layout{IndexFile: "/p/index.js"},
		Kind:   m.ProjectJavaScript,
		Mode:   m.ModeESM,
		Entries: []m.ScanEntry{
			m.Skipped("notes.txt", "/p/src/notes.txt", m.ReasonPlainFile),
			{
				Name:    "utils",
				Path:    "/p/src/utils",
				Outcome: m.OutcomeModule,
				Module: &m.ModuleEntry{
					DirectoryName: "utils",
					EntryFiles:    []m.EntryFile{{Path: "/p/src/utils/index.js"}},
				},
			},
			{
				Name:    "widgets",
				Path:    "/p/src/widgets",
				Outcome: m.OutcomeModule,
				Module: &m.ModuleEntry{
					DirectoryName: "widgets",
					EntryFiles: []m.EntryFile{
						{Path: "/p/src/widgets/index.ts", HasDefaultExport: true},
						{Path: "/p/src/widgets/index.js"},
					},
				},
			},
		},
		Content: []byte("export * from './src/utils';\nexport * from './src/widgets';\n"),
		Status:  m.StatusCreated,
	}
}

func TestSimpleUI_DisplayPlan_PrintsTable(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	ui := NewSimpleUI(cmd)

	if err := ui.DisplayPlan(sampleResult()); err != nil {
		t.Fatalf("DisplayPlan() error = %v", err)
	}

	output := buf.String()

	for _, want := range []string{
		"/p/index.js (javascript, esm)",
		"notes.txt",
		m.ReasonPlainFile,
		"utils",
		"index.js",
		"widgets",
		"index.ts, index.js",
		"default, -",
		"MODULES 2",
		"3",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestSimpleUI_DisplayResult(t *testing.T) {
	t.Run("summary only when written", func(t *testing.T) {
		var buf bytes.Buffer
		cmd := &cobra.Command{}
		cmd.SetOut(&buf)

		NewSimpleUI(cmd).DisplayResult(sampleResult())

		output := buf.String()
		if !strings.Contains(output, "created /p/index.js (javascript, esm, 2 statements)") {
			t.Fatalf("unexpected summary\noutput:\n%s", output)
		}
		if strings.Contains(output, "export *") {
			t.Fatalf("content must not be printed for a real write\noutput:\n%s", output)
		}
	})

	t.Run("dry run prints the content", func(t *testing.T) {
		var buf bytes.Buffer
		cmd := &cobra.Command{}
		cmd.SetOut(&buf)

		result := sampleResult()
		result.Status = m.StatusDryRun
		NewSimpleUI(cmd).DisplayResult(result)

		if !strings.Contains(buf.String(), "export * from './src/widgets';") {
			t.Fatalf("dry run output missing content\noutput:\n%s", buf.String())
		}
	})

	t.Run("aborted results are silent", func(t *testing.T) {
		var buf bytes.Buffer
		cmd := &cobra.Command{}
		cmd.SetOut(&buf)

		NewSimpleUI(cmd).DisplayResult(m.Result{Status: m.StatusAborted})

		if buf.Len() != 0 {
			t.Fatalf("expected no output, got %q", buf.String())
		}
	})
}

func TestSimpleUI_DisplayDiagnostic(t *testing.T) {
	var out, errOut bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	NewSimpleUI(cmd).DisplayDiagnostic(errors.New("no such file or directory: /p/nope"))

	if !strings.Contains(errOut.String(), "error: no such file or directory: /p/nope") {
		t.Fatalf("stderr missing diagnostic\nstderr:\n%s", errOut.String())
	}
	if out.Len() != 0 {
		t.Fatalf("diagnostic leaked to stdout: %q", out.String())
	}
}

func TestSimpleUI_DisplaySkipped(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	NewSimpleUI(cmd).DisplaySkipped(m.Skipped("notes.txt", "/p/src/notes.txt", m.ReasonPlainFile))

	if got, want := buf.String(), "=> skip /p/src/notes.txt (plain files are not aggregated)\n"; got != want {
		t.Fatalf("DisplaySkipped() = %q, want %q", got, want)
	}
}

func TestSimpleUI_StartBatch(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	ui := NewSimpleUI(cmd)
	ui.StartBatch(1)

	if buf.Len() != 0 {
		t.Fatalf("single barrel run should print nothing, got %q", buf.String())
	}

	ui.StartBatch(3)
	ui.FinishBatch()

	if got, want := buf.String(), "generating 3 barrels\n"; got != want {
		t.Fatalf("StartBatch() = %q, want %q", got, want)
	}
}
