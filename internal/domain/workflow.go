package domain

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/exportall/internal/adapter"
	"github.com/mouse-blink/exportall/internal/controller"
	m "github.com/mouse-blink/exportall/internal/model"
)

// GenerateArgs is one generation request.
type GenerateArgs struct {
	// Project is the project directory, either one path or several segments
	// resolved left to right.
	Project []string
	// Source is the directory to aggregate, relative to Project.
	Source string
	// Target is the output directory, relative to Project. Defaults to ".".
	Target string
	Mode   m.ModuleMode
	DryRun bool
}

// Workflow defines the barrel generation operations.
type Workflow interface {
	// Generate runs the whole pipeline and writes the barrel file. Reported
	// conditions return an aborted Result and a nil error.
	Generate(args GenerateArgs) (m.Result, error)
	// List runs the pipeline up to synthesis and displays the plan.
	List(args GenerateArgs) (m.Result, error)
	// GenerateAll runs independent requests with at most threads in flight.
	// Results are returned in request order. A batch in which two requests
	// resolve to the same index file fails with ErrDuplicateIndexFile before
	// anything is written.
	GenerateAll(ctx context.Context, batch []GenerateArgs, threads int) ([]m.Result, error)
}

// Option configures a Workflow.
type Option func(*workflow)

// WithLogger sets the logger used for verbose diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(w *workflow) {
		w.log = logger
	}
}

// WithDetector replaces the default-export detector.
func WithDetector(detector DefaultExportDetector) Option {
	return func(w *workflow) {
		w.detector = detector
	}
}

type workflow struct {
	fs         adapter.SourceFSAdapter
	ui         controller.UI
	classifier Classifier
	normalizer Normalizer
	scanner    Scanner
	detector   DefaultExportDetector
	emitter    Emitter
	log        *slog.Logger
}

// NewWorkflow creates a Workflow wired to fs and reporting to ui.
func NewWorkflow(fs adapter.SourceFSAdapter, ui controller.UI, opts ...Option) Workflow {
	w := &workflow{
		fs:         fs,
		ui:         ui,
		classifier: NewClassifier(fs),
		normalizer: NewNormalizer(fs),
		scanner:    NewScanner(fs),
		detector:   NewHeuristicDetector(),
		emitter:    NewEmitter(fs),
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Generate implements Workflow.
func (w *workflow) Generate(args GenerateArgs) (m.Result, error) {
	result, err := w.prepare(args, true)
	if err != nil || result.Aborted() {
		return result, err
	}

	return w.emit(result, args.DryRun)
}

// List implements Workflow.
func (w *workflow) List(args GenerateArgs) (m.Result, error) {
	result, err := w.prepare(args, false)
	if err != nil || result.Aborted() {
		return result, err
	}

	result.Status = m.StatusDryRun

	return result, w.ui.DisplayPlan(result)
}

// GenerateAll implements Workflow. Every request is prepared before anything
// is written, so a batch whose barrels share an index file fails untouched.
func (w *workflow) GenerateAll(ctx context.Context, batch []GenerateArgs, threads int) ([]m.Result, error) {
	if threads <= 0 {
		threads = 1
	}

	w.ui.StartBatch(len(batch))
	defer w.ui.FinishBatch()

	prepared := make([]m.Result, len(batch))

	err := w.forEach(ctx, batch, threads, func(i int, args GenerateArgs) error {
		result, err := w.prepare(args, true)
		prepared[i] = result

		return err
	})
	if err != nil {
		return nil, err
	}

	if err := checkDistinctIndexFiles(batch, prepared); err != nil {
		return nil, err
	}

	results := make([]m.Result, len(batch))

	err = w.forEach(ctx, batch, threads, func(i int, args GenerateArgs) error {
		if prepared[i].Aborted() {
			results[i] = prepared[i]

			return nil
		}

		result, err := w.emit(prepared[i], args.DryRun)
		results[i] = result

		return err
	})
	if err != nil {
		return nil, err
	}

	return results, nil
}

// forEach runs fn for every request with at most threads in flight and
// stops at the first error.
func (w *workflow) forEach(ctx context.Context, batch []GenerateArgs, threads int, fn func(int, GenerateArgs) error) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)

	for i, args := range batch {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			if err := fn(i, args); err != nil {
				return fmt.Errorf("barrel %s: %w", args.Source, err)
			}

			return nil
		})
	}

	return g.Wait()
}

func checkDistinctIndexFiles(batch []GenerateArgs, prepared []m.Result) error {
	owners := make(map[m.Path]int, len(prepared))

	for i, result := range prepared {
		if result.Aborted() {
			continue
		}

		file := result.Layout.IndexFile
		if j, ok := owners[file]; ok {
			return fmt.Errorf("%w: %s from %s and %s", ErrDuplicateIndexFile, file, batch[j].Source, batch[i].Source)
		}

		owners[file] = i
	}

	return nil
}

// emit writes a prepared result and shows it.
func (w *workflow) emit(result m.Result, dryRun bool) (m.Result, error) {
	status, err := w.emitter.Emit(result.Layout, result.Content, EmitOptions{DryRun: dryRun})
	if err != nil {
		return result, fmt.Errorf("emit: %w", err)
	}

	result.Status = status
	w.log.Info("barrel written",
		slog.String("file", string(result.Layout.IndexFile)),
		slog.String("status", string(status)),
		slog.Int("bytes", len(result.Content)))
	w.ui.DisplayResult(result)

	return result, nil
}

// prepare validates the request, classifies the project, resolves paths,
// scans the source directory and synthesizes the barrel content. Nothing is
// written. Skipped entries go to the UI when reportSkipped is set.
func (w *workflow) prepare(args GenerateArgs, reportSkipped bool) (m.Result, error) {
	if args.Mode == "" {
		args.Mode = m.DefaultModuleMode
	}

	result := m.Result{Mode: args.Mode, Status: m.StatusAborted}

	synth, err := NewSynthesizer(args.Mode)
	if err != nil {
		return w.abort(result, err)
	}

	projectDir, err := w.normalizer.ResolveProject(args.Project)
	if err != nil {
		return w.abort(result, err)
	}

	kind, err := w.classifier.Classify(projectDir)
	if err != nil {
		return w.abort(result, err)
	}

	result.Kind = kind

	layout, err := w.normalizer.Layout(projectDir, args.Source, args.Target, kind)
	if err != nil {
		return result, err
	}

	result.Layout = layout
	w.log.Debug("layout resolved",
		slog.String("project", string(layout.ProjectDir)),
		slog.String("source", string(layout.SourceDir)),
		slog.String("output", string(layout.OutputDir)),
		slog.String("kind", kind.String()),
		slog.String("mode", string(args.Mode)))

	entries, err := w.scanner.Scan(layout.SourceDir)
	if err != nil {
		return w.abort(result, err)
	}

	if err := w.detectDefaultExports(entries); err != nil {
		return result, err
	}

	result.Entries = entries

	var buffer m.ExportBuffer

	for _, entry := range entries {
		if entry.Outcome == m.OutcomeSkipped {
			w.log.Debug("entry skipped", slog.String("path", string(entry.Path)), slog.String("reason", entry.Reason))
			if reportSkipped {
				w.ui.DisplaySkipped(entry)
			}

			continue
		}

		specifier := w.normalizer.Specifier(layout, entry.Module.DirectoryName)
		for _, file := range entry.Module.EntryFiles {
			buffer.Append(synth.Synthesize(entry.Module.DirectoryName, specifier, file)...)
		}
	}

	result.Content = buffer.Bytes()
	result.Status = ""

	return result, nil
}

func (w *workflow) detectDefaultExports(entries []m.ScanEntry) error {
	for _, entry := range entries {
		if entry.Module == nil {
			continue
		}

		for i := range entry.Module.EntryFiles {
			file := &entry.Module.EntryFiles[i]

			source, err := w.fs.ReadFile(file.Path)
			if err != nil {
				return fmt.Errorf("read %s: %w", file.Path, err)
			}

			file.HasDefaultExport = w.detector.HasDefaultExport(source)
		}
	}

	return nil
}

// abort reports err through the UI when it is a reported condition and
// returns it otherwise.
func (w *workflow) abort(result m.Result, err error) (m.Result, error) {
	if !reported(err) {
		return result, err
	}

	w.log.Warn("generation aborted", slog.Any("error", err))
	w.ui.DisplayDiagnostic(err)
	result.Status = m.StatusAborted
	result.Diagnostic = err

	return result, nil
}
