// Package cmd provides the root command and CLI setup for exportall.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/mouse-blink/exportall/internal/adapter"
	"github.com/mouse-blink/exportall/internal/config"
	"github.com/mouse-blink/exportall/internal/controller"
	"github.com/mouse-blink/exportall/internal/domain"
	m "github.com/mouse-blink/exportall/internal/model"
)

// envFile is loaded from the working directory before env overrides are read.
const envFile = ".env"

// errAborted is returned after a run was reported and aborted, so the
// process exits non-zero without printing the diagnostic twice.
var errAborted = errors.New("generation aborted")

var fsAdapter adapter.SourceFSAdapter
var ui controller.UI
var workflow domain.Workflow
var logLevel = new(slog.LevelVar)

func init() {
	logLevel.Set(slog.LevelError)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	workflow = domain.NewWorkflow(fsAdapter, ui, domain.WithLogger(logger))
}

var rootFlags requestFlags
var dryRunFlag bool
var parallelFlag int

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exportall [source]",
		Short: "Generate a barrel file re-exporting every sub-module of a directory",
		Long: `exportall scans a source directory and writes a single index file that
re-exports each sub-directory's index.ts / index.js.

The output is index.ts when the project depends on typescript or has a
tsconfig.json, index.js otherwise. Statements use ES modules by default
or CommonJS with --mode cjs.

Without a source argument the barrels declared in .exportall.yaml are
generated.`,
		Example: `  exportall ./src
  exportall ./src --target ./lib --mode cjs
  exportall --project ~/work --project app ./components`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			requests, err := rootFlags.requests(cmd, args)
			if err != nil {
				return err
			}

			for i := range requests {
				requests[i].DryRun = dryRunFlag
			}

			results, err := workflow.GenerateAll(cmd.Context(), requests, parallelFlag)
			if err != nil {
				return err
			}

			return checkAborted(results)
		},
	}
	rootFlags.register(cmd)
	cmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "print the generated content instead of writing it")
	cmd.Flags().IntVarP(&parallelFlag, "parallel", "p", 1, "number of barrels generated concurrently")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "log every resolved path and skipped entry to stderr")
	cmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			logLevel.Set(slog.LevelDebug)
		}
	}

	return cmd
}

// Execute runs the root command and exits non-zero on failure.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(version),
		fang.WithoutCompletions(),
		fang.WithoutManpage(),
	); err != nil {
		os.Exit(1)
	}
}

// requestFlags are the flags shared by commands that build GenerateArgs.
type requestFlags struct {
	project []string
	target  string
	mode    string
	config  string
}

func (f *requestFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&f.project, "project", "P", nil, "project directory; repeat to join path segments (default: working directory)")
	cmd.Flags().StringVarP(&f.target, "target", "t", domain.DefaultTarget, "output directory relative to the project")
	cmd.Flags().StringVarP(&f.mode, "mode", "m", string(m.DefaultModuleMode), "module style: esm or cjs")
	cmd.Flags().StringVarP(&f.config, "config", "c", "", "config file (default: <project>/"+config.FileName+")")
}

// requests merges flags, environment and config file into generation
// requests. Flags the user set win over everything else.
func (f *requestFlags) requests(cmd *cobra.Command, args []string) ([]domain.GenerateArgs, error) {
	project := f.project
	if !cmd.Flags().Changed("project") {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}

		project = []string{wd}
	}

	configDir := ""
	if dir, err := fsAdapter.Abs(project...); err == nil {
		configDir = string(dir)
	}

	cfg, err := config.Load(config.LoadOptions{
		Path:       f.config,
		ProjectDir: configDir,
		EnvFile:    envFile,
	})
	if err != nil {
		return nil, err
	}

	var barrels []config.Barrel
	if len(args) == 1 {
		barrels = []config.Barrel{{Source: args[0], Target: cfg.Target, Mode: cfg.Mode}}
	} else {
		barrels = cfg.Resolve()
	}

	if len(barrels) == 0 {
		return nil, fmt.Errorf("no source directory: pass one as an argument or declare barrels in %s", config.FileName)
	}

	requests := make([]domain.GenerateArgs, 0, len(barrels))

	for _, b := range barrels {
		if cmd.Flags().Changed("target") {
			b.Target = f.target
		}

		if cmd.Flags().Changed("mode") {
			b.Mode = f.mode
		}

		requests = append(requests, domain.GenerateArgs{
			Project: project,
			Source:  b.Source,
			Target:  b.Target,
			Mode:    m.ModuleMode(b.Mode),
		})
	}

	return requests, nil
}

func checkAborted(results []m.Result) error {
	for _, result := range results {
		if result.Aborted() {
			return errAborted
		}
	}

	return nil
}
