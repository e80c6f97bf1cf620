// Package main provides the CLI entry point for layoutview.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/ukaji3/layoutview-go/internal/config"
	"github.com/ukaji3/layoutview-go/internal/logging"
	"github.com/ukaji3/layoutview-go/internal/metrics"
	"github.com/ukaji3/layoutview-go/pkg/layoutview"
	"github.com/ukaji3/layoutview-go/pkg/layoutview/models"
	"github.com/ukaji3/layoutview-go/pkg/layoutview/output"
	"github.com/ukaji3/layoutview-go/pkg/layoutview/store"
)

type cliOptions struct {
	configPath      string
	outputPath      string
	pretty          bool
	format          string
	workers         int
	sqlitePath      string
	metricsTextfile string
	logLevel        string
	logFormat       string
	statsOnly       bool

	stdout io.Writer
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command line and returns the process exit status.
func execute(args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd(stdout)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stderr)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		return 1
	}
	return 0
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	opts := &cliOptions{stdout: stdout}

	rootCmd := &cobra.Command{
		Use:   "layoutview [flags] <workbook.xlsx>",
		Short: "Classify the sheets of an Excel workbook as Data or Form",
		Long: `layoutview computes structural statistics for every visible sheet of an
xlsx workbook and classifies each sheet as a Data table or a Form layout.
Results are written as a JSON array.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(cmd, opts, args[0])
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "Config file (YAML)")
	flags.StringVarP(&opts.outputPath, "output", "o", "", "Output file path (default: stdout)")
	flags.BoolVar(&opts.pretty, "pretty", false, "Pretty-print JSON output")
	flags.StringVar(&opts.format, "format", "json", "Output format: json, yaml")
	flags.IntVar(&opts.workers, "workers", 1, "Number of sheets analyzed concurrently")
	flags.StringVar(&opts.sqlitePath, "sqlite", "", "Also store results in this SQLite database")
	flags.StringVar(&opts.metricsTextfile, "metrics-textfile", "", "Write Prometheus metrics to this file")
	flags.StringVar(&opts.logLevel, "log-level", "info", "Log level: trace, debug, info, warn, error, disabled")
	flags.StringVar(&opts.logFormat, "log-format", "json", "Log format: json, console")
	flags.BoolVar(&opts.statsOnly, "stats", false, "Emit statistics for every visible sheet without classifying")

	return rootCmd
}

// loadConfig layers explicitly set flags over the file and environment and
// validates the merged result once.
func loadConfig(cmd *cobra.Command, opts *cliOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("pretty") {
		cfg.Output.Pretty = opts.pretty
	}
	if flags.Changed("format") {
		cfg.Output.Format = opts.format
	}
	if flags.Changed("workers") {
		cfg.Analysis.Workers = opts.workers
	}
	if flags.Changed("sqlite") {
		cfg.Store.SQLitePath = opts.sqlitePath
	}
	if flags.Changed("metrics-textfile") {
		cfg.Metrics.Textfile = opts.metricsTextfile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = opts.logFormat
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(cmd *cobra.Command, opts *cliOptions, inputPath string) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	logging.Init(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Caller: cfg.Log.Caller,
		Output: cmd.ErrOrStderr(),
	})

	format, err := output.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	runID := logging.NewRunID()
	ctx := logging.ContextWithRunID(cmd.Context(), runID)

	rec := metrics.NewRecorder()
	runOpts := layoutview.Options{
		Workers:  cfg.Analysis.Workers,
		Observer: rec,
	}

	start := time.Now()
	var (
		result     interface{}
		classified []models.ClassifiedSheet
	)
	if opts.statsOnly {
		sheets, err := layoutview.Analyze(ctx, inputPath, runOpts)
		if err != nil {
			return fmt.Errorf("analysis failed: %w", err)
		}
		result = sheets
		classified = layoutview.ClassifyStatistics(sheets)
	} else {
		classified, err = layoutview.Classify(ctx, inputPath, runOpts)
		if err != nil {
			return fmt.Errorf("classification failed: %w", err)
		}
		result = classified
	}
	elapsed := time.Since(start)
	rec.ObserveRun(elapsed)

	data, err := output.Encode(result, format, cfg.Output.Pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	// Sinks run before the result is written, so a failed run never leaves
	// a complete document on stdout.
	if cfg.Store.SQLitePath != "" {
		if err := saveRun(ctx, cfg.Store.SQLitePath, store.RunRecord{
			RunID:     runID,
			Path:      inputPath,
			StartedAt: start,
			Duration:  elapsed,
		}, classified); err != nil {
			return err
		}
	}

	if cfg.Metrics.Textfile != "" {
		if err := rec.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}

	if err := writeResult(opts, data, format); err != nil {
		return err
	}

	logging.Ctx(ctx).Info().
		Str("path", inputPath).
		Int("classified", len(classified)).
		Dur("duration", elapsed).
		Msg("workbook classified")

	return nil
}

func writeResult(opts *cliOptions, data []byte, format output.Format) error {
	if format == output.FormatJSON {
		data = append(data, '\n')
	}

	if opts.outputPath != "" {
		if err := os.WriteFile(opts.outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	if _, err := opts.stdout.Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func saveRun(ctx context.Context, path string, run store.RunRecord, sheets []models.ClassifiedSheet) error {
	db, err := store.Open(path)
	if err != nil {
		return err
	}
	defer db.Close()

	id, err := db.SaveRun(ctx, run, sheets)
	if err != nil {
		return fmt.Errorf("failed to store results: %w", err)
	}
	logging.Ctx(ctx).Debug().Int64("id", id).Str("db", path).Msg("results stored")
	return nil
}
