// Package main provides the CLI entrypoint for range-remapper.
//
// range-remapper pushes sets of integer ranges through a chain of
// range-remapping tables and reports where they land:
//   - solve prints the lowest resulting location for a document's seeds
//   - trace shows every stage's pieces and their origin
//   - check validates a document without running it
//   - convert rewrites almanac text as a YAML document
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"range-remapper/internal/config"
	"range-remapper/internal/logging"
	"range-remapper/internal/mapping"
	"range-remapper/internal/pipeline"
	"range-remapper/internal/report"
	"range-remapper/internal/version"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	configPath string
	logLevel   string
	logFormat  string
	color      string
	workers    int
	coalesce   bool
}

// app carries the resolved configuration into subcommands.
type app struct {
	flags  globalFlags
	cfg    config.Config
	logger *zap.Logger
}

func rootCmd() *cobra.Command {
	a := &app{cfg: config.Default(), logger: zap.NewNop()}

	cmd := &cobra.Command{
		Use:           "range-remapper",
		Short:         "Push integer ranges through staged remapping tables",
		Long:          `range-remapper maps sets of half-open integer ranges through an ordered chain of remapping tables and reports the lowest value that comes out the other end.`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.flags.configPath, "config", "", "path to a "+config.FileName+" file")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVar(&a.flags.logFormat, "log-format", "", "log format (console, json)")
	pf.StringVar(&a.flags.color, "color", "", "colour output (auto, on, off)")
	pf.IntVar(&a.flags.workers, "workers", 0, "goroutines per stage; 0 or 1 runs sequentially")
	pf.BoolVar(&a.flags.coalesce, "coalesce", false, "merge overlapping intervals between stages")

	cmd.AddCommand(solveCmd(a))
	cmd.AddCommand(traceCmd(a))
	cmd.AddCommand(checkCmd(a))
	cmd.AddCommand(convertCmd(a))
	cmd.AddCommand(versionCmd(a))

	return cmd
}

// setup resolves configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, path, err := config.Load(config.LoadOptions{Path: a.flags.configPath})
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.flags.logLevel
	}

	if flags.Changed("log-format") {
		cfg.Log.Format = a.flags.logFormat
	}

	if flags.Changed("color") {
		cfg.Output.Color = a.flags.color
	}

	if flags.Changed("workers") {
		cfg.Pipeline.Workers = a.flags.workers
	}

	if flags.Changed("coalesce") {
		cfg.Pipeline.Coalesce = a.flags.coalesce
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	color.NoColor = !a.useColor(cmd.OutOrStdout())

	logger.Debug("configuration loaded",
		zap.String("file", path),
		zap.Int("workers", cfg.Pipeline.Workers),
		zap.Bool("coalesce", cfg.Pipeline.Coalesce),
		zap.String("color", cfg.Output.Color),
	)

	return nil
}

// useColor resolves the colour mode against the destination writer.
func (a *app) useColor(w io.Writer) bool {
	f, ok := w.(*os.File)
	return a.cfg.UseColor(ok && term.IsTerminal(int(f.Fd())))
}

// pipeline builds a pipeline with the configured execution settings.
func (a *app) pipeline(tables []*mapping.Table) *pipeline.Pipeline {
	return pipeline.New(tables, pipeline.Config{
		Workers:  a.cfg.Pipeline.Workers,
		Coalesce: a.cfg.Pipeline.Coalesce,
		Logger:   a.logger.Named("pipeline"),
	})
}

// writer builds a report writer; an empty format falls back to configuration.
func (a *app) writer(cmd *cobra.Command, format string) (report.Writer, error) {
	if format == "" {
		format = a.cfg.Output.Format
	}

	f, err := report.ParseFormat(format)
	if err != nil {
		return report.Writer{}, err
	}

	return report.Writer{Format: f, Color: a.useColor(cmd.OutOrStdout())}, nil
}
