package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/Brono25/cacoepy/arpabet"
	"github.com/Brono25/cacoepy/internal/config"
	"github.com/Brono25/cacoepy/mdd"
	"github.com/Brono25/cacoepy/nw"
	"github.com/Brono25/cacoepy/reconcile"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigPath string
	CPUProfile string // directory for cpu.pprof; empty disables
	MemProfile string // directory for mem.pprof; empty disables

	runID    string
	logger   *slog.Logger
	profiler interface{ Stop() }
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the cacoepy CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cacoepy",
		Short: "cacoepy - phoneme sequence alignment",
		Long: `Align phoneme sequences with phonetically informed Needleman-Wunsch
scoring, reconcile alignments that share a reference, and evaluate
mispronunciation detection against annotated corpora.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return WrapExitError(ExitCommandError, "invalid flags",
					fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			opts.setup(cmd.ErrOrStderr())
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			opts.stopProfiling()
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output (debug logs on stderr)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "YAML config file")
	cmd.PersistentFlags().StringVar(&opts.CPUProfile, "cpuprofile", "", "write a CPU profile into this directory")
	cmd.PersistentFlags().StringVar(&opts.MemProfile, "memprofile", "", "write a memory profile into this directory")

	// Add subcommands
	cmd.AddCommand(NewAlignCommand(opts))
	cmd.AddCommand(NewReconcileCommand(opts))
	cmd.AddCommand(NewEvaluateCommand(opts))
	cmd.AddCommand(NewSimilarityCommand(opts))

	return cmd
}

// Run executes the CLI with args and returns the process exit code. Errors
// are reported on stderr in text mode and as an error envelope on stdout in
// JSON mode.
func Run(args []string, stdout, stderr io.Writer) int {
	opts := &RootOptions{}
	cmd := newRootCommand(opts)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	// Profiling must be flushed even when the command failed.
	opts.stopProfiling()
	if err == nil {
		return ExitSuccess
	}

	// Cobra's own argument and flag errors are command errors.
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		err = WrapExitError(ExitCommandError, "invalid command", err)
	}

	_ = opts.formatter(stdout, stderr).Error(errorCode(err), err.Error(), nil)

	return GetExitCode(err)
}

// setup initialises the run ID, the logger and profiling.
func (o *RootOptions) setup(stderr io.Writer) {
	o.runID = NewRunID()

	level := slog.LevelInfo
	if o.Verbose {
		level = slog.LevelDebug
	}
	o.logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})).
		With("run_id", o.runID)

	switch {
	case o.CPUProfile != "":
		o.profiler = profile.Start(profile.CPUProfile, profile.ProfilePath(o.CPUProfile), profile.Quiet, profile.NoShutdownHook)
	case o.MemProfile != "":
		o.profiler = profile.Start(profile.MemProfile, profile.ProfilePath(o.MemProfile), profile.Quiet, profile.NoShutdownHook)
	}
	if o.profiler != nil {
		o.logger.Debug("profiling enabled", "cpu", o.CPUProfile, "mem", o.MemProfile)
	}
}

func (o *RootOptions) stopProfiling() {
	if o.profiler != nil {
		o.profiler.Stop()
		o.profiler = nil
	}
}

// log returns the configured logger, or a discarding one before setup.
func (o *RootOptions) log() *slog.Logger {
	if o.logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o.logger
}

func (o *RootOptions) formatter(stdout, stderr io.Writer) *OutputFormatter {
	if o.runID == "" {
		o.runID = NewRunID()
	}
	format := o.Format
	if !slices.Contains(ValidFormats, format) {
		format = "text"
	}
	return &OutputFormatter{
		Format:    format,
		Writer:    stdout,
		ErrWriter: stderr, // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   o.Verbose,
		RunID:     o.runID,
	}
}

// loadConfig resolves defaults, the --config file and the command's flags.
func (o *RootOptions) loadConfig(cmd *cobra.Command, flags *scoringFlags) (*config.Config, error) {
	cfg := config.Default()
	if o.ConfigPath != "" {
		loaded, err := config.Load(o.ConfigPath)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "failed to load config", err)
		}
		cfg = loaded
	}

	if flags != nil {
		flags.apply(cmd, cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, WrapExitError(ExitCommandError, "invalid configuration", err)
	}

	o.log().Debug("config resolved",
		"scheme", cfg.Scheme, "gap", cfg.Gap(), "gap_symbol", cfg.GapSymbol, "mapping", cfg.Mapping)
	return cfg, nil
}

// errorCode maps an error onto a JSON error code.
func errorCode(err error) string {
	switch {
	case errors.Is(err, config.ErrInvalidConfig), errors.Is(err, arpabet.ErrInvalidMapping):
		return ErrCodeConfig
	case errors.Is(err, arpabet.ErrNotInVocabulary),
		errors.Is(err, nw.ErrGapInSequence),
		errors.Is(err, reconcile.ErrAlignSequencePair),
		errors.Is(err, mdd.ErrSequenceLength):
		return ErrCodeAlignment
	case GetExitCode(err) == ExitCommandError:
		return ErrCodeInput
	}
	return ErrCodeGeneric
}
