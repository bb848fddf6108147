// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"fqtrim/internal/cli"
	"fqtrim/internal/cliutil"
	"fqtrim/internal/config"
	"fqtrim/internal/fastq"
	"fqtrim/internal/log"
	"fqtrim/internal/pipeline"
	"fqtrim/internal/report"
	"fqtrim/internal/trim"
	"fqtrim/internal/version"
	"fqtrim/pkg/api"
)

// Exit codes.
const (
	ExitOK          = 0
	ExitFailure     = 1 // I/O, malformed input, trimming error
	ExitUsage       = 2
	ExitOutput      = 3 // summary could not be written to stdout
	ExitInterrupted = 130
)

type flags struct {
	envFile   string
	format    string
	logLevel  string
	logFormat string
	quiet     bool
}

// summaryError marks a failure to write the summary, which happens after
// the FASTQ output is already complete.
type summaryError struct{ err error }

func (e summaryError) Error() string { return "write summary: " + e.err.Error() }
func (e summaryError) Unwrap() error { return e.err }

func newRootCmd(stdout io.Writer) *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "fqtrim [flags] <input.fq> <output.fq> <min-quality> <min-size>",
		Short: "Trim low-quality bases from the front of FASTQ reads",
		Long: `fqtrim removes the leading bases of every read whose Phred+33 quality is
below <min-quality>, drops reads shorter than <min-size> after trimming, and
writes the remaining reads to <output.fq>. Use "-" for stdin or stdout; when
the reads go to stdout the summary is printed on stderr instead.

Configuration is loaded in the following order (later sources override earlier):
  1. Default values
  2. .env file (if --env-file specified or .env exists in current directory)
  3. Environment variables
  4. Command line flags

Environment variables:
  FQTRIM_LOG_LEVEL      Log level: DEBUG, INFO, WARN, ERROR (default: INFO)
  FQTRIM_LOG_FORMAT     Log format: pretty, json (default: pretty)
  FQTRIM_REPORT_FORMAT  Summary format: text, json, yaml (default: text)
  FQTRIM_QUIET          Suppress informational logs (default: false)`,
		Version:       version.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, f, stdout)
		},
	}
	cmd.SetVersionTemplate("fqtrim version {{.Version}} (commit " + version.Commit + ", built " + version.Date + ")\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return cli.Usagef("%v", err)
	})

	fl := cmd.Flags()
	fl.StringVar(&f.envFile, "env-file", "", "path to .env file (default: .env in current directory)")
	fl.StringVarP(&f.format, "format", "f", "", "summary format: "+strings.Join(report.Formats(), " | ")+" (default: text)")
	fl.StringVar(&f.logLevel, "log-level", "", "log level: DEBUG, INFO, WARN, ERROR")
	fl.StringVar(&f.logFormat, "log-format", "", "log format: pretty, json")
	fl.BoolVarP(&f.quiet, "quiet", "q", false, "only log warnings and errors")
	return cmd
}

func loadConfig(cmd *cobra.Command, f flags) (config.AppConfig, error) {
	cfg, err := config.LoadConfig(f.envFile)
	if err != nil {
		return config.AppConfig{}, cli.Usagef("load config: %v", err)
	}
	var opts []config.AppConfigOption
	if cmd.Flags().Changed("format") {
		opts = append(opts, config.WithReportFormat(f.format))
	}
	if cmd.Flags().Changed("log-level") {
		opts = append(opts, config.WithLogLevel(f.logLevel))
	}
	if cmd.Flags().Changed("log-format") {
		opts = append(opts, config.WithLogFormat(config.ParseLogFormat(f.logFormat)))
	}
	if cmd.Flags().Changed("quiet") {
		opts = append(opts, config.WithQuiet(f.quiet))
	}
	cfg = cfg.Apply(opts...)

	if err := cfg.Validate(); err != nil {
		return config.AppConfig{}, cli.Usagef("%v", err)
	}
	if !report.Known(cfg.ReportFormat()) {
		return config.AppConfig{}, cli.Usagef("invalid summary format %q", cfg.ReportFormat())
	}
	return cfg, nil
}

func run(cmd *cobra.Command, args []string, f flags, stdout io.Writer) error {
	opts, err := cli.ParseArgs(args)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(cmd, f)
	if err != nil {
		return err
	}
	logger := log.NewLogger(cmd.ErrOrStderr(), cfg)

	th := trim.Thresholds{MinQuality: opts.MinQuality, MinSize: opts.MinSize}
	std := pipeline.Streams{Stdin: cmd.InOrStdin(), Stdout: stdout}
	st, err := pipeline.RunFiles(cmd.Context(), opts.Input, opts.Output, std, th, logger)
	if err != nil {
		return err
	}

	summary := api.SummaryV1{
		Input: opts.Input, Output: opts.Output,
		MinQuality: opts.MinQuality, MinSize: opts.MinSize,
		Reads: st.Total, Removed: st.Removed, Trimmed: st.Trimmed, Kept: st.Kept,
		BasesIn: st.BasesIn, BasesOut: st.BasesOut,
	}
	outw := bufio.NewWriter(summaryWriter(cmd, opts, stdout))
	if err := report.Write(cfg.ReportFormat(), outw, summary); err != nil {
		return summaryError{err}
	}
	if err := outw.Flush(); err != nil && !report.IsBrokenPipe(err) {
		return summaryError{err}
	}
	return nil
}

// summaryWriter keeps stdout clean when it carries the FASTQ output.
func summaryWriter(cmd *cobra.Command, opts cli.Options, stdout io.Writer) io.Writer {
	if opts.Output == fastq.Stdio {
		return cmd.ErrOrStderr()
	}
	return stdout
}

// RunContext executes fqtrim with argv (without the program name) and
// returns the process exit code. Errors are reported on stderr.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.InitDefaultHelpFlag()
	cmd.InitDefaultVersionFlag()
	cmd.SetArgs(cliutil.NormalizeArgs(cmd.Flags(), argv))

	err := cmd.ExecuteContext(ctx)
	code := exitCode(err)
	switch code {
	case ExitOK:
	case ExitUsage:
		_, _ = fmt.Fprintf(stderr, "fqtrim: %v\n\n", err)
		_, _ = io.WriteString(stderr, cmd.UsageString())
	default:
		_, _ = fmt.Fprintf(stderr, "fqtrim: %v\n", err)
	}
	return code
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func exitCode(err error) int {
	var se summaryError
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitInterrupted
	case errors.Is(err, cli.ErrUsage):
		return ExitUsage
	case errors.As(err, &se):
		return ExitOutput
	default:
		return ExitFailure
	}
}
