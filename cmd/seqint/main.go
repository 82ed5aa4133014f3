// Package main is the entry point for the seqint CLI.
package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/seqint/internal/config"
	"github.com/katalvlaran/seqint/internal/job"
	"github.com/katalvlaran/seqint/internal/log"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// errJobsFailed makes the process exit non-zero after reports were printed.
var errJobsFailed = errors.New("one or more integrals failed or missed their tolerance")

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app carries the resolved configuration and logger to subcommands.
type app struct {
	envFile   string
	logLevel  string
	logFormat string
	output    string
	step      float64

	cfg    config.Config
	logger zerolog.Logger
}

func rootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "seqint",
		Short: "Sequential Simpson integration of 1-, 2- and 3-D integrals",
		Long: `seqint evaluates definite integrals with the composite Simpson rule.
Inner limits may depend on outer variables: y limits on x, z limits on x and y.

Configuration is loaded in the following order (later sources override earlier):
  1. Default values
  2. .env file (if --env-file specified or .env exists in current directory)
  3. Environment variables
  4. Command line flags

Environment variables:
  SEQINT_LOG_LEVEL      Log level: DEBUG, INFO, WARN, ERROR (default: INFO)
  SEQINT_LOG_FORMAT     Log format: pretty, json (default: pretty)
  SEQINT_DEFAULT_STEP   Half step for dimensions without --*-step (default: 0.01)
  SEQINT_OUTPUT         Report format: text, json, yaml (default: text)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.envFile, "env-file", "", "path to .env file (default: .env in current directory)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (DEBUG, INFO, WARN, ERROR)")
	flags.StringVar(&a.logFormat, "log-format", "", "log format (pretty, json)")
	flags.StringVarP(&a.output, "output", "o", "", "report format (text, json, yaml)")
	flags.Float64Var(&a.step, "step", 0, "default half step for every dimension")

	cmd.AddCommand(singleCmd(a))
	cmd.AddCommand(doubleCmd(a))
	cmd.AddCommand(tripleCmd(a))
	cmd.AddCommand(runCmd(a))
	cmd.AddCommand(versionCmd())

	return cmd
}

// load resolves configuration and builds the logger. Logs go to stderr so
// that reports on stdout stay machine-readable.
func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig(a.envFile)
	if err != nil {
		return errors.Wrap(err, "load config")
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg = cfg.WithLogLevel(a.logLevel)
	}
	if flags.Changed("log-format") {
		if cfg, err = cfg.WithLogFormat(a.logFormat); err != nil {
			return err
		}
	}
	if flags.Changed("output") {
		if cfg, err = cfg.WithOutput(a.output); err != nil {
			return err
		}
	}
	if flags.Changed("step") {
		if cfg, err = cfg.WithDefaultStep(a.step); err != nil {
			return err
		}
	}

	a.cfg = cfg
	a.logger = log.FromConfig(cmd.ErrOrStderr(), cfg)
	return nil
}

// execute runs jobs, prints the reports and fails if any job failed.
func (a *app) execute(cmd *cobra.Command, jobs []job.Job) error {
	runner := job.NewRunner(a.logger, a.cfg.DefaultStep())
	reports := runner.RunAll(jobs)

	if err := job.WriteReports(cmd.OutOrStdout(), a.cfg.Output(), reports); err != nil {
		return err
	}
	for _, r := range reports {
		if r.Failed() {
			return errJobsFailed
		}
	}
	return nil
}
