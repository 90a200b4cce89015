package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/labstack/gommon/color"
	"github.com/mliezun/lox/internal/config"
	"github.com/mliezun/lox/internal/logging"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Exit codes
const (
	exitOK      = 0
	exitUsage   = 64
	exitDataErr = 65
	exitNoInput = 66
)

var (
	cfgFile string
	verbose bool
	format  string
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "lox [script]",
	Short: "Scan and parse Lox expressions",
	Long: `lox scans and parses Lox expressions.

With a script argument the file is parsed and its tree printed, any
lexical or syntax error exits with status 65. Without arguments an
interactive prompt is started.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup(cmd)
		if err != nil {
			return err
		}
		if len(args) == 1 {
			return runFile(env, args[0], env.cfg.Output.Format)
		}
		return runPrompt(env)
	},
}

// exitError carries the process exit status out of a command
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

// Execute runs the command line and returns the process exit status
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return exitOK
	}

	var exit *exitError
	if errors.As(err, &exit) {
		if exit.err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", exit.err)
		}
		return exit.code
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	fmt.Fprintln(os.Stderr, rootCmd.UsageString())
	return exitUsage
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $LOX_CONFIG or ./lox.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "", "output format: tokens, tokens-yaml, ast, source, yaml")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored diagnostics")
}

// environment is what every command needs after flags and config are
// resolved
type environment struct {
	cfg   *config.Config
	log   *logrus.Logger
	color *color.Color
	out   io.Writer
}

func setup(cmd *cobra.Command) (*environment, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, &exitError{code: exitUsage, err: err}
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Output.Format = format
	}
	if flags.Changed("no-color") {
		cfg.Output.NoColor = noColor
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, &exitError{code: exitUsage, err: err}
	}

	logger, err := logging.New(cfg.Log, os.Stderr)
	if err != nil {
		return nil, &exitError{code: exitUsage, err: err}
	}

	c := color.New()
	if cfg.Output.NoColor {
		c.Disable()
	}

	logger.WithFields(logrus.Fields{
		"config": cfgFile,
		"format": cfg.Output.Format,
	}).Debug("Configuration loaded")

	return &environment{
		cfg:   cfg,
		log:   logger,
		color: c,
		out:   os.Stdout,
	}, nil
}
