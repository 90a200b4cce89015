package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mliezun/lox/internal"
	"github.com/mliezun/lox/internal/config"
	"github.com/spf13/cobra"
)

type stdPrinter struct {
	out io.Writer
}

func (s stdPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Fprintln(s.out, a...)
}

func (s stdPrinter) Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error) {
	return fmt.Fprintf(w, format, a...)
}

func (s stdPrinter) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	return fmt.Fprintln(w, a...)
}

func newSession(env *environment, format string) *internal.Session {
	session := internal.NewSession(stdPrinter{out: env.out}, format)
	session.Log = env.log
	session.Color = env.color
	return session
}

func runFile(env *environment, path, format string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return &exitError{code: exitNoInput, err: err}
	}

	b, err := os.ReadFile(absPath)
	if err != nil {
		return &exitError{code: exitNoInput, err: fmt.Errorf("could not read script: %w", err)}
	}

	if !newSession(env, format).Run(absPath, string(b)) {
		return &exitError{code: exitDataErr}
	}
	return nil
}

// viewCommand creates a subcommand printing one view of a script. yamlFormat
// is used instead when --format yaml is given.
func viewCommand(use, short, format, yamlFormat string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <script>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setup(cmd)
			if err != nil {
				return err
			}
			f := format
			if yamlFormat != "" && env.cfg.Output.Format == config.FormatYAML {
				f = yamlFormat
			}
			return runFile(env, args[0], f)
		},
	}
}

func init() {
	rootCmd.AddCommand(
		viewCommand("tokens", "Print the tokens of a script", config.FormatTokens, config.FormatTokensYAML),
		viewCommand("ast", "Print the expression tree of a script", config.FormatAST, config.FormatYAML),
		viewCommand("fmt", "Print a script back as formatted source", config.FormatSource, ""),
	)
}
