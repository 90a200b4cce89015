package internal

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/gommon/color"
	"github.com/mliezun/lox/internal/config"
	"github.com/sirupsen/logrus"
)

// IPrinter printer interface
type IPrinter interface {
	Println(a ...interface{}) (n int, err error)
	Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error)
	Fprintln(w io.Writer, a ...interface{}) (n int, err error)
}

// Session scans and parses sources and prints the selected view of the
// result. Errors of a run are forgotten when the next run starts, so one
// session can serve a whole REPL.
type Session struct {
	Printer IPrinter
	Format  string
	Stderr  io.Writer

	// Optional
	Log   logrus.FieldLogger
	Color *color.Color

	diags Diagnostics
}

// NewSession creates a session printing the given format
func NewSession(p IPrinter, format string) *Session {
	return &Session{
		Printer: p,
		Format:  format,
		Stderr:  os.Stderr,
	}
}

// RunSourceWithPrinter runs source code on a fresh session
func RunSourceWithPrinter(absPath, source, format string, p IPrinter) bool {
	return NewSession(p, format).Run(absPath, source)
}

// HadError returns true if the last run reported an error
func (s *Session) HadError() bool {
	return s.diags.HasErrors()
}

// Diagnostics returns the errors of the last run
func (s *Session) Diagnostics() []Diagnostic {
	return s.diags.Entries()
}

// Run scans and parses one source. Returns false if any error was reported.
func (s *Session) Run(absPath, source string) bool {
	s.diags.Reset()

	log := s.logger().WithFields(logrus.Fields{
		"run":  uuid.New().String(),
		"path": absPath,
	})
	start := time.Now()

	tokens := ScanInto(source, &s.diags)
	log.WithField("tokens", len(tokens)).Debug("Scanned source")

	switch s.Format {
	case config.FormatTokens:
		for _, tk := range tokens {
			s.Printer.Println(tk.String())
		}
		return !s.PrintErrors(log)
	case config.FormatTokensYAML:
		out, err := DumpTokens(tokens)
		if err != nil {
			log.WithError(err).Error("Could not dump tokens")
			s.Printer.Fprintln(s.stderr(), err)
			return false
		}
		s.Printer.Println(strings.TrimSuffix(string(out), "\n"))
		return !s.PrintErrors(log)
	}

	if s.PrintErrors(log) {
		return false
	}

	expr, err := ParseInto(tokens, &s.diags)
	if err != nil {
		s.PrintErrors(log)
		return false
	}

	log.WithField("elapsed", time.Since(start)).Debug("Parsed expression")

	switch s.Format {
	case config.FormatSource:
		s.Printer.Println(PrintSource(expr))
	case config.FormatYAML:
		out, err := DumpExpr(expr)
		if err != nil {
			log.WithError(err).Error("Could not dump expression")
			s.Printer.Fprintln(s.stderr(), err)
			return false
		}
		s.Printer.Println(strings.TrimSuffix(string(out), "\n"))
	default:
		s.Printer.Println(PrintAST(expr))
	}

	return true
}

// PrintErrors prints the errors of the current run, returns true if there
// was any
func (s *Session) PrintErrors(log logrus.FieldLogger) bool {
	if !s.diags.HasErrors() {
		return false
	}
	for _, d := range s.diags.Entries() {
		msg := d.String()
		if s.Color != nil {
			msg = s.Color.Red(msg)
		}
		s.Printer.Fprintf(s.stderr(), "%s\n", msg)
	}
	log.WithField("errors", s.diags.Len()).Warn("Source has errors")
	return true
}

func (s *Session) logger() logrus.FieldLogger {
	if s.Log == nil {
		logger := logrus.New()
		logger.SetOutput(io.Discard)
		s.Log = logger
	}
	return s.Log
}

func (s *Session) stderr() io.Writer {
	if s.Stderr == nil {
		return os.Stderr
	}
	return s.Stderr
}
