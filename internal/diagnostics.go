package internal

import (
	"errors"
	"fmt"
	"io"
)

// Lexer errors
var ErrUnexpectedCharacter = errors.New("Unexpected character")
var ErrUnterminatedString = errors.New("Unterminated string")

// Parser errors
var ErrExpectedToken = errors.New("Expected token")
var ErrExpectedExpression = errors.New("Expect expression")

// Diagnostic is one reported error, ready to be shown to the user.
type Diagnostic struct {
	Line    int
	Where   string
	Message string
	Err     error
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("[line %d] Error%s: %s", d.Line, d.Where, d.Message)
}

type reportable interface {
	error
	diagnostic() Diagnostic
}

// UnexpectedCharacterError is reported for a character that starts no token.
type UnexpectedCharacterError struct {
	Line int
	Char rune
}

func (e *UnexpectedCharacterError) diagnostic() Diagnostic {
	return Diagnostic{
		Line:    e.Line,
		Message: fmt.Sprintf("Unexpected character: '%c'", e.Char),
		Err:     e,
	}
}

func (e *UnexpectedCharacterError) Error() string { return e.diagnostic().String() }

func (e *UnexpectedCharacterError) Unwrap() error { return ErrUnexpectedCharacter }

// UnterminatedStringError is reported when the input ends inside a string.
// Line is the line where scanning stopped.
type UnterminatedStringError struct {
	Line int
}

func (e *UnterminatedStringError) diagnostic() Diagnostic {
	return Diagnostic{
		Line:    e.Line,
		Message: "Unterminated string.",
		Err:     e,
	}
}

func (e *UnterminatedStringError) Error() string { return e.diagnostic().String() }

func (e *UnterminatedStringError) Unwrap() error { return ErrUnterminatedString }

// ExpectedTokenError is raised when the parser requires a specific token,
// like the ')' closing a group.
type ExpectedTokenError struct {
	Expected TokenType
	Found    Token
	Line     int
	Message  string
}

func (e *ExpectedTokenError) diagnostic() Diagnostic {
	return Diagnostic{
		Line:    e.Line,
		Where:   where(e.Found),
		Message: e.Message,
		Err:     e,
	}
}

func (e *ExpectedTokenError) Error() string { return e.diagnostic().String() }

func (e *ExpectedTokenError) Unwrap() error { return ErrExpectedToken }

// ExpectedExpressionError is raised when no primary expression starts at
// the current token.
type ExpectedExpressionError struct {
	Found Token
	Line  int
}

func (e *ExpectedExpressionError) diagnostic() Diagnostic {
	return Diagnostic{
		Line:    e.Line,
		Where:   where(e.Found),
		Message: "Expect expression.",
		Err:     e,
	}
}

func (e *ExpectedExpressionError) Error() string { return e.diagnostic().String() }

func (e *ExpectedExpressionError) Unwrap() error { return ErrExpectedExpression }

func where(tk Token) string {
	if tk.Type == EOF {
		return " at end"
	}
	return " at '" + tk.Lexeme + "'"
}

// Diagnostics collects the errors of a scan/parse run in the order they
// were found. The zero value is ready to use.
type Diagnostics struct {
	entries []Diagnostic
}

// NewDiagnostics creates an empty collector
func NewDiagnostics() *Diagnostics {
	return &Diagnostics{entries: make([]Diagnostic, 0)}
}

func (d *Diagnostics) report(err error) {
	if d == nil {
		return
	}
	var r reportable
	if errors.As(err, &r) {
		d.entries = append(d.entries, r.diagnostic())
		return
	}
	d.entries = append(d.entries, Diagnostic{Message: err.Error(), Err: err})
}

// HasErrors returns true if at least one error was reported
func (d *Diagnostics) HasErrors() bool {
	return len(d.entries) != 0
}

// Len returns the number of reported errors
func (d *Diagnostics) Len() int {
	return len(d.entries)
}

// Entries returns a copy of the reported diagnostics
func (d *Diagnostics) Entries() []Diagnostic {
	out := make([]Diagnostic, len(d.entries))
	copy(out, d.entries)
	return out
}

// Errors returns the underlying errors in report order
func (d *Diagnostics) Errors() []error {
	out := make([]error, 0, len(d.entries))
	for _, e := range d.entries {
		out = append(out, e.Err)
	}
	return out
}

// Reset forgets every reported error. The REPL calls it between lines.
func (d *Diagnostics) Reset() {
	if d == nil {
		return
	}
	d.entries = d.entries[:0]
}

// Print writes one line per diagnostic
func (d *Diagnostics) Print(w io.Writer) error {
	for _, e := range d.entries {
		if _, err := fmt.Fprintln(w, e.String()); err != nil {
			return err
		}
	}
	return nil
}
