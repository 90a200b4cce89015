package internal

import (
	"bytes"
	"errors"
	"testing"
)

func TestDiagnosticsFormat(t *testing.T) {
	tests := []struct {
		err      error
		expected string
	}{
		{
			&UnexpectedCharacterError{Line: 3, Char: '$'},
			"[line 3] Error: Unexpected character: '$'",
		},
		{
			&UnterminatedStringError{Line: 7},
			"[line 7] Error: Unterminated string.",
		},
		{
			&ExpectedTokenError{
				Expected: RIGHT_PAREN,
				Found:    tok(NUMBER, "2", 2.0, 1),
				Line:     1,
				Message:  "Expect ')' after expression.",
			},
			"[line 1] Error at '2': Expect ')' after expression.",
		},
		{
			&ExpectedExpressionError{Found: tok(EOF, "", nil, 4), Line: 4},
			"[line 4] Error at end: Expect expression.",
		},
	}

	for _, tt := range tests {
		if tt.err.Error() != tt.expected {
			t.Errorf("Expected %q, found %q", tt.expected, tt.err.Error())
		}
	}
}

func TestDiagnosticsCollector(t *testing.T) {
	var diags Diagnostics
	if diags.HasErrors() {
		t.Error("Zero value should have no errors")
	}

	diags.report(&UnexpectedCharacterError{Line: 1, Char: '@'})
	diags.report(&UnterminatedStringError{Line: 2})
	diags.report(errors.New("plain"))

	if !diags.HasErrors() || diags.Len() != 3 {
		t.Fatalf("Expected 3 errors, found %d", diags.Len())
	}

	entries := diags.Entries()
	if entries[0].Line != 1 || entries[1].Line != 2 {
		t.Errorf("Entries out of order: %v", entries)
	}
	if !errors.Is(diags.Errors()[1], ErrUnterminatedString) {
		t.Errorf("Expected the unterminated string error second, found %v", diags.Errors()[1])
	}

	var buf bytes.Buffer
	if err := diags.Print(&buf); err != nil {
		t.Fatal(err)
	}
	expected := "[line 1] Error: Unexpected character: '@'\n" +
		"[line 2] Error: Unterminated string.\n" +
		"[line 0] Error: plain\n"
	if buf.String() != expected {
		t.Errorf("Expected:\n%s\nFound:\n%s", expected, buf.String())
	}

	// Entries is a copy
	entries[0].Line = 99
	if diags.Entries()[0].Line != 1 {
		t.Error("Entries should not expose the internal slice")
	}

	diags.Reset()
	if diags.HasErrors() {
		t.Error("Reset should clear the errors")
	}
}

func TestDiagnosticsNil(t *testing.T) {
	var diags *Diagnostics
	diags.report(&UnterminatedStringError{Line: 1})
	diags.Reset()
}
