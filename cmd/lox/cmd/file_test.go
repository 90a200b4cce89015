package cmd

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/labstack/gommon/color"
	"github.com/mliezun/lox/internal/config"
	"github.com/sirupsen/logrus"
)

func testEnvironment() (*environment, *bytes.Buffer) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	c := color.New()
	c.Disable()
	out := &bytes.Buffer{}
	return &environment{
		cfg:   config.Default(),
		log:   logger,
		color: c,
		out:   out,
	}, out
}

func writeScript(t *testing.T, source string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.lox")
	if err := os.WriteFile(path, []byte(source), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var exit *exitError
	if errors.As(err, &exit) {
		return exit.code
	}
	return exitUsage
}

func TestRunFile(t *testing.T) {
	tests := []struct {
		name   string
		source string
		format string
		code   int
		out    string
	}{
		{"ast", "1 + 2 * 3", config.FormatAST, exitOK, "(+ 1 (* 2 3))\n"},
		{"source", "(1+2)", config.FormatSource, exitOK, "(1 + 2)\n"},
		{"tokens", "-1", config.FormatTokens, exitOK, "MINUS -\nNUMBER 1 1\nEOF \n"},
		{"syntax error", "(1 + 2", config.FormatAST, exitDataErr, ""},
		{"lexical error", "1 @", config.FormatAST, exitDataErr, ""},
		{"empty", "", config.FormatAST, exitDataErr, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, out := testEnvironment()
			err := runFile(env, writeScript(t, tt.source), tt.format)
			if code := exitCode(err); code != tt.code {
				t.Errorf("Expected exit code %d, found %d (%v)", tt.code, code, err)
			}
			if out.String() != tt.out {
				t.Errorf("Expected output %q, found %q", tt.out, out.String())
			}
		})
	}
}

func TestRunFileMissing(t *testing.T) {
	env, _ := testEnvironment()
	err := runFile(env, filepath.Join(t.TempDir(), "missing.lox"), config.FormatAST)
	if code := exitCode(err); code != exitNoInput {
		t.Errorf("Expected exit code %d, found %d (%v)", exitNoInput, code, err)
	}
}

func TestExecute(t *testing.T) {
	t.Setenv("LOX_CONFIG", "")
	defer rootCmd.SetArgs(nil)

	good := writeScript(t, "1 == 2")
	bad := writeScript(t, "1 +")

	tests := []struct {
		args []string
		code int
	}{
		{[]string{good}, exitOK},
		{[]string{"ast", good}, exitOK},
		{[]string{bad}, exitDataErr},
		{[]string{"fmt", bad}, exitDataErr},
		{[]string{good, bad}, exitUsage},
		{[]string{"--config", filepath.Join(t.TempDir(), "none.toml"), good}, exitUsage},
		{[]string{filepath.Join(t.TempDir(), "none.lox")}, exitNoInput},
	}
	for _, tt := range tests {
		rootCmd.SetArgs(tt.args)
		if code := Execute(); code != tt.code {
			t.Errorf("Args %v: expected exit code %d, found %d", tt.args, tt.code, code)
		}
		cfgFile = ""
	}
}
