package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
)

const banner = "Lox expression REPL. Ctrl+D exits."

func runPrompt(env *environment) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := env.cfg.REPL.History
	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	fmt.Fprintln(env.out, env.color.Cyan(banner))

	// Each Run starts with a clean error state, a bad line doesn't end the
	// session
	session := newSession(env, env.cfg.Output.Format)
	for {
		line, err := ln.Prompt(env.cfg.REPL.Prompt)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(env.out)
			return nil
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			return err
		}

		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)

		session.Run("", line)
	}
}
