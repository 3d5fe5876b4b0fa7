package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"

	"github.com/zephyrtronium/geocalc"
)

// prompter reads input lines. *liner.State implements it.
type prompter interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

// repl executes lines from in until "exit", end of input, or Ctrl-C.
func repl(in prompter, out io.Writer, sess *geocalc.Session, prompt string) error {
	for {
		line, err := in.Prompt(prompt)
		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			fmt.Fprintln(out)
			return nil
		case errors.Is(err, liner.ErrPromptAborted):
			return nil
		default:
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.EqualFold(line, "exit") {
			return nil
		}
		in.AppendHistory(line)
		execLine(out, sess, line)
	}
}

// execLine executes one line and prints its result or error.
func execLine(out io.Writer, sess *geocalc.Session, line string) {
	r, err := sess.Exec(line)
	if err != nil {
		fmt.Fprintln(out, "Error:", err)
		return
	}
	fmt.Fprintln(out, r)
}
