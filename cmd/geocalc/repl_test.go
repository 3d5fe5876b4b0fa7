package main

import (
	"bytes"
	"errors"
	"io"
	"reflect"
	"testing"

	"github.com/peterh/liner"

	"github.com/zephyrtronium/geocalc"
)

// script is a prompter that returns its lines in order, then err.
type script struct {
	lines   []string
	err     error
	history []string
	prompts int
}

func (s *script) Prompt(prompt string) (string, error) {
	s.prompts++
	if len(s.lines) == 0 {
		return "", s.err
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

func (s *script) AppendHistory(item string) {
	s.history = append(s.history, item)
}

func TestREPL(t *testing.T) {
	cases := []struct {
		name    string
		lines   []string
		err     error
		out     string
		history []string
	}{
		{
			name:    "session",
			lines:   []string{"p1 = Point(0,0)", "p2 = Point(3,4)", "p1.distance(p2)", "exit", "p1"},
			out:     "p1 = Point(0.0, 0.0)\np2 = Point(3.0, 4.0)\n5.0\n",
			history: []string{"p1 = Point(0,0)", "p2 = Point(3,4)", "p1.distance(p2)"},
		},
		{
			name:    "error",
			lines:   []string{"foo", "  EXIT  "},
			out:     "Error: 1: undefined variable: \"foo\"\n",
			history: []string{"foo"},
		},
		{
			name:    "blank",
			lines:   []string{"", "   ", "\t", "1 + 1"},
			err:     io.EOF,
			out:     "2.0\n\n",
			history: []string{"1 + 1"},
		},
		{
			name: "eof",
			err:  io.EOF,
			out:  "\n",
		},
		{
			name:    "abort",
			lines:   []string{"c = Circle(Point(0, 0), 5)", "c.area()"},
			err:     liner.ErrPromptAborted,
			out:     "c = Circle(Point(0.0, 0.0), 5.0)\n78.53981633974483\n",
			history: []string{"c = Circle(Point(0, 0), 5)", "c.area()"},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var out bytes.Buffer
			in := &script{lines: c.lines, err: c.err}
			if err := repl(in, &out, geocalc.NewSession(), "> "); err != nil {
				t.Fatalf("repl failed: %v", err)
			}
			if out.String() != c.out {
				t.Errorf("wrong output:\nwant %q\ngot  %q", c.out, out.String())
			}
			if !reflect.DeepEqual(in.history, c.history) {
				t.Errorf("wrong history:\nwant %q\ngot  %q", c.history, in.history)
			}
		})
	}
}

func TestREPLError(t *testing.T) {
	boom := errors.New("terminal gone")
	in := &script{lines: []string{"1"}, err: boom}
	var out bytes.Buffer
	if err := repl(in, &out, geocalc.NewSession(), "> "); !errors.Is(err, boom) {
		t.Errorf("want %v, got %v", boom, err)
	}
	if in.prompts != 2 {
		t.Errorf("prompted %d times", in.prompts)
	}
}

func TestExecLineKeepsSession(t *testing.T) {
	var out bytes.Buffer
	sess := geocalc.NewSession()
	for _, line := range []string{"r = Rectangle(Point(0,0), Point(10,10))", "r = foo", "r.distance(Point(5,5))"} {
		execLine(&out, sess, line)
	}
	want := "r = Rectangle(Point(0.0, 0.0), Point(10.0, 10.0))\nError: 5: undefined variable: \"foo\"\n0.0\n"
	if out.String() != want {
		t.Errorf("wrong output:\nwant %q\ngot  %q", want, out.String())
	}
}
