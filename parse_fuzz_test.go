//go:build go1.18
// +build go1.18

package geocalc_test

import (
	"testing"
	"unicode/utf8"

	"github.com/zephyrtronium/geocalc"
)

func FuzzTokenize(f *testing.F) {
	f.Add("x")
	f.Add("p.distance(Point(-1, +.5e3))")
	f.Add("1-2 - -3")
	f.Add("1Ã—2")
	f.Fuzz(func(t *testing.T, s string) {
		toks, err := geocalc.Tokenize(s)
		if err != nil {
			return
		}
		col := 0
		for _, tok := range toks {
			if tok.Col <= col {
				t.Fatalf("%q: token %q at %d after %d", s, tok.Text, tok.Col, col)
			}
			if tok.Text == "" || !utf8.ValidString(tok.Text) {
				t.Fatalf("%q: bad token text %q", s, tok.Text)
			}
			col = tok.Col
		}
	})
}
