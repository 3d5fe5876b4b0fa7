//go:build go1.18
// +build go1.18

package geocalc_test

import (
	"testing"

	"github.com/zephyrtronium/geocalc"
)

func FuzzExec(f *testing.F) {
	f.Add("x")
	f.Add("p = Point(1, 2)")
	f.Add("Union(x, Circle(x, 1)).distance(Point(-1e3, .5))")
	f.Add("(2).pow(0.5) / 0")
	f.Add("1Ã—2")
	f.Fuzz(func(t *testing.T, s string) {
		sess := geocalc.NewSession(geocalc.SetVar("x", geocalc.Pt(0, 0)))
		r, err := sess.Exec(s)
		if err != nil {
			if r.Value != nil {
				t.Errorf("%q: error %v with result %v", s, err, r)
			}
			if _, ok := err.(geocalc.InputError); !ok {
				t.Errorf("%q: error %T has no position", s, err)
			}
			return
		}
		if r.Value == nil {
			t.Errorf("%q: no result and no error", s)
		}
	})
}
