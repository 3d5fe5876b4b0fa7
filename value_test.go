package geocalc

import (
	"math"
	"testing"
)

func TestFormatFloat(t *testing.T) {
	cases := []struct {
		x    float64
		want string
	}{
		{0, "0.0"},
		{math.Copysign(0, -1), "-0.0"},
		{1, "1.0"},
		{5, "5.0"},
		{-2, "-2.0"},
		{0.5, "0.5"},
		{0.1, "0.1"},
		{78.53981633974483, "78.53981633974483"},
		{0.0001, "0.0001"},
		{0.00001, "1e-05"},
		{1.5e-7, "1.5e-07"},
		{1e15, "1000000000000000.0"},
		{1e16, "1e+16"},
		{1.5e300, "1.5e+300"},
		{123456789.125, "123456789.125"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
		{math.NaN(), "nan"},
	}
	for _, c := range cases {
		if got := FormatFloat(c.x); got != c.want {
			t.Errorf("FormatFloat(%g): want %q, got %q", c.x, c.want, got)
		}
	}
}

func TestValueStrings(t *testing.T) {
	c, _ := NewCircle(Pt(0, 0), 5)
	cases := []struct {
		v    Value
		want string
	}{
		{Number(2.5), "2.5"},
		{Pt(1, 2), "Point(1.0, 2.0)"},
		{Line{Pt(0, 0), Pt(1, -1)}, "Line(Point(0.0, 0.0), Point(1.0, -1.0))"},
		{c, "Circle(Point(0.0, 0.0), 5.0)"},
		{NewRectangle(Pt(10, 0), Pt(0, 10)), "Rectangle(Point(0.0, 0.0), Point(10.0, 10.0))"},
		{Union{Pt(0, 0), c}, "Union(Point(0.0, 0.0), Circle(Point(0.0, 0.0), 5.0))"},
		{Intersection{Union{Pt(0, 0), Pt(1, 1)}, Pt(2, 2)}, "Intersection(Union(Point(0.0, 0.0), Point(1.0, 1.0)), Point(2.0, 2.0))"},
	}
	for _, c := range cases {
		if got := c.v.String(); got != c.want {
			t.Errorf("want %s, got %s", c.want, got)
		}
	}
}

func TestKindString(t *testing.T) {
	for k := KindNumber; k <= KindIntersection; k++ {
		if s := k.String(); s == "" || s[0] == 'K' {
			t.Errorf("kind %d has name %q", k, s)
		}
	}
	if s := Kind(100).String(); s != "Kind(100)" {
		t.Errorf("out of range kind: %q", s)
	}
}
