package geocalc

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// distfn computes the distance between two concrete shapes. The first
// argument always has the higher rank.
type distfn func(a, b Shape) float64

// rank orders the concrete shapes: Point < Line < Circle < Rectangle.
// Combinators have no rank.
func rank(k Kind) int {
	switch k {
	case KindPoint:
		return 0
	case KindLine:
		return 1
	case KindCircle:
		return 2
	case KindRectangle:
		return 3
	default:
		return -1
	}
}

// disttab holds the distance for each ordered pair of ranks (hi, lo) with
// hi >= lo. A nil entry is an unsupported pair.
var disttab = [4][4]distfn{
	0: {
		0: func(a, b Shape) float64 { return a.(Point).DistanceToPoint(b.(Point)) },
	},
	1: {
		0: func(a, b Shape) float64 { return a.(Line).DistanceToPoint(b.(Point)) },
	},
	2: {
		0: func(a, b Shape) float64 { return a.(Circle).DistanceToPoint(b.(Point)) },
		1: func(a, b Shape) float64 { return a.(Circle).DistanceToLine(b.(Line)) },
	},
	3: {
		0: func(a, b Shape) float64 { return a.(Rectangle).DistanceToPoint(b.(Point)) },
		1: func(a, b Shape) float64 { return a.(Rectangle).DistanceToLine(b.(Line)) },
		2: func(a, b Shape) float64 { return a.(Rectangle).DistanceToCircle(b.(Circle)) },
	},
}

// Distance returns the distance from a to b. Unions take the minimum over
// their operands and intersections the maximum. Pairs of concrete shapes
// without a defined distance, including any concrete shape measured against
// a Union or Intersection argument, return an *UnsupportedError.
func Distance(a, b Shape) (float64, error) {
	switch a := a.(type) {
	case Union:
		return combine(a.A, a.B, b, math.Min)
	case Intersection:
		return combine(a.A, a.B, b, math.Max)
	}
	i, j := rank(a.Kind()), rank(b.Kind())
	if j < 0 {
		return 0, &UnsupportedError{Op: "distance", A: a.Kind(), B: b.Kind()}
	}
	x, y := a, b
	if i < j {
		i, j = j, i
		x, y = y, x
	}
	f := disttab[i][j]
	if f == nil {
		return 0, &UnsupportedError{Op: "distance", A: a.Kind(), B: b.Kind()}
	}
	return f(x, y), nil
}

func combine(a, b, to Shape, pick func(x, y float64) float64) (float64, error) {
	x, err := Distance(a, to)
	if err != nil {
		return 0, err
	}
	y, err := Distance(b, to)
	if err != nil {
		return 0, err
	}
	return pick(x, y), nil
}

// DistanceToLine returns zero if either endpoint of l is inside r. Otherwise
// it is the least edge-to-segment distance over the edges of r, where the
// distance between two segments is approximated by the distances from each
// segment's endpoints to the other segment. The approximation does not
// detect a segment crossing r with both endpoints outside.
func (r Rectangle) DistanceToLine(l Line) float64 {
	if r.Contains(l.P1) || r.Contains(l.P2) {
		return 0
	}
	var d [4]float64
	for i, e := range r.Edges() {
		d[i] = segmentGap(e, l)
	}
	return floats.Min(d[:])
}

// segmentGap approximates the distance between two segments by their
// endpoint-to-segment distances.
func segmentGap(a, b Line) float64 {
	d := [4]float64{
		a.DistanceToPoint(b.P1),
		a.DistanceToPoint(b.P2),
		b.DistanceToPoint(a.P1),
		b.DistanceToPoint(a.P2),
	}
	return floats.Min(d[:])
}
