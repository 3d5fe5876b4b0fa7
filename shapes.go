package geocalc

import (
	"math"

	"github.com/ctessum/geom"
)

// Shape is a geometric value. Every Shape can measure its distance to other
// shapes through Distance.
type Shape interface {
	Value
	isShape()
}

var (
	_ Shape = Point{}
	_ Shape = Line{}
	_ Shape = Circle{}
	_ Shape = Rectangle{}
	_ Shape = Union{}
	_ Shape = Intersection{}
)

// Point is a location in the plane.
type Point geom.Point

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (Point) Kind() Kind { return KindPoint }
func (Point) isShape()   {}

func (p Point) String() string {
	return "Point(" + FormatFloat(p.X) + ", " + FormatFloat(p.Y) + ")"
}

// DistanceToPoint returns the Euclidean distance between p and q.
func (p Point) DistanceToPoint(q Point) float64 {
	return norm(p.X-q.X, p.Y-q.Y)
}

func norm(dx, dy float64) float64 {
	return math.Sqrt(dx*dx + dy*dy)
}

// Line is the segment between two points. A Line whose endpoints coincide is
// degenerate and behaves like a point.
type Line struct {
	P1, P2 Point
}

func (Line) Kind() Kind { return KindLine }
func (Line) isShape()   {}

func (l Line) String() string {
	return "Line(" + l.P1.String() + ", " + l.P2.String() + ")"
}

// Length returns the length of the segment.
func (l Line) Length() float64 {
	return geom.LineString{geom.Point(l.P1), geom.Point(l.P2)}.Length()
}

// DistanceToPoint returns the distance from p to the closest point of the
// segment.
func (l Line) DistanceToPoint(p Point) float64 {
	vx, vy := p.X-l.P1.X, p.Y-l.P1.Y
	n := l.Length()
	if n == 0 {
		return norm(vx, vy)
	}
	ux, uy := (l.P2.X-l.P1.X)/n, (l.P2.Y-l.P1.Y)/n
	s := vx*ux + vy*uy
	s = math.Max(0, math.Min(n, s))
	return norm(p.X-(l.P1.X+s*ux), p.Y-(l.P1.Y+s*uy))
}

// Circle is a disc with a center and a non-negative radius.
type Circle struct {
	Center Point
	Radius float64
}

// NewCircle creates a circle, rejecting negative or NaN radii.
func NewCircle(center Point, radius float64) (Circle, error) {
	if !(radius >= 0) {
		return Circle{}, &ValueError{Msg: "circle radius must be non-negative, not " + FormatFloat(radius)}
	}
	return Circle{Center: center, Radius: radius}, nil
}

func (Circle) Kind() Kind { return KindCircle }
func (Circle) isShape()   {}

func (c Circle) String() string {
	return "Circle(" + c.Center.String() + ", " + FormatFloat(c.Radius) + ")"
}

// Area returns πr².
func (c Circle) Area() float64 {
	return math.Pi * (c.Radius * c.Radius)
}

// Circumference returns 2πr.
func (c Circle) Circumference() float64 {
	return 2 * math.Pi * c.Radius
}

// DistanceToPoint returns the distance from p to the disc, which is zero for
// points inside it.
func (c Circle) DistanceToPoint(p Point) float64 {
	return math.Max(0, c.Center.DistanceToPoint(p)-c.Radius)
}

// DistanceToLine returns the distance from l to the disc.
func (c Circle) DistanceToLine(l Line) float64 {
	return math.Max(0, l.DistanceToPoint(c.Center)-c.Radius)
}

// Rectangle is an axis-aligned box. Its bounds are always normalized so that
// Min holds the smaller coordinates.
type Rectangle struct {
	b geom.Bounds
}

// NewRectangle creates the rectangle with opposite corners p1 and p2, in any
// order.
func NewRectangle(p1, p2 Point) Rectangle {
	b := geom.NewBoundsPoint(geom.Point(p1))
	b.Extend(geom.NewBoundsPoint(geom.Point(p2)))
	return Rectangle{b: *b}
}

func (Rectangle) Kind() Kind { return KindRectangle }
func (Rectangle) isShape()   {}

// Min returns the corner with the smallest coordinates.
func (r Rectangle) Min() Point { return Point(r.b.Min) }

// Max returns the corner with the largest coordinates.
func (r Rectangle) Max() Point { return Point(r.b.Max) }

func (r Rectangle) String() string {
	return "Rectangle(" + r.Min().String() + ", " + r.Max().String() + ")"
}

// Width returns xmax - xmin.
func (r Rectangle) Width() float64 { return r.b.Max.X - r.b.Min.X }

// Height returns ymax - ymin.
func (r Rectangle) Height() float64 { return r.b.Max.Y - r.b.Min.Y }

// Area returns the area of the rectangle.
func (r Rectangle) Area() float64 {
	return r.Width() * r.Height()
}

// Perimeter returns the perimeter of the rectangle.
func (r Rectangle) Perimeter() float64 {
	return 2 * (r.Width() + r.Height())
}

// Contains reports whether p is inside r or on its boundary.
func (r Rectangle) Contains(p Point) bool {
	return r.b.Overlaps(geom.NewBoundsPoint(geom.Point(p)))
}

// clamp returns the point of r closest to p.
func (r Rectangle) clamp(p Point) Point {
	return Point{
		X: math.Max(r.b.Min.X, math.Min(p.X, r.b.Max.X)),
		Y: math.Max(r.b.Min.Y, math.Min(p.Y, r.b.Max.Y)),
	}
}

// Edges returns the four boundary segments of r, counterclockwise from the
// bottom edge.
func (r Rectangle) Edges() [4]Line {
	a := Pt(r.b.Min.X, r.b.Min.Y)
	b := Pt(r.b.Max.X, r.b.Min.Y)
	c := Pt(r.b.Max.X, r.b.Max.Y)
	d := Pt(r.b.Min.X, r.b.Max.Y)
	return [4]Line{{a, b}, {b, c}, {c, d}, {d, a}}
}

// DistanceToPoint returns zero if p is inside r and the distance to the
// closest boundary point otherwise.
func (r Rectangle) DistanceToPoint(p Point) float64 {
	if r.Contains(p) {
		return 0
	}
	return p.DistanceToPoint(r.clamp(p))
}

// DistanceToCircle returns zero if the center of c is inside r and otherwise
// the gap between r and the disc, floored at zero.
func (r Rectangle) DistanceToCircle(c Circle) float64 {
	if r.Contains(c.Center) {
		return 0
	}
	return math.Max(0, c.Center.DistanceToPoint(r.clamp(c.Center))-c.Radius)
}

// Union is the set union of two shapes. Its distance to anything is the
// smaller of its operands' distances.
type Union struct {
	A, B Shape
}

func (Union) Kind() Kind { return KindUnion }
func (Union) isShape()   {}

func (u Union) String() string {
	return "Union(" + u.A.String() + ", " + u.B.String() + ")"
}

// Intersection is the set intersection of two shapes. Its distance to
// anything is the larger of its operands' distances.
type Intersection struct {
	A, B Shape
}

func (Intersection) Kind() Kind { return KindIntersection }
func (Intersection) isShape()   {}

func (n Intersection) String() string {
	return "Intersection(" + n.A.String() + ", " + n.B.String() + ")"
}
