// Package geocalc implements a calculator over points, lines, circles,
// rectangles, and unions and intersections of them.
//
// An expression constructs shapes with calls like "Point(1, 2)" or
// "Circle(Point(0, 0), 5)", calls methods on them with "c.area()" or
// "r.distance(p)", and does arithmetic on numbers with + - * /. All four
// operators have the same precedence and associate left, so "1 + 2 * 3" is 9.
// Expressions are evaluated as they are parsed; there is no syntax tree.
//
// A Session keeps variables between lines, so that "p = Point(3, 4)"
// followed by "p.distance(Point(0, 0))" gives 5.0.
//
// Distances between shapes are defined for every pair of points, lines,
// circles, and rectangles that includes a point, plus circle-line,
// rectangle-line, and rectangle-circle. The distance from a union is the
// smaller of its operands' distances, and from an intersection the larger.
//
package geocalc
