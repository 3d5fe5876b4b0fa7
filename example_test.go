package geocalc_test

import (
	"fmt"
	"testing"

	"github.com/zephyrtronium/geocalc"
)

func Example() {
	s := geocalc.NewSession()
	lines := []string{
		"p1 = Point(0,0)",
		"p2 = Point(3,4)",
		"p1.distance(p2)",
		"r = Rectangle(Point(0,0), Point(10,10))",
		"r.distance(Point(5,5))",
		"c = Circle(Point(0,0), 5)",
		"c.area()",
		"foo",
	}
	for _, line := range lines {
		r, err := s.Exec(line)
		if err != nil {
			fmt.Println("Error:", err)
			continue
		}
		fmt.Println(r)
	}

	// Output:
	// p1 = Point(0.0, 0.0)
	// p2 = Point(3.0, 4.0)
	// 5.0
	// r = Rectangle(Point(0.0, 0.0), Point(10.0, 10.0))
	// 0.0
	// c = Circle(Point(0.0, 0.0), 5.0)
	// 78.53981633974483
	// Error: 1: undefined variable: "foo"
}

func ExampleDistance() {
	c, _ := geocalc.NewCircle(geocalc.Pt(10, 0), 2)
	u := geocalc.Union{A: geocalc.Pt(0, 0), B: c}
	i := geocalc.Intersection{A: geocalc.Pt(0, 0), B: c}
	p := geocalc.Pt(6, 0)
	du, _ := geocalc.Distance(u, p)
	di, _ := geocalc.Distance(i, p)
	_, err := geocalc.Distance(c, c)
	fmt.Println(geocalc.FormatFloat(du), geocalc.FormatFloat(di))
	fmt.Println(err)

	// Output:
	// 2.0 6.0
	// distance between Circle and Circle is not supported
}

func BenchmarkEval(b *testing.B) {
	c, _ := geocalc.NewCircle(geocalc.Pt(0, 0), 5)
	env := geocalc.NewEnv(geocalc.SetVars(map[string]geocalc.Value{
		"p": geocalc.Pt(3, 4),
		"c": c,
		"r": geocalc.NewRectangle(geocalc.Pt(0, 0), geocalc.Pt(10, 10)),
	}))
	b.Run("nums", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			geocalc.Eval("2 + 3 * 4", env)
		}
	})
	b.Run("shapes", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			geocalc.Eval("Union(c, r).distance(Point(20, p.distance(Point(0, 0))))", env)
		}
	})
}
