package geocalc

import (
	"sort"
	"strconv"
	"strings"
)

// Method is a function callable on a receiver of a particular kind with
// the `recv.name(args)` syntax.
type Method interface {
	// Call evaluates the method. args has a length for which CanCall returned
	// true. Errors without a position are placed at the call by the parser.
	Call(env *Env, recv Value, args []Value) (Value, error)

	// CanCall returns whether the method can be called with n arguments.
	CanCall(n int) bool
}

// capability lists what a kind of value supports.
type capability struct {
	methods map[string]Method
	// ops contains the binary operators the kind supports on the left.
	ops string
}

var capabilities [KindIntersection + 1]capability

func init() {
	distance := Params([]Kind{KindNone}, func(env *Env, recv Value, args []Value) (Value, error) {
		d, err := Distance(recv.(Shape), args[0].(Shape))
		if err != nil {
			return nil, &TypeError{Msg: err.Error(), Err: err}
		}
		return Number(d), nil
	})
	capabilities = [...]capability{
		KindNumber: {
			methods: map[string]Method{
				"sqrt": Monadic("sqrt", bigSqrt),
				"exp":  Monadic("exp", bigExp),
				"ln":   Monadic("ln", bigLn),
				"log":  Monadic("log", bigLog10),
				"pow":  Params([]Kind{KindNumber}, numPow),
			},
			ops: Operators,
		},
		KindPoint: {
			methods: map[string]Method{
				"distance": distance,
			},
		},
		KindLine: {
			methods: map[string]Method{
				"distance": distance,
				"distance_to_point": Params([]Kind{KindPoint}, func(env *Env, recv Value, args []Value) (Value, error) {
					return Number(recv.(Line).DistanceToPoint(args[0].(Point))), nil
				}),
				"length": Measure(func(s Shape) float64 { return s.(Line).Length() }),
			},
		},
		KindCircle: {
			methods: map[string]Method{
				"distance": distance,
				"distance_to_point": Params([]Kind{KindPoint}, func(env *Env, recv Value, args []Value) (Value, error) {
					return Number(recv.(Circle).DistanceToPoint(args[0].(Point))), nil
				}),
				"distance_to_line": Params([]Kind{KindLine}, func(env *Env, recv Value, args []Value) (Value, error) {
					return Number(recv.(Circle).DistanceToLine(args[0].(Line))), nil
				}),
				"area":          Measure(func(s Shape) float64 { return s.(Circle).Area() }),
				"circumference": Measure(func(s Shape) float64 { return s.(Circle).Circumference() }),
			},
		},
		KindRectangle: {
			methods: map[string]Method{
				"distance": distance,
				"distance_to_point": Params([]Kind{KindPoint}, func(env *Env, recv Value, args []Value) (Value, error) {
					return Number(recv.(Rectangle).DistanceToPoint(args[0].(Point))), nil
				}),
				"distance_to_line": Params([]Kind{KindLine}, func(env *Env, recv Value, args []Value) (Value, error) {
					return Number(recv.(Rectangle).DistanceToLine(args[0].(Line))), nil
				}),
				"distance_to_circle": Params([]Kind{KindCircle}, func(env *Env, recv Value, args []Value) (Value, error) {
					return Number(recv.(Rectangle).DistanceToCircle(args[0].(Circle))), nil
				}),
				"area":      Measure(func(s Shape) float64 { return s.(Rectangle).Area() }),
				"perimeter": Measure(func(s Shape) float64 { return s.(Rectangle).Perimeter() }),
			},
		},
		KindUnion: {
			methods: map[string]Method{
				"distance": distance,
			},
		},
		KindIntersection: {
			methods: map[string]Method{
				"distance": distance,
			},
		},
	}
}

// LookupMethod returns the method name on values of kind k, or nil if there
// is none.
func LookupMethod(k Kind, name string) Method {
	if k <= KindNone || int(k) >= len(capabilities) {
		return nil
	}
	return capabilities[k].methods[name]
}

// Methods returns the sorted names of the methods of kind k.
func Methods(k Kind) []string {
	if k <= KindNone || int(k) >= len(capabilities) {
		return nil
	}
	r := make([]string, 0, len(capabilities[k].methods))
	for name := range capabilities[k].methods {
		r = append(r, name)
	}
	sort.Strings(r)
	return r
}

// Apply evaluates the binary operator op on l and r. Both operands must
// support the operator; shapes support none.
func Apply(op string, l, r Value) (Value, error) {
	if strings.IndexByte(capabilities[l.Kind()].ops, op[0]) < 0 || strings.IndexByte(capabilities[r.Kind()].ops, op[0]) < 0 {
		return nil, &TypeError{Msg: "unsupported operand kinds for " + op + ": " + l.Kind().String() + " and " + r.Kind().String()}
	}
	x, y := l.(Number), r.(Number)
	switch op {
	case "+":
		return x + y, nil
	case "-":
		return x - y, nil
	case "*":
		return x * y, nil
	case "/":
		if y == 0 {
			return nil, &DomainError{X: float64(y), Func: "/"}
		}
		return x / y, nil
	default:
		panic("geocalc: unknown operator " + op)
	}
}

type params struct {
	kinds []Kind
	f     func(env *Env, recv Value, args []Value) (Value, error)
}

// Params wraps a method whose arguments have fixed kinds. KindNone accepts
// any Shape.
func Params(kinds []Kind, f func(env *Env, recv Value, args []Value) (Value, error)) Method {
	return params{kinds, f}
}

func (m params) CanCall(n int) bool {
	return n == len(m.kinds)
}

func (m params) Call(env *Env, recv Value, args []Value) (Value, error) {
	for i, k := range m.kinds {
		if err := checkArg(args[i], k, i); err != nil {
			return nil, err
		}
	}
	return m.f(env, recv, args)
}

// checkArg returns a TypeError if v is not of kind k, or not a Shape when k
// is KindNone. i is the 0-based argument index.
func checkArg(v Value, k Kind, i int) error {
	if k == KindNone {
		if _, ok := v.(Shape); ok {
			return nil
		}
		return &TypeError{Msg: "argument " + strconv.Itoa(i+1) + " must be a shape, not " + v.Kind().String()}
	}
	if v.Kind() != k {
		return &TypeError{Msg: "argument " + strconv.Itoa(i+1) + " must be " + k.String() + ", not " + v.Kind().String()}
	}
	return nil
}

type measure struct {
	f func(Shape) float64
}

// Measure wraps a niladic measurement of a shape.
func Measure(f func(Shape) float64) Method {
	return measure{f}
}

func (m measure) CanCall(n int) bool {
	return n == 0
}

func (m measure) Call(env *Env, recv Value, args []Value) (Value, error) {
	return Number(m.f(recv.(Shape))), nil
}
