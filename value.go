package geocalc

import (
	"math"
	"strconv"
	"strings"
)

// Kind identifies the variant of a Value. The set of kinds is closed.
type Kind int8

const (
	KindNone Kind = iota
	KindNumber
	KindPoint
	KindLine
	KindCircle
	KindRectangle
	KindUnion
	KindIntersection
)

var kindnames = [...]string{
	KindNone:         "None",
	KindNumber:       "Number",
	KindPoint:        "Point",
	KindLine:         "Line",
	KindCircle:       "Circle",
	KindRectangle:    "Rectangle",
	KindUnion:        "Union",
	KindIntersection: "Intersection",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindnames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindnames[k]
}

// Value is the result of evaluating an expression.
type Value interface {
	// Kind returns the variant of the value.
	Kind() Kind
	// String renders the value the way the calculator prints it.
	String() string
}

// Number is a numeric value.
type Number float64

func (Number) Kind() Kind { return KindNumber }

func (n Number) String() string {
	return FormatFloat(float64(n))
}

// FormatFloat formats x as the shortest decimal that round-trips. Integral
// values keep a trailing ".0", and exponent form is used when the decimal
// exponent is below -4 or at least 16.
func FormatFloat(x float64) string {
	switch {
	case math.IsNaN(x):
		return "nan"
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	case x == 0:
		if math.Signbit(x) {
			return "-0.0"
		}
		return "0.0"
	}
	e := strconv.FormatFloat(x, 'e', -1, 64)
	k := strings.IndexByte(e, 'e')
	exp, _ := strconv.Atoi(e[k+1:])
	if exp < -4 || exp >= 16 {
		return e
	}
	s := strconv.FormatFloat(x, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
