package geocalc

import (
	"errors"
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

type monadic struct {
	name string
	f    func(out, in *big.Float) *big.Float
}

// Monadic wraps a function of one real into a niladic method on numbers. f
// is evaluated at the environment's precision and must set out to its
// result; its return value is ignored. If f is called on an argument outside
// its domain, it should panic with big.ErrNaN or a *DomainError.
func Monadic(name string, f func(out, in *big.Float) *big.Float) Method {
	return monadic{name, f}
}

func (m monadic) CanCall(n int) bool {
	return n == 0
}

func (m monadic) Call(env *Env, recv Value, args []Value) (r Value, err error) {
	x := float64(recv.(Number))
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return nil, &DomainError{X: x, Func: m.name}
	}
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		e, ok := p.(error)
		if !ok {
			panic(p)
		}
		var nan big.ErrNaN
		var dom *DomainError
		switch {
		case errors.As(e, &dom):
			err = dom
		case errors.As(e, &nan):
			err = &DomainError{X: x, Func: m.name}
		default:
			panic(p)
		}
	}()
	in := new(big.Float).SetPrec(env.Prec()).SetFloat64(x)
	out := new(big.Float).SetPrec(env.Prec())
	m.f(out, in)
	f, _ := out.Float64()
	return Number(f), nil
}

func bigSqrt(out, in *big.Float) *big.Float {
	if in.Sign() < 0 {
		panic(&DomainError{X: f64(in), Func: "sqrt"})
	}
	return out.Sqrt(in)
}

func bigExp(out, in *big.Float) *big.Float {
	return bigfloat.Exp(out, in)
}

func bigLn(out, in *big.Float) *big.Float {
	if in.Sign() <= 0 {
		panic(&DomainError{X: f64(in), Func: "ln"})
	}
	return bigfloat.Log(out, in)
}

func bigLog10(out, in *big.Float) *big.Float {
	if in.Sign() <= 0 {
		panic(&DomainError{X: f64(in), Func: "log"})
	}
	bigfloat.Log(out, in)
	ten := new(big.Float).SetPrec(out.Prec()).SetFloat64(10)
	bigfloat.Log(ten, ten)
	return out.Quo(out, ten)
}

// numPow raises the receiver to the argument. Negative bases are allowed
// only with integer exponents.
func numPow(env *Env, recv Value, args []Value) (Value, error) {
	x, y := float64(recv.(Number)), float64(args[0].(Number))
	switch {
	case math.IsInf(x, 0) || math.IsNaN(x):
		return nil, &DomainError{X: x, Func: "pow"}
	case math.IsInf(y, 0) || math.IsNaN(y):
		return nil, &DomainError{X: y, Func: "pow"}
	case y == 0:
		return Number(1), nil
	case x == 0:
		if y < 0 {
			return nil, &DomainError{X: x, Func: "pow"}
		}
		return Number(0), nil
	}
	neg := false
	if x < 0 {
		if y != math.Trunc(y) {
			return nil, &DomainError{X: x, Func: "pow"}
		}
		x = -x
		neg = math.Mod(y, 2) != 0
	}
	prec := env.Prec()
	bx := new(big.Float).SetPrec(prec).SetFloat64(x)
	by := new(big.Float).SetPrec(prec).SetFloat64(y)
	r := bigfloat.Pow(new(big.Float).SetPrec(prec), bx, by)
	f, _ := r.Float64()
	if neg {
		f = -f
	}
	return Number(f), nil
}

func f64(x *big.Float) float64 {
	f, _ := x.Float64()
	return f
}
