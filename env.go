package geocalc

import (
	"sort"
)

// DefaultPrec is the precision in bits of numeric methods when none is
// given.
const DefaultPrec = 64

// Env is an environment of variables for evaluating expressions. Values are
// immutable, so environments share them freely. It is not safe to use an Env
// concurrently.
type Env struct {
	names map[string]Value
	prec  uint
}

// EnvOption is an option used when creating an environment.
type EnvOption interface {
	envOption()
}

type (
	varopt struct {
		name string
		val  Value
	}
	varsopt map[string]Value
	precopt uint
)

func (varopt) envOption()  {}
func (varsopt) envOption() {}
func (precopt) envOption() {}

// SetVar sets the value of a variable in the environment.
func SetVar(name string, val Value) EnvOption {
	return varopt{name, val}
}

// SetVars sets the values of any number of variables in the environment.
func SetVars(vars map[string]Value) EnvOption {
	return varsopt(vars)
}

// Prec sets the precision of numeric methods in bits.
func Prec(prec uint) EnvOption {
	return precopt(prec)
}

// NewEnv creates a new environment. If no precision is given, the default is
// DefaultPrec.
func NewEnv(opts ...EnvOption) *Env {
	env := Env{prec: DefaultPrec}
	return env.Clone(opts...)
}

// Set sets the value of a variable, replacing any previous value. Returns a
// *ValueError if name is not an identifier.
func (env *Env) Set(name string, val Value) error {
	if !IsIdent(name) {
		return &ValueError{Msg: "invalid variable name: " + name}
	}
	if env.names == nil {
		env.names = make(map[string]Value)
	}
	env.names[name] = val
	return nil
}

// Lookup returns the value of a variable. The second result is false if the
// variable is not defined.
func (env *Env) Lookup(name string) (Value, bool) {
	v, ok := env.names[name]
	return v, ok
}

// Names returns the sorted names of all defined variables.
func (env *Env) Names() []string {
	r := make([]string, 0, len(env.names))
	for name := range env.names {
		r = append(r, name)
	}
	sort.Strings(r)
	return r
}

// Len returns the number of defined variables.
func (env *Env) Len() int {
	return len(env.names)
}

// Prec returns the precision of numeric methods in the environment.
func (env *Env) Prec() uint {
	return env.prec
}

// Clone creates a copy of an environment and applies options to it.
// Options that set invalid variable names panic.
func (env *Env) Clone(opts ...EnvOption) *Env {
	n := Env{
		names: make(map[string]Value, len(env.names)),
		prec:  env.prec,
	}
	for name, val := range env.names {
		n.names[name] = val
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case varopt:
			n.mustSet(opt.name, opt.val)
		case varsopt:
			for k, v := range opt {
				n.mustSet(k, v)
			}
		case precopt:
			if opt == 0 {
				panic("geocalc: zero precision")
			}
			n.prec = uint(opt)
		default:
			panic("geocalc: unknown option type")
		}
	}
	return &n
}

func (env *Env) mustSet(name string, val Value) {
	if err := env.Set(name, val); err != nil {
		panic("geocalc: " + err.Error())
	}
}
