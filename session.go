package geocalc

import (
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Result is the outcome of executing one line.
type Result struct {
	// Name is the assigned variable, or empty for a bare expression.
	Name  string
	Value Value
}

func (r Result) String() string {
	if r.Name == "" {
		return r.Value.String()
	}
	return r.Name + " = " + r.Value.String()
}

// Session executes lines against an environment that persists between them.
// It is not safe to use a Session concurrently.
type Session struct {
	// Env holds the session's variables.
	Env *Env
	// Log receives a debug entry for each line if it is not nil.
	Log logrus.FieldLogger
}

// NewSession creates a session with a new environment.
func NewSession(opts ...EnvOption) *Session {
	return &Session{Env: NewEnv(opts...)}
}

// Exec executes a line. A line containing = is an assignment of the
// expression after the first = to the name before it. The environment
// changes only if the whole line succeeds.
func (s *Session) Exec(line string) (Result, error) {
	r, err := s.exec(line)
	if s.Log != nil {
		l := s.Log.WithField("line", line)
		if err != nil {
			l.WithError(err).Debug("line failed")
		} else {
			l.WithFields(logrus.Fields{"var": r.Name, "kind": r.Value.Kind()}).Debug("line evaluated")
		}
	}
	return r, err
}

func (s *Session) exec(line string) (Result, error) {
	k := strings.IndexByte(line, '=')
	if k < 0 {
		v, err := Eval(line, s.Env)
		if err != nil {
			return Result{}, err
		}
		return Result{Value: v}, nil
	}
	name := strings.TrimSpace(line[:k])
	if !IsIdent(name) {
		return Result{}, &ValueError{Msg: "invalid variable name: " + strconv.Quote(name)}
	}
	rhs := line[k+1:]
	toks, err := Tokenize(rhs)
	if err != nil {
		shift(err, k+1)
		return Result{}, err
	}
	for i := range toks {
		toks[i].Col += k + 1
	}
	v, err := EvalTokens(toks, s.Env, len(line)+1)
	if err != nil {
		return Result{}, err
	}
	if err := s.Env.Set(name, v); err != nil {
		return Result{}, err
	}
	return Result{Name: name, Value: v}, nil
}

// shift moves the column of a lexing error on the right side of an
// assignment to its column in the full line.
func shift(err error, by int) {
	if e, ok := err.(*LexError); ok {
		e.Col += by
	}
}
