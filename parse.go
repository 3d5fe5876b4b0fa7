package geocalc

import (
	"errors"
	"strconv"
	"strings"
)

// Expr = Chain { Op Chain }
// Chain = Primary { '.' ident '(' [ Args ] ')' }
// Primary = '(' Expr ')' | num | ident '(' [ Args ] ')' | ident
// Args = Expr { ',' Expr }
// Op = '+' | '-' | '*' | '/'
//
// All operators share one precedence level and associate left.

// Eval evaluates the expression in src using the variables in env. env is
// not modified.
func Eval(src string, env *Env) (Value, error) {
	toks, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	return EvalTokens(toks, env, len(src)+1)
}

// EvalTokens evaluates a complete expression from a token list. end is the
// column reported for errors at the end of the input. Tokens remaining after
// the expression are an error.
func EvalTokens(toks []Token, env *Env, end int) (Value, error) {
	if len(toks) == 0 {
		return nil, &ParseError{Col: end, Msg: "no expression"}
	}
	p := parser{env: env, end: end}
	v, rest, err := p.expr(toks)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		text := make([]string, len(rest))
		for i, tok := range rest {
			text[i] = tok.Text
		}
		return nil, &ParseError{Col: rest[0].Col, Msg: "unexpected tokens after expression: " + strings.Join(text, " ")}
	}
	return v, nil
}

// parser holds the state shared by productions. Each production takes the
// remaining tokens and returns its value with the tokens after it.
type parser struct {
	env *Env
	end int
}

// expr parses a full expression.
func (p *parser) expr(toks []Token) (Value, []Token, error) {
	v, toks, err := p.chain(toks)
	if err != nil {
		return nil, nil, err
	}
	for len(toks) > 0 && toks[0].Kind == TokenOp {
		op := toks[0]
		r, rest, err := p.chain(toks[1:])
		if err != nil {
			return nil, nil, err
		}
		v, err = Apply(op.Text, v, r)
		if err != nil {
			return nil, nil, atcol(err, op.Col)
		}
		toks = rest
	}
	return v, toks, nil
}

// chain parses a primary followed by any number of method calls.
func (p *parser) chain(toks []Token) (Value, []Token, error) {
	v, toks, err := p.primary(toks)
	if err != nil {
		return nil, nil, err
	}
	for len(toks) > 0 && toks[0].Kind == TokenDot {
		if len(toks) < 2 || toks[1].Kind != TokenIdent {
			return nil, nil, p.unexpected(toks[1:], "expected method name after .")
		}
		name := toks[1]
		if len(toks) < 3 || toks[2].Kind != TokenOpen {
			return nil, nil, p.unexpected(toks[2:], "expected ( after method name")
		}
		args, rest, err := p.args(toks[3:], toks[2])
		if err != nil {
			return nil, nil, err
		}
		m := LookupMethod(v.Kind(), name.Text)
		if m == nil {
			return nil, nil, &MethodError{Col: name.Col, Kind: v.Kind(), Method: name.Text}
		}
		if !m.CanCall(len(args)) {
			return nil, nil, &TypeError{Col: name.Col, Msg: "cannot call " + v.Kind().String() + "." + name.Text + " with " + strconv.Itoa(len(args)) + " arguments"}
		}
		v, err = m.Call(p.env, v, args)
		if err != nil {
			return nil, nil, atcol(err, name.Col)
		}
		toks = rest
	}
	return v, toks, nil
}

// primary parses a parenthesized expression, number, constructor call, or
// variable.
func (p *parser) primary(toks []Token) (Value, []Token, error) {
	if len(toks) == 0 {
		return nil, nil, &ParseError{Col: p.end, Msg: "no expression at end"}
	}
	tok := toks[0]
	switch tok.Kind {
	case TokenOpen:
		v, rest, err := p.expr(toks[1:])
		if err != nil {
			return nil, nil, err
		}
		if len(rest) == 0 {
			return nil, nil, &ParseError{Col: tok.Col, Msg: "open bracket ( with no close bracket"}
		}
		if rest[0].Kind != TokenClose {
			return nil, nil, p.unexpected(rest, "expected )")
		}
		return v, rest[1:], nil
	case TokenNum:
		f, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, nil, &ParseError{Col: tok.Col, Msg: "invalid number " + strconv.Quote(tok.Text)}
		}
		return Number(f), toks[1:], nil
	case TokenIdent:
		if len(toks) > 1 && toks[1].Kind == TokenOpen {
			return p.construct(toks)
		}
		v, ok := p.env.Lookup(tok.Text)
		if !ok {
			return nil, nil, &NameError{Name: tok.Text, Col: tok.Col}
		}
		return v, toks[1:], nil
	default:
		return nil, nil, p.unexpected(toks, "")
	}
}

// construct parses a constructor call. toks starts with the type name and
// the open bracket.
func (p *parser) construct(toks []Token) (Value, []Token, error) {
	name := toks[0]
	args, rest, err := p.args(toks[2:], toks[1])
	if err != nil {
		return nil, nil, err
	}
	c := constructors[name.Text]
	if c == nil {
		return nil, nil, &ParseError{Col: name.Col, Msg: "unknown constructor " + strconv.Quote(name.Text)}
	}
	if len(args) != len(c.params) {
		return nil, nil, &ParseError{Col: name.Col, Msg: "cannot call " + name.Text + " with " + strconv.Itoa(len(args)) + " arguments"}
	}
	for i, k := range c.params {
		if err := checkArg(args[i], k, i); err != nil {
			return nil, nil, atcol(err, name.Col)
		}
	}
	v, err := c.f(args)
	if err != nil {
		return nil, nil, atcol(err, name.Col)
	}
	return v, rest, nil
}

// args parses a comma-separated argument list through the closing bracket.
// toks starts after open.
func (p *parser) args(toks []Token, open Token) ([]Value, []Token, error) {
	if len(toks) > 0 && toks[0].Kind == TokenClose {
		return nil, toks[1:], nil
	}
	var args []Value
	for {
		v, rest, err := p.expr(toks)
		if err != nil {
			return nil, nil, err
		}
		args = append(args, v)
		if len(rest) == 0 {
			return nil, nil, &ParseError{Col: open.Col, Msg: "open bracket ( with no close bracket"}
		}
		switch rest[0].Kind {
		case TokenClose:
			return args, rest[1:], nil
		case TokenSep:
			toks = rest[1:]
		default:
			return nil, nil, p.unexpected(rest, "expected , or )")
		}
	}
}

// unexpected creates a ParseError for the first of toks, or for the end of
// input if toks is empty.
func (p *parser) unexpected(toks []Token, want string) error {
	if len(toks) == 0 {
		msg := "unexpected end of expression"
		if want != "" {
			msg += ": " + want
		}
		return &ParseError{Col: p.end, Msg: msg}
	}
	msg := "unexpected token " + strconv.Quote(toks[0].Text)
	if want != "" {
		msg += ": " + want
	}
	return &ParseError{Col: toks[0].Col, Msg: msg}
}

// atcol places an error without a position at col.
func atcol(err error, col int) error {
	switch e := err.(type) {
	case *TypeError:
		if e.Col == 0 {
			e.Col = col
		}
	case *ValueError:
		if e.Col == 0 {
			e.Col = col
		}
	case *DomainError:
		if e.Col == 0 {
			e.Col = col
		}
	}
	return err
}

type constructor struct {
	params []Kind
	f      func(args []Value) (Value, error)
}

// constructors are the shape types that can be built with TypeName(a, b).
// A KindNone parameter accepts any Shape.
var constructors = map[string]*constructor{
	"Point": {
		params: []Kind{KindNumber, KindNumber},
		f: func(args []Value) (Value, error) {
			return Pt(float64(args[0].(Number)), float64(args[1].(Number))), nil
		},
	},
	"Line": {
		params: []Kind{KindPoint, KindPoint},
		f: func(args []Value) (Value, error) {
			return Line{P1: args[0].(Point), P2: args[1].(Point)}, nil
		},
	},
	"Circle": {
		params: []Kind{KindPoint, KindNumber},
		f: func(args []Value) (Value, error) {
			return NewCircle(args[0].(Point), float64(args[1].(Number)))
		},
	},
	"Rectangle": {
		params: []Kind{KindPoint, KindPoint},
		f: func(args []Value) (Value, error) {
			return NewRectangle(args[0].(Point), args[1].(Point)), nil
		},
	},
	"Union": {
		params: []Kind{KindNone, KindNone},
		f: func(args []Value) (Value, error) {
			return Union{A: args[0].(Shape), B: args[1].(Shape)}, nil
		},
	},
	"Intersection": {
		params: []Kind{KindNone, KindNone},
		f: func(args []Value) (Value, error) {
			return Intersection{A: args[0].(Shape), B: args[1].(Shape)}, nil
		},
	},
}
