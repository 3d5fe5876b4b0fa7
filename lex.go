package geocalc

import (
	"strconv"
	"strings"
)

// Token is a lexical token of an expression.
type Token struct {
	Text string
	Kind TokenKind
	// Col is the 1-based column of the first character of the token.
	Col int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Col)
}

// TokenKind is the lexical class of a Token.
type TokenKind int8

const (
	tokenNone TokenKind = iota
	// TokenNum is a number, possibly signed.
	TokenNum
	// TokenIdent is a variable, constructor, or method name.
	TokenIdent
	// TokenOp is one of the binary operators.
	TokenOp
	// TokenOpen is (.
	TokenOpen
	// TokenClose is ).
	TokenClose
	// TokenSep is the argument separator ,.
	TokenSep
	// TokenDot introduces a method call.
	TokenDot
	// TokenAssign is =.
	TokenAssign
)

var tokennames = [...]string{"None", "Num", "Ident", "Op", "Open", "Close", "Sep", "Dot", "Assign"}

func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(tokennames) {
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
	return tokennames[k]
}

// Operators contains the characters which are binary operators.
const Operators = "+-*/"

// Tokenize splits src into tokens. The entire input is scanned before
// returning; the first invalid character produces a *LexError.
func Tokenize(src string) ([]Token, error) {
	var toks []Token
	i := 0
	for i < len(src) {
		c := src[i]
		col := i + 1
		switch {
		case isSpace(c):
			i++
			continue
		case c == '(':
			toks = append(toks, Token{Text: "(", Kind: TokenOpen, Col: col})
		case c == ')':
			toks = append(toks, Token{Text: ")", Kind: TokenClose, Col: col})
		case c == ',':
			toks = append(toks, Token{Text: ",", Kind: TokenSep, Col: col})
		case c == '=':
			toks = append(toks, Token{Text: "=", Kind: TokenAssign, Col: col})
		case isIdentStart(c):
			n := scanIdent(src[i:])
			toks = append(toks, Token{Text: src[i : i+n], Kind: TokenIdent, Col: col})
			i += n
			continue
		case isDigit(c), c == '.', c == '+', c == '-':
			// A sign directly after a value is an operator, as is a sign or
			// dot that doesn't begin a number.
			if n := scanNum(src[i:]); n > 0 && (isDigit(c) || !endsValue(toks)) {
				toks = append(toks, Token{Text: src[i : i+n], Kind: TokenNum, Col: col})
				i += n
				continue
			}
			if c == '.' {
				toks = append(toks, Token{Text: ".", Kind: TokenDot, Col: col})
			} else {
				toks = append(toks, Token{Text: src[i : i+1], Kind: TokenOp, Col: col})
			}
		case strings.IndexByte(Operators, c) >= 0:
			toks = append(toks, Token{Text: src[i : i+1], Kind: TokenOp, Col: col})
		default:
			r := []rune(src[i:])[0]
			return nil, &LexError{Char: string(r), Col: len([]rune(src[:i])) + 1}
		}
		i++
	}
	return toks, nil
}

// endsValue reports whether the last token scanned can end an operand, so
// that a following sign must be a binary operator.
func endsValue(toks []Token) bool {
	if len(toks) == 0 {
		return false
	}
	switch toks[len(toks)-1].Kind {
	case TokenNum, TokenIdent, TokenClose:
		return true
	}
	return false
}

// scanNum returns the length of the longest prefix of s matching
// [+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?, or 0 if there is none.
func scanNum(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	d := digits(s[i:])
	i += d
	if i < len(s) && s[i] == '.' {
		f := digits(s[i+1:])
		if d == 0 && f == 0 {
			return 0
		}
		i += 1 + f
	} else if d == 0 {
		return 0
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		// The exponent marker belongs to the number only if digits follow.
		if x := digits(s[j:]); x > 0 {
			i = j + x
		}
	}
	return i
}

func scanIdent(s string) int {
	i := 1
	for i < len(s) && (isIdentStart(s[i]) || isDigit(s[i])) {
		i++
	}
	return i
}

func digits(s string) int {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return i
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isIdentStart(c byte) bool {
	return c == '_' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// IsIdent reports whether s is a valid variable name.
func IsIdent(s string) bool {
	return s != "" && isIdentStart(s[0]) && scanIdent(s) == len(s)
}
