package geocalc

import "strconv"

// LexError indicates a character that cannot start any token. It implements
// InputError.
type LexError struct {
	// Char is the offending character.
	Char string
	// Col is the column of the character.
	Col int
}

func (err *LexError) Error() string {
	return errpos(err.Col, "invalid character "+strconv.Quote(err.Char))
}

func (err *LexError) Pos() int {
	return err.Col
}

// ParseError indicates input that does not follow the grammar: mismatched
// parentheses, wrong constructor arity, unknown constructors, or unexpected
// and trailing tokens. It implements InputError.
type ParseError struct {
	// Col is the position of the token where parsing failed.
	Col int
	// Msg describes the problem.
	Msg string
}

func (err *ParseError) Error() string {
	return errpos(err.Col, err.Msg)
}

func (err *ParseError) Pos() int {
	return err.Col
}

// NameError is an error from a lookup for a variable that is missing from the
// environment. It implements InputError.
type NameError struct {
	// Name is the name that was missing.
	Name string
	// Col is the position of the name.
	Col int
}

func (err *NameError) Error() string {
	return errpos(err.Col, "undefined variable: "+strconv.Quote(err.Name))
}

func (err *NameError) Pos() int {
	return err.Col
}

// MethodError indicates a call to a method that a kind of value does not
// have. It implements InputError.
type MethodError struct {
	Col    int
	Kind   Kind
	Method string
}

func (err *MethodError) Error() string {
	return errpos(err.Col, err.Kind.String()+" has no method "+strconv.Quote(err.Method))
}

func (err *MethodError) Pos() int {
	return err.Col
}

// TypeError indicates an operator or call applied to values of the wrong
// kind. It implements InputError.
type TypeError struct {
	Col int
	Msg string
	// Err is the underlying cause, if any.
	Err error
}

func (err *TypeError) Error() string {
	return errpos(err.Col, err.Msg)
}

func (err *TypeError) Pos() int {
	return err.Col
}

func (err *TypeError) Unwrap() error {
	return err.Err
}

// ValueError indicates a well-typed but invalid value, such as a malformed
// variable name in an assignment or a negative radius. It implements
// InputError.
type ValueError struct {
	Col int
	Msg string
}

func (err *ValueError) Error() string {
	return errpos(err.Col, err.Msg)
}

func (err *ValueError) Pos() int {
	return err.Col
}

// DomainError is returned when an arithmetic operator or numeric method is
// applied to an argument outside its domain. It implements InputError.
type DomainError struct {
	Col int
	// X is the out-of-domain argument.
	X float64
	// Func is a name identifying the operation.
	Func string
}

func (err *DomainError) Error() string {
	return errpos(err.Col, FormatFloat(err.X)+" outside domain of "+err.Func)
}

func (err *DomainError) Pos() int {
	return err.Col
}

// UnsupportedError is returned by Distance for pairs of shapes that have no
// defined distance.
type UnsupportedError struct {
	Op   string
	A, B Kind
}

func (err *UnsupportedError) Error() string {
	return err.Op + " between " + err.A.String() + " and " + err.B.String() + " is not supported"
}

// errpos is a shortcut to create an error message with a position. Errors
// without a position have no prefix.
func errpos(pos int, msg string) string {
	if pos <= 0 {
		return msg
	}
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based column of the token that caused the error, or 0
	// if the error is not tied to a column.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*ParseError)(nil)
	_ InputError = (*NameError)(nil)
	_ InputError = (*MethodError)(nil)
	_ InputError = (*TypeError)(nil)
	_ InputError = (*ValueError)(nil)
	_ InputError = (*DomainError)(nil)
)
