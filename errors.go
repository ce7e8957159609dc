package arith

import (
	"errors"
	"strconv"
)

// Failure kinds. Every error returned by this package wraps exactly one of
// these, so callers can classify failures with errors.Is.
var (
	// ErrEmpty indicates a statement with nothing in it.
	ErrEmpty = errors.New("empty statement")
	// ErrMalformed indicates an invalid character, unbalanced parentheses, or
	// consecutive operators.
	ErrMalformed = errors.New("malformed expression")
	// ErrNumber indicates a numeral that does not parse as a float64.
	ErrNumber = errors.New("invalid number")
	// ErrInvalidResult indicates a computation that produced an infinity or
	// NaN, including any division by zero.
	ErrInvalidResult = errors.New("result is not a finite number")
	// ErrInternal indicates a stack inconsistency during evaluation. It is
	// reachable only through forms that Check deliberately permits, like a
	// leading operator.
	ErrInternal = errors.New("inconsistent evaluation")
)

// CharError is an error indicating a character that cannot appear in an
// expression. It implements InputError.
type CharError struct {
	// Col is the position of the character.
	Col int
	// Char is the offending character.
	Char rune
}

func (err *CharError) Error() string {
	return errpos(err.Col, "invalid character "+strconv.QuoteRune(err.Char))
}

func (err *CharError) Pos() int {
	return err.Col
}

func (err *CharError) Unwrap() error {
	return ErrMalformed
}

// BracketError is an error indicating unbalanced parentheses. It implements
// InputError.
type BracketError struct {
	// Col is the position of the unmatched parenthesis.
	Col int
	// Left is the opening parenthesis if it was never closed.
	Left string
	// Right is the closing parenthesis if it was never opened.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close paren "+err.Right+" with no open paren")
	}
	return errpos(err.Col, "open paren "+err.Left+" with no close paren")
}

func (err *BracketError) Pos() int {
	return err.Col
}

func (err *BracketError) Unwrap() error {
	return ErrMalformed
}

// OperatorError is an error indicating an operator immediately following
// another operator. It implements InputError.
type OperatorError struct {
	// Col is the position of the second operator.
	Col int
	// Prev is the first operator.
	Prev string
	// Operator is the operator that followed it.
	Operator string
}

func (err *OperatorError) Error() string {
	return errpos(err.Col, "operator "+strconv.Quote(err.Operator)+" follows operator "+strconv.Quote(err.Prev))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

func (err *OperatorError) Unwrap() error {
	return ErrMalformed
}

// NumberError is an error indicating a numeral that could not be parsed. It
// implements InputError.
type NumberError struct {
	// Col is the position of the first character of the numeral.
	Col int
	// Text is the numeral.
	Text string
	// Err is the error from strconv.
	Err error
}

func (err *NumberError) Error() string {
	return errpos(err.Col, "invalid number "+strconv.Quote(err.Text))
}

func (err *NumberError) Pos() int {
	return err.Col
}

func (err *NumberError) Unwrap() []error {
	return []error{ErrNumber, err.Err}
}

// StackError is an error indicating that an operand or operator was missing
// from, or left over on, an evaluation stack. It implements InputError.
type StackError struct {
	// Col is the position of the token being processed, or one past the end
	// of the input once it is exhausted.
	Col int
	// Stack names the stack: "operand" or "operator".
	Stack string
	// Len is the number of items on the stack when the error occurred.
	Len int
}

func (err *StackError) Error() string {
	if err.Len == 0 {
		return errpos(err.Col, "missing "+err.Stack)
	}
	return errpos(err.Col, strconv.Itoa(err.Len)+" "+err.Stack+"s on stack")
}

func (err *StackError) Pos() int {
	return err.Col
}

func (err *StackError) Unwrap() error {
	return ErrInternal
}

// ResultError is an error indicating an infinite or NaN value.
type ResultError struct {
	// Col is the position of the operator that produced the value, or 0 if
	// the value was not produced by an operator in an expression.
	Col int
	// Op is the operator, if any.
	Op string
	// Value is the offending value.
	Value float64
}

func (err *ResultError) Error() string {
	v := strconv.FormatFloat(err.Value, 'g', -1, 64)
	if err.Op == "" {
		return "result is " + v
	}
	if err.Op == "/" {
		return errpos(err.Col, "division by zero or overflow gives "+v)
	}
	return errpos(err.Col, "operator "+err.Op+" gives "+v)
}

func (err *ResultError) Unwrap() error {
	return ErrInvalidResult
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input text implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based column, in the normalized expression, of the
	// token that caused the error.
	Pos() int
}

var (
	_ InputError = (*CharError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*NumberError)(nil)
	_ InputError = (*StackError)(nil)
)
