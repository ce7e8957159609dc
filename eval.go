package arith

import (
	"errors"
	"io"
	"math"
	"strconv"
	"strings"
)

// Step is one application of a binary operator during evaluation.
type Step struct {
	// Col is the position of the operator in the normalized expression.
	Col int
	// Op is the operator, one of the bytes in Operators.
	Op byte
	// Left and Right are the operands.
	Left, Right float64
	// Result is the value the operator produced.
	Result float64
}

func (s Step) String() string {
	f := func(x float64) string { return strconv.FormatFloat(x, 'g', -1, 64) }
	return f(s.Left) + " " + string(s.Op) + " " + f(s.Right) + " = " + f(s.Result)
}

// EvalOption is an option for evaluating an expression.
type EvalOption func(*evaluator)

// WithTrace calls f with each operator application in the order the operators
// are applied. f is called before the result is checked, so the last step
// traced for a failed division is the division that failed.
func WithTrace(f func(Step)) EvalOption {
	return func(e *evaluator) {
		e.trace = f
	}
}

// evaluator holds the stacks for evaluating a single expression. It is never
// shared between evaluations.
type evaluator struct {
	// vals is the operand stack.
	vals []float64
	// ops is the operator stack. It holds operator and open paren tokens.
	ops []token
	// trace, if not nil, receives each operator application.
	trace func(Step)
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// fn applies the operator.
	fn func(l, r float64) float64
}

// moreBinding returns whether p must be applied before than when p follows
// than. Every operator is left-associative, so equal precedence does not bind
// more tightly.
func (p operator) moreBinding(than operator) bool {
	return p.prec > than.prec
}

// binop gets the binary operator for an operator token. If there is no such
// operator, the result has a nil fn.
func binop(text string) operator {
	switch text {
	case "+":
		return operator{1, func(l, r float64) float64 { return l + r }}
	case "-":
		return operator{1, func(l, r float64) float64 { return l - r }}
	case "*":
		return operator{2, func(l, r float64) float64 { return l * r }}
	case "/":
		return operator{2, divide}
	default:
		return operator{}
	}
}

// divide divides l by r. Division by zero, including negative zero, is
// always +Inf, even for 0/0, so that it is caught as an invalid result.
func divide(l, r float64) float64 {
	if r == 0 {
		return math.Inf(1)
	}
	return l / r
}

// push pushes a value onto the operand stack.
func (e *evaluator) push(v float64) {
	e.vals = append(e.vals, v)
}

// pop removes the top of the operand stack. col is the position reported if
// the stack is empty.
func (e *evaluator) pop(col int) (float64, error) {
	if len(e.vals) == 0 {
		return 0, &StackError{Col: col, Stack: "operand"}
	}
	v := e.vals[len(e.vals)-1]
	e.vals = e.vals[:len(e.vals)-1]
	return v, nil
}

// top returns the top of the operator stack, or a token with kind tokenNone if
// the stack is empty.
func (e *evaluator) top() token {
	if len(e.ops) == 0 {
		return token{}
	}
	return e.ops[len(e.ops)-1]
}

// apply pops an operator and the top two operands, then pushes the result.
// col is the position of the token which caused the application.
func (e *evaluator) apply(col int) error {
	tok := e.top()
	if tok.kind != tokenOp {
		return &StackError{Col: col, Stack: "operator", Len: len(e.ops)}
	}
	e.ops = e.ops[:len(e.ops)-1]
	op := binop(tok.text)
	if op.fn == nil {
		panic("arith: unknown operator on stack: " + tok.String())
	}
	r, err := e.pop(tok.pos)
	if err != nil {
		return err
	}
	l, err := e.pop(tok.pos)
	if err != nil {
		return err
	}
	v := op.fn(l, r)
	if e.trace != nil {
		e.trace(Step{Col: tok.pos, Op: tok.text[0], Left: l, Right: r, Result: v})
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return &ResultError{Col: tok.pos, Op: tok.text, Value: v}
	}
	e.push(v)
	return nil
}

// number parses a number token.
func number(tok token) (float64, error) {
	v, err := strconv.ParseFloat(tok.text, 64)
	if err != nil {
		// Out-of-range numerals are reported the same as syntax errors.
		var ne *strconv.NumError
		if errors.As(err, &ne) {
			err = ne.Err
		}
		return 0, &NumberError{Col: tok.pos, Text: tok.text, Err: err}
	}
	return v, nil
}

// run evaluates a normalized expression that has passed Check.
func (e *evaluator) run(expr string) (float64, error) {
	scan := scanner{src: expr}
	for {
		tok, err := scan.next()
		if err != nil {
			return 0, err
		}
		switch tok.kind {
		case tokenNum:
			v, err := number(tok)
			if err != nil {
				return 0, err
			}
			e.push(v)
		case tokenOpen:
			e.ops = append(e.ops, tok)
		case tokenClose:
			for e.top().kind != tokenOpen {
				if len(e.ops) == 0 {
					return 0, &StackError{Col: tok.pos, Stack: "operator"}
				}
				if err := e.apply(tok.pos); err != nil {
					return 0, err
				}
			}
			e.ops = e.ops[:len(e.ops)-1]
		case tokenOp:
			prec := binop(tok.text)
			for t := e.top(); t.kind == tokenOp && !prec.moreBinding(binop(t.text)); t = e.top() {
				if err := e.apply(tok.pos); err != nil {
					return 0, err
				}
			}
			e.ops = append(e.ops, tok)
		case tokenEOF:
			for len(e.ops) > 0 {
				if err := e.apply(tok.pos); err != nil {
					return 0, err
				}
			}
			if len(e.vals) != 1 {
				return 0, &StackError{Col: tok.pos, Stack: "operand", Len: len(e.vals)}
			}
			return e.vals[0], nil
		default:
			panic("arith: unknown token: " + tok.String())
		}
	}
}

// EvalString evaluates a statement and returns its value. Whitespace in the
// statement is ignored. The error, if any, wraps one of ErrEmpty,
// ErrMalformed, ErrNumber, ErrInvalidResult, or ErrInternal.
func EvalString(statement string, opts ...EvalOption) (float64, error) {
	expr := Normalize(statement)
	if expr == "" {
		return 0, ErrEmpty
	}
	if err := Check(expr); err != nil {
		return 0, err
	}
	var e evaluator
	for _, opt := range opts {
		opt(&e)
	}
	return e.run(expr)
}

// Eval reads a statement to the end of src and evaluates it.
func Eval(src io.RuneScanner, opts ...EvalOption) (float64, error) {
	var b strings.Builder
	for {
		r, _, err := src.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return 0, err
		}
		b.WriteRune(r)
	}
	return EvalString(b.String(), opts...)
}
