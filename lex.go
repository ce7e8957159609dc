package arith

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

type token struct {
	text string
	kind tokenKind
	pos  int
}

func (t token) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is a decimal number.
	tokenNum
	// tokenOp is a binary operator.
	tokenOp
	// tokenOpen is an open parenthesis.
	tokenOpen
	// tokenClose is a close parenthesis.
	tokenClose
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenEOF:
		return "EOF"
	case tokenNum:
		return "Num"
	case tokenOp:
		return "Op"
	case tokenOpen:
		return "Open"
	case tokenClose:
		return "Close"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Operators contains the bytes which are considered to be operators.
const Operators = "+-*/"

// DecimalPoint separates the integer and fractional parts of a number.
const DecimalPoint = '.'

// Parentheses group subexpressions.
const (
	OpenParen  = '('
	CloseParen = ')'
)

func isOperator(c rune) bool {
	return c < 0x80 && strings.IndexByte(Operators, byte(c)) >= 0
}

func isNumeric(c rune) bool {
	return '0' <= c && c <= '9' || c == DecimalPoint
}

// Normalize removes all whitespace from a statement.
func Normalize(statement string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, statement)
}

// scanner produces tokens from a normalized expression on demand. Positions
// are 1-based byte offsets, which equal columns for any input that passes
// Check.
type scanner struct {
	src string
	off int
}

// next scans the next token. Once the input is exhausted, every call returns
// an EOF token positioned just past the end of the input.
func (s *scanner) next() (token, error) {
	tok := token{pos: s.off + 1}
	if s.off >= len(s.src) {
		tok.kind = tokenEOF
		return tok, nil
	}
	c := rune(s.src[s.off])
	switch {
	case isNumeric(c):
		start := s.off
		for s.off < len(s.src) && isNumeric(rune(s.src[s.off])) {
			s.off++
		}
		tok.text = s.src[start:s.off]
		tok.kind = tokenNum
		return tok, nil
	case isOperator(c):
		tok.kind = tokenOp
	case c == OpenParen:
		tok.kind = tokenOpen
	case c == CloseParen:
		tok.kind = tokenClose
	default:
		r, _ := utf8.DecodeRuneInString(s.src[s.off:])
		return tok, &CharError{Col: tok.pos, Char: r}
	}
	tok.text = s.src[s.off : s.off+1]
	s.off++
	return tok, nil
}
