package arith

// Check reports the first reason a normalized expression is malformed, or nil
// if it is well-formed. The expression must already have had its whitespace
// removed by Normalize; a space is an invalid character here.
//
// Check rejects characters other than digits, the decimal point, operators,
// and parentheses; a close paren with no open paren before it; an open paren
// that is never closed; and an operator immediately following another
// operator. It does not reject an operator at the start or end of the
// expression or next to a parenthesis. Those forms fail during evaluation
// instead.
func Check(expr string) error {
	// opens holds the columns of unclosed open parens. Its length is the
	// nesting depth.
	var opens []int
	var prev rune
	col := 0
	for _, c := range expr {
		col++
		switch {
		case isNumeric(c):
		case c == OpenParen:
			opens = append(opens, col)
		case c == CloseParen:
			if len(opens) == 0 {
				return &BracketError{Col: col, Right: string(CloseParen)}
			}
			opens = opens[:len(opens)-1]
		case isOperator(c):
			if isOperator(prev) {
				return &OperatorError{Col: col, Prev: string(prev), Operator: string(c)}
			}
		default:
			return &CharError{Col: col, Char: c}
		}
		prev = c
	}
	if len(opens) != 0 {
		return &BracketError{Col: opens[len(opens)-1], Left: string(OpenParen)}
	}
	return nil
}

// Validate returns whether a normalized expression is well-formed.
func Validate(expr string) bool {
	return Check(expr) == nil
}
