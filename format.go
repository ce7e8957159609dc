package arith

import (
	"math"
	"strconv"
)

// Format renders a result. Integral values are written without a decimal
// point or exponent, and negative zero is written as "0". Other values use
// the shortest representation that parses back to the same float64.
// Infinities and NaN produce a *ResultError.
func Format(v float64) (string, error) {
	switch {
	case math.IsInf(v, 0), math.IsNaN(v):
		return "", &ResultError{Value: v}
	case v == 0:
		return "0", nil
	case v == math.Trunc(v):
		return strconv.FormatFloat(v, 'f', 0, 64), nil
	default:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	}
}
