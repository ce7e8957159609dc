package arith

import "fmt"

// Calculate evaluates a statement and formats its result. If evaluation
// fails for any reason, including a panic, the result is empty and the error
// wraps one of the failure kinds.
func Calculate(statement string, opts ...EvalOption) (result string, err error) {
	defer func() {
		if r := recover(); r != nil {
			result, err = "", fmt.Errorf("%w: %v", ErrInternal, r)
		}
	}()
	v, err := EvalString(statement, opts...)
	if err != nil {
		return "", err
	}
	return Format(v)
}

// Evaluate evaluates a statement and formats its result. ok is false if the
// statement has no result, for whatever reason.
func Evaluate(statement string) (result string, ok bool) {
	r, err := Calculate(statement)
	return r, err == nil
}

// EvaluateNullable is like Evaluate, but a nil statement or a failure is a
// nil result.
func EvaluateNullable(statement *string) *string {
	if statement == nil {
		return nil
	}
	r, ok := Evaluate(*statement)
	if !ok {
		return nil
	}
	return &r
}
