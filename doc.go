// Package arith evaluates infix arithmetic statements.
//
// A statement is made of decimal numbers, the binary operators + - * /,
// parentheses, and any amount of whitespace, e.g. "(1 + 38) * 4.5 - 1 / 2.".
// Multiplication and division bind tighter than addition and subtraction, and
// operators of equal precedence associate to the left, so "8-3-2" is 3.
// There are no unary operators: "-2" is not a number.
//
// Statements are checked before any arithmetic happens. Evaluation uses a
// stack of operands and a stack of pending operators, both local to a single
// call, so any number of goroutines may evaluate statements at once.
//
// Results are formatted without a decimal point when they are integral.
// Division by zero, or any other computation that ends in an infinity or NaN,
// produces no result.
package arith
