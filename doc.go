// Package infix implements a floating-point calculator for infix arithmetic.
//
// Expressions are made of non-negative decimal literals, the binary operators
// + - * / ^, and parentheses. Multiplication and division bind more tightly
// than addition and subtraction, and exponentiation more tightly still. "^"
// is right-associative, so "2^3^2" is "2^(3^2)"; the others are
// left-associative, so "8-3-2" is "(8-3)-2". There is no unary minus.
//
// Evaluation runs in three stages, each of which is exported: Tokenize splits
// the text into tokens, ToPostfix reorders them with the shunting-yard
// algorithm, and EvalPostfix computes the result with an operand stack.
// Evaluate runs all three. Every function is safe for concurrent use.
//
package infix
