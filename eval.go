package infix

import "math"

// EvalPostfix evaluates an expression in postfix order. The expression need
// not come from ToPostfix; tokens are checked as they are evaluated.
func EvalPostfix(p Postfix) (float64, error) {
	stack := make([]float64, 0, len(p)/2+1)
	for _, tok := range p {
		switch tok.Kind {
		case TokenNum:
			v, ok := num(tok)
			if !ok {
				return 0, errat(MissingOperand, tok)
			}
			stack = append(stack, v)
		case TokenOp:
			if len(stack) < 2 {
				return 0, errat(MissingOperand, tok)
			}
			// a is the right operand as written in infix.
			a := stack[len(stack)-1]
			b := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			r, err := apply(tok, a, b)
			if err != nil {
				return 0, err
			}
			stack = append(stack, r)
		default:
			return 0, errat(MissingOperator, tok)
		}
	}
	if len(stack) != 1 {
		return 0, &Error{Kind: MissingOperator}
	}
	return stack[0], nil
}

// apply computes b op a.
func apply(op Token, a, b float64) (float64, error) {
	switch op.Text {
	case "+":
		return a + b, nil
	case "-":
		return b - a, nil
	case "*":
		return a * b, nil
	case "/":
		if a == 0 {
			return 0, errat(DivisionByZero, op)
		}
		return b / a, nil
	case "^":
		return math.Pow(b, a), nil
	default:
		return 0, errat(OperatorNotFound, op)
	}
}

// Compile tokenizes an expression and converts it to postfix order without
// evaluating it.
func Compile(expr string, opts ...Option) (Postfix, error) {
	c := newconfig(opts)
	toks := Tokenize(expr)
	if c.implicit {
		toks = ImplicitMul(toks)
	}
	return ToPostfix(toks)
}

// Evaluate computes the value of an infix expression. The empty string
// evaluates to NaN with no error. Otherwise, the result is the value of the
// expression or the first error encountered while tokenizing, converting, or
// evaluating it.
func Evaluate(expr string, opts ...Option) (float64, error) {
	if expr == "" {
		return math.NaN(), nil
	}
	p, err := Compile(expr, opts...)
	if err != nil {
		return 0, err
	}
	return EvalPostfix(p)
}
