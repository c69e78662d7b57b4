package infix

import "strings"

// Postfix is an expression in postfix order. It contains only TokenNum and
// TokenOp tokens when produced by ToPostfix.
type Postfix []Token

// String formats the expression as space-separated reverse Polish notation.
func (p Postfix) String() string {
	var b strings.Builder
	for i, tok := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.Text)
	}
	return b.String()
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
}

// popsFor returns whether an operator top on the operator stack must be moved
// to the output before pushing op.
func (top operator) popsFor(op operator) bool {
	if top.prec != op.prec {
		return top.prec > op.prec
	}
	return !op.right
}

// binop gets the operator for a token string.
func binop(text string) (operator, error) {
	switch text {
	case "+", "-":
		return operator{2, false}, nil
	case "*", "/":
		return operator{3, false}, nil
	case "^":
		return operator{4, true}, nil
	default:
		return operator{}, &Error{Kind: OperatorNotFound, Token: text}
	}
}

// ToPostfix converts a sequence of infix tokens to postfix order using the
// shunting-yard algorithm. Literal tokens are checked to be valid numbers.
func ToPostfix(toks []Token) (Postfix, error) {
	out := make(Postfix, 0, len(toks))
	var stack []Token
	for _, tok := range toks {
		switch tok.Kind {
		case TokenNum:
			if _, ok := num(tok); !ok {
				return nil, errat(MissingOperand, tok)
			}
			out = append(out, tok)
		case TokenOp:
			op, err := binop(tok.Text)
			if err != nil {
				return nil, errat(OperatorNotFound, tok)
			}
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.Kind != TokenOp {
					break
				}
				// Operators on the stack were checked when pushed.
				p, _ := binop(top.Text)
				if !p.popsFor(op) {
					break
				}
				out = append(out, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
		case TokenOpen:
			stack = append(stack, tok)
		case TokenClose:
			for {
				if len(stack) == 0 {
					return nil, errat(MissingOperator, tok)
				}
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.Kind == TokenOpen {
					break
				}
				out = append(out, top)
			}
		default:
			// Not produced by Tokenize, but treat it like any other token
			// that can't be an operand.
			return nil, errat(MissingOperand, tok)
		}
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.Kind == TokenOpen {
			return nil, errat(MissingOperator, top)
		}
		out = append(out, top)
	}
	return out, nil
}
