package infix

import "strconv"

// ErrorKind classifies evaluation errors.
type ErrorKind int

const (
	// MissingOperand means an operator lacked operands or a literal was not a
	// valid number.
	MissingOperand ErrorKind = iota + 1
	// DivisionByZero means a divisor was exactly zero.
	DivisionByZero
	// MissingOperator means operands were left without an operator to join
	// them, or parentheses were unbalanced.
	MissingOperator
	// OperatorNotFound means a symbol that is not in Operators was used as an
	// operator. Expressions produced by Tokenize never cause it.
	OperatorNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case MissingOperand:
		return "MissingOperand"
	case DivisionByZero:
		return "DivisionByZero"
	case MissingOperator:
		return "MissingOperator"
	case OperatorNotFound:
		return "OperatorNotFound"
	default:
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Message returns the user-facing message for the error kind.
func (k ErrorKind) Message() string {
	switch k {
	case MissingOperand:
		return "Missing or bad operand"
	case DivisionByZero:
		return "Division with 0"
	case MissingOperator:
		return "Missing operator or parenthesis"
	case OperatorNotFound:
		return "Operator not found"
	default:
		return "unknown error"
	}
}

// Error is an error from converting or evaluating an expression. It
// implements InputError.
type Error struct {
	// Kind is the error classification.
	Kind ErrorKind
	// Col is the position of the token that caused the error, or 0 if the
	// error is not attributable to one token, e.g. leftover operands.
	Col int
	// Token is the text of the token that caused the error, if any.
	Token string
}

// Error returns the message of the error's kind. Position information is
// available through Pos and Token.
func (err *Error) Error() string {
	return err.Kind.Message()
}

func (err *Error) Pos() int {
	return err.Col
}

// Is reports whether target is an *Error of the same kind, so that
// errors.Is(err, ErrDivisionByZero) works regardless of position.
func (err *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t != nil && t.Kind == err.Kind
}

// Sentinel errors for use with errors.Is.
var (
	ErrMissingOperand   error = &Error{Kind: MissingOperand}
	ErrDivisionByZero   error = &Error{Kind: DivisionByZero}
	ErrMissingOperator  error = &Error{Kind: MissingOperator}
	ErrOperatorNotFound error = &Error{Kind: OperatorNotFound}
)

// errat creates an error for a token.
func errat(kind ErrorKind, tok Token) *Error {
	return &Error{Kind: kind, Col: tok.Pos, Token: tok.Text}
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the rune column of the token
	// that caused the error, or 0 if there is no such token.
	Pos() int
}

var _ InputError = (*Error)(nil)
