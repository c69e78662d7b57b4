package infix

import (
	"strconv"
	"strings"
	"unicode"
)

// Token is a lexical token of an infix expression.
type Token struct {
	// Text is the source text of the token.
	Text string
	// Kind is the token's kind.
	Kind TokenKind
	// Pos is the rune column of the first rune of the token, counting from 1.
	Pos int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// TokenKind identifies the kind of a token.
type TokenKind int

const (
	TokenNone TokenKind = iota
	// TokenNum is a literal operand. Its text is not necessarily a valid
	// number.
	TokenNum
	// TokenOp is one of the runes in Operators.
	TokenOp
	// TokenOpen is an open parenthesis.
	TokenOpen
	// TokenClose is a close parenthesis.
	TokenClose
)

func (k TokenKind) String() string {
	switch k {
	case TokenNone:
		return "None"
	case TokenNum:
		return "Num"
	case TokenOp:
		return "Op"
	case TokenOpen:
		return "Open"
	case TokenClose:
		return "Close"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Operators contains the runes which are considered to be operators.
const Operators = "+-*/^"

func byteidcs(s string) []string {
	v := make([]string, len(s))
	for i, r := range s {
		v[i] = string(r)
	}
	return v
}

var operstrs = byteidcs(Operators)

// Tokenize splits an expression into tokens. Runes other than whitespace,
// operators, and parentheses are collected into literal tokens without
// checking that they form numbers; the converter rejects bad literals.
// Tokenize never fails.
func Tokenize(text string) []Token {
	var (
		toks []Token
		buf  strings.Builder
		// start is the column of the first rune in buf.
		start int
	)
	flush := func() {
		if buf.Len() == 0 {
			return
		}
		toks = append(toks, Token{Text: buf.String(), Kind: TokenNum, Pos: start})
		buf.Reset()
	}
	col := 0
	for _, r := range text {
		col++
		switch {
		case unicode.IsSpace(r):
			flush()
		case r == '(':
			flush()
			toks = append(toks, Token{Text: "(", Kind: TokenOpen, Pos: col})
		case r == ')':
			flush()
			toks = append(toks, Token{Text: ")", Kind: TokenClose, Pos: col})
		default:
			if k := strings.IndexRune(Operators, r); k >= 0 {
				flush()
				toks = append(toks, Token{Text: operstrs[k], Kind: TokenOp, Pos: col})
				continue
			}
			if buf.Len() == 0 {
				start = col
			}
			buf.WriteRune(r)
		}
	}
	flush()
	return toks
}

// ImplicitMul inserts multiplication operators between a number or closing
// parenthesis followed by an opening parenthesis, and between a closing
// parenthesis followed by a number, so that "2(3+4)" and "(1)(2)" are
// products. Adjacent numbers are left alone. The inserted operators have the
// position of the token that follows them.
func ImplicitMul(toks []Token) []Token {
	if len(toks) < 2 {
		return toks
	}
	r := make([]Token, 0, len(toks)+len(toks)/2)
	r = append(r, toks[0])
	for i := 1; i < len(toks); i++ {
		prev, tok := toks[i-1].Kind, toks[i].Kind
		if (prev == TokenNum || prev == TokenClose) && tok == TokenOpen || prev == TokenClose && tok == TokenNum {
			r = append(r, Token{Text: "*", Kind: TokenOp, Pos: toks[i].Pos})
		}
		r = append(r, toks[i])
	}
	return r
}

// scanNum checks that s is a non-negative decimal literal: digits with at most
// one decimal point and at least one digit.
func scanNum(s string) bool {
	var dig, dot bool
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case '0' <= c && c <= '9':
			dig = true
		case c == '.':
			if dot {
				return false
			}
			dot = true
		default:
			return false
		}
	}
	return dig
}

// num parses a literal token. The result is false if the token's text is not
// a valid literal.
func num(tok Token) (float64, bool) {
	if !scanNum(tok.Text) {
		return 0, false
	}
	// After scanNum, ParseFloat can only fail with a range error, in which
	// case f is already ±Inf.
	f, _ := strconv.ParseFloat(tok.Text, 64)
	return f, true
}
