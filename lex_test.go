package infix

import (
	"reflect"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		src    string
		tokens []Token
	}{
		// spaces
		{"", nil},
		{" \t \r\n ", nil},
		// numbers
		{"0", []Token{{Text: "0", Kind: TokenNum, Pos: 1}}},
		{"9876543210", []Token{{Text: "9876543210", Kind: TokenNum, Pos: 1}}},
		{"1 0", []Token{{Text: "1", Kind: TokenNum, Pos: 1}, {Text: "0", Kind: TokenNum, Pos: 3}}},
		{"1.0", []Token{{Text: "1.0", Kind: TokenNum, Pos: 1}}},
		{".5", []Token{{Text: ".5", Kind: TokenNum, Pos: 1}}},
		{"  42  ", []Token{{Text: "42", Kind: TokenNum, Pos: 3}}},
		// bad literals are still literals
		{"1.1.1", []Token{{Text: "1.1.1", Kind: TokenNum, Pos: 1}}},
		{"1s", []Token{{Text: "1s", Kind: TokenNum, Pos: 1}}},
		{"1e5", []Token{{Text: "1e5", Kind: TokenNum, Pos: 1}}},
		{"$", []Token{{Text: "$", Kind: TokenNum, Pos: 1}}},
		{"π2", []Token{{Text: "π2", Kind: TokenNum, Pos: 1}}},
		// operators
		{"+", []Token{{Text: "+", Kind: TokenOp, Pos: 1}}},
		{"1+0", []Token{{Text: "1", Kind: TokenNum, Pos: 1}, {Text: "+", Kind: TokenOp, Pos: 2}, {Text: "0", Kind: TokenNum, Pos: 3}}},
		{"-1", []Token{{Text: "-", Kind: TokenOp, Pos: 1}, {Text: "1", Kind: TokenNum, Pos: 2}}},
		{"1e-5", []Token{{Text: "1e", Kind: TokenNum, Pos: 1}, {Text: "-", Kind: TokenOp, Pos: 3}, {Text: "5", Kind: TokenNum, Pos: 4}}},
		{"2^3", []Token{{Text: "2", Kind: TokenNum, Pos: 1}, {Text: "^", Kind: TokenOp, Pos: 2}, {Text: "3", Kind: TokenNum, Pos: 3}}},
		{"*/", []Token{{Text: "*", Kind: TokenOp, Pos: 1}, {Text: "/", Kind: TokenOp, Pos: 2}}},
		// brackets
		{"()", []Token{{Text: "(", Kind: TokenOpen, Pos: 1}, {Text: ")", Kind: TokenClose, Pos: 2}}},
		{"(1)", []Token{{Text: "(", Kind: TokenOpen, Pos: 1}, {Text: "1", Kind: TokenNum, Pos: 2}, {Text: ")", Kind: TokenClose, Pos: 3}}},
		{"[1]", []Token{{Text: "[1]", Kind: TokenNum, Pos: 1}}},
		// positions count runes, not bytes
		{"π + 1", []Token{{Text: "π", Kind: TokenNum, Pos: 1}, {Text: "+", Kind: TokenOp, Pos: 3}, {Text: "1", Kind: TokenNum, Pos: 5}}},
	}
	for _, c := range cases {
		got := Tokenize(c.src)
		if !reflect.DeepEqual(got, c.tokens) {
			t.Errorf("tokenizing %q: want\n%sgot\n%s", c.src, spew.Sdump(c.tokens), spew.Sdump(got))
		}
	}
}

func TestTokenizeWhitespaceInsensitive(t *testing.T) {
	texts := func(toks []Token) []string {
		r := make([]string, len(toks))
		for i, tok := range toks {
			r[i] = tok.Text
		}
		return r
	}
	cases := [][2]string{
		{"2+3", "2 + 3"},
		{"(2+3)*4", " ( 2 +3 ) *\t4 "},
		{"2^3^2", "2 ^ 3 ^ 2\n"},
	}
	for _, c := range cases {
		a, b := texts(Tokenize(c[0])), texts(Tokenize(c[1]))
		if !reflect.DeepEqual(a, b) {
			t.Errorf("%q and %q tokenize differently: %q vs %q", c[0], c[1], a, b)
		}
	}
}

func TestImplicitMul(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"", ""},
		{"2", "2"},
		{"2(3)", "2 * ( 3 )"},
		{"(2)3", "( 2 ) * 3"},
		{"(2)(3)", "( 2 ) * ( 3 )"},
		{"2 3", "2 3"},
		{"2*(3)", "2 * ( 3 )"},
		{"(2)+3", "( 2 ) + 3"},
		{"((1))", "( ( 1 ) )"},
		{"2(3)(4)5", "2 * ( 3 ) * ( 4 ) * 5"},
	}
	for _, c := range cases {
		got := ImplicitMul(Tokenize(c.src))
		if s := Postfix(got).String(); s != c.want {
			t.Errorf("%q: want %q, got %q", c.src, c.want, s)
		}
	}
}

func TestImplicitMulPos(t *testing.T) {
	got := ImplicitMul(Tokenize("2 (3)"))
	want := []Token{
		{Text: "2", Kind: TokenNum, Pos: 1},
		{Text: "*", Kind: TokenOp, Pos: 3},
		{Text: "(", Kind: TokenOpen, Pos: 3},
		{Text: "3", Kind: TokenNum, Pos: 4},
		{Text: ")", Kind: TokenClose, Pos: 5},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("want\n%sgot\n%s", spew.Sdump(want), spew.Sdump(got))
	}
}

func TestScanNum(t *testing.T) {
	cases := []struct {
		s  string
		ok bool
	}{
		{"0", true},
		{"123", true},
		{"1.5", true},
		{".5", true},
		{"5.", true},
		{"", false},
		{".", false},
		{"1.2.3", false},
		{"1e5", false},
		{"1s", false},
		{"Inf", false},
		{"NaN", false},
		{"0x10", false},
		{"１", false}, // fullwidth digit
	}
	for _, c := range cases {
		if got := scanNum(c.s); got != c.ok {
			t.Errorf("scanNum(%q): want %t, got %t", c.s, c.ok, got)
		}
	}
}

func TestTokenString(t *testing.T) {
	tok := Token{Text: "2.5", Kind: TokenNum, Pos: 4}
	if s := tok.String(); s != "Num:2.5@4" {
		t.Errorf("wrong string: %q", s)
	}
	if s := TokenKind(99).String(); !strings.Contains(s, "99") {
		t.Errorf("unknown kind string %q doesn't mention its value", s)
	}
}
