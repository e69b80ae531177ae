package syntax

import (
	"strings"
	"testing"
)

func TestEqual(t *testing.T) {
	tree := func(n int64) Kind {
		return BinaryExpression{
			Left:     At(0, LiteralExpression{Token: At(0, LiteralToken(IntLiteral(1)))}),
			Operator: At(2, Tok(TokenPlus)),
			Right:    At(4, LiteralExpression{Token: At(4, LiteralToken(IntLiteral(n)))}),
		}
	}
	if !Equal(tree(2), tree(2)) {
		t.Fatal("should equal")
	}
	if Equal(tree(2), tree(3)) {
		t.Fatal("should not equal")
	}
	if Equal(Tok(TokenPlus), Tok(TokenMinus)) {
		t.Fatal("should not equal")
	}
	if !Equal(Identifier("x"), Identifier("x")) {
		t.Fatal("should equal")
	}
	if Equal(Identifier("x"), Identifier("y")) {
		t.Fatal("should not equal")
	}
	if Equal(Tok(TokenEndOfFile), KeywordLet) {
		t.Fatal("should not equal")
	}
	if !Equal(LiteralToken(NullLiteral()), Token{Kind: TokenLiteral}) {
		t.Fatal("should equal")
	}
}

func TestNodeIs(t *testing.T) {
	node := At(3, Tok(TokenSemiColon))
	if !node.Is(TokenSemiColon) {
		t.Fatal()
	}
	if node.Is(TokenColon) {
		t.Fatal()
	}
	if At(0, KeywordIf).Is(TokenSemiColon) {
		t.Fatal()
	}
	if _, ok := At(0, KeywordIf).Token(); ok {
		t.Fatal()
	}
}

func TestStrings(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{Tok(TokenCloseParenthesis), "CloseParenthesisToken"},
		{Identifier("foo"), `IdentifierToken("foo")`},
		{LiteralToken(IntLiteral(42)), "IntLiteral(42)"},
		{LiteralToken(FloatLiteral(3.5)), "FloatLiteral(3.5)"},
		{LiteralToken(StringLiteral("a")), `StringLiteral("a")`},
		{LiteralToken(CharLiteral('c')), "CharLiteral('c')"},
		{LiteralToken(BoolLiteral(true)), "BoolLiteral(true)"},
		{KeywordLet, "Keyword(let)"},
		{Token{Kind: TokenUnknown, Text: "@"}, `UnknownToken("@")`},
	}
	for _, test := range tests {
		if got := test.kind.String(); got != test.expected {
			t.Fatalf("got %s, expected %s", got, test.expected)
		}
	}
	if s := At(7, Tok(TokenPlus)).String(); s != "PlusToken@7" {
		t.Fatalf("got %s", s)
	}
}

func TestLookupKeyword(t *testing.T) {
	for _, word := range []string{"let", "if", "else", "for", "loop", "break", "continue", "match"} {
		k, ok := LookupKeyword(word)
		if !ok {
			t.Fatalf("%s should be keyword", word)
		}
		if k.Word() != word {
			t.Fatalf("got %s", k.Word())
		}
	}
	for _, word := range []string{"true", "false", "null", "x", "Let"} {
		if _, ok := LookupKeyword(word); ok {
			t.Fatalf("%s should not be keyword", word)
		}
	}
}

func TestDump(t *testing.T) {
	node := At(0, LiteralExpression{Token: At(0, Identifier("answer"))})
	out := Sdump(node)
	if !strings.Contains(out, "LiteralExpression") {
		t.Fatalf("got %s", out)
	}
	if !strings.Contains(out, `"answer"`) {
		t.Fatalf("got %s", out)
	}
	buf := new(strings.Builder)
	Dump(buf, node)
	if buf.String() != out {
		t.Fatalf("got %s", buf.String())
	}
}
