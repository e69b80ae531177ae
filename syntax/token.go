package syntax

import (
	"fmt"
	"strconv"
)

type TokenKind uint8

const (
	TokenBad TokenKind = iota
	TokenEndOfFile
	TokenWhiteSpace
	TokenLiteral
	TokenNumber
	TokenIdentifier
	TokenComment
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenPercent
	TokenEquals
	TokenEqualsEquals
	TokenOpenParenthesis
	TokenCloseParenthesis
	TokenSemiColon
	TokenColon
	TokenComma
	TokenDot
	TokenBang
	TokenBangEquals
	TokenAmpersand
	TokenAmpersandAmpersand
	TokenPipe
	TokenPipePipe
	TokenCaret
	TokenTilde
	TokenQuestionMark
	TokenLessThan
	TokenGreaterThan
	TokenHash
	TokenAt
	TokenDollar
	TokenBackSlash
	TokenSingleQuote
	TokenDoubleQuote
	TokenBackTick
	TokenNewLine
	TokenTab
	TokenOpenBracket
	TokenCloseBracket
	TokenOpenBrace
	TokenCloseBrace

	// markers that only appear in diagnostics
	TokenBinaryOperator
	TokenUnaryOperator
	TokenUnknown
)

var tokenKindNames = [...]string{
	TokenBad:                "BadToken",
	TokenEndOfFile:          "EndOfFileToken",
	TokenWhiteSpace:         "WhiteSpaceToken",
	TokenLiteral:            "LiteralToken",
	TokenNumber:             "NumberToken",
	TokenIdentifier:         "IdentifierToken",
	TokenComment:            "CommentToken",
	TokenPlus:               "PlusToken",
	TokenMinus:              "MinusToken",
	TokenStar:               "StarToken",
	TokenSlash:              "SlashToken",
	TokenPercent:            "PercentToken",
	TokenEquals:             "EqualsToken",
	TokenEqualsEquals:       "EqualsEqualsToken",
	TokenOpenParenthesis:    "OpenParenthesisToken",
	TokenCloseParenthesis:   "CloseParenthesisToken",
	TokenSemiColon:          "SemiColonToken",
	TokenColon:              "ColonToken",
	TokenComma:              "CommaToken",
	TokenDot:                "DotToken",
	TokenBang:               "BangToken",
	TokenBangEquals:         "BangEqualsToken",
	TokenAmpersand:          "AmpersandToken",
	TokenAmpersandAmpersand: "AmpersandAmpersandToken",
	TokenPipe:               "PipeToken",
	TokenPipePipe:           "PipePipeToken",
	TokenCaret:              "CaretToken",
	TokenTilde:              "TildeToken",
	TokenQuestionMark:       "QuestionMarkToken",
	TokenLessThan:           "LessThanToken",
	TokenGreaterThan:        "GreaterThanToken",
	TokenHash:               "HashToken",
	TokenAt:                 "AtToken",
	TokenDollar:             "DollarToken",
	TokenBackSlash:          "BackSlashToken",
	TokenSingleQuote:        "SingleQuoteToken",
	TokenDoubleQuote:        "DoubleQuoteToken",
	TokenBackTick:           "BackTickToken",
	TokenNewLine:            "NewLineToken",
	TokenTab:                "TabToken",
	TokenOpenBracket:        "OpenBracketToken",
	TokenCloseBracket:       "CloseBracketToken",
	TokenOpenBrace:          "OpenBraceToken",
	TokenCloseBrace:         "CloseBraceToken",
	TokenBinaryOperator:     "BinaryOperatorToken",
	TokenUnaryOperator:      "UnaryOperatorToken",
	TokenUnknown:            "UnknownToken",
}

func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", k)
}

// Token is a leaf terminal.
// Text holds the identifier name, comment text or the offending input of
// bad and unknown tokens. Value is only meaningful for TokenLiteral.
type Token struct {
	Kind  TokenKind
	Text  string
	Value Literal
}

func (Token) isKind() {}

func (t Token) String() string {
	switch t.Kind {
	case TokenLiteral:
		return t.Value.String()
	case TokenIdentifier, TokenBad, TokenUnknown, TokenComment:
		return fmt.Sprintf("%s(%s)", t.Kind, strconv.Quote(t.Text))
	}
	return t.Kind.String()
}

// Tok builds a payload-free token of kind.
func Tok(kind TokenKind) Token {
	return Token{Kind: kind}
}

func Identifier(name string) Token {
	return Token{Kind: TokenIdentifier, Text: name}
}

func LiteralToken(value Literal) Token {
	return Token{Kind: TokenLiteral, Value: value}
}

type LiteralKind uint8

const (
	LiteralNull LiteralKind = iota
	LiteralInt
	LiteralFloat
	LiteralString
	LiteralChar
	LiteralBool
)

var literalKindNames = [...]string{
	LiteralNull:   "Null",
	LiteralInt:    "Int",
	LiteralFloat:  "Float",
	LiteralString: "String",
	LiteralChar:   "Char",
	LiteralBool:   "Bool",
}

func (k LiteralKind) String() string {
	if int(k) < len(literalKindNames) {
		return literalKindNames[k]
	}
	return fmt.Sprintf("LiteralKind(%d)", k)
}

// Literal is the payload of a literal token. Only the field selected by Kind is set,
// so two literals compare equal with == exactly when they denote the same value.
type Literal struct {
	Kind  LiteralKind
	Int   int64
	Float float64
	Str   string
	Char  rune
	Bool  bool
}

func IntLiteral(v int64) Literal {
	return Literal{Kind: LiteralInt, Int: v}
}

func FloatLiteral(v float64) Literal {
	return Literal{Kind: LiteralFloat, Float: v}
}

func StringLiteral(v string) Literal {
	return Literal{Kind: LiteralString, Str: v}
}

func CharLiteral(v rune) Literal {
	return Literal{Kind: LiteralChar, Char: v}
}

func BoolLiteral(v bool) Literal {
	return Literal{Kind: LiteralBool, Bool: v}
}

func NullLiteral() Literal {
	return Literal{Kind: LiteralNull}
}

func (l Literal) String() string {
	switch l.Kind {
	case LiteralInt:
		return fmt.Sprintf("IntLiteral(%d)", l.Int)
	case LiteralFloat:
		return fmt.Sprintf("FloatLiteral(%s)", strconv.FormatFloat(l.Float, 'g', -1, 64))
	case LiteralString:
		return fmt.Sprintf("StringLiteral(%s)", strconv.Quote(l.Str))
	case LiteralChar:
		return fmt.Sprintf("CharLiteral(%s)", strconv.QuoteRune(l.Char))
	case LiteralBool:
		return fmt.Sprintf("BoolLiteral(%t)", l.Bool)
	}
	return "NullLiteral"
}
