package diagnostics

import (
	"fmt"

	"github.com/reusee/taicalc/syntax"
)

// Error is one recoverable problem found while tokenizing or parsing.
type Error interface {
	error
	Offset() int
	isDiagnostic()
}

type UnknownToken struct {
	Token    syntax.Node
	Position int
}

type UnexpectedToken struct {
	Expected syntax.Node
	Found    syntax.Node
	Position int
}

type UnexpectedEndOfFile struct {
	Expected syntax.Node
	Position int
}

type ExpectedToken struct {
	Expected syntax.Node
	Found    syntax.Node
	Position int
}

type ExpectedExpression struct {
	Found    syntax.Node
	Position int
}

type ExpectedIdentifier struct {
	Found    syntax.Node
	Position int
}

type ExpectedEquals struct {
	Found    syntax.Node
	Position int
}

type ExpectedSemicolon struct {
	Found    syntax.Node
	Position int
}

type ParserError struct {
	Token    syntax.Node
	Position int
	Message  string
}

type LexerError struct {
	Token    syntax.Node
	Position int
	Message  string
}

type InvalidCharacterError struct {
	Token    syntax.Node
	Position int
}

func (e UnknownToken) Offset() int          { return e.Position }
func (e UnexpectedToken) Offset() int       { return e.Position }
func (e UnexpectedEndOfFile) Offset() int   { return e.Position }
func (e ExpectedToken) Offset() int         { return e.Position }
func (e ExpectedExpression) Offset() int    { return e.Position }
func (e ExpectedIdentifier) Offset() int    { return e.Position }
func (e ExpectedEquals) Offset() int        { return e.Position }
func (e ExpectedSemicolon) Offset() int     { return e.Position }
func (e ParserError) Offset() int           { return e.Position }
func (e LexerError) Offset() int            { return e.Position }
func (e InvalidCharacterError) Offset() int { return e.Position }

func (UnknownToken) isDiagnostic()          {}
func (UnexpectedToken) isDiagnostic()       {}
func (UnexpectedEndOfFile) isDiagnostic()   {}
func (ExpectedToken) isDiagnostic()         {}
func (ExpectedExpression) isDiagnostic()    {}
func (ExpectedIdentifier) isDiagnostic()    {}
func (ExpectedEquals) isDiagnostic()        {}
func (ExpectedSemicolon) isDiagnostic()     {}
func (ParserError) isDiagnostic()           {}
func (LexerError) isDiagnostic()            {}
func (InvalidCharacterError) isDiagnostic() {}

func (e UnknownToken) Error() string {
	return fmt.Sprintf("unknown token %s at position %d", describe(e.Token), e.Position)
}

func (e UnexpectedToken) Error() string {
	return fmt.Sprintf("unexpected token %s at position %d, expected %s",
		describe(e.Found), e.Position, describe(e.Expected))
}

func (e UnexpectedEndOfFile) Error() string {
	return fmt.Sprintf("unexpected end of input at position %d, expected %s",
		e.Position, describe(e.Expected))
}

func (e ExpectedToken) Error() string {
	return fmt.Sprintf("expected %s at position %d, found %s",
		describe(e.Expected), e.Position, describe(e.Found))
}

func (e ExpectedExpression) Error() string {
	return fmt.Sprintf("expected expression at position %d, found %s", e.Position, describe(e.Found))
}

func (e ExpectedIdentifier) Error() string {
	return fmt.Sprintf("expected identifier at position %d, found %s", e.Position, describe(e.Found))
}

func (e ExpectedEquals) Error() string {
	return fmt.Sprintf("expected '=' at position %d, found %s", e.Position, describe(e.Found))
}

func (e ExpectedSemicolon) Error() string {
	return fmt.Sprintf("expected ';' at position %d, found %s", e.Position, describe(e.Found))
}

func (e ParserError) Error() string {
	return fmt.Sprintf("parse error at position %d: %s (%s)", e.Position, e.Message, describe(e.Token))
}

func (e LexerError) Error() string {
	return fmt.Sprintf("lex error at position %d: %s (%s)", e.Position, e.Message, describe(e.Token))
}

func (e InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid character %s at position %d", describe(e.Token), e.Position)
}

func describe(node syntax.Node) string {
	if node.Kind == nil {
		return "nothing"
	}
	return node.Kind.String()
}
