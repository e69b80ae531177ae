package parser

import (
	"github.com/reusee/taicalc/diagnostics"
	"github.com/reusee/taicalc/syntax"
)

// MaxDepth bounds expression nesting.
const MaxDepth = 512

// Parser builds one syntax tree from a token sequence. It never stops at the
// first problem: mismatches are recorded and a placeholder node takes the
// place of the missing construct.
type Parser struct {
	tokens      []syntax.Node
	pos         int
	depth       int
	diagnostics *diagnostics.Diagnostics
}

func New(tokens []syntax.Node, input string) *Parser {
	p := &Parser{
		diagnostics: diagnostics.New(input),
	}
	for _, token := range tokens {
		if token.Is(syntax.TokenComment) || token.Is(syntax.TokenWhiteSpace) {
			continue
		}
		p.tokens = append(p.tokens, token)
	}
	return p
}

// Parse parses tokens as one expression followed by end of input.
func Parse(tokens []syntax.Node, input string) (syntax.Node, *diagnostics.Diagnostics) {
	p := New(tokens, input)
	return p.Parse(), p.Diagnostics()
}

func (p *Parser) Parse() syntax.Node {
	expr := p.parseExpression(0)
	p.matchToken(syntax.Tok(syntax.TokenEndOfFile))
	return expr
}

func (p *Parser) Diagnostics() *diagnostics.Diagnostics {
	return p.diagnostics
}

func (p *Parser) peek(offset int) syntax.Node {
	pos := p.pos + offset
	if pos >= len(p.tokens) {
		end := 0
		if len(p.tokens) > 0 {
			end = p.tokens[len(p.tokens)-1].Pos
		}
		return syntax.At(end, syntax.Tok(syntax.TokenEndOfFile))
	}
	return p.tokens[pos]
}

func (p *Parser) current() syntax.Node {
	return p.peek(0)
}

func (p *Parser) nextToken() syntax.Node {
	current := p.current()
	p.pos++
	return current
}

// matchToken consumes the current token if it equals expected. Otherwise it
// records the mismatch and returns a synthesized node of the expected kind
// without consuming anything.
func (p *Parser) matchToken(expected syntax.Kind) syntax.Node {
	current := p.current()
	if syntax.Equal(current.Kind, expected) {
		return p.nextToken()
	}
	p.diagnostics.Add(diagnostics.UnexpectedToken{
		Expected: syntax.At(current.Pos, expected),
		Found:    current,
		Position: current.Pos,
	})
	return syntax.At(current.Pos, expected)
}

// enter counts one level of nesting. Past MaxDepth it records the problem,
// skips the rest of the input and returns false.
func (p *Parser) enter(start syntax.Node) bool {
	p.depth++
	if p.depth > MaxDepth {
		p.diagnostics.Add(diagnostics.ParserError{
			Token:    start,
			Position: start.Pos,
			Message:  "expression nested too deeply",
		})
		p.pos = len(p.tokens)
		return false
	}
	return true
}

func (p *Parser) leave() {
	p.depth--
}

func (p *Parser) parseExpression(parentPrecedence int) syntax.Node {
	start := p.current()
	defer p.leave()
	if !p.enter(start) {
		return syntax.At(start.Pos, badToken)
	}

	var left syntax.Node
	if precedence := UnaryPrecedence(start.Kind); precedence != 0 && precedence >= parentPrecedence {
		operator := p.nextToken()
		// the operand extends over every following binary operator
		operand := p.parseExpression(0)
		left = syntax.At(start.Pos, syntax.UnaryExpression{
			Operator: operator,
			Operand:  operand,
		})
	} else {
		left = p.parsePrimaryExpression()
	}

	for {
		precedence := BinaryPrecedence(p.current().Kind)
		if precedence == 0 || precedence <= parentPrecedence {
			break
		}
		operator := p.nextToken()
		right := p.parseExpression(precedence)
		left = syntax.At(start.Pos, syntax.BinaryExpression{
			Left:     left,
			Operator: operator,
			Right:    right,
		})
	}

	return left
}

var badToken = syntax.Token{
	Kind: syntax.TokenBad,
	Text: "Bad Token",
}

func (p *Parser) parsePrimaryExpression() syntax.Node {
	current := p.current()

	switch kind := current.Kind.(type) {

	case syntax.Keyword:
		switch kind {
		case syntax.KeywordLet:
			return p.parseVariableDeclaration()
		case syntax.KeywordIf:
			return p.parseIfStatement()
		}

	case syntax.Token:
		switch kind.Kind {

		case syntax.TokenOpenParenthesis:
			open := p.nextToken()
			inner := p.parseExpression(0)
			closeParen := p.matchToken(syntax.Tok(syntax.TokenCloseParenthesis))
			return syntax.At(current.Pos, syntax.ParenthesizedExpression{
				Open:  open,
				Inner: inner,
				Close: closeParen,
			})

		case syntax.TokenLiteral:
			literal := p.nextToken()
			return syntax.At(current.Pos, syntax.LiteralExpression{
				Token: literal,
			})

		case syntax.TokenIdentifier:
			identifier := p.nextToken()
			if p.current().Is(syntax.TokenEquals) {
				equals := p.nextToken()
				expr := p.parseExpression(0)
				return syntax.At(current.Pos, syntax.VariableAssignment{
					Identifier: identifier,
					Equals:     equals,
					Expression: expr,
				})
			}
			return syntax.At(current.Pos, syntax.LiteralExpression{
				Token: identifier,
			})

		case syntax.TokenOpenBrace:
			return p.parseBlock()

		case syntax.TokenEndOfFile:
			p.diagnostics.Add(diagnostics.UnexpectedEndOfFile{
				Expected: syntax.At(current.Pos, syntax.Tok(syntax.TokenIdentifier)),
				Position: current.Pos,
			})
			return syntax.At(current.Pos, badToken)

		}
	}

	p.diagnostics.Add(diagnostics.ExpectedIdentifier{
		Found:    current,
		Position: current.Pos,
	})
	return syntax.At(current.Pos, badToken)
}

// parseBlock parses `{ primary }`. Blocks nest without going through
// parseExpression, so they count depth themselves.
func (p *Parser) parseBlock() syntax.Node {
	open := p.current()
	defer p.leave()
	if !p.enter(open) {
		return syntax.At(open.Pos, badToken)
	}
	p.nextToken()
	inner := p.parsePrimaryExpression()
	closeBrace := p.matchToken(syntax.Tok(syntax.TokenCloseBrace))
	return syntax.At(open.Pos, syntax.BlockStatement{
		Open:  open,
		Inner: inner,
		Close: closeBrace,
	})
}

// parseVariableDeclaration parses `let name = expr;`.
func (p *Parser) parseVariableDeclaration() syntax.Node {
	keyword := p.nextToken()
	identifier := p.nextToken()
	if !identifier.Is(syntax.TokenIdentifier) {
		p.diagnostics.Add(diagnostics.ExpectedIdentifier{
			Found:    identifier,
			Position: identifier.Pos,
		})
		return syntax.At(keyword.Pos, badToken)
	}
	equals := p.matchToken(syntax.Tok(syntax.TokenEquals))
	expr := p.parseExpression(0)
	semicolon := p.matchToken(syntax.Tok(syntax.TokenSemiColon))
	return syntax.At(keyword.Pos, syntax.VariableDeclaration{
		Keyword:    keyword,
		Identifier: identifier,
		Equals:     equals,
		Expression: expr,
		Semicolon:  semicolon,
	})
}

// parseIfStatement parses `if (cond) { body }`.
func (p *Parser) parseIfStatement() syntax.Node {
	keyword := p.nextToken()
	openParen := p.matchToken(syntax.Tok(syntax.TokenOpenParenthesis))
	condition := p.parseExpression(0)
	closeParen := p.matchToken(syntax.Tok(syntax.TokenCloseParenthesis))
	openBrace := p.matchToken(syntax.Tok(syntax.TokenOpenBrace))
	body := p.parseExpression(0)
	closeBrace := p.matchToken(syntax.Tok(syntax.TokenCloseBrace))
	return syntax.At(keyword.Pos, syntax.IfStatement{
		Keyword:    keyword,
		OpenParen:  openParen,
		Condition:  condition,
		CloseParen: closeParen,
		OpenBrace:  openBrace,
		Body:       body,
		CloseBrace: closeBrace,
	})
}
