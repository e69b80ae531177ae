package lexer

import (
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/reusee/taicalc/diagnostics"
	"github.com/reusee/taicalc/sources"
	"github.com/reusee/taicalc/syntax"
)

// Lexer turns source text into positioned tokens with a single forward cursor.
type Lexer struct {
	text        *sources.Text
	pos         int
	diagnostics *diagnostics.Diagnostics
}

func New(text *sources.Text) *Lexer {
	return &Lexer{
		text:        text,
		diagnostics: diagnostics.New(text.Content),
	}
}

// Lex tokenizes the whole text. Whitespace is dropped and the result always
// ends with exactly one end-of-file token.
func Lex(text *sources.Text) ([]syntax.Node, *diagnostics.Diagnostics) {
	l := New(text)
	return l.Lex(), l.Diagnostics()
}

func (l *Lexer) Lex() (tokens []syntax.Node) {
	for {
		token := l.Next()
		switch {
		case token.Is(syntax.TokenWhiteSpace):
			continue
		case token.Is(syntax.TokenEndOfFile):
			tokens = append(tokens, token)
			return
		}
		tokens = append(tokens, token)
	}
}

func (l *Lexer) Diagnostics() *diagnostics.Diagnostics {
	return l.diagnostics
}

// current returns the rune under the cursor and its byte width, or 0 at the end.
func (l *Lexer) current() (rune, int) {
	return l.peek(0)
}

func (l *Lexer) peek(offset int) (rune, int) {
	pos := l.pos + offset
	if pos >= len(l.text.Content) {
		return 0, 0
	}
	return utf8.DecodeRuneInString(l.text.Content[pos:])
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.text.Content)
}

func (l *Lexer) advance() {
	_, width := l.current()
	l.pos += max(width, 1)
}

// Next returns the token under the cursor, including whitespace.
// Once the text is exhausted it keeps returning end-of-file tokens.
func (l *Lexer) Next() syntax.Node {
	start := l.pos
	if l.atEnd() {
		return syntax.At(start, syntax.Tok(syntax.TokenEndOfFile))
	}

	r, _ := l.current()
	switch {

	case isSpace(r):
		for !l.atEnd() {
			if r, _ := l.current(); !isSpace(r) {
				break
			}
			l.advance()
		}
		return syntax.At(start, syntax.Tok(syntax.TokenWhiteSpace))

	case r == '#':
		for !l.atEnd() {
			if r, _ := l.current(); r == '\n' || r == '\r' {
				break
			}
			l.advance()
		}
		return syntax.At(start, syntax.Token{
			Kind: syntax.TokenComment,
			Text: l.text.Slice(start, l.pos),
		})

	case r == '\'':
		return l.lexChar(start)

	case r == '"':
		return l.lexString(start)

	case r >= '0' && r <= '9':
		return l.lexNumber(start)

	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		return l.lexWord(start)

	}

	if kind, ok := l.lexPunctuation(r); ok {
		return syntax.At(start, syntax.Tok(kind))
	}

	l.advance()
	token := syntax.At(start, syntax.Token{
		Kind: syntax.TokenUnknown,
		Text: l.text.Slice(start, l.pos),
	})
	l.diagnostics.Add(diagnostics.UnknownToken{
		Token:    token,
		Position: start,
	})
	return token
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

var singlePunctuation = map[rune]syntax.TokenKind{
	'+':  syntax.TokenPlus,
	'-':  syntax.TokenMinus,
	'*':  syntax.TokenStar,
	'/':  syntax.TokenSlash,
	'%':  syntax.TokenPercent,
	'(':  syntax.TokenOpenParenthesis,
	')':  syntax.TokenCloseParenthesis,
	';':  syntax.TokenSemiColon,
	':':  syntax.TokenColon,
	',':  syntax.TokenComma,
	'.':  syntax.TokenDot,
	'{':  syntax.TokenOpenBrace,
	'}':  syntax.TokenCloseBrace,
	'[':  syntax.TokenOpenBracket,
	']':  syntax.TokenCloseBracket,
	'^':  syntax.TokenCaret,
	'~':  syntax.TokenTilde,
	'?':  syntax.TokenQuestionMark,
	'<':  syntax.TokenLessThan,
	'>':  syntax.TokenGreaterThan,
	'$':  syntax.TokenDollar,
	'\\': syntax.TokenBackSlash,
	'`':  syntax.TokenBackTick,
}

// doublePunctuation maps a first rune to its one-rune kind, and the kind it
// becomes when followed by second.
var doublePunctuation = map[rune]struct {
	single syntax.TokenKind
	second rune
	double syntax.TokenKind
}{
	'&': {syntax.TokenAmpersand, '&', syntax.TokenAmpersandAmpersand},
	'|': {syntax.TokenPipe, '|', syntax.TokenPipePipe},
	'!': {syntax.TokenBang, '=', syntax.TokenBangEquals},
	'=': {syntax.TokenEquals, '=', syntax.TokenEqualsEquals},
}

func (l *Lexer) lexPunctuation(r rune) (syntax.TokenKind, bool) {
	if kind, ok := singlePunctuation[r]; ok {
		l.advance()
		return kind, true
	}
	if spec, ok := doublePunctuation[r]; ok {
		l.advance()
		if next, _ := l.current(); next == spec.second {
			l.advance()
			return spec.double, true
		}
		return spec.single, true
	}
	return 0, false
}

// lexChar reads exactly one character between single quotes.
// A missing closing quote is reported but the literal is still produced.
func (l *Lexer) lexChar(start int) syntax.Node {
	l.advance()
	if l.atEnd() {
		token := syntax.At(start, syntax.Token{
			Kind: syntax.TokenBad,
			Text: l.text.Slice(start, l.pos),
		})
		l.diagnostics.Add(diagnostics.InvalidCharacterError{
			Token:    token,
			Position: l.pos,
		})
		return token
	}

	value, _ := l.current()
	l.advance()
	token := syntax.At(start, syntax.LiteralToken(syntax.CharLiteral(value)))

	if closing, _ := l.current(); closing != '\'' {
		l.diagnostics.Add(diagnostics.ExpectedToken{
			Expected: syntax.At(start, syntax.Tok(syntax.TokenSingleQuote)),
			Found:    token,
			Position: l.pos,
		})
		return token
	}
	l.advance()

	return token
}

// lexString reads up to the next double quote. There are no escape sequences.
func (l *Lexer) lexString(start int) syntax.Node {
	l.advance()
	contentStart := l.pos
	for !l.atEnd() {
		if r, _ := l.current(); r == '"' {
			break
		}
		l.advance()
	}
	token := syntax.At(start, syntax.LiteralToken(
		syntax.StringLiteral(l.text.Slice(contentStart, l.pos)),
	))
	if l.atEnd() {
		l.diagnostics.Add(diagnostics.LexerError{
			Token:    token,
			Position: start,
			Message:  "unterminated string literal",
		})
		return token
	}
	l.advance()
	return token
}

// lexNumber consumes a maximal run of digits, '.', 'e', '+' and '-'.
// Signs are accepted anywhere in the run, not only after the exponent marker.
func (l *Lexer) lexNumber(start int) syntax.Node {
	isFloat := false
	for !l.atEnd() {
		r, _ := l.current()
		if r == '.' {
			isFloat = true
		} else if !(r >= '0' && r <= '9' || r == 'e' || r == '+' || r == '-') {
			break
		}
		l.advance()
	}
	text := l.text.Slice(start, l.pos)

	if isFloat {
		value, err := strconv.ParseFloat(text, 64)
		if err == nil {
			return syntax.At(start, syntax.LiteralToken(syntax.FloatLiteral(value)))
		}
	} else {
		value, err := strconv.ParseInt(text, 10, 64)
		if err == nil {
			return syntax.At(start, syntax.LiteralToken(syntax.IntLiteral(value)))
		}
	}

	token := syntax.At(start, syntax.Token{
		Kind: syntax.TokenBad,
		Text: text,
	})
	l.diagnostics.Add(diagnostics.LexerError{
		Token:    token,
		Position: start,
		Message:  "malformed number " + strconv.Quote(text),
	})
	return token
}

func (l *Lexer) lexWord(start int) syntax.Node {
	for !l.atEnd() {
		r, _ := l.current()
		if !(r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)) {
			break
		}
		l.advance()
	}
	word := l.text.Slice(start, l.pos)

	if keyword, ok := syntax.LookupKeyword(word); ok {
		return syntax.At(start, keyword)
	}
	switch word {
	case "true":
		return syntax.At(start, syntax.LiteralToken(syntax.BoolLiteral(true)))
	case "false":
		return syntax.At(start, syntax.LiteralToken(syntax.BoolLiteral(false)))
	case "null":
		return syntax.At(start, syntax.LiteralToken(syntax.NullLiteral()))
	}
	return syntax.At(start, syntax.Identifier(word))
}
