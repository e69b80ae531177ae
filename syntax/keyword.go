package syntax

import "fmt"

type Keyword uint8

const (
	KeywordLet Keyword = iota
	KeywordIf
	KeywordElse
	KeywordFor
	KeywordLoop
	KeywordBreak
	KeywordContinue
	KeywordMatch
	KeywordTrue
	KeywordFalse
	KeywordNull
)

var keywordNames = [...]string{
	KeywordLet:      "let",
	KeywordIf:       "if",
	KeywordElse:     "else",
	KeywordFor:      "for",
	KeywordLoop:     "loop",
	KeywordBreak:    "break",
	KeywordContinue: "continue",
	KeywordMatch:    "match",
	KeywordTrue:     "true",
	KeywordFalse:    "false",
	KeywordNull:     "null",
}

func (Keyword) isKind() {}

func (k Keyword) String() string {
	if int(k) < len(keywordNames) {
		return fmt.Sprintf("Keyword(%s)", keywordNames[k])
	}
	return fmt.Sprintf("Keyword(%d)", k)
}

// Word is the source spelling of the keyword.
func (k Keyword) Word() string {
	if int(k) < len(keywordNames) {
		return keywordNames[k]
	}
	return ""
}

// statementKeywords are the words the lexer classifies as keywords.
// true, false and null become literal tokens instead.
var statementKeywords = map[string]Keyword{
	"let":      KeywordLet,
	"if":       KeywordIf,
	"else":     KeywordElse,
	"for":      KeywordFor,
	"loop":     KeywordLoop,
	"break":    KeywordBreak,
	"continue": KeywordContinue,
	"match":    KeywordMatch,
}

func LookupKeyword(word string) (Keyword, bool) {
	k, ok := statementKeywords[word]
	return k, ok
}
