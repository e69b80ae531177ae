package parser

import "github.com/reusee/taicalc/syntax"

// BinaryPrecedence returns how tightly a binary operator binds, or 0 if kind is
// not a binary operator.
func BinaryPrecedence(kind syntax.Kind) int {
	token, ok := kind.(syntax.Token)
	if !ok {
		return 0
	}
	switch token.Kind {
	case syntax.TokenPlus, syntax.TokenMinus:
		return 1
	case syntax.TokenAmpersandAmpersand, syntax.TokenPipePipe:
		return 2
	case syntax.TokenStar, syntax.TokenSlash:
		return 3
	case syntax.TokenPercent, syntax.TokenBangEquals:
		return 4
	}
	return 0
}

// UnaryPrecedence returns how tightly a prefix operator binds, or 0 if kind is
// not a prefix operator.
func UnaryPrecedence(kind syntax.Kind) int {
	token, ok := kind.(syntax.Token)
	if !ok {
		return 0
	}
	switch token.Kind {
	case syntax.TokenBang:
		return 6
	case syntax.TokenPlus, syntax.TokenMinus:
		return 5
	}
	return 0
}
