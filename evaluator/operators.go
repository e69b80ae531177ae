package evaluator

import (
	"math"

	"github.com/reusee/taicalc/syntax"
)

var operatorSymbols = map[syntax.TokenKind]string{
	syntax.TokenPlus:               "+",
	syntax.TokenMinus:              "-",
	syntax.TokenStar:               "*",
	syntax.TokenSlash:              "/",
	syntax.TokenPercent:            "%",
	syntax.TokenAmpersandAmpersand: "&&",
	syntax.TokenPipePipe:           "||",
	syntax.TokenBang:               "!",
	syntax.TokenBangEquals:         "!=",
}

func operatorSymbol(operator syntax.Node) string {
	if token, ok := operator.Token(); ok {
		if symbol, ok := operatorSymbols[token.Kind]; ok {
			return symbol
		}
	}
	return operator.Kind.String()
}

func binaryOp(pos int, operator syntax.Node, left, right Value) (Value, error) {
	token, _ := operator.Token()
	mismatch := func() (Value, error) {
		return nil, &Fault{
			Kind:     ErrTypeMismatch,
			Pos:      pos,
			Op:       operatorSymbol(operator),
			Operands: []Value{left, right},
			Msg:      "unsupported operand types",
		}
	}
	divisionByZero := func() (Value, error) {
		return nil, &Fault{
			Kind:     ErrDivisionByZero,
			Pos:      pos,
			Op:       operatorSymbol(operator),
			Operands: []Value{left, right},
		}
	}

	switch token.Kind {

	case syntax.TokenPlus:
		if l, ok := left.(String); ok {
			if r, ok := right.(String); ok {
				return l + r, nil
			}
			return mismatch()
		}
		fallthrough

	case syntax.TokenMinus, syntax.TokenStar, syntax.TokenSlash, syntax.TokenPercent:
		l, lIsInt := left.(Int)
		r, rIsInt := right.(Int)
		if lIsInt && rIsInt {
			switch token.Kind {
			case syntax.TokenPlus:
				return l + r, nil
			case syntax.TokenMinus:
				return l - r, nil
			case syntax.TokenStar:
				return l * r, nil
			case syntax.TokenSlash:
				if r == 0 {
					return divisionByZero()
				}
				// true division
				return Float(float64(l) / float64(r)), nil
			case syntax.TokenPercent:
				if r == 0 {
					return divisionByZero()
				}
				return l % r, nil
			}
		}
		lf, ok := asFloat(left)
		if !ok {
			return mismatch()
		}
		rf, ok := asFloat(right)
		if !ok {
			return mismatch()
		}
		switch token.Kind {
		case syntax.TokenPlus:
			return lf + rf, nil
		case syntax.TokenMinus:
			return lf - rf, nil
		case syntax.TokenStar:
			return lf * rf, nil
		case syntax.TokenSlash:
			if rf == 0 {
				return divisionByZero()
			}
			return lf / rf, nil
		case syntax.TokenPercent:
			// NaN for a zero divisor
			return Float(math.Mod(float64(lf), float64(rf))), nil
		}

	case syntax.TokenAmpersandAmpersand, syntax.TokenPipePipe, syntax.TokenBangEquals:
		l, ok := left.(Bool)
		if !ok {
			return mismatch()
		}
		r, ok := right.(Bool)
		if !ok {
			return mismatch()
		}
		switch token.Kind {
		case syntax.TokenAmpersandAmpersand:
			return l && r, nil
		case syntax.TokenPipePipe:
			return l || r, nil
		case syntax.TokenBangEquals:
			return Bool(l != r), nil
		}

	}

	return nil, &Fault{
		Kind:     ErrUnsupportedNode,
		Pos:      operator.Pos,
		Op:       operatorSymbol(operator),
		Operands: []Value{left, right},
		Msg:      "unknown binary operator",
	}
}

func asFloat(v Value) (Float, bool) {
	switch v := v.(type) {
	case Int:
		return Float(v), true
	case Float:
		return v, true
	}
	return 0, false
}

func unaryOp(pos int, operator syntax.Node, operand Value) (Value, error) {
	token, _ := operator.Token()
	switch token.Kind {

	case syntax.TokenPlus:
		switch operand.(type) {
		case Int, Float:
			return operand, nil
		}

	case syntax.TokenMinus:
		switch v := operand.(type) {
		case Int:
			return -v, nil
		case Float:
			return -v, nil
		}

	case syntax.TokenBang:
		if v, ok := operand.(Bool); ok {
			return !v, nil
		}

	default:
		return nil, &Fault{
			Kind:     ErrUnsupportedNode,
			Pos:      operator.Pos,
			Op:       operatorSymbol(operator),
			Operands: []Value{operand},
			Msg:      "unknown unary operator",
		}
	}

	return nil, &Fault{
		Kind:     ErrTypeMismatch,
		Pos:      pos,
		Op:       operatorSymbol(operator),
		Operands: []Value{operand},
		Msg:      "unsupported operand type",
	}
}
