package evaluator

import (
	"fmt"

	"github.com/reusee/taicalc/parser"
	"github.com/reusee/taicalc/syntax"
)

// DefaultMaxDeferrals bounds how many deferred nodes one force may follow.
// Every deferral enters one nesting level of the tree, and the parser rejects
// trees deeper than parser.MaxDepth, so accepted trees never reach this default.
const DefaultMaxDeferrals = 2 * parser.MaxDepth

// Evaluator walks syntax trees against an Env.
type Evaluator struct {
	MaxDeferrals int
}

func New(maxDeferrals int) Evaluator {
	if maxDeferrals <= 0 {
		maxDeferrals = DefaultMaxDeferrals
	}
	return Evaluator{
		MaxDeferrals: maxDeferrals,
	}
}

// Evaluate evaluates node with the default limits.
func Evaluate(node syntax.Node, env *Env) (Value, error) {
	return New(DefaultMaxDeferrals).Evaluate(node, env)
}

// Evaluate evaluates node to a value. env is mutated by declarations and assignments.
func (e Evaluator) Evaluate(node syntax.Node, env *Env) (Value, error) {
	return e.force(node, env)
}

// force evaluates node and keeps following deferred results until a value is produced.
func (e Evaluator) force(node syntax.Node, env *Env) (Value, error) {
	limit := e.MaxDeferrals
	if limit <= 0 {
		limit = DefaultMaxDeferrals
	}
	for steps := 0; ; steps++ {
		if steps > limit {
			return nil, &Fault{
				Kind: ErrDeferralLimit,
				Pos:  node.Pos,
				Op:   describe(node.Kind),
				Msg:  fmt.Sprintf("more than %d deferred evaluations", limit),
			}
		}
		result, err := e.eval(node, env)
		if err != nil {
			return nil, err
		}
		switch result := result.(type) {
		case Deferred:
			node = result.Node
		case Value:
			return result, nil
		default:
			return nil, &Fault{
				Kind: ErrUnsupportedNode,
				Pos:  node.Pos,
				Msg:  fmt.Sprintf("unexpected result %T", result),
			}
		}
	}
}

func (e Evaluator) eval(node syntax.Node, env *Env) (Result, error) {
	switch kind := node.Kind.(type) {

	case syntax.BinaryExpression:
		left, err := e.force(kind.Left, env)
		if err != nil {
			return nil, err
		}
		right, err := e.force(kind.Right, env)
		if err != nil {
			return nil, err
		}
		return binaryOp(node.Pos, kind.Operator, left, right)

	case syntax.UnaryExpression:
		operand, err := e.force(kind.Operand, env)
		if err != nil {
			return nil, err
		}
		return unaryOp(node.Pos, kind.Operator, operand)

	case syntax.ParenthesizedExpression:
		return Deferred{Node: kind.Inner}, nil

	case syntax.BlockStatement:
		return Deferred{Node: kind.Inner}, nil

	case syntax.ExpressionStatement:
		return Deferred{Node: kind.Expression}, nil

	case syntax.LiteralExpression:
		if keyword, ok := kind.Token.Kind.(syntax.Keyword); ok {
			switch keyword {
			case syntax.KeywordTrue:
				return Bool(true), nil
			case syntax.KeywordFalse:
				return Bool(false), nil
			case syntax.KeywordNull:
				return Null{}, nil
			}
			break
		}
		token, ok := kind.Token.Token()
		if !ok {
			break
		}
		switch token.Kind {
		case syntax.TokenLiteral:
			return FromLiteral(token.Value), nil
		case syntax.TokenIdentifier:
			value, ok := env.Lookup(token.Text)
			if !ok {
				return nil, &Fault{
					Kind: ErrUndefinedVariable,
					Pos:  node.Pos,
					Msg:  fmt.Sprintf("undefined variable %s", token.Text),
				}
			}
			return value, nil
		}

	case syntax.VariableDeclaration:
		name, ok := identifierName(kind.Identifier)
		if !ok {
			break
		}
		value, err := e.force(kind.Expression, env)
		if err != nil {
			return nil, err
		}
		env.Declare(name, value)
		return Null{}, nil

	case syntax.VariableAssignment:
		name, ok := identifierName(kind.Identifier)
		if !ok {
			break
		}
		value, err := e.force(kind.Expression, env)
		if err != nil {
			return nil, err
		}
		env.Assign(name, value)
		return Null{}, nil

	case syntax.IfStatement:
		condition, err := e.force(kind.Condition, env)
		if err != nil {
			return nil, err
		}
		b, ok := condition.(Bool)
		if !ok {
			return nil, &Fault{
				Kind: ErrTypeMismatch,
				Pos:  kind.Condition.Pos,
				Msg:  fmt.Sprintf("if condition must be Bool, got %s", condition),
			}
		}
		if b {
			return Deferred{Node: kind.Body}, nil
		}
		return Null{}, nil

	}

	return nil, &Fault{
		Kind: ErrUnsupportedNode,
		Pos:  node.Pos,
		Msg:  fmt.Sprintf("cannot evaluate %s", describe(node.Kind)),
	}
}

func identifierName(node syntax.Node) (string, bool) {
	token, ok := node.Token()
	if !ok || token.Kind != syntax.TokenIdentifier {
		return "", false
	}
	return token.Text, true
}

func describe(kind syntax.Kind) string {
	if kind == nil {
		return "empty node"
	}
	return kind.String()
}
