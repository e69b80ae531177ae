package evaluator

import (
	"fmt"
	"strconv"

	"github.com/reusee/taicalc/syntax"
)

// Result is what evaluating one node produces: a Value, or a Deferred node
// that still has to be evaluated.
type Result interface {
	isResult()
}

// Value is a fully evaluated result.
type Value interface {
	Result
	Type() string
	String() string
}

type (
	Int    int64
	Float  float64
	String string
	Char   rune
	Bool   bool
	Null   struct{}
)

func (Int) isResult()    {}
func (Float) isResult()  {}
func (String) isResult() {}
func (Char) isResult()   {}
func (Bool) isResult()   {}
func (Null) isResult()   {}

func (Int) Type() string    { return "Int" }
func (Float) Type() string  { return "Float" }
func (String) Type() string { return "String" }
func (Char) Type() string   { return "Char" }
func (Bool) Type() string   { return "Bool" }
func (Null) Type() string   { return "Null" }

func (i Int) String() string {
	return fmt.Sprintf("Int(%d)", int64(i))
}

func (f Float) String() string {
	return fmt.Sprintf("Float(%s)", strconv.FormatFloat(float64(f), 'g', -1, 64))
}

func (s String) String() string {
	return fmt.Sprintf("String(%s)", strconv.Quote(string(s)))
}

func (c Char) String() string {
	return fmt.Sprintf("Char(%s)", strconv.QuoteRune(rune(c)))
}

func (b Bool) String() string {
	return fmt.Sprintf("Bool(%t)", bool(b))
}

func (Null) String() string {
	return "Null"
}

// Deferred asks the caller to evaluate Node in place of the current node.
type Deferred struct {
	Node syntax.Node
}

func (Deferred) isResult() {}

func (d Deferred) String() string {
	return fmt.Sprintf("Deferred(%s)", d.Node)
}

// FromLiteral converts a literal token payload to its value.
func FromLiteral(lit syntax.Literal) Value {
	switch lit.Kind {
	case syntax.LiteralInt:
		return Int(lit.Int)
	case syntax.LiteralFloat:
		return Float(lit.Float)
	case syntax.LiteralString:
		return String(lit.Str)
	case syntax.LiteralChar:
		return Char(lit.Char)
	case syntax.LiteralBool:
		return Bool(lit.Bool)
	}
	return Null{}
}

// Native returns the Go value carried by v.
func Native(v Value) any {
	switch v := v.(type) {
	case Int:
		return int64(v)
	case Float:
		return float64(v)
	case String:
		return string(v)
	case Char:
		return rune(v)
	case Bool:
		return bool(v)
	}
	return nil
}
