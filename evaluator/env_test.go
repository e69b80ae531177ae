package evaluator

import (
	"bytes"
	"testing"

	"github.com/reusee/taicalc/syntax"
)

func TestEnv(t *testing.T) {
	env := NewEnv()
	if _, ok := env.Lookup("x"); ok {
		t.Fatal("should not found")
	}

	env.Declare("x", Int(1))
	env.Declare("y", String("foo"))
	env.Declare("x", Int(2))
	if v, ok := env.Lookup("x"); !ok || v != Int(1) {
		t.Fatalf("got %v", v)
	}

	env.Assign("x", Int(3))
	bindings := env.Bindings()
	if len(bindings) != 2 {
		t.Fatalf("got %v", bindings)
	}
	if bindings[0].Name != "y" || bindings[1].Name != "x" {
		t.Fatalf("got %v", bindings)
	}
	if v, _ := env.Lookup("x"); v != Int(3) {
		t.Fatalf("got %v", v)
	}

	// mutating the copy does not affect env
	bindings[0].Value = Null{}
	if v, _ := env.Lookup("y"); v != String("foo") {
		t.Fatalf("got %v", v)
	}

	env.Assign("z", Bool(true))
	if env.Len() != 3 {
		t.Fatalf("got %d", env.Len())
	}

	env.Clear()
	if env.Len() != 0 {
		t.Fatalf("got %d", env.Len())
	}
}

func TestEnvDump(t *testing.T) {
	env := NewEnv()
	env.Declare("x", Int(10))
	env.Declare("s", String("a b"))
	env.Declare("x", Float(1.5))
	buf := new(bytes.Buffer)
	if err := env.Dump(buf); err != nil {
		t.Fatal(err)
	}
	expected := "- x: Int(10)\n" +
		"- s: String(\"a b\")\n" +
		"- x: Float(1.5)\n"
	if buf.String() != expected {
		t.Fatalf("got %q", buf.String())
	}

	buf.Reset()
	if err := NewEnv().Dump(buf); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "[]\n" {
		t.Fatalf("got %q", buf.String())
	}
}

func TestValueStrings(t *testing.T) {
	tests := []struct {
		value    Value
		expected string
		typ      string
	}{
		{Int(10), "Int(10)", "Int"},
		{Float(3.5), "Float(3.5)", "Float"},
		{String("a"), `String("a")`, "String"},
		{Char('c'), "Char('c')", "Char"},
		{Bool(true), "Bool(true)", "Bool"},
		{Null{}, "Null", "Null"},
	}
	for _, test := range tests {
		if test.value.String() != test.expected {
			t.Fatalf("got %s", test.value.String())
		}
		if test.value.Type() != test.typ {
			t.Fatalf("got %s", test.value.Type())
		}
	}
}

func TestFromLiteral(t *testing.T) {
	tests := []struct {
		literal  syntax.Literal
		expected Value
	}{
		{syntax.IntLiteral(1), Int(1)},
		{syntax.FloatLiteral(1.5), Float(1.5)},
		{syntax.StringLiteral("s"), String("s")},
		{syntax.CharLiteral('c'), Char('c')},
		{syntax.BoolLiteral(true), Bool(true)},
		{syntax.NullLiteral(), Null{}},
	}
	for _, test := range tests {
		if v := FromLiteral(test.literal); v != test.expected {
			t.Fatalf("got %v", v)
		}
	}
	if Native(Int(1)) != int64(1) {
		t.Fatal()
	}
	if Native(Null{}) != nil {
		t.Fatal()
	}
}
