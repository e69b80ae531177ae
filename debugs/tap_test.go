package debugs

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/taicalc/evaluator"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

func TestTap(t *testing.T) {
	dscope.New(
		new(Module),
	).Call(func(
		tap Tap,
	) {
		// stdin is not a terminal under go test, the repl returns at EOF
		tap(t.Context(), "test", map[string]any{
			"foo": 42,
		})
	})
}

func TestGlobals(t *testing.T) {
	env := evaluator.NewEnv()
	env.Declare("x", evaluator.Int(10))
	env.Declare("s", evaluator.String("foo"))
	globals := Globals(map[string]any{
		"bindings": env.Bindings(),
	})

	thread := &starlark.Thread{Name: "test"}
	ret, err := starlark.EvalOptions(&syntax.FileOptions{}, thread, "test", `bindings[0]["Value"] + 2`, globals)
	if err != nil {
		t.Fatal(err)
	}
	equal, err := starlark.Equal(ret, starlark.MakeInt(12))
	if err != nil {
		t.Fatal(err)
	}
	if !equal {
		t.Fatalf("got %v", ret)
	}

	ret, err = starlark.EvalOptions(&syntax.FileOptions{}, thread, "test", `bindings[1]["Name"] + bindings[1]["Value"]`, globals)
	if err != nil {
		t.Fatal(err)
	}
	if ret != starlark.String("sfoo") {
		t.Fatalf("got %v", ret)
	}
}
