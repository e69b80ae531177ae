package configs

import (
	"testing"
)

func TestFirst(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/test2.cue",
		"testdata/test.cue",
	}, testSchema)

	if str := First[string](loader, "str"); str != "foo" {
		t.Fatalf("got %v", str)
	}
	if width := First[int](loader, "width"); width != 30 {
		t.Fatalf("got %v", width)
	}
	if list := First[[]int](loader, "list"); len(list) != 3 {
		t.Fatalf("got %v", list)
	}
	if v := First[string](loader, "nope"); v != "" {
		t.Fatalf("got %v", v)
	}
}

type testWidth int

func (testWidth) ConfigPath() string {
	return "width"
}

func TestGet(t *testing.T) {
	loader := NewLoader([]string{"testdata/test.cue"}, testSchema)
	if width := Get[testWidth](loader); width != 20 {
		t.Fatalf("got %v", width)
	}
}
