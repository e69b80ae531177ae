package cmds

import (
	"slices"
	"testing"
)

func TestVar(t *testing.T) {
	width := Var[int]("-test-width")
	name := Var[string]("-test-name")
	if err := Execute([]string{
		"-test-width", "42",
		"-test-name", "calc",
	}); err != nil {
		t.Fatal(err)
	}
	if *width != 42 || *name != "calc" {
		t.Fatalf("got %v %v", *width, *name)
	}

	if err := Execute([]string{"-test-width."}); err != nil {
		t.Fatal(err)
	}
	if *width != 0 {
		t.Fatalf("got %v", *width)
	}

	if err := Execute([]string{"-test-width", "wide"}); err == nil {
		t.Fatal("should fail")
	}
}

func TestSwitch(t *testing.T) {
	on := Switch("test-switch")
	GlobalExecutor.MustExecute([]string{"test-switch"})
	if !*on {
		t.Fatal("should be on")
	}
	GlobalExecutor.MustExecute([]string{"!test-switch"})
	if *on {
		t.Fatal("should be off")
	}
}

func TestCollect(t *testing.T) {
	files := Collect[string]("-test-file")
	GlobalExecutor.MustExecute([]string{
		"-test-file", "a.cue",
		"-test-file", "b.cue",
	})
	if !slices.Equal(*files, []string{"a.cue", "b.cue"}) {
		t.Fatalf("got %v", *files)
	}
}

func TestTypedVar(t *testing.T) {
	type Editor string
	editor := Var[Editor]("-test-editor")
	GlobalExecutor.MustExecute([]string{"-test-editor", "readline"})
	if *editor != "readline" {
		t.Fatalf("got %v", *editor)
	}
	if desc := GlobalExecutor.commands["-test-editor"].Description; desc != "set -test-editor" {
		t.Fatalf("got %q", desc)
	}
}
