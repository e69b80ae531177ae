package configs

import (
	"errors"
	"fmt"
	"testing"
)

var testSchema = `
str?: string
list?: [...int]
width?: int & >0
`

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader([]string{"testdata/test.cue"}, testSchema)

	var str string
	if err := loader.AssignFirst("str", &str); err != nil {
		t.Fatal(err)
	}
	if str != "bar" {
		t.Fatalf("got %q", str)
	}

	var list []int
	if err := loader.AssignFirst("list", &list); err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprintf("%v", list); str != "[1 2 3]" {
		t.Fatalf("got %s", str)
	}

	err := loader.AssignFirst("not", &list)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestLoaderIterCueValues(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/test.cue",
		"testdata/test2.cue",
	}, testSchema)

	var strs []string
	for value, err := range loader.IterCueValues("str") {
		if err != nil {
			t.Fatal(err)
		}
		var s string
		if err := value.Decode(&s); err != nil {
			t.Fatal(err)
		}
		strs = append(strs, s)
	}
	if str := fmt.Sprintf("%v", strs); str != "[bar foo]" {
		t.Fatalf("got %q", str)
	}

	strs = strs[:0]
	for str := range All[string](loader, "str") {
		strs = append(strs, str)
	}
	if str := fmt.Sprintf("%v", strs); str != "[bar foo]" {
		t.Fatalf("got %q", str)
	}

	// list only in the first file
	var lists [][]int
	for list := range All[[]int](loader, "list") {
		lists = append(lists, list)
	}
	if len(lists) != 1 {
		t.Fatalf("got %v", lists)
	}
}

func TestUnknownField(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/bad.cue",
	}, testSchema)
	var str string
	if err := loader.AssignFirst("unknown_field", &str); err == nil {
		t.Fatal("should error")
	}
	if loader.Err() == nil {
		t.Fatal("should error")
	}
}

func TestSchemaViolation(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/invalid.cue",
	}, testSchema)
	if loader.Err() == nil {
		t.Fatal("should error")
	}
}

func TestMissingFile(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/not-exists.cue",
	}, testSchema)
	if loader.Err() == nil {
		t.Fatal("should error")
	}
}

func TestNoFiles(t *testing.T) {
	loader := NewLoader(nil, testSchema)
	if err := loader.Err(); err != nil {
		t.Fatal(err)
	}
	if v := First[int](loader, "width"); v != 0 {
		t.Fatalf("got %v", v)
	}
}
