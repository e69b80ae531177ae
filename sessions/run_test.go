package sessions

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/taicalc/configs"
	"github.com/reusee/taicalc/evaluator"
)

func TestRunBatch(t *testing.T) {
	session := newTestSession(t)
	buf := new(bytes.Buffer)
	input := "# setup\r\nlet x = 2;\nx * 3\n1 +\n#exit\nx\n"
	if err := session.RunBatch(context.Background(), "input", strings.NewReader(input), buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "Null\nInt(6)\ninput:4:\nerror: ") {
		t.Fatalf("got %q", out)
	}
	if strings.Count(out, "Int(") != 1 {
		t.Fatalf("should stop at #exit, got %q", out)
	}
	if session.Failures() != 1 {
		t.Fatalf("got %d", session.Failures())
	}
}

func TestRunFile(t *testing.T) {
	session := newTestSession(t)
	if err := session.RunFile(context.Background(), "testdata/not-exists.calc", io.Discard); err == nil {
		t.Fatal("should fail")
	}
}

func TestPrelude(t *testing.T) {
	scope := testScope(t, func() configs.Loader {
		return configs.NewLoader([]string{"testdata/taicalc.cue"}, schema)
	})
	ctx := context.Background()
	files := dscope.Get[PreludeFiles](scope)
	session := dscope.Get[NewSession](scope)()
	if len(files) != 1 || files[0] != "testdata/prelude.calc" {
		t.Fatalf("got %v", files)
	}
	if err := session.RunPrelude(ctx, files, io.Discard); err != nil {
		t.Fatal(err)
	}
	outcome, err := session.Eval(ctx, "base + 2")
	if err != nil {
		t.Fatal(err)
	}
	// the first declaration wins
	if outcome.Value != evaluator.Int(42) {
		t.Fatalf("got %v", outcome.Value)
	}
	outcome, err = session.Eval(ctx, `name + "!"`)
	if err != nil {
		t.Fatal(err)
	}
	if outcome.Value != evaluator.String("calc!") {
		t.Fatalf("got %v", outcome.Value)
	}
}

type fakeReader struct {
	lines   []string
	prompts []string
	err     error
}

func (f *fakeReader) ReadLine(prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if len(f.lines) == 0 {
		if f.err != nil {
			return "", f.err
		}
		return "", io.EOF
	}
	line := f.lines[0]
	f.lines = f.lines[1:]
	return line, nil
}

func (f *fakeReader) Close() error {
	return nil
}

func TestRunInteractive(t *testing.T) {
	ctx := context.Background()
	session := newTestSession(t)
	buf := new(bytes.Buffer)

	reader := &fakeReader{
		lines: []string{"let a = 'c';", "a", "#exit", "a"},
	}
	if err := session.RunInteractive(ctx, reader, "$ ", buf); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "Null\nChar('c')\n" {
		t.Fatalf("got %q", buf.String())
	}
	if len(reader.prompts) != 3 || reader.prompts[0] != "$ " {
		t.Fatalf("got %v", reader.prompts)
	}

	// end of input
	reader = &fakeReader{
		lines: []string{"1"},
	}
	if err := session.RunInteractive(ctx, reader, "$ ", io.Discard); err != nil {
		t.Fatal(err)
	}

	// read error
	errFoo := errors.New("foo")
	reader = &fakeReader{
		err: errFoo,
	}
	if err := session.RunInteractive(ctx, reader, "$ ", io.Discard); !errors.Is(err, errFoo) {
		t.Fatalf("got %v", err)
	}
}
