package sessions

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/reusee/taicalc/diagnostics"
	"github.com/reusee/taicalc/evaluator"
	"github.com/reusee/taicalc/syntax"
)

const (
	CommandExit      = "#exit"
	CommandClear     = "#clear"
	CommandShowTree  = "#show_tree"
	CommandShowStack = "#show_stack"
	CommandTap       = "#tap"
)

const clearScreen = "\x1b[2J\x1b[H"

// Handle processes one input line and writes what the user should see to w.
// Diagnostics and faults are written, not returned; err is only for failing
// to write. Lines starting with # that are not session commands are comments.
func (s *Session) Handle(ctx context.Context, line string, w io.Writer) (quit bool, err error) {
	return s.handle(ctx, line, w, "")
}

func (s *Session) handle(ctx context.Context, line string, w io.Writer, location string) (quit bool, err error) {
	trimmed := strings.TrimSpace(line)

	switch trimmed {

	case "":
		return false, nil

	case CommandExit:
		return true, nil

	case CommandClear:
		s.env.Clear()
		_, err = io.WriteString(w, clearScreen)
		return false, err

	case CommandShowTree:
		s.ShowTree = !s.ShowTree
		_, err = fmt.Fprintf(w, "show tree: %s\n", onOff(s.ShowTree))
		return false, err

	case CommandShowStack:
		s.ShowStack = !s.ShowStack
		_, err = fmt.Fprintf(w, "show stack: %s\n", onOff(s.ShowStack))
		return false, err

	case CommandTap:
		s.tap(ctx, "session", s.tapGlobals(ctx))
		return false, nil

	}

	if strings.HasPrefix(trimmed, "#") {
		return false, nil
	}

	ctx, _ = s.newSpan(ctx, "")
	outcome, evalErr := s.Eval(ctx, line)

	if s.ShowTree && outcome.Tree.Kind != nil {
		syntax.Dump(w, outcome.Tree)
	}

	if evalErr != nil {
		s.failures++
		if location != "" {
			if _, err := fmt.Fprintf(w, "%s:\n", location); err != nil {
				return false, err
			}
		}
		var diags *diagnostics.Diagnostics
		var fault *evaluator.Fault
		switch {
		case errors.As(evalErr, &diags):
			return false, diags.Render(w, s.contextWidth)
		case errors.As(evalErr, &fault):
			_, err = fmt.Fprintf(w, "fault: %s\n", fault.Error())
			return false, err
		}
		return false, evalErr
	}

	if _, err := fmt.Fprintln(w, outcome.Value); err != nil {
		return false, err
	}
	if s.ShowStack {
		if err := s.env.Dump(w); err != nil {
			return false, err
		}
	}
	return false, nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func (s *Session) tapGlobals(ctx context.Context) map[string]any {
	var env [][]any
	for _, binding := range s.env.Bindings() {
		env = append(env, []any{binding.Name, binding.Value})
	}
	return map[string]any{
		"env":  env,
		"tree": syntax.Sdump(s.lastTree),
		"eval": func(line string) string {
			outcome, err := s.Eval(ctx, line)
			if err != nil {
				return err.Error()
			}
			return outcome.Value.String()
		},
	}
}
