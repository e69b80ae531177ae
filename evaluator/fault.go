package evaluator

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDivisionByZero    = errors.New("division by zero")
	ErrTypeMismatch      = errors.New("type mismatch")
	ErrUndefinedVariable = errors.New("undefined variable")
	ErrUnsupportedNode   = errors.New("unsupported node")
	ErrDeferralLimit     = errors.New("deferral limit exceeded")
)

// Fault is a runtime failure. It aborts the evaluation that raised it and is
// never recorded as a diagnostic.
type Fault struct {
	Kind     error
	Pos      int
	Op       string
	Operands []Value
	Msg      string
}

var _ error = new(Fault)

func (f *Fault) Error() string {
	var sb strings.Builder
	if f.Msg != "" {
		sb.WriteString(f.Msg)
	} else {
		sb.WriteString(f.Kind.Error())
	}
	switch len(f.Operands) {
	case 1:
		fmt.Fprintf(&sb, ": %s%s", f.Op, f.Operands[0])
	case 2:
		fmt.Fprintf(&sb, ": %s %s %s", f.Operands[0], f.Op, f.Operands[1])
	}
	fmt.Fprintf(&sb, " at position %d", f.Pos)
	return sb.String()
}

func (f *Fault) Unwrap() error {
	return f.Kind
}
