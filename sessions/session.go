package sessions

import (
	"context"

	"github.com/reusee/taicalc/debugs"
	"github.com/reusee/taicalc/diagnostics"
	"github.com/reusee/taicalc/evaluator"
	"github.com/reusee/taicalc/lexer"
	"github.com/reusee/taicalc/logs"
	"github.com/reusee/taicalc/parser"
	"github.com/reusee/taicalc/sources"
	"github.com/reusee/taicalc/syntax"
)

// Session evaluates input lines one at a time against its own variables.
type Session struct {
	ShowTree  bool
	ShowStack bool

	env          *evaluator.Env
	evaluator    evaluator.Evaluator
	contextWidth int
	lastTree     syntax.Node
	failures     int

	logger  logs.Logger
	newSpan logs.NewSpan
	tap     debugs.Tap
}

type NewSession func() *Session

func (Module) NewSession(
	logger logs.Logger,
	newSpan logs.NewSpan,
	tap debugs.Tap,
	contextWidth ContextWidth,
	maxDeferrals MaxDeferrals,
	showTree ShowTree,
	showStack ShowStack,
) NewSession {
	return func() *Session {
		return &Session{
			ShowTree:     bool(showTree),
			ShowStack:    bool(showStack),
			env:          evaluator.NewEnv(),
			evaluator:    evaluator.New(int(maxDeferrals)),
			contextWidth: int(contextWidth),
			logger:       logger,
			newSpan:      newSpan,
			tap:          tap,
		}
	}
}

func (s *Session) Env() *evaluator.Env {
	return s.env
}

// Failures counts the lines that ended in diagnostics or a fault.
func (s *Session) Failures() int {
	return s.failures
}

// Outcome is what one cycle produced. Fields are set as far as the cycle got.
type Outcome struct {
	Tokens      []syntax.Node
	Tree        syntax.Node
	Diagnostics *diagnostics.Diagnostics
	Value       evaluator.Value
}

// Eval runs one cycle over line. Tokenizer and parser problems are returned
// as *diagnostics.Diagnostics, and the line is not evaluated. Evaluation
// problems are returned as *evaluator.Fault.
func (s *Session) Eval(ctx context.Context, line string) (outcome Outcome, err error) {
	tokens, lexDiags := lexer.Lex(sources.NewText(line))
	outcome.Tokens = tokens

	tree, parseDiags := parser.Parse(tokens, line)
	outcome.Tree = tree
	s.lastTree = tree

	diags := diagnostics.New(line)
	diags.Merge(lexDiags)
	diags.Merge(parseDiags)
	outcome.Diagnostics = diags

	if diags.HasErrors() {
		s.logger.DebugContext(ctx, "rejected",
			"tokens", len(tokens),
			"diagnostics", diags.Len(),
		)
		return outcome, diags
	}

	value, err := s.evaluator.Evaluate(tree, s.env)
	if err != nil {
		s.logger.WarnContext(ctx, "fault",
			"error", err,
		)
		return outcome, err
	}
	outcome.Value = value

	s.logger.DebugContext(ctx, "evaluated",
		"tokens", len(tokens),
		"result", value.Type(),
		"bindings", s.env.Len(),
	)
	return outcome, nil
}
