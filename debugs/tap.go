package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/taicalc/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens a starlark REPL on the terminal with globals bound, and returns
// when the user leaves it.
type Tap func(ctx context.Context, what string, globals map[string]any)

// Globals converts Go values to starlark values the way Tap does.
func Globals(globals map[string]any) starlark.StringDict {
	ret := make(starlark.StringDict, len(globals))
	for name, value := range globals {
		ret[name] = toStarlarkValue(value)
	}
	return ret
}

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		logger.InfoContext(ctx, "tap",
			"what", what,
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer logger.InfoContext(ctx, "tap end", "what", what)

		thread := &starlark.Thread{
			Name: what,
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, Globals(globals))
	}
}
