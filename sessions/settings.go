package sessions

import (
	"os"
	"path/filepath"

	"github.com/reusee/taicalc/cmds"
	"github.com/reusee/taicalc/configs"
	"github.com/reusee/taicalc/diagnostics"
	"github.com/reusee/taicalc/evaluator"
	"github.com/reusee/taicalc/modes"
	"github.com/reusee/taicalc/vars"
)

// Every setting is resolved from its command-line flag, then config files,
// then its default.

type Prompt string

func (Prompt) ConfigPath() string {
	return "prompt"
}

const DefaultPrompt Prompt = "> "

var promptFlag = cmds.Var[string]("-prompt")

func (Module) Prompt(
	loader configs.Loader,
) Prompt {
	return vars.FirstNonZero(
		Prompt(vars.DerefOrZero(promptFlag)),
		configs.Get[Prompt](loader),
		DefaultPrompt,
	)
}

// HistoryFile is where the interactive reader keeps input history. Empty means no history.
type HistoryFile string

func (HistoryFile) ConfigPath() string {
	return "history_file"
}

var historyFileFlag = cmds.Var[string]("-history-file")

func (Module) HistoryFile(
	loader configs.Loader,
	mode modes.Mode,
) HistoryFile {
	var fallback HistoryFile
	if !mode.Isolated() {
		if dir, err := os.UserConfigDir(); err == nil {
			fallback = HistoryFile(filepath.Join(dir, "taicalc-history"))
		}
	}
	return vars.FirstNonZero(
		HistoryFile(vars.DerefOrZero(historyFileFlag)),
		configs.Get[HistoryFile](loader),
		fallback,
	)
}

// LineEditor names the line editing library of the interactive reader.
type LineEditor string

func (LineEditor) ConfigPath() string {
	return "line_editor"
}

const (
	LineEditorLiner    LineEditor = "liner"
	LineEditorReadline LineEditor = "readline"
)

var lineEditorFlag = cmds.Var[string]("-line-editor")

func (Module) LineEditor(
	loader configs.Loader,
) LineEditor {
	return vars.FirstNonZero(
		LineEditor(vars.DerefOrZero(lineEditorFlag)),
		configs.Get[LineEditor](loader),
		LineEditorLiner,
	)
}

type ContextWidth int

func (ContextWidth) ConfigPath() string {
	return "context_width"
}

var contextWidthFlag = cmds.Var[int]("-context-width")

func (Module) ContextWidth(
	loader configs.Loader,
) ContextWidth {
	return vars.FirstNonZero(
		ContextWidth(max(vars.DerefOrZero(contextWidthFlag), 0)),
		configs.Get[ContextWidth](loader),
		diagnostics.DefaultContextWidth,
	)
}

type MaxDeferrals int

func (MaxDeferrals) ConfigPath() string {
	return "max_deferrals"
}

var maxDeferralsFlag = cmds.Var[int]("-max-deferrals")

func (Module) MaxDeferrals(
	loader configs.Loader,
) MaxDeferrals {
	return vars.FirstNonZero(
		MaxDeferrals(max(vars.DerefOrZero(maxDeferralsFlag), 0)),
		configs.Get[MaxDeferrals](loader),
		evaluator.DefaultMaxDeferrals,
	)
}

type ShowTree bool

func (ShowTree) ConfigPath() string {
	return "show_tree"
}

var showTreeFlag = cmds.Switch("show-tree")

func (Module) ShowTree(
	loader configs.Loader,
) ShowTree {
	return ShowTree(vars.DerefOrZero(showTreeFlag)) || configs.Get[ShowTree](loader)
}

type ShowStack bool

func (ShowStack) ConfigPath() string {
	return "show_stack"
}

var showStackFlag = cmds.Switch("show-stack")

func (Module) ShowStack(
	loader configs.Loader,
) ShowStack {
	return ShowStack(vars.DerefOrZero(showStackFlag)) || configs.Get[ShowStack](loader)
}

// PreludeFiles are evaluated in order before the first input line.
type PreludeFiles []string

var preludeFilenames = []string{
	"taicalc.calc",
	".taicalc.calc",
}

// PreludeFiles lists files named by the prelude config, then prelude files
// found the way config files are. Since the first declaration of a name wins,
// earlier files take precedence.
func (Module) PreludeFiles(
	loader configs.Loader,
	mode modes.Mode,
) (ret PreludeFiles) {
	for paths := range configs.All[[]string](loader, "prelude") {
		ret = append(ret, paths...)
	}
	if !mode.Isolated() {
		ret = append(ret, findFiles(preludeFilenames, searchDirs())...)
	}
	return
}
