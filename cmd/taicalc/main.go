package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/taicalc/cmds"
	"github.com/reusee/taicalc/configs"
	"github.com/reusee/taicalc/logs"
	"github.com/reusee/taicalc/modes"
	"github.com/reusee/taicalc/sessions"
	"golang.org/x/term"
)

var (
	fileFlag = cmds.Var[string]("-file")
)

func main() {
	if err := cmds.Execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		cmds.PrintUsage()
		os.Exit(2)
	}

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	// settings panic on invalid config files
	if err := dscope.Get[configs.Loader](scope).Err(); err != nil {
		fatal(err)
	}

	scope.Call(func(
		logger logs.Logger,
		newSpan logs.NewSpan,
		newSession sessions.NewSession,
		newLineReader sessions.NewLineReader,
		prelude sessions.PreludeFiles,
		prompt sessions.Prompt,
	) {
		ctx, _ := newSpan(context.Background(), "")
		session := newSession()
		if err := session.RunPrelude(ctx, prelude, os.Stdout); err != nil {
			fatal(err)
		}

		batch := true
		switch {

		case *fileFlag != "":
			if err := session.RunFile(ctx, *fileFlag, os.Stdout); err != nil {
				fatal(err)
			}

		case term.IsTerminal(int(os.Stdin.Fd())):
			batch = false
			reader, err := newLineReader()
			if err != nil {
				fatal(err)
			}
			err = session.RunInteractive(ctx, reader, prompt, os.Stdout)
			if closeErr := reader.Close(); closeErr != nil {
				logger.Warn("close line reader", "error", closeErr)
			}
			if err != nil {
				fatal(err)
			}

		default:
			if err := session.RunBatch(ctx, "stdin", os.Stdin, os.Stdout); err != nil {
				fatal(err)
			}

		}

		if batch && session.Failures() > 0 {
			os.Exit(1)
		}
	})
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
