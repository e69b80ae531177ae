package sessions

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/chzyer/readline"
	"github.com/peterh/liner"
	"github.com/reusee/taicalc/logs"
)

// LineReader reads interactive input. ReadLine returns io.EOF when the user
// ends the input or aborts the prompt.
type LineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

type NewLineReader func() (LineReader, error)

func (Module) NewLineReader(
	editor LineEditor,
	historyFile HistoryFile,
	logger logs.Logger,
) NewLineReader {
	return func() (LineReader, error) {
		switch editor {
		case LineEditorLiner:
			return newLinerReader(string(historyFile), logger), nil
		case LineEditorReadline:
			return newReadlineReader(string(historyFile))
		}
		return nil, fmt.Errorf("unknown line editor: %s", editor)
	}
}

type linerReader struct {
	state       *liner.State
	historyFile string
	logger      logs.Logger
}

func newLinerReader(historyFile string, logger logs.Logger) *linerReader {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	if historyFile != "" {
		if f, err := os.Open(historyFile); err == nil {
			if _, err := state.ReadHistory(f); err != nil {
				logger.Warn("read history", "error", err)
			}
			f.Close()
		}
	}
	return &linerReader{
		state:       state,
		historyFile: historyFile,
		logger:      logger,
	}
}

func (l *linerReader) ReadLine(prompt string) (string, error) {
	line, err := l.state.Prompt(prompt)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", io.EOF
		}
		return "", err
	}
	if line != "" {
		l.state.AppendHistory(line)
	}
	return line, nil
}

func (l *linerReader) Close() error {
	if l.historyFile != "" {
		if err := l.writeHistory(); err != nil {
			l.logger.Warn("write history", "error", err)
		}
	}
	return l.state.Close()
}

func (l *linerReader) writeHistory() error {
	if err := os.MkdirAll(filepath.Dir(l.historyFile), 0755); err != nil {
		return err
	}
	f, err := os.Create(l.historyFile)
	if err != nil {
		return err
	}
	if _, err := l.state.WriteHistory(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

type readlineReader struct {
	instance *readline.Instance
}

func newReadlineReader(historyFile string) (*readlineReader, error) {
	instance, err := readline.NewEx(&readline.Config{
		HistoryFile: historyFile,
	})
	if err != nil {
		return nil, err
	}
	return &readlineReader{
		instance: instance,
	}, nil
}

func (r *readlineReader) ReadLine(prompt string) (string, error) {
	r.instance.SetPrompt(prompt)
	line, err := r.instance.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", io.EOF
	}
	return line, err
}

func (r *readlineReader) Close() error {
	return r.instance.Close()
}
