package sessions

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/reusee/taicalc/logs"
	"github.com/reusee/taicalc/sources"
)

// RunBatch handles every line of r in order, stopping at #exit.
// name labels the lines in failure reports.
func (s *Session) RunBatch(ctx context.Context, name string, r io.Reader, w io.Writer) error {
	content, err := io.ReadAll(r)
	if err != nil {
		return logs.WrapSpan(ctx, wrap(err))
	}
	text := sources.NewText(string(content))
	for i, line := range text.Lines() {
		quit, err := s.handle(ctx, text.SpanString(line.Span()), w, fmt.Sprintf("%s:%d", name, i+1))
		if err != nil {
			return logs.WrapSpan(ctx, wrap(err))
		}
		if quit {
			break
		}
	}
	return nil
}

// RunFile runs the file at path in batch mode.
func (s *Session) RunFile(ctx context.Context, path string, w io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return wrap(err)
	}
	defer f.Close()
	return s.RunBatch(ctx, path, f, w)
}

// RunPrelude runs each file in batch mode.
func (s *Session) RunPrelude(ctx context.Context, files PreludeFiles, w io.Writer) error {
	for _, path := range files {
		s.logger.InfoContext(ctx, "prelude", "path", path)
		if err := s.RunFile(ctx, path, w); err != nil {
			return err
		}
	}
	return nil
}

// RunInteractive reads lines from reader until the input ends or #exit.
func (s *Session) RunInteractive(ctx context.Context, reader LineReader, prompt Prompt, w io.Writer) error {
	for {
		line, err := reader.ReadLine(string(prompt))
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return logs.WrapSpan(ctx, wrap(err))
		}
		quit, err := s.Handle(ctx, line, w)
		if err != nil {
			return logs.WrapSpan(ctx, wrap(err))
		}
		if quit {
			return nil
		}
	}
}
