package logs

import (
	"io"
	"os"

	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
}

// Writer receives the text log lines. Tests fork it to silence or capture logs.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}
