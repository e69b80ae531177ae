package diagnostics

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/reusee/taicalc/sources"
)

// DefaultContextWidth is how many bytes of input are shown on each side of a
// failing position.
const DefaultContextWidth = 10

// Diagnostics accumulates errors of one tokenize and parse cycle.
// It keeps its own copy of the input so it can render independently.
type Diagnostics struct {
	Errors []Error
	Input  string
}

func New(input string) *Diagnostics {
	return &Diagnostics{
		Input: input,
	}
}

func (d *Diagnostics) Add(err Error) {
	d.Errors = append(d.Errors, err)
}

// Merge appends the errors of other after the existing ones.
func (d *Diagnostics) Merge(other *Diagnostics) {
	if other == nil {
		return
	}
	d.Errors = append(d.Errors, other.Errors...)
}

func (d *Diagnostics) HasErrors() bool {
	return d != nil && len(d.Errors) > 0
}

func (d *Diagnostics) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Errors)
}

// Err returns nil when there is nothing to report, otherwise d itself.
func (d *Diagnostics) Err() error {
	if !d.HasErrors() {
		return nil
	}
	return d
}

func (d *Diagnostics) Error() string {
	var sb strings.Builder
	for i, err := range d.Errors {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// Unwrap exposes the entries to errors.Is and errors.As.
func (d *Diagnostics) Unwrap() []error {
	ret := make([]error, 0, len(d.Errors))
	for _, err := range d.Errors {
		ret = append(ret, err)
	}
	return ret
}

// Join returns all entries as a single error.
func (d *Diagnostics) Join() error {
	return errors.Join(d.Unwrap()...)
}

// Render writes every error with its line and column, followed by the input
// surrounding its position, with a caret under the failing offset.
func (d *Diagnostics) Render(w io.Writer, width int) error {
	if width <= 0 {
		width = DefaultContextWidth
	}
	text := sources.NewText(d.Input)
	for _, err := range d.Errors {
		line, column := text.Position(max(0, min(err.Offset(), text.Len())))
		if _, e := fmt.Fprintf(w, "error: %s (line %d, column %d)\n", err.Error(), line, column); e != nil {
			return e
		}
		window, caret := d.contextWindow(err.Offset(), width)
		if _, e := fmt.Fprintf(w, "  %s\n  %s^\n", window, strings.Repeat(" ", caret)); e != nil {
			return e
		}
	}
	return nil
}

// contextWindow returns the input within width bytes of offset, cut on rune
// boundaries and with line breaks flattened, plus the caret column.
func (d *Diagnostics) contextWindow(offset int, width int) (string, int) {
	input := d.Input
	offset = max(0, min(offset, len(input)))
	start := max(0, offset-width)
	for start > 0 && !utf8.RuneStart(input[start]) {
		start--
	}
	end := min(len(input), offset+width)
	for end < len(input) && !utf8.RuneStart(input[end]) {
		end++
	}
	window := flatten(input[start:end])
	column := runewidth.StringWidth(flatten(input[start:offset]))
	return window, column
}

func flatten(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\r', '\t':
			return ' '
		}
		return r
	}, s)
}
