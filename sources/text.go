package sources

// Text is an immutable input string with a precomputed line table.
type Text struct {
	Content string
	lines   []Line
}

// Line is one line of a Text. Start and Length exclude the line break;
// BreakWidth is 0 for the last line, 1 for LF or CR, 2 for CR-LF.
type Line struct {
	Start      int
	Length     int
	BreakWidth int
}

func (l Line) End() int {
	return l.Start + l.Length
}

func (l Line) Span() Span {
	return Span{Start: l.Start, Length: l.Length}
}

func (l Line) SpanWithBreak() Span {
	return Span{Start: l.Start, Length: l.Length + l.BreakWidth}
}

type Span struct {
	Start  int
	Length int
}

func (s Span) End() int {
	return s.Start + s.Length
}

func NewText(content string) *Text {
	return &Text{
		Content: content,
		lines:   splitLines(content),
	}
}

func splitLines(content string) (lines []Line) {
	pos := 0
	lineStart := 0
	for pos < len(content) {
		width := lineBreakWidth(content, pos)
		if width == 0 {
			pos++
			continue
		}
		lines = append(lines, Line{
			Start:      lineStart,
			Length:     pos - lineStart,
			BreakWidth: width,
		})
		pos += width
		lineStart = pos
	}
	lines = append(lines, Line{
		Start:  lineStart,
		Length: pos - lineStart,
	})
	return
}

func lineBreakWidth(content string, pos int) int {
	switch content[pos] {
	case '\r':
		if pos+1 < len(content) && content[pos+1] == '\n' {
			return 2
		}
		return 1
	case '\n':
		return 1
	}
	return 0
}

func (t *Text) Len() int {
	return len(t.Content)
}

func (t *Text) Lines() []Line {
	return t.lines
}

// LineIndex returns the zero-based line containing offset.
// Offsets inside a line break belong to the line the break terminates.
func (t *Text) LineIndex(offset int) int {
	lo, hi := 0, len(t.lines)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if t.lines[mid].Start <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// Position converts a byte offset to a one-based line and column.
func (t *Text) Position(offset int) (line int, column int) {
	idx := t.LineIndex(offset)
	return idx + 1, offset - t.lines[idx].Start + 1
}

func (t *Text) SpanString(span Span) string {
	return t.Slice(span.Start, span.End())
}

// Slice returns Content[start:end] with both bounds clamped to the text.
func (t *Text) Slice(start, end int) string {
	start = clamp(start, 0, len(t.Content))
	end = clamp(end, start, len(t.Content))
	return t.Content[start:end]
}

func (t *Text) String() string {
	return t.Content
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
