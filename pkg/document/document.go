// Package document holds the host side of the lexing core: the text
// buffer, the per-byte style store, and the per-line state and fold-level
// stores the scanner and folder read and write. The core packages consume
// the interfaces declared here; Document is the in-memory implementation
// used by the CLI and by tests.
package document

import (
	"sort"

	"github.com/google/uuid"
	"github.com/walteh/nsislex/pkg/style"
)

// Source is random access to the scanned text plus its line index.
type Source interface {
	// Len returns the content length in bytes.
	Len() int
	// ByteAt returns the byte at off, or 0 when off is out of range.
	ByteAt(off int) byte
	// LineCount returns the number of lines. Content with no trailing
	// newline still counts its final partial line.
	LineCount() int
	// LineStart returns the byte offset of the first byte of line. For
	// line >= LineCount it returns Len.
	LineStart(line int) int
	// LineOf returns the line containing the byte at off.
	LineOf(off int) int
}

// StyleSink receives classifications as the scanner closes spans.
type StyleSink interface {
	SetStyleRange(start, end int, c style.Class)
}

// StyleReader is the folding pass's view of the scanner's output.
type StyleReader interface {
	StyleAt(off int) style.Class
}

// LineStates persists the scanner's per-line carry state. Reads outside
// the stored range yield the zero LineState.
type LineStates interface {
	LineState(line int) style.LineState
	SetLineState(line int, st style.LineState)
}

// FoldLevels persists the folder's per-line records. Reads outside the
// stored range yield the zero FoldLevel.
type FoldLevels interface {
	Level(line int) style.FoldLevel
	SetLevel(line int, lv style.FoldLevel)
}

// Document is an in-memory text document together with every derived
// store the two passes need. It implements Source, StyleSink,
// StyleReader, LineStates and FoldLevels.
type Document struct {
	ID  uuid.UUID
	URI string

	content    []byte
	lineStarts []int
	styles     []style.Class
	lineStates []style.LineState
	levels     []style.FoldLevel
}

var (
	_ Source      = (*Document)(nil)
	_ StyleSink   = (*Document)(nil)
	_ StyleReader = (*Document)(nil)
	_ LineStates  = (*Document)(nil)
	_ FoldLevels  = (*Document)(nil)
)

// New builds a document over content. The content slice is not copied;
// callers hand over ownership.
func New(uri string, content []byte) *Document {
	d := &Document{
		ID:  uuid.New(),
		URI: uri,
	}
	d.Reset(content)
	return d
}

// Reset replaces the content and drops all derived state. Styles, line
// states and fold levels are re-sized and zeroed; the caller is expected
// to re-run both passes.
func (d *Document) Reset(content []byte) {
	d.content = content

	starts := []int{0}
	for i, b := range content {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	d.lineStarts = starts
	d.styles = make([]style.Class, len(content))
	d.lineStates = make([]style.LineState, len(starts))
	d.levels = make([]style.FoldLevel, len(starts))
}

// Content returns the backing bytes.
func (d *Document) Content() []byte {
	return d.content
}

func (d *Document) Len() int {
	return len(d.content)
}

func (d *Document) ByteAt(off int) byte {
	if off < 0 || off >= len(d.content) {
		return 0
	}
	return d.content[off]
}

func (d *Document) LineCount() int {
	return len(d.lineStarts)
}

func (d *Document) LineStart(line int) int {
	if line < 0 {
		return 0
	}
	if line >= len(d.lineStarts) {
		return len(d.content)
	}
	return d.lineStarts[line]
}

func (d *Document) LineOf(off int) int {
	if off < 0 {
		return 0
	}
	// first line whose start is past off, minus one
	i := sort.Search(len(d.lineStarts), func(i int) bool {
		return d.lineStarts[i] > off
	})
	return i - 1
}

// LineText returns the bytes of line without its end-of-line bytes.
func (d *Document) LineText(line int) []byte {
	start := d.LineStart(line)
	end := d.LineStart(line + 1)
	for end > start && (d.content[end-1] == '\n' || d.content[end-1] == '\r') {
		end--
	}
	return d.content[start:end]
}

func (d *Document) SetStyleRange(start, end int, c style.Class) {
	if start < 0 {
		start = 0
	}
	if end > len(d.styles) {
		end = len(d.styles)
	}
	for i := start; i < end; i++ {
		d.styles[i] = c
	}
}

func (d *Document) StyleAt(off int) style.Class {
	if off < 0 || off >= len(d.styles) {
		return style.Default
	}
	return d.styles[off]
}

func (d *Document) LineState(line int) style.LineState {
	if line < 0 || line >= len(d.lineStates) {
		return style.LineState{}
	}
	return d.lineStates[line]
}

func (d *Document) SetLineState(line int, st style.LineState) {
	if line < 0 || line >= len(d.lineStates) {
		return
	}
	d.lineStates[line] = st
}

func (d *Document) Level(line int) style.FoldLevel {
	if line < 0 || line >= len(d.levels) {
		return style.FoldLevel{}
	}
	return d.levels[line]
}

func (d *Document) SetLevel(line int, lv style.FoldLevel) {
	if line < 0 || line >= len(d.levels) {
		return
	}
	d.levels[line] = lv
}
