// Package position maps byte offsets in a scanned document to line and
// display-column positions for presentation to editors and humans.
package position

import (
	"fmt"

	"github.com/apparentlymart/go-textseg/v13/textseg"
	"github.com/walteh/nsislex/pkg/document"
)

// Place is a 0-based line and display column. The column counts grapheme
// clusters, not bytes, so multi-byte text before a span does not inflate
// its reported position.
type Place struct {
	Line   int
	Column int
}

func (p Place) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Range is a half-open [Start, End) pair of places.
type Range struct {
	Start Place
	End   Place
}

func (r Range) String() string {
	return fmt.Sprintf("%s-%s", r.Start, r.End)
}

// PlaceOf maps a byte offset through the source's line index.
func PlaceOf(src document.Source, off int) Place {
	if off < 0 {
		off = 0
	}
	if off > src.Len() {
		off = src.Len()
	}
	line := src.LineOf(off)
	start := src.LineStart(line)

	prefix := make([]byte, off-start)
	for i := range prefix {
		prefix[i] = src.ByteAt(start + i)
	}
	return Place{Line: line, Column: columnWidth(prefix)}
}

// RangeOf maps the half-open byte range [start, end).
func RangeOf(src document.Source, start, end int) Range {
	return Range{Start: PlaceOf(src, start), End: PlaceOf(src, end)}
}

// columnWidth counts the grapheme clusters in the line prefix. Invalid
// UTF-8 degrades to byte counting, which is what a plain-ASCII host
// would report anyway.
func columnWidth(prefix []byte) int {
	n, err := textseg.TokenCount(prefix, textseg.ScanGraphemeClusters)
	if err != nil {
		return len(prefix)
	}
	return n
}
