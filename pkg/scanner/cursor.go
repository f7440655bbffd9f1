package scanner

import (
	"github.com/walteh/nsislex/pkg/document"
	"github.com/walteh/nsislex/pkg/style"
)

// cursor walks a byte range one position at a time, tracking the active
// classification and flushing each span to the style sink when the
// classification changes. It also tracks line boundaries so the scanner
// can do its per-line bookkeeping.
type cursor struct {
	src  document.Source
	sink document.StyleSink

	pos int
	end int

	chPrev byte
	ch     byte
	chNext byte

	state     style.Class
	spanStart int

	line          int
	lineStart     int
	nextLineStart int
}

func newCursor(src document.Source, sink document.StyleSink, start, end int, initial style.Class) *cursor {
	line := src.LineOf(start)
	sc := &cursor{
		src:           src,
		sink:          sink,
		pos:           start,
		end:           end,
		ch:            src.ByteAt(start),
		chNext:        src.ByteAt(start + 1),
		state:         initial,
		spanStart:     start,
		line:          line,
		lineStart:     src.LineStart(line),
		nextLineStart: src.LineStart(line + 1),
	}
	if start > 0 {
		sc.chPrev = src.ByteAt(start - 1)
	}
	return sc
}

func (sc *cursor) more() bool {
	return sc.pos < sc.end
}

func (sc *cursor) forward() {
	sc.pos++
	sc.chPrev = sc.ch
	sc.ch = sc.chNext
	sc.chNext = sc.src.ByteAt(sc.pos + 1)
	if sc.pos == sc.nextLineStart {
		sc.line++
		sc.lineStart = sc.nextLineStart
		sc.nextLineStart = sc.src.LineStart(sc.line + 1)
	}
}

func (sc *cursor) forwardN(n int) {
	for i := 0; i < n; i++ {
		sc.forward()
	}
}

// flush emits the open span [spanStart, pos) with the active class.
func (sc *cursor) flush() {
	if sc.pos > sc.spanStart {
		sc.sink.SetStyleRange(sc.spanStart, sc.pos, sc.state)
		sc.spanStart = sc.pos
	}
}

// setState closes the open span and starts a new one classified c.
func (sc *cursor) setState(c style.Class) {
	sc.flush()
	sc.state = c
}

// forwardSetState advances once and then closes the span, so the current
// byte is the last byte of the closing span.
func (sc *cursor) forwardSetState(c style.Class) {
	sc.forward()
	sc.setState(c)
}

// changeState retags the open span without closing it.
func (sc *cursor) changeState(c style.Class) {
	sc.state = c
}

func (sc *cursor) match(a, b byte) bool {
	return sc.ch == a && sc.chNext == b
}

func (sc *cursor) getRelative(n int) byte {
	return sc.src.ByteAt(sc.pos + n)
}

func (sc *cursor) atLineStart() bool {
	return sc.pos == sc.lineStart
}

func (sc *cursor) atLineEnd() bool {
	return sc.pos == sc.nextLineStart-1
}

func (sc *cursor) lengthCurrent() int {
	return sc.pos - sc.spanStart
}

// currentLowered copies the open span into dst, lowercased, truncating
// silently at the buffer's capacity.
func (sc *cursor) currentLowered(dst []byte) []byte {
	n := sc.lengthCurrent()
	if n > len(dst) {
		n = len(dst)
	}
	for i := 0; i < n; i++ {
		b := sc.src.ByteAt(sc.spanStart + i)
		if b >= 'A' && b <= 'Z' {
			b += 'a' - 'A'
		}
		dst[i] = b
	}
	return dst[:n]
}

// lineEndsWith reports whether the current line's last byte, ignoring
// trailing whitespace and the end-of-line bytes, equals b.
func (sc *cursor) lineEndsWith(b byte) bool {
	for i := sc.nextLineStart - 1; i >= sc.lineStart; i-- {
		ch := sc.src.ByteAt(i)
		if !isSpace(ch) {
			return ch == b
		}
	}
	return false
}

// complete flushes whatever span is still open at the end of the range.
func (sc *cursor) complete() {
	sc.flush()
}
