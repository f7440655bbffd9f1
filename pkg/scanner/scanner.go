// Package scanner classifies NSIS source bytes. It is a single-pass,
// resumable state machine: given the classification active at the end of
// the previous range and the previous line's carry state, it writes a
// classification for every byte in the range, a LineState for every line
// it completes, and returns the classification active at the range end.
package scanner

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/nsislex/pkg/document"
	"github.com/walteh/nsislex/pkg/keywords"
	"github.com/walteh/nsislex/pkg/style"
	"gitlab.com/tozd/go/errors"
)

// identCap bounds the identifier capture buffer. Text beyond it is
// truncated for classification only; scanning stays correct for every
// byte that follows.
const identCap = 128

// Scanner runs the classification pass over a Source, writing spans to a
// StyleSink and carry state to a LineStates store.
type Scanner struct {
	src    document.Source
	styles document.StyleSink
	lines  document.LineStates
	words  *keywords.Table
}

func New(src document.Source, styles document.StyleSink, lines document.LineStates, words *keywords.Table) *Scanner {
	return &Scanner{
		src:    src,
		styles: styles,
		lines:  lines,
		words:  words,
	}
}

// Scan classifies [start, start+length) starting in class initial and
// returns the class active at the end of the range. start must be a line
// start; resuming from one call's returned class at the next line start
// reproduces the classifications of a single larger call.
func (s *Scanner) Scan(ctx context.Context, start, length int, initial style.Class) (style.Class, error) {
	if start < 0 || length < 0 || start > s.src.Len() {
		return initial, errors.Errorf("invalid scan range [%d, %d+%d) in %d bytes", start, start, length, s.src.Len())
	}
	end := start + length
	if end > s.src.Len() {
		end = s.src.Len()
	}

	zerolog.Ctx(ctx).Trace().Int("start", start).Int("end", end).Str("initial", initial.String()).Msg("scanning range")

	sc := newCursor(s.src, s.styles, start, end, initial)

	visibleChars := 0
	lineContinuation := false
	lineType := style.LineNone
	// class to restore when a variable interpolation closes: the
	// enclosing string, or Default at top level
	variableOuter := style.Default

	if sc.line > 0 {
		prev := s.lines.LineState(sc.line - 1)
		lineContinuation = prev.Continuation
		if lineContinuation {
			// mid logical line: nothing on this line is first-on-line
			visibleChars++
			lineType = prev.Type
		}
	}

	var ident [identCap]byte

	for sc.more() {
		switch sc.state {
		case style.Operator:
			sc.setState(style.Default)

		case style.Number:
			if !isDecimalPart(sc.chPrev, sc.ch, sc.chNext) {
				if sc.ch == '%' {
					sc.forward()
				}
				sc.setState(style.Default)
			}

		case style.Identifier:
			if !isIdentChar(sc.ch) {
				s.resolveIdentifier(sc, ident[:], visibleChars, &lineType)
				sc.setState(style.Default)
			}

		case style.StringSingle, style.StringDouble, style.StringBacktick:
			if sc.ch == '$' {
				if sc.chNext == '$' || (sc.chNext == '\\' && isEscapeTarget(sc.getRelative(2))) {
					enclosing := sc.state
					sc.setState(style.EscapeChar)
					if sc.chNext == '\\' {
						sc.forwardN(2)
					} else {
						sc.forward()
					}
					sc.forwardSetState(enclosing)
					continue
				}
				if sc.chNext == '{' || sc.chNext == '(' {
					variableOuter = sc.state
					if sc.chNext == '{' {
						sc.setState(style.VariableBraced)
					} else {
						sc.setState(style.VariableParen)
					}
				} else if isIdentChar(sc.chNext) {
					variableOuter = sc.state
					sc.setState(style.Variable)
				}
			} else if sc.atLineStart() {
				// unterminated string truncates at the line boundary
				// unless the previous line continued
				if !lineContinuation {
					sc.setState(style.Default)
				}
			} else if (sc.state == style.StringSingle && sc.ch == '\'') ||
				(sc.state == style.StringDouble && sc.ch == '"') ||
				(sc.state == style.StringBacktick && sc.ch == '`') {
				sc.forwardSetState(style.Default)
			}

		case style.Variable:
			if !isIdentChar(sc.ch) {
				// zero-width close: the byte belongs to the outer state
				sc.setState(variableOuter)
				continue
			}

		case style.VariableBraced, style.VariableParen:
			if (sc.state == style.VariableBraced && sc.ch == '}') ||
				(sc.state == style.VariableParen && sc.ch == ')') {
				sc.forwardSetState(variableOuter)
				continue
			}

		case style.CommentLine:
			if sc.atLineStart() {
				if !lineContinuation {
					sc.setState(style.Default)
				}
			}

		case style.BlockComment:
			if sc.match('*', '/') {
				sc.forward()
				sc.forwardSetState(style.Default)
			}
		}

		if sc.state == style.Default {
			switch {
			case sc.ch == ';' || sc.ch == '#':
				sc.setState(style.CommentLine)
				if visibleChars == 0 {
					lineType = style.LineComment
				}
			case sc.match('/', '*'):
				sc.setState(style.BlockComment)
				sc.forward()
			case sc.ch == '\'':
				sc.setState(style.StringSingle)
			case sc.ch == '"':
				sc.setState(style.StringDouble)
			case sc.ch == '`':
				sc.setState(style.StringBacktick)
			case isNumberStart(sc.ch, sc.chNext):
				sc.setState(style.Number)
			case sc.ch == '$' && isIdentChar(sc.chNext):
				variableOuter = style.Default
				sc.setState(style.Variable)
			case sc.ch == '$' && (sc.chNext == '{' || sc.chNext == '('):
				variableOuter = style.Default
				if sc.chNext == '{' {
					sc.setState(style.VariableBraced)
				} else {
					sc.setState(style.VariableParen)
				}
			case (visibleChars == 0 && sc.ch == '!') || isIdentStart(sc.ch):
				sc.setState(style.Identifier)
			case isOperator(sc.ch):
				sc.setState(style.Operator)
			}
		}

		if !isSpace(sc.ch) {
			visibleChars++
		}
		if sc.atLineEnd() {
			lineContinuation = sc.lineEndsWith('\\')
			s.lines.SetLineState(sc.line, style.LineState{Type: lineType, Continuation: lineContinuation})
			if !lineContinuation {
				visibleChars = 0
				lineType = style.LineNone
			}
		}
		sc.forward()
	}

	// an identifier cut off by the end of the range still resolves, so no
	// emitted span carries the transient class
	if sc.state == style.Identifier {
		s.resolveIdentifier(sc, ident[:], visibleChars, &lineType)
		sc.complete()
		sc.state = style.Default
	} else {
		sc.complete()
	}

	return sc.state, nil
}

// resolveIdentifier rewrites the open Identifier span to its final class:
// preprocessor directives first, then the first-on-line word/label/
// instruction split, else no classification at all.
func (s *Scanner) resolveIdentifier(sc *cursor, buf []byte, visibleChars int, lineType *style.LineType) {
	word := sc.currentLowered(buf)
	if len(word) > 0 && word[0] == '!' {
		sc.changeState(style.Preprocessor)
		switch string(word) {
		case "!include":
			*lineType = style.LineInclude
		case "!define":
			*lineType = style.LineDefine
		}
	} else if visibleChars == sc.lengthCurrent() {
		if s.words.Contains(string(word)) {
			sc.changeState(style.Word)
		} else if sc.ch == ':' && sc.chNext != ':' {
			sc.changeState(style.Label)
		} else {
			sc.changeState(style.Instruction)
		}
	} else {
		// not first on its line: the span was never a real candidate
		sc.changeState(style.Default)
	}
}
