// Package folding derives per-line fold levels from the scanner's output.
// It is a second pass over the already classified bytes and the per-line
// carry state; it never touches raw syntax beyond lowercasing the bytes
// of Word and Preprocessor spans.
package folding

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/nsislex/pkg/document"
	"github.com/walteh/nsislex/pkg/style"
	"gitlab.com/tozd/go/errors"
)

// maxFoldWordLen bounds the fold word buffer; the longest word that
// matters is "sectiongroupend".
const maxFoldWordLen = 15

// Folder computes fold levels over a classified Source.
type Folder struct {
	src    document.Source
	styles document.StyleReader
	lines  document.LineStates
	levels document.FoldLevels
}

func New(src document.Source, styles document.StyleReader, lines document.LineStates, levels document.FoldLevels) *Folder {
	return &Folder{
		src:    src,
		styles: styles,
		lines:  lines,
		levels: levels,
	}
}

// Fold computes a FoldLevel for every line of [start, start+length).
// start must be a line start. The pass seeds from the previous line's
// stored level, so re-folding any sub-range reproduces what a full pass
// would have written. Unbalanced source just yields unbalanced levels.
func (f *Folder) Fold(ctx context.Context, start, length int) error {
	if start < 0 || length < 0 || start > f.src.Len() {
		return errors.Errorf("invalid fold range [%d, %d+%d) in %d bytes", start, start, length, f.src.Len())
	}
	end := start + length
	if end > f.src.Len() {
		end = f.src.Len()
	}
	if start >= end {
		return nil
	}

	zerolog.Ctx(ctx).Trace().Int("start", start).Int("end", end).Msg("folding range")

	line := f.src.LineOf(start)
	levelCurrent := 0
	lineTypePrev := style.LineNone
	if line > 0 {
		levelCurrent = f.levels.Level(line - 1).After
		lineTypePrev = f.lines.LineState(line - 1).Type
	}

	levelNext := levelCurrent
	lineTypeCurrent := f.lines.LineState(line).Type
	lineEndPos := min(f.src.LineStart(line+1), end) - 1

	styleNext := f.styles.StyleAt(start)
	st := f.styles.StyleAt(start - 1)

	var word [maxFoldWordLen]byte
	wordLen := 0

	for i := start; i < end; i++ {
		stylePrev := st
		st = styleNext
		styleNext = f.styles.StyleAt(i + 1)

		switch st {
		case style.Word, style.Preprocessor:
			if wordLen < maxFoldWordLen {
				word[wordLen] = toLower(f.src.ByteAt(i))
				wordLen++
			}
			if styleNext != st {
				levelNext += foldDelta(st, string(word[:wordLen]))
				wordLen = 0
			}

		case style.BlockComment:
			// one level for the whole comment regardless of content
			if stylePrev != st {
				levelNext++
			} else if styleNext != st {
				levelNext--
			}
		}

		if i == lineEndPos {
			lineTypeNext := f.lines.LineState(line + 1).Type
			if lineTypeCurrent != style.LineNone {
				// a run of same-typed lines folds as one block: open on
				// the first line of the run, close after the last
				if lineTypeNext == lineTypeCurrent {
					levelNext++
				}
				if lineTypePrev == lineTypeCurrent {
					levelNext--
				}
			}

			f.levels.SetLevel(line, style.FoldLevel{Before: levelCurrent, After: levelNext})

			line++
			lineEndPos = min(f.src.LineStart(line+1), end) - 1
			levelCurrent = levelNext
			lineTypePrev = lineTypeCurrent
			lineTypeCurrent = lineTypeNext
		}
	}

	return nil
}

// foldDelta maps a completed Word or Preprocessor span to its level
// contribution.
func foldDelta(st style.Class, word string) int {
	if st == style.Word {
		if len(word) >= 9 && strings.HasSuffix(word, "end") {
			return -1
		}
		if strings.HasPrefix(word, "section") || word == "function" || word == "pageex" {
			return 1
		}
		return 0
	}
	if strings.HasPrefix(word, "!if") || word == "!macro" {
		return 1
	}
	if strings.HasPrefix(word, "!end") || word == "!macroend" {
		return -1
	}
	return 0
}

func toLower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + 'a' - 'A'
	}
	return b
}
