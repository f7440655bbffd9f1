// Package highlight orchestrates the two passes over a document: the
// byte-classifying scan and the fold-level pass. It is the surface a
// host (CLI, language server) calls after opening or editing a document.
package highlight

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/walteh/nsislex/pkg/document"
	"github.com/walteh/nsislex/pkg/folding"
	"github.com/walteh/nsislex/pkg/keywords"
	"github.com/walteh/nsislex/pkg/scanner"
	"github.com/walteh/nsislex/pkg/style"
	"gitlab.com/tozd/go/errors"
)

// Run scans and folds the whole document from a clean slate.
func Run(ctx context.Context, doc *document.Document, words *keywords.Table) error {
	return run(ctx, doc, words, 0)
}

// Rescan re-runs both passes after an edit on fromLine. The start of the
// re-scan is extended backward to a safe boundary: a line whose
// predecessor neither continued nor ended inside a block comment, so the
// scan state there is known to be Default. Everything from that line to
// the end of the document is re-classified and re-folded.
func Rescan(ctx context.Context, doc *document.Document, words *keywords.Table, fromLine int) error {
	if fromLine < 0 {
		fromLine = 0
	}
	if fromLine >= doc.LineCount() {
		fromLine = doc.LineCount() - 1
	}
	return run(ctx, doc, words, safeLine(doc, fromLine))
}

func run(ctx context.Context, doc *document.Document, words *keywords.Table, fromLine int) error {
	logger := zerolog.Ctx(ctx)
	began := time.Now()

	start := doc.LineStart(fromLine)
	length := doc.Len() - start

	sc := scanner.New(doc, doc, doc, words)
	endState, err := sc.Scan(ctx, start, length, style.Default)
	if err != nil {
		return errors.Errorf("scanning %s: %w", doc.URI, err)
	}

	fl := folding.New(doc, doc, doc, doc)
	if err := fl.Fold(ctx, start, length); err != nil {
		return errors.Errorf("folding %s: %w", doc.URI, err)
	}

	logger.Debug().
		Str("uri", doc.URI).
		Int("from_line", fromLine).
		Int("bytes", length).
		Str("end_state", endState.String()).
		Dur("took", time.Since(began)).
		Msg("document highlighted")
	return nil
}

// safeLine walks backward from line to a line the scanner may start at
// in the Default class: its predecessor did not continue, and its
// predecessor's last byte was not inside a class that carries across the
// line break.
func safeLine(doc *document.Document, line int) int {
	for line > 0 {
		prev := doc.LineState(line - 1)
		if !prev.Continuation && !survivesLineBreak(doc.StyleAt(doc.LineStart(line)-1)) {
			break
		}
		line--
	}
	return line
}

// survivesLineBreak reports whether a class still open at a line's final
// byte is live on the next line: block comments and delimited variables
// span lines unconditionally, strings when the line continued.
func survivesLineBreak(c style.Class) bool {
	switch c {
	case style.BlockComment,
		style.VariableBraced, style.VariableParen,
		style.StringSingle, style.StringDouble, style.StringBacktick:
		return true
	}
	return false
}

// Span is a maximal run of bytes sharing one classification.
type Span struct {
	Start int
	End   int
	Class style.Class
}

// Spans collapses the document's per-byte styles into maximal spans,
// omitting Default runs.
func Spans(doc *document.Document) []Span {
	var spans []Span
	n := doc.Len()
	for i := 0; i < n; {
		c := doc.StyleAt(i)
		j := i + 1
		for j < n && doc.StyleAt(j) == c {
			j++
		}
		if c != style.Default {
			spans = append(spans, Span{Start: i, End: j, Class: c})
		}
		i = j
	}
	return spans
}
