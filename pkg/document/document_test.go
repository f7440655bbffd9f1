package document_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/walteh/nsislex/pkg/document"
	"github.com/walteh/nsislex/pkg/style"
)

func TestLineIndex(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		lineCount  int
		lineStarts []int
	}{
		{name: "empty", content: "", lineCount: 1, lineStarts: []int{0}},
		{name: "single_line_no_newline", content: "abc", lineCount: 1, lineStarts: []int{0}},
		{name: "trailing_newline", content: "abc\n", lineCount: 2, lineStarts: []int{0, 4}},
		{name: "multiple_lines", content: "a\nbb\nccc", lineCount: 3, lineStarts: []int{0, 2, 5}},
		{name: "crlf", content: "a\r\nb", lineCount: 2, lineStarts: []int{0, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := document.New("test.nsi", []byte(tt.content))
			require.Equal(t, tt.lineCount, doc.LineCount())
			for i, want := range tt.lineStarts {
				require.Equal(t, want, doc.LineStart(i), "start of line %d", i)
			}
			require.Equal(t, doc.Len(), doc.LineStart(tt.lineCount), "line start past the end clamps to Len")
			require.Equal(t, 0, doc.LineStart(-1))
		})
	}
}

func TestLineOf(t *testing.T) {
	doc := document.New("test.nsi", []byte("a\nbb\nccc"))

	require.Equal(t, 0, doc.LineOf(0))
	require.Equal(t, 0, doc.LineOf(1), "the newline belongs to its line")
	require.Equal(t, 1, doc.LineOf(2))
	require.Equal(t, 1, doc.LineOf(4))
	require.Equal(t, 2, doc.LineOf(5))
	require.Equal(t, 2, doc.LineOf(7))
	require.Equal(t, 0, doc.LineOf(-3))
}

func TestLineText(t *testing.T) {
	doc := document.New("test.nsi", []byte("abc\r\ndef\n"))

	require.Equal(t, "abc", string(doc.LineText(0)), "CR and LF are stripped")
	require.Equal(t, "def", string(doc.LineText(1)))
	require.Equal(t, "", string(doc.LineText(2)))
}

func TestByteAtOutOfRange(t *testing.T) {
	doc := document.New("test.nsi", []byte("ab"))

	require.Equal(t, byte('a'), doc.ByteAt(0))
	require.Equal(t, byte(0), doc.ByteAt(2))
	require.Equal(t, byte(0), doc.ByteAt(-1))
}

func TestStoresTolerateOutOfRange(t *testing.T) {
	doc := document.New("test.nsi", []byte("a\nb\n"))

	require.Equal(t, style.LineState{}, doc.LineState(-1))
	require.Equal(t, style.LineState{}, doc.LineState(99))
	doc.SetLineState(99, style.LineState{Type: style.LineComment}) // dropped

	require.Equal(t, style.FoldLevel{}, doc.Level(-1))
	require.Equal(t, style.FoldLevel{}, doc.Level(99))
	doc.SetLevel(-5, style.FoldLevel{Before: 1, After: 1}) // dropped

	require.Equal(t, style.Default, doc.StyleAt(-1))
	require.Equal(t, style.Default, doc.StyleAt(doc.Len()))
}

func TestStyleRangeClamped(t *testing.T) {
	doc := document.New("test.nsi", []byte("abcd"))
	doc.SetStyleRange(-2, 99, style.Number)

	for i := 0; i < doc.Len(); i++ {
		require.Equal(t, style.Number, doc.StyleAt(i))
	}
}

func TestResetDropsDerivedState(t *testing.T) {
	doc := document.New("test.nsi", []byte("abc\n"))
	doc.SetStyleRange(0, 3, style.Word)
	doc.SetLineState(0, style.LineState{Type: style.LineComment})

	doc.Reset([]byte("x"))

	require.Equal(t, 1, doc.Len())
	require.Equal(t, 1, doc.LineCount())
	require.Equal(t, style.Default, doc.StyleAt(0))
	require.Equal(t, style.LineState{}, doc.LineState(0))
}

func TestManager(t *testing.T) {
	m := document.NewManager()

	doc := m.Open("file:///tmp/a.nsi", []byte("Nop\n"))
	require.Equal(t, "/tmp/a.nsi", doc.URI, "file scheme is stripped")
	require.NotEqual(t, "00000000-0000-0000-0000-000000000000", doc.ID.String(), "documents get an identity")

	got, ok := m.Get("/tmp/a.nsi")
	require.True(t, ok)
	require.Same(t, doc, got)

	got, ok = m.Get("file:///tmp/a.nsi")
	require.True(t, ok, "lookup normalizes the same way")
	require.Same(t, doc, got)

	m.Close("/tmp/a.nsi")
	_, ok = m.Get("/tmp/a.nsi")
	require.False(t, ok)
}
