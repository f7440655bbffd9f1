package style_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/walteh/nsislex/pkg/style"
)

func TestLineStatePackRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		st   style.LineState
	}{
		{name: "zero", st: style.LineState{}},
		{name: "comment", st: style.LineState{Type: style.LineComment}},
		{name: "include_continued", st: style.LineState{Type: style.LineInclude, Continuation: true}},
		{name: "define", st: style.LineState{Type: style.LineDefine}},
		{name: "continuation_only", st: style.LineState{Continuation: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.st, style.UnpackLineState(tt.st.Pack()))
		})
	}
}

func TestLineStateEncodingIsIndependent(t *testing.T) {
	// the continuation bit must not disturb the type bits
	w := style.LineState{Type: style.LineDefine, Continuation: true}.Pack()
	require.Equal(t, style.LineDefine, style.UnpackLineState(w).Type)
	require.True(t, style.UnpackLineState(w).Continuation)
}

func TestFoldLevelPackRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		lv   style.FoldLevel
	}{
		{name: "zero", lv: style.FoldLevel{}},
		{name: "header", lv: style.FoldLevel{Before: 1, After: 2}},
		{name: "closer", lv: style.FoldLevel{Before: 2, After: 1}},
		{name: "deep", lv: style.FoldLevel{Before: 12, After: 12}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.lv, style.UnpackFoldLevel(tt.lv.Pack()))
		})
	}
}

func TestFoldLevelHeader(t *testing.T) {
	require.True(t, style.FoldLevel{Before: 0, After: 1}.Header())
	require.False(t, style.FoldLevel{Before: 1, After: 1}.Header())
	require.False(t, style.FoldLevel{Before: 1, After: 0}.Header())
}

func TestClassStrings(t *testing.T) {
	require.Equal(t, "word", style.Word.String())
	require.Equal(t, "preprocessor", style.Preprocessor.String())
	require.Equal(t, "unknown", style.Class(250).String())
}
