package position_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/walteh/nsislex/pkg/document"
	"github.com/walteh/nsislex/pkg/position"
)

func TestPlaceOf(t *testing.T) {
	tests := []struct {
		name    string
		content string
		offset  int
		want    position.Place
	}{
		{
			name:    "start_of_document",
			content: "hello",
			offset:  0,
			want:    position.Place{Line: 0, Column: 0},
		},
		{
			name:    "middle_of_first_line",
			content: "hello world",
			offset:  6,
			want:    position.Place{Line: 0, Column: 6},
		},
		{
			name:    "second_line",
			content: "ab\ncdef",
			offset:  5,
			want:    position.Place{Line: 1, Column: 2},
		},
		{
			name:    "multibyte_prefix_counts_clusters",
			content: "héllo x", // é is two bytes
			offset:  7,         // the x
			want:    position.Place{Line: 0, Column: 6},
		},
		{
			name:    "offset_clamped_to_length",
			content: "ab",
			offset:  99,
			want:    position.Place{Line: 0, Column: 2},
		},
		{
			name:    "negative_offset_clamped",
			content: "ab",
			offset:  -1,
			want:    position.Place{Line: 0, Column: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := document.New("test.nsi", []byte(tt.content))
			require.Equal(t, tt.want, position.PlaceOf(doc, tt.offset))
		})
	}
}

func TestRangeOf(t *testing.T) {
	doc := document.New("test.nsi", []byte("ab\ncdef\n"))

	r := position.RangeOf(doc, 3, 7)
	require.Equal(t, position.Place{Line: 1, Column: 0}, r.Start)
	require.Equal(t, position.Place{Line: 1, Column: 4}, r.End)
	require.Equal(t, "1:0-1:4", r.String())
}
