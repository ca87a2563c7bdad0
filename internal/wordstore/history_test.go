package wordstore

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistory_Push(t *testing.T) {
	tests := []struct {
		name  string
		size  int
		words []string
		want  []string
	}{
		{
			name:  "most recent first",
			size:  10,
			words: []string{"cat", "dog", "bird"},
			want:  []string{"bird", "dog", "cat"},
		},
		{
			name:  "duplicates are kept",
			size:  10,
			words: []string{"cat", "cat", "dog", "cat"},
			want:  []string{"cat", "dog", "cat", "cat"},
		},
		{
			name:  "oldest word is dropped when full",
			size:  3,
			words: []string{"a", "b", "c", "d"},
			want:  []string{"d", "c", "b"},
		},
		{
			name:  "size above the maximum is clamped",
			size:  20,
			words: []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"},
			want:  []string{"l", "k", "j", "i", "h", "g", "f", "e", "d", "c"},
		},
		{
			name:  "zero size uses the maximum",
			size:  0,
			words: []string{"a"},
			want:  []string{"a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHistory(tt.size)
			for _, w := range tt.words {
				h.Push(w)
			}
			assert.Equal(t, tt.want, h.List())
			assert.Equal(t, len(tt.want), h.Len())
		})
	}
}

func TestHistory_NeverExceedsMaximum(t *testing.T) {
	h := NewHistory(MaxHistorySize)
	for i := 0; i < 100; i++ {
		h.Push(fmt.Sprintf("word%d", i))
		assert.LessOrEqual(t, h.Len(), MaxHistorySize)
	}
}

func TestHistory_ListReturnsCopy(t *testing.T) {
	h := NewHistory(10)
	h.Push("cat")

	list := h.List()
	list[0] = "changed"

	assert.Equal(t, []string{"cat"}, h.List())
}

func TestHistory_Clear(t *testing.T) {
	h := NewHistory(10)
	h.Push("cat")
	h.Push("dog")

	h.Clear()

	assert.Empty(t, h.List())
	h.Push("bird")
	assert.Equal(t, []string{"bird"}, h.List())
}
