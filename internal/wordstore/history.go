package wordstore

// MaxHistorySize is the upper bound of the search history.
const MaxHistorySize = 10

// History is a bounded, most-recent-first log of searched words.
// It holds plain strings and is not synchronized; Store guards it with its own mutex.
type History struct {
	size  int
	words []string
}

// NewHistory creates a history holding at most size words, clamped to [1, MaxHistorySize].
func NewHistory(size int) *History {
	if size <= 0 || size > MaxHistorySize {
		size = MaxHistorySize
	}
	return &History{
		size:  size,
		words: make([]string, 0, size),
	}
}

// Push inserts word at the front and drops the oldest word when the history is full.
// Duplicates are kept.
func (h *History) Push(word string) {
	h.words = append(h.words, "")
	copy(h.words[1:], h.words)
	h.words[0] = word
	if len(h.words) > h.size {
		h.words = h.words[:h.size]
	}
}

// List returns a copy of the history, most recent first.
func (h *History) List() []string {
	result := make([]string, len(h.words))
	copy(result, h.words)
	return result
}

func (h *History) Clear() {
	h.words = h.words[:0]
}

func (h *History) Len() int {
	return len(h.words)
}
