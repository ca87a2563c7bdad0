// Package wordstore provides the in-memory word store with frequency-ranked prefix search
// and a bounded search history.
package wordstore

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/at-ishikawa/lexicon/internal/word"
)

const DefaultTopMatches = 3

// Options configures a Store. Zero values fall back to the defaults.
type Options struct {
	HistorySize int
	TopMatches  int
}

// FindResult is the outcome of a successful Find.
type FindResult struct {
	// Meaning is the meaning of Best.
	Meaning string
	// Best is the match with the highest frequency after this search.
	Best word.Entry
	// Top holds the highest ranked matches, at most Options.TopMatches of them.
	Top []word.Entry
	// Matches holds every match ranked by frequency.
	Matches []word.Entry
}

// TopWords returns the words of Top in rank order.
func (r FindResult) TopWords() []string {
	words := make([]string, 0, len(r.Top))
	for _, e := range r.Top {
		words = append(words, e.Word)
	}
	return words
}

// Store owns every entry and the search history.
// All operations are serialized by a single mutex covering both.
type Store struct {
	mu         sync.Mutex
	validator  *word.Validator
	entries    map[string]*word.Entry
	order      []string
	history    *History
	topMatches int
}

func New(opts Options) *Store {
	topMatches := opts.TopMatches
	if topMatches <= 0 {
		topMatches = DefaultTopMatches
	}
	return &Store{
		validator:  word.NewValidator(),
		entries:    make(map[string]*word.Entry),
		history:    NewHistory(opts.HistorySize),
		topMatches: topMatches,
	}
}

// Add inserts a new word with frequency 0.
func (s *Store) Add(w, meaning string) error {
	return s.Restore(word.Entry{Word: w, Meaning: meaning})
}

// Restore inserts an entry keeping its frequency. It applies the same checks as Add.
func (s *Store) Restore(entry word.Entry) error {
	if err := s.validator.ValidateEntry(entry.Word, entry.Meaning); err != nil {
		return err
	}
	if entry.Frequency < 0 {
		return fmt.Errorf("%w: %q has a negative frequency %d", word.ErrInvalidWord, entry.Word, entry.Frequency)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[entry.Word]; ok {
		return fmt.Errorf("%w: %q", word.ErrWordDuplicated, entry.Word)
	}
	s.insert(entry)
	return nil
}

// Find searches all words starting with prefix, counts one search for each match,
// and records the best match in the history.
// An empty prefix matches every word.
func (s *Store) Find(prefix string) (FindResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matches []word.Entry
	for _, w := range s.order {
		if !strings.HasPrefix(w, prefix) {
			continue
		}
		entry := s.entries[w]
		entry.Frequency++
		matches = append(matches, *entry)
	}
	if len(matches) == 0 {
		return FindResult{}, fmt.Errorf("%w: no word starts with %q", word.ErrWordNotFound, prefix)
	}

	sortByFrequency(matches)
	best := matches[0]
	s.history.Push(best.Word)

	return FindResult{
		Meaning: best.Meaning,
		Best:    best,
		Top:     slices.Clone(matches[:min(len(matches), s.topMatches)]),
		Matches: matches,
	}, nil
}

// Modify renames original to newWord, keeping its frequency.
// An empty meaning keeps the current meaning.
func (s *Store) Modify(original, newWord, meaning string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[original]
	if !ok {
		return fmt.Errorf("%w: %q", word.ErrWordNotFound, original)
	}
	if !s.validator.IsValid(newWord) {
		return fmt.Errorf("%w: %q must contain only letters", word.ErrInvalidWord, newWord)
	}
	if strings.TrimSpace(meaning) == "" {
		meaning = entry.Meaning
	}

	if newWord == original {
		entry.Meaning = meaning
		return nil
	}
	if _, ok := s.entries[newWord]; ok {
		return fmt.Errorf("%w: %q", word.ErrWordDuplicated, newWord)
	}

	s.delete(original)
	s.insert(word.Entry{
		Word:      newWord,
		Meaning:   meaning,
		Frequency: entry.Frequency,
	})
	return nil
}

func (s *Store) Remove(w string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[w]; !ok {
		return fmt.Errorf("%w: %q", word.ErrWordNotFound, w)
	}
	s.delete(w)
	return nil
}

// Clear removes every entry. The search history is kept.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[string]*word.Entry)
	s.order = nil
}

// Get returns a copy of the entry for w without counting a search.
func (s *Store) Get(w string) (word.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[w]
	if !ok {
		return word.Entry{}, fmt.Errorf("%w: %q", word.ErrWordNotFound, w)
	}
	return *entry, nil
}

// Entries returns a snapshot of all entries in insertion order.
func (s *Store) Entries() []word.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]word.Entry, 0, len(s.order))
	for _, w := range s.order {
		result = append(result, *s.entries[w])
	}
	return result
}

// RankedEntries returns a snapshot of all entries ordered by descending frequency.
// Entries with the same frequency keep their insertion order.
func (s *Store) RankedEntries() []word.Entry {
	entries := s.Entries()
	sortByFrequency(entries)
	return entries
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// History returns the searched words, most recent first.
func (s *Store) History() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.List()
}

func (s *Store) ClearHistory() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history.Clear()
}

func (s *Store) insert(entry word.Entry) {
	s.entries[entry.Word] = &entry
	s.order = append(s.order, entry.Word)
}

func (s *Store) delete(w string) {
	delete(s.entries, w)
	if i := slices.Index(s.order, w); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}
}

func sortByFrequency(entries []word.Entry) {
	slices.SortStableFunc(entries, func(a, b word.Entry) int {
		return cmp.Compare(b.Frequency, a.Frequency)
	})
}
