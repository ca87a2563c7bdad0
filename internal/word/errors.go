package word

import "errors"

var (
	// ErrInvalidWord is returned when a word is empty, contains a non-letter, or has no meaning.
	ErrInvalidWord = errors.New("invalid word")
	// ErrWordDuplicated is returned when a word already exists in the store.
	ErrWordDuplicated = errors.New("word duplicated")
	// ErrWordNotFound is returned when no stored word matches.
	ErrWordNotFound = errors.New("word not found")
	// ErrFileNotFound is returned when an import or export path is empty or cannot be opened.
	ErrFileNotFound = errors.New("file not found")
)
