package word

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

const wordTag = "required,alphaunicode"

// Validator decides whether a word can be stored.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{
		validate: validator.New(),
	}
}

// IsValid reports whether word is non-empty and consists of letters only.
func (v *Validator) IsValid(word string) bool {
	return v.validate.Var(word, wordTag) == nil
}

// ValidateEntry returns ErrInvalidWord when the word is not valid or the meaning is blank.
func (v *Validator) ValidateEntry(word, meaning string) error {
	if !v.IsValid(word) {
		return fmt.Errorf("%w: %q must contain only letters", ErrInvalidWord, word)
	}
	if strings.TrimSpace(meaning) == "" {
		return fmt.Errorf("%w: %q has no meaning", ErrInvalidWord, word)
	}
	return nil
}
