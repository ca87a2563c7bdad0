// Package word provides the dictionary entry model, word validation and the error kinds
// shared by the store and the file codecs.
package word

// Entry is one dictionary word with its meaning and search frequency.
type Entry struct {
	Word      string `yaml:"word"`
	Meaning   string `yaml:"meaning"`
	Frequency int    `yaml:"frequency"`
}
