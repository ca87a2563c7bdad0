// Package wordfile reads and writes word files.
//
// The text format holds one record per pair of non-blank lines: the word line followed by
// the meaning line. Blank lines between records are ignored.
package wordfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/at-ishikawa/lexicon/internal/word"
)

// ErrorPolicy decides what Import does with a record the store rejects.
type ErrorPolicy string

const (
	// OnErrorHalt stops at the first rejected record. Records added before it are kept.
	OnErrorHalt ErrorPolicy = "halt"
	// OnErrorSkip skips rejected records and reports them in ImportResult.Skipped.
	OnErrorSkip ErrorPolicy = "skip"
)

// Adder is the store operation used by Import.
type Adder interface {
	Add(word, meaning string) error
}

type ImportOptions struct {
	OnError ErrorPolicy
}

// ImportResult tracks what an import did.
type ImportResult struct {
	Added   int
	Skipped []Problem
}

// Problem is a record that could not be stored.
type Problem struct {
	Line int
	Word string
	Err  error
}

func (p Problem) String() string {
	return fmt.Sprintf("line %d: %v", p.Line, p.Err)
}

type record struct {
	line    int
	word    string
	meaning string
}

// Import adds every record of the text file at path to target.
// It returns ErrFileNotFound when the file cannot be opened. With OnErrorHalt the returned
// result holds the count added before the failing record.
func Import(path string, target Adder, opts ImportOptions) (*ImportResult, error) {
	file, err := open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = file.Close()
	}()

	var result ImportResult
	err = readRecords(file, func(rec record) error {
		return apply(&result, opts, rec.line, rec.word, func() error {
			return target.Add(rec.word, rec.meaning)
		})
	})
	if err != nil {
		return &result, err
	}
	return &result, nil
}

// Export writes entries to path as word/meaning line pairs in the given order,
// replacing any existing file. Frequencies are not written.
func Export(path string, entries []word.Entry) error {
	return create(path, func(w io.Writer) error {
		bw := bufio.NewWriter(w)
		for i, entry := range entries {
			if i > 0 {
				if _, err := bw.WriteString("\n"); err != nil {
					return fmt.Errorf("bw.WriteString > %w", err)
				}
			}
			if _, err := fmt.Fprintf(bw, "%s\n%s\n", entry.Word, singleLine(entry.Meaning)); err != nil {
				return fmt.Errorf("fmt.Fprintf(%s) > %w", entry.Word, err)
			}
		}
		if err := bw.Flush(); err != nil {
			return fmt.Errorf("bw.Flush > %w", err)
		}
		return nil
	})
}

// Validate parses the text file at path without storing anything and reports every record
// that Import would reject into an empty store.
func Validate(path string) ([]Problem, error) {
	file, err := open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = file.Close()
	}()

	validator := word.NewValidator()
	seen := make(map[string]int)
	var problems []Problem
	err = readRecords(file, func(rec record) error {
		if err := validator.ValidateEntry(rec.word, rec.meaning); err != nil {
			problems = append(problems, Problem{Line: rec.line, Word: rec.word, Err: err})
			return nil
		}
		if line, ok := seen[rec.word]; ok {
			problems = append(problems, Problem{
				Line: rec.line,
				Word: rec.word,
				Err:  fmt.Errorf("%w: %q is already defined at line %d", word.ErrWordDuplicated, rec.word, line),
			})
			return nil
		}
		seen[rec.word] = rec.line
		return nil
	})
	if err != nil {
		return problems, err
	}
	return problems, nil
}

func readRecords(r io.Reader, fn func(rec record) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var pending *record
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if pending == nil {
			pending = &record{line: lineNumber, word: line}
			continue
		}
		pending.meaning = line
		if err := fn(*pending); err != nil {
			return err
		}
		pending = nil
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner.Scan > %w", err)
	}

	// A word on the last line without a meaning line.
	if pending != nil {
		return fn(*pending)
	}
	return nil
}

func apply(result *ImportResult, opts ImportOptions, line int, w string, add func() error) error {
	err := add()
	if err == nil {
		result.Added++
		return nil
	}
	if opts.OnError == OnErrorSkip && isRecordError(err) {
		result.Skipped = append(result.Skipped, Problem{Line: line, Word: w, Err: err})
		return nil
	}
	return fmt.Errorf("line %d > %w", line, err)
}

func isRecordError(err error) bool {
	return errors.Is(err, word.ErrInvalidWord) || errors.Is(err, word.ErrWordDuplicated)
}

func open(path string) (*os.File, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: no file path given", word.ErrFileNotFound)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: os.Open(%s) > %w", word.ErrFileNotFound, path, err)
	}
	return file, nil
}

func create(path string, write func(w io.Writer) error) (err error) {
	if path == "" {
		return fmt.Errorf("%w: no file path given", word.ErrFileNotFound)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: os.Create(%s) > %w", word.ErrFileNotFound, path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("file.Close(%s) > %w", path, closeErr)
		}
	}()

	return write(file)
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// singleLine keeps a meaning on one line so the file stays a sequence of pairs.
func singleLine(s string) string {
	return lineBreaks.Replace(s)
}
