// Package shell provides an interactive line-oriented front end for the word store.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fatih/color"

	"github.com/at-ishikawa/lexicon/internal/word"
	"github.com/at-ishikawa/lexicon/internal/wordfile"
	"github.com/at-ishikawa/lexicon/internal/wordstore"
)

//go:generate mockgen -source=shell.go -destination=../mocks/shell/mock_word_store.go -package=mock_shell

// WordStore is the store the shell operates on. *wordstore.Store implements it.
type WordStore interface {
	Add(word, meaning string) error
	Restore(entry word.Entry) error
	Find(prefix string) (wordstore.FindResult, error)
	Modify(original, newWord, meaning string) error
	Remove(word string) error
	Clear()
	Entries() []word.Entry
	RankedEntries() []word.Entry
	History() []string
	ClearHistory()
}

var _ WordStore = (*wordstore.Store)(nil)

var errEnd = errors.New("end")

// Options configures file handling and output of a Shell.
type Options struct {
	// DefaultPath is used by import and export when no path is given.
	DefaultPath  string
	Format       wordfile.Format
	OnError      wordfile.ErrorPolicy
	TemplatePath string
	Color        bool
}

type Shell struct {
	store        WordStore
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	options      Options
	bold         *color.Color
	italic       *color.Color
	success      *color.Color
	failure      *color.Color
}

func New(store WordStore, stdin io.Reader, stdout io.Writer, options Options) *Shell {
	s := &Shell{
		store:        store,
		stdinReader:  bufio.NewReader(stdin),
		stdoutWriter: stdout,
		options:      options,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
		success:      color.New(color.FgGreen),
		failure:      color.New(color.FgRed),
	}
	if !options.Color {
		for _, c := range []*color.Color{s.bold, s.italic, s.success, s.failure} {
			c.DisableColor()
		}
	}
	return s
}

// Run reads and executes commands until quit, end of input, or ctx is done.
func (s *Shell) Run(ctx context.Context) error {
	s.printf("Type %s for the list of commands.\n", s.bold.Sprint("help"))

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		for {
			if ctx.Err() != nil {
				return
			}
			if err := s.Session(ctx); err != nil {
				if !errors.Is(err, errEnd) {
					errCh <- err
				}
				return
			}
		}
	}()

	select {
	case <-ctx.Done():
		return nil
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("shell: %w", err)
		}
		return nil
	}
}

// Session reads one command line and executes it.
func (s *Shell) Session(ctx context.Context) error {
	_, _ = s.bold.Fprint(s.stdoutWriter, "> ")

	line, err := s.stdinReader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("error reading input: %w", err)
	}
	eof := errors.Is(err, io.EOF)

	line = strings.TrimSpace(line)
	if line == "" {
		if eof {
			s.printf("\n")
			return errEnd
		}
		return nil
	}

	if execErr := s.Execute(line); execErr != nil {
		if errors.Is(execErr, errEnd) {
			return errEnd
		}
		s.printError(execErr)
	}
	if eof {
		return errEnd
	}
	return nil
}

func (s *Shell) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.stdoutWriter, format, args...)
}

func (s *Shell) printError(err error) {
	slog.Default().Debug("command failed", slog.Any("error", err))
	s.printf("%s %s\n", s.failure.Sprint("❌"), s.failure.Sprint(describeError(err)))
}

// describeError turns an error kind into a message for the user.
func describeError(err error) string {
	switch {
	case errors.Is(err, word.ErrInvalidWord):
		return fmt.Sprintf("Invalid word. Words must contain letters only and have a meaning (%v)", err)
	case errors.Is(err, word.ErrWordDuplicated):
		return fmt.Sprintf("The word already exists (%v)", err)
	case errors.Is(err, word.ErrWordNotFound):
		return fmt.Sprintf("The word was not found (%v)", err)
	case errors.Is(err, word.ErrFileNotFound):
		return fmt.Sprintf("The file was not found (%v)", err)
	default:
		return err.Error()
	}
}
