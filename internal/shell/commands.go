package shell

import (
	"errors"
	"fmt"
	"strings"

	"github.com/at-ishikawa/lexicon/internal/wordfile"
)

type command struct {
	usage       string
	description string
	run         func(s *Shell, args []string, rest string) error
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"add": {
			usage:       "add <word> <meaning>",
			description: "Add a new word",
			run:         (*Shell).add,
		},
		"find": {
			usage:       "find [prefix]",
			description: "Look up words starting with the prefix",
			run:         (*Shell).find,
		},
		"modify": {
			usage:       "modify <word> <new word> [meaning]",
			description: "Rename a word and optionally change its meaning",
			run:         (*Shell).modify,
		},
		"remove": {
			usage:       "remove <word>",
			description: "Remove a word",
			run:         (*Shell).remove,
		},
		"clear": {
			usage:       "clear",
			description: "Remove every word",
			run:         (*Shell).clear,
		},
		"list": {
			usage:       "list",
			description: "List every word by search frequency",
			run:         (*Shell).list,
		},
		"history": {
			usage:       "history [clear]",
			description: "Show or clear the recent searches",
			run:         (*Shell).history,
		},
		"import": {
			usage:       "import [path]",
			description: "Add the words of a file",
			run:         (*Shell).importFile,
		},
		"export": {
			usage:       "export [path]",
			description: "Write every word to a file",
			run:         (*Shell).exportFile,
		},
		"help": {
			usage:       "help",
			description: "Show this message",
			run:         (*Shell).help,
		},
		"quit": {
			usage:       "quit",
			description: "Leave the shell",
			run: func(*Shell, []string, string) error {
				return errEnd
			},
		},
	}
	commands["exit"] = commands["quit"]
}

var errUsage = errors.New("usage")

// Execute runs a single command line.
func (s *Shell) Execute(line string) error {
	name, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	rest = strings.TrimSpace(rest)
	cmd, ok := commands[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("unknown command %q. Type help for the list of commands", name)
	}

	err := cmd.run(s, strings.Fields(rest), rest)
	if errors.Is(err, errUsage) {
		return fmt.Errorf("usage: %s", cmd.usage)
	}
	return err
}

// afterFields returns what follows the first n whitespace separated fields of s.
func afterFields(s string, n int) string {
	for i := 0; i < n; i++ {
		s = strings.TrimLeft(s, " \t")
		idx := strings.IndexAny(s, " \t")
		if idx < 0 {
			return ""
		}
		s = s[idx:]
	}
	return strings.TrimSpace(s)
}

func (s *Shell) add(args []string, rest string) error {
	if len(args) < 2 {
		return errUsage
	}
	if err := s.store.Add(args[0], afterFields(rest, 1)); err != nil {
		return err
	}
	s.printf("%s Added %s\n", s.success.Sprint("✅"), s.bold.Sprint(args[0]))
	return nil
}

func (s *Shell) find(args []string, _ string) error {
	if len(args) > 1 {
		return errUsage
	}
	var prefix string
	if len(args) == 1 {
		prefix = args[0]
	}

	result, err := s.store.Find(prefix)
	if err != nil {
		return err
	}

	s.printf("%s: %s\n", s.bold.Sprint(result.Best.Word), s.italic.Sprint(result.Meaning))
	s.printf("Frequent words:\n")
	for i, e := range result.Top {
		s.printf("  %d. %s (%d)\n", i+1, e.Word, e.Frequency)
	}
	return nil
}

func (s *Shell) modify(args []string, rest string) error {
	if len(args) < 2 {
		return errUsage
	}
	if err := s.store.Modify(args[0], args[1], afterFields(rest, 2)); err != nil {
		return err
	}
	s.printf("%s Modified %s to %s\n", s.success.Sprint("✅"), s.bold.Sprint(args[0]), s.bold.Sprint(args[1]))
	return nil
}

func (s *Shell) remove(args []string, _ string) error {
	if len(args) != 1 {
		return errUsage
	}
	if err := s.store.Remove(args[0]); err != nil {
		return err
	}
	s.printf("%s Removed %s\n", s.success.Sprint("✅"), s.bold.Sprint(args[0]))
	return nil
}

func (s *Shell) clear(args []string, _ string) error {
	if len(args) != 0 {
		return errUsage
	}
	s.store.Clear()
	s.printf("%s Cleared every word\n", s.success.Sprint("✅"))
	return nil
}

func (s *Shell) list(args []string, _ string) error {
	if len(args) != 0 {
		return errUsage
	}
	entries := s.store.RankedEntries()
	if len(entries) == 0 {
		s.printf("No words.\n")
		return nil
	}
	for _, e := range entries {
		s.printf("%s (%d): %s\n", s.bold.Sprint(e.Word), e.Frequency, e.Meaning)
	}
	return nil
}

func (s *Shell) history(args []string, _ string) error {
	switch {
	case len(args) == 0:
		history := s.store.History()
		if len(history) == 0 {
			s.printf("No searches yet.\n")
			return nil
		}
		for i, w := range history {
			s.printf("  %d. %s\n", i+1, w)
		}
		return nil
	case len(args) == 1 && args[0] == "clear":
		s.store.ClearHistory()
		s.printf("%s Cleared the search history\n", s.success.Sprint("✅"))
		return nil
	default:
		return errUsage
	}
}

func (s *Shell) importFile(args []string, _ string) error {
	path, err := s.path(args)
	if err != nil {
		return err
	}

	result, err := wordfile.ImportAs(path, s.options.Format, s.store, wordfile.ImportOptions{
		OnError: s.options.OnError,
	})
	if result != nil {
		for _, problem := range result.Skipped {
			s.printf("Skipped %s\n", problem)
		}
		s.printf("Imported %d word(s) from %s\n", result.Added, path)
	}
	return err
}

func (s *Shell) exportFile(args []string, _ string) error {
	path, err := s.path(args)
	if err != nil {
		return err
	}

	entries := s.store.RankedEntries()
	if err := wordfile.ExportAs(path, entries, wordfile.ExportOptions{
		Format:       s.options.Format,
		TemplatePath: s.options.TemplatePath,
		History:      s.store.History(),
	}); err != nil {
		return err
	}
	s.printf("%s Exported %d word(s) to %s\n", s.success.Sprint("✅"), len(entries), path)
	return nil
}

func (s *Shell) path(args []string) (string, error) {
	switch len(args) {
	case 0:
		return s.options.DefaultPath, nil
	case 1:
		return args[0], nil
	default:
		return "", errUsage
	}
}

func (s *Shell) help(_ []string, _ string) error {
	for _, name := range []string{"add", "find", "modify", "remove", "clear", "list", "history", "import", "export", "help", "quit"} {
		cmd := commands[name]
		s.printf("  %-36s %s\n", cmd.usage, cmd.description)
	}
	return nil
}
