package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/lexicon/internal/wordfile"
)

func newConvertCommand() *cobra.Command {
	var from, to wordfile.Format

	command := &cobra.Command{
		Use:   "convert <source> <destination>",
		Short: "Convert a word file into another format",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			source, destination := args[0], args[1]

			store := newStore(cfg)
			if err := importFiles(cmd.OutOrStdout(), store, []string{source}, from, wordfile.ErrorPolicy(cfg.Files.OnImportError)); err != nil {
				return err
			}

			entries := store.RankedEntries()
			if err := wordfile.ExportAs(destination, entries, wordfile.ExportOptions{
				Format:       to,
				TemplatePath: cfg.Templates.WordListTemplate,
			}); err != nil {
				return fmt.Errorf("wordfile.ExportAs(%s) > %w", destination, err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Converted %d word(s) from %s to %s\n", len(entries), source, destination)
			return nil
		},
	}

	flags := command.Flags()
	flags.Var(&from, "from", fmt.Sprintf("source format. Possible values are %v", wordfile.AllFormats))
	flags.Var(&to, "to", fmt.Sprintf("destination format. Possible values are %v", wordfile.AllFormats))

	return command
}
