package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/lexicon/internal/wordfile"
)

func newLookupCommand() *cobra.Command {
	var format wordfile.Format

	command := &cobra.Command{
		Use:   "lookup <file> [prefix]",
		Short: "Look up words starting with a prefix in a word file",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			var prefix string
			if len(args) == 2 {
				prefix = args[1]
			}

			store := newStore(cfg)
			if err := importFiles(cmd.OutOrStdout(), store, args[:1], format, wordfile.ErrorPolicy(cfg.Files.OnImportError)); err != nil {
				return err
			}

			result, err := store.Find(prefix)
			if err != nil {
				return fmt.Errorf("store.Find(%s) > %w", prefix, err)
			}

			output := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(output, "%s: %s\n", result.Best.Word, result.Meaning)
			_, _ = fmt.Fprintf(output, "Frequent words: %s\n", strings.Join(result.TopWords(), ", "))
			return nil
		},
	}
	command.Flags().Var(&format, "format", fmt.Sprintf("file format. Possible values are %v", wordfile.AllFormats))

	return command
}
