package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/lexicon/internal/bootstrap"
	"github.com/at-ishikawa/lexicon/internal/shell"
	"github.com/at-ishikawa/lexicon/internal/wordfile"
)

func newShellCommand() *cobra.Command {
	var (
		importPaths []string
		autosave    bool
		format      wordfile.Format
	)

	command := &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive session to add, find and modify words",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if format == "" {
				format = wordfile.Format(cfg.Files.Format)
			}
			if !cmd.Flags().Changed("autosave") {
				autosave = cfg.Files.Autosave
			}
			policy := wordfile.ErrorPolicy(cfg.Files.OnImportError)

			store := newStore(cfg)
			if err := importFiles(cmd.OutOrStdout(), store, importPaths, format, policy); err != nil {
				return err
			}

			sh := shell.New(store, cmd.InOrStdin(), cmd.OutOrStdout(), shell.Options{
				DefaultPath:  cfg.Files.DefaultPath,
				Format:       format,
				OnError:      policy,
				TemplatePath: cfg.Templates.WordListTemplate,
				Color:        cfg.Output.Color,
			})

			app := bootstrap.New()
			if autosave {
				app.AddShutdownHook(func(ctx context.Context) error {
					path := cfg.Files.DefaultPath
					if err := wordfile.ExportAs(path, store.RankedEntries(), wordfile.ExportOptions{
						Format:       format,
						TemplatePath: cfg.Templates.WordListTemplate,
						History:      store.History(),
					}); err != nil {
						return fmt.Errorf("autosave to %s > %w", path, err)
					}
					slog.Default().Debug("saved words", slog.String("path", path), slog.Int("count", store.Len()))
					return nil
				})
			}
			return app.Run(cmd.Context(), sh.Run)
		},
	}

	flags := command.Flags()
	flags.StringArrayVar(&importPaths, "import", nil, "word file to import before the session starts. Can be repeated")
	flags.BoolVar(&autosave, "autosave", false, "export every word to the default file when the session ends")
	flags.Var(&format, "format", fmt.Sprintf("file format. Possible values are %v. Inferred from the extension by default", wordfile.AllFormats))

	return command
}
