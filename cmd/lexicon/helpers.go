package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/at-ishikawa/lexicon/internal/config"
	"github.com/at-ishikawa/lexicon/internal/wordfile"
	"github.com/at-ishikawa/lexicon/internal/wordstore"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

func newStore(cfg *config.Config) *wordstore.Store {
	return wordstore.New(wordstore.Options{
		HistorySize: cfg.Store.HistorySize,
		TopMatches:  cfg.Store.TopMatches,
	})
}

// importFiles loads every path into store and reports each file on output.
func importFiles(output io.Writer, store *wordstore.Store, paths []string, format wordfile.Format, policy wordfile.ErrorPolicy) error {
	for _, path := range paths {
		result, err := wordfile.ImportAs(path, format, store, wordfile.ImportOptions{OnError: policy})
		if result != nil {
			for _, problem := range result.Skipped {
				_, _ = fmt.Fprintf(output, "Skipped %s: %s\n", path, problem)
			}
			slog.Default().Debug("imported a word file",
				slog.String("path", path),
				slog.Int("added", result.Added),
				slog.Int("skipped", len(result.Skipped)),
			)
		}
		if err != nil {
			return fmt.Errorf("wordfile.ImportAs(%s) > %w", path, err)
		}
	}
	return nil
}
