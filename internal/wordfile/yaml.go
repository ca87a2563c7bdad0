package wordfile

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/lexicon/internal/word"
)

// Restorer is the store operation used by ImportYAML.
type Restorer interface {
	Restore(entry word.Entry) error
}

// Snapshot is the YAML layout. Unlike the text format it keeps frequencies.
type Snapshot struct {
	Words []word.Entry `yaml:"words"`
}

// ExportYAML writes entries with their frequencies to path.
func ExportYAML(path string, entries []word.Entry) error {
	return create(path, func(w io.Writer) error {
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(Snapshot{Words: entries}); err != nil {
			return fmt.Errorf("yaml.NewEncoder().Encode() > %w", err)
		}
		if err := encoder.Close(); err != nil {
			return fmt.Errorf("encoder.Close() > %w", err)
		}
		return nil
	})
}

// ImportYAML restores every entry of the YAML snapshot at path into target,
// applying the same error policy as Import. Problem.Line is the 1-based entry index.
func ImportYAML(path string, target Restorer, opts ImportOptions) (*ImportResult, error) {
	file, err := open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = file.Close()
	}()

	var snapshot Snapshot
	if err := yaml.NewDecoder(file).Decode(&snapshot); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("yaml.NewDecoder().Decode() > %w", err)
	}

	var result ImportResult
	for i, entry := range snapshot.Words {
		if err := apply(&result, opts, i+1, entry.Word, func() error {
			return target.Restore(entry)
		}); err != nil {
			return &result, err
		}
	}
	return &result, nil
}
