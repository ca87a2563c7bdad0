// Package testutil provides shared test helpers for creating config files and word file fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/lexicon/internal/word"
	"github.com/at-ishikawa/lexicon/internal/wordfile"
)

// SetupTestConfig creates a minimal config file whose default word file lives in tmpDir.
// Colors are disabled so output can be compared as plain text.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string, extraYAML ...string) string {
	t.Helper()

	configContent := fmt.Sprintf(`files:
  default_path: %s
output:
  color: false
`, filepath.Join(tmpDir, "words.txt"))
	configContent += strings.Join(extraYAML, "")

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// WordOption configures an entry created by CreateWordFile.
type WordOption func(*word.Entry)

// WithFrequency sets the frequency of an entry. Only the YAML format keeps it.
func WithFrequency(frequency int) WordOption {
	return func(e *word.Entry) {
		e.Frequency = frequency
	}
}

// Word builds an entry fixture.
func Word(w, meaning string, opts ...WordOption) word.Entry {
	entry := word.Entry{Word: w, Meaning: meaning}
	for _, opt := range opts {
		opt(&entry)
	}
	return entry
}

// CreateWordFile writes entries into dir/name in the format inferred from the name.
// Returns the path of the file.
func CreateWordFile(t *testing.T, dir, name string, entries ...word.Entry) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, wordfile.ExportAs(path, entries, wordfile.ExportOptions{}))
	return path
}
