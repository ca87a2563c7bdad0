package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/lexicon/internal/word"
	"github.com/at-ishikawa/lexicon/internal/wordfile"
	"github.com/at-ishikawa/lexicon/internal/wordstore"
)

func TestSetupTestConfig(t *testing.T) {
	tmpDir := t.TempDir()
	got := SetupTestConfig(t, tmpDir, "store:\n  top_matches: 1\n")

	assert.Equal(t, filepath.Join(tmpDir, "config.yml"), got)

	content, err := os.ReadFile(got)
	require.NoError(t, err)
	assert.Contains(t, string(content), "default_path: "+filepath.Join(tmpDir, "words.txt"))
	assert.Contains(t, string(content), "color: false")
	assert.Contains(t, string(content), "top_matches: 1")
}

func TestCreateWordFile(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		entries  []word.Entry
		want     []word.Entry
	}{
		{
			name:     "text file drops frequencies",
			fileName: "words.txt",
			entries: []word.Entry{
				Word("cat", "a feline", WithFrequency(2)),
				Word("car", "a vehicle"),
			},
			want: []word.Entry{
				{Word: "cat", Meaning: "a feline"},
				{Word: "car", Meaning: "a vehicle"},
			},
		},
		{
			name:     "yaml file keeps frequencies",
			fileName: "words.yml",
			entries: []word.Entry{
				Word("cat", "a feline", WithFrequency(2)),
			},
			want: []word.Entry{
				{Word: "cat", Meaning: "a feline", Frequency: 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := CreateWordFile(t, t.TempDir(), tt.fileName, tt.entries...)

			store := wordstore.New(wordstore.Options{})
			_, err := wordfile.ImportAs(path, "", store, wordfile.ImportOptions{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, store.Entries())
		})
	}
}
