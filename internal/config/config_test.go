package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			HistorySize: 10,
			TopMatches:  3,
		},
		Files: FilesConfig{
			DefaultPath:   "words.txt",
			Format:        "",
			OnImportError: "halt",
		},
		Output: OutputConfig{
			Color: true,
		},
	}
}

func TestConfigLoader_Load(t *testing.T) {
	tests := []struct {
		name              string
		configContent     string
		useExplicitPath   bool
		wantErr           bool
		want              func() *Config
		wantErrorContains []string
	}{
		{
			name: "valid config file with custom values",
			configContent: `store:
  history_size: 5
  top_matches: 1
files:
  default_path: custom/words.yml
  format: yaml
  on_import_error: skip
  autosave: true
output:
  color: false
`,
			want: func() *Config {
				return &Config{
					Store: StoreConfig{HistorySize: 5, TopMatches: 1},
					Files: FilesConfig{
						DefaultPath:   "custom/words.yml",
						Format:        "yaml",
						OnImportError: "skip",
						Autosave:      true,
					},
					Output: OutputConfig{Color: false},
				}
			},
		},
		{
			name: "invalid YAML format",
			configContent: `store:
  history_size: 5
  invalid yaml format here [[[
`,
			wantErr: true,
			wantErrorContains: []string{
				"configuration file found but could not be read",
				"Please check the file format and permissions",
			},
		},
		{
			name: "unknown keys use defaults",
			configContent: `wrong_key:
  some_value: test
`,
			want: defaultConfig,
		},
		{
			name:          "no config file uses defaults",
			configContent: "",
			want:          defaultConfig,
		},
		{
			name: "partial config with missing fields uses defaults",
			configContent: `store:
  top_matches: 5
`,
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Store.TopMatches = 5
				return cfg
			},
		},
		{
			name: "explicit config file path",
			configContent: `files:
  default_path: explicit/words.txt
`,
			useExplicitPath: true,
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Files.DefaultPath = "explicit/words.txt"
				return cfg
			},
		},
		{
			name: "history size above the maximum",
			configContent: `store:
  history_size: 11
`,
			wantErr:           true,
			wantErrorContains: []string{"invalid configuration", "history_size must be 10 or less"},
		},
		{
			name: "unknown format",
			configContent: `files:
  format: csv
`,
			wantErr:           true,
			wantErrorContains: []string{"invalid configuration", "format must be one of [text yaml pdf]"},
		},
		{
			name: "unknown import error policy",
			configContent: `files:
  on_import_error: retry
`,
			wantErr:           true,
			wantErrorContains: []string{"on_import_error must be one of [halt skip]"},
		},
		{
			name: "missing template file",
			configContent: `templates:
  word_list_template: /non/existent/word-list.md.go.tmpl
`,
			wantErr:           true,
			wantErrorContains: []string{"word_list_template must be an existing and readable file"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()

			var configPath string
			if tt.useExplicitPath {
				configPath = filepath.Join(tempDir, "config.yml")
				require.NoError(t, os.WriteFile(configPath, []byte(tt.configContent), 0644))
			} else {
				if tt.configContent != "" {
					require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(tt.configContent), 0644))
				}
				chdir(t, tempDir)
			}

			loader, err := NewConfigLoader(configPath)
			require.NoError(t, err)
			got, err := loader.Load()

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				for _, wantMsg := range tt.wantErrorContains {
					assert.Contains(t, err.Error(), wantMsg)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want(), got)
		})
	}
}

func TestConfigLoader_Load_Environment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("LEXICON_FILE", "from-env.txt")
	t.Setenv("LEXICON_COLOR", "false")

	loader, err := NewConfigLoader("")
	require.NoError(t, err)
	got, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, "from-env.txt", got.Files.DefaultPath)
	assert.False(t, got.Output.Color)
}

func TestConfigLoader_Load_TemplateFile(t *testing.T) {
	tempDir := t.TempDir()
	templatePath := filepath.Join(tempDir, "word-list.md.go.tmpl")
	require.NoError(t, os.WriteFile(templatePath, []byte("{{ .Title }}"), 0644))
	configPath := filepath.Join(tempDir, "config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("templates:\n  word_list_template: "+templatePath+"\n"), 0644))

	loader, err := NewConfigLoader(configPath)
	require.NoError(t, err)
	got, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, templatePath, got.Templates.WordListTemplate)
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent to testing.T.Chdir from Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	oldDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(oldDir))
	})
}
