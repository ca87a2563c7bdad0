package assets

import (
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/at-ishikawa/lexicon/internal/word"
)

const wordListTemplateName = "word-list.md.go.tmpl"

//go:embed templates/word-list.md.go.tmpl
var fallbackWordListTemplate string

// WordListTemplate is the data passed to the word list template.
type WordListTemplate struct {
	Title   string
	Entries []word.Entry
	History []string
}

// ParseWordListTemplate parses templatePath, falling back to the embedded template
// when the path is empty, missing or cannot be parsed.
func ParseWordListTemplate(templatePath string) (*template.Template, error) {
	return parseTemplateWithFallback(templatePath, fallbackWordListTemplate)
}

// WriteWordList renders data as a markdown word list.
func WriteWordList(output io.Writer, templatePath string, data WordListTemplate) error {
	tmpl, err := ParseWordListTemplate(templatePath)
	if err != nil {
		return fmt.Errorf("ParseWordListTemplate > %w", err)
	}
	if err := tmpl.Execute(output, data); err != nil {
		return fmt.Errorf("tmpl.Execute > %w", err)
	}
	return nil
}

var markdownCellEscaper = strings.NewReplacer("|", `\|`, "\r\n", " ", "\n", " ")

func parseTemplateWithFallback(templatePath string, fallbackTemplate string) (*template.Template, error) {
	funcMap := template.FuncMap{
		"join":   strings.Join,
		"escape": markdownCellEscaper.Replace,
		"inc": func(i int) int {
			return i + 1
		},
	}

	if templatePath != "" {
		if _, err := os.Stat(templatePath); err == nil {
			fileName := filepath.Base(templatePath)
			tmpl, err := template.New(fileName).
				Funcs(funcMap).
				ParseFiles(templatePath)
			if err == nil {
				return tmpl, nil
			}
			slog.Default().Warn("failed to parse a templatePath",
				slog.String("templatePath", templatePath),
				slog.Any("error", err),
			)
		}
	}

	tmpl, err := template.New(wordListTemplateName).
		Funcs(funcMap).
		Parse(fallbackTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded template: %w", err)
	}

	return tmpl, nil
}
