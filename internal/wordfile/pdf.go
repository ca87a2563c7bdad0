package wordfile

import (
	"bytes"
	"fmt"

	"github.com/at-ishikawa/lexicon/internal/assets"
	"github.com/at-ishikawa/lexicon/internal/pdf"
	"github.com/at-ishikawa/lexicon/internal/word"
)

const pdfTitle = "Words"

// ExportPDF renders entries as a markdown word list and converts it into a PDF at path.
func ExportPDF(path string, entries []word.Entry, opts ExportOptions) error {
	if path == "" {
		return fmt.Errorf("%w: no file path given", word.ErrFileNotFound)
	}

	var markdown bytes.Buffer
	if err := assets.WriteWordList(&markdown, opts.TemplatePath, assets.WordListTemplate{
		Title:   pdfTitle,
		Entries: entries,
		History: opts.History,
	}); err != nil {
		return fmt.Errorf("assets.WriteWordList > %w", err)
	}

	if _, err := pdf.ConvertMarkdownToPDF(markdown.Bytes(), path); err != nil {
		return fmt.Errorf("pdf.ConvertMarkdownToPDF(%s) > %w", path, err)
	}
	return nil
}
