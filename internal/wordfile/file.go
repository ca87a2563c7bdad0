package wordfile

import (
	"fmt"

	"github.com/at-ishikawa/lexicon/internal/word"
)

// Target is a store that accepts both text and snapshot imports.
type Target interface {
	Adder
	Restorer
}

// ExportOptions selects the output format. An empty Format is inferred from the path.
type ExportOptions struct {
	Format Format
	// TemplatePath overrides the embedded markdown template for PDF output.
	TemplatePath string
	// History is printed below the word list in PDF output.
	History []string
}

// ExportAs writes entries to path in the format chosen by opts.
func ExportAs(path string, entries []word.Entry, opts ExportOptions) error {
	switch resolveFormat(opts.Format, path) {
	case FormatYAML:
		return ExportYAML(path, entries)
	case FormatPDF:
		return ExportPDF(path, entries, opts)
	default:
		return Export(path, entries)
	}
}

// ImportAs reads path in the given format into target. An empty format is inferred from the path.
func ImportAs(path string, format Format, target Target, opts ImportOptions) (*ImportResult, error) {
	switch resolveFormat(format, path) {
	case FormatYAML:
		return ImportYAML(path, target, opts)
	case FormatPDF:
		return nil, fmt.Errorf("cannot import %s: %s files are export only", path, FormatPDF)
	default:
		return Import(path, target, opts)
	}
}

func resolveFormat(format Format, path string) Format {
	if format != "" {
		return format
	}
	return FormatFromPath(path)
}
