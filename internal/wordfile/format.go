package wordfile

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
)

// Format is a word file format.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatPDF  Format = "pdf"
)

var (
	_          pflag.Value = (*Format)(nil)
	AllFormats             = []Format{FormatText, FormatYAML, FormatPDF}
)

func (f *Format) Set(val string) error {
	for _, format := range AllFormats {
		if val == string(format) {
			*f = format
			return nil
		}
	}
	return fmt.Errorf("invalid format: %s", val)
}

func (f Format) String() string {
	return string(f)
}

func (f *Format) Type() string {
	return "format"
}

// FormatFromPath infers a format from the file extension. Unknown extensions are text.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return FormatYAML
	case ".pdf":
		return FormatPDF
	default:
		return FormatText
	}
}
