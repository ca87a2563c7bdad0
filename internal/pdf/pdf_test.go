package pdf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertMarkdownToPDF(t *testing.T) {
	tests := []struct {
		name       string
		pdfPath    func(t *testing.T) string
		wantErr    bool
		wantErrMsg string
	}{
		{
			name: "invalid extension",
			pdfPath: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "words.txt")
			},
			wantErr:    true,
			wantErrMsg: "output file must have .pdf extension",
		},
		{
			name: "successful conversion",
			pdfPath: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "words.pdf")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pdfPath := tt.pdfPath(t)

			got, err := ConvertMarkdownToPDF([]byte("# Words\n\n| Word | Meaning |\n| --- | --- |\n| cat | a feline |\n"), pdfPath)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrMsg)
				return
			}

			require.NoError(t, err)
			assert.True(t, filepath.IsAbs(got))
			_, err = os.Stat(got)
			assert.NoError(t, err, "PDF file should be created")
		})
	}
}
