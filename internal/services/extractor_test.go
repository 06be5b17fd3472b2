package services

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/spec-scribe/internal/models"
)

type fakeExtractor struct {
	text string
	err  error
}

func (f *fakeExtractor) Extract(_ []byte) (string, error) {
	return f.text, f.err
}

func TestDetectFileType(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		data     []byte
		want     FileType
		wantErr  bool
	}{
		{"pdf extension", "spec.PDF", nil, FileTypePDF, false},
		{"docx extension", "cv.docx", nil, FileTypeDOCX, false},
		{"markdown extension", "notes.md", nil, FileTypeText, false},
		{"sniffed pdf", "upload", []byte("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n"), FileTypePDF, false},
		{"sniffed text", "upload", []byte("Senior Go engineer wanted"), FileTypeText, false},
		{"png is unsupported", "photo", []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectFileType(tt.fileName, tt.data)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unsupported file type")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractorRegistry_PlainText(t *testing.T) {
	registry := NewExtractorRegistry()

	text, err := registry.Extract("cv.txt", []byte("\xEF\xBB\xBF  Jane Doe  \n\n\n  Go developer\r\n"))

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nGo developer", text)
}

func TestExtractorRegistry_Errors(t *testing.T) {
	registry := NewExtractorRegistry()

	tests := []struct {
		name     string
		fileName string
		data     []byte
		contains string
	}{
		{"unsupported", "image.png", []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), "unsupported file type"},
		{"corrupt pdf", "broken.pdf", []byte("not really a pdf"), "PDF"},
		{"corrupt docx", "broken.docx", []byte("not a zip"), "docx"},
		{"invalid utf-8", "cv.txt", []byte{0xff, 0xfe, 0xfd}, "UTF-8"},
		{"blank text", "empty.txt", []byte("   \n\t\n"), "no text content"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := registry.Extract(tt.fileName, tt.data)
			require.Error(t, err)

			var extractionErr *models.ExtractionError
			require.True(t, errors.As(err, &extractionErr))
			assert.Equal(t, tt.fileName, extractionErr.FileName)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestExtractorRegistry_Register(t *testing.T) {
	registry := NewExtractorRegistry()
	registry.Register(FileTypePDF, &fakeExtractor{text: "  page one  \n\n page two "})

	text, err := registry.Extract("spec.pdf", []byte("%PDF-1.4"))

	require.NoError(t, err)
	assert.Equal(t, "page one\npage two", text)
}

func TestDocumentXMLToText(t *testing.T) {
	content := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Backend</w:t></w:r><w:r><w:t xml:space="preserve"> Engineer</w:t></w:r></w:p>
    <w:p><w:r><w:t>Go</w:t><w:tab/><w:t>Postgres</w:t></w:r></w:p>
    <w:p><w:r><w:instrText>IGNORED</w:instrText></w:r></w:p>
  </w:body>
</w:document>`

	text, err := documentXMLToText(content)

	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer\nGo\tPostgres\n\n", text)
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "a\nb", CleanText("\n  a \n\n\t b\t\n"))
	assert.Equal(t, "", CleanText(" \n "))
}
