package services

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/spec-scribe/internal/models"
)

func TestExtractorRegistry_PDFRoundTrip(t *testing.T) {
	data, err := renderMarkdownPDF("# Engineer\n\n## Overview\n\nBuild things")
	require.NoError(t, err)

	text, err := NewExtractorRegistry().Extract("spec.pdf", data)

	require.NoError(t, err)
	assert.Contains(t, text, "Engineer")
	assert.Contains(t, text, "Overview")
	assert.Contains(t, text, "Build things")
	for _, line := range strings.Split(text, "\n") {
		assert.NotEmpty(t, line)
	}
}

func TestExtractorRegistry_PDFDetectedByContent(t *testing.T) {
	data, err := renderMarkdownPDF("Build things")
	require.NoError(t, err)

	text, err := NewExtractorRegistry().Extract("upload", data)

	require.NoError(t, err)
	assert.Contains(t, text, "Build things")
}

func TestExtractorRegistry_CorruptPDF(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"not a pdf", []byte("plain words pretending to be a pdf")},
		{"truncated pdf", []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewExtractorRegistry().Extract("broken.pdf", tt.data)

			var extractionErr *models.ExtractionError
			require.True(t, errors.As(err, &extractionErr), "got %v", err)
			assert.Equal(t, "broken.pdf", extractionErr.FileName)
		})
	}
}
