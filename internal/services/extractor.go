package services

import (
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"alfredoptarigan/spec-scribe/internal/models"
)

type FileType string

const (
	FileTypePDF  FileType = "pdf"
	FileTypeDOCX FileType = "docx"
	FileTypeText FileType = "text"
)

const docxMIME = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// TextExtractor pulls plain text out of one document format.
type TextExtractor interface {
	Extract(data []byte) (string, error)
}

// ExtractorRegistry picks a TextExtractor by file type. It is read-only after
// construction and safe for concurrent use.
type ExtractorRegistry struct {
	extractors map[FileType]TextExtractor
}

func NewExtractorRegistry() *ExtractorRegistry {
	return &ExtractorRegistry{
		extractors: map[FileType]TextExtractor{
			FileTypePDF:  NewPDFExtractor(),
			FileTypeDOCX: NewDOCXExtractor(),
			FileTypeText: NewPlainTextExtractor(),
		},
	}
}

// Register replaces the extractor used for fileType.
func (r *ExtractorRegistry) Register(fileType FileType, extractor TextExtractor) {
	r.extractors[fileType] = extractor
}

// Extract returns the normalised text of an uploaded file. Every failure is
// an *models.ExtractionError.
func (r *ExtractorRegistry) Extract(fileName string, data []byte) (string, error) {
	fileType, err := DetectFileType(fileName, data)
	if err != nil {
		return "", &models.ExtractionError{FileName: fileName, Err: err}
	}

	extractor, ok := r.extractors[fileType]
	if !ok {
		return "", &models.ExtractionError{
			FileName: fileName,
			Err:      errors.Errorf("no extractor registered for %s files", fileType),
		}
	}

	text, err := extractor.Extract(data)
	if err != nil {
		return "", &models.ExtractionError{FileName: fileName, Err: err}
	}

	text = CleanText(text)
	if text == "" {
		return "", &models.ExtractionError{
			FileName: fileName,
			Err:      errors.Errorf("no text content found in %s", fileName),
		}
	}

	log.WithFields(log.Fields{
		"file_name":  fileName,
		"file_type":  fileType,
		"characters": len(text),
	}).Debug("📖 Extracted text from upload")

	return text, nil
}

// DetectFileType resolves the document format from the file extension and,
// when that is not conclusive, from the content itself.
func DetectFileType(fileName string, data []byte) (FileType, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return FileTypePDF, nil
	case ".docx":
		return FileTypeDOCX, nil
	case ".txt", ".md", ".markdown":
		return FileTypeText, nil
	}

	detected := mimetype.Detect(data)
	for m := detected; m != nil; m = m.Parent() {
		switch {
		case m.Is("application/pdf"):
			return FileTypePDF, nil
		case m.Is(docxMIME):
			return FileTypeDOCX, nil
		case m.Is("text/plain"):
			return FileTypeText, nil
		}
	}

	return "", errors.Errorf("unsupported file type: %s", detected.String())
}

// CleanText trims every line and drops blank ones.
func CleanText(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	var cleanedLines []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}

	return strings.Join(cleanedLines, "\n")
}
