package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"alfredoptarigan/spec-scribe/internal/models"
	"alfredoptarigan/spec-scribe/internal/services"
)

const uploadFormField = "file"

// documentReader turns the multipart upload of a request into text.
type documentReader struct {
	uploadService services.UploadService
	extractors    *services.ExtractorRegistry
}

func (r documentReader) read(c *fiber.Ctx) (string, error) {
	fileHeader, err := c.FormFile(uploadFormField)
	if err != nil {
		return "", &models.ExtractionError{Err: errors.Errorf("multipart field %q is required", uploadFormField)}
	}

	upload, err := r.uploadService.ReadFile(fileHeader)
	if err != nil {
		return "", &models.ExtractionError{FileName: fileHeader.Filename, Err: err}
	}

	return r.extractors.Extract(upload.FileName, upload.Data)
}
