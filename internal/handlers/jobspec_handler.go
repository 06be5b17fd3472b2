package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/spec-scribe/internal/models"
	"alfredoptarigan/spec-scribe/internal/services"
)

type JobSpecHandler struct {
	jobSpecService services.JobSpecService
	documents      documentReader
}

func NewJobSpecHandler(
	jobSpecService services.JobSpecService,
	uploadService services.UploadService,
	extractors *services.ExtractorRegistry,
) *JobSpecHandler {
	return &JobSpecHandler{
		jobSpecService: jobSpecService,
		documents: documentReader{
			uploadService: uploadService,
			extractors:    extractors,
		},
	}
}

// HandleGenerate handles POST /api/generate-job-spec
func (h *JobSpecHandler) HandleGenerate(c *fiber.Ctx) error {
	var req models.JobSpecRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidPayload()
	}

	spec, err := h.jobSpecService.Generate(c.UserContext(), req)
	if err != nil {
		return err
	}

	return c.JSON(models.JobSpecResponse{JobSpecification: spec})
}

// HandleUpload handles POST /api/upload-job-spec
func (h *JobSpecHandler) HandleUpload(c *fiber.Ctx) error {
	text, err := h.documents.read(c)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Failed to process file: "+err.Error())
	}

	return c.JSON(models.JobSpecResponse{JobSpecification: text})
}
