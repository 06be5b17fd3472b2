package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/spec-scribe/internal/models"
	"alfredoptarigan/spec-scribe/internal/services"
)

type ExportHandler struct {
	exporter services.Exporter
}

func NewExportHandler(exporter services.Exporter) *ExportHandler {
	return &ExportHandler{
		exporter: exporter,
	}
}

// HandleExportJobSpec handles POST /api/export/job-spec
func (h *ExportHandler) HandleExportJobSpec(c *fiber.Ctx) error {
	var req models.JobSpecExportRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidPayload()
	}
	if err := services.ValidateStruct(req); err != nil {
		return err
	}

	file, err := h.exporter.ExportJobSpec(req.JobTitle, req.JobSpecification, req.Format)
	if err != nil {
		return err
	}

	return sendFile(c, file)
}

// HandleExportQuestions handles POST /api/export/interview-questions
func (h *ExportHandler) HandleExportQuestions(c *fiber.Ctx) error {
	var req models.QuestionsExportRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidPayload()
	}
	if err := services.ValidateStruct(req); err != nil {
		return err
	}

	file, err := h.exporter.ExportQuestions(req.Questions, req.Format)
	if err != nil {
		return err
	}

	return sendFile(c, file)
}

func sendFile(c *fiber.Ctx, file *services.ExportedFile) error {
	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, file.FileName))
	return c.Send(file.Data)
}
