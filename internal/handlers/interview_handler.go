package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/spec-scribe/internal/models"
	"alfredoptarigan/spec-scribe/internal/services"
)

type InterviewHandler struct {
	interviewService services.InterviewService
	documents        documentReader
}

func NewInterviewHandler(
	interviewService services.InterviewService,
	uploadService services.UploadService,
	extractors *services.ExtractorRegistry,
) *InterviewHandler {
	return &InterviewHandler{
		interviewService: interviewService,
		documents: documentReader{
			uploadService: uploadService,
			extractors:    extractors,
		},
	}
}

// HandleGenerateQuestions handles POST /api/generate-interview-questions
func (h *InterviewHandler) HandleGenerateQuestions(c *fiber.Ctx) error {
	var req models.InterviewQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidPayload()
	}

	questions, err := h.interviewService.GenerateQuestions(c.UserContext(), req)
	if err != nil {
		return err
	}

	return c.JSON(models.InterviewQuestionsResponse{Questions: questions})
}

// HandleUploadCV handles POST /api/upload-cv
func (h *InterviewHandler) HandleUploadCV(c *fiber.Ctx) error {
	text, err := h.documents.read(c)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Failed to process CV file: "+err.Error())
	}

	return c.JSON(models.CVUploadResponse{CVContent: text})
}
