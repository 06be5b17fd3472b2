package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"alfredoptarigan/spec-scribe/internal/models"
)

// ErrorHandler maps handler errors to status codes and the {"detail": ...} body.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var (
		fiberErr      *fiber.Error
		validationErr *models.ValidationError
		extractionErr *models.ExtractionError
		generationErr *models.GenerationError
	)
	switch {
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
	case errors.As(err, &validationErr), errors.As(err, &extractionErr):
		code = fiber.StatusBadRequest
	case errors.As(err, &generationErr):
		code = fiber.StatusInternalServerError
	}

	if code >= fiber.StatusInternalServerError {
		log.WithError(err).WithFields(log.Fields{
			"method":     c.Method(),
			"path":       c.Path(),
			"request_id": c.Locals("requestid"),
		}).Error("❌ Request failed")
	}

	return c.Status(code).JSON(models.ErrorResponse{
		Detail: err.Error(),
	})
}

func invalidPayload() error {
	return fiber.NewError(fiber.StatusBadRequest, "Invalid request payload")
}
