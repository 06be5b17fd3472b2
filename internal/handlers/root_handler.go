package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/spec-scribe/internal/models"
	"alfredoptarigan/spec-scribe/internal/services"
)

const welcomeMessage = "Welcome to Spec Scribe API"

type RootHandler struct {
	catalog *services.TemplateCatalog
}

func NewRootHandler(catalog *services.TemplateCatalog) *RootHandler {
	return &RootHandler{
		catalog: catalog,
	}
}

// HandleRoot handles GET /
func (h *RootHandler) HandleRoot(c *fiber.Ctx) error {
	return c.JSON(models.MessageResponse{Message: welcomeMessage})
}

// HandleHealth handles GET /api/health
func (h *RootHandler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "healthy",
		"time":   time.Now(),
	})
}

// HandleTemplates handles GET /api/templates
func (h *RootHandler) HandleTemplates(c *fiber.Ctx) error {
	return c.JSON(models.TemplateListResponse{Templates: h.catalog.List()})
}
