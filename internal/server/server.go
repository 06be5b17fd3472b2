package server

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"alfredoptarigan/spec-scribe/internal/config"
	"alfredoptarigan/spec-scribe/internal/handlers"
	"alfredoptarigan/spec-scribe/internal/services"
)

const (
	requestIDKey = "requestid"

	// multipartOverhead leaves room for form boundaries and headers on top
	// of the largest accepted file.
	multipartOverhead = 1 << 20
)

// Dependencies are the boundaries chosen at start-up.
type Dependencies struct {
	Generator  services.Generator
	Retriever  services.ReferenceRetriever
	Extractors *services.ExtractorRegistry
}

// New wires services and handlers into a Fiber app.
func New(cfg *config.Config, deps Dependencies) *fiber.App {
	if deps.Retriever == nil {
		deps.Retriever = services.NewNopReferenceRetriever()
	}
	if deps.Extractors == nil {
		deps.Extractors = services.NewExtractorRegistry()
	}

	uploadService := services.NewUploadService(cfg.Upload.MaxFileSize)
	jobSpecService := services.NewJobSpecService(deps.Generator, deps.Retriever)
	interviewService := services.NewInterviewService(deps.Generator)

	rootHandler := handlers.NewRootHandler(services.NewTemplateCatalog())
	jobSpecHandler := handlers.NewJobSpecHandler(jobSpecService, uploadService, deps.Extractors)
	interviewHandler := handlers.NewInterviewHandler(interviewService, uploadService, deps.Extractors)
	exportHandler := handlers.NewExportHandler(services.NewExporter())

	app := fiber.New(fiber.Config{
		AppName:      "Spec Scribe API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		BodyLimit:    int(cfg.Upload.MaxFileSize) + multipartOverhead,
		ErrorHandler: handlers.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator:  uuid.NewString,
		ContextKey: requestIDKey,
	}))
	app.Use(propagateRequestID)
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path} ${locals:" + requestIDKey + "}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowOrigins,
		AllowMethods: "*",
		AllowHeaders: "*",
	}))

	app.Get("/", rootHandler.HandleRoot)

	api := app.Group("/api")
	api.Get("/health", rootHandler.HandleHealth)
	api.Get("/templates", rootHandler.HandleTemplates)

	api.Post("/generate-job-spec", jobSpecHandler.HandleGenerate)
	api.Post("/upload-job-spec", jobSpecHandler.HandleUpload)
	api.Post("/generate-interview-questions", interviewHandler.HandleGenerateQuestions)
	api.Post("/upload-cv", interviewHandler.HandleUploadCV)

	api.Post("/export/job-spec", exportHandler.HandleExportJobSpec)
	api.Post("/export/interview-questions", exportHandler.HandleExportQuestions)

	return app
}

func propagateRequestID(c *fiber.Ctx) error {
	if id, ok := c.Locals(requestIDKey).(string); ok {
		c.SetUserContext(services.ContextWithRequestID(c.UserContext(), id))
	}
	return c.Next()
}
