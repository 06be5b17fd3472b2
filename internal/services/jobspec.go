package services

import (
	"context"

	"alfredoptarigan/spec-scribe/internal/models"
)

type JobSpecService interface {
	Generate(ctx context.Context, req models.JobSpecRequest) (string, error)
}

type jobSpecService struct {
	generator     Generator
	retriever     ReferenceRetriever
	catalog       *TemplateCatalog
	promptBuilder *PromptBuilder
}

func NewJobSpecService(generator Generator, retriever ReferenceRetriever) JobSpecService {
	if retriever == nil {
		retriever = NewNopReferenceRetriever()
	}
	return &jobSpecService{
		generator:     generator,
		retriever:     retriever,
		catalog:       NewTemplateCatalog(),
		promptBuilder: NewPromptBuilder(),
	}
}

func (s *jobSpecService) Generate(ctx context.Context, req models.JobSpecRequest) (string, error) {
	if err := ValidateStruct(req); err != nil {
		return "", err
	}

	templateID := value(req.TemplateID)
	if _, ok := s.catalog.Get(templateID); !ok {
		// Accepted anyway; the ID only narrows reference retrieval.
		logger(ctx).WithField("template_id", templateID).Info("ℹ️ Unknown template ID")
	}

	reference, err := s.retriever.Retrieve(ctx, templateID, s.promptBuilder.BuildRetrievalQuery(req))
	if err != nil {
		logger(ctx).WithError(err).WithField("template_id", templateID).
			Warn("⚠️ Failed to retrieve reference template, generating without it")
		reference = ""
	}

	prompt := s.promptBuilder.BuildJobSpecPrompt(req, reference)
	return generate(ctx, s.generator, TaskJobSpecification, prompt)
}
