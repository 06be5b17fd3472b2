package services

import (
	"context"

	"github.com/pkg/errors"

	"alfredoptarigan/spec-scribe/internal/models"
)

const referenceChunkLimit = 3

var defaultTemplates = []models.Template{
	{ID: "software-engineer", Name: "Software Engineer"},
	{ID: "data-analyst", Name: "Data Analyst"},
	{ID: "project-manager", Name: "Project Manager"},
	{ID: "hr-specialist", Name: "HR Specialist"},
	{ID: "financial-analyst", Name: "Financial Analyst"},
}

type TemplateCatalog struct {
	templates []models.Template
}

func NewTemplateCatalog() *TemplateCatalog {
	return &TemplateCatalog{templates: defaultTemplates}
}

// List returns a copy so callers cannot change the catalog.
func (c *TemplateCatalog) List() []models.Template {
	out := make([]models.Template, len(c.templates))
	copy(out, c.templates)
	return out
}

func (c *TemplateCatalog) Get(id string) (models.Template, bool) {
	for _, t := range c.templates {
		if t.ID == id {
			return t, true
		}
	}
	return models.Template{}, false
}

// ReferenceRetriever finds reference material for a job spec template.
// An empty result means no reference is available.
type ReferenceRetriever interface {
	Retrieve(ctx context.Context, templateID, query string) (string, error)
}

type nopReferenceRetriever struct{}

// NewNopReferenceRetriever is used when template retrieval is disabled.
func NewNopReferenceRetriever() ReferenceRetriever {
	return nopReferenceRetriever{}
}

func (nopReferenceRetriever) Retrieve(context.Context, string, string) (string, error) {
	return "", nil
}

type vectorReferenceRetriever struct {
	embedder Embedder
	store    TemplateStore
}

func NewVectorReferenceRetriever(embedder Embedder, store TemplateStore) ReferenceRetriever {
	return &vectorReferenceRetriever{
		embedder: embedder,
		store:    store,
	}
}

func (r *vectorReferenceRetriever) Retrieve(ctx context.Context, templateID, query string) (string, error) {
	if templateID == "" {
		return "", nil
	}

	embedding, err := r.embedder.GenerateEmbedding(ctx, query)
	if err != nil {
		return "", errors.Wrap(err, "failed to embed retrieval query")
	}

	results, err := r.store.SearchSimilar(ctx, embedding, templateID, referenceChunkLimit)
	if err != nil {
		return "", errors.Wrapf(err, "failed to search reference chunks for %s", templateID)
	}

	return FormatReferenceContext(results), nil
}
