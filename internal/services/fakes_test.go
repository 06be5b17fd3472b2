package services

import (
	"context"
)

type fakeGenerator struct {
	response   string
	err        error
	calls      int
	lastTask   Task
	lastPrompt string
}

func (f *fakeGenerator) Generate(_ context.Context, task Task, prompt string) (string, error) {
	f.calls++
	f.lastTask = task
	f.lastPrompt = prompt
	return f.response, f.err
}

type fakeRetriever struct {
	reference  string
	err        error
	templateID string
}

func (f *fakeRetriever) Retrieve(_ context.Context, templateID, _ string) (string, error) {
	f.templateID = templateID
	return f.reference, f.err
}

type fakeEmbedder struct {
	err error
}

func (f *fakeEmbedder) GenerateEmbedding(_ context.Context, _ string) ([]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []float32{0.1, 0.2}, nil
}

type fakeTemplateStore struct {
	results    []SearchResult
	templateID string
	limit      int
}

func (f *fakeTemplateStore) InitCollection(context.Context) error { return nil }

func (f *fakeTemplateStore) UpsertChunk(context.Context, string, string, string, []float32) error {
	return nil
}

func (f *fakeTemplateStore) SearchSimilar(_ context.Context, _ []float32, templateID string, limit int) ([]SearchResult, error) {
	f.templateID = templateID
	f.limit = limit
	return f.results, nil
}

func (f *fakeTemplateStore) DeleteTemplate(context.Context, string) error { return nil }

func strPtr(s string) *string {
	return &s
}
