package services

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateCatalog(t *testing.T) {
	catalog := NewTemplateCatalog()

	list := catalog.List()
	require.Len(t, list, 5)
	assert.Equal(t, "software-engineer", list[0].ID)

	list[0].Name = "changed"
	tpl, ok := catalog.Get("software-engineer")
	require.True(t, ok)
	assert.Equal(t, "Software Engineer", tpl.Name)

	_, ok = catalog.Get("astronaut")
	assert.False(t, ok)
}

func TestVectorReferenceRetriever(t *testing.T) {
	store := &fakeTemplateStore{results: []SearchResult{{Score: 0.8, Text: "Responsibilities include"}}}
	retriever := NewVectorReferenceRetriever(&fakeEmbedder{}, store)

	reference, err := retriever.Retrieve(context.Background(), "data-analyst", "Data analyst role")

	require.NoError(t, err)
	assert.Equal(t, "data-analyst", store.templateID)
	assert.Equal(t, referenceChunkLimit, store.limit)
	assert.Contains(t, reference, "Responsibilities include")
}

func TestVectorReferenceRetriever_EmptyTemplateID(t *testing.T) {
	store := &fakeTemplateStore{}
	retriever := NewVectorReferenceRetriever(&fakeEmbedder{err: errors.New("should not embed")}, store)

	reference, err := retriever.Retrieve(context.Background(), "", "query")

	require.NoError(t, err)
	assert.Empty(t, reference)
}

func TestVectorReferenceRetriever_EmbeddingError(t *testing.T) {
	retriever := NewVectorReferenceRetriever(&fakeEmbedder{err: errors.New("quota")}, &fakeTemplateStore{})

	_, err := retriever.Retrieve(context.Background(), "data-analyst", "query")

	assert.ErrorContains(t, err, "quota")
}
