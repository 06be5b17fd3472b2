package services

import (
	"context"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/qdrant/go-client/qdrant"
	log "github.com/sirupsen/logrus"

	"alfredoptarigan/spec-scribe/internal/config"
)

// embeddingSize matches Gemini text-embedding-004.
const embeddingSize = 768

// TemplateStore holds embedded chunks of reference job specifications. The
// payload field doc_type carries the template ID a chunk belongs to.
type TemplateStore interface {
	InitCollection(ctx context.Context) error
	UpsertChunk(ctx context.Context, chunkID string, templateID string, text string, embedding []float32) error
	SearchSimilar(ctx context.Context, queryEmbedding []float32, templateID string, limit int) ([]SearchResult, error)
	DeleteTemplate(ctx context.Context, templateID string) error
}

type SearchResult struct {
	ID         string
	Score      float32
	Text       string
	TemplateID string
}

type qdrantTemplateStore struct {
	client         *qdrant.Client
	collectionName string
}

func NewQdrantTemplateStore(cfg config.QdrantConfig) (TemplateStore, error) {
	parsed, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid Qdrant URL")
	}

	// gRPC port
	port := 6334
	if p := parsed.Port(); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   parsed.Hostname(),
		Port:   port,
		APIKey: cfg.APIKey,
		UseTLS: parsed.Scheme == "https",
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create qdrant client")
	}

	return &qdrantTemplateStore{
		client:         client,
		collectionName: cfg.Collection,
	}, nil
}

// InitCollection implements TemplateStore.
func (q *qdrantTemplateStore) InitCollection(ctx context.Context) error {
	exists, err := q.client.CollectionExists(ctx, q.collectionName)
	if err != nil {
		return errors.Wrap(err, "failed to check collection")
	}

	if exists {
		log.WithField("collection", q.collectionName).Debug("Qdrant collection already exists")
		return nil
	}

	err = q.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: q.collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     embeddingSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return errors.Wrap(err, "failed to create collection")
	}

	log.WithField("collection", q.collectionName).Info("✅ Qdrant collection created")
	return nil
}

// UpsertChunk implements TemplateStore.
func (q *qdrantTemplateStore) UpsertChunk(ctx context.Context, chunkID string, templateID string, text string, embedding []float32) error {
	// Stable point IDs make re-ingesting a template overwrite its chunks.
	pointID := uuid.NewSHA1(uuid.NameSpaceURL, []byte(q.collectionName+"/"+chunkID))

	point := &qdrant.PointStruct{
		Id:      qdrant.NewID(pointID.String()),
		Vectors: qdrant.NewVectors(embedding...),
		Payload: qdrant.NewValueMap(map[string]any{
			"doc_id":   chunkID,
			"doc_type": templateID,
			"text":     text,
		}),
	}

	_, err := q.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: q.collectionName,
		Points:         []*qdrant.PointStruct{point},
	})
	if err != nil {
		return errors.Wrap(err, "failed to upsert point")
	}

	return nil
}

// SearchSimilar implements TemplateStore.
func (q *qdrantTemplateStore) SearchSimilar(ctx context.Context, queryEmbedding []float32, templateID string, limit int) ([]SearchResult, error) {
	var filter *qdrant.Filter
	if templateID != "" {
		filter = &qdrant.Filter{
			Must: []*qdrant.Condition{
				qdrant.NewMatch("doc_type", templateID),
			},
		}
	}

	points, err := q.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: q.collectionName,
		Query:          qdrant.NewQuery(queryEmbedding...),
		Filter:         filter,
		Limit:          qdrant.PtrOf(uint64(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to search")
	}

	results := make([]SearchResult, 0, len(points))
	for _, point := range points {
		results = append(results, SearchResult{
			ID:         payloadString(point.Payload, "doc_id"),
			Score:      point.Score,
			Text:       payloadString(point.Payload, "text"),
			TemplateID: payloadString(point.Payload, "doc_type"),
		})
	}

	return results, nil
}

// DeleteTemplate implements TemplateStore.
func (q *qdrantTemplateStore) DeleteTemplate(ctx context.Context, templateID string) error {
	_, err := q.client.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: q.collectionName,
		Points: &qdrant.PointsSelector{
			PointsSelectorOneOf: &qdrant.PointsSelector_Filter{
				Filter: &qdrant.Filter{
					Must: []*qdrant.Condition{
						qdrant.NewMatch("doc_type", templateID),
					},
				},
			},
		},
	})
	if err != nil {
		return errors.Wrapf(err, "failed to delete chunks of template %s", templateID)
	}

	return nil
}

func payloadString(payload map[string]*qdrant.Value, key string) string {
	value, ok := payload[key]
	if !ok {
		return ""
	}
	if val, ok := value.GetKind().(*qdrant.Value_StringValue); ok {
		return val.StringValue
	}
	return ""
}
