package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"
)

// embeddingSize matches text-embedding-004.
const embeddingSize = 768

// ResumeChunk is one embedded piece of a stored résumé.
type ResumeChunk struct {
	Index  int
	Text   string
	Vector []float32
}

// ResumeMatch is a search hit from the résumé index.
type ResumeMatch struct {
	ResumeID   string
	ChunkIndex int
	Score      float32
	Text       string
}

type ResumeIndex interface {
	InitCollection(ctx context.Context) error
	UpsertChunks(ctx context.Context, resumeID string, chunks []ResumeChunk) error
	DeleteResume(ctx context.Context, resumeID string) error
	Search(ctx context.Context, vector []float32, limit int) ([]ResumeMatch, error)
}

type qdrantIndex struct {
	client         *qdrant.Client
	collectionName string
	vectorSize     uint64
}

func NewQdrantIndex(urlStr, apiKey, collectionName string) (ResumeIndex, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	// the go client speaks gRPC, default port 6334
	port := 6334
	if p := parsed.Port(); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   parsed.Hostname(),
		Port:   port,
		APIKey: apiKey,
		UseTLS: parsed.Scheme == "https",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	return &qdrantIndex{
		client:         client,
		collectionName: collectionName,
		vectorSize:     embeddingSize,
	}, nil
}

// InitCollection implements ResumeIndex.
func (q *qdrantIndex) InitCollection(ctx context.Context) error {
	exists, err := q.client.CollectionExists(ctx, q.collectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}
	if exists {
		log.Infof("✅ Qdrant collection '%s' already exists", q.collectionName)
		return nil
	}

	err = q.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: q.collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     q.vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	log.Infof("✅ Qdrant collection '%s' created", q.collectionName)
	return nil
}

// ChunkPointID is stable per résumé and chunk so re-indexing overwrites
// earlier points instead of duplicating them.
func ChunkPointID(resumeID string, index int) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("%s/%d", resumeID, index))).String()
}

// UpsertChunks implements ResumeIndex.
func (q *qdrantIndex) UpsertChunks(ctx context.Context, resumeID string, chunks []ResumeChunk) error {
	if len(chunks) == 0 {
		return nil
	}

	points := make([]*qdrant.PointStruct, 0, len(chunks))
	for _, chunk := range chunks {
		points = append(points, &qdrant.PointStruct{
			Id:      qdrant.NewID(ChunkPointID(resumeID, chunk.Index)),
			Vectors: qdrant.NewVectors(chunk.Vector...),
			Payload: qdrant.NewValueMap(map[string]any{
				"resume_id":   resumeID,
				"chunk_index": chunk.Index,
				"text":        chunk.Text,
			}),
		})
	}

	_, err := q.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: q.collectionName,
		Points:         points,
	})
	if err != nil {
		return fmt.Errorf("failed to upsert points: %w", err)
	}

	return nil
}

// DeleteResume implements ResumeIndex.
func (q *qdrantIndex) DeleteResume(ctx context.Context, resumeID string) error {
	_, err := q.client.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: q.collectionName,
		Points: &qdrant.PointsSelector{
			PointsSelectorOneOf: &qdrant.PointsSelector_Filter{
				Filter: &qdrant.Filter{
					Must: []*qdrant.Condition{
						qdrant.NewMatch("resume_id", resumeID),
					},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to delete resume points: %w", err)
	}

	return nil
}

// Search implements ResumeIndex.
func (q *qdrantIndex) Search(ctx context.Context, vector []float32, limit int) ([]ResumeMatch, error) {
	if limit <= 0 {
		limit = 5
	}

	points, err := q.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: q.collectionName,
		Query:          qdrant.NewQuery(vector...),
		Limit:          qdrant.PtrOf(uint64(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	matches := make([]ResumeMatch, 0, len(points))
	for _, point := range points {
		payload := point.GetPayload()
		matches = append(matches, ResumeMatch{
			ResumeID:   payload["resume_id"].GetStringValue(),
			ChunkIndex: int(payload["chunk_index"].GetIntegerValue()),
			Score:      point.GetScore(),
			Text:       payload["text"].GetStringValue(),
		})
	}

	return matches, nil
}
