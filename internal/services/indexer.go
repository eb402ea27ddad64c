package services

import (
	"context"
	"fmt"
)

// ResumeIndexer chunks, embeds and stores résumé text in a ResumeIndex.
type ResumeIndexer interface {
	Index(ctx context.Context, resumeID, text string) (int, error)
	Remove(ctx context.Context, resumeID string) error
	Search(ctx context.Context, query string, limit int) ([]ResumeMatch, error)
}

type resumeIndexer struct {
	index    ResumeIndex
	embedder EmbeddingClient
	chunking ChunkOptions
}

func NewResumeIndexer(index ResumeIndex, embedder EmbeddingClient) ResumeIndexer {
	return &resumeIndexer{
		index:    index,
		embedder: embedder,
		chunking: DefaultChunkOptions,
	}
}

// Index implements ResumeIndexer. Existing points of the résumé are replaced.
func (r *resumeIndexer) Index(ctx context.Context, resumeID, text string) (int, error) {
	pieces := ChunkText(text, r.chunking)
	if len(pieces) == 0 {
		return 0, nil
	}

	chunks := make([]ResumeChunk, 0, len(pieces))
	for i, piece := range pieces {
		vector, err := r.embedder.GenerateEmbedding(ctx, piece)
		if err != nil {
			return 0, fmt.Errorf("failed to embed chunk %d of %s: %w", i, resumeID, err)
		}
		chunks = append(chunks, ResumeChunk{Index: i, Text: piece, Vector: vector})
	}

	if err := r.index.DeleteResume(ctx, resumeID); err != nil {
		return 0, err
	}
	if err := r.index.UpsertChunks(ctx, resumeID, chunks); err != nil {
		return 0, err
	}

	return len(chunks), nil
}

// Remove implements ResumeIndexer.
func (r *resumeIndexer) Remove(ctx context.Context, resumeID string) error {
	return r.index.DeleteResume(ctx, resumeID)
}

// Search implements ResumeIndexer.
func (r *resumeIndexer) Search(ctx context.Context, query string, limit int) ([]ResumeMatch, error) {
	vector, err := r.embedder.GenerateEmbedding(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}
	return r.index.Search(ctx, vector, limit)
}
