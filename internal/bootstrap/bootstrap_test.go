package bootstrap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kesavpal/RESUMEWISE/internal/config"
)

func TestOpenRepository_Memory(t *testing.T) {
	cfg := &config.Config{Database: config.DatabaseConfig{Driver: "memory"}}

	repo, err := OpenRepository(cfg)
	require.NoError(t, err)

	resumes, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, resumes)
}

func TestOpenRepository_UnknownDriver(t *testing.T) {
	cfg := &config.Config{Database: config.DatabaseConfig{Driver: "mongodb"}}

	_, err := OpenRepository(cfg)
	assert.ErrorContains(t, err, "mongodb")
}

func TestNewAnalyzer_UnknownProvider(t *testing.T) {
	cfg := &config.Config{LLM: config.LLMConfig{Provider: "acme"}}

	_, err := NewAnalyzer(cfg)
	assert.ErrorContains(t, err, "acme")
}

func TestOpenIndexer_DisabledWithoutURL(t *testing.T) {
	indexer, err := OpenIndexer(context.Background(), &config.Config{})
	require.NoError(t, err)
	assert.Nil(t, indexer)
}

func TestOpenIndexer_RequiresEmbeddingKey(t *testing.T) {
	cfg := &config.Config{Qdrant: config.QdrantConfig{URL: "http://localhost:6334"}}

	_, err := OpenIndexer(context.Background(), cfg)
	assert.ErrorContains(t, err, "embedding key")
}
