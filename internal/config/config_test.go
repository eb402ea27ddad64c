package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "")
	t.Setenv("UPLOAD_MAX_BYTES", "")
	t.Setenv("EXTRACT_MAX_BYTES", "")
	t.Setenv("DELETE_REMOVES_FILE", "")

	cfg := Load()
	require.NotNil(t, cfg)

	assert.Equal(t, ProfileAnalysisUpload, cfg.Storage.AnalysisUpload.Name)
	assert.Equal(t, int64(5*1024*1024), cfg.Storage.AnalysisUpload.MaxBytes)
	assert.Equal(t, []string{".pdf"}, cfg.Storage.AnalysisUpload.AllowedExtensions)

	assert.Equal(t, ProfileExtractOnly, cfg.Storage.ExtractOnly.Name)
	assert.Equal(t, int64(10*1024*1024), cfg.Storage.ExtractOnly.MaxBytes)
	assert.Equal(t, []string{".pdf", ".doc", ".docx"}, cfg.Storage.ExtractOnly.AllowedExtensions)

	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Equal(t, "gemini-2.5-flash", cfg.LLM.Model)
	assert.Equal(t, 60*time.Second, cfg.LLM.Timeout)
	assert.False(t, cfg.Records.DeleteRemovesFile)
	assert.Equal(t, int64(10*1024*1024), cfg.MaxUploadBytes())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "OpenAI")
	t.Setenv("LLM_MODEL", "")
	t.Setenv("UPLOAD_MAX_BYTES", "1024")
	t.Setenv("LLM_TIMEOUT", "not-a-duration")
	t.Setenv("DELETE_REMOVES_FILE", "true")
	t.Setenv("DB_DRIVER", "Memory")

	cfg := Load()

	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "gpt-4-turbo", cfg.LLM.Model)
	assert.Equal(t, int64(1024), cfg.Storage.AnalysisUpload.MaxBytes)
	assert.Equal(t, 60*time.Second, cfg.LLM.Timeout)
	assert.True(t, cfg.Records.DeleteRemovesFile)
	assert.Equal(t, "memory", cfg.Database.Driver)
}

func TestUploadProfile_Allows(t *testing.T) {
	profile := UploadProfile{AllowedExtensions: []string{".pdf", ".docx"}}

	assert.True(t, profile.Allows(".pdf"))
	assert.True(t, profile.Allows(".PDF"))
	assert.True(t, profile.Allows(".DocX"))
	assert.False(t, profile.Allows(".doc"))
	assert.False(t, profile.Allows(""))
	assert.False(t, profile.Allows(".exe"))
}

func TestQdrantConfig_Enabled(t *testing.T) {
	assert.False(t, QdrantConfig{}.Enabled())
	assert.True(t, QdrantConfig{URL: "http://localhost:6334"}.Enabled())
}
