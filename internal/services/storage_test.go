package services

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kesavpal/RESUMEWISE/internal/config"
)

var (
	analysisProfile = config.UploadProfile{
		Name:              config.ProfileAnalysisUpload,
		MaxBytes:          5 * 1024 * 1024,
		AllowedExtensions: []string{".pdf"},
	}
	extractProfile = config.UploadProfile{
		Name:              config.ProfileExtractOnly,
		MaxBytes:          10 * 1024 * 1024,
		AllowedExtensions: []string{".pdf", ".doc", ".docx"},
	}
)

func TestValidateUpload(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		size    int64
		profile config.UploadProfile
		wantErr error
	}{
		{"pdf within analysis limit", "cv.pdf", 1024, analysisProfile, nil},
		{"uppercase extension", "CV.PDF", 1024, analysisProfile, nil},
		{"pdf exactly at limit", "cv.pdf", 5 * 1024 * 1024, analysisProfile, nil},
		{"pdf over analysis limit", "cv.pdf", 5*1024*1024 + 1, analysisProfile, ErrFileTooLarge},
		{"docx on analysis upload", "cv.docx", 1024, analysisProfile, ErrInvalidFileType},
		{"docx on extract only", "cv.docx", 1024, extractProfile, nil},
		{"doc on extract only", "cv.doc", 1024, extractProfile, nil},
		{"pdf over analysis limit but under extract limit", "cv.pdf", 8 * 1024 * 1024, extractProfile, nil},
		{"pdf over extract limit", "cv.pdf", 10*1024*1024 + 1, extractProfile, ErrFileTooLarge},
		{"executable", "cv.exe", 10, extractProfile, ErrInvalidFileType},
		{"no extension", "resume", 10, extractProfile, ErrInvalidFileType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUpload(tt.file, tt.size, tt.profile)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestStoredFilename(t *testing.T) {
	now := time.UnixMilli(1700000000123)

	first := StoredFilename("My Resume.PDF", now)
	second := StoredFilename("My Resume.PDF", now)

	assert.Regexp(t, regexp.MustCompile(`^1700000000123-[0-9a-f-]{36}\.pdf$`), first)
	assert.NotEqual(t, first, second)
}

func TestStorageService_SaveReader(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	storage := NewStorageService(dir)

	data := []byte("%PDF-1.4 fake")
	stored, err := storage.SaveReader(bytes.NewReader(data), "cv.pdf", int64(len(data)), analysisProfile)
	require.NoError(t, err)

	assert.Equal(t, ".pdf", stored.Ext)
	assert.Equal(t, "cv.pdf", stored.OriginalName)
	assert.Equal(t, int64(len(data)), stored.Size)
	assert.Equal(t, filepath.Join(dir, stored.Filename), stored.Path)

	written, err := os.ReadFile(stored.Path)
	require.NoError(t, err)
	assert.Equal(t, data, written)
}

func TestStorageService_SaveReader_RejectsWithoutWriting(t *testing.T) {
	dir := t.TempDir()
	storage := NewStorageService(dir)

	_, err := storage.SaveReader(strings.NewReader("x"), "cv.docx", 1, analysisProfile)
	assert.ErrorIs(t, err, ErrInvalidFileType)

	_, err = storage.SaveReader(strings.NewReader("x"), "cv.pdf", analysisProfile.MaxBytes+1, analysisProfile)
	assert.ErrorIs(t, err, ErrFileTooLarge)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStorageService_DeleteFile(t *testing.T) {
	dir := t.TempDir()
	storage := NewStorageService(dir)

	path := writeTempFile(t, "a.pdf", []byte("x"))
	require.NoError(t, storage.DeleteFile(path))
	assert.NoFileExists(t, path)

	assert.NoError(t, storage.DeleteFile(path))
}
