package services

import (
	"bytes"
	"context"
	"mime/multipart"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptedCompletion returns canned responses in order and records requests.
type scriptedCompletion struct {
	mu        sync.Mutex
	responses []string
	err       error
	requests  []CompletionRequest
	source    string
}

func (s *scriptedCompletion) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests = append(s.requests, req)
	if s.err != nil {
		return "", s.err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(s.responses) == 0 {
		return "", ErrCompletionFailed
	}
	resp := s.responses[0]
	s.responses = s.responses[1:]
	return resp, nil
}

func (s *scriptedCompletion) Source() string {
	if s.source == "" {
		return "Test Model"
	}
	return s.source
}

func (s *scriptedCompletion) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

type fakeEmbedder struct {
	err   error
	calls int
}

func (f *fakeEmbedder) GenerateEmbedding(_ context.Context, text string) ([]float32, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return []float32{float32(len(text)), 1}, nil
}

type fakeIndex struct {
	mu       sync.Mutex
	points   map[string][]ResumeChunk
	deleted  []string
	upserted chan string
}

func newFakeIndex() *fakeIndex {
	return &fakeIndex{
		points:   make(map[string][]ResumeChunk),
		upserted: make(chan string, 10),
	}
}

func (f *fakeIndex) InitCollection(context.Context) error { return nil }

func (f *fakeIndex) UpsertChunks(_ context.Context, resumeID string, chunks []ResumeChunk) error {
	f.mu.Lock()
	f.points[resumeID] = chunks
	f.mu.Unlock()
	f.upserted <- resumeID
	return nil
}

func (f *fakeIndex) DeleteResume(_ context.Context, resumeID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.points, resumeID)
	f.deleted = append(f.deleted, resumeID)
	return nil
}

func (f *fakeIndex) Search(_ context.Context, _ []float32, limit int) ([]ResumeMatch, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var matches []ResumeMatch
	for id, chunks := range f.points {
		for _, chunk := range chunks {
			matches = append(matches, ResumeMatch{ResumeID: id, ChunkIndex: chunk.Index, Text: chunk.Text})
		}
	}
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

func (f *fakeIndex) chunksFor(resumeID string) []ResumeChunk {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.points[resumeID]
}

// newFileHeader builds a multipart file header the way fiber hands it to handlers.
func newFileHeader(t *testing.T, filename string, data []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("resume", filename)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(&body, writer.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File["resume"][0]
}
