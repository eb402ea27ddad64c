package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/kesavpal/RESUMEWISE/internal/models"
)

type memoryEntry struct {
	resume models.Resume
	seq    uint64
}

// memoryResumeRepository keeps records in process. Used with DB_DRIVER=memory
// and in handler tests.
type memoryResumeRepository struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	nextSeq uint64
}

func NewMemoryResumeRepository() ResumeRepository {
	return &memoryResumeRepository{
		entries: make(map[string]memoryEntry),
	}
}

// Create implements ResumeRepository.
func (m *memoryResumeRepository) Create(ctx context.Context, resume *models.Resume) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if resume.ID == "" {
		resume.ID = NewResumeID(time.Now())
	}
	if resume.UploadedAt.IsZero() {
		resume.UploadedAt = time.Now().UTC()
	}

	m.nextSeq++
	m.entries[resume.ID] = memoryEntry{resume: *resume, seq: m.nextSeq}
	return nil
}

// FindAll implements ResumeRepository. Records with equal timestamps are
// returned most recently inserted first.
func (m *memoryResumeRepository) FindAll(ctx context.Context) ([]models.Resume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	entries := make([]memoryEntry, 0, len(m.entries))
	for _, entry := range m.entries {
		entries = append(entries, entry)
	}
	m.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if !a.resume.UploadedAt.Equal(b.resume.UploadedAt) {
			return a.resume.UploadedAt.After(b.resume.UploadedAt)
		}
		return a.seq > b.seq
	})

	resumes := make([]models.Resume, 0, len(entries))
	for _, entry := range entries {
		resumes = append(resumes, entry.resume)
	}
	return resumes, nil
}

// FindByID implements ResumeRepository.
func (m *memoryResumeRepository) FindByID(ctx context.Context, id string) (*models.Resume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, ok := m.entries[id]
	if !ok {
		return nil, ErrResumeNotFound
	}
	resume := entry.resume
	return &resume, nil
}

// Delete implements ResumeRepository.
func (m *memoryResumeRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.entries[id]; !ok {
		return ErrResumeNotFound
	}
	delete(m.entries, id)
	return nil
}
