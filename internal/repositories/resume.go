package repositories

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kesavpal/RESUMEWISE/internal/models"
)

var ErrResumeNotFound = errors.New("Resume not found")

var resumeIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// ValidResumeID reports whether id has the 24 hex character record id shape.
func ValidResumeID(id string) bool {
	return resumeIDPattern.MatchString(id)
}

// NewResumeID returns a 24 hex character id: 4 bytes of unix seconds
// followed by 8 random bytes.
func NewResumeID(now time.Time) string {
	var raw [12]byte
	binary.BigEndian.PutUint32(raw[:4], uint32(now.Unix()))

	random := uuid.New()
	copy(raw[4:], random[:8])

	return hex.EncodeToString(raw[:])
}

type ResumeRepository interface {
	Create(ctx context.Context, resume *models.Resume) error
	FindAll(ctx context.Context) ([]models.Resume, error)
	FindByID(ctx context.Context, id string) (*models.Resume, error)
	Delete(ctx context.Context, id string) error
}

type resumeRepository struct {
	db *gorm.DB
}

// Create implements ResumeRepository.
func (r *resumeRepository) Create(ctx context.Context, resume *models.Resume) error {
	if resume.ID == "" {
		resume.ID = NewResumeID(time.Now())
	}
	if resume.UploadedAt.IsZero() {
		resume.UploadedAt = time.Now().UTC()
	}

	if err := r.db.WithContext(ctx).Create(resume).Error; err != nil {
		return fmt.Errorf("failed to create resume: %w", err)
	}

	return nil
}

// FindAll implements ResumeRepository.
func (r *resumeRepository) FindAll(ctx context.Context) ([]models.Resume, error) {
	resumes := []models.Resume{}
	if err := r.db.WithContext(ctx).Order("uploaded_at DESC").Find(&resumes).Error; err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}

	return resumes, nil
}

// FindByID implements ResumeRepository.
func (r *resumeRepository) FindByID(ctx context.Context, id string) (*models.Resume, error) {
	var resume models.Resume
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&resume).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResumeNotFound
		}

		return nil, fmt.Errorf("failed to find resume: %w", err)
	}

	return &resume, nil
}

// Delete implements ResumeRepository.
func (r *resumeRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Resume{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete resume: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrResumeNotFound
	}

	return nil
}

func NewResumeRepository(db *gorm.DB) ResumeRepository {
	return &resumeRepository{db: db}
}
