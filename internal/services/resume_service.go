package services

import (
	"context"
	"mime/multipart"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"

	"github.com/kesavpal/RESUMEWISE/internal/config"
	"github.com/kesavpal/RESUMEWISE/internal/models"
	"github.com/kesavpal/RESUMEWISE/internal/repositories"
)

// UploadResult is the outcome of a successful upload-and-analyze call.
type UploadResult struct {
	Resume   *models.Resume
	Feedback string
	Report   *models.FeedbackReport
}

type ResumeService interface {
	Upload(ctx context.Context, file *multipart.FileHeader) (*UploadResult, error)
	ExtractText(file *multipart.FileHeader) (string, error)
	List(ctx context.Context) ([]models.Resume, error)
	Get(ctx context.Context, id string) (*models.Resume, error)
	Delete(ctx context.Context, id string) error
}

type ResumeServiceDeps struct {
	Repo      repositories.ResumeRepository
	Storage   StorageService
	Extractor TextExtractor
	Analyzer  AnalyzerService
	// Worker is optional; nil disables résumé indexing.
	Worker            Worker
	AnalysisUpload    config.UploadProfile
	ExtractOnly       config.UploadProfile
	DeleteRemovesFile bool
}

type resumeService struct {
	ResumeServiceDeps
}

func NewResumeService(deps ResumeServiceDeps) ResumeService {
	return &resumeService{ResumeServiceDeps: deps}
}

// Upload implements ResumeService. The stored file becomes the record's
// filePath; if any stage after the write fails the file is removed and no
// record is created.
func (s *resumeService) Upload(ctx context.Context, file *multipart.FileHeader) (result *UploadResult, err error) {
	if file == nil {
		return nil, ErrMissingFile
	}

	stored, err := s.Storage.SaveFile(file, s.AnalysisUpload)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rmErr := s.Storage.DeleteFile(stored.Path); rmErr != nil {
				log.Warnf("⚠️ failed to clean up %s: %v", stored.Path, rmErr)
			}
		}
	}()

	text, err := s.Extractor.Extract(stored.Path, stored.Ext)
	if err != nil {
		return nil, err
	}
	if text, err = RequireText(text); err != nil {
		return nil, err
	}

	feedback, err := s.Analyzer.Evaluate(ctx, text)
	if err != nil {
		return nil, err
	}

	resume := &models.Resume{
		Filename:   stored.Filename,
		FilePath:   stored.Path,
		UploadedAt: time.Now().UTC(),
	}
	if err = s.Repo.Create(ctx, resume); err != nil {
		return nil, err
	}

	log.Infof("✅ Resume %s stored as %s", resume.ID, resume.Filename)

	if s.Worker != nil {
		s.Worker.Enqueue(IndexJob{ResumeID: resume.ID, Text: text})
	}

	return &UploadResult{
		Resume:   resume,
		Feedback: feedback,
		Report:   ParseFeedback(feedback),
	}, nil
}

// ExtractText implements ResumeService. The staged file never outlives the call.
func (s *resumeService) ExtractText(file *multipart.FileHeader) (string, error) {
	if file == nil {
		return "", ErrMissingFile
	}

	stored, err := s.Storage.SaveFile(file, s.ExtractOnly)
	if err != nil {
		return "", err
	}

	return s.Extractor.ExtractAndRemove(stored.Path, stored.Ext)
}

// List implements ResumeService.
func (s *resumeService) List(ctx context.Context) ([]models.Resume, error) {
	return s.Repo.FindAll(ctx)
}

// Get implements ResumeService.
func (s *resumeService) Get(ctx context.Context, id string) (*models.Resume, error) {
	if !repositories.ValidResumeID(id) {
		return nil, ErrInvalidIDFormat
	}
	return s.Repo.FindByID(ctx, strings.ToLower(id))
}

// Delete implements ResumeService. The stored file is kept unless
// DeleteRemovesFile is set.
func (s *resumeService) Delete(ctx context.Context, id string) error {
	if !repositories.ValidResumeID(id) {
		return ErrInvalidIDFormat
	}
	// ids are stored in lowercase hex
	id = strings.ToLower(id)

	var filePath string
	if s.DeleteRemovesFile {
		resume, err := s.Repo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		filePath = resume.FilePath
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}

	if filePath != "" {
		if err := s.Storage.DeleteFile(filePath); err != nil {
			log.Warnf("⚠️ resume %s deleted but file removal failed: %v", id, err)
		}
	}

	if s.Worker != nil {
		s.Worker.Enqueue(IndexJob{ResumeID: id, Remove: true})
	}

	return nil
}
