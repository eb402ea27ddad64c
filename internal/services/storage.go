package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kesavpal/RESUMEWISE/internal/config"
)

// StoredFile describes a blob accepted by the intake validator and written
// to the upload area.
type StoredFile struct {
	Filename     string
	Path         string
	Ext          string
	OriginalName string
	Size         int64
}

type StorageService interface {
	EnsureUploadDir() error
	SaveFile(file *multipart.FileHeader, profile config.UploadProfile) (*StoredFile, error)
	SaveReader(src io.Reader, originalName string, size int64, profile config.UploadProfile) (*StoredFile, error)
	GetFilePath(filename string) string
	DeleteFile(path string) error
}

type storageService struct {
	uploadPath string
}

func NewStorageService(uploadPath string) StorageService {
	return &storageService{
		uploadPath: uploadPath,
	}
}

// ValidateUpload checks a declared filename and byte length against profile.
// Nothing is written when it fails.
func ValidateUpload(originalName string, size int64, profile config.UploadProfile) error {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !profile.Allows(ext) {
		return fmt.Errorf("%w: %q is not allowed for %s (allowed: %s)",
			ErrInvalidFileType, ext, profile.Name, strings.Join(profile.AllowedExtensions, ", "))
	}
	if size > profile.MaxBytes {
		return fmt.Errorf("%w: %d bytes exceeds %s limit of %d bytes",
			ErrFileTooLarge, size, profile.Name, profile.MaxBytes)
	}
	return nil
}

// StoredFilename returns a collision resistant name: millisecond timestamp,
// random uuid, original extension.
func StoredFilename(originalName string, now time.Time) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return fmt.Sprintf("%d-%s%s", now.UnixMilli(), uuid.New().String(), ext)
}

func (s *storageService) EnsureUploadDir() error {
	if err := os.MkdirAll(s.uploadPath, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	return nil
}

func (s *storageService) SaveFile(file *multipart.FileHeader, profile config.UploadProfile) (*StoredFile, error) {
	if err := ValidateUpload(file.Filename, file.Size, profile); err != nil {
		return nil, err
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	return s.write(src, file.Filename, file.Size)
}

func (s *storageService) SaveReader(src io.Reader, originalName string, size int64, profile config.UploadProfile) (*StoredFile, error) {
	if err := ValidateUpload(originalName, size, profile); err != nil {
		return nil, err
	}

	return s.write(src, originalName, size)
}

func (s *storageService) write(src io.Reader, originalName string, size int64) (*StoredFile, error) {
	if err := s.EnsureUploadDir(); err != nil {
		return nil, err
	}

	filename := StoredFilename(originalName, time.Now())
	filePath := s.GetFilePath(filename)

	dst, err := os.Create(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create destination file: %w", err)
	}

	written, err := io.Copy(dst, src)
	closeErr := dst.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(filePath)
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	return &StoredFile{
		Filename:     filename,
		Path:         filePath,
		Ext:          strings.ToLower(filepath.Ext(originalName)),
		OriginalName: originalName,
		Size:         written,
	}, nil
}

func (s *storageService) GetFilePath(filename string) string {
	return filepath.Join(s.uploadPath, filename)
}

// DeleteFile removes a stored file. A file that is already gone is not an error.
func (s *storageService) DeleteFile(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
