package services

import (
	"errors"

	"github.com/kesavpal/RESUMEWISE/internal/repositories"
)

var (
	ErrInvalidFileType   = errors.New("invalid file type")
	ErrFileTooLarge      = errors.New("file too large")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrExtractionFailed  = errors.New("text extraction failed")
	ErrEmptyContent      = errors.New("Resume content extraction failed.")
	ErrCompletionFailed  = errors.New("completion request failed")
	ErrMalformedAnalysis = errors.New("Failed to analyze resume. Please try again.")
	ErrNotFound          = repositories.ErrResumeNotFound
	ErrInvalidIDFormat   = errors.New("Invalid Resume ID format")
	ErrMissingFile       = errors.New("No file uploaded")
	ErrInvalidRequest    = errors.New("invalid request")
)
