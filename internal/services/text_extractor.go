package services

import (
	"fmt"
	"html"
	"os"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2/log"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

type TextExtractor interface {
	// Extract reads the text of a stored file and leaves the file in place.
	Extract(path, ext string) (string, error)
	// ExtractAndRemove extracts and then deletes the file, on success and on failure.
	ExtractAndRemove(path, ext string) (string, error)
}

type textExtractor struct{}

func NewTextExtractor() TextExtractor {
	return &textExtractor{}
}

// Extract implements TextExtractor.
func (t *textExtractor) Extract(path, ext string) (string, error) {
	switch strings.ToLower(ext) {
	case ".pdf":
		return extractPDF(path)
	case ".docx", ".doc":
		return extractWord(path)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// ExtractAndRemove implements TextExtractor.
func (t *textExtractor) ExtractAndRemove(path, ext string) (text string, err error) {
	defer func() {
		if rmErr := os.Remove(path); rmErr != nil && !os.IsNotExist(rmErr) {
			log.Warnf("⚠️ failed to remove staged file %s: %v", path, rmErr)
		}
	}()

	return t.Extract(path, ext)
}

// RequireText rejects blank extraction output.
func RequireText(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyContent
	}
	return text, nil
}

func extractPDF(path string) (text string, err error) {
	// the pdf reader panics on some malformed cross reference tables
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w: malformed PDF: %v", ErrExtractionFailed, r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: failed to open PDF: %v", ErrExtractionFailed, err)
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		pageText, err := page.GetPlainText(nil)
		if err != nil {
			log.Warnf("⚠️ skipping page %d of %s: %v", pageIndex, path, err)
			continue
		}

		textBuilder.WriteString(pageText)
		textBuilder.WriteString("\n")
	}

	return strings.TrimSpace(textBuilder.String()), nil
}

var (
	wordParagraphEnd = regexp.MustCompile(`</w:p>|<w:br\s*/>|<w:cr\s*/>`)
	wordTab          = regexp.MustCompile(`<w:tab\s*/>`)
	xmlTag           = regexp.MustCompile(`<[^>]+>`)
	blankLines       = regexp.MustCompile(`\n{3,}`)
)

// extractWord reads Office Open XML documents. Legacy binary .doc files are
// attempted with the same reader and fail with ErrExtractionFailed.
func extractWord(path string) (string, error) {
	doc, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read document: %v", ErrExtractionFailed, err)
	}
	defer doc.Close()

	return wordXMLToText(doc.Editable().GetContent()), nil
}

func wordXMLToText(content string) string {
	content = wordParagraphEnd.ReplaceAllString(content, "\n")
	content = wordTab.ReplaceAllString(content, "\t")
	content = xmlTag.ReplaceAllString(content, "")
	content = html.UnescapeString(content)
	content = blankLines.ReplaceAllString(content, "\n\n")
	return strings.TrimSpace(content)
}
