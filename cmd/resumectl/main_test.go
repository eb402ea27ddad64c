package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kesavpal/RESUMEWISE/internal/models"
	"github.com/kesavpal/RESUMEWISE/internal/testutil"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetArgs(nil)
		analyzeResumeFile = ""
		analyzeRequirementsFile = ""
		searchQuery = ""
		searchLimit = 5
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestParseFeedback_FromFile(t *testing.T) {
	path := writeFile(t, "feedback.txt", []byte("Key Strengths:\n- Go\n- SQL\n\nResume Score: 81/100\n"))

	out, err := execute(t, "", "parse-feedback", path)
	require.NoError(t, err)

	var report models.FeedbackReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, []string{"Go", "SQL"}, report.Strengths)
	require.NotNil(t, report.Score)
	assert.Equal(t, 81, *report.Score)
	assert.Nil(t, report.Fit)
}

func TestParseFeedback_FromStdin(t *testing.T) {
	out, err := execute(t, "Job Role Fit: 40%\n", "parse-feedback", "-")
	require.NoError(t, err)

	var report models.FeedbackReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.NotNil(t, report.Fit)
	assert.Equal(t, 40, *report.Fit)
}

func TestParseFeedback_MissingFile(t *testing.T) {
	_, err := execute(t, "", "parse-feedback", filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestExtract_KeepsFile(t *testing.T) {
	docx, err := testutil.BuildDOCX("Jane Doe", "Platform Engineer")
	require.NoError(t, err)
	path := writeFile(t, "cv.docx", docx)

	out, err := execute(t, "", "extract", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, "Platform Engineer")
	assert.FileExists(t, path)
}

func TestExtract_PDF(t *testing.T) {
	path := writeFile(t, "cv.pdf", testutil.TextPDF("Backend Developer"))

	out, err := execute(t, "", "extract", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Backend Developer")
}

func TestExtract_RequiresOneArg(t *testing.T) {
	_, err := execute(t, "", "extract")
	assert.Error(t, err)
}
