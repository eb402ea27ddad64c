package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kesavpal/RESUMEWISE/internal/testutil"
)

func textPDF(text string) []byte { return testutil.TextPDF(text) }

func blankPDF() []byte { return testutil.BlankPDF() }

func buildDOCX(t *testing.T, paragraphs ...string) []byte {
	t.Helper()
	data, err := testutil.BuildDOCX(paragraphs...)
	require.NoError(t, err)
	return data
}

func writeTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}
