// Command resumectl runs the résumé pipeline from the command line.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kesavpal/RESUMEWISE/internal/bootstrap"
	"github.com/kesavpal/RESUMEWISE/internal/config"
	"github.com/kesavpal/RESUMEWISE/internal/services"
)

var rootCmd = &cobra.Command{
	Use:           "resumectl",
	Short:         "RESUMEWISE operator CLI",
	Long:          "resumectl extracts résumé text, runs analyses and maintains the résumé index without going through the HTTP API.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Dependency constructors, replaced in tests.
var (
	newAnalyzer    = bootstrap.NewAnalyzer
	openIndexer    = bootstrap.OpenIndexer
	openRepository = bootstrap.OpenRepository
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// readInput reads path, or stdin when path is "-".
func readInput(cmd *cobra.Command, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// documentText extracts text from a PDF/DOC/DOCX file and reads anything
// else as plain text. The file is never removed.
func documentText(cmd *cobra.Command, path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	profile := config.Load().Storage.ExtractOnly
	if path == "-" || !profile.Allows(ext) {
		return readInput(cmd, path)
	}
	return services.NewTextExtractor().Extract(path, ext)
}
