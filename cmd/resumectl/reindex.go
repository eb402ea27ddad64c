package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2/log"
	"github.com/spf13/cobra"

	"github.com/kesavpal/RESUMEWISE/internal/config"
	"github.com/kesavpal/RESUMEWISE/internal/services"
)

var reindexCmd = &cobra.Command{
	Use:   "reindex",
	Short: "Re-embed every stored résumé into the résumé index",
	Long:  "Extracts the text of every stored résumé whose file still exists, chunks and embeds it, and replaces its points in Qdrant.",
	RunE:  runReindex,
}

func init() {
	rootCmd.AddCommand(reindexCmd)
}

func runReindex(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	ctx := context.Background()

	indexer, err := openIndexer(ctx, cfg)
	if err != nil {
		return err
	}
	if indexer == nil {
		return errors.New("QDRANT_URL is not set")
	}

	repo, err := openRepository(cfg)
	if err != nil {
		return err
	}

	resumes, err := repo.FindAll(ctx)
	if err != nil {
		return err
	}

	extractor := services.NewTextExtractor()
	indexed, skipped, failed := 0, 0, 0

	for _, resume := range resumes {
		if _, err := os.Stat(resume.FilePath); err != nil {
			log.Warnf("⚠️ %s: file %s missing, skipping", resume.ID, resume.FilePath)
			skipped++
			continue
		}

		text, err := extractor.Extract(resume.FilePath, strings.ToLower(filepath.Ext(resume.FilePath)))
		if err == nil {
			text, err = services.RequireText(text)
		}
		if err != nil {
			log.Errorf("❌ %s: %v", resume.ID, err)
			failed++
			continue
		}

		chunks, err := indexer.Index(ctx, resume.ID, text)
		if err != nil {
			log.Errorf("❌ %s: %v", resume.ID, err)
			failed++
			continue
		}

		log.Infof("✅ %s: %d chunks", resume.ID, chunks)
		indexed++
	}

	fmt.Fprintf(cmd.OutOrStdout(), "indexed %d, skipped %d, failed %d of %d resumes\n", indexed, skipped, failed, len(resumes))
	if failed > 0 {
		return fmt.Errorf("%d resumes failed to index", failed)
	}
	return nil
}
