package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/kesavpal/RESUMEWISE/internal/config"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Find the résumé chunks closest to a query",
	RunE:  runSearch,
}

var (
	searchQuery string
	searchLimit int
)

func init() {
	searchCmd.Flags().StringVarP(&searchQuery, "query", "q", "", "Free-text query, e.g. a job requirement")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 5, "Maximum number of matches")
	_ = searchCmd.MarkFlagRequired("query")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	indexer, err := openIndexer(ctx, config.Load())
	if err != nil {
		return err
	}
	if indexer == nil {
		return errors.New("QDRANT_URL is not set")
	}

	matches, err := indexer.Search(ctx, searchQuery, searchLimit)
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), matches)
}
