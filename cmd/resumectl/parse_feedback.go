package main

import (
	"github.com/spf13/cobra"

	"github.com/kesavpal/RESUMEWISE/internal/services"
)

var parseFeedbackCmd = &cobra.Command{
	Use:   "parse-feedback <file|->",
	Short: "Split evaluator feedback text into a JSON report",
	Long:  "Parse free-text evaluator feedback (from a file, or stdin with \"-\") into the report sections returned by the upload endpoint.",
	Args:  cobra.ExactArgs(1),
	RunE:  runParseFeedback,
}

func init() {
	rootCmd.AddCommand(parseFeedbackCmd)
}

func runParseFeedback(cmd *cobra.Command, args []string) error {
	text, err := readInput(cmd, args[0])
	if err != nil {
		return err
	}

	return writeJSON(cmd.OutOrStdout(), services.ParseFeedback(text))
}
