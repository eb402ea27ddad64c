package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kesavpal/RESUMEWISE/internal/config"
	"github.com/kesavpal/RESUMEWISE/internal/models"
	"github.com/kesavpal/RESUMEWISE/internal/services"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a résumé with the configured model",
	Long: "Without --requirements the résumé gets the free-text evaluation and its parsed report. " +
		"With --requirements it is compared against the job requirements and the structured analysis is printed. Nothing is stored.",
	RunE: runAnalyze,
}

type evaluation struct {
	Feedback string                 `json:"feedback"`
	Report   *models.FeedbackReport `json:"report"`
}

var (
	analyzeResumeFile       string
	analyzeRequirementsFile string
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResumeFile, "resume", "r", "", "Résumé file (PDF, DOC, DOCX or plain text; \"-\" for stdin)")
	analyzeCmd.Flags().StringVar(&analyzeRequirementsFile, "requirements", "", "Job requirements text file")
	_ = analyzeCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	text, err := documentText(cmd, analyzeResumeFile)
	if err != nil {
		return err
	}

	analyzer, err := newAnalyzer(config.Load())
	if err != nil {
		return err
	}

	ctx := context.Background()

	if analyzeRequirementsFile == "" {
		text, err = services.RequireText(text)
		if err != nil {
			return err
		}
		feedback, err := analyzer.Evaluate(ctx, text)
		if err != nil {
			return fmt.Errorf("evaluation failed: %w", err)
		}
		return writeJSON(cmd.OutOrStdout(), evaluation{
			Feedback: feedback,
			Report:   services.ParseFeedback(feedback),
		})
	}

	requirements, err := readInput(cmd, analyzeRequirementsFile)
	if err != nil {
		return err
	}

	analysis, err := analyzer.AnalyzeStructured(ctx, text, requirements)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}
	return writeJSON(cmd.OutOrStdout(), analysis)
}
