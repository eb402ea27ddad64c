package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFeedback_StrengthsAndImprovements(t *testing.T) {
	report := ParseFeedback("Strengths:\n- A\n- B\nAreas for Improvement:\n- C\n")

	assert.Equal(t, []string{"A", "B"}, report.Strengths)
	assert.Equal(t, []string{"C"}, report.Improvements)
	assert.Nil(t, report.Score)
	assert.Nil(t, report.Fit)
	assert.Equal(t, FeedbackParserID, report.ParserID)
}

func TestParseFeedback_ScoreAndFit(t *testing.T) {
	report := ParseFeedback("Some preface.\nResume Score: 72/100\nJob Role Fit: 55%\nthe end")

	require.NotNil(t, report.Score)
	require.NotNil(t, report.Fit)
	assert.Equal(t, 72, *report.Score)
	assert.Equal(t, 55, *report.Fit)
}

func TestParseFeedback_ZeroIsNotAbsent(t *testing.T) {
	report := ParseFeedback("Resume Score: 0/100\nJob Role Fit: 0%")

	require.NotNil(t, report.Score)
	require.NotNil(t, report.Fit)
	assert.Equal(t, 0, *report.Score)
	assert.Equal(t, 0, *report.Fit)
}

func TestParseFeedback_ScoreNeedsExactPattern(t *testing.T) {
	for _, text := range []string{
		"Resume Score: 72",
		"Resume Score: 72 / 100",
		"Resume Score: seventy/100",
		"Job Role Fit: 55 percent",
		"",
	} {
		report := ParseFeedback(text)
		assert.Nil(t, report.Score, text)
		assert.Nil(t, report.Fit, text)
	}
}

func TestParseFeedback_BulletRule(t *testing.T) {
	text := "Key Strengths:\n" +
		"   - Indented item  \n" +
		"-no space\n" +
		"* star bullet\n" +
		"plain line\n" +
		"- \n" +
		"- Last\n"

	report := ParseFeedback(text)
	assert.Equal(t, []string{"Indented item", "Last"}, report.Strengths)
}

func TestParseFeedback_MissingSectionsDefault(t *testing.T) {
	report := ParseFeedback("nothing structured here")

	assert.Empty(t, report.Summary)
	assert.NotNil(t, report.Strengths)
	assert.Empty(t, report.Strengths)
	assert.Empty(t, report.Improvements)
	assert.Empty(t, report.Suggestions)
	assert.Empty(t, report.EducationAnalysis)
	assert.Empty(t, report.Keywords)
}

func TestParseFeedback_FullReport(t *testing.T) {
	text := `### Executive Summary:
Experienced backend engineer with a Go focus.

### ✅ Key Strengths:
- Strong Go background
- Clear project outcomes

### ⚠ Areas for Improvement:
- Add metrics

📊 Resume Score: 81/100
🎯 Job Role Fit: 74%

💡 Suggestions for Improvement:
- Quantify achievements
- Add a summary

Technical Skills Analysis:
- Go: advanced
- SQL: solid

Soft Skills Analysis:
- Communication

Education Analysis:
BSc Computer Science, 2018.

Experience Analysis:
Six years across two companies.

Keywords:
- microservices
- Kubernetes

Missing Keywords:
- Terraform

ATS Optimization:
- Use standard headings

Additional Tips:
- Keep it to two pages`

	report := ParseFeedback(text)

	assert.Equal(t, "Experienced backend engineer with a Go focus.", report.Summary)
	assert.Equal(t, []string{"Strong Go background", "Clear project outcomes"}, report.Strengths)
	assert.Equal(t, []string{"Add metrics"}, report.Improvements)
	require.NotNil(t, report.Score)
	assert.Equal(t, 81, *report.Score)
	require.NotNil(t, report.Fit)
	assert.Equal(t, 74, *report.Fit)
	assert.Equal(t, []string{"Quantify achievements", "Add a summary"}, report.Suggestions)
	assert.Equal(t, []string{"Go: advanced", "SQL: solid"}, report.TechnicalSkills)
	assert.Equal(t, []string{"Communication"}, report.SoftSkills)
	assert.Equal(t, "BSc Computer Science, 2018.", report.EducationAnalysis)
	assert.Equal(t, "Six years across two companies.", report.ExperienceAnalysis)
	assert.Equal(t, []string{"microservices", "Kubernetes"}, report.Keywords)
	assert.Equal(t, []string{"Terraform"}, report.MissingKeywords)
	assert.Equal(t, []string{"Use standard headings"}, report.ATSOptimization)
	assert.Equal(t, []string{"Keep it to two pages"}, report.AdditionalTips)
}

func TestParseFeedback_KeywordsDoesNotMatchInsideMissingKeywords(t *testing.T) {
	report := ParseFeedback("Missing Keywords:\n- Terraform\n")

	assert.Empty(t, report.Keywords)
	assert.Equal(t, []string{"Terraform"}, report.MissingKeywords)
}

func TestParseFeedback_FallbackEndMarker(t *testing.T) {
	text := "Strengths:\n- A\nSuggestions:\n- S1\n"

	report := ParseFeedback(text)

	assert.Equal(t, []string{"A"}, report.Strengths)
	assert.Equal(t, []string{"S1"}, report.Suggestions)
}

func TestParseFeedback_HeadingsWithPrefixes(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		strengths    []string
		improvements []string
	}{
		{
			name:         "numbered headings",
			text:         "1. Strengths:\n- A\n- B\n2. Areas for Improvement:\n- C\n",
			strengths:    []string{"A", "B"},
			improvements: []string{"C"},
		},
		{
			name:         "headings inside sentences",
			text:         "Here are the Strengths:\n- A\nAnd the Areas for Improvement:\n- C\n",
			strengths:    []string{"A"},
			improvements: []string{"C"},
		},
		{
			name:         "bold markdown headings",
			text:         "**Key Strengths:**\n- A\n**Areas for Improvement:**\n- C\n",
			strengths:    []string{"A"},
			improvements: []string{"C"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := ParseFeedback(tt.text)

			assert.Equal(t, tt.strengths, report.Strengths)
			assert.Equal(t, tt.improvements, report.Improvements)
		})
	}
}

func TestParseFeedback_SectionEndsAtNearestHeading(t *testing.T) {
	text := "Strengths:\n- A\nAreas for Improvement:\n- C\nSuggestions:\n- S\nResume Score: 70/100\n"

	report := ParseFeedback(text)

	assert.Equal(t, []string{"A"}, report.Strengths)
	assert.Equal(t, []string{"C"}, report.Improvements)
	assert.Equal(t, []string{"S"}, report.Suggestions)
	require.NotNil(t, report.Score)
	assert.Equal(t, 70, *report.Score)
}

func TestParseFeedback_SectionsOutOfTemplateOrder(t *testing.T) {
	text := "Areas for Improvement:\n- C\nKey Strengths:\n- A\nEducation Analysis:\nMSc, 2020.\nExecutive Summary:\nSolid.\n"

	report := ParseFeedback(text)

	assert.Equal(t, []string{"C"}, report.Improvements)
	assert.Equal(t, []string{"A"}, report.Strengths)
	assert.Equal(t, "MSc, 2020.", report.EducationAnalysis)
	assert.Equal(t, "Solid.", report.Summary)
}

func TestParseFeedback_MissingKeywordsBeforeKeywords(t *testing.T) {
	report := ParseFeedback("Missing Keywords:\n- Terraform\nKeywords:\n- Go\n")

	assert.Equal(t, []string{"Go"}, report.Keywords)
	assert.Equal(t, []string{"Terraform"}, report.MissingKeywords)
}
