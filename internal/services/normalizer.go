package services

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/kesavpal/RESUMEWISE/internal/models"
)

const isoMillis = "2006-01-02T15:04:05.000Z"

// ClampScore rounds score and pulls it into [0,100].
func ClampScore(score float64) int {
	if math.IsNaN(score) {
		return 0
	}
	rounded := math.Round(score)
	if rounded < 0 {
		return 0
	}
	if rounded > 100 {
		return 100
	}
	return int(rounded)
}

// NormalizeStructured validates raw model output against the structured
// analysis shape. analysisDate and source are always stamped here and any
// values the model supplied for them are ignored.
func NormalizeStructured(raw, source string, now time.Time) (*models.StructuredAnalysis, error) {
	payload := extractJSON(raw)
	if !gjson.Valid(payload) {
		return nil, fmt.Errorf("%w: response is not valid JSON", ErrMalformedAnalysis)
	}

	result := gjson.Parse(payload)
	if !result.IsObject() {
		return nil, fmt.Errorf("%w: response is not a JSON object", ErrMalformedAnalysis)
	}

	score := result.Get("matchScore")
	if score.Type != gjson.Number {
		return nil, fmt.Errorf("%w: matchScore is not a number", ErrMalformedAnalysis)
	}
	for _, field := range []string{"matchingSkills", "missingSkills", "finalRecommendations"} {
		if !result.Get(field).IsArray() {
			return nil, fmt.Errorf("%w: %s is not an array", ErrMalformedAnalysis, field)
		}
	}
	insights := result.Get("keywordInsights")
	if !insights.Exists() || insights.Type == gjson.Null || insights.Type == gjson.False {
		return nil, fmt.Errorf("%w: keywordInsights is missing", ErrMalformedAnalysis)
	}

	return &models.StructuredAnalysis{
		MatchScore:     ClampScore(score.Float()),
		MatchingSkills: stringList(result.Get("matchingSkills")),
		MissingSkills:  stringList(result.Get("missingSkills")),
		KeywordInsights: models.KeywordInsights{
			CommonKeywords:  stringList(insights.Get("commonKeywords")),
			MissingKeywords: stringList(insights.Get("missingKeywords")),
		},
		AchievementVsResponsibility: result.Get("achievementVsResponsibility").String(),
		ATSCompatibility:            result.Get("atsCompatibility").String(),
		ToneClarityFeedback:         result.Get("toneClarityFeedback").String(),
		StructureFeedback:           result.Get("structureFeedback").String(),
		FormatSuggestions:           result.Get("formatSuggestions").String(),
		PersonalizationTips:         result.Get("personalizationTips").String(),
		FinalRecommendations:        stringList(result.Get("finalRecommendations")),
		AnalysisDate:                now.UTC().Format(isoMillis),
		Source:                      source,
	}, nil
}

func stringList(value gjson.Result) []string {
	items := []string{}
	if !value.IsArray() {
		return items
	}
	value.ForEach(func(_, item gjson.Result) bool {
		items = append(items, item.String())
		return true
	})
	return items
}

// extractJSON strips Markdown code fences and surrounding prose around the
// outermost JSON object.
func extractJSON(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start != -1 && end > start {
		return text[start : end+1]
	}

	return strings.TrimSpace(text)
}
