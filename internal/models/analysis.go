package models

type KeywordInsights struct {
	CommonKeywords  []string `json:"commonKeywords"`
	MissingKeywords []string `json:"missingKeywords"`
}

// StructuredAnalysis is the validated result of the structured analysis
// endpoint. AnalysisDate and Source are always set by the server.
type StructuredAnalysis struct {
	MatchScore                  int             `json:"matchScore"`
	MatchingSkills              []string        `json:"matchingSkills"`
	MissingSkills               []string        `json:"missingSkills"`
	KeywordInsights             KeywordInsights `json:"keywordInsights"`
	AchievementVsResponsibility string          `json:"achievementVsResponsibility"`
	ATSCompatibility            string          `json:"atsCompatibility"`
	ToneClarityFeedback         string          `json:"toneClarityFeedback"`
	StructureFeedback           string          `json:"structureFeedback"`
	FormatSuggestions           string          `json:"formatSuggestions"`
	PersonalizationTips         string          `json:"personalizationTips"`
	FinalRecommendations        []string        `json:"finalRecommendations"`
	AnalysisDate                string          `json:"analysisDate"`
	Source                      string          `json:"source"`
}
