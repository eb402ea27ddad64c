package models

// FeedbackReport is the best-effort parse of free-text evaluator output.
// Score and Fit are nil when the model did not report them.
type FeedbackReport struct {
	Summary            string   `json:"summary"`
	Strengths          []string `json:"strengths"`
	Improvements       []string `json:"improvements"`
	Score              *int     `json:"score"`
	Fit                *int     `json:"fit"`
	Suggestions        []string `json:"suggestions"`
	TechnicalSkills    []string `json:"technicalSkills"`
	SoftSkills         []string `json:"softSkills"`
	EducationAnalysis  string   `json:"educationAnalysis"`
	ExperienceAnalysis string   `json:"experienceAnalysis"`
	Keywords           []string `json:"keywords"`
	MissingKeywords    []string `json:"missingKeywords"`
	ATSOptimization    []string `json:"atsOptimization"`
	AdditionalTips     []string `json:"additionalTips"`
	ParserID           string   `json:"parserId"`
}
