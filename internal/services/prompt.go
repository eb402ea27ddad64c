package services

import (
	"fmt"
	"strings"
)

// Template and parser ids travel together: a change to the evaluator report
// layout must bump EvaluatorTemplateID and FeedbackParserID at the same time.
const (
	StructuredTemplateID = "structured/v1"
	EvaluatorTemplateID  = "evaluator/v1"
)

const structuredSystemPrompt = "You are a professional AI resume reviewer with expertise in HR, ATS systems. Provide deeply analytical and structured feedback."

const evaluatorSystemPrompt = `You are an AI-powered Resume Evaluator designed to analyze technical resumes and provide insightful feedback to enhance their effectiveness.

--- Evaluation Criteria ---
1. Technical Skills & Relevance
- Are essential programming languages, frameworks, and tools listed?
- Is there a balance between frontend, backend, and database technologies?
- Does the resume showcase problem-solving abilities?

2. Work Experience & Projects
- Are past job roles and responsibilities clearly stated?
- Do projects include technology stacks, contributions, and results?
- Are industry best practices (e.g., Agile, DevOps) mentioned?

3. Resume Formatting & Structure
- Is the resume structured properly with clear sections (Skills, Experience, Education, Projects)?
- Is it ATS-friendly (correct use of headings, no excessive graphics, standard fonts)?
- Does it maintain consistent formatting?

4. ATS Optimization & Keyword Matching
- Does the resume include important keywords that match the desired job role?
- Are there missing critical industry terms?
- Is the content concise yet impactful?

5. Job Role Fit & Industry Standards
- How well does the resume align with the target job role?
- Are there any gaps or missing details?
- Does the resume effectively highlight strengths and achievements?

--- Expected Output ---
Use exactly these section headings, each on its own line, in this order.
Write every list item on its own line starting with "- ".

Executive Summary:
A short paragraph summarizing the candidate.

Key Strengths:
- List strong aspects of the resume.

Areas for Improvement:
- Identify weaknesses and suggest fixes.

Resume Score: <number>/100
Job Role Fit: <number>%

Suggestions for Improvement:
- Add quantifiable achievements.
- Improve ATS optimization by adding relevant keywords.
- Fix formatting inconsistencies.
- Include a professional summary.

Technical Skills Analysis:
- One item per technical skill observed, with a short assessment.

Soft Skills Analysis:
- One item per soft skill observed.

Education Analysis:
A short paragraph about education and certifications.

Experience Analysis:
A short paragraph about work experience and projects.

Keywords:
- Important keywords present in the resume.

Missing Keywords:
- Critical industry keywords the resume lacks.

ATS Optimization:
- Concrete changes that improve ATS parsing.

Additional Tips:
- Any other advice.`

const structuredUserTemplate = `Analyze the following resume against the given job requirements and provide a comprehensive, professional-grade analysis. You are acting as an AI-powered Resume Expert and ATS (Applicant Tracking System) analyzer.

Job Requirements:
%s

Resume Content:
%s

Your task is to perform the following:
1. **Match Score**: Provide a match percentage (0-100%%) based on relevance, keywords, and overall alignment with the job description.
2. **Matching Skills**: List all matching technical, soft, and domain-specific skills found in both the resume and job description.
3. **Missing Skills**: Identify important skills, tools, or experience areas mentioned in the job description that are missing from the resume.
4. **Keyword Density**: Highlight the most common keywords in the resume and job description and mention if the resume lacks key industry terms.
5. **Achievements vs Responsibilities**: Evaluate whether the resume emphasizes measurable achievements or just generic responsibilities. Suggest improvements.
6. **ATS Compatibility**: Analyze whether the formatting, section structure, and keyword usage make it ATS-friendly. Suggest improvements if needed.
7. **Tone and Clarity**: Comment on the professional tone, clarity, grammar, and writing style. Identify any vague or weak statements.
8. **Structural Feedback**: Evaluate the structure (contact info, summary, skills, experience, education). Suggest if any sections are missing or out of order.
9. **Resume Format Suggestions**: Provide specific advice if the resume should be tailored to a different layout (e.g. reverse-chronological, hybrid, functional).
10. **Personalization Advice**: If the resume is too generic, suggest ways to personalize it to better fit the company or job role.
11. **Final Recommendations**: List all practical, actionable improvements the user should make to increase job compatibility and professionalism.

Return your analysis in the following JSON structure:
{
  "matchScore": number,
  "matchingSkills": string[],
  "missingSkills": string[],
  "keywordInsights": {
    "commonKeywords": string[],
    "missingKeywords": string[]
  },
  "achievementVsResponsibility": string,
  "atsCompatibility": string,
  "toneClarityFeedback": string,
  "structureFeedback": string,
  "formatSuggestions": string,
  "personalizationTips": string,
  "finalRecommendations": string[]
}

Return only the JSON object.`

// Prompt is a rendered template ready for a completion call.
type Prompt struct {
	TemplateID string
	System     string
	User       string
}

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// Build picks the structured template when requirements are present and the
// evaluator template otherwise.
func (pb *PromptBuilder) Build(resumeText, requirements string) Prompt {
	if strings.TrimSpace(requirements) != "" {
		return pb.BuildStructuredPrompt(resumeText, requirements)
	}
	return pb.BuildEvaluatorPrompt(resumeText)
}

// BuildStructuredPrompt embeds both inputs verbatim in the 11-point JSON analysis request.
func (pb *PromptBuilder) BuildStructuredPrompt(resumeText, requirements string) Prompt {
	return Prompt{
		TemplateID: StructuredTemplateID,
		System:     structuredSystemPrompt,
		User:       fmt.Sprintf(structuredUserTemplate, requirements, resumeText),
	}
}

// BuildEvaluatorPrompt asks for the free-text report read by ParseFeedback.
func (pb *PromptBuilder) BuildEvaluatorPrompt(resumeText string) Prompt {
	return Prompt{
		TemplateID: EvaluatorTemplateID,
		System:     evaluatorSystemPrompt,
		User:       "Here is the extracted resume text:\n" + resumeText,
	}
}
