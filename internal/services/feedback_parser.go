package services

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/kesavpal/RESUMEWISE/internal/models"
)

// FeedbackParserID names the report layout ParseFeedback understands.
const FeedbackParserID = EvaluatorTemplateID

type feedbackSection struct {
	key     string
	markers []string
}

// feedbackSections lists section headings in report order. Markers match as
// plain substrings anywhere in the text; a section runs until the nearest
// marker of any other section.
var feedbackSections = []feedbackSection{
	{"summary", []string{"Executive Summary:"}},
	{"strengths", []string{"Key Strengths:", "Strengths:"}},
	{"improvements", []string{"Areas for Improvement:", "Improvements:"}},
	{"score", []string{"Resume Score:"}},
	{"fit", []string{"Job Role Fit:"}},
	{"suggestions", []string{"Suggestions for Improvement:", "Recommendations:", "Suggestions:"}},
	{"technicalSkills", []string{"Technical Skills Analysis:"}},
	{"softSkills", []string{"Soft Skills Analysis:"}},
	{"education", []string{"Education Analysis:"}},
	{"experience", []string{"Experience Analysis:"}},
	{"keywords", []string{"Keywords:"}},
	{"missingKeywords", []string{"Missing Keywords:"}},
	{"atsOptimization", []string{"ATS Optimization:"}},
	{"additionalTips", []string{"Additional Tips:"}},
}

var (
	scorePattern = regexp.MustCompile(`Resume Score: (\d+)/100`)
	fitPattern   = regexp.MustCompile(`Job Role Fit: (\d+)%`)
)

// FeedbackMarkers returns every heading ParseFeedback looks for.
func FeedbackMarkers() []string {
	var markers []string
	for _, section := range feedbackSections {
		markers = append(markers, section.markers...)
	}
	return markers
}

// ParseFeedback splits free-text evaluator output into a report. It never
// fails: sections that cannot be found keep their zero value, and Score/Fit
// stay nil unless reported in the exact "Resume Score: N/100" and
// "Job Role Fit: N%" form.
func ParseFeedback(text string) *models.FeedbackReport {
	return &models.FeedbackReport{
		Summary:            narrative(sectionBody(text, "summary")),
		Strengths:          bullets(sectionBody(text, "strengths")),
		Improvements:       bullets(sectionBody(text, "improvements")),
		Score:              matchInt(scorePattern, text),
		Fit:                matchInt(fitPattern, text),
		Suggestions:        bullets(sectionBody(text, "suggestions")),
		TechnicalSkills:    bullets(sectionBody(text, "technicalSkills")),
		SoftSkills:         bullets(sectionBody(text, "softSkills")),
		EducationAnalysis:  narrative(sectionBody(text, "education")),
		ExperienceAnalysis: narrative(sectionBody(text, "experience")),
		Keywords:           bullets(sectionBody(text, "keywords")),
		MissingKeywords:    bullets(sectionBody(text, "missingKeywords")),
		ATSOptimization:    bullets(sectionBody(text, "atsOptimization")),
		AdditionalTips:     bullets(sectionBody(text, "additionalTips")),
		ParserID:           FeedbackParserID,
	}
}

func sectionBody(text, key string) string {
	idx := -1
	for i, section := range feedbackSections {
		if section.key == key {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ""
	}

	hit, start := -1, -1
	for _, marker := range feedbackSections[idx].markers {
		if pos := findMarker(text, marker, idx, 0); pos >= 0 && (hit < 0 || pos < hit) {
			hit, start = pos, pos+len(marker)
		}
	}
	if hit < 0 {
		return ""
	}

	end := len(text)
	for i, other := range feedbackSections {
		if i == idx {
			continue
		}
		for _, marker := range other.markers {
			if pos := findMarker(text, marker, i, start); pos >= 0 && pos < end {
				end = pos
			}
		}
	}

	// drop heading decoration such as "### ✅ " or "2. " with the next heading
	if end < len(text) {
		if lineStart := strings.LastIndexByte(text[:end], '\n') + 1; lineStart >= start {
			end = lineStart
		}
	}

	return text[start:end]
}

// findMarker returns the first index at or after from where marker occurs,
// skipping hits that are only the tail of a longer marker of another section
// ("Keywords:" inside "Missing Keywords:").
func findMarker(text, marker string, section, from int) int {
	for from <= len(text) {
		rel := strings.Index(text[from:], marker)
		if rel < 0 {
			return -1
		}
		pos := from + rel
		if !insideLongerMarker(text, marker, section, pos) {
			return pos
		}
		from = pos + len(marker)
	}
	return -1
}

func insideLongerMarker(text, marker string, section, pos int) bool {
	for i, other := range feedbackSections {
		if i == section {
			continue
		}
		for _, longer := range other.markers {
			if len(longer) <= len(marker) || !strings.HasSuffix(longer, marker) {
				continue
			}
			prefix := len(longer) - len(marker)
			if pos >= prefix && text[pos-prefix:pos+len(marker)] == longer {
				return true
			}
		}
	}
	return false
}

func bullets(section string) []string {
	items := []string{}
	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "- ") {
			items = append(items, strings.TrimSpace(strings.TrimPrefix(line, "- ")))
		}
	}
	return items
}

func narrative(section string) string {
	section = strings.TrimSpace(section)
	section = strings.TrimLeft(section, "#*")
	section = strings.TrimRight(section, "#* \t\r\n")
	return strings.TrimSpace(section)
}

func matchInt(pattern *regexp.Regexp, text string) *int {
	match := pattern.FindStringSubmatch(text)
	if match == nil {
		return nil
	}
	value, err := strconv.Atoi(match[1])
	if err != nil {
		return nil
	}
	return &value
}
