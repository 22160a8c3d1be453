package formatters

import (
	"encoding/json"
	"fmt"
	"strings"

	"jobmatch/internal/types"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	// Register default formatters
	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("text", "MatchResult", &MatchTextFormatter{})
	registry.RegisterFormatter("markdown", "MatchResult", &MatchMarkdownFormatter{})
	registry.RegisterFormatter("text", "NormalizedResume", &ResumeTextFormatter{})
	registry.RegisterFormatter("markdown", "NormalizedResume", &ResumeMarkdownFormatter{})
	registry.RegisterFormatter("text", "NormalizedJob", &JobTextFormatter{})
	registry.RegisterFormatter("markdown", "NormalizedJob", &JobMarkdownFormatter{})
	registry.RegisterFormatter("text", "RecommendationReport", &ReportTextFormatter{})
	registry.RegisterFormatter("markdown", "RecommendationReport", &ReportMarkdownFormatter{})

	return registry
}

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	// Try specific formatter first
	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case types.MatchResult:
		return "MatchResult"
	case types.NormalizedResume:
		return "NormalizedResume"
	case types.NormalizedJob:
		return "NormalizedJob"
	case types.RecommendationReport:
		return "RecommendationReport"
	default:
		return "any"
	}
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

// MatchTextFormatter handles text formatting for match results
type MatchTextFormatter struct{}

func (mtf *MatchTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.MatchResult)
	if !ok {
		return "", fmt.Errorf("expected MatchResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== MATCH RESULT ===\n\n")
	output.WriteString(fmt.Sprintf("Overall Score: %.2f/100\n\n", result.ScoreOverall))

	output.WriteString("=== SCORE DETAILS ===\n")
	output.WriteString(fmt.Sprintf("Technical Skills: %.2f\n", result.ScoreDetails.TechnicalSkills))
	output.WriteString(fmt.Sprintf("Soft Skills:      %.2f\n", result.ScoreDetails.SoftSkills))
	output.WriteString(fmt.Sprintf("Experience:       %.2f\n", result.ScoreDetails.Experience))
	output.WriteString(fmt.Sprintf("Education:        %.2f\n", result.ScoreDetails.Education))
	output.WriteString(fmt.Sprintf("Job Title:        %.2f\n\n", result.ScoreDetails.JobTitle))

	if len(result.MatchingSkills) > 0 {
		output.WriteString("Matching Skills:\n")
		for _, skill := range result.MatchingSkills {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
		output.WriteString("\n")
	}

	if len(result.MissingSkills) > 0 {
		output.WriteString("Missing Skills:\n")
		for _, skill := range result.MissingSkills {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
		output.WriteString("\n")
	}

	if len(result.Recommendations) > 0 {
		output.WriteString("=== RECOMMENDATIONS ===\n")
		for i, recommendation := range result.Recommendations {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, recommendation))
		}
	}

	return output.String(), nil
}

func (mtf *MatchTextFormatter) SupportedType() string {
	return "MatchResult"
}

// MatchMarkdownFormatter handles markdown formatting for match results
type MatchMarkdownFormatter struct{}

func (mmf *MatchMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.MatchResult)
	if !ok {
		return "", fmt.Errorf("expected MatchResult, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Match Result\n\n")
	output.WriteString(fmt.Sprintf("**Overall Score:** %.2f/100\n\n", result.ScoreOverall))

	output.WriteString("## Score Details\n\n")
	output.WriteString("| Factor | Score |\n")
	output.WriteString("|--------|-------|\n")
	output.WriteString(fmt.Sprintf("| Technical Skills | %.2f |\n", result.ScoreDetails.TechnicalSkills))
	output.WriteString(fmt.Sprintf("| Soft Skills | %.2f |\n", result.ScoreDetails.SoftSkills))
	output.WriteString(fmt.Sprintf("| Experience | %.2f |\n", result.ScoreDetails.Experience))
	output.WriteString(fmt.Sprintf("| Education | %.2f |\n", result.ScoreDetails.Education))
	output.WriteString(fmt.Sprintf("| Job Title | %.2f |\n\n", result.ScoreDetails.JobTitle))

	if len(result.MatchingSkills) > 0 {
		output.WriteString("## Matching Skills\n\n")
		for _, skill := range result.MatchingSkills {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
		output.WriteString("\n")
	}

	if len(result.MissingSkills) > 0 {
		output.WriteString("## Missing Skills\n\n")
		for _, skill := range result.MissingSkills {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
		output.WriteString("\n")
	}

	if len(result.Recommendations) > 0 {
		output.WriteString("## Recommendations\n\n")
		for i, recommendation := range result.Recommendations {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, recommendation))
		}
	}

	return output.String(), nil
}

func (mmf *MatchMarkdownFormatter) SupportedType() string {
	return "MatchResult"
}

// ResumeTextFormatter handles text formatting for structured resumes
type ResumeTextFormatter struct{}

func (rtf *ResumeTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.NormalizedResume)
	if !ok {
		return "", fmt.Errorf("expected NormalizedResume, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== STRUCTURED RESUME ===\n\n")
	if result.PersonalInfo.Name != "" {
		output.WriteString(fmt.Sprintf("Name: %s\n", result.PersonalInfo.Name))
	}
	if result.PersonalInfo.Email != "" {
		output.WriteString(fmt.Sprintf("Email: %s\n", result.PersonalInfo.Email))
	}
	if result.PersonalInfo.Phone != "" {
		output.WriteString(fmt.Sprintf("Phone: %s\n", result.PersonalInfo.Phone))
	}
	for _, u := range result.PersonalInfo.URLs {
		output.WriteString(fmt.Sprintf("URL: %s\n", u))
	}
	output.WriteString("\n")

	if len(result.Skills.Technical) > 0 {
		output.WriteString("Technical Skills:\n")
		for _, skill := range result.Skills.Technical {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
		output.WriteString("\n")
	}
	if len(result.Skills.Soft) > 0 {
		output.WriteString("Soft Skills:\n")
		for _, skill := range result.Skills.Soft {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
		output.WriteString("\n")
	}

	if len(result.Experience) > 0 {
		output.WriteString("=== EXPERIENCE ===\n")
		for _, entry := range result.Experience {
			output.WriteString(fmt.Sprintf("%s", entry.Title))
			if entry.Company != "" {
				output.WriteString(fmt.Sprintf(" - %s", entry.Company))
			}
			output.WriteString("\n")
			if entry.StartDate != "" || entry.EndDate != "" {
				output.WriteString(fmt.Sprintf("  %s - %s\n", entry.StartDate, entry.EndDate))
			}
			if entry.Description != "" {
				output.WriteString(fmt.Sprintf("  %s\n", entry.Description))
			}
			output.WriteString("\n")
		}
	}

	if len(result.Education) > 0 {
		output.WriteString("=== EDUCATION ===\n")
		for _, entry := range result.Education {
			output.WriteString(entry.Degree)
			if entry.Institution != "" {
				output.WriteString(fmt.Sprintf(" - %s", entry.Institution))
			}
			output.WriteString("\n")
			if entry.FieldOfStudy != "" {
				output.WriteString(fmt.Sprintf("  Field: %s\n", entry.FieldOfStudy))
			}
		}
		output.WriteString("\n")
	}

	if len(result.Languages) > 0 {
		output.WriteString("Languages:\n")
		for _, entry := range result.Languages {
			output.WriteString(fmt.Sprintf("- %s (%s)\n", entry.Language, entry.Proficiency))
		}
		output.WriteString("\n")
	}

	if len(result.Certifications) > 0 {
		output.WriteString("Certifications:\n")
		for _, entry := range result.Certifications {
			output.WriteString(fmt.Sprintf("- %s", entry.Name))
			if entry.Issuer != "" {
				output.WriteString(fmt.Sprintf(" (%s)", entry.Issuer))
			}
			output.WriteString("\n")
		}
	}

	return output.String(), nil
}

func (rtf *ResumeTextFormatter) SupportedType() string {
	return "NormalizedResume"
}

// ResumeMarkdownFormatter handles markdown formatting for structured resumes
type ResumeMarkdownFormatter struct{}

func (rmf *ResumeMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.NormalizedResume)
	if !ok {
		return "", fmt.Errorf("expected NormalizedResume, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Structured Resume\n\n")
	if result.PersonalInfo.Name != "" {
		output.WriteString(fmt.Sprintf("**Name:** %s\n\n", result.PersonalInfo.Name))
	}
	if result.PersonalInfo.Email != "" {
		output.WriteString(fmt.Sprintf("**Email:** %s\n\n", result.PersonalInfo.Email))
	}
	if result.PersonalInfo.Phone != "" {
		output.WriteString(fmt.Sprintf("**Phone:** %s\n\n", result.PersonalInfo.Phone))
	}

	if len(result.Skills.Technical) > 0 {
		output.WriteString("## Technical Skills\n\n")
		for _, skill := range result.Skills.Technical {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
		output.WriteString("\n")
	}
	if len(result.Skills.Soft) > 0 {
		output.WriteString("## Soft Skills\n\n")
		for _, skill := range result.Skills.Soft {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
		output.WriteString("\n")
	}

	if len(result.Experience) > 0 {
		output.WriteString("## Experience\n\n")
		for _, entry := range result.Experience {
			output.WriteString(fmt.Sprintf("### %s", entry.Title))
			if entry.Company != "" {
				output.WriteString(fmt.Sprintf(" - %s", entry.Company))
			}
			output.WriteString("\n\n")
			if entry.StartDate != "" || entry.EndDate != "" {
				output.WriteString(fmt.Sprintf("%s - %s\n\n", entry.StartDate, entry.EndDate))
			}
			if entry.Description != "" {
				output.WriteString(entry.Description)
				output.WriteString("\n\n")
			}
		}
	}

	if len(result.Education) > 0 {
		output.WriteString("## Education\n\n")
		for _, entry := range result.Education {
			output.WriteString(fmt.Sprintf("- %s", entry.Degree))
			if entry.Institution != "" {
				output.WriteString(fmt.Sprintf(", %s", entry.Institution))
			}
			if entry.FieldOfStudy != "" {
				output.WriteString(fmt.Sprintf(" (%s)", entry.FieldOfStudy))
			}
			output.WriteString("\n")
		}
		output.WriteString("\n")
	}

	if len(result.Languages) > 0 {
		output.WriteString("## Languages\n\n")
		for _, entry := range result.Languages {
			output.WriteString(fmt.Sprintf("- %s (%s)\n", entry.Language, entry.Proficiency))
		}
		output.WriteString("\n")
	}

	if len(result.Certifications) > 0 {
		output.WriteString("## Certifications\n\n")
		for _, entry := range result.Certifications {
			output.WriteString(fmt.Sprintf("- %s", entry.Name))
			if entry.Issuer != "" {
				output.WriteString(fmt.Sprintf(" (%s)", entry.Issuer))
			}
			output.WriteString("\n")
		}
	}

	return output.String(), nil
}

func (rmf *ResumeMarkdownFormatter) SupportedType() string {
	return "NormalizedResume"
}

// JobTextFormatter handles text formatting for structured job postings
type JobTextFormatter struct{}

func (jtf *JobTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.NormalizedJob)
	if !ok {
		return "", fmt.Errorf("expected NormalizedJob, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== STRUCTURED JOB ===\n\n")
	output.WriteString(fmt.Sprintf("Title: %s\n", result.Title))
	if result.Company != "" {
		output.WriteString(fmt.Sprintf("Company: %s\n", result.Company))
	}
	if result.Location != "" {
		output.WriteString(fmt.Sprintf("Location: %s\n", result.Location))
	}
	if result.JobType != "" {
		output.WriteString(fmt.Sprintf("Job Type: %s\n", result.JobType))
	}
	if result.ExperienceLevel != "" {
		output.WriteString(fmt.Sprintf("Experience Level: %s\n", result.ExperienceLevel))
	}
	if result.SalaryRange != "" {
		output.WriteString(fmt.Sprintf("Salary Range: %s\n", result.SalaryRange))
	}
	if result.Category != "" {
		output.WriteString(fmt.Sprintf("Category: %s\n", result.Category))
	}
	output.WriteString("\n")

	if len(result.Skills.Technical) > 0 {
		output.WriteString("Technical Skills:\n")
		for _, skill := range result.Skills.Technical {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
		output.WriteString("\n")
	}
	if len(result.Skills.Soft) > 0 {
		output.WriteString("Soft Skills:\n")
		for _, skill := range result.Skills.Soft {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
		output.WriteString("\n")
	}

	if len(result.Requirements) > 0 {
		output.WriteString("=== REQUIREMENTS ===\n")
		for _, req := range result.Requirements {
			output.WriteString(fmt.Sprintf("- %s\n", req))
		}
		output.WriteString("\n")
	}

	if len(result.Benefits) > 0 {
		output.WriteString("=== BENEFITS ===\n")
		for _, benefit := range result.Benefits {
			output.WriteString(fmt.Sprintf("- %s\n", benefit))
		}
	}

	return output.String(), nil
}

func (jtf *JobTextFormatter) SupportedType() string {
	return "NormalizedJob"
}

// JobMarkdownFormatter handles markdown formatting for structured job postings
type JobMarkdownFormatter struct{}

func (jmf *JobMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.NormalizedJob)
	if !ok {
		return "", fmt.Errorf("expected NormalizedJob, got %T", data)
	}

	var output strings.Builder

	output.WriteString(fmt.Sprintf("# %s\n\n", result.Title))
	if result.Company != "" {
		output.WriteString(fmt.Sprintf("**Company:** %s\n\n", result.Company))
	}
	if result.Location != "" {
		output.WriteString(fmt.Sprintf("**Location:** %s\n\n", result.Location))
	}
	if result.JobType != "" {
		output.WriteString(fmt.Sprintf("**Job Type:** %s\n\n", result.JobType))
	}
	if result.ExperienceLevel != "" {
		output.WriteString(fmt.Sprintf("**Experience Level:** %s\n\n", result.ExperienceLevel))
	}
	if result.SalaryRange != "" {
		output.WriteString(fmt.Sprintf("**Salary Range:** %s\n\n", result.SalaryRange))
	}
	if result.Category != "" {
		output.WriteString(fmt.Sprintf("**Category:** %s\n\n", result.Category))
	}

	if len(result.Skills.Technical) > 0 {
		output.WriteString("## Technical Skills\n\n")
		for _, skill := range result.Skills.Technical {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
		output.WriteString("\n")
	}
	if len(result.Skills.Soft) > 0 {
		output.WriteString("## Soft Skills\n\n")
		for _, skill := range result.Skills.Soft {
			output.WriteString(fmt.Sprintf("- %s\n", skill))
		}
		output.WriteString("\n")
	}

	if len(result.Requirements) > 0 {
		output.WriteString("## Requirements\n\n")
		for _, req := range result.Requirements {
			output.WriteString(fmt.Sprintf("- %s\n", req))
		}
		output.WriteString("\n")
	}

	if len(result.Benefits) > 0 {
		output.WriteString("## Benefits\n\n")
		for _, benefit := range result.Benefits {
			output.WriteString(fmt.Sprintf("- %s\n", benefit))
		}
	}

	return output.String(), nil
}

func (jmf *JobMarkdownFormatter) SupportedType() string {
	return "NormalizedJob"
}

// ReportTextFormatter handles text formatting for recommendation reports
type ReportTextFormatter struct{}

func (rtf *ReportTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.RecommendationReport)
	if !ok {
		return "", fmt.Errorf("expected RecommendationReport, got %T", data)
	}

	var output strings.Builder

	output.WriteString("=== FIT REPORT ===\n\n")

	if len(result.Strengths) > 0 {
		output.WriteString("Strengths:\n")
		for _, s := range result.Strengths {
			output.WriteString(fmt.Sprintf("- %s\n", s))
		}
		output.WriteString("\n")
	}

	if len(result.Gaps) > 0 {
		output.WriteString("Gaps:\n")
		for _, g := range result.Gaps {
			output.WriteString(fmt.Sprintf("- %s\n", g))
		}
		output.WriteString("\n")
	}

	if len(result.Recommendations) > 0 {
		output.WriteString("Recommendations:\n")
		for i, r := range result.Recommendations {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, r))
		}
	}

	return output.String(), nil
}

func (rtf *ReportTextFormatter) SupportedType() string {
	return "RecommendationReport"
}

// ReportMarkdownFormatter handles markdown formatting for recommendation reports
type ReportMarkdownFormatter struct{}

func (rmf *ReportMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.RecommendationReport)
	if !ok {
		return "", fmt.Errorf("expected RecommendationReport, got %T", data)
	}

	var output strings.Builder

	output.WriteString("# Fit Report\n\n")

	if len(result.Strengths) > 0 {
		output.WriteString("## Strengths\n\n")
		for _, s := range result.Strengths {
			output.WriteString(fmt.Sprintf("- %s\n", s))
		}
		output.WriteString("\n")
	}

	if len(result.Gaps) > 0 {
		output.WriteString("## Gaps\n\n")
		for _, g := range result.Gaps {
			output.WriteString(fmt.Sprintf("- %s\n", g))
		}
		output.WriteString("\n")
	}

	if len(result.Recommendations) > 0 {
		output.WriteString("## Recommendations\n\n")
		for i, r := range result.Recommendations {
			output.WriteString(fmt.Sprintf("%d. %s\n", i+1, r))
		}
	}

	return output.String(), nil
}

func (rmf *ReportMarkdownFormatter) SupportedType() string {
	return "RecommendationReport"
}

// Global formatter registry
var GlobalRegistry = NewFormatterRegistry()
