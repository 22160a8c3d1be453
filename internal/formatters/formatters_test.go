package formatters

import (
	"encoding/json"
	"strings"
	"testing"

	"jobmatch/internal/types"
)

func sampleMatch() types.MatchResult {
	return types.MatchResult{
		ScoreOverall: 78.5,
		ScoreDetails: types.ScoreDetails{
			TechnicalSkills: 80,
			SoftSkills:      70,
			Experience:      75,
			Education:       90,
			JobTitle:        60,
		},
		MatchingSkills:  []string{"Python", "Django"},
		MissingSkills:   []string{"Kubernetes"},
		Recommendations: []string{"Estude Kubernetes"},
	}
}

func TestRegistrySupportedFormats(t *testing.T) {
	registry := NewFormatterRegistry()

	formats := registry.GetSupportedFormats()
	want := map[string]bool{"json": true, "text": true, "markdown": true}
	for _, f := range formats {
		delete(want, f)
	}
	if len(want) > 0 {
		t.Errorf("Missing formats: %v", want)
	}
}

func TestJSONFormatterRoundTrip(t *testing.T) {
	registry := NewFormatterRegistry()

	output, err := registry.Format(sampleMatch(), "json")
	if err != nil {
		t.Fatalf("JSON formatting failed: %v", err)
	}

	var decoded types.MatchResult
	if err := json.Unmarshal([]byte(output), &decoded); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if decoded.ScoreOverall != 78.5 {
		t.Errorf("Expected score 78.5 after round trip, got %f", decoded.ScoreOverall)
	}
}

func TestMatchTextFormatter(t *testing.T) {
	registry := NewFormatterRegistry()

	output, err := registry.Format(sampleMatch(), "text")
	if err != nil {
		t.Fatalf("Text formatting failed: %v", err)
	}

	for _, want := range []string{"78.50", "Python", "Kubernetes", "Estude Kubernetes"} {
		if !strings.Contains(output, want) {
			t.Errorf("Text output missing %q:\n%s", want, output)
		}
	}
}

func TestMatchMarkdownFormatter(t *testing.T) {
	registry := NewFormatterRegistry()

	output, err := registry.Format(sampleMatch(), "markdown")
	if err != nil {
		t.Fatalf("Markdown formatting failed: %v", err)
	}

	if !strings.Contains(output, "# Match Result") {
		t.Errorf("Markdown output missing heading:\n%s", output)
	}
	if !strings.Contains(output, "| Technical Skills | 80.00 |") {
		t.Errorf("Markdown output missing score table row:\n%s", output)
	}
}

func TestResumeFormatters(t *testing.T) {
	resume := types.NormalizedResume{
		PersonalInfo: types.PersonalInfo{Name: "João Silva", Email: "joao@example.com"},
		Skills:       types.SkillSet{Technical: []string{"Python"}, Soft: []string{"Comunicação"}},
		Experience: []types.ExperienceEntry{
			{Title: "Desenvolvedor", Company: "TechCorp", StartDate: "2020", EndDate: "2023"},
		},
	}
	registry := NewFormatterRegistry()

	for _, format := range []string{"text", "markdown"} {
		output, err := registry.Format(resume, format)
		if err != nil {
			t.Fatalf("%s formatting failed: %v", format, err)
		}
		for _, want := range []string{"João Silva", "Python", "Desenvolvedor", "TechCorp"} {
			if !strings.Contains(output, want) {
				t.Errorf("%s output missing %q", format, want)
			}
		}
	}
}

func TestJobFormatters(t *testing.T) {
	job := types.NormalizedJob{
		Title:           "Desenvolvedor Backend",
		Company:         "TechCorp",
		ExperienceLevel: "Pleno",
		Category:        "Desenvolvimento de Software",
		Skills:          types.SkillSet{Technical: []string{"Python"}},
		Requirements:    []string{"Experiência com Python"},
		Benefits:        []string{"Vale refeição"},
	}
	registry := NewFormatterRegistry()

	for _, format := range []string{"text", "markdown"} {
		output, err := registry.Format(job, format)
		if err != nil {
			t.Fatalf("%s formatting failed: %v", format, err)
		}
		for _, want := range []string{"Desenvolvedor Backend", "Pleno", "Experiência com Python", "Vale refeição"} {
			if !strings.Contains(output, want) {
				t.Errorf("%s output missing %q", format, want)
			}
		}
	}
}

func TestReportFormatters(t *testing.T) {
	report := types.RecommendationReport{
		Strengths:       []string{"Forte em Python"},
		Gaps:            []string{"Sem Kubernetes"},
		Recommendations: []string{"Estude Kubernetes"},
	}
	registry := NewFormatterRegistry()

	for _, format := range []string{"text", "markdown"} {
		output, err := registry.Format(report, format)
		if err != nil {
			t.Fatalf("%s formatting failed: %v", format, err)
		}
		for _, want := range []string{"Forte em Python", "Sem Kubernetes", "Estude Kubernetes"} {
			if !strings.Contains(output, want) {
				t.Errorf("%s output missing %q", format, want)
			}
		}
	}
}

func TestUnknownFormat(t *testing.T) {
	registry := NewFormatterRegistry()

	_, err := registry.Format(sampleMatch(), "xml")
	if err == nil {
		t.Error("Expected an error for an unsupported format")
	}
}

func TestUnknownTypeFallsBackToJSON(t *testing.T) {
	registry := NewFormatterRegistry()

	output, err := registry.Format(map[string]string{"chave": "valor"}, "json")
	if err != nil {
		t.Fatalf("Generic JSON formatting failed: %v", err)
	}
	if !strings.Contains(output, "chave") {
		t.Errorf("Generic output missing content: %s", output)
	}
}
