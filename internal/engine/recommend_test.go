package engine

import (
	"strings"
	"testing"

	"jobmatch/internal/types"
)

func TestBuildReportThresholds(t *testing.T) {
	match := types.MatchResult{
		ScoreDetails: types.ScoreDetails{
			TechnicalSkills: 95, // strength
			SoftSkills:      65, // neither
			Experience:      30, // gap
			Education:       80, // strength (inclusive threshold)
			JobTitle:        49, // gap
		},
		Recommendations: []string{"estude kubernetes"},
	}

	report := buildReport(match, types.NormalizedJob{})

	if len(report.Strengths) != 2 {
		t.Errorf("Expected 2 factor strengths, got %v", report.Strengths)
	}
	if len(report.Gaps) != 2 {
		t.Errorf("Expected 2 factor gaps, got %v", report.Gaps)
	}
	if len(report.Recommendations) != 1 || report.Recommendations[0] != "estude kubernetes" {
		t.Errorf("Match recommendations should carry over, got %v", report.Recommendations)
	}
}

func TestBuildReportSkillSummaries(t *testing.T) {
	match := types.MatchResult{
		ScoreDetails: types.ScoreDetails{
			TechnicalSkills: 70, SoftSkills: 70, Experience: 70, Education: 70, JobTitle: 70,
		},
		MatchingSkills: []string{"Python", "Django"},
		MissingSkills:  []string{"Kubernetes"},
	}
	job := types.NormalizedJob{
		Skills: types.SkillSet{Technical: []string{"Python", "Django", "Kubernetes"}},
	}

	report := buildReport(match, job)

	foundStrength := false
	for _, s := range report.Strengths {
		if strings.Contains(s, "2 das 3") {
			foundStrength = true
		}
	}
	if !foundStrength {
		t.Errorf("Expected a matched-skill summary in %v", report.Strengths)
	}

	foundGap := false
	for _, g := range report.Gaps {
		if strings.Contains(g, "Kubernetes") {
			foundGap = true
		}
	}
	if !foundGap {
		t.Errorf("Expected the missing skill named in %v", report.Gaps)
	}
}

func TestBuildReportEmptyMatch(t *testing.T) {
	report := buildReport(types.MatchResult{}, types.NormalizedJob{})

	if report.Strengths == nil || report.Gaps == nil {
		t.Error("Report lists must be empty, not nil")
	}
	// Every zero sub-score is a gap
	if len(report.Gaps) != 5 {
		t.Errorf("Expected all five factors flagged as gaps, got %v", report.Gaps)
	}
}
