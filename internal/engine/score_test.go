package engine

import (
	"math"
	"strings"
	"testing"
	"time"

	"jobmatch/internal/skills"
	"jobmatch/internal/types"
)

func fixedNow() time.Time {
	return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
}

func newTestScorer() *Scorer {
	s := NewScorer(skills.NewSkillMap(nil), nil)
	s.now = fixedNow
	return s
}

func approx(t *testing.T, got, want float64, label string) {
	t.Helper()
	if math.Abs(got-want) > 0.001 {
		t.Errorf("%s = %f, want %f", label, got, want)
	}
}

func TestSkillsSubScore(t *testing.T) {
	tests := []struct {
		name         string
		resumeSkills []string
		jobSkills    []string
		expected     float64
	}{
		{"job asks for nothing", []string{"Python"}, nil, 1.0},
		{"resume has nothing", nil, []string{"Python"}, 0.0},
		{"full coverage", []string{"Python", "SQL"}, []string{"Python", "SQL"}, 1.0},
		{"half coverage", []string{"Python"}, []string{"Python", "Java"}, 0.5},
		{"case insensitive", []string{"python"}, []string{"PYTHON"}, 1.0},
		{"substring counts as coverage", []string{"PostgreSQL avançado"}, []string{"PostgreSQL"}, 1.0},
		{"surplus earns a capped bonus", []string{"Python", "Go", "Docker", "AWS"}, []string{"Java", "Python"}, 0.65},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			approx(t, skillsSubScore(tt.resumeSkills, tt.jobSkills), tt.expected, "skillsSubScore")
		})
	}
}

func TestExperienceSubScore(t *testing.T) {
	scorer := newTestScorer()

	t.Run("no experience scores zero", func(t *testing.T) {
		approx(t, scorer.experienceSubScore(nil, types.NormalizedJob{ExperienceLevel: "Júnior"}),
			0.0, "experienceSubScore")
	})

	t.Run("level met scores full", func(t *testing.T) {
		experience := []types.ExperienceEntry{
			{Title: "Analista", StartDate: "2020-01", EndDate: "2023-01"}, // 36 months, pleno
		}
		job := types.NormalizedJob{Title: "Contador", ExperienceLevel: "Júnior"}
		approx(t, scorer.experienceSubScore(experience, job), 1.0, "experienceSubScore")
	})

	t.Run("each missing level costs a quarter", func(t *testing.T) {
		experience := []types.ExperienceEntry{
			{Title: "Analista", StartDate: "2020-01", EndDate: "2023-01"}, // 36 months, pleno
		}
		job := types.NormalizedJob{Title: "Contador", ExperienceLevel: "Sênior"}
		approx(t, scorer.experienceSubScore(experience, job), 0.75, "experienceSubScore")
	})

	t.Run("relevant title earns a bonus", func(t *testing.T) {
		experience := []types.ExperienceEntry{
			{Title: "Desenvolvedor", StartDate: "2020-01", EndDate: "2023-01"}, // 36 relevant months
		}
		job := types.NormalizedJob{Title: "Desenvolvedor Backend", ExperienceLevel: "Sênior"}
		approx(t, scorer.experienceSubScore(experience, job), 0.95, "experienceSubScore")
	})

	t.Run("unparseable dates count a fixed duration", func(t *testing.T) {
		experience := []types.ExperienceEntry{
			{Title: "Analista", StartDate: "data desconhecida", EndDate: "também desconhecida"},
		}
		// 12 assumed months put the candidate at júnior level
		job := types.NormalizedJob{Title: "Contador", ExperienceLevel: "Pleno"}
		approx(t, scorer.experienceSubScore(experience, job), 0.75, "experienceSubScore")
	})

	t.Run("open ended entry runs to now", func(t *testing.T) {
		experience := []types.ExperienceEntry{
			{Title: "Analista", StartDate: "2015-01", EndDate: "Presente"}, // 132 months, executive bucket
		}
		job := types.NormalizedJob{Title: "Contador", ExperienceLevel: "Diretor"}
		approx(t, scorer.experienceSubScore(experience, job), 1.0, "experienceSubScore")
	})
}

func TestExperienceLevelForMonths(t *testing.T) {
	tests := []struct {
		months   int
		expected int
	}{
		{0, 0}, {5, 0}, {6, 1}, {23, 1}, {24, 2}, {59, 2},
		{60, 3}, {95, 3}, {96, 4}, {119, 4}, {120, 5}, {300, 5},
	}
	for _, tt := range tests {
		if got := experienceLevelForMonths(tt.months); got != tt.expected {
			t.Errorf("experienceLevelForMonths(%d) = %d, want %d", tt.months, got, tt.expected)
		}
	}
}

func TestEducationSubScore(t *testing.T) {
	bachelor := []types.EducationEntry{
		{Degree: "Bacharelado", FieldOfStudy: "Ciência da Computação"},
	}

	t.Run("no education scores zero", func(t *testing.T) {
		approx(t, educationSubScore(nil, []string{"Formação superior"}), 0.0, "educationSubScore")
	})

	t.Run("job without education requirement cannot fail", func(t *testing.T) {
		approx(t, educationSubScore(bachelor, []string{"Python", "Docker"}), 1.0, "educationSubScore")
	})

	t.Run("requirement met with matching field", func(t *testing.T) {
		reqs := []string{"Formação superior em computação"}
		approx(t, educationSubScore(bachelor, reqs), 1.0, "educationSubScore")
	})

	t.Run("degree gap and field mismatch both penalize", func(t *testing.T) {
		technical := []types.EducationEntry{
			{Degree: "Técnico", FieldOfStudy: "Eletrônica"},
		}
		reqs := []string{"Formação superior em computação"}
		// One degree level short (0.7) minus the field mismatch (0.2)
		approx(t, educationSubScore(technical, reqs), 0.5, "educationSubScore")
	})

	t.Run("higher degree satisfies lower requirement", func(t *testing.T) {
		master := []types.EducationEntry{{Degree: "Mestrado"}}
		reqs := []string{"Graduação completa"}
		approx(t, educationSubScore(master, reqs), 1.0, "educationSubScore")
	})

	t.Run("postgraduate does not read as plain graduation", func(t *testing.T) {
		// "pós-graduação" must resolve to the higher ordinal
		postgrad := []types.EducationEntry{{Degree: "Pós-graduação"}}
		reqs := []string{"Formação: mestrado"}
		// level 4 against required 5: one level short
		approx(t, educationSubScore(postgrad, reqs), 0.7, "educationSubScore")
	})
}

func TestTitleSubScore(t *testing.T) {
	tests := []struct {
		name        string
		resumeTitle string
		jobTitle    string
		expected    float64
	}{
		{"missing resume title is neutral", "", "Desenvolvedor", 0.5},
		{"missing job title is neutral", "Desenvolvedor", "", 0.5},
		{"identical titles", "Desenvolvedor Backend", "Desenvolvedor Backend", 1.0},
		{"shared word with verbatim bonus", "Analista de Dados", "Cientista de Dados", 1.0/3 + 0.3},
		{"disjoint titles", "Contador", "Desenvolvedor", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			approx(t, titleSubScore(tt.resumeTitle, tt.jobTitle), tt.expected, "titleSubScore")
		})
	}
}

func TestSkillGapsPartition(t *testing.T) {
	resumeSkills := []string{"Python", "Docker"}
	jobSkills := []string{"Python", "Java", "Docker", "Kubernetes"}

	matching, missing := skillGaps(resumeSkills, jobSkills)

	// Every job skill lands in exactly one list
	if len(matching)+len(missing) != len(jobSkills) {
		t.Fatalf("Partition lost or duplicated skills: %d matching + %d missing != %d job skills",
			len(matching), len(missing), len(jobSkills))
	}
	seen := make(map[string]int)
	for _, s := range matching {
		seen[s]++
	}
	for _, s := range missing {
		seen[s]++
	}
	for _, s := range jobSkills {
		if seen[s] != 1 {
			t.Errorf("Job skill %q appears %d times across the partition", s, seen[s])
		}
	}

	if len(matching) != 2 || matching[0] != "Python" || matching[1] != "Docker" {
		t.Errorf("Unexpected matching list: %v", matching)
	}
	if len(missing) != 2 || missing[0] != "Java" || missing[1] != "Kubernetes" {
		t.Errorf("Unexpected missing list: %v", missing)
	}
}

func TestSkillGapsEmptyInputs(t *testing.T) {
	matching, missing := skillGaps(nil, nil)
	if matching == nil || missing == nil {
		t.Error("Gap lists must be empty, not nil")
	}
	if len(matching) != 0 || len(missing) != 0 {
		t.Errorf("Expected empty lists, got %v / %v", matching, missing)
	}
}

func TestScoreIsDeterministic(t *testing.T) {
	scorer := newTestScorer()
	resume := sampleResume()
	job := sampleJob()

	first := scorer.Score(resume, job)
	second := scorer.Score(resume, job)

	if first.ScoreOverall != second.ScoreOverall {
		t.Errorf("Overall score changed between runs: %f vs %f",
			first.ScoreOverall, second.ScoreOverall)
	}
	if first.ScoreDetails != second.ScoreDetails {
		t.Errorf("Score details changed between runs: %+v vs %+v",
			first.ScoreDetails, second.ScoreDetails)
	}
}

func TestScoreStaysInRange(t *testing.T) {
	scorer := newTestScorer()

	results := []types.MatchResult{
		scorer.Score(types.NormalizedResume{}, types.NormalizedJob{}),
		scorer.Score(sampleResume(), sampleJob()),
		scorer.Score(sampleResume(), types.NormalizedJob{}),
		scorer.Score(types.NormalizedResume{}, sampleJob()),
	}

	for i, result := range results {
		if result.ScoreOverall < 0 || result.ScoreOverall > 100 {
			t.Errorf("Result %d overall score out of range: %f", i, result.ScoreOverall)
		}
		for label, v := range map[string]float64{
			"technical": result.ScoreDetails.TechnicalSkills,
			"soft":      result.ScoreDetails.SoftSkills,
			"exp":       result.ScoreDetails.Experience,
			"edu":       result.ScoreDetails.Education,
			"title":     result.ScoreDetails.JobTitle,
		} {
			if v < 0 || v > 100 {
				t.Errorf("Result %d %s sub-score out of range: %f", i, label, v)
			}
		}
		if result.CreatedAt.IsZero() {
			t.Errorf("Result %d has no timestamp", i)
		}
	}
}

func TestScoreMonotonicInSkills(t *testing.T) {
	scorer := newTestScorer()
	job := sampleJob()

	weaker := sampleResume()
	weaker.Skills.Technical = []string{"Python"}

	stronger := sampleResume()
	stronger.Skills.Technical = []string{"Python", "Django"}

	weakResult := scorer.Score(weaker, job)
	strongResult := scorer.Score(stronger, job)

	if strongResult.ScoreOverall < weakResult.ScoreOverall {
		t.Errorf("Adding a required skill lowered the score: %f -> %f",
			weakResult.ScoreOverall, strongResult.ScoreOverall)
	}
	if len(strongResult.MissingSkills) > len(weakResult.MissingSkills) {
		t.Errorf("Adding a required skill grew the missing list: %v -> %v",
			weakResult.MissingSkills, strongResult.MissingSkills)
	}
}

func TestScoreRecommendationsMentionMissingSkills(t *testing.T) {
	scorer := newTestScorer()
	resume := sampleResume()
	resume.Skills.Technical = []string{"Python"}

	result := scorer.Score(resume, sampleJob())

	if len(result.MissingSkills) == 0 {
		t.Fatal("Expected missing skills for the partial resume")
	}
	if len(result.Recommendations) == 0 {
		t.Fatal("Expected recommendations for a partial match")
	}
	if !containsSubstring(result.Recommendations, result.MissingSkills[0]) {
		t.Errorf("Recommendations %v never mention missing skill %q",
			result.Recommendations, result.MissingSkills[0])
	}
}

func TestClampScore(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{-5, 0}, {0, 0}, {50.125, 50.13}, {100, 100}, {130, 100}, {math.NaN(), 0},
	}
	for _, tt := range tests {
		if got := ClampScore(tt.input); got != tt.expected {
			t.Errorf("ClampScore(%f) = %f, want %f", tt.input, got, tt.expected)
		}
	}
}

func containsSubstring(haystack []string, needle string) bool {
	for _, h := range haystack {
		if strings.Contains(h, needle) {
			return true
		}
	}
	return false
}

func sampleResume() types.NormalizedResume {
	return types.NormalizedResume{
		PersonalInfo: types.PersonalInfo{Name: "João Silva", Email: "joao@example.com"},
		Skills: types.SkillSet{
			Technical: []string{"Python", "Django", "PostgreSQL"},
			Soft:      []string{"Comunicação"},
		},
		Experience: []types.ExperienceEntry{
			{Title: "Desenvolvedor Backend", Company: "TechCorp", StartDate: "2020-01", EndDate: "2023-01"},
		},
		Education: []types.EducationEntry{
			{Degree: "Bacharelado", FieldOfStudy: "Ciência da Computação"},
		},
	}
}

func sampleJob() types.NormalizedJob {
	return types.NormalizedJob{
		Title:           "Desenvolvedor Backend",
		Company:         "TechCorp",
		ExperienceLevel: "Pleno",
		Skills: types.SkillSet{
			Technical: []string{"Python", "Django"},
			Soft:      []string{"Comunicação"},
		},
		Requirements: []string{"Formação superior em computação"},
	}
}
