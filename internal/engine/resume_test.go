package engine

import (
	"strings"
	"testing"

	"jobmatch/internal/skills"
)

const sampleResumeText = `João Silva
joao.silva@example.com
(11) 98765-4321
linkedin.com/in/joaosilva

Experiência Profissional:
Desenvolvedor backend - TechCorp
jan 2020 - Presente
Desenvolvimento de APIs em Python e PostgreSQL

Formação:
Bacharelado em Ciência da Computação, Universidade de São Paulo, 2015 a 2019

Habilidades:
Python, Django, PostgreSQL, Docker, Trabalho em equipe

Idiomas:
Inglês avançado
Português nativo`

func newTestResumeAnalyzer() *ResumeAnalyzer {
	return NewResumeAnalyzer(skills.NewSkillMap(nil), nil)
}

func TestResumeAnalyzerEmptyInput(t *testing.T) {
	analyzer := newTestResumeAnalyzer()

	for _, input := range []string{"", "   ", "\n\n\t"} {
		resume := analyzer.Analyze(input)
		if resume.Error == "" {
			t.Errorf("Analyze(%q) should set the error field", input)
		}
	}
}

func TestResumeAnalyzerPersonalInfo(t *testing.T) {
	analyzer := newTestResumeAnalyzer()

	resume := analyzer.Analyze(sampleResumeText)

	if resume.PersonalInfo.Name != "João Silva" {
		t.Errorf("Expected name 'João Silva', got %q", resume.PersonalInfo.Name)
	}
	if resume.PersonalInfo.Email != "joao.silva@example.com" {
		t.Errorf("Expected email to be extracted, got %q", resume.PersonalInfo.Email)
	}
	if resume.PersonalInfo.Phone == "" {
		t.Error("Expected phone to be extracted")
	}
	foundURL := false
	for _, u := range resume.PersonalInfo.URLs {
		if strings.Contains(u, "linkedin.com/in/joaosilva") {
			foundURL = true
		}
	}
	if !foundURL {
		t.Errorf("Expected LinkedIn URL in %v", resume.PersonalInfo.URLs)
	}
}

func TestResumeAnalyzerSkills(t *testing.T) {
	analyzer := newTestResumeAnalyzer()

	resume := analyzer.Analyze(sampleResumeText)

	wantTechnical := map[string]bool{"Python": true, "Django": true, "PostgreSQL": true, "Docker": true}
	for _, s := range resume.Skills.Technical {
		delete(wantTechnical, s)
	}
	if len(wantTechnical) > 0 {
		t.Errorf("Technical skills missing %v, got %v", wantTechnical, resume.Skills.Technical)
	}
	if len(resume.Skills.Soft) == 0 {
		t.Errorf("Expected at least one soft skill, got %v", resume.Skills.Soft)
	}

	// Canonical names only: normalizing again must change nothing
	skillMap := skills.NewSkillMap(nil)
	for _, s := range resume.Skills.All() {
		if normalized := skillMap.Normalize(s); normalized != s {
			t.Errorf("Skill %q is not canonical (normalizes to %q)", s, normalized)
		}
	}
}

func TestResumeAnalyzerExperience(t *testing.T) {
	analyzer := newTestResumeAnalyzer()

	resume := analyzer.Analyze(sampleResumeText)

	if len(resume.Experience) == 0 {
		t.Fatal("Expected at least one experience entry")
	}
	entry := resume.Experience[0]
	if entry.Title != "Desenvolvedor backend" {
		t.Errorf("Expected title 'Desenvolvedor backend', got %q", entry.Title)
	}
	if entry.Company != "TechCorp" {
		t.Errorf("Expected company 'TechCorp', got %q", entry.Company)
	}
	if entry.StartDate != "2020" {
		t.Errorf("Expected start date '2020', got %q", entry.StartDate)
	}
	if entry.EndDate != "Presente" {
		t.Errorf("Expected open-ended entry, got end date %q", entry.EndDate)
	}
}

func TestResumeAnalyzerEducation(t *testing.T) {
	analyzer := newTestResumeAnalyzer()

	resume := analyzer.Analyze(sampleResumeText)

	if len(resume.Education) == 0 {
		t.Fatal("Expected at least one education entry")
	}
	entry := resume.Education[0]
	if !strings.HasPrefix(entry.Degree, "Bacharelado") {
		t.Errorf("Expected a bachelor degree, got %q", entry.Degree)
	}
	if entry.Institution != "Universidade de São Paulo" {
		t.Errorf("Expected institution 'Universidade de São Paulo', got %q", entry.Institution)
	}
	if entry.FieldOfStudy != "Ciência da Computação" {
		t.Errorf("Expected field of study 'Ciência da Computação', got %q", entry.FieldOfStudy)
	}
	if entry.StartDate != "2015" || entry.EndDate != "2019" {
		t.Errorf("Expected dates 2015/2019, got %q/%q", entry.StartDate, entry.EndDate)
	}
}

func TestResumeAnalyzerLanguages(t *testing.T) {
	analyzer := newTestResumeAnalyzer()

	resume := analyzer.Analyze(sampleResumeText)

	byLanguage := make(map[string]string)
	for _, entry := range resume.Languages {
		byLanguage[entry.Language] = entry.Proficiency
	}
	if byLanguage["Inglês"] != "Avançado" {
		t.Errorf("Expected Inglês/Avançado, got %q", byLanguage["Inglês"])
	}
	if byLanguage["Português"] != "Nativo" {
		t.Errorf("Expected Português/Nativo, got %q", byLanguage["Português"])
	}
}

func TestResumeAnalyzerCertifications(t *testing.T) {
	analyzer := newTestResumeAnalyzer()

	text := `Maria Souza
maria@example.com

Certificações:
- AWS Certified Solutions Architect (nível associate) - Amazon
- Scrum Master certificado em 2021`

	resume := analyzer.Analyze(text)

	if len(resume.Certifications) != 2 {
		t.Fatalf("Expected 2 certifications, got %v", resume.Certifications)
	}
	first := resume.Certifications[0]
	if first.Name != "AWS Certified Solutions Architect (nível associate)" {
		t.Errorf("Expected certification name without issuer, got %q", first.Name)
	}
	if first.Issuer != "Amazon" {
		t.Errorf("Expected issuer 'Amazon', got %q", first.Issuer)
	}
	second := resume.Certifications[1]
	if second.Date != "2021" {
		t.Errorf("Expected certification year 2021, got %q", second.Date)
	}
}

func TestExtractSkillStrings(t *testing.T) {
	t.Run("qualified fragments survive whole", func(t *testing.T) {
		raws := extractSkillStrings("PostgreSQL avançado, culinária")
		if len(raws) != 1 || raws[0] != "PostgreSQL avançado" {
			t.Errorf("Expected the qualified fragment only, got %v", raws)
		}
	})

	t.Run("multi skill fragments contribute seed names", func(t *testing.T) {
		raws := extractSkillStrings("experiência sólida com python e java em produção")
		found := map[string]bool{}
		for _, r := range raws {
			found[r] = true
		}
		if !found["python"] || !found["java"] {
			t.Errorf("Expected the seed names, got %v", raws)
		}
	})

	t.Run("no separators falls back to a full scan", func(t *testing.T) {
		raws := extractSkillStrings("desenvolvedor python com docker")
		if len(raws) == 0 {
			t.Error("Expected skills from the fallback scan")
		}
	})

	t.Run("duplicates are suppressed", func(t *testing.T) {
		raws := extractSkillStrings("Python, python, PYTHON")
		if len(raws) != 1 {
			t.Errorf("Expected a single entry, got %v", raws)
		}
	})
}
