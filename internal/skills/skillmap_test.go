package skills

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestNormalize(t *testing.T) {
	sm := NewSkillMap(nil)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"exact alias lowercase", "javascript", "JavaScript"},
		{"exact alias short form", "js", "JavaScript"},
		{"exact alias mixed case", "PYTHON", "Python"},
		{"exact alias with spaces", "  golang  ", "Go"},
		{"kubernetes abbreviation", "k8s", "Kubernetes"},
		{"canonical maps to itself", "JavaScript", "JavaScript"},
		{"substring containment", "node.js developer", "Node.js"},
		{"fuzzy match close spelling", "postgresq", "PostgreSQL"},
		{"unknown skill capitalized", "quantum basket weaving", "Quantum basket weaving"},
		{"empty string", "", ""},
		{"soft skill english alias", "teamwork", "Trabalho em Equipe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sm.Normalize(tt.input)
			if got != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	sm := NewSkillMap(nil)

	inputs := []string{
		"javascript", "JS", "golang", "k8s", "postgres",
		"node.js developer", "teamwork", "quantum basket weaving",
		"Spring Boot", "ci/cd", "comunicação", "Something Unknown",
		"", "  docker  ",
	}

	for _, input := range inputs {
		once := sm.Normalize(input)
		twice := sm.Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first=%q second=%q", input, once, twice)
		}
	}
}

func TestCategorize(t *testing.T) {
	sm := NewSkillMap(nil)

	tests := []struct {
		skill    string
		expected string
	}{
		{"Python", CategoryTechnical},
		{"Comunicação", CategorySoft},
		{"React", CategoryFrameworks},
		{"PostgreSQL", CategoryDatabases},
		{"AWS", CategoryPlatforms},
		{"Scrum", CategoryMethodologies},
		{"Conflict Resolution", CategorySoft},  // keyword heuristic
		{"Some Obscure Tool", CategoryTechnical}, // default
	}

	for _, tt := range tests {
		t.Run(tt.skill, func(t *testing.T) {
			got := sm.Categorize(tt.skill)
			if got != tt.expected {
				t.Errorf("Categorize(%q) = %q, want %q", tt.skill, got, tt.expected)
			}
		})
	}
}

func TestSimilarity(t *testing.T) {
	sm := NewSkillMap(nil)

	tests := []struct {
		name     string
		a, b     string
		expected float64
	}{
		{"identical after normalization", "js", "javascript", 1.0},
		{"registered synonym", "JavaScript", "ECMAScript", 0.9},
		{"substring containment", "Spring", "Spring Boot", 0.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sm.Similarity(tt.a, tt.b)
			if got != tt.expected {
				t.Errorf("Similarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.expected)
			}
		})
	}

	t.Run("unrelated skills score low", func(t *testing.T) {
		got := sm.Similarity("Empatia", "Kubernetes")
		if got >= 0.8 {
			t.Errorf("Similarity for unrelated skills = %v, want < 0.8", got)
		}
	})
}

func TestRegisterAlias(t *testing.T) {
	sm := NewSkillMap(nil)

	if !sm.RegisterAlias("terraform", "Terraform") {
		t.Fatal("expected new alias registration to succeed")
	}
	if got := sm.Normalize("terraform"); got != "Terraform" {
		t.Errorf("Normalize after RegisterAlias = %q, want Terraform", got)
	}

	// Append-only: an existing alias must never be overwritten
	if sm.RegisterAlias("javascript", "SomethingElse") {
		t.Error("expected re-registration of existing alias to be rejected")
	}
	if got := sm.Normalize("javascript"); got != "JavaScript" {
		t.Errorf("Normalize(%q) = %q after rejected overwrite, want JavaScript", "javascript", got)
	}
}

func TestRegisterAliasConcurrent(t *testing.T) {
	sm := NewSkillMap(nil)

	var wg sync.WaitGroup
	stop := make(chan struct{})

	// Readers normalize concurrently with writers
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
					if got := sm.Normalize("golang"); got != "Go" {
						t.Errorf("concurrent Normalize(golang) = %q", got)
						return
					}
				}
			}
		}()
	}

	for i := range 100 {
		sm.RegisterAlias(string(rune('a'+i%26))+"custom", "Custom")
	}
	close(stop)
	wg.Wait()
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "skills.json")

	content := skillMapFile{
		Aliases: map[string]string{
			"tf":         "Terraform",
			"javascript": "Hijacked", // must not overwrite the builtin
		},
		Categories: map[string][]string{
			CategoryTools: {"Terraform"},
		},
		Synonyms: map[string][]string{
			"Terraform": {"IaC"},
		},
	}
	data, err := json.Marshal(content)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatal(err)
	}

	sm := NewSkillMap(nil)
	if err := sm.LoadFile(path); err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if got := sm.Normalize("tf"); got != "Terraform" {
		t.Errorf("Normalize(tf) = %q, want Terraform", got)
	}
	if got := sm.Normalize("javascript"); got != "JavaScript" {
		t.Errorf("builtin alias was overwritten: Normalize(javascript) = %q", got)
	}
	if got := sm.Categorize("Terraform"); got != CategoryTools {
		t.Errorf("Categorize(Terraform) = %q, want %q", got, CategoryTools)
	}
	syns := sm.Synonyms("Terraform")
	if len(syns) != 1 || syns[0] != "IaC" {
		t.Errorf("Synonyms(Terraform) = %v, want [IaC]", syns)
	}
}

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		a, b     string
		expected int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"go", "go", 0},
	}

	for _, tt := range tests {
		if got := levenshteinDistance(tt.a, tt.b); got != tt.expected {
			t.Errorf("levenshteinDistance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.expected)
		}
	}
}

func BenchmarkNormalize(b *testing.B) {
	sm := NewSkillMap(nil)

	b.Run("exact alias", func(b *testing.B) {
		for b.Loop() {
			sm.Normalize("javascript")
		}
	})

	b.Run("fuzzy match", func(b *testing.B) {
		for b.Loop() {
			sm.Normalize("postgresq")
		}
	})
}
