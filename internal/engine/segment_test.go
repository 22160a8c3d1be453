package engine

import (
	"strings"
	"testing"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "windows line endings",
			input:    "linha um\r\nlinha dois",
			expected: "linha um\nlinha dois",
		},
		{
			name:     "old mac line endings",
			input:    "linha um\rlinha dois",
			expected: "linha um\nlinha dois",
		},
		{
			name:     "control characters become spaces",
			input:    "antes\x00depois",
			expected: "antes depois",
		},
		{
			name:     "blank line runs collapse",
			input:    "um\n\n\n\n\ndois",
			expected: "um\n\ndois",
		},
		{
			name:     "space runs collapse",
			input:    "um    dois\ttrês",
			expected: "um dois\ttrês",
		},
		{
			name:     "surrounding whitespace trimmed",
			input:    "  texto  ",
			expected: "texto",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeText(tt.input); got != tt.expected {
				t.Errorf("NormalizeText(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSegmentSections(t *testing.T) {
	text := strings.Join([]string{
		"João Silva",
		"joao@example.com",
		"",
		"Experiência Profissional:",
		"desenvolvedor backend na TechCorp desde 2020",
		"",
		"Formação:",
		"bacharelado em computação",
		"",
		"Habilidades:",
		"python, sql e docker",
	}, "\n")

	sections := SegmentSections(text)

	if _, ok := sections[SectionExperience]; !ok {
		t.Error("Expected an experience section")
	}
	if !strings.Contains(sections[SectionExperience], "TechCorp") {
		t.Errorf("Experience section missing content: %q", sections[SectionExperience])
	}
	if !strings.Contains(sections[SectionEducation], "bacharelado") {
		t.Errorf("Education section missing content: %q", sections[SectionEducation])
	}
	if !strings.Contains(sections[SectionSkills], "python") {
		t.Errorf("Skills section missing content: %q", sections[SectionSkills])
	}
}

func TestSegmentSectionsLeadingTextIsPersonalInfo(t *testing.T) {
	text := "joao@example.com\n(11) 98765-4321\n\nHabilidades:\npython"

	sections := SegmentSections(text)

	if !strings.Contains(sections[SectionPersonalInfo], "joao@example.com") {
		t.Errorf("Text before the first header should be personal info, got %q",
			sections[SectionPersonalInfo])
	}
}

func TestSegmentSectionsUnknownHeader(t *testing.T) {
	text := "PROJETOS:\ndetalhes do projeto alfa"

	sections := SegmentSections(text)

	if !strings.Contains(sections[SectionOther], "projeto alfa") {
		t.Errorf("Unrecognized headers should accumulate under other, got %q",
			sections[SectionOther])
	}
}

func TestIsSectionHeader(t *testing.T) {
	tests := []struct {
		line     string
		expected bool
	}{
		{"Experiência Profissional:", true},
		{"FORMAÇÃO", true},
		{"habilidades e competências", true}, // keyword match
		{"", false},
		{"desenvolvi sistemas de cobrança para clientes do varejo nacional", false},
		{"trabalhei na empresa entre 2019 e 2021", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			if got := isSectionHeader(tt.line); got != tt.expected {
				t.Errorf("isSectionHeader(%q) = %v, want %v", tt.line, got, tt.expected)
			}
		})
	}
}

func TestIdentifySection(t *testing.T) {
	tests := []struct {
		header   string
		expected SectionType
	}{
		{"Experiência Profissional:", SectionExperience},
		{"Work History", SectionExperience},
		{"Formação Acadêmica", SectionEducation},
		{"Escolaridade", SectionEducation},
		{"Habilidades Técnicas", SectionSkills},
		{"Conhecimentos", SectionSkills},
		{"Idiomas", SectionLanguages},
		{"Certificações:", SectionCertifications},
		{"Cursos", SectionCertifications},
		{"Projetos", SectionOther},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			if got := identifySection(tt.header); got != tt.expected {
				t.Errorf("identifySection(%q) = %v, want %v", tt.header, got, tt.expected)
			}
		})
	}
}
