package engine

import (
	"regexp"
	"strings"
	"unicode"
)

// SectionType labels a block of resume text by its content
type SectionType string

const (
	SectionPersonalInfo   SectionType = "personal_info"
	SectionSkills         SectionType = "skills"
	SectionExperience     SectionType = "experience"
	SectionEducation      SectionType = "education"
	SectionLanguages      SectionType = "languages"
	SectionCertifications SectionType = "certifications"
	SectionOther          SectionType = "other"
)

var (
	multiNewline = regexp.MustCompile(`\n{3,}`)
	multiSpace   = regexp.MustCompile(`[ \t]{2,}`)
)

// sectionKeywords maps header keywords (Portuguese and English) to the
// section they introduce. Matching is case-insensitive substring.
var sectionKeywords = []struct {
	keyword string
	section SectionType
}{
	{"formação", SectionEducation},
	{"educação", SectionEducation},
	{"escolaridade", SectionEducation},
	{"acadêmic", SectionEducation},
	{"education", SectionEducation},
	{"academic", SectionEducation},
	{"experiência", SectionExperience},
	{"experiencia", SectionExperience},
	{"profissional", SectionExperience},
	{"trabalho", SectionExperience},
	{"carreira", SectionExperience},
	{"experience", SectionExperience},
	{"employment", SectionExperience},
	{"work history", SectionExperience},
	{"habilidades", SectionSkills},
	{"competências", SectionSkills},
	{"competencias", SectionSkills},
	{"conhecimentos", SectionSkills},
	{"tecnologias", SectionSkills},
	{"skills", SectionSkills},
	{"technologies", SectionSkills},
	{"idiomas", SectionLanguages},
	{"línguas", SectionLanguages},
	{"linguas", SectionLanguages},
	{"languages", SectionLanguages},
	{"certificações", SectionCertifications},
	{"certificacoes", SectionCertifications},
	{"certificados", SectionCertifications},
	{"certifications", SectionCertifications},
	{"certificates", SectionCertifications},
	{"cursos", SectionCertifications},
}

// NormalizeText prepares raw document text for segmentation: control
// characters become spaces, line endings are unified, and runs of blank
// lines or spaces are collapsed.
func NormalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '\n' || r == '\t':
			b.WriteRune(r)
		case unicode.IsControl(r) || (r >= 0x7f && r <= 0xa0):
			b.WriteRune(' ')
		default:
			b.WriteRune(r)
		}
	}

	out := multiNewline.ReplaceAllString(b.String(), "\n\n")
	out = multiSpace.ReplaceAllString(out, " ")
	return strings.TrimSpace(out)
}

// SegmentSections splits normalized text into labeled sections using
// header-detection heuristics. Text before the first header is attributed
// to personal info. Unrecognized headers accumulate under "other".
func SegmentSections(text string) map[SectionType]string {
	sections := make(map[SectionType]string)
	current := SectionPersonalInfo
	var block []string

	flush := func() {
		if len(block) == 0 {
			return
		}
		content := strings.TrimSpace(strings.Join(block, "\n"))
		block = block[:0]
		if content == "" {
			return
		}
		if existing, ok := sections[current]; ok {
			sections[current] = existing + "\n" + content
		} else {
			sections[current] = content
		}
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if isSectionHeader(trimmed) {
			flush()
			current = identifySection(trimmed)
			continue
		}
		block = append(block, line)
	}
	flush()

	return sections
}

// isSectionHeader reports whether a line looks like a section header:
// short and upper-case, title-case, or colon-terminated, or containing a
// known header keyword.
func isSectionHeader(line string) bool {
	if line == "" || len(line) >= 50 {
		return false
	}
	if strings.HasSuffix(line, ":") {
		return true
	}
	if isAllUpper(line) || isTitleCase(line) {
		return true
	}
	if len(line) < 30 {
		lowered := strings.ToLower(line)
		for _, kw := range sectionKeywords {
			if strings.Contains(lowered, kw.keyword) {
				return true
			}
		}
	}
	return false
}

func identifySection(header string) SectionType {
	lowered := strings.ToLower(strings.TrimSuffix(header, ":"))
	for _, kw := range sectionKeywords {
		if strings.Contains(lowered, kw.keyword) {
			return kw.section
		}
	}
	return SectionOther
}

func isAllUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

// isTitleCase reports whether every word starts with an upper-case letter
func isTitleCase(s string) bool {
	words := strings.Fields(s)
	if len(words) == 0 {
		return false
	}
	for _, w := range words {
		r := []rune(w)[0]
		if unicode.IsLetter(r) && !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}
