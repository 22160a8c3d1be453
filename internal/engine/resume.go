package engine

import (
	"regexp"
	"strings"

	"jobmatch/internal/errors"
	"jobmatch/internal/skills"
	"jobmatch/internal/types"
)

var (
	emailPattern = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
	phonePattern = regexp.MustCompile(`(?:\+\d{1,3})?(?:\(\d{2,3}\)|\d{2,3})[-.\s]?\d{3,5}[-.\s]?\d{4}`)
	urlPattern   = regexp.MustCompile(`(?i)\b(?:https?://|www\.|linkedin\.com/|github\.com/)[^\s,;]+`)

	degreePattern = regexp.MustCompile(
		`(?i)\b(Bacharelado|Licenciatura|Graduação|Tecnólogo|Técnico|Pós-graduação|Especialização|MBA|Mestrado|Doutorado|Bachelor|Master|PhD|Doctorate)\b[^\n,.]*`)
	institutionPattern = regexp.MustCompile(
		`(?i)\b(?:Universidade|Faculdade|Instituto|Centro Universitário|Escola|University|College|Institute|School)\s+[\p{L}\d .&-]+`)
	fieldOfStudyPattern = regexp.MustCompile(`(?i)(?:\bem\b|\bin\b|\bof\b)\s+([\p{L} ]{3,60})`)

	skillSplitPattern = regexp.MustCompile(`[,\n•;]|\s-\s`)
	bulletPrefix      = regexp.MustCompile(`^[-•*]+\s*|^\d+[.)]\s*`)
	paragraphSplit    = regexp.MustCompile(`\n\s*\n`)

	titleCompanySplit = regexp.MustCompile(`\s+-\s+|\s+–\s+|\s+at\s+|\s+na\s+|\s+no\s+|\s+@\s+`)
)

// commonLanguages pairs a lower-cased detection token with its display form
var commonLanguages = []struct{ token, display string }{
	{"português", "Português"}, {"portuguese", "Português"},
	{"inglês", "Inglês"}, {"ingles", "Inglês"}, {"english", "Inglês"},
	{"espanhol", "Espanhol"}, {"spanish", "Espanhol"},
	{"francês", "Francês"}, {"french", "Francês"},
	{"alemão", "Alemão"}, {"german", "Alemão"},
	{"italiano", "Italiano"}, {"italian", "Italiano"},
	{"mandarim", "Mandarim"}, {"mandarin", "Mandarim"},
	{"chinês", "Chinês"}, {"chinese", "Chinês"},
	{"japonês", "Japonês"}, {"japanese", "Japonês"},
	{"coreano", "Coreano"}, {"korean", "Coreano"},
	{"russo", "Russo"}, {"russian", "Russo"},
	{"árabe", "Árabe"}, {"arabic", "Árabe"},
	{"holandês", "Holandês"}, {"dutch", "Holandês"},
}

var proficiencyLevels = []string{
	"básico", "basico", "basic", "intermediário", "intermediario", "intermediate",
	"avançado", "avancado", "advanced", "fluente", "fluent", "nativo", "native",
	"proficiente", "proficient", "a1", "a2", "b1", "b2", "c1", "c2",
}

const proficiencyUnknown = "Não especificado"

// ResumeAnalyzer turns free-form resume text into a NormalizedResume.
// It never fails: extraction steps that find nothing yield empty fields.
type ResumeAnalyzer struct {
	skillMap *skills.SkillMap
	logger   *errors.Logger
}

func NewResumeAnalyzer(skillMap *skills.SkillMap, logger *errors.Logger) *ResumeAnalyzer {
	return &ResumeAnalyzer{skillMap: skillMap, logger: logger}
}

// Analyze structures the given resume text. An empty input yields a valid
// record with the Error field set.
func (a *ResumeAnalyzer) Analyze(text string) types.NormalizedResume {
	if strings.TrimSpace(text) == "" {
		if a.logger != nil {
			a.logger.Warn("Resume text is empty")
		}
		return types.NormalizedResume{Error: "resume text is empty"}
	}

	normalized := NormalizeText(text)
	sections := SegmentSections(normalized)

	resume := types.NormalizedResume{
		PersonalInfo:   a.extractPersonalInfo(normalized),
		Experience:     a.extractExperience(sectionOrAll(sections, SectionExperience, normalized)),
		Education:      a.extractEducation(sectionOrAll(sections, SectionEducation, normalized)),
		Languages:      a.extractLanguages(sectionOrAll(sections, SectionLanguages, normalized)),
		Certifications: a.extractCertifications(sections[SectionCertifications]),
	}

	skillText := sections[SectionSkills]
	if skillText == "" {
		skillText = normalized
	}
	technical, soft := a.skillMap.NormalizeAll(extractSkillStrings(skillText))
	resume.Skills = types.SkillSet{Technical: technical, Soft: soft}

	if a.logger != nil {
		a.logger.Debug("Resume analyzed",
			"technical_skills", len(technical),
			"soft_skills", len(soft),
			"experience_entries", len(resume.Experience),
			"education_entries", len(resume.Education))
	}
	return resume
}

// sectionOrAll falls back to the full text when segmentation produced no
// block for the wanted section.
func sectionOrAll(sections map[SectionType]string, want SectionType, all string) string {
	if s := sections[want]; s != "" {
		return s
	}
	return all
}

func (a *ResumeAnalyzer) extractPersonalInfo(text string) types.PersonalInfo {
	info := types.PersonalInfo{
		Email: emailPattern.FindString(text),
		Phone: strings.TrimSpace(phonePattern.FindString(text)),
	}
	if urls := urlPattern.FindAllString(text, -1); len(urls) > 0 {
		seen := make(map[string]bool)
		for _, u := range urls {
			u = strings.TrimRight(u, ".,)")
			if !seen[u] {
				seen[u] = true
				info.URLs = append(info.URLs, u)
			}
		}
	}

	// The candidate name is the first short line that is not contact data
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || len(line) >= 50 {
			continue
		}
		if emailPattern.MatchString(line) || phonePattern.MatchString(line) || urlPattern.MatchString(line) {
			continue
		}
		if !containsLetter(line) {
			continue
		}
		info.Name = line
		break
	}
	return info
}

func (a *ResumeAnalyzer) extractEducation(text string) []types.EducationEntry {
	var entries []types.EducationEntry
	for _, para := range splitParagraphs(text) {
		entry := types.EducationEntry{
			Degree:      strings.TrimSpace(degreePattern.FindString(para)),
			Institution: strings.TrimSpace(institutionPattern.FindString(para)),
		}
		if entry.Degree == "" && entry.Institution == "" {
			continue
		}
		if m := fieldOfStudyPattern.FindStringSubmatch(entry.Degree); m != nil {
			entry.FieldOfStudy = strings.TrimSpace(m[1])
		}
		entry.StartDate, entry.EndDate = extractDateRange(para)
		entries = append(entries, entry)
	}
	return entries
}

func (a *ResumeAnalyzer) extractExperience(text string) []types.ExperienceEntry {
	var entries []types.ExperienceEntry
	for _, para := range splitParagraphs(text) {
		lines := nonEmptyLines(para)
		if len(lines) == 0 {
			continue
		}

		entry := types.ExperienceEntry{}
		first := lines[0]
		if parts := titleCompanySplit.Split(first, 2); len(parts) == 2 {
			entry.Title = strings.TrimSpace(parts[0])
			entry.Company = strings.TrimSpace(parts[1])
			lines = lines[1:]
		} else {
			entry.Title = strings.TrimSpace(first)
			lines = lines[1:]
			if len(lines) > 0 && !looksLikeDateLine(lines[0]) {
				entry.Company = strings.TrimSpace(lines[0])
				lines = lines[1:]
			}
		}

		entry.StartDate, entry.EndDate = extractDateRange(para)
		if entry.Title == "" && entry.Company == "" {
			continue
		}
		if len(lines) > 0 {
			entry.Description = strings.TrimSpace(strings.Join(lines, "\n"))
		}
		entries = append(entries, entry)
	}
	return entries
}

func (a *ResumeAnalyzer) extractLanguages(text string) []types.LanguageEntry {
	var entries []types.LanguageEntry
	seen := make(map[string]bool)

	for _, line := range strings.Split(text, "\n") {
		lowered := strings.ToLower(line)
		for _, lang := range commonLanguages {
			if !strings.Contains(lowered, lang.token) || seen[lang.display] {
				continue
			}
			seen[lang.display] = true
			entry := types.LanguageEntry{Language: lang.display, Proficiency: proficiencyUnknown}
			for _, level := range proficiencyLevels {
				if containsWord(lowered, level) {
					entry.Proficiency = skills.CapitalizeFirst(level)
					break
				}
			}
			entries = append(entries, entry)
		}
	}
	return entries
}

func (a *ResumeAnalyzer) extractCertifications(text string) []types.CertificationEntry {
	if text == "" {
		return nil
	}
	var entries []types.CertificationEntry
	for _, line := range nonEmptyLines(text) {
		line = bulletPrefix.ReplaceAllString(line, "")
		if line == "" {
			continue
		}
		entry := types.CertificationEntry{Name: line}
		if parts := strings.SplitN(line, " - ", 2); len(parts) == 2 {
			entry.Name = strings.TrimSpace(parts[0])
			entry.Issuer = strings.TrimSpace(parts[1])
		}
		if year := yearPattern.FindString(line); year != "" {
			entry.Date = year
		}
		entries = append(entries, entry)
	}
	return entries
}

// extractSkillStrings collects raw skill mentions: the text is split on
// list separators and a fragment survives only if a seed skill matches
// inside it. Short fragments are kept whole so qualifiers like
// "PostgreSQL avançado" reach the canonicalizer; fragments naming several
// skills contribute the seed names instead.
func extractSkillStrings(text string) []string {
	var raws []string
	seen := make(map[string]bool)
	add := func(s string) {
		key := strings.ToLower(strings.TrimSpace(s))
		if key == "" || seen[key] {
			return
		}
		seen[key] = true
		raws = append(raws, strings.TrimSpace(s))
	}

	for _, frag := range skillSplitPattern.Split(text, -1) {
		frag = strings.TrimSpace(bulletPrefix.ReplaceAllString(strings.TrimSpace(frag), ""))
		if frag == "" {
			continue
		}
		matched := scanSeedSkills(frag)
		switch {
		case len(matched) == 0:
			continue
		case len(matched) == 1 && len(frag) < 50:
			add(frag)
		default:
			for _, m := range matched {
				add(m)
			}
		}
	}

	if len(raws) == 0 {
		raws = scanSeedSkills(text)
	}
	return raws
}

func splitParagraphs(text string) []string {
	var out []string
	for _, para := range paragraphSplit.Split(text, -1) {
		if strings.TrimSpace(para) != "" {
			out = append(out, para)
		}
	}
	return out
}

func nonEmptyLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

func looksLikeDateLine(line string) bool {
	return yearRangePattern.MatchString(line) ||
		monthYearPattern.MatchString(line) ||
		numericDatePattern.MatchString(line)
}

func containsLetter(s string) bool {
	for _, r := range s {
		if ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || r > 127 {
			return true
		}
	}
	return false
}

func containsWord(text, word string) bool {
	idx := strings.Index(text, word)
	if idx < 0 {
		return false
	}
	before := idx == 0 || !isWordByte(text[idx-1])
	afterIdx := idx + len(word)
	after := afterIdx >= len(text) || !isWordByte(text[afterIdx])
	return before && after
}

func isWordByte(b byte) bool {
	return wordEdge(b)
}
