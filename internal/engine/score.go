package engine

import (
	"fmt"
	"math"
	"strings"
	"time"

	"jobmatch/internal/errors"
	"jobmatch/internal/skills"
	"jobmatch/internal/types"
)

// Factor weights. They sum to 1.0 so the overall score stays in [0,100].
const (
	weightTechnicalSkills = 0.35
	weightSoftSkills      = 0.15
	weightExperience      = 0.25
	weightEducation       = 0.15
	weightJobTitle        = 0.10
)

const (
	surplusBonusCap    = 0.15
	relevanceBonusCap  = 0.2
	relevanceBonusBase = 36 // months of relevant experience for the full bonus
	levelGapPenalty    = 0.25
	degreeGapPenalty   = 0.3
	fieldAdjustment    = 0.2
	titleDirectBonus   = 0.3
	unparseableMonths  = 12
)

// experienceOrdinals maps level keywords to a seniority ordinal.
// Declaration order decides when a level string matches several keywords.
var experienceOrdinals = []struct {
	keyword string
	value   int
}{
	{"estágio", 0}, {"estagiário", 0}, {"intern", 0}, {"trainee", 0},
	{"júnior", 1}, {"junior", 1},
	{"pleno", 2}, {"mid", 2},
	{"sênior", 3}, {"senior", 3}, {"especialista", 3},
	{"gerente", 4}, {"manager", 4},
	{"diretor", 5}, {"director", 5},
	{"executivo", 6}, {"executive", 6},
}

// degreeOrdinals maps degree keywords to an education ordinal. Higher
// degrees come first so "pós-graduação" never matches plain "graduação".
var degreeOrdinals = []struct {
	keyword string
	value   int
}{
	{"doutorado", 6}, {"phd", 6}, {"doctorate", 6},
	{"mestrado", 5}, {"master", 5},
	{"pós", 4}, {"especialização", 4}, {"mba", 4}, {"post-grad", 4},
	{"superior", 3}, {"graduação", 3}, {"bacharelado", 3},
	{"licenciatura", 3}, {"tecnólogo", 3}, {"bachelor", 3},
	{"técnico", 2}, {"tecnico", 2}, {"technical", 2},
	{"ensino médio", 1},
}

const defaultRequiredDegreeLevel = 3

var educationRequirementTerms = []string{
	"formação", "graduação", "ensino", "degree", "education",
}

var requiredFieldTerms = []string{
	"computação", "sistemas", "ti", "informática", "software",
	"engenharia", "administração", "negócios", "marketing",
	"design", "comunicação", "direito", "economia",
	"contabilidade", "finanças", "recursos humanos", "rh",
}

// titleStopWords are connective words ignored during title comparison
var titleStopWords = map[string]bool{
	"de": true, "da": true, "do": true, "e": true, "para": true,
	"no": true, "na": true, "em": true, "com": true,
	"o": true, "a": true, "os": true, "as": true,
}

// Scorer computes the deterministic compatibility verdict for a
// resume/job pair. All sub-scores are calculated in [0,1] and rescaled
// once at the top level.
type Scorer struct {
	skillMap *skills.SkillMap
	logger   *errors.Logger
	now      func() time.Time
}

func NewScorer(skillMap *skills.SkillMap, logger *errors.Logger) *Scorer {
	return &Scorer{skillMap: skillMap, logger: logger, now: time.Now}
}

// Score combines the factor sub-scores into a MatchResult. It never
// fails: missing inputs degrade the affected sub-score instead.
func (s *Scorer) Score(resume types.NormalizedResume, job types.NormalizedJob) types.MatchResult {
	technical := skillsSubScore(resume.Skills.Technical, job.Skills.Technical)
	soft := skillsSubScore(resume.Skills.Soft, job.Skills.Soft)
	experience := s.experienceSubScore(resume.Experience, job)
	education := educationSubScore(resume.Education, job.Requirements)
	title := titleSubScore(latestTitle(resume), job.Title)

	overall := technical*weightTechnicalSkills +
		soft*weightSoftSkills +
		experience*weightExperience +
		education*weightEducation +
		title*weightJobTitle

	matching, missing := skillGaps(resume.Skills.All(), job.Skills.All())

	result := types.MatchResult{
		ScoreOverall: ClampScore(overall * 100),
		ScoreDetails: types.ScoreDetails{
			TechnicalSkills: round2(technical * 100),
			SoftSkills:      round2(soft * 100),
			Experience:      round2(experience * 100),
			Education:       round2(education * 100),
			JobTitle:        round2(title * 100),
		},
		MatchingSkills:  matching,
		MissingSkills:   missing,
		Recommendations: buildRecommendations(missing, job),
		CreatedAt:       s.now().UTC(),
	}

	if s.logger != nil {
		s.logger.Debug("Match scored",
			"job_title", job.Title,
			"score_overall", result.ScoreOverall,
			"matching_skills", len(matching),
			"missing_skills", len(missing))
	}
	return result
}

// skillsSubScore measures how many of the job's skills the resume covers.
// A job with no skills in the category cannot fail; a resume with none
// cannot pass. A surplus of resume skills earns a capped bonus.
func skillsSubScore(resumeSkills, jobSkills []string) float64 {
	if len(jobSkills) == 0 {
		return 1.0
	}
	if len(resumeSkills) == 0 {
		return 0.0
	}

	resumeLower := lowerAll(resumeSkills)
	matches := 0
	for _, jobSkill := range lowerAll(jobSkills) {
		for _, resumeSkill := range resumeLower {
			if strings.Contains(jobSkill, resumeSkill) || strings.Contains(resumeSkill, jobSkill) {
				matches++
				break
			}
		}
	}

	score := float64(matches) / float64(len(jobSkills))
	if len(resumeSkills) > len(jobSkills) {
		surplus := float64(len(resumeSkills)-len(jobSkills)) / float64(len(jobSkills))
		score = math.Min(1.0, score+math.Min(surplusBonusCap, surplus*surplusBonusCap))
	}
	return score
}

// experienceSubScore compares the candidate's accumulated months of
// experience, bucketed into seniority levels, against the level the job
// asks for. Experience under a title overlapping the posting's title
// earns a relevance bonus.
func (s *Scorer) experienceSubScore(experience []types.ExperienceEntry, job types.NormalizedJob) float64 {
	if len(experience) == 0 {
		return 0.0
	}

	jobLevel := ordinalFor(job.ExperienceLevel, experienceOrdinals)
	jobTitle := strings.ToLower(job.Title)
	now := s.now().UTC()

	totalMonths := 0
	relevantMonths := 0
	for _, entry := range experience {
		if entry.StartDate == "" {
			continue
		}

		start, startOK := parseFlexibleDate(entry.StartDate)
		end := now
		endOK := true
		if entry.EndDate != "" && !isPresentMarker(entry.EndDate) {
			end, endOK = parseFlexibleDate(entry.EndDate)
		}

		if !startOK || !endOK {
			totalMonths += unparseableMonths
			continue
		}

		months := monthsBetween(start, end)
		totalMonths += months

		entryTitle := strings.ToLower(entry.Title)
		if entryTitle != "" && jobTitle != "" &&
			(strings.Contains(jobTitle, entryTitle) || strings.Contains(entryTitle, jobTitle)) {
			relevantMonths += months
		}
	}

	candidateLevel := experienceLevelForMonths(totalMonths)

	var score float64
	if candidateLevel >= jobLevel {
		score = 1.0
	} else {
		score = math.Max(0, 1.0-float64(jobLevel-candidateLevel)*levelGapPenalty)
	}

	if relevantMonths > 0 {
		bonus := math.Min(relevanceBonusCap, float64(relevantMonths)/relevanceBonusBase*relevanceBonusCap)
		score = math.Min(1.0, score+bonus)
	}
	return score
}

func experienceLevelForMonths(months int) int {
	switch {
	case months < 6:
		return 0
	case months < 24:
		return 1
	case months < 60:
		return 2
	case months < 96:
		return 3
	case months < 120:
		return 4
	default:
		return 5
	}
}

// educationSubScore checks the candidate's best degree against the level
// and field the job's requirements ask for. A job that never mentions
// education cannot fail this factor.
func educationSubScore(education []types.EducationEntry, requirements []string) float64 {
	if len(education) == 0 {
		return 0.0
	}

	educationRequired := false
	requiredLevel := defaultRequiredDegreeLevel
	requiredField := ""

	for _, req := range requirements {
		lowered := strings.ToLower(req)
		mentions := false
		for _, term := range educationRequirementTerms {
			if strings.Contains(lowered, term) {
				mentions = true
				break
			}
		}
		if !mentions {
			continue
		}

		educationRequired = true
		if level := ordinalForStrict(lowered, degreeOrdinals); level > 0 {
			requiredLevel = level
		}
		for _, field := range requiredFieldTerms {
			if strings.Contains(lowered, field) {
				requiredField = field
				break
			}
		}
		break
	}

	if !educationRequired {
		return 1.0
	}

	candidateLevel := 0
	fieldMatch := false
	for _, entry := range education {
		degree := strings.ToLower(entry.Degree)
		if level := ordinalForStrict(degree, degreeOrdinals); level > candidateLevel {
			candidateLevel = level
		}
		field := strings.ToLower(entry.FieldOfStudy)
		if requiredField != "" && field != "" &&
			(strings.Contains(field, requiredField) || strings.Contains(requiredField, field)) {
			fieldMatch = true
		}
	}

	var score float64
	if candidateLevel >= requiredLevel {
		score = 1.0
	} else {
		score = math.Max(0, 1.0-float64(requiredLevel-candidateLevel)*degreeGapPenalty)
	}

	if requiredField != "" {
		if fieldMatch {
			score = math.Min(1.0, score+fieldAdjustment)
		} else {
			score = math.Max(0, score-fieldAdjustment)
		}
	}
	return score
}

// titleSubScore is the Jaccard similarity of the stop-word-filtered word
// sets of both titles, with a bonus for a verbatim word overlap. Missing
// titles score neutral.
func titleSubScore(resumeTitle, jobTitle string) float64 {
	if resumeTitle == "" || jobTitle == "" {
		return 0.5
	}

	jobLower := strings.ToLower(jobTitle)
	resumeWords := titleWordSet(resumeTitle)
	jobWords := titleWordSet(jobTitle)
	if len(resumeWords) == 0 || len(jobWords) == 0 {
		return 0.5
	}

	intersection := 0
	for word := range resumeWords {
		if jobWords[word] {
			intersection++
		}
	}
	union := len(resumeWords) + len(jobWords) - intersection
	jaccard := float64(intersection) / float64(union)

	for word := range resumeWords {
		if len([]rune(word)) > 3 && strings.Contains(jobLower, word) {
			return math.Min(1.0, jaccard+titleDirectBonus)
		}
	}
	return jaccard
}

func titleWordSet(title string) map[string]bool {
	words := make(map[string]bool)
	for _, w := range strings.Fields(strings.ToLower(title)) {
		if !titleStopWords[w] {
			words[w] = true
		}
	}
	return words
}

// skillGaps partitions the job's skills into matched and missing against
// the resume's skills, using the same substring rule as scoring. Job
// order is preserved in both lists.
func skillGaps(resumeSkills, jobSkills []string) (matching, missing []string) {
	matching = []string{}
	missing = []string{}
	resumeLower := lowerAll(resumeSkills)

	for _, jobSkill := range jobSkills {
		jobLower := strings.ToLower(jobSkill)
		matched := false
		for _, resumeSkill := range resumeLower {
			if strings.Contains(jobLower, resumeSkill) || strings.Contains(resumeSkill, jobLower) {
				matched = true
				break
			}
		}
		if matched {
			matching = append(matching, jobSkill)
		} else {
			missing = append(missing, jobSkill)
		}
	}
	return matching, missing
}

// buildRecommendations produces actionable guidance from the gap
// analysis and the posting itself.
func buildRecommendations(missingSkills []string, job types.NormalizedJob) []string {
	var recommendations []string

	if len(missingSkills) > 0 {
		head := missingSkills
		if len(head) > 5 {
			head = head[:5]
		}
		recommendations = append(recommendations, fmt.Sprintf(
			"Adicione ao seu currículo as seguintes habilidades (caso você as possua): %s",
			strings.Join(head, ", ")))

		if len(missingSkills) > 5 {
			recommendations = append(recommendations, fmt.Sprintf(
				"Considere desenvolver conhecimento nas demais habilidades: %s",
				strings.Join(missingSkills[5:], ", ")))
		}
	}

	if job.Title != "" {
		recommendations = append(recommendations, fmt.Sprintf(
			"Adapte seu objetivo profissional para alinhar-se ao cargo de '%s'", job.Title))
	}

	switch strings.ToLower(job.ExperienceLevel) {
	case "pleno", "sênior", "senior", "gerente":
		recommendations = append(recommendations,
			"Destaque suas realizações e resultados quantificáveis nas experiências anteriores")
	}

	recommendations = append(recommendations,
		"Personalize sua carta de apresentação mencionando especificamente como suas habilidades se alinham com os requisitos desta vaga")
	return recommendations
}

// latestTitle returns the candidate's most recent job title. Resumes list
// experience newest first, so the first entry wins.
func latestTitle(resume types.NormalizedResume) string {
	if len(resume.Experience) == 0 {
		return ""
	}
	return resume.Experience[0].Title
}

// ordinalFor returns the ordinal of the first table keyword contained in
// the level string, or 0 when nothing matches.
func ordinalFor(level string, table []struct {
	keyword string
	value   int
}) int {
	lowered := strings.ToLower(level)
	for _, entry := range table {
		if strings.Contains(lowered, entry.keyword) {
			return entry.value
		}
	}
	return 0
}

// ordinalForStrict is ordinalFor with a miss reported as 0 explicitly for
// callers that distinguish "no degree found" from the lowest ordinal.
func ordinalForStrict(text string, table []struct {
	keyword string
	value   int
}) int {
	for _, entry := range table {
		if strings.Contains(text, entry.keyword) {
			return entry.value
		}
	}
	return 0
}

// ClampScore bounds a score to [0,100] and maps NaN to 0
func ClampScore(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return round2(math.Min(100, math.Max(0, v)))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func lowerAll(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToLower(v)
	}
	return out
}
