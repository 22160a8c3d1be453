package types

import "time"

// PersonalInfo holds contact details extracted from a resume
type PersonalInfo struct {
	Name  string   `json:"name,omitempty"`
	Email string   `json:"email,omitempty"`
	Phone string   `json:"phone,omitempty"`
	URLs  []string `json:"urls,omitempty"`
}

// SkillSet groups canonical skill names by category
type SkillSet struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
}

// All returns technical and soft skills as a single slice
func (s SkillSet) All() []string {
	all := make([]string, 0, len(s.Technical)+len(s.Soft))
	all = append(all, s.Technical...)
	all = append(all, s.Soft...)
	return all
}

// ExperienceEntry represents one period of professional experience
type ExperienceEntry struct {
	Title       string `json:"title,omitempty"`
	Company     string `json:"company,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Description string `json:"description,omitempty"`
}

// EducationEntry represents one education record
type EducationEntry struct {
	Degree       string `json:"degree,omitempty"`
	Institution  string `json:"institution,omitempty"`
	FieldOfStudy string `json:"field_of_study,omitempty"`
	StartDate    string `json:"start_date,omitempty"`
	EndDate      string `json:"end_date,omitempty"`
}

// LanguageEntry represents a spoken language and its proficiency level
type LanguageEntry struct {
	Language    string `json:"language"`
	Proficiency string `json:"proficiency,omitempty"`
}

// CertificationEntry represents a professional certification
type CertificationEntry struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer,omitempty"`
	Date   string `json:"date,omitempty"`
}

// NormalizedResume is the structured form of a free-text resume.
// Skill lists contain canonical names only. Instances are not mutated
// after construction; re-analysis produces a new value.
type NormalizedResume struct {
	PersonalInfo   PersonalInfo         `json:"personal_info"`
	Skills         SkillSet             `json:"skills"`
	Experience     []ExperienceEntry    `json:"experience"`
	Education      []EducationEntry     `json:"education"`
	Languages      []LanguageEntry      `json:"languages,omitempty"`
	Certifications []CertificationEntry `json:"certifications,omitempty"`
	Error          string               `json:"error,omitempty"`
}

// JobPosting is the raw input for job analysis. Description is free text;
// the remaining fields are optional and, when present, take precedence
// over anything inferred from the description.
type JobPosting struct {
	Title           string `json:"title"`
	Company         string `json:"company,omitempty"`
	Description     string `json:"description"`
	Location        string `json:"location,omitempty"`
	JobType         string `json:"job_type,omitempty"`
	ExperienceLevel string `json:"experience_level,omitempty"`
	SalaryRange     string `json:"salary_range,omitempty"`
}

// NormalizedJob is the structured form of a job posting.
// Skill lists contain canonical names only.
type NormalizedJob struct {
	Title           string   `json:"title"`
	Company         string   `json:"company,omitempty"`
	Location        string   `json:"location,omitempty"`
	JobType         string   `json:"job_type,omitempty"`
	ExperienceLevel string   `json:"experience_level,omitempty"`
	SalaryRange     string   `json:"salary_range,omitempty"`
	Category        string   `json:"category,omitempty"`
	Skills          SkillSet `json:"skills"`
	Requirements    []string `json:"requirements"`
	Benefits        []string `json:"benefits,omitempty"`
	Error           string   `json:"error,omitempty"`
}

// ScoreDetails breaks the overall score down by factor, each in [0,100]
type ScoreDetails struct {
	TechnicalSkills float64 `json:"technical_skills"`
	SoftSkills      float64 `json:"soft_skills"`
	Experience      float64 `json:"experience"`
	Education       float64 `json:"education"`
	JobTitle        float64 `json:"job_title"`
}

// MatchResult is the compatibility verdict for one resume/job pair.
// MatchingSkills and MissingSkills partition the job's skill set.
type MatchResult struct {
	ScoreOverall    float64      `json:"score_overall"`
	ScoreDetails    ScoreDetails `json:"score_details"`
	MatchingSkills  []string     `json:"matching_skills"`
	MissingSkills   []string     `json:"missing_skills"`
	Recommendations []string     `json:"recommendations"`
	CreatedAt       time.Time    `json:"created_at"`
	Error           string       `json:"error,omitempty"`
}

// RecommendationReport summarizes a candidate's fit for a job
type RecommendationReport struct {
	Strengths       []string `json:"strengths"`
	Gaps            []string `json:"gaps"`
	Recommendations []string `json:"recommendations"`
}
