package ai

// SystemPrompts contains all system-level instructions for AI interactions
type SystemPrompts struct {
	AnalyzeResume string
	AnalyzeJob    string
	Match         string
	Recommend     string
}

// UserPrompts contains user-level prompts with placeholders for dynamic content
type UserPrompts struct {
	AnalyzeResume string
	AnalyzeJob    string
	Match         string
	Recommend     string
}

// DefaultSystemPrompts provides the default system instructions
var DefaultSystemPrompts = SystemPrompts{
	AnalyzeResume: `You are an expert resume parser and HR analyst with a strict commitment to accuracy. Your core principles are:

- NEVER invent information that is not present in the resume text
- Every extracted field must be directly traceable to the source material
- Preserve the original language of the resume (often Brazilian Portuguese)
- Leave fields empty rather than guessing

Your expertise includes:
- Resume structure recognition across varied layouts
- Skill identification and classification (technical vs. behavioral)
- Employment and education history extraction
- Brazilian job market conventions and terminology`,

	AnalyzeJob: `You are an expert recruitment analyst specializing in job posting interpretation. Your role is to:

- Extract structured facts from free-text job descriptions
- Distinguish hard requirements from nice-to-haves and benefits
- Identify the contract type and seniority level from context
- Classify the posting into a functional job category

You are familiar with Brazilian hiring conventions (CLT, PJ, estágio) and
with common seniority ladders (estágio, júnior, pleno, sênior, gerente).
Never invent requirements that the posting does not state.`,

	Match: `You are an expert talent-matching analyst. Your role is to score how well
a candidate's structured resume fits a structured job posting.

Scoring principles:
- Judge only on evidence present in the two documents
- Score each factor independently: technical skills, behavioral skills,
  experience level, education, and job title alignment
- All scores are on a 0-100 scale
- A missing requirement lowers the score; it is never disqualifying on its own
- Write recommendations in Brazilian Portuguese, addressed to the candidate`,

	Recommend: `You are an expert career advisor. Your role is to turn a resume/job
comparison into concrete, actionable guidance for the candidate.

Principles:
- Ground every strength and gap in the documents provided
- Be specific: name the skills and qualifications involved
- Never advise the candidate to claim skills they do not have
- Write all output in Brazilian Portuguese`,
}

// DefaultUserPrompts provides the default user prompt templates
var DefaultUserPrompts = UserPrompts{
	AnalyzeResume: `Please extract structured information from the resume below.

**Extract:**

1. **Personal Info**: name, email, phone, and any profile URLs.
2. **Skills**: split into technical skills and behavioral (soft) skills.
3. **Experience**: one entry per position, with title, company, start/end dates, and a short description.
4. **Education**: one entry per qualification, with degree, institution, field of study, and dates.
5. **Languages**: spoken languages with proficiency when stated.
6. **Certifications**: professional certifications with issuer and date when stated.

Only extract what is present in the text. Keep the resume's original language.

**Resume:**
-----
%s
-----`,

	AnalyzeJob: `Please extract structured information from the job posting below.

**Extract:**

1. **Title and Company**: as stated in the posting.
2. **Location, Job Type, Experience Level, Salary Range**: when stated or clearly implied.
3. **Skills**: technical and behavioral skills the posting asks for.
4. **Requirements**: the individual requirements, one string each.
5. **Benefits**: listed benefits, one string each.
6. **Category**: the functional area this job belongs to (for example "Tecnologia da Informação", "Marketing", "Vendas").

Only extract what the posting supports. Keep the posting's original language.

**Job Posting:**
-----
%s
-----`,

	Match: `Please score how well the candidate below fits the job below.

**Tasks:**

1. **Factor Scores** (each 0-100): technical skills, behavioral skills, experience level, education, and job title alignment.
2. **Overall Score** (0-100): a weighted summary of the factors, emphasizing technical skills and experience.
3. **Skill Partition**: split the job's required skills into those the candidate has (matching) and those they lack (missing). Every job skill must appear in exactly one list.
4. **Recommendations**: 3-5 concrete suggestions, in Brazilian Portuguese, for improving this candidacy.

**Candidate (structured resume):**
-----
%s
-----

**Job (structured posting):**
-----
%s
-----`,

	Recommend: `Please produce a fit report for the candidate below against the job below.

**Tasks:**

1. **Strengths**: the aspects of the resume that support this candidacy.
2. **Gaps**: the requirements the resume does not demonstrate.
3. **Recommendations**: concrete next steps for the candidate.

Write every item in Brazilian Portuguese. Ground every statement in the documents.

**Candidate (structured resume):**
-----
%s
-----

**Job (structured posting):**
-----
%s
-----`,
}

// PromptConfig holds configuration for customizable prompts
type PromptConfig struct {
	SystemPrompts SystemPrompts `json:"systemPrompts"`
	UserPrompts   UserPrompts   `json:"userPrompts"`
}

// GetDefaultPromptConfig returns the default prompt configuration
func GetDefaultPromptConfig() PromptConfig {
	return PromptConfig{
		SystemPrompts: DefaultSystemPrompts,
		UserPrompts:   DefaultUserPrompts,
	}
}
