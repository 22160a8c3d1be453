package engine

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"jobmatch/internal/errors"
	"jobmatch/internal/skills"
	"jobmatch/internal/types"
)

const defaultJobCategory = "Outros"

var (
	locationLabelPattern = regexp.MustCompile(`(?i)\b(?:Local|Location|Localização)[\s:]+([\p{L}\d ,-]+)`)
	salaryLabelPattern   = regexp.MustCompile(`(?i)\b(?:Salário|Salary|Remuneração)[\s:]+([\p{L}\d $.,R€£-]+)`)
	jobTypeLabelPattern  = regexp.MustCompile(`(?i)\b(?:Tipo|Type|Regime|Contrato)[\s:]+([\p{L}\d -]+)`)
	expLevelLabelPattern = regexp.MustCompile(`(?i)\b(?:Experiência|Experience|Nível)[\s:]+([\p{L}\d -]+)`)

	requirementsBlockPattern = regexp.MustCompile(
		`(?i)(?:Requisitos|Requirements|Qualificações|Qualifications|Exigências)[:\s]+([\s\S]+?)(?:\n\s*\n|\z)`)
	benefitsBlockPattern = regexp.MustCompile(
		`(?i)(?:Benefícios|Benefits|Oferecemos|We offer)[:\s]+([\s\S]+?)(?:\n\s*\n|\z)`)

	keywordTokenPattern = regexp.MustCompile(`[\p{L}]+`)
)

// jobTypeKeywords and experienceLevelKeywords are consulted when no
// labeled field exists. Declaration order decides ties.
var jobTypeKeywords = []struct {
	label    string
	keywords []string
}{
	{"CLT", []string{"clt", "carteira assinada", "regime clt", "efetivo"}},
	{"PJ", []string{"pj", "pessoa jurídica", "regime pj", "cnpj"}},
	{"Freelance", []string{"freelance", "freela", "temporário"}},
	{"Estágio", []string{"estágio", "estagiário", "trainee"}},
	{"Tempo integral", []string{"tempo integral", "full time", "full-time", "40h", "44h"}},
	{"Meio período", []string{"meio período", "part time", "part-time", "20h", "30h"}},
}

var experienceLevelKeywords = []struct {
	label    string
	keywords []string
}{
	{"Estágio", []string{"estágio", "estagiário", "trainee", "estudante"}},
	{"Júnior", []string{"júnior", "junior", "jr", "jr.", "iniciante"}},
	{"Pleno", []string{"pleno", "mid-level", "intermediário"}},
	{"Sênior", []string{"sênior", "senior", "sr", "sr.", "especialista"}},
	{"Gerente", []string{"gerente", "manager", "coordenador", "líder", "gestor"}},
}

// jobCategories scores postings into a professional area. Title hits
// weigh 3, skill hits 2, description hits 1; highest total wins.
var jobCategories = []struct {
	name     string
	keywords []string
}{
	{"Desenvolvimento de Software", []string{
		"desenvolvedor", "programador", "software", "developer", "programmer",
		"python", "java", "javascript", "typescript", "react", "angular", "vue",
		"node", "backend", "frontend", "full stack", "mobile", "código", "code",
		"engenheiro de software",
	}},
	{"Dados e Analytics", []string{
		"dados", "data", "scientist", "analytics", "analista de dados",
		"business intelligence", "big data", "machine learning",
		"estatística", "statistics", "sql", "tableau", "power bi",
		"análise de dados", "data engineer", "banco de dados",
	}},
	{"Design e UX", []string{
		"design", "ux", "ui", "user experience", "experiência do usuário",
		"interface", "gráfico", "graphic", "photoshop", "illustrator",
		"figma", "sketch", "adobe",
	}},
	{"Marketing Digital", []string{
		"marketing", "seo", "social media", "mídia social",
		"conteúdo", "content", "google analytics", "facebook ads",
		"campanha", "campaign", "inbound", "copywriter",
	}},
	{"Vendas e Comercial", []string{
		"vendas", "sales", "comercial", "account", "cliente", "customer",
		"representante", "inside sales", "pré-venda", "negociação", "b2b", "b2c",
	}},
	{"Operações e Logística", []string{
		"operações", "operations", "logística", "logistics", "supply chain",
		"compras", "estoque", "inventory", "armazém", "warehouse", "produção",
	}},
	{"Recursos Humanos", []string{
		"recursos humanos", "human resources", "recrutamento",
		"recruitment", "seleção", "talentos", "talent", "treinamento",
	}},
	{"Finanças e Contabilidade", []string{
		"finanças", "finance", "contabilidade", "accounting", "contador",
		"financeiro", "financial", "controladoria", "auditor", "fiscal", "impostos",
	}},
	{"Administrativo e Suporte", []string{
		"administrativo", "administrative", "suporte", "support", "assistente",
		"recepcionista", "atendimento", "customer service", "help desk",
	}},
}

// keywordStopWords filters tokens during keyword extraction (PT + EN)
var keywordStopWords = map[string]bool{
	"para": true, "como": true, "mais": true, "pela": true, "pelo": true,
	"esta": true, "este": true, "essa": true, "esse": true, "pois": true,
	"será": true, "seja": true, "suas": true, "seus": true, "area": true,
	"área": true, "vaga": true, "sobre": true, "entre": true, "também": true,
	"nossa": true, "nosso": true, "você": true, "with": true, "that": true,
	"this": true, "have": true, "will": true, "from": true, "your": true,
	"work": true, "team": true, "the": true, "and": true, "for": true,
}

// JobAnalyzer turns a raw posting into a NormalizedJob, inferring missing
// fields from the description. Already-known fields always win.
type JobAnalyzer struct {
	skillMap *skills.SkillMap
	logger   *errors.Logger
}

func NewJobAnalyzer(skillMap *skills.SkillMap, logger *errors.Logger) *JobAnalyzer {
	return &JobAnalyzer{skillMap: skillMap, logger: logger}
}

// Analyze structures a job posting. An empty description yields a valid
// record with the Error field set.
func (a *JobAnalyzer) Analyze(posting types.JobPosting) types.NormalizedJob {
	job := types.NormalizedJob{
		Title:           posting.Title,
		Company:         posting.Company,
		Location:        posting.Location,
		JobType:         posting.JobType,
		ExperienceLevel: posting.ExperienceLevel,
		SalaryRange:     posting.SalaryRange,
		Requirements:    []string{},
	}

	description := NormalizeText(posting.Description)
	if description == "" {
		if a.logger != nil {
			a.logger.Warn("Job description is empty", "title", posting.Title)
		}
		job.Error = "job description is empty"
		return job
	}

	if job.Location == "" {
		if m := locationLabelPattern.FindStringSubmatch(description); m != nil {
			job.Location = strings.TrimSpace(m[1])
		}
	}
	if job.SalaryRange == "" {
		if m := salaryLabelPattern.FindStringSubmatch(description); m != nil {
			job.SalaryRange = strings.TrimSpace(m[1])
		}
	}
	if job.JobType == "" {
		job.JobType = labeledOrKeyword(description, jobTypeLabelPattern, jobTypeKeywords)
	}
	if job.ExperienceLevel == "" {
		job.ExperienceLevel = labeledOrKeyword(description, expLevelLabelPattern, experienceLevelKeywords)
	}

	if m := requirementsBlockPattern.FindStringSubmatch(description); m != nil {
		job.Requirements = parseListItems(m[1])
	} else {
		job.Requirements = extractBulletPoints(description)
	}
	if m := benefitsBlockPattern.FindStringSubmatch(description); m != nil {
		job.Benefits = parseListItems(m[1])
	}

	technical, soft := a.skillMap.NormalizeAll(scanSeedSkills(description))
	job.Skills = types.SkillSet{Technical: technical, Soft: soft}

	job.Category = CategorizeJob(job, description)

	if a.logger != nil {
		a.logger.Debug("Job analyzed",
			"title", job.Title,
			"category", job.Category,
			"requirements", len(job.Requirements),
			"technical_skills", len(technical))
	}
	return job
}

// AnalyzeBatch processes postings independently. One posting's failure is
// recorded on its own record and never halts the rest.
func (a *JobAnalyzer) AnalyzeBatch(postings []types.JobPosting) []types.NormalizedJob {
	results := make([]types.NormalizedJob, 0, len(postings))
	for _, posting := range postings {
		results = append(results, a.analyzeIsolated(posting))
	}
	return results
}

func (a *JobAnalyzer) analyzeIsolated(posting types.JobPosting) (job types.NormalizedJob) {
	defer func() {
		if r := recover(); r != nil {
			if a.logger != nil {
				a.logger.LogError(
					errors.NewExtractionError(errors.ErrCodeExtractionEmpty,
						fmt.Sprintf("Job analysis panicked: %v", r), nil),
					"Job analysis failed", "title", posting.Title)
			}
			job = types.NormalizedJob{
				Title:        posting.Title,
				Company:      posting.Company,
				Requirements: []string{},
				Error:        fmt.Sprintf("analysis failed: %v", r),
			}
		}
	}()
	return a.Analyze(posting)
}

// CategorizeJob infers the professional area of a posting from its title,
// skills, and description text.
func CategorizeJob(job types.NormalizedJob, description string) string {
	title := strings.ToLower(job.Title)
	desc := strings.ToLower(description)
	skillSet := make(map[string]bool)
	for _, s := range job.Skills.All() {
		skillSet[strings.ToLower(s)] = true
	}

	best := defaultJobCategory
	bestScore := 0
	for _, category := range jobCategories {
		score := 0
		for _, keyword := range category.keywords {
			if strings.Contains(title, keyword) {
				score += 3
			}
			if strings.Contains(desc, keyword) {
				score++
			}
			if skillSet[keyword] {
				score += 2
			}
		}
		if score > bestScore {
			bestScore = score
			best = category.name
		}
	}
	return best
}

// ExtractKeywords returns the most frequent meaningful words of a job
// description, at most max entries. Frequency ties resolve alphabetically
// so output is deterministic.
func ExtractKeywords(description string, max int) []string {
	if max <= 0 {
		return nil
	}

	freq := make(map[string]int)
	for _, token := range keywordTokenPattern.FindAllString(strings.ToLower(description), -1) {
		if len([]rune(token)) <= 3 || keywordStopWords[token] {
			continue
		}
		freq[token]++
	}

	words := make([]string, 0, len(freq))
	for word := range freq {
		words = append(words, word)
	}
	sort.Slice(words, func(i, j int) bool {
		if freq[words[i]] != freq[words[j]] {
			return freq[words[i]] > freq[words[j]]
		}
		return words[i] < words[j]
	})

	if len(words) > max {
		words = words[:max]
	}
	return words
}

func labeledOrKeyword(description string, label *regexp.Regexp, table []struct {
	label    string
	keywords []string
}) string {
	if m := label.FindStringSubmatch(description); m != nil {
		return strings.TrimSpace(m[1])
	}
	lowered := strings.ToLower(description)
	for _, entry := range table {
		for _, keyword := range entry.keywords {
			if strings.Contains(lowered, keyword) {
				return entry.label
			}
		}
	}
	return ""
}

// parseListItems splits a labeled block into entries, stripping bullet
// markers. Unmarked lines are kept whole.
func parseListItems(text string) []string {
	items := []string{}
	for _, line := range nonEmptyLines(text) {
		if cleaned := strings.TrimSpace(bulletPrefix.ReplaceAllString(line, "")); cleaned != "" {
			items = append(items, cleaned)
		}
	}
	return items
}

// extractBulletPoints scans the whole text for bulleted lines, keeping
// only substantive ones.
func extractBulletPoints(text string) []string {
	points := []string{}
	for _, line := range nonEmptyLines(text) {
		if !bulletPrefix.MatchString(line) {
			continue
		}
		cleaned := strings.TrimSpace(bulletPrefix.ReplaceAllString(line, ""))
		if len(cleaned) > 10 {
			points = append(points, cleaned)
		}
	}
	return points
}
