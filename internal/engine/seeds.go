package engine

import (
	"regexp"
	"strings"
	"sync"
)

// technicalSeeds and softSeeds anchor the skill scan. They are matched on
// word boundaries against lower-cased text; whatever they find is then
// canonicalized by the skill map, so these lists only need recall.
var technicalSeeds = []string{
	"python", "java", "javascript", "typescript", "c#", "c++", "php", "ruby", "swift",
	"kotlin", "go", "golang", "rust", "html", "css", "sql", "nosql", "react", "angular",
	"vue", "node", "django", "flask", "spring", "asp.net", "laravel", "rails", "express",
	"mongodb", "postgresql", "mysql", "oracle", "sqlite", "redis", "aws", "azure",
	"gcp", "docker", "kubernetes", "jenkins", "ci/cd", "git", "github", "gitlab",
	"jira", "scrum", "kanban", "agile", "machine learning", "ml", "deep learning",
	"data science", "big data", "hadoop", "spark", "tableau", "power bi", "excel",
	"word", "powerpoint", "photoshop", "illustrator", "figma", "sketch", "terraform",
	"linux", "grafana", "elasticsearch",
}

var softSeeds = []string{
	"communication", "teamwork", "leadership", "problem solving", "critical thinking",
	"decision making", "time management", "organization", "adaptability", "flexibility",
	"creativity", "emotional intelligence", "conflict resolution", "negotiation",
	"persuasion", "collaboration", "interpersonal", "trabalho em equipe", "liderança",
	"resolução de problemas", "pensamento crítico", "tomada de decisão", "gestão de tempo",
	"organização", "adaptabilidade", "flexibilidade", "criatividade", "inteligência emocional",
	"resolução de conflitos", "negociação", "persuasão", "colaboração", "interpessoal",
	"comunicação", "proatividade", "empatia", "resiliência",
}

var (
	seedOnce       sync.Once
	technicalRegex []*regexp.Regexp
	softRegex      []*regexp.Regexp
)

// compileSeeds builds one word-boundary pattern per seed. Seeds with
// non-word edges (c++, c#, ci/cd) cannot use \b on both sides, so the
// boundary asserts only where a word character is adjacent.
func compileSeeds() {
	compile := func(seeds []string) []*regexp.Regexp {
		out := make([]*regexp.Regexp, 0, len(seeds))
		for _, seed := range seeds {
			pattern := regexp.QuoteMeta(seed)
			if wordEdge(seed[0]) {
				pattern = `\b` + pattern
			}
			if wordEdge(seed[len(seed)-1]) {
				pattern += `\b`
			}
			out = append(out, regexp.MustCompile(pattern))
		}
		return out
	}
	technicalRegex = compile(technicalSeeds)
	softRegex = compile(softSeeds)
}

func wordEdge(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// scanSeedSkills returns every seed skill present in the text, in seed
// declaration order, without duplicates.
func scanSeedSkills(text string) []string {
	seedOnce.Do(compileSeeds)
	lowered := strings.ToLower(text)

	var found []string
	seen := make(map[string]bool)
	scan := func(seeds []string, patterns []*regexp.Regexp) {
		for i, re := range patterns {
			if re.MatchString(lowered) && !seen[seeds[i]] {
				seen[seeds[i]] = true
				found = append(found, seeds[i])
			}
		}
	}
	scan(technicalSeeds, technicalRegex)
	scan(softSeeds, softRegex)
	return found
}
