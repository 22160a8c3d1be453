package skills

// aliasEntry preserves registration order so containment ties resolve
// the same way on every run.
type aliasEntry struct {
	Alias     string
	Canonical string
}

var defaultAliases = []aliasEntry{
	// Programming languages
	{"javascript", "JavaScript"},
	{"js", "JavaScript"},
	{"typescript", "TypeScript"},
	{"ts", "TypeScript"},
	{"python", "Python"},
	{"py", "Python"},
	{"java", "Java"},
	{"c#", "C#"},
	{"csharp", "C#"},
	{"c++", "C++"},
	{"cpp", "C++"},
	{"php", "PHP"},
	{"ruby", "Ruby"},
	{"go", "Go"},
	{"golang", "Go"},
	{"swift", "Swift"},
	{"kotlin", "Kotlin"},
	{"rust", "Rust"},
	{"scala", "Scala"},
	{"perl", "Perl"},

	// Frameworks and libraries
	{"react", "React"},
	{"reactjs", "React"},
	{"react.js", "React"},
	{"angular", "Angular"},
	{"angularjs", "AngularJS"},
	{"angular.js", "AngularJS"},
	{"vue", "Vue.js"},
	{"vuejs", "Vue.js"},
	{"vue.js", "Vue.js"},
	{"node", "Node.js"},
	{"nodejs", "Node.js"},
	{"node.js", "Node.js"},
	{"express", "Express.js"},
	{"expressjs", "Express.js"},
	{"django", "Django"},
	{"flask", "Flask"},
	{"spring", "Spring"},
	{"spring boot", "Spring Boot"},
	{".net", ".NET"},
	{"dotnet", ".NET"},
	{"laravel", "Laravel"},
	{"rails", "Ruby on Rails"},
	{"ror", "Ruby on Rails"},
	{"ruby on rails", "Ruby on Rails"},

	// Databases
	{"sql", "SQL"},
	{"nosql", "NoSQL"},
	{"postgresql", "PostgreSQL"},
	{"postgres", "PostgreSQL"},
	{"mysql", "MySQL"},
	{"mongo", "MongoDB"},
	{"mongodb", "MongoDB"},
	{"oracle", "Oracle"},
	{"sqlserver", "SQL Server"},
	{"sql server", "SQL Server"},
	{"sqlite", "SQLite"},
	{"redis", "Redis"},
	{"elasticsearch", "Elasticsearch"},
	{"elastic search", "Elasticsearch"},
	{"dynamo", "DynamoDB"},
	{"dynamodb", "DynamoDB"},

	// Platforms and services
	{"aws", "AWS"},
	{"amazon web services", "AWS"},
	{"azure", "Azure"},
	{"microsoft azure", "Azure"},
	{"gcp", "Google Cloud"},
	{"google cloud", "Google Cloud"},
	{"firebase", "Firebase"},
	{"heroku", "Heroku"},
	{"docker", "Docker"},
	{"kubernetes", "Kubernetes"},
	{"k8s", "Kubernetes"},
	{"jenkins", "Jenkins"},
	{"git", "Git"},
	{"github", "GitHub"},
	{"gitlab", "GitLab"},
	{"bitbucket", "Bitbucket"},

	// Tools
	{"vs code", "Visual Studio Code"},
	{"vscode", "Visual Studio Code"},
	{"visual studio", "Visual Studio"},
	{"intellij", "IntelliJ IDEA"},
	{"pycharm", "PyCharm"},
	{"webstorm", "WebStorm"},
	{"eclipse", "Eclipse"},
	{"jira", "Jira"},
	{"confluence", "Confluence"},
	{"trello", "Trello"},
	{"slack", "Slack"},
	{"photoshop", "Adobe Photoshop"},
	{"illustrator", "Adobe Illustrator"},
	{"figma", "Figma"},
	{"sketch", "Sketch"},

	// Methodologies
	{"agile", "Agile"},
	{"ágil", "Agile"},
	{"scrum", "Scrum"},
	{"kanban", "Kanban"},
	{"lean", "Lean"},
	{"waterfall", "Waterfall"},
	{"cascata", "Waterfall"},
	{"tdd", "TDD"},
	{"bdd", "BDD"},
	{"extreme programming", "XP"},
	{"devops", "DevOps"},
	{"ci/cd", "CI/CD"},
	{"cicd", "CI/CD"},
	{"continuous integration", "CI/CD"},
	{"continuous delivery", "CI/CD"},

	// Soft skills (Portuguese canonical forms, English aliases)
	{"comunicação", "Comunicação"},
	{"communication", "Comunicação"},
	{"trabalho em equipe", "Trabalho em Equipe"},
	{"teamwork", "Trabalho em Equipe"},
	{"liderança", "Liderança"},
	{"leadership", "Liderança"},
	{"resolução de problemas", "Resolução de Problemas"},
	{"problem solving", "Resolução de Problemas"},
	{"pensamento crítico", "Pensamento Crítico"},
	{"critical thinking", "Pensamento Crítico"},
	{"proativo", "Proatividade"},
	{"proatividade", "Proatividade"},
	{"proactive", "Proatividade"},
	{"adaptabilidade", "Adaptabilidade"},
	{"adaptability", "Adaptabilidade"},
	{"flexibilidade", "Flexibilidade"},
	{"flexibility", "Flexibilidade"},
	{"gerenciamento de tempo", "Gerenciamento de Tempo"},
	{"time management", "Gerenciamento de Tempo"},
	{"negociação", "Negociação"},
	{"negotiation", "Negociação"},
}

var defaultCategories = map[string][]string{
	CategoryTechnical: {
		"JavaScript", "TypeScript", "Python", "Java", "C#", "C++", "PHP", "Ruby", "Go",
		"Swift", "Kotlin", "Rust", "Scala", "Perl", "HTML", "CSS", "SQL",
	},
	CategorySoft: {
		"Comunicação", "Trabalho em Equipe", "Liderança", "Resolução de Problemas",
		"Pensamento Crítico", "Proatividade", "Adaptabilidade", "Flexibilidade",
		"Gerenciamento de Tempo", "Negociação", "Criatividade", "Empatia", "Persuasão",
	},
	CategoryFrameworks: {
		"React", "Angular", "AngularJS", "Vue.js", "Node.js", "Express.js", "Django",
		"Flask", "Spring", "Spring Boot", ".NET", "Laravel", "Ruby on Rails",
	},
	CategoryDatabases: {
		"SQL", "NoSQL", "PostgreSQL", "MySQL", "MongoDB", "Oracle", "SQL Server",
		"SQLite", "Redis", "Elasticsearch", "DynamoDB",
	},
	CategoryPlatforms: {
		"AWS", "Azure", "Google Cloud", "Firebase", "Heroku", "Docker", "Kubernetes",
		"Jenkins", "Git", "GitHub", "GitLab", "Bitbucket",
	},
	CategoryTools: {
		"Visual Studio Code", "Visual Studio", "IntelliJ IDEA", "PyCharm", "WebStorm",
		"Eclipse", "Jira", "Confluence", "Trello", "Slack", "Adobe Photoshop",
		"Adobe Illustrator", "Figma", "Sketch",
	},
	CategoryMethodologies: {
		"Agile", "Scrum", "Kanban", "Lean", "Waterfall", "TDD", "BDD", "XP",
		"DevOps", "CI/CD",
	},
}

var defaultSynonyms = map[string][]string{
	"JavaScript": {"JS", "ECMAScript", "Node.js"},
	"Python":     {"Py", "Django", "Flask"},
	"AWS":        {"Amazon Web Services", "EC2", "S3", "Lambda"},
	"Agile":      {"Scrum", "Kanban", "Sprint"},
	"SQL":        {"Database", "Queries", "PostgreSQL", "MySQL"},
	"DevOps":     {"CI/CD", "Continuous Integration", "Continuous Deployment"},
}

// Substring patterns that mark an otherwise unmapped skill as soft
var softKeywordPatterns = []string{
	"comunicação", "comunica", "communication",
	"equipe", "team", "grupo", "group",
	"lideran", "lead", "gestão", "management",
	"resolução", "solv", "problem", "problema",
	"crítico", "critical", "think", "pens",
	"criativ", "creativ", "inovat", "inov",
	"adaptab", "flex", "empatia", "empathy",
	"organiza", "planeja", "plan", "aprend",
	"learn", "collabor", "colabor", "confli",
	"negoci", "negot", "persua", "relationship",
	"relacionamento", "motivação", "motivat",
}
