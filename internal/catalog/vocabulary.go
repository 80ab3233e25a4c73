package catalog

import (
	"sort"
	"strings"
)

// CommonSkills is the built-in master skill list. Extraction works against
// the union of this list and the loaded role database, so the extractor
// keeps functioning even with the minimal fallback catalog.
var CommonSkills = []string{
	// programming languages
	"python", "java", "javascript", "typescript", "c", "c++", "c#", "go", "rust",
	"ruby", "swift", "kotlin", "php", "r", "sql", "matlab", "scala", "bash",
	"shell scripting",
	// web
	"html", "css", "sass", "react", "vue", "angular", "next.js", "svelte",
	"node", "express", "django", "flask", "fastapi", "laravel", "spring boot",
	// mobile
	"react native", "flutter", "android", "ios", "swiftui", "jetpack compose",
	// data science / ML
	"pandas", "numpy", "matplotlib", "seaborn", "scikit-learn", "tensorflow",
	"pytorch", "keras", "nlp", "computer vision", "opencv", "huggingface",
	"statistics", "probability", "data modeling", "deep learning",
	"machine learning", "reinforcement learning", "transformers", "mlops",
	"model deployment", "feature engineering",
	// databases
	"mysql", "postgresql", "mongodb", "redis", "sqlite", "oracle", "dynamodb",
	"data warehousing", "snowflake", "bigquery", "redshift",
	// cloud / devops
	"aws", "azure", "gcp", "cloud computing", "docker", "kubernetes",
	"terraform", "ansible", "jenkins", "github actions", "devops", "ci/cd",
	"prometheus", "grafana", "linux",
	// security
	"penetration testing", "ethical hacking", "siem", "network security",
	"vulnerability assessment", "incident response", "nmap", "burp suite",
	"metasploit", "owasp top 10",
	// qa
	"manual testing", "automation testing", "selenium", "pytest", "junit",
	"test cases", "quality assurance",
	// analyst / BI
	"excel", "power bi", "tableau", "data visualization", "data cleaning",
	"dashboard creation", "etl", "kpis",
	// product / business
	"product management", "business analysis", "market research", "agile",
	"scrum", "jira", "confluence", "stakeholder management", "requirements",
	"roadmap",
	// soft skills
	"communication", "leadership", "problem solving", "critical thinking",
	"time management", "teamwork", "collaboration", "creativity",
	"adaptability", "decision making", "presentation skills", "negotiation",
	// design
	"ui design", "ux design", "figma", "adobe xd", "wireframing",
	"prototyping", "user research", "design thinking",
	// marketing / finance
	"seo", "digital marketing", "content strategy", "email marketing",
	"google analytics", "financial modeling", "accounting", "budgeting",
	"forecasting",
	// tools
	"git", "github", "postman", "vs code", "intellij", "notion", "slack",
	// ar/vr
	"unity", "unreal", "arcore", "arkit",
	// misc engineering
	"api", "rest apis", "microservices", "algorithms", "data structures",
	"security", "database", "serverless", "visualization", "documentation",
}

// Aliases maps shorthand spellings to their canonical vocabulary term.
var Aliases = map[string]string{
	"js":         "javascript",
	"py":         "python",
	"golang":     "go",
	"powerbi":    "power bi",
	"rest api":   "rest apis",
	"k8s":        "kubernetes",
	"postgres":   "postgresql",
	"tf":         "terraform",
	"sklearn":    "scikit-learn",
	"ml":         "machine learning",
	"reactjs":    "react",
	"nodejs":     "node",
	"node.js":    "node",
	"aws lambda": "aws",
}

// Vocabulary is the immutable skill reference used by extraction: canonical
// terms plus alias normalization, with terms pre-sorted longest first so
// phrase matches win over their component tokens.
type Vocabulary struct {
	longestFirst []string
	canonical    map[string]struct{}
	aliases      map[string]string
}

// NewVocabulary merges the built-in common skills with the catalog's master
// skill list and the alias table.
func NewVocabulary(cat *Catalog) *Vocabulary {
	v := &Vocabulary{
		canonical: make(map[string]struct{}, len(CommonSkills)),
		aliases:   make(map[string]string, len(Aliases)),
	}

	add := func(term string) {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" {
			return
		}
		if _, ok := v.canonical[term]; ok {
			return
		}
		v.canonical[term] = struct{}{}
	}

	for _, s := range CommonSkills {
		add(s)
	}
	if cat != nil {
		for _, s := range cat.MasterSkills() {
			add(s)
		}
	}
	for alias, target := range Aliases {
		v.aliases[strings.ToLower(alias)] = strings.ToLower(target)
		add(target)
	}

	v.longestFirst = make([]string, 0, len(v.canonical)+len(v.aliases))
	for t := range v.canonical {
		v.longestFirst = append(v.longestFirst, t)
	}
	for a := range v.aliases {
		if _, ok := v.canonical[a]; !ok {
			v.longestFirst = append(v.longestFirst, a)
		}
	}
	sort.Slice(v.longestFirst, func(i, j int) bool {
		if len(v.longestFirst[i]) != len(v.longestFirst[j]) {
			return len(v.longestFirst[i]) > len(v.longestFirst[j])
		}
		return v.longestFirst[i] < v.longestFirst[j]
	})

	return v
}

// Terms returns searchable terms (canonical terms and aliases), longest first.
func (v *Vocabulary) Terms() []string {
	return v.longestFirst
}

// Canonical resolves aliases to their canonical form. The second return
// reports whether the term belongs to the vocabulary at all.
func (v *Vocabulary) Canonical(term string) (string, bool) {
	term = strings.ToLower(strings.TrimSpace(term))
	if target, ok := v.aliases[term]; ok {
		return target, true
	}
	if _, ok := v.canonical[term]; ok {
		return term, true
	}
	return "", false
}

// CanonicalTerms returns the canonical term set, sorted.
func (v *Vocabulary) CanonicalTerms() []string {
	out := make([]string, 0, len(v.canonical))
	for t := range v.canonical {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

func (v *Vocabulary) Len() int {
	return len(v.canonical)
}
