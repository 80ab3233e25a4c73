package catalog

import "strings"

// Skill categories reported alongside an analysis. Membership lists are
// keyword sets; anything unlisted counts as technical.
var categoryTerms = map[string]map[string]struct{}{
	"tools": setOf(
		"git", "github", "gitlab", "docker", "kubernetes", "jenkins", "jira",
		"figma", "excel", "tableau", "power bi", "postman", "terraform",
		"linux", "bash", "vs code", "unity", "unreal engine",
	),
	"soft": setOf(
		"communication", "teamwork", "leadership", "problem solving",
		"critical thinking", "time management", "adaptability", "creativity",
		"collaboration", "presentation", "mentoring", "documentation",
	),
	"domain": setOf(
		"machine learning", "deep learning", "nlp", "computer vision",
		"data analysis", "data visualization", "statistics", "etl",
		"data cleaning", "seo", "digital marketing", "accounting", "finance",
		"project management", "agile", "scrum", "security", "networking",
	),
}

var categoryOrder = []string{"technical", "tools", "soft", "domain"}

// Categorize buckets lowercase skill terms into technical, tools, soft and
// domain groups. Every bucket is present in the result, possibly empty.
func Categorize(skills []string) map[string][]string {
	out := make(map[string][]string, len(categoryOrder))
	for _, c := range categoryOrder {
		out[c] = []string{}
	}
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		c := categoryOf(s)
		out[c] = append(out[c], s)
	}
	return out
}

func categoryOf(skill string) string {
	for _, c := range categoryOrder[1:] {
		if _, ok := categoryTerms[c][skill]; ok {
			return c
		}
	}
	return "technical"
}

func setOf(terms ...string) map[string]struct{} {
	out := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		out[t] = struct{}{}
	}
	return out
}
