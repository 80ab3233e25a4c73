package usecase

import (
	"fmt"
	"strings"
)

func skillExtractionPrompt(resumeText string) string {
	return fmt.Sprintf(`Extract ALL technical and non-technical skills from this resume.
Include programming skills, tools, cloud platforms, soft skills, business
skills, frameworks, analysis skills and management skills.

Return ONLY a JSON array of strings, for example:
["Python", "Teamwork", "AWS", "React"]

Resume:
%s`, resumeText)
}

func roleSuggestionPrompt(skills []string, topN int) string {
	return fmt.Sprintf(`You are a career recommender.

Candidate skills: %s

Return a JSON array of up to %d objects with keys:
- title (string)
- reason (short string)
- readiness (integer 0-100)

Example:
[{"title":"Data Analyst","reason":"Strong SQL + Excel","readiness":85}]

Respond ONLY with JSON.`, strings.Join(skills, ", "), topN)
}
