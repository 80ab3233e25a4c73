package matching

// Scoring collects the tuned constants of the matching engine. They are
// intentionally overridable: the values below mirror observed behavior, not
// any derivation, and are subject to future tuning.
type Scoring struct {
	// RoleNameCutoff is the minimum similarity for fuzzy role resolution.
	RoleNameCutoff float64
	// SkillFuzzyThreshold is the pairwise similarity above which a candidate
	// skill counts toward a role's requirement in recommendation.
	SkillFuzzyThreshold float64
	// SkillFuzzyMinLen restricts fuzzy skill pairing to longer tokens.
	SkillFuzzyMinLen int
	// ExtractFuzzyThreshold is the residual-token similarity used by the
	// skill extractor.
	ExtractFuzzyThreshold float64
	// ModerateGapLow/High bound the similarity band that downgrades a
	// missing skill from critical to moderate.
	ModerateGapLow  float64
	ModerateGapHigh float64

	// DomainBonus is added when a role's domain matches the candidate's.
	DomainBonus int
	// DomainPenalty is subtracted on a domain mismatch. Deliberately larger
	// than the bonus: cross-domain noise hurts more than alignment helps.
	DomainPenalty int

	// NativeKeywordWeight weighs keywords native to the role's skill list in
	// ATS scoring; ExtraKeywordWeight weighs job-description supplements.
	NativeKeywordWeight float64
	ExtraKeywordWeight  float64
	// CoreMatchBonus is the flat ATS bonus for reaching a critical mass of
	// native-skill matches.
	CoreMatchBonus int
	// JobDescriptionKeywordCap bounds how many job-description tokens join
	// the ATS keyword set.
	JobDescriptionKeywordCap int
}

func DefaultScoring() Scoring {
	return Scoring{
		RoleNameCutoff:           0.6,
		SkillFuzzyThreshold:      0.88,
		SkillFuzzyMinLen:         5,
		ExtractFuzzyThreshold:    0.86,
		ModerateGapLow:           0.48,
		ModerateGapHigh:          0.78,
		DomainBonus:              10,
		DomainPenalty:            25,
		NativeKeywordWeight:      1.2,
		ExtraKeywordWeight:       1.0,
		CoreMatchBonus:           3,
		JobDescriptionKeywordCap: 30,
	}
}

// DomainKeywords characterizes each coarse role domain. A role belongs to a
// domain when its title contains one of the keywords; a candidate belongs
// when any keyword appears in their skill set.
var DomainKeywords = map[string][]string{
	"ar/vr":    {"unity", "unreal", "xr", "vr", "3d", "oculus", "arcore", "arkit"},
	"frontend": {"javascript", "react", "typescript", "html", "css", "tailwind", "vue"},
	"backend":  {"python", "node", "java", "sql", "api", "fastapi", "express"},
	"data":     {"sql", "pandas", "numpy", "statistics", "tableau", "power bi"},
	"devops":   {"docker", "kubernetes", "ci/cd", "terraform", "linux"},
	"mobile":   {"kotlin", "swift", "flutter", "react native"},
	"security": {"penetration", "owasp", "security", "nist"},
	"cloud":    {"aws", "gcp", "azure", "serverless"},
}

// domainOrder fixes iteration order so classification stays deterministic
// when a title could match more than one domain.
var domainOrder = []string{
	"ar/vr", "frontend", "backend", "data", "devops", "mobile", "security", "cloud",
}

// GeneralDomain is assigned when no signal places a candidate or role in any
// specific domain, so nothing is unfairly penalized.
const GeneralDomain = "general"
