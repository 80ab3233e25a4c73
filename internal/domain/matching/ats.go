package matching

import (
	"math"
	"sort"
	"strings"

	"trackmycareer/internal/catalog"
	"trackmycareer/internal/pkg/textutil"
)

// ErrEmptyResume marks a degenerate zero score so callers can tell it apart
// from a genuinely non-matching resume.
const ErrEmptyResume = "empty resume text"

type ATSResult struct {
	Score           int
	Matched         int
	Total           int
	MatchedKeywords []string
	Error           string
}

// ATSScorer computes weighted keyword coverage between resume text and a
// role's (optionally job-description-augmented) keyword set.
type ATSScorer struct {
	cat      *catalog.Catalog
	resolver *Resolver
	cfg      Scoring
}

func NewATSScorer(cat *catalog.Catalog, resolver *Resolver, cfg Scoring) *ATSScorer {
	return &ATSScorer{cat: cat, resolver: resolver, cfg: cfg}
}

func (s *ATSScorer) Score(resumeText, targetRole, jobDescription string) ATSResult {
	txt := textutil.Normalize(resumeText)
	if txt == "" {
		return ATSResult{MatchedKeywords: []string{}, Error: ErrEmptyResume}
	}

	roleKey := s.resolver.Resolve(targetRole)
	native := s.cat.Skills(roleKey)
	nativeSet := make(map[string]struct{}, len(native))
	for _, kw := range native {
		nativeSet[kw] = struct{}{}
	}

	extras := supplementaryKeywords(jobDescription, nativeSet, s.cfg.JobDescriptionKeywordCap)

	keywords := make([]string, 0, len(native)+len(extras))
	keywords = append(keywords, native...)
	keywords = append(keywords, extras...)
	if len(keywords) == 0 {
		keywords = []string{"python", "sql", "javascript", "git"}
	}

	matched := make(map[string]struct{})
	matchedCore := 0
	weight := 0.0
	for _, kw := range keywords {
		_, isNative := nativeSet[kw]
		switch {
		case textutil.ContainsWord(txt, kw):
			if isNative {
				weight += s.cfg.NativeKeywordWeight
			} else {
				weight += s.cfg.ExtraKeywordWeight
			}
		case strings.Contains(txt, kw):
			// substring fallback for compound tokens
			weight += s.cfg.ExtraKeywordWeight
		default:
			continue
		}
		if _, dup := matched[kw]; dup {
			continue
		}
		matched[kw] = struct{}{}
		if isNative {
			matchedCore++
		}
	}

	total := len(keywords)
	raw := weight / float64(total) * 100.0
	score := clamp(int(math.Round(raw)), 0, 100)

	// critical-mass bonus for core (not just supplementary) matches
	coreGate := len(native) / 4
	if coreGate > 3 {
		coreGate = 3
	}
	if coreGate < 1 {
		coreGate = 1
	}
	if matchedCore >= coreGate {
		score = clamp(score+s.cfg.CoreMatchBonus, 0, 100)
	}

	keys := make([]string, 0, len(matched))
	for kw := range matched {
		keys = append(keys, kw)
	}
	sort.Strings(keys)

	return ATSResult{
		Score:           score,
		Matched:         len(matched),
		Total:           total,
		MatchedKeywords: keys,
	}
}

// supplementaryKeywords takes the most frequent long tokens of the job
// description as unweighted additions to the keyword set.
func supplementaryKeywords(jobDescription string, native map[string]struct{}, limit int) []string {
	jd := textutil.Normalize(jobDescription)
	if jd == "" {
		return nil
	}

	freq := make(map[string]int)
	order := make([]string, 0, 32)
	for _, tok := range tokenOccurrences(jd) {
		if _, ok := native[tok]; ok {
			continue
		}
		if freq[tok] == 0 {
			order = append(order, tok)
		}
		freq[tok]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return freq[order[i]] > freq[order[j]]
	})
	if len(order) > limit {
		order = order[:limit]
	}
	return order
}

// tokenOccurrences keeps duplicates so frequency ranking works.
func tokenOccurrences(norm string) []string {
	out := make([]string, 0, 64)
	for _, field := range strings.Fields(norm) {
		field = strings.Trim(field, ".-'")
		if len([]rune(field)) < 3 {
			continue
		}
		out = append(out, field)
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
