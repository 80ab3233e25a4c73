package matching

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"trackmycareer/internal/catalog"
	"trackmycareer/internal/pkg/textutil"
)

type RoleScore struct {
	Title         string
	Readiness     int
	Reason        string
	MatchedSkills []string
	MissingSkills []string
}

// Recommender ranks every catalog role against a candidate skill set. Domain
// clustering suppresses cross-domain false positives: an AR/VR role stops
// surfacing for a candidate with no AR/VR signal at all.
type Recommender struct {
	cat *catalog.Catalog
	cfg Scoring
}

func NewRecommender(cat *catalog.Catalog, cfg Scoring) *Recommender {
	return &Recommender{cat: cat, cfg: cfg}
}

// Recommend returns the topN roles by readiness, descending, ties broken by
// database order. Pure and deterministic over the static catalog.
func (r *Recommender) Recommend(skills []string, topN int) []RoleScore {
	if topN <= 0 {
		topN = 4
	}

	sset := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		sset[strings.ToLower(strings.TrimSpace(s))] = struct{}{}
	}
	delete(sset, "")

	candidateDomains := detectCandidateDomains(sset)

	scores := make([]RoleScore, 0, r.cat.Len())
	for _, key := range r.cat.Keys() {
		required := r.cat.Skills(key)
		if len(required) == 0 {
			continue
		}

		exact := make([]string, 0, len(required))
		missing := make([]string, 0, len(required))
		for _, rs := range required {
			if _, ok := sset[rs]; ok {
				exact = append(exact, rs)
			} else {
				missing = append(missing, rs)
			}
		}

		fuzzy := r.fuzzyMatches(required, sset)
		totalMatches := len(exact) + fuzzy

		readiness := int(math.Round(float64(totalMatches) / float64(len(required)) * 100))
		readiness = clamp(readiness, 0, 100)

		if domainsIntersect(roleDomain(key), candidateDomains) {
			readiness += r.cfg.DomainBonus
		} else {
			readiness -= r.cfg.DomainPenalty
		}
		readiness = clamp(readiness, 0, 100)

		sort.Strings(exact)
		scores = append(scores, RoleScore{
			Title:         key,
			Readiness:     readiness,
			Reason:        fmt.Sprintf("Matched %d / %d key skills", totalMatches, len(required)),
			MatchedSkills: textutil.SkillLabels(exact),
			MissingSkills: textutil.SkillLabels(missing),
		})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Readiness > scores[j].Readiness
	})
	if len(scores) > topN {
		scores = scores[:topN]
	}
	return scores
}

// fuzzyMatches counts required skills (longer than the configured minimum)
// with some candidate skill above the similarity threshold, at most once per
// requirement so nothing is double counted.
func (r *Recommender) fuzzyMatches(required []string, sset map[string]struct{}) int {
	count := 0
	for _, rs := range required {
		if _, exact := sset[rs]; exact {
			continue
		}
		if len(rs) < r.cfg.SkillFuzzyMinLen {
			continue
		}
		for s := range sset {
			if len(s) < r.cfg.SkillFuzzyMinLen {
				continue
			}
			if textutil.Similarity(rs, s) > r.cfg.SkillFuzzyThreshold {
				count++
				break
			}
		}
	}
	return count
}

func detectCandidateDomains(sset map[string]struct{}) map[string]struct{} {
	detected := make(map[string]struct{})
	for _, domain := range domainOrder {
		for _, k := range DomainKeywords[domain] {
			if _, ok := sset[k]; ok {
				detected[domain] = struct{}{}
				break
			}
		}
	}
	if len(detected) == 0 {
		detected[GeneralDomain] = struct{}{}
	}
	return detected
}

// roleDomain classifies a role by keyword containment in its title.
func roleDomain(title string) string {
	t := strings.ToLower(title)
	for _, domain := range domainOrder {
		for _, k := range DomainKeywords[domain] {
			if strings.Contains(t, k) {
				return domain
			}
		}
	}
	// title-level names the skill keywords cannot see
	for _, domain := range domainOrder {
		if strings.Contains(t, domain) {
			return domain
		}
	}
	switch {
	case strings.Contains(t, "scientist"), strings.Contains(t, "analyst"), strings.Contains(t, "ml "):
		return "data"
	}
	return GeneralDomain
}

func domainsIntersect(domain string, candidate map[string]struct{}) bool {
	_, ok := candidate[domain]
	return ok
}
