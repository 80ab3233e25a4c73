package matching

import (
	"strings"

	"trackmycareer/internal/catalog"
	"trackmycareer/internal/pkg/textutil"
)

// GapLevels classifies a candidate's skill gaps against a requirement set:
// critical skills are fully absent, moderate ones have a partially similar
// possessed skill, minor ones are possessed vocabulary skills adjacent to
// but outside the requirements.
type GapLevels struct {
	Critical []string
	Moderate []string
	Minor    []string
}

func ClassifyGaps(vocab *catalog.Vocabulary, required, possessed []string, cfg Scoring) GapLevels {
	have := make(map[string]struct{}, len(possessed))
	for _, s := range possessed {
		have[strings.ToLower(strings.TrimSpace(s))] = struct{}{}
	}
	delete(have, "")

	reqSet := make(map[string]struct{}, len(required))
	for _, r := range required {
		reqSet[r] = struct{}{}
	}

	gaps := GapLevels{Critical: []string{}, Moderate: []string{}, Minor: []string{}}

	for _, r := range required {
		if _, ok := have[r]; ok {
			continue
		}
		gaps.Critical = append(gaps.Critical, textutil.SkillLabel(r))
		for s := range have {
			sim := textutil.Similarity(r, s)
			if sim > cfg.ModerateGapLow && sim < cfg.ModerateGapHigh {
				gaps.Moderate = append(gaps.Moderate, textutil.SkillLabel(r))
				break
			}
		}
	}

	for _, s := range possessed {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if _, req := reqSet[s]; req {
			continue
		}
		if _, known := vocab.Canonical(s); known {
			gaps.Minor = append(gaps.Minor, textutil.SkillLabel(s))
		}
	}

	return gaps
}
