package planning

import (
	"fmt"
	"strings"
)

// Summary renders the headline readiness message, one of four templates
// selected by threshold band.
func Summary(roleName string, matchPercent int, missingSkills []string) string {
	switch {
	case matchPercent >= 95:
		return fmt.Sprintf(
			"You are exceptionally well matched (%d%%) for %s - highlight these strengths on your resume.",
			matchPercent, roleName,
		)
	case matchPercent >= 70:
		return fmt.Sprintf(
			"You are %d%% ready for %s. Focus on the missing skills to reach a hiring-ready level.",
			matchPercent, roleName,
		)
	case matchPercent >= 40:
		return fmt.Sprintf(
			"You are %d%% ready for %s. You have a solid base but need to close gaps in: %s.",
			matchPercent, roleName, topMissing(missingSkills, "core skills"),
		)
	default:
		return fmt.Sprintf(
			"You are %d%% ready for %s. Prioritize learning: %s.",
			matchPercent, roleName, topMissing(missingSkills, "core fundamentals"),
		)
	}
}

func topMissing(missing []string, empty string) string {
	if len(missing) == 0 {
		return empty
	}
	if len(missing) > 5 {
		missing = missing[:5]
	}
	return strings.Join(missing, ", ")
}
