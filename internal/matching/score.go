// Package matching computes the heuristic overlap score between the skills a
// job requires and the skills a user reports.
package matching

import "strings"

// Score returns the integer percentage of required skills covered by the
// user's skills. Either list being empty yields 0 by definition.
//
// A user skill matches a required skill when either is a substring of the
// other, case-insensitively. This deliberately over-matches ("java" matches
// "javascript"); that skew is an accepted limitation of the heuristic, not a
// bug to fix here. Each user skill contributes at most one match, but the
// denominator is the required-skill count, so a long user list that mostly
// matches a short required list can score above 100. That behavior is
// preserved as-is; callers that need a capped display value must clamp it
// themselves.
func Score(required []string, user []string) int {
	if len(required) == 0 || len(user) == 0 {
		return 0
	}

	matches := 0
	for _, userSkill := range user {
		userLower := strings.ToLower(strings.TrimSpace(userSkill))
		if userLower == "" {
			continue
		}
		for _, requiredSkill := range required {
			requiredLower := strings.ToLower(requiredSkill)
			if strings.Contains(requiredLower, userLower) || strings.Contains(userLower, requiredLower) {
				matches++
				break // one match per user skill
			}
		}
	}

	return matches * 100 / len(required)
}
