package services

import "strings"

// SkillGapResult splits a market-skill list against a user's declared skills.
// Every market skill lands in exactly one of the two lists, in market order.
type SkillGapResult struct {
	MatchedSkills []string
	MissingSkills []string
}

// ComputeGap compares the market skills against the user's skills with
// case-insensitive, whitespace-trimmed matching, so "Git", "git" and " Git "
// are all the same skill. Duplicates in the market list are preserved.
func ComputeGap(marketSkills, userSkills []string) SkillGapResult {
	known := make(map[string]struct{}, len(userSkills))
	for _, skill := range userSkills {
		known[normalizeSkill(skill)] = struct{}{}
	}

	result := SkillGapResult{
		MatchedSkills: []string{},
		MissingSkills: []string{},
	}

	for _, skill := range marketSkills {
		if _, ok := known[normalizeSkill(skill)]; ok {
			result.MatchedSkills = append(result.MatchedSkills, skill)
		} else {
			result.MissingSkills = append(result.MissingSkills, skill)
		}
	}

	return result
}

func normalizeSkill(skill string) string {
	return strings.ToLower(strings.TrimSpace(skill))
}
