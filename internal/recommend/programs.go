package recommend

import (
	"sort"
	"strings"

	"github.com/jonathan/career-matcher/internal/sectors"
	"github.com/jonathan/career-matcher/internal/types"
)

// recommendPrograms selects training programs by skill gap rather than by
// match score. A program qualifies when it covers at least one missing skill
// (cover) or teaches at least one skill from a chosen sector's vocabulary
// (relevance). When no program qualifies, the full catalog is returned so the
// caller is never handed an empty list while programs exist — the all-zero
// cover/relevance values signal "no relevant programs" upstream.
func recommendPrograms(userProfile types.UserProfile, chosenSectors []string, programs []types.EducationProgram) []types.ScoredProgram {
	neededSkills := sectorVocabularyUnion(chosenSectors)
	missingSkills := subtractProfileSkills(neededSkills, userProfile.Skills)

	scored := make([]types.ScoredProgram, 0, len(programs))
	for i := range programs {
		cover, relevance := 0, 0
		for _, skill := range programs[i].Skills {
			lower := strings.ToLower(skill)
			if missingSkills[lower] {
				cover++
			}
			if neededSkills[lower] {
				relevance++
			}
		}
		scored = append(scored, types.ScoredProgram{
			EducationProgram: programs[i],
			Cover:            cover,
			Relevance:        relevance,
		})
	}

	filtered := make([]types.ScoredProgram, 0, len(scored))
	for _, program := range scored {
		if program.Cover > 0 || program.Relevance > 0 {
			filtered = append(filtered, program)
		}
	}

	// Fallback: no gap-relevant program at all, return the full catalog in
	// its original order instead of an empty result.
	if len(filtered) == 0 {
		filtered = scored
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Cover+filtered[i].Relevance > filtered[j].Cover+filtered[j].Relevance
	})

	// min(6, max(3, available)), never more than exist.
	limit := len(filtered)
	if limit < minPrograms {
		limit = minPrograms
	}
	if limit > maxPrograms {
		limit = maxPrograms
	}
	if limit > len(filtered) {
		limit = len(filtered)
	}

	return filtered[:limit]
}

// sectorVocabularyUnion collects the lower-cased keyword vocabularies of the
// chosen sectors — the skills those sectors "need".
func sectorVocabularyUnion(chosenSectors []string) map[string]bool {
	union := make(map[string]bool)
	for _, sectorName := range chosenSectors {
		for _, keyword := range sectors.VocabularyFor(sectorName) {
			union[strings.ToLower(keyword)] = true
		}
	}
	return union
}

// subtractProfileSkills removes the profile's known skills from the needed
// set, leaving the user's missing skills.
func subtractProfileSkills(needed map[string]bool, profileSkills []string) map[string]bool {
	missing := make(map[string]bool, len(needed))
	for skill := range needed {
		missing[skill] = true
	}
	for _, skill := range profileSkills {
		delete(missing, strings.ToLower(skill))
	}
	return missing
}
