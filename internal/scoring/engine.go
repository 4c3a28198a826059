// Package scoring implements the weighted multi-factor scorer that matches a
// user profile against a catalog item given the chosen sectors. Scoring is a
// pure function: deterministic, no I/O, no hidden state.
package scoring

import (
	"strings"

	"github.com/jonathan/career-matcher/internal/types"
)

// Factor weights. They must sum to exactly 1.0 so the total stays in [0,1].
const (
	domainWeight         = 0.40
	skillsWeight         = 0.25
	yearsWeight          = 0.20
	educationWeight      = 0.10
	employmentTypeWeight = 0.05
)

// employmentTypeNeutral is the placeholder employment-type factor. No
// employment-type signal is modeled at this layer, so the factor is held
// neutral rather than dropped, keeping the weight vector stable.
const employmentTypeNeutral = 0.5

// WeightSum returns the sum of the factor weights. Exposed for the invariant
// check in tests.
func WeightSum() float64 {
	return domainWeight + skillsWeight + yearsWeight + educationWeight + employmentTypeWeight
}

// ScoreItem computes the match score between a profile and a scorable item.
// The returned breakdown carries each factor plus the weighted total in [0,1].
func ScoreItem(item types.Scorable, profile types.UserProfile, chosenSectors []string) types.FactorBreakdown {
	breakdown := types.FactorBreakdown{
		Domain:         computeDomainScore(item.Sector, chosenSectors),
		Skills:         computeSkillsScore(item.RequiredSkills, profile.Skills),
		Years:          computeYearsScore(item.RequiredYears, profile.YearsOfExperience),
		Education:      computeEducationScore(item.RequiredEducation, profile.EducationLevel),
		EmploymentType: employmentTypeNeutral,
	}

	breakdown.Total = domainWeight*breakdown.Domain +
		skillsWeight*breakdown.Skills +
		yearsWeight*breakdown.Years +
		educationWeight*breakdown.Education +
		employmentTypeWeight*breakdown.EmploymentType

	return breakdown
}

// computeDomainScore is a binary sector match: 1 when the item's sector is
// among the chosen sectors, 0 otherwise. No partial credit for related
// sectors at this layer.
func computeDomainScore(itemSector string, chosenSectors []string) float64 {
	for _, sector := range chosenSectors {
		if sector == itemSector {
			return 1.0
		}
	}
	return 0.0
}

// computeSkillsScore is the fraction of the item's required skills present in
// the profile. Upstream data mixes case, so both the original and lower-cased
// forms of each profile skill are accepted. An item without required skills
// scores 0 for this factor.
func computeSkillsScore(requiredSkills, profileSkills []string) float64 {
	if len(requiredSkills) == 0 {
		return 0.0
	}

	profileSet := make(map[string]bool, len(profileSkills)*2)
	for _, skill := range profileSkills {
		profileSet[skill] = true
		profileSet[strings.ToLower(skill)] = true
	}

	matched := 0
	for _, required := range requiredSkills {
		if profileSet[required] || profileSet[strings.ToLower(required)] {
			matched++
		}
	}

	return float64(matched) / float64(len(requiredSkills))
}

// computeYearsScore rewards meeting or exceeding the experience bar, capped at
// 1 — no bonus for vastly exceeding it. No requirement means full credit; the
// zero-denominator case is guarded explicitly.
func computeYearsScore(requiredYears, profileYears int) float64 {
	if requiredYears <= 0 {
		return 1.0
	}

	ratio := float64(profileYears) / float64(requiredYears)
	if ratio > 1.0 {
		return 1.0
	}
	return ratio
}

// educationRank orders the 4-level ladder used by the general engine.
// Unknown labels rank as 무관.
var educationRank = map[string]int{
	types.EducationAny:       0,
	"없음":                     0,
	types.EducationBachelor:  1,
	types.EducationMaster:    2,
	types.EducationDoctorate: 3,
}

// computeEducationScore is 1 when the profile's education level meets or
// exceeds the item's requirement on the 무관 < 학사 < 석사 < 박사 ladder,
// 0 otherwise.
func computeEducationScore(requiredEducation, profileEducation string) float64 {
	if educationRank[profileEducation] >= educationRank[requiredEducation] {
		return 1.0
	}
	return 0.0
}
