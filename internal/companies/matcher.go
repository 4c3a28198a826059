package companies

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/jonathan/career-matcher/internal/types"
)

// Factor weights on the 0-100 percentage scale.
const (
	fieldWeight      = 40
	experienceWeight = 30
	educationWeight  = 20
	employmentWeight = 10
)

// Result selection thresholds.
const (
	scoreThreshold = 30 // minimum total score to survive filtering
	maxResults     = 10
	minResults     = 4 // guaranteed list size when enough companies exist
)

// maxCertificationBonus caps the additive credential bonus.
const maxCertificationBonus = 50

var (
	// requiredYearsPattern reads "N년" from an employer's requirement text.
	requiredYearsPattern = regexp.MustCompile(`(\d{1,2})\s*년`)
	// leadingYearsPattern reads the leading integer of an experience entry's
	// duration field ("3년 2개월" counts as 3).
	leadingYearsPattern = regexp.MustCompile(`^\s*(\d+)`)
)

// flexibleEmploymentTypes are the standard types scored as fully acceptable.
var flexibleEmploymentTypes = map[string]bool{
	"정규직": true,
	"계약직": true,
	"인턴":  true,
	"훈련생": true,
}

// Match scores every company against the candidate, sorts descending, filters
// to totals above the threshold and caps at 10. When fewer than 4 companies
// survive the filter but at least 4 existed, the filter is discarded and the
// unfiltered top 4 returned instead, so the caller always gets a viable list.
func Match(candidate types.CandidateProfile, userCategories []string, companies []types.Company) []types.CompanyMatch {
	scored := make([]types.CompanyMatch, 0, len(companies))
	for i := range companies {
		details := scoreCompany(candidate, userCategories, &companies[i])
		scored = append(scored, types.CompanyMatch{
			Company:         companies[i],
			MatchingScore:   int(math.Round(details.TotalScore)),
			MatchingDetails: details,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].MatchingDetails.TotalScore > scored[j].MatchingDetails.TotalScore
	})

	filtered := make([]types.CompanyMatch, 0, len(scored))
	for _, match := range scored {
		if match.MatchingDetails.TotalScore > scoreThreshold {
			filtered = append(filtered, match)
		}
	}
	if len(filtered) > maxResults {
		filtered = filtered[:maxResults]
	}

	if len(filtered) < minResults && len(scored) >= minResults {
		return scored[:minResults]
	}
	return filtered
}

// scoreCompany computes the full factor breakdown for one company.
func scoreCompany(candidate types.CandidateProfile, userCategories []string, company *types.Company) types.MatchDetails {
	details := types.MatchDetails{
		FieldMatch:          computeFieldScore(userCategories, company.Category),
		ExperienceMatch:     computeExperienceScore(candidate.Experiences, company.RequiredExperience),
		EducationMatch:      computeEducationScore(candidate.Education, company.RequiredEducation),
		EmploymentTypeMatch: computeEmploymentScore(company.EmploymentType),
		CertificationBonus:  computeCertificationBonus(candidate.Skills, userCategories, company.Skills),
	}

	weighted := details.FieldMatch*fieldWeight +
		details.ExperienceMatch*experienceWeight +
		details.EducationMatch*educationWeight +
		details.EmploymentTypeMatch*employmentWeight

	details.TotalScore = weighted/100 + details.CertificationBonus
	return details
}

// computeFieldScore is a three-tier match: 100 for an exact category match,
// 75 when the company's category text contains any semantic keyword of a
// selected category, 0 otherwise.
func computeFieldScore(userCategories []string, companyCategory string) float64 {
	for _, category := range userCategories {
		if category == companyCategory {
			return 100
		}
	}

	for _, category := range userCategories {
		for _, keyword := range categoryKeywords[category] {
			if strings.Contains(companyCategory, keyword) {
				return 75
			}
		}
	}

	return 0
}

// computeExperienceScore compares the candidate's summed years against the
// company's stated requirement. Entry-level candidates score 80 against
// entry-friendly postings and 20 otherwise; an unparsable requirement scores
// 90 (no real requirement). Exceeding the bar earns 2 points per extra year
// capped at 100; falling short is penalized proportionally, floored at 20 so
// nonzero experience never scores as none.
func computeExperienceScore(experiences []types.ExperienceEntry, requirementText string) float64 {
	if len(experiences) == 0 {
		if strings.Contains(requirementText, "신입") || strings.Contains(requirementText, "무관") {
			return 80
		}
		return 20
	}

	totalYears := 0
	for _, entry := range experiences {
		if match := leadingYearsPattern.FindStringSubmatch(entry.Duration); match != nil {
			totalYears += atoiSafe(match[1])
		}
	}

	requiredYears := 0
	if match := requiredYearsPattern.FindStringSubmatch(requirementText); match != nil {
		requiredYears = atoiSafe(match[1])
	}
	if requiredYears == 0 {
		return 90
	}

	if totalYears >= requiredYears {
		score := 80 + float64(totalYears-requiredYears)*2
		if score > 100 {
			return 100
		}
		return score
	}

	score := float64(totalYears) / float64(requiredYears) * 70
	if score < 20 {
		return 20
	}
	return score
}

// companyEducationLadder orders the 5-level education labels used by
// employers, tested highest-first so "석사 이상" resolves to 석사.
var companyEducationLadder = []struct {
	label string
	rank  int
}{
	{"박사", 5},
	{"석사", 4},
	{"대졸", 3},
	{"초대졸", 2},
	{"전문대졸", 2},
	{"고졸", 1},
}

// educationRankOf resolves free text to a ladder rank; unrecognized or empty
// text ranks 0.
func educationRankOf(text string) int {
	for _, level := range companyEducationLadder {
		if strings.Contains(text, level.label) {
			return level.rank
		}
	}
	return 0
}

// computeEducationScore gives full credit when the candidate meets or exceeds
// the requirement and a graduated penalty floored at 30 otherwise. A zero
// required rank means no requirement and avoids the division.
func computeEducationScore(candidateEducation, requiredEducation string) float64 {
	requiredRank := educationRankOf(requiredEducation)
	if requiredRank == 0 {
		return 100
	}

	candidateRank := educationRankOf(candidateEducation)
	if candidateRank >= requiredRank {
		return 100
	}

	score := float64(candidateRank) / float64(requiredRank) * 70
	if score < 30 {
		return 30
	}
	return score
}

// computeEmploymentScore is intentionally permissive: 90 for an empty or
// standard flexible type, 70 for everything else.
func computeEmploymentScore(employmentType string) float64 {
	if employmentType == "" || flexibleEmploymentTypes[employmentType] {
		return 90
	}
	return 70
}

// computeCertificationBonus adds 15 points per user skill matching a
// recognized IT certification (only when an IT category is selected) and,
// independently, 10 points per user skill found in the company's free-text
// skills field. The accumulated bonus is capped at 50.
func computeCertificationBonus(userSkills, userCategories []string, companySkills string) float64 {
	bonus := 0.0

	if containsCategory(userCategories, CategoryIT) {
		for _, skill := range userSkills {
			if matchesCertification(skill) {
				bonus += 15
			}
		}
	}

	companySkillsLower := strings.ToLower(companySkills)
	for _, skill := range userSkills {
		if skill != "" && strings.Contains(companySkillsLower, strings.ToLower(skill)) {
			bonus += 10
		}
	}

	if bonus > maxCertificationBonus {
		return maxCertificationBonus
	}
	return bonus
}

func containsCategory(categories []string, target string) bool {
	for _, category := range categories {
		if category == target {
			return true
		}
	}
	return false
}

// matchesCertification reports whether a skill contains a recognized
// credential substring (case-insensitive).
func matchesCertification(skill string) bool {
	skillLower := strings.ToLower(skill)
	for _, certification := range recognizedCertifications {
		if strings.Contains(skillLower, strings.ToLower(certification)) {
			return true
		}
	}
	return false
}

// atoiSafe parses digits already matched by a \d pattern; malformed input
// counts as 0.
func atoiSafe(digits string) int {
	value, err := strconv.Atoi(digits)
	if err != nil || value < 0 {
		return 0
	}
	return value
}
