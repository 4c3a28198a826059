package companies

import (
	"fmt"
	"testing"

	"github.com/jonathan/career-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeFieldScore_ThreeTiers(t *testing.T) {
	// Exact category match.
	assert.Equal(t, 100.0, computeFieldScore([]string{"정보통신"}, "정보통신"))

	// Semantic keyword match against the company's category text.
	assert.Equal(t, 75.0, computeFieldScore([]string{"정보통신"}, "소프트웨어 개발업"))

	// No overlap at all.
	assert.Equal(t, 0.0, computeFieldScore([]string{"정보통신"}, "축산업"))

	// No selected categories.
	assert.Equal(t, 0.0, computeFieldScore(nil, "정보통신"))
}

func TestComputeExperienceScore_EntryLevel(t *testing.T) {
	// Entry-friendly postings welcome candidates without history.
	assert.Equal(t, 80.0, computeExperienceScore(nil, "신입 가능"))
	assert.Equal(t, 80.0, computeExperienceScore(nil, "경력 무관"))

	// A real requirement against no history scores the floor.
	assert.Equal(t, 20.0, computeExperienceScore(nil, "경력 5년 이상"))
}

func TestComputeExperienceScore_WithHistory(t *testing.T) {
	twoJobs := []types.ExperienceEntry{
		{Duration: "3년 2개월"},
		{Duration: "2년"},
	}

	// No parsable requirement auto-scores 90.
	assert.Equal(t, 90.0, computeExperienceScore(twoJobs, ""))
	assert.Equal(t, 90.0, computeExperienceScore(twoJobs, "경력자 우대"))

	// Meets the bar exactly: base 80, no extra-year bonus.
	assert.Equal(t, 80.0, computeExperienceScore(twoJobs, "5년 이상"))

	// Exceeds by two years: 80 + 2*2.
	assert.Equal(t, 84.0, computeExperienceScore(twoJobs, "3년 이상"))

	// Bonus caps at 100.
	many := []types.ExperienceEntry{{Duration: "30년"}}
	assert.Equal(t, 100.0, computeExperienceScore(many, "1년 이상"))

	// Below the bar: proportional penalty, 5/10*70.
	assert.Equal(t, 35.0, computeExperienceScore(twoJobs, "10년 이상"))

	// Penalty floors at 20 so some experience never reads as none.
	little := []types.ExperienceEntry{{Duration: "1년"}}
	assert.Equal(t, 20.0, computeExperienceScore(little, "20년 이상"))
}

func TestComputeEducationScore(t *testing.T) {
	// No requirement gives full credit regardless of the candidate.
	assert.Equal(t, 100.0, computeEducationScore("", ""))
	assert.Equal(t, 100.0, computeEducationScore("고졸", "학력무관"))

	// Meets or exceeds.
	assert.Equal(t, 100.0, computeEducationScore("대졸", "대졸 이상"))
	assert.Equal(t, 100.0, computeEducationScore("박사", "석사 이상"))

	// Graduated penalty: 고졸(1) vs 대졸(3) requirement is 1/3*70 ≈ 23.3,
	// floored at 30.
	assert.Equal(t, 30.0, computeEducationScore("고졸", "대졸 이상"))

	// 석사(4) vs 박사(5): 4/5*70 = 56.
	assert.Equal(t, 56.0, computeEducationScore("석사", "박사"))

	// 초대졸 and 전문대졸 share a rank.
	assert.Equal(t, computeEducationScore("초대졸", "대졸"), computeEducationScore("전문대졸", "대졸"))
}

func TestComputeEmploymentScore(t *testing.T) {
	assert.Equal(t, 90.0, computeEmploymentScore(""))
	assert.Equal(t, 90.0, computeEmploymentScore("정규직"))
	assert.Equal(t, 90.0, computeEmploymentScore("훈련생"))
	assert.Equal(t, 70.0, computeEmploymentScore("일용직"))
}

func TestComputeCertificationBonus(t *testing.T) {
	// IT category: +15 per recognized credential.
	bonus := computeCertificationBonus([]string{"정보처리기사"}, []string{"정보통신"}, "")
	assert.Equal(t, 15.0, bonus)

	// Without the IT category the credential bonus does not apply.
	bonus = computeCertificationBonus([]string{"정보처리기사"}, []string{"건설"}, "")
	assert.Equal(t, 0.0, bonus)

	// Company skills overlap applies independently of category.
	bonus = computeCertificationBonus([]string{"용접"}, []string{"건설"}, "용접, 배관 작업 가능자")
	assert.Equal(t, 10.0, bonus)

	// Both accumulate, then cap at 50.
	bonus = computeCertificationBonus(
		[]string{"정보처리기사", "SQLD", "AWS", "Python"},
		[]string{"정보통신"},
		"Python, AWS 경험자 우대",
	)
	assert.Equal(t, 50.0, bonus)
}

func TestMatch_SortsFiltersAndCaps(t *testing.T) {
	candidate := types.CandidateProfile{
		Skills:      []string{"Python"},
		Experiences: []types.ExperienceEntry{{Duration: "10년"}},
		Education:   "대졸",
	}

	companies := make([]types.Company, 0, 15)
	for i := 0; i < 15; i++ {
		companies = append(companies, types.Company{
			Name:     fmt.Sprintf("회사 %d", i),
			Category: "정보통신",
		})
	}

	matches := Match(candidate, []string{"정보통신"}, companies)

	require.Len(t, matches, 10)
	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].MatchingDetails.TotalScore, matches[i].MatchingDetails.TotalScore)
	}
	for _, match := range matches {
		assert.Greater(t, match.MatchingDetails.TotalScore, float64(scoreThreshold))
	}
}

func TestMatch_MinimumFourGuarantee(t *testing.T) {
	// All scores land at or below the threshold: field 0, experience 20,
	// education 30, employment 70 → (0+600+600+700)/100 = 19.
	candidate := types.CandidateProfile{Education: "고졸"}

	companies := make([]types.Company, 0, 6)
	for i := 0; i < 6; i++ {
		companies = append(companies, types.Company{
			Name:               fmt.Sprintf("회사 %d", i),
			Category:           "축산업",
			RequiredExperience: "경력 5년 이상",
			RequiredEducation:  "대졸 이상",
			EmploymentType:     "일용직",
		})
	}

	matches := Match(candidate, []string{"정보통신"}, companies)

	// The filter would leave nothing, so the unfiltered top 4 comes back.
	assert.Len(t, matches, minResults)
}

func TestMatch_FewCompaniesNoGuarantee(t *testing.T) {
	candidate := types.CandidateProfile{Education: "고졸"}

	companies := []types.Company{
		{Name: "회사", Category: "축산업", RequiredExperience: "경력 5년 이상", RequiredEducation: "대졸 이상", EmploymentType: "일용직"},
	}

	matches := Match(candidate, []string{"정보통신"}, companies)

	// Fewer than 4 companies existed, so no fallback applies.
	assert.Empty(t, matches)
}

func TestMatch_BreakdownReproducible(t *testing.T) {
	candidate := types.CandidateProfile{
		Skills:      []string{"AWS", "SQLD"},
		Experiences: []types.ExperienceEntry{{Duration: "4년"}},
		Education:   "대졸",
	}
	companies := []types.Company{
		{Name: "회사", Category: "정보통신", RequiredExperience: "2년 이상", RequiredEducation: "대졸", EmploymentType: "정규직", Skills: "AWS 운영"},
	}
	for i := 0; i < 4; i++ {
		companies = append(companies, types.Company{Name: "다른 회사", Category: "정보통신"})
	}

	first := Match(candidate, []string{"정보통신"}, companies)
	second := Match(candidate, []string{"정보통신"}, companies)
	require.Equal(t, first, second)

	top := first[0]
	assert.Equal(t, "회사", top.Name)
	assert.Equal(t, 100.0, top.MatchingDetails.FieldMatch)
	assert.Equal(t, 84.0, top.MatchingDetails.ExperienceMatch) // 80 + 2 extra years * 2
	assert.Equal(t, 100.0, top.MatchingDetails.EducationMatch)
	assert.Equal(t, 90.0, top.MatchingDetails.EmploymentTypeMatch)
	assert.Equal(t, 40.0, top.MatchingDetails.CertificationBonus) // 15*2 credentials + 10 overlap
	// (100*40 + 84*30 + 100*20 + 90*10)/100 + 40 = 94.2 + 40.
	assert.InDelta(t, 134.2, top.MatchingDetails.TotalScore, 1e-9)
	assert.Equal(t, 134, top.MatchingScore)
}
