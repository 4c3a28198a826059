package scoring

import (
	"testing"

	"github.com/jonathan/career-matcher/internal/profile"
	"github.com/jonathan/career-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeightSum(t *testing.T) {
	assert.InDelta(t, 1.0, WeightSum(), 1e-12)
}

func TestScoreItem_WorkedExample(t *testing.T) {
	// 10 years in IT with React and Node against an occupation requiring
	// 2 years, no education requirement, and four skills of which only
	// Node is present: 0.40*1 + 0.25*0.25 + 0.20*1 + 0.10*1 + 0.05*0.5.
	p := profile.Extract("저는 정보통신 분야에서 10년간 백엔드 개발을 했습니다. React와 Node 경험이 있습니다")

	item := types.Scorable{
		Sector:            "정보통신",
		RequiredYears:     2,
		RequiredEducation: types.EducationAny,
		RequiredSkills:    []string{"Node", "DB", "API", "클라우드"},
	}

	breakdown := ScoreItem(item, p, []string{"정보통신"})

	assert.Equal(t, 1.0, breakdown.Domain)
	assert.Equal(t, 0.25, breakdown.Skills)
	assert.Equal(t, 1.0, breakdown.Years)
	assert.Equal(t, 1.0, breakdown.Education)
	assert.Equal(t, 0.5, breakdown.EmploymentType)
	assert.InDelta(t, 0.7875, breakdown.Total, 1e-12)
}

func TestScoreItem_BoundsAndDeterminism(t *testing.T) {
	p := types.UserProfile{
		YearsOfExperience: 15,
		EducationLevel:    types.EducationMaster,
		Skills:            []string{"Python", "SQL"},
	}

	items := []types.Scorable{
		{},
		{Sector: "금융", RequiredYears: 20, RequiredEducation: types.EducationDoctorate},
		{Sector: "제조", RequiredSkills: []string{"Python", "SQL", "CAD"}},
		{Sector: "정보통신", RequiredYears: 1, RequiredSkills: []string{"Python"}},
	}

	for _, item := range items {
		first := ScoreItem(item, p, []string{"정보통신", "금융"})
		second := ScoreItem(item, p, []string{"정보통신", "금융"})

		assert.Equal(t, first, second)
		assert.GreaterOrEqual(t, first.Total, 0.0)
		assert.LessOrEqual(t, first.Total, 1.0)
	}
}

func TestComputeDomainScore_Binary(t *testing.T) {
	item := types.Scorable{Sector: "건설"}
	p := types.UserProfile{EducationLevel: types.EducationAny}

	in := ScoreItem(item, p, []string{"건설", "제조"})
	out := ScoreItem(item, p, []string{"정보통신"})
	none := ScoreItem(item, p, nil)

	assert.Equal(t, 1.0, in.Domain)
	assert.Equal(t, 0.0, out.Domain)
	assert.Equal(t, 0.0, none.Domain)
}

func TestComputeSkillsScore(t *testing.T) {
	tests := []struct {
		name     string
		required []string
		have     []string
		expected float64
	}{
		{
			name:     "no required skills scores zero",
			required: nil,
			have:     []string{"Python"},
			expected: 0.0,
		},
		{
			name:     "partial overlap",
			required: []string{"Node", "DB", "API", "클라우드"},
			have:     []string{"Node", "React"},
			expected: 0.25,
		},
		{
			name:     "full overlap",
			required: []string{"Python", "SQL"},
			have:     []string{"SQL", "Python", "AWS"},
			expected: 1.0,
		},
		{
			name:     "case-tolerant matching",
			required: []string{"node", "PYTHON"},
			have:     []string{"Node", "Python"},
			expected: 1.0,
		},
		{
			name:     "empty profile",
			required: []string{"Node"},
			have:     nil,
			expected: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := computeSkillsScore(tt.required, tt.have)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestComputeYearsScore(t *testing.T) {
	// No requirement means full credit (explicit zero-denominator guard).
	assert.Equal(t, 1.0, computeYearsScore(0, 0))
	assert.Equal(t, 1.0, computeYearsScore(0, 30))

	// Proportional below the bar, saturated at the bar.
	assert.Equal(t, 0.5, computeYearsScore(10, 5))
	assert.Equal(t, 1.0, computeYearsScore(10, 10))
	assert.Equal(t, 1.0, computeYearsScore(2, 10))

	// Zero experience against a real requirement scores zero.
	assert.Equal(t, 0.0, computeYearsScore(5, 0))
}

func TestComputeYearsScore_Monotonic(t *testing.T) {
	const required = 8

	previous := -1.0
	for years := 0; years <= 20; years++ {
		score := computeYearsScore(required, years)
		require.GreaterOrEqual(t, score, previous, "years=%d", years)
		previous = score

		if years >= required {
			assert.Equal(t, 1.0, score)
		}
	}
}

func TestComputeEducationScore(t *testing.T) {
	// 무관 requirement is always met, including by the default profile.
	assert.Equal(t, 1.0, computeEducationScore(types.EducationAny, types.EducationAny))
	assert.Equal(t, 1.0, computeEducationScore(types.EducationAny, types.EducationDoctorate))

	// Meets-or-exceeds on the ladder.
	assert.Equal(t, 1.0, computeEducationScore(types.EducationBachelor, types.EducationMaster))
	assert.Equal(t, 1.0, computeEducationScore(types.EducationMaster, types.EducationMaster))
	assert.Equal(t, 0.0, computeEducationScore(types.EducationMaster, types.EducationBachelor))
	assert.Equal(t, 0.0, computeEducationScore(types.EducationDoctorate, types.EducationAny))
}

func TestScoreItem_EmptyProfile(t *testing.T) {
	p := profile.Extract("")

	item := types.Scorable{
		Sector:            "정보통신",
		RequiredYears:     3,
		RequiredEducation: types.EducationBachelor,
		RequiredSkills:    []string{"Java"},
	}

	breakdown := ScoreItem(item, p, nil)

	assert.Equal(t, 0.0, breakdown.Domain)
	assert.Equal(t, 0.0, breakdown.Skills)
	assert.Equal(t, 0.0, breakdown.Years)
	assert.Equal(t, 0.0, breakdown.Education)
	// Only the neutral employment-type factor contributes.
	assert.InDelta(t, 0.025, breakdown.Total, 1e-12)
}
