package recommend

import (
	"testing"

	"github.com/jonathan/career-matcher/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendPrograms_CoverAndRelevance(t *testing.T) {
	userProfile := types.UserProfile{Skills: []string{"클라우드"}}

	programs := []types.EducationProgram{
		{
			Title: "클라우드 심화",
			// Already known: relevance only, no gap coverage.
			Skills: []string{"클라우드"},
		},
		{
			Title: "보안 입문",
			// Missing sector skills: counts for both cover and relevance.
			Skills: []string{"보안", "네트워크"},
		},
		{
			Title:  "바리스타 과정",
			Skills: []string{"바리스타"},
		},
	}

	result := recommendPrograms(userProfile, []string{"정보통신"}, programs)

	// The unrelated program does not qualify, so only two return.
	require.Len(t, result, 2)

	// 보안 입문 ranks first: cover 2 + relevance 2.
	assert.Equal(t, "보안 입문", result[0].Title)
	assert.Equal(t, 2, result[0].Cover)
	assert.Equal(t, 2, result[0].Relevance)

	assert.Equal(t, "클라우드 심화", result[1].Title)
	assert.Equal(t, 0, result[1].Cover)
	assert.Equal(t, 1, result[1].Relevance)
}

func TestRecommendPrograms_FilterDropsIrrelevant(t *testing.T) {
	programs := []types.EducationProgram{
		{Title: "관련 과정", Skills: []string{"네트워크"}},
		{Title: "무관 과정 1", Skills: []string{"요들송"}},
		{Title: "무관 과정 2", Skills: []string{"종이접기"}},
		{Title: "무관 과정 3", Skills: []string{"저글링"}},
	}

	result := recommendPrograms(types.UserProfile{}, []string{"정보통신"}, programs)

	// The floor of 3 never pads with non-qualifying programs, so only the
	// single survivor returns.
	require.Len(t, result, 1)
	assert.Equal(t, "관련 과정", result[0].Title)
}

func TestRecommendPrograms_FallbackToFullCatalog(t *testing.T) {
	programs := []types.EducationProgram{
		{Title: "무관 과정 1", Skills: []string{"요들송"}},
		{Title: "무관 과정 2", Skills: []string{"종이접기"}},
	}

	result := recommendPrograms(types.UserProfile{}, []string{"정보통신"}, programs)

	// Nothing qualifies, so the full catalog comes back (never empty while
	// programs exist) with all-zero metrics signalling no relevant programs.
	require.Len(t, result, 2)
	for _, program := range result {
		assert.Equal(t, 0, program.Cover)
		assert.Equal(t, 0, program.Relevance)
	}
}

func TestRecommendPrograms_EmptyCatalog(t *testing.T) {
	result := recommendPrograms(types.UserProfile{}, []string{"정보통신"}, nil)
	assert.Empty(t, result)
}

func TestRecommendPrograms_CapAtSix(t *testing.T) {
	programs := make([]types.EducationProgram, 0, 10)
	for i := 0; i < 10; i++ {
		programs = append(programs, types.EducationProgram{
			Title:  "과정",
			Skills: []string{"네트워크", "보안"},
		})
	}

	result := recommendPrograms(types.UserProfile{}, []string{"정보통신"}, programs)

	assert.Len(t, result, 6)
}

func TestRecommendPrograms_KnownSkillsReduceCover(t *testing.T) {
	program := types.EducationProgram{Title: "과정", Skills: []string{"보안", "네트워크"}}

	without := recommendPrograms(types.UserProfile{}, []string{"정보통신"}, []types.EducationProgram{program})
	with := recommendPrograms(types.UserProfile{Skills: []string{"보안"}}, []string{"정보통신"}, []types.EducationProgram{program})

	require.Len(t, without, 1)
	require.Len(t, with, 1)
	assert.Equal(t, 2, without[0].Cover)
	assert.Equal(t, 1, with[0].Cover)
	// Relevance is independent of the user's personal gap.
	assert.Equal(t, 2, without[0].Relevance)
	assert.Equal(t, 2, with[0].Relevance)
}

func TestRecommendPrograms_NoChosenSectors(t *testing.T) {
	programs := []types.EducationProgram{
		{Title: "과정 1", Skills: []string{"보안"}},
		{Title: "과정 2", Skills: []string{"요리"}},
	}

	result := recommendPrograms(types.UserProfile{}, nil, programs)

	// No sector vocabulary means nothing can qualify; fallback returns all.
	require.Len(t, result, 2)
}
