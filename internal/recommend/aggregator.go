// Package recommend orchestrates ranking across the three item catalogs and
// assembles the unified recommendation result with catalog-specific selection
// rules.
package recommend

import (
	"sort"

	"github.com/jonathan/career-matcher/internal/profile"
	"github.com/jonathan/career-matcher/internal/scoring"
	"github.com/jonathan/career-matcher/internal/types"
)

// Selection caps per catalog. Occupations are a plain top-K; jobs get a floor
// so the list feels complete without padding past what exists.
const (
	maxOccupations = 10
	maxJobs        = 10
	minJobs        = 5
	maxPrograms    = 6
	minPrograms    = 3
)

// Catalogs bundles the static read-only reference data the aggregator ranks.
// Catalogs are injected explicitly rather than read from ambient state so
// tests can run against synthetic data.
type Catalogs struct {
	Occupations []types.Occupation
	Jobs        []types.JobPosting
	Programs    []types.EducationProgram
}

// Unified extracts a profile from the resume text and produces ranked, capped
// recommendations for every catalog.
func Unified(resumeText string, chosenSectors []string, catalogs Catalogs) types.UnifiedRecommendations {
	userProfile := profile.Extract(resumeText)

	return types.UnifiedRecommendations{
		Profile:     userProfile,
		Occupations: recommendOccupations(userProfile, chosenSectors, catalogs.Occupations),
		Jobs:        recommendJobs(userProfile, chosenSectors, catalogs.Jobs),
		Programs:    recommendPrograms(userProfile, chosenSectors, catalogs.Programs),
	}
}

// recommendOccupations scores every occupation and returns the top 10.
func recommendOccupations(userProfile types.UserProfile, chosenSectors []string, occupations []types.Occupation) []types.ScoredOccupation {
	scored := make([]types.ScoredOccupation, 0, len(occupations))
	for i := range occupations {
		breakdown := scoring.ScoreItem(occupations[i].Scorable(), userProfile, chosenSectors)
		scored = append(scored, types.ScoredOccupation{
			Occupation: occupations[i],
			Score:      breakdown.Total,
			Breakdown:  breakdown,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > maxOccupations {
		scored = scored[:maxOccupations]
	}
	return scored
}

// recommendJobs scores every posting and returns between 5 and 10 items,
// never more than exist, preferring 10 when available.
func recommendJobs(userProfile types.UserProfile, chosenSectors []string, jobs []types.JobPosting) []types.ScoredJob {
	scored := make([]types.ScoredJob, 0, len(jobs))
	for i := range jobs {
		breakdown := scoring.ScoreItem(jobs[i].Scorable(), userProfile, chosenSectors)
		scored = append(scored, types.ScoredJob{
			JobPosting: jobs[i],
			Score:      breakdown.Total,
			Breakdown:  breakdown,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	// min(10, max(5, available)), never more than exist.
	limit := len(scored)
	if limit < minJobs {
		limit = minJobs
	}
	if limit > maxJobs {
		limit = maxJobs
	}
	if limit > len(scored) {
		limit = len(scored)
	}

	return scored[:limit]
}
