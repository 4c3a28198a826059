package sectors

import (
	"sort"
	"strings"

	"github.com/jonathan/career-matcher/internal/types"
)

// DefaultTopK is the number of sectors returned when the caller does not ask
// for a specific count.
const DefaultTopK = 2

// Rank scores every sector against the text and returns the top K, sorted by
// descending score. Each distinct matching keyword counts once (presence test
// per keyword, not per occurrence); ties keep declaration order.
//
// An all-zero ranking is returned as-is — the caller treats it as "no strong
// signal", not as an error.
func Rank(resumeText string, topK int) []types.SectorScore {
	if topK <= 0 {
		topK = DefaultTopK
	}

	lower := strings.ToLower(resumeText)

	scores := make([]types.SectorScore, 0, len(All))
	for _, sector := range All {
		scores = append(scores, types.SectorScore{
			Sector: sector.Name,
			Score:  countKeywordHits(lower, sector.Keywords),
		})
	}

	// Stable sort preserves declaration order among equal scores.
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})

	if topK > len(scores) {
		topK = len(scores)
	}
	return scores[:topK]
}

// countKeywordHits tallies how many vocabulary keywords appear as substrings
// of the lower-cased text.
func countKeywordHits(lowerText string, keywords []string) int {
	hits := 0
	for _, keyword := range keywords {
		if strings.Contains(lowerText, strings.ToLower(keyword)) {
			hits++
		}
	}
	return hits
}
