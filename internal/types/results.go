package types

// FactorBreakdown holds the per-factor sub-scores of the general scoring
// engine. Every component is reproducible from (profile, item, chosenSectors)
// alone; there is no hidden state.
type FactorBreakdown struct {
	Domain         float64 `json:"domain"`
	Skills         float64 `json:"skills"`
	Years          float64 `json:"years"`
	Education      float64 `json:"education"`
	EmploymentType float64 `json:"employment_type"`
	Total          float64 `json:"total"`
}

// ScoredOccupation embeds an occupation with its match score and breakdown.
type ScoredOccupation struct {
	Occupation
	Score     float64         `json:"score"`
	Breakdown FactorBreakdown `json:"breakdown"`
}

// ScoredJob embeds a job posting with its match score and breakdown.
type ScoredJob struct {
	JobPosting
	Score     float64         `json:"score"`
	Breakdown FactorBreakdown `json:"breakdown"`
}

// ScoredProgram embeds an education program with its gap-coverage metrics.
// Cover counts taught skills that fill the user's missing-skill gap; Relevance
// counts taught skills that belong to any chosen sector's vocabulary.
type ScoredProgram struct {
	EducationProgram
	Cover     int `json:"cover"`
	Relevance int `json:"relevance"`
}

// UnifiedRecommendations is the aggregate result returned to the caller:
// the derived profile plus ranked, capped result sets per catalog.
type UnifiedRecommendations struct {
	Profile     UserProfile        `json:"profile"`
	Occupations []ScoredOccupation `json:"occupations"`
	Jobs        []ScoredJob        `json:"jobs"`
	Programs    []ScoredProgram    `json:"programs"`
}

// MatchDetails is the per-factor breakdown of the company matcher.
// Factor scores are on a 0-100 scale; TotalScore combines them by percentage
// weight plus the additive certification bonus.
type MatchDetails struct {
	FieldMatch          float64 `json:"fieldMatch"`
	ExperienceMatch     float64 `json:"experienceMatch"`
	EducationMatch      float64 `json:"educationMatch"`
	EmploymentTypeMatch float64 `json:"employmentTypeMatch"`
	CertificationBonus  float64 `json:"certificationBonus"`
	TotalScore          float64 `json:"totalScore"`
}

// CompanyMatch embeds a company with its rounded total score and breakdown.
type CompanyMatch struct {
	Company
	MatchingScore   int          `json:"matchingScore"`
	MatchingDetails MatchDetails `json:"matchingDetails"`
}

// BatchScore is one result of a throttled batch AI-scoring run. Items whose
// AI call failed are omitted from the batch result rather than failing it.
type BatchScore struct {
	Title  string `json:"title"`
	Score  int    `json:"score"`
	Reason string `json:"reason,omitempty"`
}
