// Package types provides type definitions for structured data used throughout the career-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Education levels recognized by the general scoring engine, ordered from
// lowest to highest: 무관 (none/unspecified), 학사 (bachelor), 석사 (master),
// 박사 (doctorate).
const (
	EducationAny       = "무관"
	EducationBachelor  = "학사"
	EducationMaster    = "석사"
	EducationDoctorate = "박사"
)

// MaxYearsOfExperience caps the value parsed from resume text; anything above
// is treated as a parsing artifact rather than a real career length.
const MaxYearsOfExperience = 40

// UserProfile is the normalized profile derived from free-form resume text.
// It is constructed fresh per scoring call and never mutated afterwards.
type UserProfile struct {
	YearsOfExperience int      `json:"years_of_experience"`
	EducationLevel    string   `json:"education_level"`
	Skills            []string `json:"skills"`
}

// HasSkill reports whether the profile contains the given canonical skill token.
func (p *UserProfile) HasSkill(skill string) bool {
	for _, s := range p.Skills {
		if s == skill {
			return true
		}
	}
	return false
}

// ExperienceEntry is a single work-history record from a candidate's profile.
// Duration is free text whose leading integer is read as a year count
// (e.g. "3년 2개월" counts as 3).
type ExperienceEntry struct {
	CompanyName string `json:"company_name,omitempty"`
	Role        string `json:"role,omitempty"`
	Duration    string `json:"duration"`
}

// CandidateProfile is the richer profile consumed by the company matcher.
// Unlike UserProfile it carries raw experience entries and an education label
// on the 5-level company ladder (고졸/초대졸/대졸/석사/박사).
type CandidateProfile struct {
	Skills      []string          `json:"skills"`
	Experiences []ExperienceEntry `json:"experiences"`
	Education   string            `json:"education,omitempty"`
}

// CareerAnalysis is the structured output of the AI text-analysis collaborator.
// When the collaborator fails, a fixed generic analysis is substituted so the
// caller never sees an error.
type CareerAnalysis struct {
	Summary         string   `json:"summary"`
	Strengths       []string `json:"strengths"`
	RecommendedJobs []string `json:"recommended_jobs"`
	Skills          []string `json:"skills"`
	ExperienceLevel string   `json:"experience_level"`
	Highlights      []string `json:"highlights"`
}

// SectorScore is one entry of a sector ranking: the sector name and the number
// of its vocabulary keywords found in the source text.
type SectorScore struct {
	Sector string `json:"sector"`
	Score  int    `json:"score"`
}
