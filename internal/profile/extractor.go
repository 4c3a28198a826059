// Package profile derives a normalized user profile from free-form resume text
// using lexical pattern matching. This is intentionally a vocabulary-table
// module, not an NLP pipeline: absence of signal yields defaults, never errors.
package profile

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/career-matcher/internal/types"
)

// yearsPattern matches career lengths written as "N년" (N years), with
// optional whitespace before the unit. Only the first match is used.
var yearsPattern = regexp.MustCompile(`(\d{1,2})\s*년`)

// skillVocabulary is the fixed flat vocabulary scanned against resume text.
// A skill is recorded when its lower-cased form appears as a substring of the
// lower-cased text. No stemming, no fuzzy matching.
var skillVocabulary = []string{
	// Project and office
	"프로젝트 관리",
	"PMP",
	"엑셀",
	"파워포인트",
	"워드",
	"한글",
	// Languages
	"영어",
	"일본어",
	"중국어",
	// Development and cloud
	"Java",
	"Python",
	"JavaScript",
	"React",
	"Node",
	"SQL",
	"AWS",
	"클라우드",
	"도커",
	"데이터 분석",
	"머신러닝",
	// Domain
	"마케팅",
	"회계",
	"영업",
	"CAD",
	"용접",
	"조리",
}

// educationKeywords maps each education level to the keywords that signal it.
// Levels are tested highest-rank-first so the highest mentioned level wins.
var educationKeywords = []struct {
	level    string
	keywords []string
}{
	{types.EducationDoctorate, []string{"박사"}},
	{types.EducationMaster, []string{"석사"}},
	{types.EducationBachelor, []string{"학사", "대학교 졸업", "대졸"}},
}

// Extract derives a UserProfile from resume text. It is a pure function:
// deterministic, no I/O, and it never fails — malformed or empty input
// degrades to default values.
func Extract(resumeText string) types.UserProfile {
	lower := strings.ToLower(resumeText)

	return types.UserProfile{
		YearsOfExperience: extractYears(lower),
		EducationLevel:    extractEducation(lower),
		Skills:            extractSkills(lower),
	}
}

// extractYears parses the first "N년" occurrence and clamps it to
// [0, MaxYearsOfExperience]. Returns 0 when no pattern is present.
func extractYears(text string) int {
	match := yearsPattern.FindStringSubmatch(text)
	if match == nil {
		return 0
	}

	years, err := strconv.Atoi(match[1])
	if err != nil {
		return 0
	}
	if years < 0 {
		return 0
	}
	if years > types.MaxYearsOfExperience {
		return types.MaxYearsOfExperience
	}
	return years
}

// extractEducation returns the highest education level whose keywords appear
// in the text, or 무관 when none do.
func extractEducation(text string) string {
	for _, entry := range educationKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(text, strings.ToLower(keyword)) {
				return entry.level
			}
		}
	}
	return types.EducationAny
}

// extractSkills scans the fixed vocabulary against the text. Each vocabulary
// token is tested once, so duplicates collapse naturally.
func extractSkills(text string) []string {
	skills := make([]string, 0)
	for _, skill := range skillVocabulary {
		if strings.Contains(text, strings.ToLower(skill)) {
			skills = append(skills, skill)
		}
	}
	return skills
}
