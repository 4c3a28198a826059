package analysis

import "github.com/jonathan/career-matcher/internal/types"

// FallbackAnalysis is the fixed generic analysis substituted when the AI
// collaborator fails. Kept deliberately bland: it must read as plausible for
// any candidate rather than invent specifics.
func FallbackAnalysis() types.CareerAnalysis {
	return types.CareerAnalysis{
		Summary:         "다양한 현장 경험을 갖춘 성실한 인재입니다. 새로운 환경에서도 꾸준히 역량을 발휘할 수 있습니다.",
		Strengths:       []string{"성실함", "책임감", "현장 경험"},
		RecommendedJobs: []string{"사무 지원", "고객 응대", "현장 관리"},
		Skills:          []string{},
		ExperienceLevel: "경력",
		Highlights:      []string{"오랜 기간 축적된 실무 경험"},
	}
}
