// Package sectors scores and ranks industry sectors against resume text using
// keyword-vocabulary overlap.
package sectors

// Sector is one of the fixed industry categories with its keyword vocabulary.
type Sector struct {
	Name     string
	Keywords []string
}

// All is the closed set of industry sectors in declaration order. Declaration
// order is the tie-breaker when ranking, so it must stay stable.
var All = []Sector{
	{
		Name: "정보통신",
		Keywords: []string{
			"개발", "프로그래밍", "소프트웨어", "데이터", "네트워크",
			"서버", "클라우드", "보안", "코딩", "시스템",
		},
	},
	{
		Name: "건설",
		Keywords: []string{
			"건설", "토목", "건축", "시공", "현장", "안전관리", "설비", "도면",
		},
	},
	{
		Name: "제조",
		Keywords: []string{
			"제조", "생산", "품질", "공정", "기계", "조립", "금형", "용접",
		},
	},
	{
		Name: "보건복지",
		Keywords: []string{
			"간호", "요양", "복지", "돌봄", "병원", "보건", "사회복지", "재활",
		},
	},
	{
		Name: "교육",
		Keywords: []string{
			"교육", "강의", "강사", "학원", "교사", "멘토링", "상담",
		},
	},
	{
		Name: "금융",
		Keywords: []string{
			"금융", "은행", "보험", "투자", "회계", "재무", "세무", "자산",
		},
	},
	{
		Name: "유통물류",
		Keywords: []string{
			"유통", "물류", "배송", "창고", "재고", "구매", "판매", "영업",
		},
	},
	{
		Name: "음식서비스",
		Keywords: []string{
			"조리", "요리", "주방", "식당", "카페", "바리스타", "외식", "위생",
		},
	},
	{
		Name: "농림어업",
		Keywords: []string{
			"농업", "재배", "원예", "축산", "어업", "귀농", "농장",
		},
	},
}

// VocabularyFor returns the keyword vocabulary of the named sector, or nil if
// the name is not one of the fixed sectors.
func VocabularyFor(name string) []string {
	for _, s := range All {
		if s.Name == name {
			return s.Keywords
		}
	}
	return nil
}
