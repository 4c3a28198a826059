// Package companies implements the detailed company-facing matcher: a
// field/experience/education/employment-type breakdown on a 0-100 scale per
// factor plus an additive certification bonus.
package companies

// CategoryIT is the category whose users receive certification bonuses for
// recognized IT credentials.
const CategoryIT = "정보통신"

// categoryKeywords maps each job category to its semantic keyword list, used
// for the soft (75-point) tier of field matching. These are curated
// synonym/related-term lists — broader and softer than the sector classifier
// vocabulary, which stays strict on purpose.
var categoryKeywords = map[string][]string{
	"정보통신": {"IT", "개발", "소프트웨어", "프로그램", "전산", "컴퓨터", "데이터", "통신"},
	"건설":   {"건축", "토목", "시공", "인테리어", "설비", "전기공사"},
	"제조":   {"생산", "공장", "조립", "가공", "기계", "금속"},
	"보건복지": {"요양", "간호", "병원", "돌봄", "복지", "의료"},
	"교육":   {"강사", "학원", "교습", "방과후", "돌봄교실"},
	"금융":   {"은행", "보험", "증권", "회계", "경리", "사무"},
	"유통물류": {"물류", "배송", "운송", "창고", "판매", "매장", "마트"},
	"음식서비스": {"조리", "주방", "외식", "식당", "카페", "급식"},
	"농림어업": {"농장", "재배", "원예", "축산", "임업"},
}

// recognizedCertifications are credential substrings that earn the IT
// certification bonus when found among a user's skills.
var recognizedCertifications = []string{
	"정보처리기사",
	"정보처리산업기사",
	"ADSP",
	"ADP",
	"SQLD",
	"SQLP",
	"PMP",
	"AWS",
	"CCNA",
	"CCNP",
	"CISSP",
	"CISA",
	"리눅스마스터",
	"네트워크관리사",
	"컴퓨터활용능력",
	"사무자동화산업기사",
	"빅데이터분석기사",
	"정보보안기사",
	"GTQ",
	"MOS",
}
