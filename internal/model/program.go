package model

// Program 교육 카테고리(프로그램) 문서
type Program struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Emoji     string `json:"emoji"`
	CreatedAt int64  `json:"createdAt"`
}

// DefaultYears 연도별 상세에 고정 노출되는 연도 키 (오름차순)
var DefaultYears = []string{"2021", "2022", "2023", "2024"}

// SingleYearKey 연도와 무관한 단일 페이지 버킷 키
const SingleYearKey = "single"

// AllYearKeys 연도 키 + 단일 버킷
func AllYearKeys() []string {
	keys := make([]string, 0, len(DefaultYears)+1)
	keys = append(keys, DefaultYears...)
	return append(keys, SingleYearKey)
}
