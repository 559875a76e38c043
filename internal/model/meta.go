package model

// Summary 프로그램 요약 위젯 메타 문서
// WidgetNote 는 평문 구버전 필드, WidgetNoteHTML 이 표준이다.
type Summary struct {
	WidgetNote     string `json:"widgetNote,omitempty"`
	WidgetNoteHTML string `json:"widgetNoteHtml,omitempty"`
	UpdatedAt      int64  `json:"updatedAt,omitempty"`
}

// Normalize 레거시 평문 노트를 표준 필드로 승격
func (s *Summary) Normalize() {
	if s.WidgetNoteHTML == "" && s.WidgetNote != "" {
		s.WidgetNoteHTML = s.WidgetNote
	}
}

// SectionDef 섹션 정의 (표준 아이디와 표시 이름)
type SectionDef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// SectionDefs 토글 가능한 전체 섹션 정의 (표시 순서대로)
var SectionDefs = []SectionDef{
	{ID: "widget", Title: "위젯(종합)"},
	{ID: "single:budget", Title: "예산"},
	{ID: "single:design", Title: "디자인"},
	{ID: "single:outcome", Title: "교육 성과"},
	{ID: "single:content", Title: "교육 내용"},
	{ID: "yearly", Title: "연도별 상세"},
}

// Schema 프로그램별 섹션 구성 문서 (표준: 평탄한 섹션 id 배열)
type Schema struct {
	Sections  []string `json:"sections"`
	UpdatedAt int64    `json:"updatedAt,omitempty"`
}

// DefaultSchema 기본 섹션 구성
func DefaultSchema() Schema {
	ids := make([]string, len(SectionDefs))
	for i, d := range SectionDefs {
		ids[i] = d.ID
	}
	return Schema{Sections: ids}
}

// ValidSectionID 알려진 섹션 id 여부
func ValidSectionID(id string) bool {
	for _, d := range SectionDefs {
		if d.ID == id {
			return true
		}
	}
	return false
}

// NormalizeSchema 알 수 없는 섹션 제거, 비면 기본 구성으로 대체
func NormalizeSchema(s Schema) Schema {
	valid := make([]string, 0, len(s.Sections))
	for _, id := range s.Sections {
		if ValidSectionID(id) {
			valid = append(valid, id)
		}
	}
	if len(valid) == 0 {
		return DefaultSchema()
	}
	return Schema{Sections: valid, UpdatedAt: s.UpdatedAt}
}

// Enabled 섹션 활성 여부
func (s Schema) Enabled(id string) bool {
	for _, v := range s.Sections {
		if v == id {
			return true
		}
	}
	return false
}
