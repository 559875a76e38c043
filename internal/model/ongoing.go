package model

// OngoingDoc 프로그램별 meta/ongoing 문서 (진행/준비중 교육 목록)
type OngoingDoc struct {
	Items     []OngoingItem `json:"items"`
	UpdatedAt int64         `json:"updatedAt,omitempty"`
}

// OngoingItem 진행/준비중 교육 한 건
type OngoingItem struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	From      string          `json:"from"` // YYYY-MM-DD
	To        string          `json:"to"`
	Checklist []ChecklistItem `json:"checklist"`
}

// ChecklistItem 체크리스트 항목
type ChecklistItem struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// DoneCount 완료 항목 수
func (o OngoingItem) DoneCount() int {
	n := 0
	for _, c := range o.Checklist {
		if c.Done {
			n++
		}
	}
	return n
}
