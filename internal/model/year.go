package model

// YearRecord 프로그램의 연도별(또는 단일 버킷) 상세 문서
// 과거 리비전이 남긴 레거시 필드(assetLinks, outline)는 읽기 시점에
// Normalize 로 표준 필드에 병합한다.
type YearRecord struct {
	Budget    Budget  `json:"budget"`
	Design    Design  `json:"design"`
	Outcome   Outcome `json:"outcome"`
	Content   Content `json:"content"`
	UpdatedAt int64   `json:"updatedAt,omitempty"`
}

// Budget 예산 블록
type Budget struct {
	Items []BudgetItem `json:"items"`
}

// BudgetItem 예산 라인 아이템
// Subtotal 은 항상 서버에서 단가*수량으로 재계산되는 파생 값이다.
type BudgetItem struct {
	ID       string  `json:"id,omitempty"`
	Name     string  `json:"name"`
	UnitCost float64 `json:"unitCost"`
	Qty      float64 `json:"qty"`
	Subtotal float64 `json:"subtotal"`
	Note     string  `json:"note,omitempty"`
	Vendor   Vendor  `json:"vendor"`
}

// Vendor 공급 업체 정보
type Vendor struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
	Site  string `json:"site,omitempty"`
	Addr  string `json:"addr,omitempty"`
}

// Design 디자인 블록
// AssetLinks 는 이미지 URL 만 담던 구버전 필드로, 읽을 때 Assets 로 승격된다.
type Design struct {
	Note       string        `json:"note,omitempty"`
	Assets     []DesignAsset `json:"assets"`
	AssetLinks []string      `json:"assetLinks,omitempty"`
}

// DesignAsset 디자인 자산 (이미지 또는 텍스트)
type DesignAsset struct {
	ID   string `json:"id"`
	Type string `json:"type"` // img | text
	URL  string `json:"url,omitempty"`
	Text string `json:"text,omitempty"`
	Href string `json:"href,omitempty"`
	Memo string `json:"memo,omitempty"`
}

// Outcome 교육 성과 블록
type Outcome struct {
	SurveySummary SurveySummary `json:"surveySummary"`
	KPIs          []KPI         `json:"kpis"`
	Insights      []Insight     `json:"insights"`
}

// SurveySummary 설문 요약 수치
type SurveySummary struct {
	N    float64 `json:"n"`
	CSAT float64 `json:"csat"`
	NPS  float64 `json:"nps"`
}

// KPI 성과 지표 한 줄
type KPI struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Target string `json:"target"`
	Status string `json:"status"`
}

// Insight 성과 인사이트 한 줄
type Insight struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// Content 교육 내용 블록
// Outline 은 평문 구버전 필드, OutlineHTML 이 표준이다.
type Content struct {
	Outline     string `json:"outline,omitempty"`
	OutlineHTML string `json:"outlineHtml,omitempty"`
}

// Normalize 레거시 필드 승격 + 파생 값 재계산
func (r *YearRecord) Normalize() {
	// assetLinks → assets 승격 (assets 가 비어 있을 때만)
	if len(r.Design.Assets) == 0 && len(r.Design.AssetLinks) > 0 {
		for _, u := range r.Design.AssetLinks {
			r.Design.Assets = append(r.Design.Assets, DesignAsset{Type: "img", URL: u})
		}
	}
	// outline → outlineHtml 승격
	if r.Content.OutlineHTML == "" && r.Content.Outline != "" {
		r.Content.OutlineHTML = r.Content.Outline
	}
	// 소계는 저장값을 신뢰하지 않는다
	for i := range r.Budget.Items {
		r.Budget.Items[i].Subtotal = r.Budget.Items[i].UnitCost * r.Budget.Items[i].Qty
	}
}

// BudgetTotal 예산 총액 (단가*수량 합)
func (r *YearRecord) BudgetTotal() float64 {
	var total float64
	for _, it := range r.Budget.Items {
		total += it.UnitCost * it.Qty
	}
	return total
}

// ImageAssets 이미지 타입 자산만 추출
func (r *YearRecord) ImageAssets() []DesignAsset {
	var out []DesignAsset
	for _, a := range r.Design.Assets {
		if a.Type == "img" && a.URL != "" {
			out = append(out, a)
		}
	}
	return out
}
