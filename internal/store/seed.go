package store

import (
	"time"

	"github.com/leoavce/hrd-dashboard/internal/model"
)

// 초기 기본 프로그램 (저장소가 비어 있을 때 1회 시드)
var defaultPrograms = []model.Program{
	{ID: "devconf", Title: "개발자 컨퍼런스", Emoji: "🧑‍💻"},
	{ID: "ai-training", Title: "AI 활용 교육", Emoji: "🤖"},
	{ID: "leaders", Title: "직책자 대상 교육", Emoji: "🏷️"},
	{ID: "launch", Title: "런칭 세션", Emoji: "🚀"},
}

// SeedDefaultPrograms 저장소가 비어 있으면 기본 프로그램과
// 요약 메타, 연도 컨테이너를 생성한다. 이미 데이터가 있으면 아무것도 하지 않는다.
func (s *Store) SeedDefaultPrograms() error {
	count, err := s.CountPrograms()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UnixMilli()
	for _, p := range defaultPrograms {
		p.CreatedAt = now
		if err := s.PutProgram(p); err != nil {
			return err
		}
		if err := s.MergeDoc(MetaPath(p.ID, "summary"), map[string]any{
			"widgetNoteHtml": "요약 위젯 내용(예산/디자인/성과/내용 종합)",
			"updatedAt":      now,
		}); err != nil {
			return err
		}
		for _, y := range model.DefaultYears {
			if err := s.SetDoc(YearPath(p.ID, y), map[string]any{
				"budget":    map[string]any{"items": []any{}},
				"design":    map[string]any{"note": "", "assets": []any{}},
				"outcome":   map[string]any{"surveySummary": map[string]any{}},
				"content":   map[string]any{"outlineHtml": ""},
				"updatedAt": now,
			}); err != nil {
				return err
			}
		}
	}
	return nil
}
