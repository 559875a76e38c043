package store

import (
	"time"

	"github.com/leoavce/hrd-dashboard/internal/model"
)

// MetaPath 메타 문서 경로 (summary | schema | ongoing)
func MetaPath(programID, key string) string {
	return "programs/" + programID + "/meta/" + key
}

// MetaCollection 메타 컬렉션 경로
func MetaCollection(programID string) string {
	return "programs/" + programID + "/meta"
}

// GetSummary 요약 위젯 메타 조회, 부재 시 빈 값
func (s *Store) GetSummary(programID string) (model.Summary, error) {
	var sum model.Summary
	if _, err := s.GetDoc(MetaPath(programID, "summary"), &sum); err != nil {
		return model.Summary{}, err
	}
	sum.Normalize()
	return sum, nil
}

// SaveSummary 요약 노트 병합 저장 (표준 필드만 갱신)
func (s *Store) SaveSummary(programID, noteHTML string) error {
	return s.MergeDoc(MetaPath(programID, "summary"), map[string]any{
		"widgetNoteHtml": noteHTML,
		"updatedAt":      time.Now().UnixMilli(),
	})
}

// GetSchema 섹션 구성 조회 (정규화 적용, 부재 시 기본 구성)
func (s *Store) GetSchema(programID string) (model.Schema, error) {
	var sc model.Schema
	found, err := s.GetDoc(MetaPath(programID, "schema"), &sc)
	if err != nil {
		return model.Schema{}, err
	}
	if !found {
		return model.DefaultSchema(), nil
	}
	return model.NormalizeSchema(sc), nil
}

// SaveSchema 섹션 목록 통째 교체
func (s *Store) SaveSchema(programID string, sections []string) (model.Schema, error) {
	normalized := model.NormalizeSchema(model.Schema{Sections: sections})
	normalized.UpdatedAt = time.Now().UnixMilli()
	if err := s.SetDoc(MetaPath(programID, "schema"), normalized); err != nil {
		return model.Schema{}, err
	}
	return normalized, nil
}

// GetOngoing 진행중 교육 문서 조회, 부재 시 빈 목록
func (s *Store) GetOngoing(programID string) (model.OngoingDoc, error) {
	var doc model.OngoingDoc
	if _, err := s.GetDoc(MetaPath(programID, "ongoing"), &doc); err != nil {
		return model.OngoingDoc{}, err
	}
	if doc.Items == nil {
		doc.Items = []model.OngoingItem{}
	}
	return doc, nil
}

// SaveOngoing 진행중 교육 목록 통째 저장 (read-modify-write)
func (s *Store) SaveOngoing(programID string, items []model.OngoingItem) error {
	if items == nil {
		items = []model.OngoingItem{}
	}
	return s.SetDoc(MetaPath(programID, "ongoing"), model.OngoingDoc{
		Items:     items,
		UpdatedAt: time.Now().UnixMilli(),
	})
}
