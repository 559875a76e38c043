package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/leoavce/hrd-dashboard/internal/model"
)

// ProgramPath 프로그램 문서 경로
func ProgramPath(id string) string { return "programs/" + id }

// ListPrograms 전체 프로그램 나열 (생성 시각 오름차순)
func (s *Store) ListPrograms() ([]model.Program, error) {
	docs, err := s.ListCollection("programs")
	if err != nil {
		return nil, err
	}
	programs := make([]model.Program, 0, len(docs))
	for _, d := range docs {
		var p model.Program
		if err := json.Unmarshal(d.Body, &p); err != nil {
			return nil, fmt.Errorf("failed to decode program %s: %w", d.ID, err)
		}
		p.ID = d.ID
		programs = append(programs, p)
	}
	// 생성 순서 유지: createdAt 오름차순, 동률이면 경로 순
	for i := 1; i < len(programs); i++ {
		for j := i; j > 0 && programs[j-1].CreatedAt > programs[j].CreatedAt; j-- {
			programs[j-1], programs[j] = programs[j], programs[j-1]
		}
	}
	return programs, nil
}

// GetProgram 프로그램 단건 조회 (없으면 false)
func (s *Store) GetProgram(id string) (model.Program, bool, error) {
	var p model.Program
	found, err := s.GetDoc(ProgramPath(id), &p)
	if err != nil || !found {
		return model.Program{}, found, err
	}
	p.ID = id
	return p, true, nil
}

// PutProgram 프로그램 생성/교체
func (s *Store) PutProgram(p model.Program) error {
	if p.CreatedAt == 0 {
		p.CreatedAt = time.Now().UnixMilli()
	}
	return s.SetDoc(ProgramPath(p.ID), map[string]any{
		"title":     p.Title,
		"emoji":     p.Emoji,
		"createdAt": p.CreatedAt,
	})
}

// PatchProgram 제목/이모지 부분 수정
func (s *Store) PatchProgram(id string, fields map[string]any) error {
	return s.MergeDoc(ProgramPath(id), fields)
}

// CountPrograms 프로그램 수
func (s *Store) CountPrograms() (int, error) {
	var count int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM documents WHERE collection = 'programs'").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count programs: %w", err)
	}
	return count, nil
}
