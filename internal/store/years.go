package store

import (
	"time"

	"github.com/leoavce/hrd-dashboard/internal/model"
)

// YearPath 연도 문서 경로
func YearPath(programID, year string) string {
	return "programs/" + programID + "/years/" + year
}

// YearCollection 연도 컬렉션 경로
func YearCollection(programID string) string {
	return "programs/" + programID + "/years"
}

// GetYear 연도 문서 조회, 부재 시 빈 레코드 (오류 아님)
func (s *Store) GetYear(programID, year string) (model.YearRecord, error) {
	var rec model.YearRecord
	if _, err := s.GetDoc(YearPath(programID, year), &rec); err != nil {
		return model.YearRecord{}, err
	}
	rec.Normalize()
	return rec, nil
}

// LoadYears 여러 연도 문서를 연도 키로 묶어 조회
// 누락 연도는 빈 레코드로 채운다.
func (s *Store) LoadYears(programID string, years []string) (map[string]model.YearRecord, error) {
	out := make(map[string]model.YearRecord, len(years))
	for _, y := range years {
		rec, err := s.GetYear(programID, y)
		if err != nil {
			return nil, err
		}
		out[y] = rec
	}
	return out, nil
}

// SaveYearBlocks 연도 문서 블록 단위 저장 (updatedAt 자동 갱신)
// 각 블록은 통째로 교체된다 — 블록 안쪽을 부분 병합하지 않는다.
func (s *Store) SaveYearBlocks(programID, year string, blocks map[string]any) error {
	if blocks == nil {
		blocks = map[string]any{}
	}
	blocks["updatedAt"] = time.Now().UnixMilli()
	return s.UpdateFields(YearPath(programID, year), blocks)
}

// ListYearDocs 프로그램의 연도 문서 전체 나열
func (s *Store) ListYearDocs(programID string) ([]Document, error) {
	return s.ListCollection(YearCollection(programID))
}
