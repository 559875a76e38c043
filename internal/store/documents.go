package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"path"
	"strings"
)

// Document 문서 한 건 (컬렉션 나열 결과)
type Document struct {
	Path string
	ID   string
	Body json.RawMessage
}

// GetDoc 경로로 문서 조회
// 문서가 없으면 (false, nil) — 읽기 경로에서 부재는 오류가 아니다.
func (s *Store) GetDoc(docPath string, out any) (bool, error) {
	var body string
	err := s.db.QueryRow("SELECT body FROM documents WHERE path = ?", docPath).Scan(&body)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("failed to get document %s: %w", docPath, err)
	}
	if out != nil {
		if err := json.Unmarshal([]byte(body), out); err != nil {
			return false, fmt.Errorf("failed to decode document %s: %w", docPath, err)
		}
	}
	return true, nil
}

// SetDoc 문서 전체 교체 (upsert)
func (s *Store) SetDoc(docPath string, doc any) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document %s: %w", docPath, err)
	}
	_, err = s.db.Exec(`
		INSERT INTO documents (path, collection, body) VALUES (?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET body = ?, updated_at = CURRENT_TIMESTAMP
	`, docPath, path.Dir(docPath), string(body), string(body))
	if err != nil {
		return fmt.Errorf("failed to set document %s: %w", docPath, err)
	}
	return nil
}

// MergeDoc 부분 병합 쓰기
// 중첩 객체는 재귀 병합, 배열과 스칼라는 통째로 교체한다.
func (s *Store) MergeDoc(docPath string, patch any) error {
	raw, err := json.Marshal(patch)
	if err != nil {
		return fmt.Errorf("failed to encode patch for %s: %w", docPath, err)
	}
	var patchMap map[string]any
	if err := json.Unmarshal(raw, &patchMap); err != nil {
		return fmt.Errorf("failed to decode patch for %s: %w", docPath, err)
	}

	existing := map[string]any{}
	if _, err := s.GetDoc(docPath, &existing); err != nil {
		return err
	}

	merged := mergeMaps(existing, patchMap)
	return s.SetDoc(docPath, merged)
}

// UpdateFields 점 표기 필드 단위 갱신 (예: "design.assets")
// 문서가 없으면 빈 문서에서 시작한다.
func (s *Store) UpdateFields(docPath string, fields map[string]any) error {
	existing := map[string]any{}
	if _, err := s.GetDoc(docPath, &existing); err != nil {
		return err
	}
	for key, value := range fields {
		raw, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("failed to encode field %s: %w", key, err)
		}
		var decoded any
		if err := json.Unmarshal(raw, &decoded); err != nil {
			return fmt.Errorf("failed to decode field %s: %w", key, err)
		}
		setDotted(existing, strings.Split(key, "."), decoded)
	}
	return s.SetDoc(docPath, existing)
}

// DeleteDoc 경로로 문서 삭제 (없는 문서 삭제는 무시)
func (s *Store) DeleteDoc(docPath string) error {
	if _, err := s.db.Exec("DELETE FROM documents WHERE path = ?", docPath); err != nil {
		return fmt.Errorf("failed to delete document %s: %w", docPath, err)
	}
	return nil
}

// ListCollection 컬렉션 안의 전체 문서 나열 (경로 오름차순)
func (s *Store) ListCollection(collection string) ([]Document, error) {
	rows, err := s.db.Query(
		"SELECT path, body FROM documents WHERE collection = ? ORDER BY path", collection)
	if err != nil {
		return nil, fmt.Errorf("failed to list collection %s: %w", collection, err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var d Document
		var body string
		if err := rows.Scan(&d.Path, &body); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		d.ID = path.Base(d.Path)
		d.Body = json.RawMessage(body)
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

// mergeMaps dst 위에 src 를 재귀 병합
func mergeMaps(dst, src map[string]any) map[string]any {
	if dst == nil {
		dst = map[string]any{}
	}
	for k, v := range src {
		if sub, ok := v.(map[string]any); ok {
			if cur, ok := dst[k].(map[string]any); ok {
				dst[k] = mergeMaps(cur, sub)
				continue
			}
		}
		dst[k] = v
	}
	return dst
}

// setDotted 점 경로를 따라 중간 맵을 만들며 값 설정
func setDotted(m map[string]any, keys []string, value any) {
	if len(keys) == 1 {
		m[keys[0]] = value
		return
	}
	next, ok := m[keys[0]].(map[string]any)
	if !ok {
		next = map[string]any{}
		m[keys[0]] = next
	}
	setDotted(next, keys[1:], value)
}
