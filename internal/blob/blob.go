// Package blob 파일 시스템 기반 자산 저장소.
// 경로 규약은 programs/{id}/years/{year}/design/{object} 형태로,
// 업로드된 객체는 /files/ 아래 정적 경로로 서빙된다.
package blob

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// ErrFolderNotFound 폴더 부재 (업로드가 한 번도 없던 프로그램의 정리 단계에서 기대되는 상태)
var ErrFolderNotFound = errors.New("folder not found")

// Store 파일 시스템 블랍 저장소
type Store struct {
	root    string // 객체가 저장되는 루트 디렉터리
	baseURL string // 다운로드 URL 접두사 (예: /files)
}

// New 블랍 저장소 생성
func New(root, baseURL string) (*Store, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("failed to create blob root: %w", err)
	}
	return &Store{root: root, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Root 루트 디렉터리 (정적 서빙용)
func (s *Store) Root() string { return s.root }

// Save 객체 저장 후 다운로드 URL 반환
// 객체 이름은 원본 파일명 앞에 밀리초 타임스탬프를 붙여 충돌을 피한다.
func (s *Store) Save(folder, filename string, r io.Reader) (string, error) {
	rel, err := s.cleanRel(folder)
	if err != nil {
		return "", err
	}
	dir := filepath.Join(s.root, rel)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create folder: %w", err)
	}

	name := fmt.Sprintf("%d_%s", time.Now().UnixMilli(), sanitizeName(filename))
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create object: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return "", fmt.Errorf("failed to write object: %w", err)
	}
	return s.baseURL + "/" + path.Join(rel, name), nil
}

// URL 상대 객체 경로의 다운로드 URL
func (s *Store) URL(rel string) string {
	return s.baseURL + "/" + strings.TrimLeft(rel, "/")
}

// DeleteByURL 다운로드 URL 로 객체 삭제 (없는 객체는 무시)
func (s *Store) DeleteByURL(url string) error {
	rel, ok := strings.CutPrefix(url, s.baseURL+"/")
	if !ok {
		return fmt.Errorf("url outside blob store: %s", url)
	}
	clean, err := s.cleanRel(rel)
	if err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(s.root, clean)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

// ListFolder 폴더 아래 전체 객체의 상대 경로 나열 (재귀)
// 폴더가 없으면 ErrFolderNotFound.
func (s *Store) ListFolder(folder string) ([]string, error) {
	rel, err := s.cleanRel(folder)
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(s.root, rel)
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return nil, ErrFolderNotFound
		}
		return nil, fmt.Errorf("failed to stat folder: %w", err)
	}

	var out []string
	err = filepath.WalkDir(dir, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		relPath, err := filepath.Rel(s.root, p)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(relPath))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list folder: %w", err)
	}
	return out, nil
}

// RemoveFolder 폴더와 그 아래 객체 전체 삭제
// 폴더가 없으면 ErrFolderNotFound.
func (s *Store) RemoveFolder(folder string) error {
	rel, err := s.cleanRel(folder)
	if err != nil {
		return err
	}
	dir := filepath.Join(s.root, rel)
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return ErrFolderNotFound
		}
		return fmt.Errorf("failed to stat folder: %w", err)
	}
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("failed to remove folder: %w", err)
	}
	return nil
}

// cleanRel 루트 밖으로 나가는 경로 차단
func (s *Store) cleanRel(rel string) (string, error) {
	if strings.Contains(rel, "..") {
		return "", fmt.Errorf("invalid blob path: %s", rel)
	}
	clean := path.Clean("/" + strings.TrimLeft(rel, "/"))
	if clean == "/" {
		return "", fmt.Errorf("invalid blob path: %s", rel)
	}
	return strings.TrimPrefix(clean, "/"), nil
}

// sanitizeName 파일명에서 경로 구분자 제거
func sanitizeName(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "..", "")
	if name == "" || name == "." || name == "/" {
		name = "file"
	}
	return name
}
