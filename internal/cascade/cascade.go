// Package cascade 프로그램 삭제 시퀀스.
// 블랍 정리 → 연도 문서 → 메타 문서 → 프로그램 문서 순서로 진행하고,
// 단계별 결과를 남긴다. 블랍 폴더 부재는 정상 케이스로 건너뛰지만
// 그 외 실패는 남은 단계를 중단하고 실패 단계를 보고한다.
package cascade

import (
	"errors"
	"fmt"

	"github.com/leoavce/hrd-dashboard/internal/blob"
	"github.com/leoavce/hrd-dashboard/internal/store"
)

// Step 삭제 단계 결과
type Step struct {
	Name    string `json:"name"`
	OK      bool   `json:"ok"`
	Skipped bool   `json:"skipped,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Deleter 프로그램 삭제기
type Deleter struct {
	docs  *store.Store
	blobs *blob.Store
}

// NewDeleter 삭제기 생성
func NewDeleter(docs *store.Store, blobs *blob.Store) *Deleter {
	return &Deleter{docs: docs, blobs: blobs}
}

// 메타 키는 고정 목록이다
var metaKeys = []string{"summary", "schema", "ongoing"}

// DeleteProgram 프로그램과 하위 문서/블랍 전체 삭제
// 반환된 단계 목록은 실제 수행 순서대로이며, 오류 시 마지막 단계가 실패 단계다.
func (d *Deleter) DeleteProgram(programID string) ([]Step, error) {
	var steps []Step

	// 1. 블랍 폴더 정리 — 문서보다 먼저. 폴더 부재는 업로드가 없던 프로그램이므로 건너뛴다.
	folder := "programs/" + programID
	if err := d.blobs.RemoveFolder(folder); err != nil {
		if errors.Is(err, blob.ErrFolderNotFound) {
			steps = append(steps, Step{Name: "assets", OK: true, Skipped: true})
		} else {
			steps = append(steps, Step{Name: "assets", Error: err.Error()})
			return steps, fmt.Errorf("asset cleanup failed: %w", err)
		}
	} else {
		steps = append(steps, Step{Name: "assets", OK: true})
	}

	// 2. 연도 문서
	yearDocs, err := d.docs.ListYearDocs(programID)
	if err != nil {
		steps = append(steps, Step{Name: "years", Error: err.Error()})
		return steps, fmt.Errorf("year listing failed: %w", err)
	}
	for _, doc := range yearDocs {
		if err := d.docs.DeleteDoc(doc.Path); err != nil {
			steps = append(steps, Step{Name: "years", Error: err.Error()})
			return steps, fmt.Errorf("year delete failed: %w", err)
		}
	}
	steps = append(steps, Step{Name: "years", OK: true})

	// 3. 메타 문서
	for _, key := range metaKeys {
		if err := d.docs.DeleteDoc(store.MetaPath(programID, key)); err != nil {
			steps = append(steps, Step{Name: "meta", Error: err.Error()})
			return steps, fmt.Errorf("meta delete failed: %w", err)
		}
	}
	steps = append(steps, Step{Name: "meta", OK: true})

	// 4. 프로그램 문서
	if err := d.docs.DeleteDoc(store.ProgramPath(programID)); err != nil {
		steps = append(steps, Step{Name: "program", Error: err.Error()})
		return steps, fmt.Errorf("program delete failed: %w", err)
	}
	steps = append(steps, Step{Name: "program", OK: true})

	return steps, nil
}
