package api

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/leoavce/hrd-dashboard/internal/model"
)

// 프로그램 id 규칙: 소문자/숫자/하이픈, 1~64자
var programIDPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{0,63}$`)

// ListPrograms 전체 프로그램 목록
// GET /api/programs
func (h *Handler) ListPrograms(c *gin.Context) {
	programs, err := h.store.ListPrograms()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"programs": programs})
}

// GetProgram 프로그램 단건
// GET /api/programs/:id
func (h *Handler) GetProgram(c *gin.Context) {
	id := c.Param("id")
	p, found, err := h.store.GetProgram(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "프로그램을 찾을 수 없습니다"})
		return
	}
	c.JSON(http.StatusOK, p)
}

type createProgramRequest struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Emoji string `json:"emoji"`
}

// CreateProgram 프로그램 생성
// POST /api/programs
// id 는 클라이언트가 정하되 규칙 검사와 중복 검사를 거친다.
func (h *Handler) CreateProgram(c *gin.Context) {
	var req createProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "요청 형식이 올바르지 않습니다"})
		return
	}
	req.ID = strings.TrimSpace(req.ID)
	req.Title = strings.TrimSpace(req.Title)
	if !programIDPattern.MatchString(req.ID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "프로그램 id 는 소문자/숫자/하이픈만 쓸 수 있습니다"})
		return
	}
	if req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "제목을 입력해주세요"})
		return
	}

	if _, found, err := h.store.GetProgram(req.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	} else if found {
		c.JSON(http.StatusConflict, gin.H{"error": "이미 같은 id 의 프로그램이 있습니다"})
		return
	}

	p := model.Program{ID: req.ID, Title: req.Title, Emoji: req.Emoji}
	if err := h.store.PutProgram(p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	created, _, err := h.store.GetProgram(req.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

type patchProgramRequest struct {
	Title *string `json:"title"`
	Emoji *string `json:"emoji"`
}

// PatchProgram 제목/이모지 부분 수정
// PATCH /api/programs/:id
// 보낸 필드만 반영한다 — nil 포인터는 건드리지 않는다.
func (h *Handler) PatchProgram(c *gin.Context) {
	id := c.Param("id")
	if _, found, err := h.store.GetProgram(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	} else if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "프로그램을 찾을 수 없습니다"})
		return
	}

	var req patchProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "요청 형식이 올바르지 않습니다"})
		return
	}

	fields := map[string]any{}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "제목은 비울 수 없습니다"})
			return
		}
		fields["title"] = title
	}
	if req.Emoji != nil {
		fields["emoji"] = *req.Emoji
	}
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "수정할 필드가 없습니다"})
		return
	}

	if err := h.store.PatchProgram(id, fields); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	p, _, err := h.store.GetProgram(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

type deleteProgramRequest struct {
	Confirm string `json:"confirm"`
}

// DeleteProgram 프로그램과 하위 데이터 전체 삭제 (admin 전용)
// DELETE /api/programs/:id
// 본문의 confirm 이 프로그램 id 와 정확히 일치해야 실행된다.
func (h *Handler) DeleteProgram(c *gin.Context) {
	id := c.Param("id")
	if _, found, err := h.store.GetProgram(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	} else if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "프로그램을 찾을 수 없습니다"})
		return
	}

	var req deleteProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Confirm != id {
		c.JSON(http.StatusBadRequest, gin.H{"error": "삭제하려면 프로그램 id 를 정확히 입력해주세요"})
		return
	}

	steps, err := h.deleter.DeleteProgram(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "steps": steps})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "steps": steps})
}

// mustProgram 존재 확인 공용 헬퍼 — 없으면 404 응답 후 false
func (h *Handler) mustProgram(c *gin.Context, id string) bool {
	_, found, err := h.store.GetProgram(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return false
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "프로그램을 찾을 수 없습니다"})
		return false
	}
	return true
}

// validYearKey 연도 파라미터 검증
func validYearKey(year string) bool {
	if year == model.SingleYearKey {
		return true
	}
	for _, y := range model.DefaultYears {
		if y == year {
			return true
		}
	}
	return false
}
