package api

import (
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/leoavce/hrd-dashboard/internal/model"
)

// ongoingEntry 홈 화면 목록의 한 줄 (소속 프로그램 정보 포함)
type ongoingEntry struct {
	ProgramID    string            `json:"programId"`
	ProgramTitle string            `json:"programTitle"`
	ProgramEmoji string            `json:"programEmoji"`
	Item         model.OngoingItem `json:"item"`
	Done         int               `json:"done"`
	Total        int               `json:"total"`
}

// ListOngoings 전체 프로그램의 진행중 교육 목록 (시작일 오름차순)
// GET /api/ongoings
func (h *Handler) ListOngoings(c *gin.Context) {
	programs, err := h.store.ListPrograms()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	entries := []ongoingEntry{}
	for _, p := range programs {
		doc, err := h.store.GetOngoing(p.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		for _, item := range doc.Items {
			entries = append(entries, ongoingEntry{
				ProgramID:    p.ID,
				ProgramTitle: p.Title,
				ProgramEmoji: p.Emoji,
				Item:         item,
				Done:         item.DoneCount(),
				Total:        len(item.Checklist),
			})
		}
	}
	// 시작일 오름차순, 동률이면 제목 순 — 날짜는 YYYY-MM-DD 라 문자열 비교로 충분하다
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Item.From != entries[j].Item.From {
			return entries[i].Item.From < entries[j].Item.From
		}
		return entries[i].Item.Title < entries[j].Item.Title
	})
	c.JSON(http.StatusOK, gin.H{"ongoings": entries})
}

type ongoingRequest struct {
	Title string `json:"title"`
	From  string `json:"from"`
	To    string `json:"to"`
}

// AddOngoing 진행중 교육 추가
// POST /api/programs/:id/ongoing
func (h *Handler) AddOngoing(c *gin.Context) {
	id := c.Param("id")
	if !h.mustProgram(c, id) {
		return
	}
	var req ongoingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "요청 형식이 올바르지 않습니다"})
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "제목을 입력해주세요"})
		return
	}

	doc, err := h.store.GetOngoing(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	item := model.OngoingItem{
		ID:        uuid.NewString(),
		Title:     req.Title,
		From:      req.From,
		To:        req.To,
		Checklist: []model.ChecklistItem{},
	}
	doc.Items = append(doc.Items, item)
	if err := h.store.SaveOngoing(id, doc.Items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, item)
}

type ongoingPatchRequest struct {
	Title *string `json:"title"`
	From  *string `json:"from"`
	To    *string `json:"to"`
}

// UpdateOngoing 진행중 교육 수정 (보낸 필드만)
// PATCH /api/programs/:id/ongoing/:itemId
func (h *Handler) UpdateOngoing(c *gin.Context) {
	id := c.Param("id")
	itemID := c.Param("itemId")
	if !h.mustProgram(c, id) {
		return
	}
	var req ongoingPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "요청 형식이 올바르지 않습니다"})
		return
	}

	doc, err := h.store.GetOngoing(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	idx := findOngoing(doc.Items, itemID)
	if idx < 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "진행중 교육을 찾을 수 없습니다"})
		return
	}

	item := &doc.Items[idx]
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "제목은 비울 수 없습니다"})
			return
		}
		item.Title = title
	}
	if req.From != nil {
		item.From = *req.From
	}
	if req.To != nil {
		item.To = *req.To
	}

	if err := h.store.SaveOngoing(id, doc.Items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, *item)
}

// DeleteOngoing 진행중 교육 삭제
// DELETE /api/programs/:id/ongoing/:itemId
func (h *Handler) DeleteOngoing(c *gin.Context) {
	id := c.Param("id")
	itemID := c.Param("itemId")
	if !h.mustProgram(c, id) {
		return
	}
	doc, err := h.store.GetOngoing(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	idx := findOngoing(doc.Items, itemID)
	if idx < 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "진행중 교육을 찾을 수 없습니다"})
		return
	}
	doc.Items = append(doc.Items[:idx], doc.Items[idx+1:]...)
	if err := h.store.SaveOngoing(id, doc.Items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type checklistRequest struct {
	Text string `json:"text"`
}

// AddChecklistItem 체크리스트 항목 추가
// POST /api/programs/:id/ongoing/:itemId/checklist
func (h *Handler) AddChecklistItem(c *gin.Context) {
	id := c.Param("id")
	itemID := c.Param("itemId")
	if !h.mustProgram(c, id) {
		return
	}
	var req checklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "요청 형식이 올바르지 않습니다"})
		return
	}
	req.Text = strings.TrimSpace(req.Text)
	if req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "내용을 입력해주세요"})
		return
	}

	doc, err := h.store.GetOngoing(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	idx := findOngoing(doc.Items, itemID)
	if idx < 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "진행중 교육을 찾을 수 없습니다"})
		return
	}

	chk := model.ChecklistItem{ID: uuid.NewString(), Text: req.Text}
	doc.Items[idx].Checklist = append(doc.Items[idx].Checklist, chk)
	if err := h.store.SaveOngoing(id, doc.Items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, chk)
}

type checklistPatchRequest struct {
	Text *string `json:"text"`
	Done *bool   `json:"done"`
}

// UpdateChecklistItem 체크리스트 항목 수정 (내용 변경 또는 완료 토글)
// PATCH /api/programs/:id/ongoing/:itemId/checklist/:chkId
func (h *Handler) UpdateChecklistItem(c *gin.Context) {
	id := c.Param("id")
	itemID := c.Param("itemId")
	chkID := c.Param("chkId")
	if !h.mustProgram(c, id) {
		return
	}
	var req checklistPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "요청 형식이 올바르지 않습니다"})
		return
	}

	doc, err := h.store.GetOngoing(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	idx := findOngoing(doc.Items, itemID)
	if idx < 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "진행중 교육을 찾을 수 없습니다"})
		return
	}
	chkIdx := findChecklist(doc.Items[idx].Checklist, chkID)
	if chkIdx < 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "체크리스트 항목을 찾을 수 없습니다"})
		return
	}

	chk := &doc.Items[idx].Checklist[chkIdx]
	if req.Text != nil {
		text := strings.TrimSpace(*req.Text)
		if text == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "내용은 비울 수 없습니다"})
			return
		}
		chk.Text = text
	}
	if req.Done != nil {
		chk.Done = *req.Done
	}

	if err := h.store.SaveOngoing(id, doc.Items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, *chk)
}

// DeleteChecklistItem 체크리스트 항목 삭제
// DELETE /api/programs/:id/ongoing/:itemId/checklist/:chkId
func (h *Handler) DeleteChecklistItem(c *gin.Context) {
	id := c.Param("id")
	itemID := c.Param("itemId")
	chkID := c.Param("chkId")
	if !h.mustProgram(c, id) {
		return
	}
	doc, err := h.store.GetOngoing(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	idx := findOngoing(doc.Items, itemID)
	if idx < 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "진행중 교육을 찾을 수 없습니다"})
		return
	}
	chkIdx := findChecklist(doc.Items[idx].Checklist, chkID)
	if chkIdx < 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "체크리스트 항목을 찾을 수 없습니다"})
		return
	}
	list := doc.Items[idx].Checklist
	doc.Items[idx].Checklist = append(list[:chkIdx], list[chkIdx+1:]...)
	if err := h.store.SaveOngoing(id, doc.Items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func findOngoing(items []model.OngoingItem, id string) int {
	for i, it := range items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func findChecklist(items []model.ChecklistItem, id string) int {
	for i, it := range items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
