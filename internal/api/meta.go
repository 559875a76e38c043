package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetSummary 요약 위젯 노트 조회
// GET /api/programs/:id/meta/summary
func (h *Handler) GetSummary(c *gin.Context) {
	id := c.Param("id")
	if !h.mustProgram(c, id) {
		return
	}
	sum, err := h.store.GetSummary(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"widgetNoteHtml": sum.WidgetNoteHTML, "updatedAt": sum.UpdatedAt})
}

type saveSummaryRequest struct {
	WidgetNoteHTML string `json:"widgetNoteHtml"`
}

// SaveSummary 요약 위젯 노트 저장
// PUT /api/programs/:id/meta/summary
func (h *Handler) SaveSummary(c *gin.Context) {
	id := c.Param("id")
	if !h.mustProgram(c, id) {
		return
	}
	var req saveSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "요청 형식이 올바르지 않습니다"})
		return
	}
	if err := h.store.SaveSummary(id, req.WidgetNoteHTML); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	sum, err := h.store.GetSummary(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"widgetNoteHtml": sum.WidgetNoteHTML, "updatedAt": sum.UpdatedAt})
}

// GetSchema 섹션 구성 조회
// GET /api/programs/:id/meta/schema
func (h *Handler) GetSchema(c *gin.Context) {
	id := c.Param("id")
	if !h.mustProgram(c, id) {
		return
	}
	schema, err := h.store.GetSchema(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, schema)
}

type saveSchemaRequest struct {
	Sections []string `json:"sections"`
}

// SaveSchema 섹션 구성 저장 (통째 교체)
// PUT /api/programs/:id/meta/schema
// 알 수 없는 섹션 id 는 버려지고, 전부 버려지면 기본 구성으로 저장된다.
func (h *Handler) SaveSchema(c *gin.Context) {
	id := c.Param("id")
	if !h.mustProgram(c, id) {
		return
	}
	var req saveSchemaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "요청 형식이 올바르지 않습니다"})
		return
	}
	schema, err := h.store.SaveSchema(id, req.Sections)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, schema)
}
