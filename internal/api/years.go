package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/leoavce/hrd-dashboard/internal/model"
)

// GetYears 전체 연도 문서 묶음 (단일 버킷 포함)
// GET /api/programs/:id/years
func (h *Handler) GetYears(c *gin.Context) {
	id := c.Param("id")
	if !h.mustProgram(c, id) {
		return
	}
	years, err := h.store.LoadYears(id, model.AllYearKeys())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"years": years, "order": model.DefaultYears})
}

// GetYear 연도 문서 단건 (부재 시 빈 레코드)
// GET /api/programs/:id/years/:year
func (h *Handler) GetYear(c *gin.Context) {
	id := c.Param("id")
	year := c.Param("year")
	if !validYearKey(year) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "알 수 없는 연도입니다"})
		return
	}
	if !h.mustProgram(c, id) {
		return
	}
	rec, err := h.store.GetYear(id, year)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rec)
}

// saveYearRequest 부분 저장 요청 — nil 블록은 건드리지 않는다
type saveYearRequest struct {
	Budget  *model.Budget  `json:"budget"`
	Design  *model.Design  `json:"design"`
	Outcome *model.Outcome `json:"outcome"`
	Content *model.Content `json:"content"`
}

// SaveYear 연도 문서 블록 단위 저장
// PUT /api/programs/:id/years/:year
// 보낸 블록만 통째로 교체하고, 예산 소계는 항상 서버에서 재계산한다.
func (h *Handler) SaveYear(c *gin.Context) {
	id := c.Param("id")
	year := c.Param("year")
	if !validYearKey(year) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "알 수 없는 연도입니다"})
		return
	}
	if !h.mustProgram(c, id) {
		return
	}

	var req saveYearRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "요청 형식이 올바르지 않습니다"})
		return
	}

	patch := map[string]any{}
	if req.Budget != nil {
		for i := range req.Budget.Items {
			it := &req.Budget.Items[i]
			if it.ID == "" {
				it.ID = uuid.NewString()
			}
			it.Subtotal = it.UnitCost * it.Qty
		}
		if req.Budget.Items == nil {
			req.Budget.Items = []model.BudgetItem{}
		}
		patch["budget"] = req.Budget
	}
	if req.Design != nil {
		for i := range req.Design.Assets {
			if req.Design.Assets[i].ID == "" {
				req.Design.Assets[i].ID = uuid.NewString()
			}
		}
		if req.Design.Assets == nil {
			req.Design.Assets = []model.DesignAsset{}
		}
		// 표준 필드로만 저장한다 — 레거시 필드가 섞여 들어오는 걸 막는다
		req.Design.AssetLinks = nil
		patch["design"] = req.Design
	}
	if req.Outcome != nil {
		patch["outcome"] = req.Outcome
	}
	if req.Content != nil {
		// 표준 필드만 유지
		req.Content.Outline = ""
		patch["content"] = req.Content
	}
	if len(patch) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "저장할 블록이 없습니다"})
		return
	}

	if err := h.store.SaveYearBlocks(id, year, patch); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	rec, err := h.store.GetYear(id, year)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rec)
}
