package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leoavce/hrd-dashboard/internal/model"
	"github.com/leoavce/hrd-dashboard/internal/summary"
)

// GetLayout 프로그램 상세 화면의 섹션 배치
// GET /api/programs/:id/layout
// 섹션 구성에서 켜진 섹션만 표시 순서대로 내려준다.
func (h *Handler) GetLayout(c *gin.Context) {
	id := c.Param("id")
	if !h.mustProgram(c, id) {
		return
	}
	schema, err := h.store.GetSchema(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	sections := make([]model.SectionDef, 0, len(model.SectionDefs))
	for _, def := range model.SectionDefs {
		if schema.Enabled(def.ID) {
			sections = append(sections, def)
		}
	}
	c.JSON(http.StatusOK, gin.H{"sections": sections})
}

// 위젯 타일에 섞이는 디자인 미리보기 수
const widgetAssetSample = 4

// GetWidgets 요약 위젯 데이터 (파생 수치 묶음)
// GET /api/programs/:id/widgets
// 섹션 구성에서 위젯이 꺼져 있으면 데이터 없이 enabled=false 만 내려간다.
func (h *Handler) GetWidgets(c *gin.Context) {
	id := c.Param("id")
	if !h.mustProgram(c, id) {
		return
	}
	schema, err := h.store.GetSchema(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !schema.Enabled("widget") {
		c.JSON(http.StatusOK, gin.H{"enabled": false})
		return
	}

	sum, err := h.store.GetSummary(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	years, err := h.store.LoadYears(id, model.DefaultYears)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	avg, totals := summary.BudgetAverage(years, model.DefaultYears)
	outcome := summary.AverageOutcome(years, model.DefaultYears)
	assets := summary.SampleDesignAssets(years, model.DefaultYears, widgetAssetSample)

	c.JSON(http.StatusOK, gin.H{
		"enabled": true,
		"note":    sum.WidgetNoteHTML,
		"budget": gin.H{
			"average":          avg,
			"averageFormatted": summary.FormatWon(avg),
			"totals":           totals,
		},
		"outcome": outcome,
		"assets":  assets,
	})
}
