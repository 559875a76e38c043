package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leoavce/hrd-dashboard/internal/importer"
	"github.com/leoavce/hrd-dashboard/internal/model"
)

// ImportBudget 예산표 파일 가져오기
// POST /api/programs/:id/years/:year/budget/import (multipart)
// mode=replace(기본)|append — append 는 기존 아이템 뒤에 붙인다.
func (h *Handler) ImportBudget(c *gin.Context) {
	id := c.Param("id")
	year := c.Param("year")
	if !validYearKey(year) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "알 수 없는 연도입니다"})
		return
	}
	if !h.mustProgram(c, id) {
		return
	}

	mode := c.DefaultPostForm("mode", "replace")
	if mode != "replace" && mode != "append" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mode 는 replace 또는 append 여야 합니다"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "파일을 첨부해주세요"})
		return
	}
	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer src.Close()

	rows, err := importer.ParseFile(file.Filename, src)
	if err != nil {
		if errors.Is(err, importer.ErrUnsupportedFormat) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "CSV 또는 XLSX 파일만 가져올 수 있습니다"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "파일을 해석하지 못했습니다: " + err.Error()})
		return
	}
	if len(rows) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "가져올 행이 없습니다"})
		return
	}

	items := importer.ToItems(rows)
	if mode == "append" {
		existing, err := h.store.GetYear(id, year)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		items = append(existing.Budget.Items, items...)
	}

	if err := h.store.SaveYearBlocks(id, year, map[string]any{
		"budget": model.Budget{Items: items},
	}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	rec, err := h.store.GetYear(id, year)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"imported": len(rows),
		"mode":     mode,
		"budget":   rec.Budget,
		"total":    rec.BudgetTotal(),
	})
}

// BudgetTemplate 예산표 템플릿 다운로드
// GET /api/budget/template?format=csv|xlsx (기본 csv)
func (h *Handler) BudgetTemplate(c *gin.Context) {
	switch c.DefaultQuery("format", "csv") {
	case "csv":
		c.Header("Content-Disposition", `attachment; filename="budget_template.csv"`)
		c.Header("Content-Type", "text/csv; charset=utf-8")
		if err := importer.WriteTemplateCSV(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
	case "xlsx":
		f, err := importer.BuildTemplateXLSX()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		defer f.Close()
		c.Header("Content-Disposition", `attachment; filename="budget_template.xlsx"`)
		c.Header("Content-Type",
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := f.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "format 은 csv 또는 xlsx 여야 합니다"})
	}
}
