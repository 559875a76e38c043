package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leoavce/hrd-dashboard/internal/deeplink"
)

// ResolveLink 구버전 해시 북마크 해석
// GET /api/links/resolve?hash=...
// 가리키는 프로그램이 지워졌으면 홈으로 대체한다.
func (h *Handler) ResolveLink(c *gin.Context) {
	route := deeplink.Parse(c.Query("hash"))

	if route.Page == deeplink.PageProgram {
		_, found, err := h.store.GetProgram(route.ProgramID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if !found {
			c.JSON(http.StatusOK, gin.H{
				"route":  deeplink.Route{Page: deeplink.PageHome},
				"reason": "program-not-found",
			})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"route": route})
}
