package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetStatus 서버 상태와 기본 통계
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	programs, err := h.store.CountPrograms()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	users, err := h.store.CountUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"ok":       true,
		"programs": programs,
		"users":    users,
	})
}
