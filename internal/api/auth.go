package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/leoavce/hrd-dashboard/internal/auth"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login 이메일+비밀번호 로그인
// POST /api/auth/login
// 자격 불일치는 401 — 로그인 폼이 인라인으로 보여줄 메시지를 담는다.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "요청 형식이 올바르지 않습니다"})
		return
	}

	sess, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "이메일 또는 비밀번호가 올바르지 않습니다"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": sess.Token,
		"email": sess.Email,
		"role":  sess.Role,
	})
}

// Logout 세션 폐기
// POST /api/auth/logout
func (h *Handler) Logout(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		h.auth.Logout(strings.TrimSpace(token))
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// WhoAmI 현재 세션 조회
// GET /api/auth/me
func (h *Handler) WhoAmI(c *gin.Context) {
	sess, _ := auth.SessionFrom(c)
	c.JSON(http.StatusOK, gin.H{"email": sess.Email, "role": sess.Role})
}
