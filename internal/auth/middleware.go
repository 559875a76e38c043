package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const sessionKey = "auth.session"

// bearerToken Authorization: Bearer {token} 추출
func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(h, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

// RequireSession 로그인 세션 필수 미들웨어
func RequireSession(svc *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := svc.Resolve(bearerToken(c))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "로그인이 필요합니다"})
			return
		}
		c.Set(sessionKey, sess)
		c.Next()
	}
}

// RequireAdmin admin 역할 필수 미들웨어 (RequireSession 뒤에 배치)
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := SessionFrom(c)
		if !ok || sess.Role != RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "관리자 권한이 필요합니다"})
			return
		}
		c.Next()
	}
}

// SessionFrom 컨텍스트에서 세션 꺼내기
func SessionFrom(c *gin.Context) (Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return Session{}, false
	}
	sess, ok := v.(Session)
	return sess, ok
}
