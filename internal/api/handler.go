package api

import (
	"github.com/gin-gonic/gin"

	"github.com/leoavce/hrd-dashboard/internal/auth"
	"github.com/leoavce/hrd-dashboard/internal/blob"
	"github.com/leoavce/hrd-dashboard/internal/cascade"
	"github.com/leoavce/hrd-dashboard/internal/store"
)

// Handler API 처리기
type Handler struct {
	store   *store.Store
	blobs   *blob.Store
	auth    *auth.Service
	deleter *cascade.Deleter
}

// NewHandler API 처리기 생성
func NewHandler(st *store.Store, blobs *blob.Store, authSvc *auth.Service) *Handler {
	return &Handler{
		store:   st,
		blobs:   blobs,
		auth:    authSvc,
		deleter: cascade.NewDeleter(st, blobs),
	}
}

// RegisterRoutes API 라우트 등록
// 조회는 공개, 쓰기는 세션 필수, 프로그램 삭제는 admin 역할 필수.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 인증
	router.POST("/auth/login", h.Login)

	// 조회
	router.GET("/status", h.GetStatus)
	router.GET("/programs", h.ListPrograms)
	router.GET("/programs/:id", h.GetProgram)
	router.GET("/programs/:id/layout", h.GetLayout)
	router.GET("/programs/:id/widgets", h.GetWidgets)
	router.GET("/programs/:id/years", h.GetYears)
	router.GET("/programs/:id/years/:year", h.GetYear)
	router.GET("/programs/:id/years/:year/assets", h.ListAssets)
	router.GET("/programs/:id/meta/summary", h.GetSummary)
	router.GET("/programs/:id/meta/schema", h.GetSchema)
	router.GET("/ongoings", h.ListOngoings)
	router.GET("/links/resolve", h.ResolveLink)
	router.GET("/budget/template", h.BudgetTemplate)

	// 로그인 사용자 전용
	authed := router.Group("", auth.RequireSession(h.auth))
	{
		authed.POST("/auth/logout", h.Logout)
		authed.GET("/auth/me", h.WhoAmI)

		authed.POST("/programs", h.CreateProgram)
		authed.PATCH("/programs/:id", h.PatchProgram)

		authed.PUT("/programs/:id/years/:year", h.SaveYear)
		authed.PUT("/programs/:id/meta/summary", h.SaveSummary)
		authed.PUT("/programs/:id/meta/schema", h.SaveSchema)

		authed.POST("/programs/:id/years/:year/budget/import", h.ImportBudget)
		authed.POST("/programs/:id/years/:year/assets", h.UploadAssets)
		authed.DELETE("/programs/:id/years/:year/assets", h.DeleteAsset)

		authed.POST("/programs/:id/ongoing", h.AddOngoing)
		authed.PATCH("/programs/:id/ongoing/:itemId", h.UpdateOngoing)
		authed.DELETE("/programs/:id/ongoing/:itemId", h.DeleteOngoing)
		authed.POST("/programs/:id/ongoing/:itemId/checklist", h.AddChecklistItem)
		// 체크 토글은 편집 모드와 무관하게 즉시 저장되는 동작이라 별도 admin 게이트가 없다
		authed.PATCH("/programs/:id/ongoing/:itemId/checklist/:chkId", h.UpdateChecklistItem)
		authed.DELETE("/programs/:id/ongoing/:itemId/checklist/:chkId", h.DeleteChecklistItem)

		// 파괴적 작업
		admin := authed.Group("", auth.RequireAdmin())
		{
			admin.DELETE("/programs/:id", h.DeleteProgram)
		}
	}
}
