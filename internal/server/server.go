package server

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/leoavce/hrd-dashboard/internal/api"
	"github.com/leoavce/hrd-dashboard/internal/auth"
	"github.com/leoavce/hrd-dashboard/internal/blob"
	"github.com/leoavce/hrd-dashboard/internal/config"
	"github.com/leoavce/hrd-dashboard/internal/store"
)

//go:embed all:static
var staticFiles embed.FS

// Server HTTP 서버
type Server struct {
	router *gin.Engine
	store  *store.Store
	blobs  *blob.Store
	auth   *auth.Service
	api    *api.Handler
}

// NewServer 서버 생성 (저장소 초기화 + 기본 데이터 시드 + 관리자 부트스트랩)
func NewServer(cfg *config.AppConfig) (*Server, error) {
	devMode := cfg.Server.DevMode
	if !devMode {
		gin.SetMode(gin.ReleaseMode)
	}

	dataDir, err := config.EnsureDataDir(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare data dir: %w", err)
	}

	sqliteStore, err := store.New(filepath.Join(dataDir, "hrdboard.db"))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	if err := sqliteStore.SeedDefaultPrograms(); err != nil {
		return nil, fmt.Errorf("failed to seed programs: %w", err)
	}

	blobStore, err := blob.New(filepath.Join(dataDir, "files"), "/files")
	if err != nil {
		return nil, err
	}

	authSvc := auth.NewService(sqliteStore)
	if cfg.Auth.AdminEmail != "" && cfg.Auth.AdminPassword != "" {
		if err := authSvc.EnsureUser(cfg.Auth.AdminEmail, cfg.Auth.AdminPassword, auth.RoleAdmin); err != nil {
			return nil, fmt.Errorf("failed to bootstrap admin: %w", err)
		}
	}

	s := &Server{
		router: gin.Default(),
		store:  sqliteStore,
		blobs:  blobStore,
		auth:   authSvc,
		api:    api.NewHandler(sqliteStore, blobStore, authSvc),
	}

	s.setupRoutes(devMode)

	return s, nil
}

// setupRoutes 라우트 구성
func (s *Server) setupRoutes(devMode bool) {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	// API
	apiGroup := s.router.Group("/api")
	{
		s.api.RegisterRoutes(apiGroup)
	}

	// 업로드 자산 정적 서빙
	s.router.Static("/files", s.blobs.Root())

	if devMode {
		// 개발 모드: 프런트 개발 서버로 넘긴다
		s.router.NoRoute(func(c *gin.Context) {
			c.Redirect(http.StatusTemporaryRedirect, "http://localhost:5173"+c.Request.URL.Path)
		})
	} else {
		sub, _ := fs.Sub(staticFiles, "static")

		s.router.GET("/", func(c *gin.Context) {
			data, _ := fs.ReadFile(sub, "index.html")
			c.Data(http.StatusOK, "text/html; charset=utf-8", data)
		})

		// SPA 해시 라우터라 나머지 경로도 index 로
		s.router.NoRoute(func(c *gin.Context) {
			data, _ := fs.ReadFile(sub, "index.html")
			c.Data(http.StatusOK, "text/html; charset=utf-8", data)
		})
	}
}

// Run 서버 시작
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Close 저장소 정리
func (s *Server) Close() error {
	return s.store.Close()
}

// GetStore 저장소 (테스트용)
func (s *Server) GetStore() *store.Store {
	return s.store
}
