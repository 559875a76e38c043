package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/leoavce/hrd-dashboard/internal/blob"
	"github.com/leoavce/hrd-dashboard/internal/model"
)

// assetFolder 연도별 디자인 자산 폴더 규약
func assetFolder(programID, year string) string {
	return "programs/" + programID + "/years/" + year + "/design"
}

// UploadAssets 디자인 이미지 업로드
// POST /api/programs/:id/years/:year/assets (multipart, files 필드 복수 허용)
// 업로드한 객체를 이미지 자산으로 연도 문서에 바로 등록한다.
func (h *Handler) UploadAssets(c *gin.Context) {
	id := c.Param("id")
	year := c.Param("year")
	if !validYearKey(year) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "알 수 없는 연도입니다"})
		return
	}
	if !h.mustProgram(c, id) {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "파일을 첨부해주세요"})
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		files = form.File["file"]
	}
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "파일을 첨부해주세요"})
		return
	}

	rec, err := h.store.GetYear(id, year)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	folder := assetFolder(id, year)
	uploaded := make([]model.DesignAsset, 0, len(files))
	for _, file := range files {
		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		url, err := h.blobs.Save(folder, file.Filename, src)
		src.Close()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		uploaded = append(uploaded, model.DesignAsset{
			ID:   uuid.NewString(),
			Type: "img",
			URL:  url,
		})
	}

	rec.Design.Assets = append(rec.Design.Assets, uploaded...)
	if err := h.store.SaveYearBlocks(id, year, map[string]any{
		"design": rec.Design,
	}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"assets": uploaded})
}

// ListAssets 업로드된 블랍 객체 나열 (폴더 기준, 문서와 별개)
// GET /api/programs/:id/years/:year/assets
// 업로드가 없던 연도는 빈 목록이다.
func (h *Handler) ListAssets(c *gin.Context) {
	id := c.Param("id")
	year := c.Param("year")
	if !validYearKey(year) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "알 수 없는 연도입니다"})
		return
	}
	if !h.mustProgram(c, id) {
		return
	}

	objects, err := h.blobs.ListFolder(assetFolder(id, year))
	if err != nil {
		if errors.Is(err, blob.ErrFolderNotFound) {
			c.JSON(http.StatusOK, gin.H{"urls": []string{}})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	urls := make([]string, 0, len(objects))
	for _, rel := range objects {
		urls = append(urls, h.blobs.URL(rel))
	}
	c.JSON(http.StatusOK, gin.H{"urls": urls})
}

type deleteAssetRequest struct {
	URL string `json:"url"`
}

// DeleteAsset 디자인 자산 삭제 (문서에서 제거 후 블랍 삭제)
// DELETE /api/programs/:id/years/:year/assets
// 블랍이 이미 없어도 성공으로 본다 — 문서가 진실의 원천이다.
func (h *Handler) DeleteAsset(c *gin.Context) {
	id := c.Param("id")
	year := c.Param("year")
	if !validYearKey(year) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "알 수 없는 연도입니다"})
		return
	}
	if !h.mustProgram(c, id) {
		return
	}

	var req deleteAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "삭제할 자산 url 을 보내주세요"})
		return
	}

	rec, err := h.store.GetYear(id, year)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	kept := make([]model.DesignAsset, 0, len(rec.Design.Assets))
	removed := false
	for _, a := range rec.Design.Assets {
		if a.Type == "img" && a.URL == req.URL {
			removed = true
			continue
		}
		kept = append(kept, a)
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "자산을 찾을 수 없습니다"})
		return
	}

	rec.Design.Assets = kept
	if err := h.store.SaveYearBlocks(id, year, map[string]any{
		"design": rec.Design,
	}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := h.blobs.DeleteByURL(req.URL); err != nil {
		// 외부 url 자산이거나 파일이 이미 지워진 경우 — 문서 정리는 끝났으므로 성공
		c.JSON(http.StatusOK, gin.H{"ok": true, "blobSkipped": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
