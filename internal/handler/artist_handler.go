package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/tunewave/server/internal/service"
)

// ArtistHandler 歌手管理处理器
type ArtistHandler struct {
	artistService *service.ArtistService
}

// NewArtistHandler 创建歌手处理器
func NewArtistHandler(artistService *service.ArtistService) *ArtistHandler {
	return &ArtistHandler{artistService: artistService}
}

// ArtistRequest 歌手创建/更新请求
type ArtistRequest struct {
	Name     string `json:"name" binding:"required"`
	Bio      string `json:"bio"`
	ImageURL string `json:"image_url"`
}

// AddArtist 创建歌手，仅管理员可操作
// POST /api/v1/artists
func (h *ArtistHandler) AddArtist(c *gin.Context) {
	var req ArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	artist, err := h.artistService.AddArtist(c.Request.Context(), req.Name, req.Bio, req.ImageURL)
	if err != nil {
		handleError(c, err)
		return
	}
	Created(c, artist)
}

// GetArtist 获取歌手详情
// GET /api/v1/artists/:id
func (h *ArtistHandler) GetArtist(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	artist, err := h.artistService.GetArtist(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	Success(c, artist)
}

// ListArtists 获取全部歌手
// GET /api/v1/artists
func (h *ArtistHandler) ListArtists(c *gin.Context) {
	artists, err := h.artistService.ListArtists(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	Success(c, gin.H{"items": artists, "total": len(artists)})
}

// UpdateArtist 更新歌手，仅管理员可操作
// PUT /api/v1/artists/:id
func (h *ArtistHandler) UpdateArtist(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req ArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	artist, err := h.artistService.UpdateArtist(c.Request.Context(), id, req.Name, req.Bio, req.ImageURL)
	if err != nil {
		handleError(c, err)
		return
	}
	Success(c, artist)
}

// DeleteArtist 删除歌手，仍被歌曲或专辑引用时拒绝，仅管理员可操作
// DELETE /api/v1/artists/:id
func (h *ArtistHandler) DeleteArtist(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	artist, err := h.artistService.DeleteArtist(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	Success(c, artist)
}
