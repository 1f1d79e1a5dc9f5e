package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tunewave/server/internal/service"
)

// AlbumHandler 专辑管理处理器
type AlbumHandler struct {
	albumService *service.AlbumService
}

// NewAlbumHandler 创建专辑处理器
func NewAlbumHandler(albumService *service.AlbumService) *AlbumHandler {
	return &AlbumHandler{albumService: albumService}
}

// AlbumRequest 专辑创建/更新请求
type AlbumRequest struct {
	Title       string `json:"title" binding:"required"`
	ArtistID    int64  `json:"artist_id" binding:"required"`
	ReleaseDate string `json:"release_date"` // 格式2006-01-02
	CoverURL    string `json:"cover_url"`
}

func (r *AlbumRequest) releaseDate() (time.Time, error) {
	if r.ReleaseDate == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", r.ReleaseDate)
}

// AddAlbum 创建专辑，仅管理员可操作
// POST /api/v1/albums
func (h *AlbumHandler) AddAlbum(c *gin.Context) {
	var req AlbumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	releaseDate, err := req.releaseDate()
	if err != nil {
		BadRequest(c, "invalid release_date")
		return
	}

	album, err := h.albumService.AddAlbum(c.Request.Context(), req.Title, req.ArtistID, releaseDate, req.CoverURL)
	if err != nil {
		handleError(c, err)
		return
	}
	Created(c, album)
}

// GetAlbum 获取专辑详情
// GET /api/v1/albums/:id
func (h *AlbumHandler) GetAlbum(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	album, err := h.albumService.GetAlbum(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	Success(c, album)
}

// ListAlbums 获取全部专辑
// GET /api/v1/albums
func (h *AlbumHandler) ListAlbums(c *gin.Context) {
	albums, err := h.albumService.ListAlbums(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	Success(c, gin.H{"items": albums, "total": len(albums)})
}

// ListAlbumsByArtist 获取歌手的专辑列表
// GET /api/v1/artists/:id/albums
func (h *AlbumHandler) ListAlbumsByArtist(c *gin.Context) {
	artistID, ok := parseID(c, "id")
	if !ok {
		return
	}

	albums, err := h.albumService.ListAlbumsByArtist(c.Request.Context(), artistID)
	if err != nil {
		handleError(c, err)
		return
	}
	Success(c, gin.H{"items": albums, "total": len(albums)})
}

// UpdateAlbum 更新专辑，仅管理员可操作
// PUT /api/v1/albums/:id
func (h *AlbumHandler) UpdateAlbum(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req AlbumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	releaseDate, err := req.releaseDate()
	if err != nil {
		BadRequest(c, "invalid release_date")
		return
	}

	album, err := h.albumService.UpdateAlbum(c.Request.Context(), id, req.Title, req.ArtistID, releaseDate, req.CoverURL)
	if err != nil {
		handleError(c, err)
		return
	}
	Success(c, album)
}

// DeleteAlbum 删除专辑并级联删除其歌曲，仅管理员可操作
// DELETE /api/v1/albums/:id
func (h *AlbumHandler) DeleteAlbum(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	album, err := h.albumService.DeleteAlbum(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	Success(c, album)
}
