package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tunewave/server/internal/domain"
	"github.com/tunewave/server/internal/service"
)

// SongHandler 歌曲管理处理器
type SongHandler struct {
	songService *service.SongService
}

// NewSongHandler 创建歌曲处理器
func NewSongHandler(songService *service.SongService) *SongHandler {
	return &SongHandler{songService: songService}
}

// SongRequest 歌曲创建/更新请求
type SongRequest struct {
	Title       string `json:"title" binding:"required"`
	ArtistID    int64  `json:"artist_id" binding:"required"`
	AlbumID     *int64 `json:"album_id"`
	Genre       string `json:"genre" binding:"required"`
	Duration    int    `json:"duration" binding:"required"`
	ReleaseDate string `json:"release_date"` // 格式2006-01-02
	URL         string `json:"url"`
}

func (r *SongRequest) releaseDate() (time.Time, error) {
	if r.ReleaseDate == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", r.ReleaseDate)
}

// AddSong 创建歌曲，仅管理员可操作
// POST /api/v1/songs
func (h *SongHandler) AddSong(c *gin.Context) {
	var req SongRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	releaseDate, err := req.releaseDate()
	if err != nil {
		BadRequest(c, "invalid release_date")
		return
	}

	song, err := h.songService.AddSong(c.Request.Context(), req.Title, req.ArtistID, req.AlbumID, domain.Genre(req.Genre), req.Duration, releaseDate, req.URL)
	if err != nil {
		handleError(c, err)
		return
	}
	Created(c, song)
}

// GetSong 获取歌曲详情
// GET /api/v1/songs/:id
func (h *SongHandler) GetSong(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	song, err := h.songService.GetSong(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	Success(c, song)
}

// ListSongs 获取全部歌曲
// GET /api/v1/songs
func (h *SongHandler) ListSongs(c *gin.Context) {
	songs, err := h.songService.ListSongs(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	Success(c, gin.H{"items": songs, "total": len(songs)})
}

// ListSongsByArtist 获取歌手的歌曲列表
// GET /api/v1/artists/:id/songs
func (h *SongHandler) ListSongsByArtist(c *gin.Context) {
	artistID, ok := parseID(c, "id")
	if !ok {
		return
	}

	songs, err := h.songService.ListSongsByArtist(c.Request.Context(), artistID)
	if err != nil {
		handleError(c, err)
		return
	}
	Success(c, gin.H{"items": songs, "total": len(songs)})
}

// ListSongsByAlbum 获取专辑的歌曲列表
// GET /api/v1/albums/:id/songs
func (h *SongHandler) ListSongsByAlbum(c *gin.Context) {
	albumID, ok := parseID(c, "id")
	if !ok {
		return
	}

	songs, err := h.songService.ListSongsByAlbum(c.Request.Context(), albumID)
	if err != nil {
		handleError(c, err)
		return
	}
	Success(c, gin.H{"items": songs, "total": len(songs)})
}

// UpdateSong 更新歌曲，仅管理员可操作
// PUT /api/v1/songs/:id
func (h *SongHandler) UpdateSong(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req SongRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}
	releaseDate, err := req.releaseDate()
	if err != nil {
		BadRequest(c, "invalid release_date")
		return
	}

	song, err := h.songService.UpdateSong(c.Request.Context(), id, req.Title, req.ArtistID, req.AlbumID, domain.Genre(req.Genre), req.Duration, releaseDate, req.URL)
	if err != nil {
		handleError(c, err)
		return
	}
	Success(c, song)
}

// DeleteSong 删除歌曲并级联清理关联数据，仅管理员可操作
// DELETE /api/v1/songs/:id
func (h *SongHandler) DeleteSong(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	song, err := h.songService.DeleteSong(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	Success(c, song)
}
