package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/tunewave/server/internal/domain"
	"github.com/tunewave/server/internal/service"
)

// PlaylistHandler 歌单管理处理器，含歌单内歌曲操作
type PlaylistHandler struct {
	playlistService     *service.PlaylistService
	playlistSongService *service.PlaylistSongService
}

// NewPlaylistHandler 创建歌单处理器
func NewPlaylistHandler(playlistService *service.PlaylistService, playlistSongService *service.PlaylistSongService) *PlaylistHandler {
	return &PlaylistHandler{
		playlistService:     playlistService,
		playlistSongService: playlistSongService,
	}
}

// CreatePlaylistRequest 创建歌单请求
type CreatePlaylistRequest struct {
	Name     string `json:"name" binding:"required"`
	IsPublic bool   `json:"is_public"`
}

// AddPlaylist 创建歌单
// POST /api/v1/playlists
func (h *PlaylistHandler) AddPlaylist(c *gin.Context) {
	var req CreatePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	playlist, err := h.playlistService.AddPlaylist(c.Request.Context(), getAuthUserID(c), req.Name, req.IsPublic)
	if err != nil {
		handleError(c, err)
		return
	}
	Created(c, playlist)
}

// GetPlaylist 获取歌单详情，私有歌单仅所有者或管理员可见
// GET /api/v1/playlists/:id
func (h *PlaylistHandler) GetPlaylist(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	playlist, err := h.playlistService.GetPlaylist(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	if !h.canView(c, playlist) {
		Forbidden(c, "forbidden")
		return
	}
	Success(c, playlist)
}

// GetMyPlaylists 获取当前用户的歌单列表
// GET /api/v1/playlists/mine
func (h *PlaylistHandler) GetMyPlaylists(c *gin.Context) {
	playlists, err := h.playlistService.GetPlaylistsByUser(c.Request.Context(), getAuthUserID(c))
	if err != nil {
		handleError(c, err)
		return
	}
	Success(c, gin.H{"items": playlists, "total": len(playlists)})
}

// GetPublicPlaylists 获取全部公开歌单
// GET /api/v1/playlists/public
func (h *PlaylistHandler) GetPublicPlaylists(c *gin.Context) {
	playlists, err := h.playlistService.GetPublicPlaylists(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	Success(c, gin.H{"items": playlists, "total": len(playlists)})
}

// UpdatePlaylistRequest 更新歌单请求
type UpdatePlaylistRequest struct {
	Name     string `json:"name"`
	IsPublic *bool  `json:"is_public"`
}

// UpdatePlaylist 更新歌单，仅所有者可操作
// PUT /api/v1/playlists/:id
func (h *PlaylistHandler) UpdatePlaylist(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if !h.canModify(c, id) {
		return
	}

	var req UpdatePlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	playlist, err := h.playlistService.UpdatePlaylist(c.Request.Context(), id, req.Name, req.IsPublic)
	if err != nil {
		handleError(c, err)
		return
	}
	Success(c, playlist)
}

// DeletePlaylist 删除歌单及其关联数据，仅所有者或管理员可操作
// DELETE /api/v1/playlists/:id
func (h *PlaylistHandler) DeletePlaylist(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if !h.canModify(c, id) {
		return
	}

	playlist, err := h.playlistService.DeletePlaylist(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	Success(c, playlist)
}

// AddSongRequest 歌单添加歌曲请求
type AddSongRequest struct {
	SongID int64 `json:"song_id" binding:"required"`
}

// AddSongToPlaylist 向歌单添加歌曲，仅所有者可操作
// POST /api/v1/playlists/:id/songs
func (h *PlaylistHandler) AddSongToPlaylist(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if !h.canModify(c, id) {
		return
	}

	var req AddSongRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	ps, err := h.playlistSongService.AddSongToPlaylist(c.Request.Context(), id, req.SongID)
	if err != nil {
		handleError(c, err)
		return
	}
	Created(c, ps)
}

// RemoveSongFromPlaylist 从歌单移除歌曲，仅所有者可操作
// DELETE /api/v1/playlists/:id/songs/:song_id
func (h *PlaylistHandler) RemoveSongFromPlaylist(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	songID, ok := parseID(c, "song_id")
	if !ok {
		return
	}
	if !h.canModify(c, id) {
		return
	}

	ps, err := h.playlistSongService.RemoveSongFromPlaylist(c.Request.Context(), id, songID)
	if err != nil {
		handleError(c, err)
		return
	}
	Success(c, ps)
}

// GetSongsInPlaylist 获取歌单内歌曲
// GET /api/v1/playlists/:id/songs
func (h *PlaylistHandler) GetSongsInPlaylist(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	playlist, err := h.playlistService.GetPlaylist(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	if !h.canView(c, playlist) {
		Forbidden(c, "forbidden")
		return
	}

	songs, err := h.playlistSongService.GetSongsInPlaylist(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	Success(c, gin.H{"items": songs, "total": len(songs)})
}

// GetSongCount 获取歌单内歌曲数量
// GET /api/v1/playlists/:id/songs/count
func (h *PlaylistHandler) GetSongCount(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	count, err := h.playlistSongService.GetSongCount(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	Success(c, gin.H{"count": count})
}

// ClearPlaylist 清空歌单，仅所有者可操作
// DELETE /api/v1/playlists/:id/songs
func (h *PlaylistHandler) ClearPlaylist(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if !h.canModify(c, id) {
		return
	}

	if err := h.playlistSongService.ClearPlaylist(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}
	Success(c, gin.H{"message": "playlist cleared"})
}

// canView 公开歌单所有人可见，私有歌单仅所有者或管理员
func (h *PlaylistHandler) canView(c *gin.Context, playlist *domain.Playlist) bool {
	if playlist.IsPublic {
		return true
	}
	return playlist.UserID == getAuthUserID(c) || getAuthRole(c) == string(domain.RoleAdmin)
}

// canModify 校验当前用户是否可修改歌单，失败时已写入响应
func (h *PlaylistHandler) canModify(c *gin.Context, playlistID int64) bool {
	playlist, err := h.playlistService.GetPlaylist(c.Request.Context(), playlistID)
	if err != nil {
		handleError(c, err)
		return false
	}
	if playlist.UserID != getAuthUserID(c) && getAuthRole(c) != string(domain.RoleAdmin) {
		Forbidden(c, "forbidden")
		return false
	}
	return true
}
