package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/tunewave/server/internal/service"
)

// FavoriteHandler 收藏处理器
type FavoriteHandler struct {
	favoriteService *service.FavoriteService
}

// NewFavoriteHandler 创建收藏处理器
func NewFavoriteHandler(favoriteService *service.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

// FavoriteRequest 收藏请求，song_id和playlist_id恰好提供其一
type FavoriteRequest struct {
	SongID     *int64 `json:"song_id"`
	PlaylistID *int64 `json:"playlist_id"`
}

// AddFavorite 添加收藏
// POST /api/v1/favorites
func (h *FavoriteHandler) AddFavorite(c *gin.Context) {
	var req FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	userID := getAuthUserID(c)
	switch {
	case req.SongID != nil && req.PlaylistID == nil:
		favorite, err := h.favoriteService.FavoriteSong(c.Request.Context(), userID, *req.SongID)
		if err != nil {
			handleError(c, err)
			return
		}
		Created(c, favorite)
	case req.PlaylistID != nil && req.SongID == nil:
		favorite, err := h.favoriteService.FavoritePlaylist(c.Request.Context(), userID, *req.PlaylistID)
		if err != nil {
			handleError(c, err)
			return
		}
		Created(c, favorite)
	default:
		BadRequest(c, "exactly one of song_id or playlist_id required")
	}
}

// RemoveFavorite 取消收藏
// DELETE /api/v1/favorites/:id
func (h *FavoriteHandler) RemoveFavorite(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.favoriteService.Unfavorite(c.Request.Context(), getAuthUserID(c), id); err != nil {
		handleError(c, err)
		return
	}
	Success(c, gin.H{"message": "favorite removed"})
}

// ListFavorites 获取当前用户的收藏列表
// GET /api/v1/favorites
func (h *FavoriteHandler) ListFavorites(c *gin.Context) {
	favorites, err := h.favoriteService.ListFavorites(c.Request.Context(), getAuthUserID(c))
	if err != nil {
		handleError(c, err)
		return
	}
	Success(c, gin.H{"items": favorites, "total": len(favorites)})
}
