package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/tunewave/server/internal/service"
)

// RatingHandler 评分处理器
type RatingHandler struct {
	ratingService *service.RatingService
}

// NewRatingHandler 创建评分处理器
func NewRatingHandler(ratingService *service.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

// RatingRequest 评分请求
type RatingRequest struct {
	Value int `json:"value" binding:"required"`
}

// AddRating 对歌曲评分
// POST /api/v1/songs/:id/ratings
func (h *RatingHandler) AddRating(c *gin.Context) {
	songID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	rating, err := h.ratingService.AddRating(c.Request.Context(), getAuthUserID(c), songID, req.Value)
	if err != nil {
		handleError(c, err)
		return
	}
	Created(c, rating)
}

// UpdateRating 修改评分
// PUT /api/v1/songs/:id/ratings
func (h *RatingHandler) UpdateRating(c *gin.Context) {
	songID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request: "+err.Error())
		return
	}

	rating, err := h.ratingService.UpdateRating(c.Request.Context(), getAuthUserID(c), songID, req.Value)
	if err != nil {
		handleError(c, err)
		return
	}
	Success(c, rating)
}

// DeleteRating 删除评分
// DELETE /api/v1/songs/:id/ratings
func (h *RatingHandler) DeleteRating(c *gin.Context) {
	songID, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.ratingService.DeleteRating(c.Request.Context(), getAuthUserID(c), songID); err != nil {
		handleError(c, err)
		return
	}
	Success(c, gin.H{"message": "rating deleted"})
}

// GetMyRating 获取当前用户对歌曲的评分
// GET /api/v1/songs/:id/ratings/mine
func (h *RatingHandler) GetMyRating(c *gin.Context) {
	songID, ok := parseID(c, "id")
	if !ok {
		return
	}

	rating, err := h.ratingService.GetRating(c.Request.Context(), getAuthUserID(c), songID)
	if err != nil {
		handleError(c, err)
		return
	}
	Success(c, rating)
}

// TopRatedSongs 获取评分排行榜
// GET /api/v1/songs/top-rated
func (h *RatingHandler) TopRatedSongs(c *gin.Context) {
	stats, err := h.ratingService.TopRatedSongs(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	Success(c, gin.H{"items": stats, "total": len(stats)})
}
