package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tunewave/server/internal/domain"
)

// handleError 将领域错误映射为HTTP响应
func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrArtistNotFound),
		errors.Is(err, domain.ErrAlbumNotFound),
		errors.Is(err, domain.ErrSongNotFound),
		errors.Is(err, domain.ErrPlaylistNotFound),
		errors.Is(err, domain.ErrRatingNotFound),
		errors.Is(err, domain.ErrFavoriteNotFound),
		errors.Is(err, domain.ErrSubscriptionNotFound),
		errors.Is(err, domain.ErrSongNotInPlaylist),
		errors.Is(err, domain.ErrNoArtists),
		errors.Is(err, domain.ErrNoAlbums),
		errors.Is(err, domain.ErrNoSongs),
		errors.Is(err, domain.ErrNoPlaylists),
		errors.Is(err, domain.ErrPlaylistEmpty),
		errors.Is(err, domain.ErrNoRatings),
		errors.Is(err, domain.ErrNoFavorites):
		NotFound(c, err.Error())

	case errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrArtistNameTaken),
		errors.Is(err, domain.ErrArtistInUse),
		errors.Is(err, domain.ErrSongAlreadyInPlaylist),
		errors.Is(err, domain.ErrAlreadyRated),
		errors.Is(err, domain.ErrAlreadyFavorited),
		errors.Is(err, domain.ErrAlreadySubscribed):
		Conflict(c, err.Error())

	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUnauthorized):
		Unauthorized(c, err.Error())

	case errors.Is(err, domain.ErrForbidden),
		errors.Is(err, domain.ErrPlaylistLimitReached),
		errors.Is(err, domain.ErrPlaylistSongLimit):
		Forbidden(c, err.Error())

	case errors.Is(err, domain.ErrInvalidUserID),
		errors.Is(err, domain.ErrInvalidSongID),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrInvalidUsername),
		errors.Is(err, domain.ErrInvalidPassword),
		errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, domain.ErrInvalidArtistName),
		errors.Is(err, domain.ErrInvalidAlbumTitle),
		errors.Is(err, domain.ErrInvalidSongTitle),
		errors.Is(err, domain.ErrInvalidDuration),
		errors.Is(err, domain.ErrInvalidGenre),
		errors.Is(err, domain.ErrAlbumArtistMismatch),
		errors.Is(err, domain.ErrInvalidPlaylistName),
		errors.Is(err, domain.ErrInvalidRating),
		errors.Is(err, domain.ErrInvalidFavorite),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrVerificationInvalid),
		errors.Is(err, domain.ErrVerificationExpired):
		BadRequest(c, err.Error())

	default:
		InternalError(c, "internal server error")
	}
}

// parseID 解析路径中的数字ID
func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		BadRequest(c, "invalid "+name)
		return 0, false
	}
	return id, true
}
