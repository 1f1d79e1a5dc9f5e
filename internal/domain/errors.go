package domain

import "errors"

var (
	// 通用错误
	ErrInvalidUserID = errors.New("invalid user id")
	ErrInvalidSongID = errors.New("invalid song id")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")

	// 用户相关错误
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrInvalidUsername    = errors.New("invalid username")
	ErrInvalidPassword    = errors.New("password too short")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidRole        = errors.New("invalid role")

	// 邮箱验证相关错误
	ErrVerificationNotFound = errors.New("verification not found")
	ErrVerificationInvalid  = errors.New("verification code invalid")
	ErrVerificationExpired  = errors.New("verification code expired")

	// 歌手相关错误
	ErrArtistNotFound    = errors.New("artist not found")
	ErrArtistNameTaken   = errors.New("artist name already exists")
	ErrArtistInUse       = errors.New("artist still referenced by songs or albums")
	ErrInvalidArtistName = errors.New("invalid artist name")
	ErrNoArtists         = errors.New("no artists found")

	// 专辑相关错误
	ErrAlbumNotFound     = errors.New("album not found")
	ErrInvalidAlbumTitle = errors.New("invalid album title")
	ErrNoAlbums          = errors.New("no albums found")

	// 歌曲相关错误
	ErrSongNotFound        = errors.New("song not found")
	ErrInvalidSongTitle    = errors.New("invalid song title")
	ErrInvalidDuration     = errors.New("duration must be greater than zero")
	ErrInvalidGenre        = errors.New("unrecognized genre")
	ErrAlbumArtistMismatch = errors.New("album belongs to a different artist")
	ErrNoSongs             = errors.New("no songs found")

	// 歌单相关错误
	ErrPlaylistNotFound      = errors.New("playlist not found")
	ErrInvalidPlaylistName   = errors.New("invalid playlist name")
	ErrPlaylistLimitReached  = errors.New("playlist limit reached")
	ErrNoPlaylists           = errors.New("no playlists found")
	ErrPlaylistEmpty         = errors.New("playlist has no songs")
	ErrSongAlreadyInPlaylist = errors.New("song already in playlist")
	ErrSongNotInPlaylist     = errors.New("song not in playlist")
	ErrPlaylistSongLimit     = errors.New("playlist song limit reached")

	// 评分相关错误
	ErrRatingNotFound = errors.New("rating not found")
	ErrAlreadyRated   = errors.New("song already rated by user")
	ErrInvalidRating  = errors.New("rating must be between 1 and 5")
	ErrNoRatings      = errors.New("no ratings found")

	// 收藏相关错误
	ErrFavoriteNotFound = errors.New("favorite not found")
	ErrAlreadyFavorited = errors.New("already favorited")
	ErrInvalidFavorite  = errors.New("favorite must reference exactly one of song or playlist")
	ErrNoFavorites      = errors.New("no favorites found")

	// 订阅相关错误
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrAlreadySubscribed    = errors.New("user already has an active subscription")
	ErrInvalidAmount        = errors.New("invalid payment amount")
)
