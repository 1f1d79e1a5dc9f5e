package repository

import (
	"context"
	"time"

	"github.com/tunewave/server/internal/domain"
)

// UserRepository 用户仓储接口
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	UpdateRole(ctx context.Context, id int64, role domain.Role) error
	UpdateStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error
}

// ArtistRepository 歌手仓储接口
type ArtistRepository interface {
	Create(ctx context.Context, artist *domain.Artist) error
	GetByID(ctx context.Context, id int64) (*domain.Artist, error)
	GetByName(ctx context.Context, name string) (*domain.Artist, error)
	List(ctx context.Context) ([]*domain.Artist, error)
	Update(ctx context.Context, artist *domain.Artist) error
	Delete(ctx context.Context, id int64) error
}

// AlbumRepository 专辑仓储接口
type AlbumRepository interface {
	Create(ctx context.Context, album *domain.Album) error
	GetByID(ctx context.Context, id int64) (*domain.Album, error)
	List(ctx context.Context) ([]*domain.Album, error)
	ListByArtist(ctx context.Context, artistID int64) ([]*domain.Album, error)
	CountByArtist(ctx context.Context, artistID int64) (int64, error)
	Update(ctx context.Context, album *domain.Album) error
	Delete(ctx context.Context, id int64) error
}

// SongRepository 歌曲仓储接口
type SongRepository interface {
	Create(ctx context.Context, song *domain.Song) error
	GetByID(ctx context.Context, id int64) (*domain.Song, error)
	List(ctx context.Context) ([]*domain.Song, error)
	ListByArtist(ctx context.Context, artistID int64) ([]*domain.Song, error)
	ListByAlbum(ctx context.Context, albumID int64) ([]*domain.Song, error)
	CountByArtist(ctx context.Context, artistID int64) (int64, error)
	Update(ctx context.Context, song *domain.Song) error
	Delete(ctx context.Context, id int64) error
}

// PlaylistRepository 歌单仓储接口
type PlaylistRepository interface {
	Create(ctx context.Context, playlist *domain.Playlist) error
	GetByID(ctx context.Context, id int64) (*domain.Playlist, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Playlist, error)
	ListPublic(ctx context.Context) ([]*domain.Playlist, error)
	CountByUser(ctx context.Context, userID int64) (int64, error)
	Update(ctx context.Context, playlist *domain.Playlist) error
	Delete(ctx context.Context, id int64) error
}

// PlaylistSongRepository 歌单歌曲关联仓储接口
type PlaylistSongRepository interface {
	Add(ctx context.Context, ps *domain.PlaylistSong) error
	Get(ctx context.Context, playlistID, songID int64) (*domain.PlaylistSong, error)
	List(ctx context.Context, playlistID int64) ([]*domain.PlaylistSong, error)
	Count(ctx context.Context, playlistID int64) (int64, error)
	Exists(ctx context.Context, playlistID, songID int64) (bool, error)
	Remove(ctx context.Context, playlistID, songID int64) error
	DeleteByPlaylist(ctx context.Context, playlistID int64) error
	DeleteBySong(ctx context.Context, songID int64) error
}

// FavoriteRepository 收藏仓储接口
type FavoriteRepository interface {
	Create(ctx context.Context, favorite *domain.Favorite) error
	GetByID(ctx context.Context, id int64) (*domain.Favorite, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Favorite, error)
	ExistsSong(ctx context.Context, userID, songID int64) (bool, error)
	ExistsPlaylist(ctx context.Context, userID, playlistID int64) (bool, error)
	Delete(ctx context.Context, id int64) error
	DeleteByPlaylist(ctx context.Context, playlistID int64) error
	DeleteBySong(ctx context.Context, songID int64) error
	DeleteByUser(ctx context.Context, userID int64) error
}

// RatingRepository 评分仓储接口
type RatingRepository interface {
	Create(ctx context.Context, rating *domain.Rating) error
	GetByUserAndSong(ctx context.Context, userID, songID int64) (*domain.Rating, error)
	Update(ctx context.Context, rating *domain.Rating) error
	Delete(ctx context.Context, id int64) error
	DeleteBySong(ctx context.Context, songID int64) error
	DeleteByUser(ctx context.Context, userID int64) error
	Count(ctx context.Context) (int64, error)
	TopRated(ctx context.Context) ([]*domain.SongRatingStat, error)
}

// EmailVerificationRepository 邮箱验证仓储接口
type EmailVerificationRepository interface {
	Create(ctx context.Context, v *domain.EmailVerification) error
	GetByUser(ctx context.Context, userID int64) (*domain.EmailVerification, error)
	DeleteByUser(ctx context.Context, userID int64) error
}

// PremiumUserRepository 订阅仓储接口
type PremiumUserRepository interface {
	Create(ctx context.Context, p *domain.PremiumUser) error
	GetByUser(ctx context.Context, userID int64) (*domain.PremiumUser, error)
	ListEndingBefore(ctx context.Context, deadline time.Time) ([]*domain.PremiumUser, error)
	ListExpired(ctx context.Context, now time.Time) ([]*domain.PremiumUser, error)
	MarkTwoDayNotified(ctx context.Context, id int64, at time.Time) error
	MarkOneHourNotified(ctx context.Context, id int64, at time.Time) error
	Delete(ctx context.Context, id int64) error
	DeleteByUser(ctx context.Context, userID int64) error
}
