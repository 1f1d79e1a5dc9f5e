package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/tunewave/server/internal/domain"
)

func newSongService(
	songRepo *MockSongRepository,
	artistRepo *MockArtistRepository,
	albumRepo *MockAlbumRepository,
	playlistSongRepo *MockPlaylistSongRepository,
	favoriteRepo *MockFavoriteRepository,
	ratingRepo *MockRatingRepository,
) *SongService {
	return NewSongService(songRepo, artistRepo, albumRepo, playlistSongRepo, favoriteRepo, ratingRepo, fakeTx{})
}

// TestAddSong_Success 测试创建歌曲成功
func TestAddSong_Success(t *testing.T) {
	ctx := context.Background()
	songRepo := new(MockSongRepository)
	artistRepo := new(MockArtistRepository)
	svc := newSongService(songRepo, artistRepo, nil, nil, nil, nil)

	artistRepo.On("GetByID", ctx, int64(1)).Return(&domain.Artist{ID: 1, Name: "Artist"}, nil)
	songRepo.On("Create", ctx, mock.AnythingOfType("*domain.Song")).Return(nil)

	song, err := svc.AddSong(ctx, "Track One", 1, nil, domain.GenreRock, 215, time.Time{}, "")

	assert.NoError(t, err)
	assert.Equal(t, "Track One", song.Title)
	assert.Equal(t, domain.GenreRock, song.Genre)
	songRepo.AssertExpectations(t)
}

// TestAddSong_AlbumArtistMismatch 测试专辑与歌手不一致时拒绝
func TestAddSong_AlbumArtistMismatch(t *testing.T) {
	ctx := context.Background()
	songRepo := new(MockSongRepository)
	artistRepo := new(MockArtistRepository)
	albumRepo := new(MockAlbumRepository)
	svc := newSongService(songRepo, artistRepo, albumRepo, nil, nil, nil)

	albumID := int64(4)
	artistRepo.On("GetByID", ctx, int64(1)).Return(&domain.Artist{ID: 1}, nil)
	albumRepo.On("GetByID", ctx, albumID).Return(&domain.Album{ID: 4, ArtistID: 99}, nil)

	song, err := svc.AddSong(ctx, "Track One", 1, &albumID, domain.GenrePop, 180, time.Time{}, "")

	assert.ErrorIs(t, err, domain.ErrAlbumArtistMismatch)
	assert.Nil(t, song)
	songRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// TestAddSong_InvalidDuration 测试时长必须大于0
func TestAddSong_InvalidDuration(t *testing.T) {
	ctx := context.Background()
	svc := newSongService(nil, nil, nil, nil, nil, nil)

	song, err := svc.AddSong(ctx, "Track One", 1, nil, domain.GenrePop, 0, time.Time{}, "")

	assert.ErrorIs(t, err, domain.ErrInvalidDuration)
	assert.Nil(t, song)
}

// TestAddSong_UnknownGenre 测试非法流派
func TestAddSong_UnknownGenre(t *testing.T) {
	ctx := context.Background()
	svc := newSongService(nil, nil, nil, nil, nil, nil)

	song, err := svc.AddSong(ctx, "Track One", 1, nil, domain.Genre("Polka"), 180, time.Time{}, "")

	assert.ErrorIs(t, err, domain.ErrInvalidGenre)
	assert.Nil(t, song)
}

// TestDeleteSong_Cascades 测试删除歌曲级联清理关联数据
func TestDeleteSong_Cascades(t *testing.T) {
	ctx := context.Background()
	songRepo := new(MockSongRepository)
	playlistSongRepo := new(MockPlaylistSongRepository)
	favoriteRepo := new(MockFavoriteRepository)
	ratingRepo := new(MockRatingRepository)
	svc := newSongService(songRepo, nil, nil, playlistSongRepo, favoriteRepo, ratingRepo)

	song := &domain.Song{ID: 30, Title: "Old Track"}
	songRepo.On("GetByID", ctx, int64(30)).Return(song, nil)
	playlistSongRepo.On("DeleteBySong", ctx, int64(30)).Return(nil)
	favoriteRepo.On("DeleteBySong", ctx, int64(30)).Return(nil)
	ratingRepo.On("DeleteBySong", ctx, int64(30)).Return(nil)
	songRepo.On("Delete", ctx, int64(30)).Return(nil)

	deleted, err := svc.DeleteSong(ctx, 30)

	assert.NoError(t, err)
	assert.Equal(t, song, deleted)
	playlistSongRepo.AssertExpectations(t)
	favoriteRepo.AssertExpectations(t)
	ratingRepo.AssertExpectations(t)
	songRepo.AssertExpectations(t)
}

// TestListSongs_Empty 测试无歌曲时返回ErrNoSongs
func TestListSongs_Empty(t *testing.T) {
	ctx := context.Background()
	songRepo := new(MockSongRepository)
	svc := newSongService(songRepo, nil, nil, nil, nil, nil)

	songRepo.On("List", ctx).Return([]*domain.Song{}, nil)

	songs, err := svc.ListSongs(ctx)

	assert.ErrorIs(t, err, domain.ErrNoSongs)
	assert.Nil(t, songs)
}
