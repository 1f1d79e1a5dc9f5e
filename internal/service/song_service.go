package service

import (
	"context"
	"time"

	"github.com/tunewave/server/internal/domain"
	"github.com/tunewave/server/internal/repository"
)

// SongService 歌曲服务
type SongService struct {
	songRepo         repository.SongRepository
	artistRepo       repository.ArtistRepository
	albumRepo        repository.AlbumRepository
	playlistSongRepo repository.PlaylistSongRepository
	favoriteRepo     repository.FavoriteRepository
	ratingRepo       repository.RatingRepository
	tx               repository.Tx
}

// NewSongService 创建歌曲服务
func NewSongService(
	songRepo repository.SongRepository,
	artistRepo repository.ArtistRepository,
	albumRepo repository.AlbumRepository,
	playlistSongRepo repository.PlaylistSongRepository,
	favoriteRepo repository.FavoriteRepository,
	ratingRepo repository.RatingRepository,
	tx repository.Tx,
) *SongService {
	return &SongService{
		songRepo:         songRepo,
		artistRepo:       artistRepo,
		albumRepo:        albumRepo,
		playlistSongRepo: playlistSongRepo,
		favoriteRepo:     favoriteRepo,
		ratingRepo:       ratingRepo,
		tx:               tx,
	}
}

// validateReferences 校验歌手存在；若设置了专辑，专辑必须存在且属于同一歌手
func (s *SongService) validateReferences(ctx context.Context, song *domain.Song) error {
	if _, err := s.artistRepo.GetByID(ctx, song.ArtistID); err != nil {
		return err
	}
	if song.AlbumID != nil {
		album, err := s.albumRepo.GetByID(ctx, *song.AlbumID)
		if err != nil {
			return err
		}
		if album.ArtistID != song.ArtistID {
			return domain.ErrAlbumArtistMismatch
		}
	}
	return nil
}

// AddSong 创建歌曲
func (s *SongService) AddSong(ctx context.Context, title string, artistID int64, albumID *int64, genre domain.Genre, duration int, releaseDate time.Time, url string) (*domain.Song, error) {
	song := &domain.Song{
		Title:       title,
		ArtistID:    artistID,
		AlbumID:     albumID,
		Genre:       genre,
		Duration:    duration,
		ReleaseDate: releaseDate,
		URL:         url,
	}
	if err := song.Validate(); err != nil {
		return nil, err
	}
	if err := s.validateReferences(ctx, song); err != nil {
		return nil, err
	}

	if err := s.songRepo.Create(ctx, song); err != nil {
		return nil, err
	}
	return song, nil
}

// GetSong 获取歌曲详情
func (s *SongService) GetSong(ctx context.Context, id int64) (*domain.Song, error) {
	return s.songRepo.GetByID(ctx, id)
}

// ListSongs 获取全部歌曲，空结果返回ErrNoSongs
func (s *SongService) ListSongs(ctx context.Context) ([]*domain.Song, error) {
	songs, err := s.songRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(songs) == 0 {
		return nil, domain.ErrNoSongs
	}
	return songs, nil
}

// ListSongsByArtist 获取歌手的歌曲列表
func (s *SongService) ListSongsByArtist(ctx context.Context, artistID int64) ([]*domain.Song, error) {
	if _, err := s.artistRepo.GetByID(ctx, artistID); err != nil {
		return nil, err
	}
	songs, err := s.songRepo.ListByArtist(ctx, artistID)
	if err != nil {
		return nil, err
	}
	if len(songs) == 0 {
		return nil, domain.ErrNoSongs
	}
	return songs, nil
}

// ListSongsByAlbum 获取专辑的歌曲列表
func (s *SongService) ListSongsByAlbum(ctx context.Context, albumID int64) ([]*domain.Song, error) {
	if _, err := s.albumRepo.GetByID(ctx, albumID); err != nil {
		return nil, err
	}
	songs, err := s.songRepo.ListByAlbum(ctx, albumID)
	if err != nil {
		return nil, err
	}
	if len(songs) == 0 {
		return nil, domain.ErrNoSongs
	}
	return songs, nil
}

// UpdateSong 更新歌曲，重新校验歌手与专辑引用
func (s *SongService) UpdateSong(ctx context.Context, id int64, title string, artistID int64, albumID *int64, genre domain.Genre, duration int, releaseDate time.Time, url string) (*domain.Song, error) {
	song, err := s.songRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if title != "" {
		song.Title = title
	}
	if artistID > 0 {
		song.ArtistID = artistID
	}
	if albumID != nil {
		song.AlbumID = albumID
	}
	if genre != "" {
		song.Genre = genre
	}
	if duration != 0 {
		song.Duration = duration
	}
	if !releaseDate.IsZero() {
		song.ReleaseDate = releaseDate
	}
	if url != "" {
		song.URL = url
	}

	if err := song.Validate(); err != nil {
		return nil, err
	}
	if err := s.validateReferences(ctx, song); err != nil {
		return nil, err
	}
	if err := s.songRepo.Update(ctx, song); err != nil {
		return nil, err
	}
	return song, nil
}

// DeleteSong 删除歌曲：在单个事务内先清理歌单关联、收藏与评分
func (s *SongService) DeleteSong(ctx context.Context, id int64) (*domain.Song, error) {
	song, err := s.songRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.playlistSongRepo.DeleteBySong(ctx, id); err != nil {
			return err
		}
		if err := s.favoriteRepo.DeleteBySong(ctx, id); err != nil {
			return err
		}
		if err := s.ratingRepo.DeleteBySong(ctx, id); err != nil {
			return err
		}
		return s.songRepo.Delete(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return song, nil
}
