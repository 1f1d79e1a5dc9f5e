package service

import (
	"context"
	"time"

	"github.com/tunewave/server/internal/domain"
	"github.com/tunewave/server/internal/repository"
)

// AlbumService 专辑服务
type AlbumService struct {
	albumRepo        repository.AlbumRepository
	artistRepo       repository.ArtistRepository
	songRepo         repository.SongRepository
	playlistSongRepo repository.PlaylistSongRepository
	favoriteRepo     repository.FavoriteRepository
	ratingRepo       repository.RatingRepository
	tx               repository.Tx
}

// NewAlbumService 创建专辑服务
func NewAlbumService(
	albumRepo repository.AlbumRepository,
	artistRepo repository.ArtistRepository,
	songRepo repository.SongRepository,
	playlistSongRepo repository.PlaylistSongRepository,
	favoriteRepo repository.FavoriteRepository,
	ratingRepo repository.RatingRepository,
	tx repository.Tx,
) *AlbumService {
	return &AlbumService{
		albumRepo:        albumRepo,
		artistRepo:       artistRepo,
		songRepo:         songRepo,
		playlistSongRepo: playlistSongRepo,
		favoriteRepo:     favoriteRepo,
		ratingRepo:       ratingRepo,
		tx:               tx,
	}
}

// AddAlbum 创建专辑，歌手必须存在
func (s *AlbumService) AddAlbum(ctx context.Context, title string, artistID int64, releaseDate time.Time, coverURL string) (*domain.Album, error) {
	album := &domain.Album{
		Title:       title,
		ArtistID:    artistID,
		ReleaseDate: releaseDate,
		CoverURL:    coverURL,
	}
	if err := album.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.artistRepo.GetByID(ctx, artistID); err != nil {
		return nil, err
	}

	if err := s.albumRepo.Create(ctx, album); err != nil {
		return nil, err
	}
	return album, nil
}

// GetAlbum 获取专辑详情
func (s *AlbumService) GetAlbum(ctx context.Context, id int64) (*domain.Album, error) {
	return s.albumRepo.GetByID(ctx, id)
}

// ListAlbums 获取全部专辑，空结果返回ErrNoAlbums
func (s *AlbumService) ListAlbums(ctx context.Context) ([]*domain.Album, error) {
	albums, err := s.albumRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(albums) == 0 {
		return nil, domain.ErrNoAlbums
	}
	return albums, nil
}

// ListAlbumsByArtist 获取歌手的专辑列表
func (s *AlbumService) ListAlbumsByArtist(ctx context.Context, artistID int64) ([]*domain.Album, error) {
	if _, err := s.artistRepo.GetByID(ctx, artistID); err != nil {
		return nil, err
	}
	albums, err := s.albumRepo.ListByArtist(ctx, artistID)
	if err != nil {
		return nil, err
	}
	if len(albums) == 0 {
		return nil, domain.ErrNoAlbums
	}
	return albums, nil
}

// UpdateAlbum 更新专辑，重新校验歌手引用
func (s *AlbumService) UpdateAlbum(ctx context.Context, id int64, title string, artistID int64, releaseDate time.Time, coverURL string) (*domain.Album, error) {
	album, err := s.albumRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if title != "" {
		album.Title = title
	}
	if artistID > 0 && artistID != album.ArtistID {
		if _, err := s.artistRepo.GetByID(ctx, artistID); err != nil {
			return nil, err
		}
		album.ArtistID = artistID
	}
	if !releaseDate.IsZero() {
		album.ReleaseDate = releaseDate
	}
	if coverURL != "" {
		album.CoverURL = coverURL
	}

	if err := album.Validate(); err != nil {
		return nil, err
	}
	if err := s.albumRepo.Update(ctx, album); err != nil {
		return nil, err
	}
	return album, nil
}

// DeleteAlbum 删除专辑：在单个事务内逐首删除专辑下的歌曲
// （连同歌曲的歌单关联、收藏与评分），再删除专辑本身
func (s *AlbumService) DeleteAlbum(ctx context.Context, id int64) (*domain.Album, error) {
	album, err := s.albumRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		songs, err := s.songRepo.ListByAlbum(ctx, id)
		if err != nil {
			return err
		}
		for _, song := range songs {
			if err := s.playlistSongRepo.DeleteBySong(ctx, song.ID); err != nil {
				return err
			}
			if err := s.favoriteRepo.DeleteBySong(ctx, song.ID); err != nil {
				return err
			}
			if err := s.ratingRepo.DeleteBySong(ctx, song.ID); err != nil {
				return err
			}
			if err := s.songRepo.Delete(ctx, song.ID); err != nil {
				return err
			}
		}
		return s.albumRepo.Delete(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return album, nil
}
