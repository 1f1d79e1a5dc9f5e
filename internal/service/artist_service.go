package service

import (
	"context"
	"errors"

	"github.com/tunewave/server/internal/domain"
	"github.com/tunewave/server/internal/repository"
)

// ArtistService 歌手服务
type ArtistService struct {
	artistRepo repository.ArtistRepository
	albumRepo  repository.AlbumRepository
	songRepo   repository.SongRepository
}

// NewArtistService 创建歌手服务
func NewArtistService(
	artistRepo repository.ArtistRepository,
	albumRepo repository.AlbumRepository,
	songRepo repository.SongRepository,
) *ArtistService {
	return &ArtistService{
		artistRepo: artistRepo,
		albumRepo:  albumRepo,
		songRepo:   songRepo,
	}
}

// AddArtist 创建歌手，名称重复时返回ErrArtistNameTaken
func (s *ArtistService) AddArtist(ctx context.Context, name, bio, imageURL string) (*domain.Artist, error) {
	artist := &domain.Artist{
		Name:     name,
		Bio:      bio,
		ImageURL: imageURL,
	}
	if err := artist.Validate(); err != nil {
		return nil, err
	}

	// 名称唯一性在业务层保证
	if _, err := s.artistRepo.GetByName(ctx, name); err == nil {
		return nil, domain.ErrArtistNameTaken
	} else if !errors.Is(err, domain.ErrArtistNotFound) {
		return nil, err
	}

	if err := s.artistRepo.Create(ctx, artist); err != nil {
		return nil, err
	}
	return artist, nil
}

// GetArtist 获取歌手详情
func (s *ArtistService) GetArtist(ctx context.Context, id int64) (*domain.Artist, error) {
	return s.artistRepo.GetByID(ctx, id)
}

// ListArtists 获取全部歌手，空结果返回ErrNoArtists
func (s *ArtistService) ListArtists(ctx context.Context) ([]*domain.Artist, error) {
	artists, err := s.artistRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(artists) == 0 {
		return nil, domain.ErrNoArtists
	}
	return artists, nil
}

// UpdateArtist 更新歌手信息
func (s *ArtistService) UpdateArtist(ctx context.Context, id int64, name, bio, imageURL string) (*domain.Artist, error) {
	artist, err := s.artistRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name != "" && name != artist.Name {
		if _, err := s.artistRepo.GetByName(ctx, name); err == nil {
			return nil, domain.ErrArtistNameTaken
		} else if !errors.Is(err, domain.ErrArtistNotFound) {
			return nil, err
		}
		artist.Name = name
	}
	if bio != "" {
		artist.Bio = bio
	}
	if imageURL != "" {
		artist.ImageURL = imageURL
	}

	if err := artist.Validate(); err != nil {
		return nil, err
	}
	if err := s.artistRepo.Update(ctx, artist); err != nil {
		return nil, err
	}
	return artist, nil
}

// DeleteArtist 删除歌手，仍被歌曲或专辑引用时拒绝删除
func (s *ArtistService) DeleteArtist(ctx context.Context, id int64) (*domain.Artist, error) {
	artist, err := s.artistRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	songCount, err := s.songRepo.CountByArtist(ctx, id)
	if err != nil {
		return nil, err
	}
	albumCount, err := s.albumRepo.CountByArtist(ctx, id)
	if err != nil {
		return nil, err
	}
	if songCount > 0 || albumCount > 0 {
		return nil, domain.ErrArtistInUse
	}

	if err := s.artistRepo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return artist, nil
}
