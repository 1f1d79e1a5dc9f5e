package service

import (
	"context"
	"time"

	"github.com/tunewave/server/internal/domain"
	"github.com/tunewave/server/internal/repository"
)

// FavoriteService 收藏服务
type FavoriteService struct {
	favoriteRepo repository.FavoriteRepository
	songRepo     repository.SongRepository
	playlistRepo repository.PlaylistRepository
	userRepo     repository.UserRepository
}

// NewFavoriteService 创建收藏服务
func NewFavoriteService(
	favoriteRepo repository.FavoriteRepository,
	songRepo repository.SongRepository,
	playlistRepo repository.PlaylistRepository,
	userRepo repository.UserRepository,
) *FavoriteService {
	return &FavoriteService{
		favoriteRepo: favoriteRepo,
		songRepo:     songRepo,
		playlistRepo: playlistRepo,
		userRepo:     userRepo,
	}
}

// FavoriteSong 收藏歌曲
func (s *FavoriteService) FavoriteSong(ctx context.Context, userID, songID int64) (*domain.Favorite, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	if _, err := s.songRepo.GetByID(ctx, songID); err != nil {
		return nil, err
	}

	exists, err := s.favoriteRepo.ExistsSong(ctx, userID, songID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrAlreadyFavorited
	}

	favorite := &domain.Favorite{
		UserID:    userID,
		SongID:    &songID,
		CreatedAt: time.Now(),
	}
	if err := favorite.Validate(); err != nil {
		return nil, err
	}
	if err := s.favoriteRepo.Create(ctx, favorite); err != nil {
		return nil, err
	}
	return favorite, nil
}

// FavoritePlaylist 收藏歌单
func (s *FavoriteService) FavoritePlaylist(ctx context.Context, userID, playlistID int64) (*domain.Favorite, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	if _, err := s.playlistRepo.GetByID(ctx, playlistID); err != nil {
		return nil, err
	}

	exists, err := s.favoriteRepo.ExistsPlaylist(ctx, userID, playlistID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrAlreadyFavorited
	}

	favorite := &domain.Favorite{
		UserID:     userID,
		PlaylistID: &playlistID,
		CreatedAt:  time.Now(),
	}
	if err := favorite.Validate(); err != nil {
		return nil, err
	}
	if err := s.favoriteRepo.Create(ctx, favorite); err != nil {
		return nil, err
	}
	return favorite, nil
}

// Unfavorite 取消收藏，只能取消本人的收藏
func (s *FavoriteService) Unfavorite(ctx context.Context, userID, favoriteID int64) error {
	favorite, err := s.favoriteRepo.GetByID(ctx, favoriteID)
	if err != nil {
		return err
	}
	if favorite.UserID != userID {
		return domain.ErrForbidden
	}
	return s.favoriteRepo.Delete(ctx, favoriteID)
}

// ListFavorites 获取用户的收藏列表，空结果返回ErrNoFavorites
func (s *FavoriteService) ListFavorites(ctx context.Context, userID int64) ([]*domain.Favorite, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	favorites, err := s.favoriteRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(favorites) == 0 {
		return nil, domain.ErrNoFavorites
	}
	return favorites, nil
}
