package service

import (
	"context"
	"errors"
	"time"

	"github.com/tunewave/server/internal/cache"
	"github.com/tunewave/server/internal/domain"
	"github.com/tunewave/server/internal/repository"
)

// RatingService 评分服务
type RatingService struct {
	ratingRepo  repository.RatingRepository
	songRepo    repository.SongRepository
	userRepo    repository.UserRepository
	leaderboard *cache.Leaderboard
}

// NewRatingService 创建评分服务，leaderboard可为nil表示不启用缓存
func NewRatingService(
	ratingRepo repository.RatingRepository,
	songRepo repository.SongRepository,
	userRepo repository.UserRepository,
	leaderboard *cache.Leaderboard,
) *RatingService {
	return &RatingService{
		ratingRepo:  ratingRepo,
		songRepo:    songRepo,
		userRepo:    userRepo,
		leaderboard: leaderboard,
	}
}

// AddRating 新增评分，同一用户对同一歌曲只能评分一次
func (s *RatingService) AddRating(ctx context.Context, userID, songID int64, value int) (*domain.Rating, error) {
	if err := domain.ValidateRatingValue(value); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	if _, err := s.songRepo.GetByID(ctx, songID); err != nil {
		return nil, err
	}

	if _, err := s.ratingRepo.GetByUserAndSong(ctx, userID, songID); err == nil {
		return nil, domain.ErrAlreadyRated
	} else if !errors.Is(err, domain.ErrRatingNotFound) {
		return nil, err
	}

	now := time.Now()
	rating := &domain.Rating{
		UserID:    userID,
		SongID:    songID,
		Value:     value,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.ratingRepo.Create(ctx, rating); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return rating, nil
}

// UpdateRating 修改已有评分
func (s *RatingService) UpdateRating(ctx context.Context, userID, songID int64, value int) (*domain.Rating, error) {
	if err := domain.ValidateRatingValue(value); err != nil {
		return nil, err
	}

	rating, err := s.ratingRepo.GetByUserAndSong(ctx, userID, songID)
	if err != nil {
		return nil, err
	}

	rating.Value = value
	rating.UpdatedAt = time.Now()
	if err := s.ratingRepo.Update(ctx, rating); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return rating, nil
}

// DeleteRating 删除评分
func (s *RatingService) DeleteRating(ctx context.Context, userID, songID int64) error {
	rating, err := s.ratingRepo.GetByUserAndSong(ctx, userID, songID)
	if err != nil {
		return err
	}
	if err := s.ratingRepo.Delete(ctx, rating.ID); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// GetRating 获取用户对歌曲的评分
func (s *RatingService) GetRating(ctx context.Context, userID, songID int64) (*domain.Rating, error) {
	return s.ratingRepo.GetByUserAndSong(ctx, userID, songID)
}

// TopRatedSongs 按平均分降序返回排行榜，无评分时返回ErrNoRatings
func (s *RatingService) TopRatedSongs(ctx context.Context) ([]*domain.SongRatingStat, error) {
	compute := func(ctx context.Context) ([]*domain.SongRatingStat, error) {
		return s.ratingRepo.TopRated(ctx)
	}

	var stats []*domain.SongRatingStat
	var err error
	if s.leaderboard != nil {
		stats, err = s.leaderboard.GetOrCompute(ctx, compute)
	} else {
		stats, err = compute(ctx)
	}
	if err != nil {
		return nil, err
	}
	if len(stats) == 0 {
		return nil, domain.ErrNoRatings
	}
	return stats, nil
}

// invalidate 评分写操作后清理排行榜缓存，失败仅忽略
func (s *RatingService) invalidate(ctx context.Context) {
	if s.leaderboard != nil {
		_ = s.leaderboard.Invalidate(ctx)
	}
}
