package service

import (
	"context"
	"time"

	"github.com/tunewave/server/internal/domain"
	"github.com/tunewave/server/internal/repository"
)

// PlaylistService 歌单服务
type PlaylistService struct {
	playlistRepo     repository.PlaylistRepository
	playlistSongRepo repository.PlaylistSongRepository
	favoriteRepo     repository.FavoriteRepository
	userRepo         repository.UserRepository
	limits           LimitsProvider
	tx               repository.Tx
}

// NewPlaylistService 创建歌单服务
func NewPlaylistService(
	playlistRepo repository.PlaylistRepository,
	playlistSongRepo repository.PlaylistSongRepository,
	favoriteRepo repository.FavoriteRepository,
	userRepo repository.UserRepository,
	limits LimitsProvider,
	tx repository.Tx,
) *PlaylistService {
	return &PlaylistService{
		playlistRepo:     playlistRepo,
		playlistSongRepo: playlistSongRepo,
		favoriteRepo:     favoriteRepo,
		userRepo:         userRepo,
		limits:           limits,
		tx:               tx,
	}
}

// AddPlaylist 创建歌单，普通用户受歌单数量配额限制
func (s *PlaylistService) AddPlaylist(ctx context.Context, userID int64, name string, isPublic bool) (*domain.Playlist, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.Role == domain.RoleNormalUser {
		count, err := s.playlistRepo.CountByUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		if count >= int64(s.limits.Limits().MaxPlaylistsPerUser) {
			return nil, domain.ErrPlaylistLimitReached
		}
	}

	now := time.Now()
	playlist := &domain.Playlist{
		UserID:    userID,
		Name:      name,
		IsPublic:  isPublic,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := playlist.Validate(); err != nil {
		return nil, err
	}
	if err := s.playlistRepo.Create(ctx, playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

// GetPlaylist 获取歌单详情
func (s *PlaylistService) GetPlaylist(ctx context.Context, id int64) (*domain.Playlist, error) {
	return s.playlistRepo.GetByID(ctx, id)
}

// GetPlaylistsByUser 获取用户的歌单列表，空结果返回ErrNoPlaylists
func (s *PlaylistService) GetPlaylistsByUser(ctx context.Context, userID int64) ([]*domain.Playlist, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	playlists, err := s.playlistRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(playlists) == 0 {
		return nil, domain.ErrNoPlaylists
	}
	return playlists, nil
}

// GetPublicPlaylists 获取全部公开歌单
func (s *PlaylistService) GetPublicPlaylists(ctx context.Context) ([]*domain.Playlist, error) {
	playlists, err := s.playlistRepo.ListPublic(ctx)
	if err != nil {
		return nil, err
	}
	if len(playlists) == 0 {
		return nil, domain.ErrNoPlaylists
	}
	return playlists, nil
}

// UpdatePlaylist 更新歌单名称与可见性
func (s *PlaylistService) UpdatePlaylist(ctx context.Context, id int64, name string, isPublic *bool) (*domain.Playlist, error) {
	playlist, err := s.playlistRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name != "" {
		playlist.Name = name
	}
	if isPublic != nil {
		playlist.IsPublic = *isPublic
	}
	playlist.UpdatedAt = time.Now()

	if err := playlist.Validate(); err != nil {
		return nil, err
	}
	if err := s.playlistRepo.Update(ctx, playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

// DeletePlaylist 删除歌单：在单个事务内先清理收藏与歌曲关联
func (s *PlaylistService) DeletePlaylist(ctx context.Context, id int64) (*domain.Playlist, error) {
	playlist, err := s.playlistRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.favoriteRepo.DeleteByPlaylist(ctx, id); err != nil {
			return err
		}
		if err := s.playlistSongRepo.DeleteByPlaylist(ctx, id); err != nil {
			return err
		}
		return s.playlistRepo.Delete(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return playlist, nil
}
