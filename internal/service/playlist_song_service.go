package service

import (
	"context"
	"time"

	"github.com/tunewave/server/internal/domain"
	"github.com/tunewave/server/internal/repository"
)

// PlaylistSongService 歌单歌曲服务
type PlaylistSongService struct {
	playlistSongRepo repository.PlaylistSongRepository
	playlistRepo     repository.PlaylistRepository
	songRepo         repository.SongRepository
	userRepo         repository.UserRepository
	limits           LimitsProvider
	tx               repository.Tx
}

// NewPlaylistSongService 创建歌单歌曲服务
func NewPlaylistSongService(
	playlistSongRepo repository.PlaylistSongRepository,
	playlistRepo repository.PlaylistRepository,
	songRepo repository.SongRepository,
	userRepo repository.UserRepository,
	limits LimitsProvider,
	tx repository.Tx,
) *PlaylistSongService {
	return &PlaylistSongService{
		playlistSongRepo: playlistSongRepo,
		playlistRepo:     playlistRepo,
		songRepo:         songRepo,
		userRepo:         userRepo,
		limits:           limits,
		tx:               tx,
	}
}

// AddSongToPlaylist 向歌单添加歌曲，歌单属于普通用户时受歌曲数量配额限制
func (s *PlaylistSongService) AddSongToPlaylist(ctx context.Context, playlistID, songID int64) (*domain.PlaylistSong, error) {
	playlist, err := s.playlistRepo.GetByID(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	if _, err := s.songRepo.GetByID(ctx, songID); err != nil {
		return nil, err
	}

	exists, err := s.playlistSongRepo.Exists(ctx, playlistID, songID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrSongAlreadyInPlaylist
	}

	// 配额按歌单所有者的角色判定
	owner, err := s.userRepo.GetByID(ctx, playlist.UserID)
	if err != nil {
		return nil, err
	}
	if owner.Role == domain.RoleNormalUser {
		count, err := s.playlistSongRepo.Count(ctx, playlistID)
		if err != nil {
			return nil, err
		}
		if count >= int64(s.limits.Limits().MaxSongsPerPlaylist) {
			return nil, domain.ErrPlaylistSongLimit
		}
	}

	ps := &domain.PlaylistSong{
		PlaylistID: playlistID,
		SongID:     songID,
		AddedAt:    time.Now(),
	}
	if err := s.playlistSongRepo.Add(ctx, ps); err != nil {
		return nil, err
	}
	return ps, nil
}

// RemoveSongFromPlaylist 从歌单移除歌曲，返回被移除的关联
func (s *PlaylistSongService) RemoveSongFromPlaylist(ctx context.Context, playlistID, songID int64) (*domain.PlaylistSong, error) {
	if _, err := s.playlistRepo.GetByID(ctx, playlistID); err != nil {
		return nil, err
	}

	ps, err := s.playlistSongRepo.Get(ctx, playlistID, songID)
	if err != nil {
		return nil, err
	}
	if err := s.playlistSongRepo.Remove(ctx, playlistID, songID); err != nil {
		return nil, err
	}
	return ps, nil
}

// GetSongsInPlaylist 获取歌单内的歌曲，空歌单返回ErrPlaylistEmpty
func (s *PlaylistSongService) GetSongsInPlaylist(ctx context.Context, playlistID int64) ([]*domain.Song, error) {
	if _, err := s.playlistRepo.GetByID(ctx, playlistID); err != nil {
		return nil, err
	}

	links, err := s.playlistSongRepo.List(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	if len(links) == 0 {
		return nil, domain.ErrPlaylistEmpty
	}

	songs := make([]*domain.Song, 0, len(links))
	for _, link := range links {
		song, err := s.songRepo.GetByID(ctx, link.SongID)
		if err != nil {
			return nil, err
		}
		songs = append(songs, song)
	}
	return songs, nil
}

// GetSongCount 获取歌单内歌曲数量
func (s *PlaylistSongService) GetSongCount(ctx context.Context, playlistID int64) (int64, error) {
	if _, err := s.playlistRepo.GetByID(ctx, playlistID); err != nil {
		return 0, err
	}
	return s.playlistSongRepo.Count(ctx, playlistID)
}

// ClearPlaylist 清空歌单内全部歌曲
func (s *PlaylistSongService) ClearPlaylist(ctx context.Context, playlistID int64) error {
	if _, err := s.playlistRepo.GetByID(ctx, playlistID); err != nil {
		return err
	}
	count, err := s.playlistSongRepo.Count(ctx, playlistID)
	if err != nil {
		return err
	}
	if count == 0 {
		return domain.ErrPlaylistEmpty
	}
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		return s.playlistSongRepo.DeleteByPlaylist(ctx, playlistID)
	})
}
