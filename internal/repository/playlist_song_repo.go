package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tunewave/server/internal/domain"
)

// playlistSongRepository PostgreSQL歌单歌曲关联仓储实现
type playlistSongRepository struct {
	db *pgxpool.Pool
}

// NewPlaylistSongRepository 创建歌单歌曲关联仓储
func NewPlaylistSongRepository(db *pgxpool.Pool) PlaylistSongRepository {
	return &playlistSongRepository{db: db}
}

// Add 添加关联
func (r *playlistSongRepository) Add(ctx context.Context, ps *domain.PlaylistSong) error {
	query := `
		INSERT INTO playlist_songs (playlist_id, song_id, added_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	return queryer(ctx, r.db).QueryRow(ctx, query, ps.PlaylistID, ps.SongID, ps.AddedAt).Scan(&ps.ID)
}

// Get 根据(歌单, 歌曲)获取关联
func (r *playlistSongRepository) Get(ctx context.Context, playlistID, songID int64) (*domain.PlaylistSong, error) {
	query := `SELECT id, playlist_id, song_id, added_at FROM playlist_songs WHERE playlist_id = $1 AND song_id = $2`
	var ps domain.PlaylistSong
	err := queryer(ctx, r.db).QueryRow(ctx, query, playlistID, songID).Scan(&ps.ID, &ps.PlaylistID, &ps.SongID, &ps.AddedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSongNotInPlaylist
		}
		return nil, err
	}
	return &ps, nil
}

// List 获取歌单的全部关联，按插入顺序返回
func (r *playlistSongRepository) List(ctx context.Context, playlistID int64) ([]*domain.PlaylistSong, error) {
	query := `SELECT id, playlist_id, song_id, added_at FROM playlist_songs WHERE playlist_id = $1 ORDER BY id`
	rows, err := queryer(ctx, r.db).Query(ctx, query, playlistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []*domain.PlaylistSong
	for rows.Next() {
		var ps domain.PlaylistSong
		if err := rows.Scan(&ps.ID, &ps.PlaylistID, &ps.SongID, &ps.AddedAt); err != nil {
			return nil, err
		}
		links = append(links, &ps)
	}
	return links, rows.Err()
}

// Count 统计歌单的歌曲数量
func (r *playlistSongRepository) Count(ctx context.Context, playlistID int64) (int64, error) {
	var count int64
	err := queryer(ctx, r.db).QueryRow(ctx, `SELECT COUNT(*) FROM playlist_songs WHERE playlist_id = $1`, playlistID).Scan(&count)
	return count, err
}

// Exists 判断歌曲是否已在歌单中
func (r *playlistSongRepository) Exists(ctx context.Context, playlistID, songID int64) (bool, error) {
	var exists bool
	err := queryer(ctx, r.db).QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM playlist_songs WHERE playlist_id = $1 AND song_id = $2)`,
		playlistID, songID,
	).Scan(&exists)
	return exists, err
}

// Remove 删除关联
func (r *playlistSongRepository) Remove(ctx context.Context, playlistID, songID int64) error {
	_, err := queryer(ctx, r.db).Exec(ctx,
		`DELETE FROM playlist_songs WHERE playlist_id = $1 AND song_id = $2`, playlistID, songID)
	return err
}

// DeleteByPlaylist 删除歌单的全部关联
func (r *playlistSongRepository) DeleteByPlaylist(ctx context.Context, playlistID int64) error {
	_, err := queryer(ctx, r.db).Exec(ctx, `DELETE FROM playlist_songs WHERE playlist_id = $1`, playlistID)
	return err
}

// DeleteBySong 删除歌曲的全部关联
func (r *playlistSongRepository) DeleteBySong(ctx context.Context, songID int64) error {
	_, err := queryer(ctx, r.db).Exec(ctx, `DELETE FROM playlist_songs WHERE song_id = $1`, songID)
	return err
}
