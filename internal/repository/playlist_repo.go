package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tunewave/server/internal/domain"
)

// playlistRepository PostgreSQL歌单仓储实现
type playlistRepository struct {
	db *pgxpool.Pool
}

// NewPlaylistRepository 创建歌单仓储
func NewPlaylistRepository(db *pgxpool.Pool) PlaylistRepository {
	return &playlistRepository{db: db}
}

const playlistColumns = `id, user_id, name, is_public, created_at, updated_at`

func scanPlaylist(row pgx.Row) (*domain.Playlist, error) {
	var p domain.Playlist
	err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.IsPublic, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPlaylistNotFound
		}
		return nil, err
	}
	return &p, nil
}

func collectPlaylists(rows pgx.Rows) ([]*domain.Playlist, error) {
	defer rows.Close()
	var playlists []*domain.Playlist
	for rows.Next() {
		var p domain.Playlist
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.IsPublic, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		playlists = append(playlists, &p)
	}
	return playlists, rows.Err()
}

// Create 创建歌单
func (r *playlistRepository) Create(ctx context.Context, playlist *domain.Playlist) error {
	query := `
		INSERT INTO playlists (user_id, name, is_public, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return queryer(ctx, r.db).QueryRow(ctx, query,
		playlist.UserID, playlist.Name, playlist.IsPublic, playlist.CreatedAt, playlist.UpdatedAt,
	).Scan(&playlist.ID)
}

// GetByID 根据ID获取歌单
func (r *playlistRepository) GetByID(ctx context.Context, id int64) (*domain.Playlist, error) {
	query := `SELECT ` + playlistColumns + ` FROM playlists WHERE id = $1`
	return scanPlaylist(queryer(ctx, r.db).QueryRow(ctx, query, id))
}

// ListByUser 获取用户的歌单列表
func (r *playlistRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Playlist, error) {
	query := `SELECT ` + playlistColumns + ` FROM playlists WHERE user_id = $1 ORDER BY updated_at DESC`
	rows, err := queryer(ctx, r.db).Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return collectPlaylists(rows)
}

// ListPublic 获取公开歌单列表
func (r *playlistRepository) ListPublic(ctx context.Context) ([]*domain.Playlist, error) {
	query := `SELECT ` + playlistColumns + ` FROM playlists WHERE is_public = TRUE ORDER BY updated_at DESC`
	rows, err := queryer(ctx, r.db).Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return collectPlaylists(rows)
}

// CountByUser 统计用户的歌单数量
func (r *playlistRepository) CountByUser(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := queryer(ctx, r.db).QueryRow(ctx, `SELECT COUNT(*) FROM playlists WHERE user_id = $1`, userID).Scan(&count)
	return count, err
}

// Update 更新歌单
func (r *playlistRepository) Update(ctx context.Context, playlist *domain.Playlist) error {
	query := `UPDATE playlists SET name = $2, is_public = $3, updated_at = $4 WHERE id = $1`
	_, err := queryer(ctx, r.db).Exec(ctx, query,
		playlist.ID, playlist.Name, playlist.IsPublic, playlist.UpdatedAt,
	)
	return err
}

// Delete 删除歌单
func (r *playlistRepository) Delete(ctx context.Context, id int64) error {
	_, err := queryer(ctx, r.db).Exec(ctx, `DELETE FROM playlists WHERE id = $1`, id)
	return err
}
