package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tunewave/server/internal/domain"
)

// favoriteRepository PostgreSQL收藏仓储实现
type favoriteRepository struct {
	db *pgxpool.Pool
}

// NewFavoriteRepository 创建收藏仓储
func NewFavoriteRepository(db *pgxpool.Pool) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Create 创建收藏
func (r *favoriteRepository) Create(ctx context.Context, favorite *domain.Favorite) error {
	query := `
		INSERT INTO favorites (user_id, song_id, playlist_id, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	return queryer(ctx, r.db).QueryRow(ctx, query,
		favorite.UserID, favorite.SongID, favorite.PlaylistID, favorite.CreatedAt,
	).Scan(&favorite.ID)
}

// GetByID 根据ID获取收藏
func (r *favoriteRepository) GetByID(ctx context.Context, id int64) (*domain.Favorite, error) {
	query := `SELECT id, user_id, song_id, playlist_id, created_at FROM favorites WHERE id = $1`
	var f domain.Favorite
	err := queryer(ctx, r.db).QueryRow(ctx, query, id).Scan(&f.ID, &f.UserID, &f.SongID, &f.PlaylistID, &f.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrFavoriteNotFound
		}
		return nil, err
	}
	return &f, nil
}

// ListByUser 获取用户的收藏列表
func (r *favoriteRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Favorite, error) {
	query := `SELECT id, user_id, song_id, playlist_id, created_at FROM favorites WHERE user_id = $1 ORDER BY id`
	rows, err := queryer(ctx, r.db).Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var favorites []*domain.Favorite
	for rows.Next() {
		var f domain.Favorite
		if err := rows.Scan(&f.ID, &f.UserID, &f.SongID, &f.PlaylistID, &f.CreatedAt); err != nil {
			return nil, err
		}
		favorites = append(favorites, &f)
	}
	return favorites, rows.Err()
}

// ExistsSong 判断用户是否已收藏歌曲
func (r *favoriteRepository) ExistsSong(ctx context.Context, userID, songID int64) (bool, error) {
	var exists bool
	err := queryer(ctx, r.db).QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM favorites WHERE user_id = $1 AND song_id = $2)`,
		userID, songID,
	).Scan(&exists)
	return exists, err
}

// ExistsPlaylist 判断用户是否已收藏歌单
func (r *favoriteRepository) ExistsPlaylist(ctx context.Context, userID, playlistID int64) (bool, error) {
	var exists bool
	err := queryer(ctx, r.db).QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM favorites WHERE user_id = $1 AND playlist_id = $2)`,
		userID, playlistID,
	).Scan(&exists)
	return exists, err
}

// Delete 删除收藏
func (r *favoriteRepository) Delete(ctx context.Context, id int64) error {
	_, err := queryer(ctx, r.db).Exec(ctx, `DELETE FROM favorites WHERE id = $1`, id)
	return err
}

// DeleteByPlaylist 删除引用歌单的全部收藏
func (r *favoriteRepository) DeleteByPlaylist(ctx context.Context, playlistID int64) error {
	_, err := queryer(ctx, r.db).Exec(ctx, `DELETE FROM favorites WHERE playlist_id = $1`, playlistID)
	return err
}

// DeleteBySong 删除引用歌曲的全部收藏
func (r *favoriteRepository) DeleteBySong(ctx context.Context, songID int64) error {
	_, err := queryer(ctx, r.db).Exec(ctx, `DELETE FROM favorites WHERE song_id = $1`, songID)
	return err
}

// DeleteByUser 删除用户的全部收藏
func (r *favoriteRepository) DeleteByUser(ctx context.Context, userID int64) error {
	_, err := queryer(ctx, r.db).Exec(ctx, `DELETE FROM favorites WHERE user_id = $1`, userID)
	return err
}
