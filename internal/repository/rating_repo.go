package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tunewave/server/internal/domain"
)

// ratingRepository PostgreSQL评分仓储实现
type ratingRepository struct {
	db *pgxpool.Pool
}

// NewRatingRepository 创建评分仓储
func NewRatingRepository(db *pgxpool.Pool) RatingRepository {
	return &ratingRepository{db: db}
}

// Create 创建评分
func (r *ratingRepository) Create(ctx context.Context, rating *domain.Rating) error {
	query := `
		INSERT INTO ratings (user_id, song_id, rating, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return queryer(ctx, r.db).QueryRow(ctx, query,
		rating.UserID, rating.SongID, rating.Value, rating.CreatedAt, rating.UpdatedAt,
	).Scan(&rating.ID)
}

// GetByUserAndSong 根据(用户, 歌曲)获取评分
func (r *ratingRepository) GetByUserAndSong(ctx context.Context, userID, songID int64) (*domain.Rating, error) {
	query := `SELECT id, user_id, song_id, rating, created_at, updated_at FROM ratings WHERE user_id = $1 AND song_id = $2`
	var rating domain.Rating
	err := queryer(ctx, r.db).QueryRow(ctx, query, userID, songID).Scan(
		&rating.ID, &rating.UserID, &rating.SongID, &rating.Value, &rating.CreatedAt, &rating.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRatingNotFound
		}
		return nil, err
	}
	return &rating, nil
}

// Update 更新评分值
func (r *ratingRepository) Update(ctx context.Context, rating *domain.Rating) error {
	query := `UPDATE ratings SET rating = $2, updated_at = $3 WHERE id = $1`
	_, err := queryer(ctx, r.db).Exec(ctx, query, rating.ID, rating.Value, rating.UpdatedAt)
	return err
}

// Delete 删除评分
func (r *ratingRepository) Delete(ctx context.Context, id int64) error {
	_, err := queryer(ctx, r.db).Exec(ctx, `DELETE FROM ratings WHERE id = $1`, id)
	return err
}

// DeleteBySong 删除歌曲的全部评分
func (r *ratingRepository) DeleteBySong(ctx context.Context, songID int64) error {
	_, err := queryer(ctx, r.db).Exec(ctx, `DELETE FROM ratings WHERE song_id = $1`, songID)
	return err
}

// DeleteByUser 删除用户的全部评分
func (r *ratingRepository) DeleteByUser(ctx context.Context, userID int64) error {
	_, err := queryer(ctx, r.db).Exec(ctx, `DELETE FROM ratings WHERE user_id = $1`, userID)
	return err
}

// Count 统计评分总数
func (r *ratingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := queryer(ctx, r.db).QueryRow(ctx, `SELECT COUNT(*) FROM ratings`).Scan(&count)
	return count, err
}

// TopRated 按平均分降序返回歌曲评分聚合，平均分相同时按歌曲ID升序保证顺序稳定
func (r *ratingRepository) TopRated(ctx context.Context) ([]*domain.SongRatingStat, error) {
	query := `
		SELECT s.id, s.title, AVG(r.rating)::float8, COUNT(r.id)
		FROM ratings r
		JOIN songs s ON s.id = r.song_id
		GROUP BY s.id, s.title
		ORDER BY AVG(r.rating) DESC, s.id
	`
	rows, err := queryer(ctx, r.db).Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []*domain.SongRatingStat
	for rows.Next() {
		var stat domain.SongRatingStat
		if err := rows.Scan(&stat.SongID, &stat.Title, &stat.AvgRating, &stat.RatingCount); err != nil {
			return nil, err
		}
		stats = append(stats, &stat)
	}
	return stats, rows.Err()
}
