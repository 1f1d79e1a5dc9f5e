package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tunewave/server/internal/domain"
)

// artistRepository PostgreSQL歌手仓储实现
type artistRepository struct {
	db *pgxpool.Pool
}

// NewArtistRepository 创建歌手仓储
func NewArtistRepository(db *pgxpool.Pool) ArtistRepository {
	return &artistRepository{db: db}
}

func scanArtist(row pgx.Row) (*domain.Artist, error) {
	var artist domain.Artist
	err := row.Scan(&artist.ID, &artist.Name, &artist.Bio, &artist.ImageURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrArtistNotFound
		}
		return nil, err
	}
	return &artist, nil
}

// Create 创建歌手
func (r *artistRepository) Create(ctx context.Context, artist *domain.Artist) error {
	query := `INSERT INTO artists (name, bio, image_url) VALUES ($1, $2, $3) RETURNING id`
	return queryer(ctx, r.db).QueryRow(ctx, query, artist.Name, artist.Bio, artist.ImageURL).Scan(&artist.ID)
}

// GetByID 根据ID获取歌手
func (r *artistRepository) GetByID(ctx context.Context, id int64) (*domain.Artist, error) {
	query := `SELECT id, name, bio, image_url FROM artists WHERE id = $1`
	return scanArtist(queryer(ctx, r.db).QueryRow(ctx, query, id))
}

// GetByName 根据名称获取歌手
func (r *artistRepository) GetByName(ctx context.Context, name string) (*domain.Artist, error) {
	query := `SELECT id, name, bio, image_url FROM artists WHERE name = $1`
	return scanArtist(queryer(ctx, r.db).QueryRow(ctx, query, name))
}

// List 获取全部歌手
func (r *artistRepository) List(ctx context.Context) ([]*domain.Artist, error) {
	query := `SELECT id, name, bio, image_url FROM artists ORDER BY id`
	rows, err := queryer(ctx, r.db).Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var artists []*domain.Artist
	for rows.Next() {
		var artist domain.Artist
		if err := rows.Scan(&artist.ID, &artist.Name, &artist.Bio, &artist.ImageURL); err != nil {
			return nil, err
		}
		artists = append(artists, &artist)
	}
	return artists, rows.Err()
}

// Update 更新歌手
func (r *artistRepository) Update(ctx context.Context, artist *domain.Artist) error {
	query := `UPDATE artists SET name = $2, bio = $3, image_url = $4 WHERE id = $1`
	_, err := queryer(ctx, r.db).Exec(ctx, query, artist.ID, artist.Name, artist.Bio, artist.ImageURL)
	return err
}

// Delete 删除歌手
func (r *artistRepository) Delete(ctx context.Context, id int64) error {
	_, err := queryer(ctx, r.db).Exec(ctx, `DELETE FROM artists WHERE id = $1`, id)
	return err
}
