package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tunewave/server/internal/domain"
)

// albumRepository PostgreSQL专辑仓储实现
type albumRepository struct {
	db *pgxpool.Pool
}

// NewAlbumRepository 创建专辑仓储
func NewAlbumRepository(db *pgxpool.Pool) AlbumRepository {
	return &albumRepository{db: db}
}

const albumColumns = `id, title, artist_id, release_date, cover_url`

func scanAlbum(row pgx.Row) (*domain.Album, error) {
	var album domain.Album
	err := row.Scan(&album.ID, &album.Title, &album.ArtistID, &album.ReleaseDate, &album.CoverURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAlbumNotFound
		}
		return nil, err
	}
	return &album, nil
}

func collectAlbums(rows pgx.Rows) ([]*domain.Album, error) {
	defer rows.Close()
	var albums []*domain.Album
	for rows.Next() {
		var album domain.Album
		if err := rows.Scan(&album.ID, &album.Title, &album.ArtistID, &album.ReleaseDate, &album.CoverURL); err != nil {
			return nil, err
		}
		albums = append(albums, &album)
	}
	return albums, rows.Err()
}

// Create 创建专辑
func (r *albumRepository) Create(ctx context.Context, album *domain.Album) error {
	query := `
		INSERT INTO albums (title, artist_id, release_date, cover_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	return queryer(ctx, r.db).QueryRow(ctx, query,
		album.Title, album.ArtistID, album.ReleaseDate, album.CoverURL,
	).Scan(&album.ID)
}

// GetByID 根据ID获取专辑
func (r *albumRepository) GetByID(ctx context.Context, id int64) (*domain.Album, error) {
	query := `SELECT ` + albumColumns + ` FROM albums WHERE id = $1`
	return scanAlbum(queryer(ctx, r.db).QueryRow(ctx, query, id))
}

// List 获取全部专辑
func (r *albumRepository) List(ctx context.Context) ([]*domain.Album, error) {
	query := `SELECT ` + albumColumns + ` FROM albums ORDER BY id`
	rows, err := queryer(ctx, r.db).Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return collectAlbums(rows)
}

// ListByArtist 获取歌手的全部专辑
func (r *albumRepository) ListByArtist(ctx context.Context, artistID int64) ([]*domain.Album, error) {
	query := `SELECT ` + albumColumns + ` FROM albums WHERE artist_id = $1 ORDER BY id`
	rows, err := queryer(ctx, r.db).Query(ctx, query, artistID)
	if err != nil {
		return nil, err
	}
	return collectAlbums(rows)
}

// CountByArtist 统计歌手的专辑数量
func (r *albumRepository) CountByArtist(ctx context.Context, artistID int64) (int64, error) {
	var count int64
	err := queryer(ctx, r.db).QueryRow(ctx, `SELECT COUNT(*) FROM albums WHERE artist_id = $1`, artistID).Scan(&count)
	return count, err
}

// Update 更新专辑
func (r *albumRepository) Update(ctx context.Context, album *domain.Album) error {
	query := `UPDATE albums SET title = $2, artist_id = $3, release_date = $4, cover_url = $5 WHERE id = $1`
	_, err := queryer(ctx, r.db).Exec(ctx, query,
		album.ID, album.Title, album.ArtistID, album.ReleaseDate, album.CoverURL,
	)
	return err
}

// Delete 删除专辑
func (r *albumRepository) Delete(ctx context.Context, id int64) error {
	_, err := queryer(ctx, r.db).Exec(ctx, `DELETE FROM albums WHERE id = $1`, id)
	return err
}
