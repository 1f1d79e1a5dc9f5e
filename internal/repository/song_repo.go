package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tunewave/server/internal/domain"
)

// songRepository PostgreSQL歌曲仓储实现
type songRepository struct {
	db *pgxpool.Pool
}

// NewSongRepository 创建歌曲仓储
func NewSongRepository(db *pgxpool.Pool) SongRepository {
	return &songRepository{db: db}
}

const songColumns = `id, title, artist_id, album_id, genre, duration, release_date, url`

func scanSong(row pgx.Row) (*domain.Song, error) {
	var song domain.Song
	err := row.Scan(
		&song.ID,
		&song.Title,
		&song.ArtistID,
		&song.AlbumID,
		&song.Genre,
		&song.Duration,
		&song.ReleaseDate,
		&song.URL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSongNotFound
		}
		return nil, err
	}
	return &song, nil
}

func collectSongs(rows pgx.Rows) ([]*domain.Song, error) {
	defer rows.Close()
	var songs []*domain.Song
	for rows.Next() {
		var song domain.Song
		err := rows.Scan(
			&song.ID,
			&song.Title,
			&song.ArtistID,
			&song.AlbumID,
			&song.Genre,
			&song.Duration,
			&song.ReleaseDate,
			&song.URL,
		)
		if err != nil {
			return nil, err
		}
		songs = append(songs, &song)
	}
	return songs, rows.Err()
}

// Create 创建歌曲
func (r *songRepository) Create(ctx context.Context, song *domain.Song) error {
	query := `
		INSERT INTO songs (title, artist_id, album_id, genre, duration, release_date, url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	return queryer(ctx, r.db).QueryRow(ctx, query,
		song.Title,
		song.ArtistID,
		song.AlbumID,
		song.Genre,
		song.Duration,
		song.ReleaseDate,
		song.URL,
	).Scan(&song.ID)
}

// GetByID 根据ID获取歌曲
func (r *songRepository) GetByID(ctx context.Context, id int64) (*domain.Song, error) {
	query := `SELECT ` + songColumns + ` FROM songs WHERE id = $1`
	return scanSong(queryer(ctx, r.db).QueryRow(ctx, query, id))
}

// List 获取全部歌曲
func (r *songRepository) List(ctx context.Context) ([]*domain.Song, error) {
	query := `SELECT ` + songColumns + ` FROM songs ORDER BY id`
	rows, err := queryer(ctx, r.db).Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return collectSongs(rows)
}

// ListByArtist 获取歌手的全部歌曲
func (r *songRepository) ListByArtist(ctx context.Context, artistID int64) ([]*domain.Song, error) {
	query := `SELECT ` + songColumns + ` FROM songs WHERE artist_id = $1 ORDER BY id`
	rows, err := queryer(ctx, r.db).Query(ctx, query, artistID)
	if err != nil {
		return nil, err
	}
	return collectSongs(rows)
}

// ListByAlbum 获取专辑的全部歌曲
func (r *songRepository) ListByAlbum(ctx context.Context, albumID int64) ([]*domain.Song, error) {
	query := `SELECT ` + songColumns + ` FROM songs WHERE album_id = $1 ORDER BY id`
	rows, err := queryer(ctx, r.db).Query(ctx, query, albumID)
	if err != nil {
		return nil, err
	}
	return collectSongs(rows)
}

// CountByArtist 统计歌手的歌曲数量
func (r *songRepository) CountByArtist(ctx context.Context, artistID int64) (int64, error) {
	var count int64
	err := queryer(ctx, r.db).QueryRow(ctx, `SELECT COUNT(*) FROM songs WHERE artist_id = $1`, artistID).Scan(&count)
	return count, err
}

// Update 更新歌曲
func (r *songRepository) Update(ctx context.Context, song *domain.Song) error {
	query := `
		UPDATE songs
		SET title = $2, artist_id = $3, album_id = $4, genre = $5, duration = $6, release_date = $7, url = $8
		WHERE id = $1
	`
	_, err := queryer(ctx, r.db).Exec(ctx, query,
		song.ID,
		song.Title,
		song.ArtistID,
		song.AlbumID,
		song.Genre,
		song.Duration,
		song.ReleaseDate,
		song.URL,
	)
	return err
}

// Delete 删除歌曲
func (r *songRepository) Delete(ctx context.Context, id int64) error {
	_, err := queryer(ctx, r.db).Exec(ctx, `DELETE FROM songs WHERE id = $1`, id)
	return err
}
