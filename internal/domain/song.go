package domain

import "time"

// Genre 歌曲流派
type Genre string

const (
	GenrePop        Genre = "Pop"
	GenreRock       Genre = "Rock"
	GenreHipHop     Genre = "HipHop"
	GenreJazz       Genre = "Jazz"
	GenreClassical  Genre = "Classical"
	GenreElectronic Genre = "Electronic"
	GenreCountry    Genre = "Country"
	GenreMetal      Genre = "Metal"
)

// Valid 判断流派是否合法
func (g Genre) Valid() bool {
	switch g {
	case GenrePop, GenreRock, GenreHipHop, GenreJazz,
		GenreClassical, GenreElectronic, GenreCountry, GenreMetal:
		return true
	}
	return false
}

// Song 歌曲实体
type Song struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	ArtistID    int64     `json:"artist_id"`
	AlbumID     *int64    `json:"album_id,omitempty"` // 可空，若设置则专辑歌手必须与歌曲歌手一致
	Genre       Genre     `json:"genre"`
	Duration    int       `json:"duration"` // 秒，必须大于0
	ReleaseDate time.Time `json:"release_date"`
	URL         string    `json:"url"`
}

// Validate 验证歌曲数据
func (s *Song) Validate() error {
	if s.Title == "" {
		return ErrInvalidSongTitle
	}
	if s.ArtistID <= 0 {
		return ErrArtistNotFound
	}
	if s.Duration <= 0 {
		return ErrInvalidDuration
	}
	if !s.Genre.Valid() {
		return ErrInvalidGenre
	}
	return nil
}
