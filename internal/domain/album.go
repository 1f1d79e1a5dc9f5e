package domain

import "time"

// Album 专辑实体
type Album struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	ArtistID    int64     `json:"artist_id"`
	ReleaseDate time.Time `json:"release_date"`
	CoverURL    string    `json:"cover_url"`
}

// Validate 验证专辑数据
func (a *Album) Validate() error {
	if a.Title == "" {
		return ErrInvalidAlbumTitle
	}
	if a.ArtistID <= 0 {
		return ErrArtistNotFound
	}
	return nil
}
