package domain

import "time"

// Favorite 收藏实体，song和playlist恰好设置其一
type Favorite struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	SongID     *int64    `json:"song_id,omitempty"`
	PlaylistID *int64    `json:"playlist_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Validate 验证收藏数据
func (f *Favorite) Validate() error {
	if f.UserID <= 0 {
		return ErrInvalidUserID
	}
	if (f.SongID == nil) == (f.PlaylistID == nil) {
		return ErrInvalidFavorite
	}
	return nil
}
