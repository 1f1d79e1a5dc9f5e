package domain

import "time"

// Playlist 歌单实体
type Playlist struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	IsPublic  bool      `json:"is_public"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate 验证歌单数据
func (p *Playlist) Validate() error {
	if p.UserID <= 0 {
		return ErrInvalidUserID
	}
	if p.Name == "" || len(p.Name) > 100 {
		return ErrInvalidPlaylistName
	}
	return nil
}
