package domain

// Artist 歌手实体
type Artist struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"` // 业务层保证唯一
	Bio      string `json:"bio"`
	ImageURL string `json:"image_url"`
}

// Validate 验证歌手数据
func (a *Artist) Validate() error {
	if a.Name == "" {
		return ErrInvalidArtistName
	}
	return nil
}
