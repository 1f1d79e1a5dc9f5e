package domain

import "time"

// Rating 评分实体，(user, song)在业务层保证唯一
type Rating struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	SongID    int64     `json:"song_id"`
	Value     int       `json:"value"` // 1-5
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate 验证评分数据
func (r *Rating) Validate() error {
	if r.UserID <= 0 {
		return ErrInvalidUserID
	}
	if r.SongID <= 0 {
		return ErrInvalidSongID
	}
	return ValidateRatingValue(r.Value)
}

// ValidateRatingValue 验证评分取值范围
func ValidateRatingValue(value int) error {
	if value < 1 || value > 5 {
		return ErrInvalidRating
	}
	return nil
}

// SongRatingStat 歌曲评分聚合结果
type SongRatingStat struct {
	SongID      int64   `json:"song_id"`
	Title       string  `json:"title"`
	AvgRating   float64 `json:"avg_rating"`
	RatingCount int64   `json:"rating_count"`
}
