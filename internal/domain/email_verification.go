package domain

import "time"

// EmailVerification 邮箱验证记录，每个用户最多一条有效记录
type EmailVerification struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Code      string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// IsExpired 判断验证码是否已过期
func (v *EmailVerification) IsExpired(now time.Time) bool {
	return now.After(v.ExpiresAt)
}
