package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestPremiumUser_NoticeWindows 测试到期提醒窗口判定
func TestPremiumUser_NoticeWindows(t *testing.T) {
	now := time.Now()

	fresh := &PremiumUser{EndDate: now.Add(72 * time.Hour)}
	assert.False(t, fresh.NeedsTwoDayNotice(now))
	assert.False(t, fresh.NeedsOneHourNotice(now))
	assert.False(t, fresh.IsExpired(now))

	twoDay := &PremiumUser{EndDate: now.Add(30 * time.Hour)}
	assert.True(t, twoDay.NeedsTwoDayNotice(now))
	assert.False(t, twoDay.NeedsOneHourNotice(now))

	oneHour := &PremiumUser{EndDate: now.Add(30 * time.Minute)}
	assert.True(t, oneHour.NeedsTwoDayNotice(now))
	assert.True(t, oneHour.NeedsOneHourNotice(now))

	expired := &PremiumUser{EndDate: now.Add(-time.Minute)}
	assert.False(t, expired.NeedsTwoDayNotice(now))
	assert.False(t, expired.NeedsOneHourNotice(now))
	assert.True(t, expired.IsExpired(now))
}

// TestPremiumUser_NoticeOnlyOnce 测试已提醒过不再触发
func TestPremiumUser_NoticeOnlyOnce(t *testing.T) {
	now := time.Now()
	notified := now.Add(-time.Hour)

	sub := &PremiumUser{
		EndDate:          now.Add(30 * time.Hour),
		TwoDayNotifiedAt: &notified,
	}
	assert.False(t, sub.NeedsTwoDayNotice(now))
}

// TestFavorite_Validate 测试收藏必须恰好引用歌曲或歌单之一
func TestFavorite_Validate(t *testing.T) {
	songID := int64(1)
	playlistID := int64(2)

	assert.NoError(t, (&Favorite{UserID: 1, SongID: &songID}).Validate())
	assert.NoError(t, (&Favorite{UserID: 1, PlaylistID: &playlistID}).Validate())
	assert.ErrorIs(t, (&Favorite{UserID: 1}).Validate(), ErrInvalidFavorite)
	assert.ErrorIs(t, (&Favorite{UserID: 1, SongID: &songID, PlaylistID: &playlistID}).Validate(), ErrInvalidFavorite)
}

// TestGenre_Valid 测试流派枚举
func TestGenre_Valid(t *testing.T) {
	assert.True(t, GenrePop.Valid())
	assert.True(t, GenreMetal.Valid())
	assert.False(t, Genre("Polka").Valid())
	assert.False(t, Genre("").Valid())
}

// TestRating_Validate 测试评分取值范围
func TestRating_Validate(t *testing.T) {
	assert.NoError(t, ValidateRatingValue(1))
	assert.NoError(t, ValidateRatingValue(5))
	assert.ErrorIs(t, ValidateRatingValue(0), ErrInvalidRating)
	assert.ErrorIs(t, ValidateRatingValue(6), ErrInvalidRating)
}

// TestUser_Activate 测试激活用户
func TestUser_Activate(t *testing.T) {
	u := &User{Username: "alice", Email: "alice@example.com", Role: RoleNormalUser}
	assert.False(t, u.IsActive())

	u.Activate()
	assert.True(t, u.IsActive())
}

// TestEmailVerification_IsExpired 测试验证码过期判定
func TestEmailVerification_IsExpired(t *testing.T) {
	now := time.Now()

	v := &EmailVerification{ExpiresAt: now.Add(time.Minute)}
	assert.False(t, v.IsExpired(now))
	assert.True(t, v.IsExpired(now.Add(2*time.Minute)))
}
