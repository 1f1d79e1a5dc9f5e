package domain

import "time"

// PremiumUser 付费订阅记录
type PremiumUser struct {
	ID                int64      `json:"id"`
	UserID            int64      `json:"user_id"`
	StartDate         time.Time  `json:"start_date"`
	EndDate           time.Time  `json:"end_date"`
	AmountPaid        float64    `json:"amount_paid"`
	TwoDayNotifiedAt  *time.Time `json:"two_day_notified_at,omitempty"`
	OneHourNotifiedAt *time.Time `json:"one_hour_notified_at,omitempty"`
}

// NeedsTwoDayNotice 判断是否需要发送2天到期提醒
func (p *PremiumUser) NeedsTwoDayNotice(now time.Time) bool {
	return p.TwoDayNotifiedAt == nil &&
		now.Before(p.EndDate) &&
		p.EndDate.Sub(now) <= 48*time.Hour
}

// NeedsOneHourNotice 判断是否需要发送1小时到期提醒
func (p *PremiumUser) NeedsOneHourNotice(now time.Time) bool {
	return p.OneHourNotifiedAt == nil &&
		now.Before(p.EndDate) &&
		p.EndDate.Sub(now) <= time.Hour
}

// IsExpired 判断订阅是否已到期
func (p *PremiumUser) IsExpired(now time.Time) bool {
	return now.After(p.EndDate)
}
