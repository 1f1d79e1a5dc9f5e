package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tunewave/server/internal/domain"
)

// premiumUserRepository PostgreSQL订阅仓储实现
type premiumUserRepository struct {
	db *pgxpool.Pool
}

// NewPremiumUserRepository 创建订阅仓储
func NewPremiumUserRepository(db *pgxpool.Pool) PremiumUserRepository {
	return &premiumUserRepository{db: db}
}

const premiumColumns = `id, user_id, start_date, end_date, amount_paid, two_day_notified_at, one_hour_notified_at`

func collectPremiumUsers(rows pgx.Rows) ([]*domain.PremiumUser, error) {
	defer rows.Close()
	var subs []*domain.PremiumUser
	for rows.Next() {
		var p domain.PremiumUser
		err := rows.Scan(&p.ID, &p.UserID, &p.StartDate, &p.EndDate, &p.AmountPaid, &p.TwoDayNotifiedAt, &p.OneHourNotifiedAt)
		if err != nil {
			return nil, err
		}
		subs = append(subs, &p)
	}
	return subs, rows.Err()
}

// Create 创建订阅记录
func (r *premiumUserRepository) Create(ctx context.Context, p *domain.PremiumUser) error {
	query := `
		INSERT INTO premium_users (user_id, start_date, end_date, amount_paid)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	return queryer(ctx, r.db).QueryRow(ctx, query, p.UserID, p.StartDate, p.EndDate, p.AmountPaid).Scan(&p.ID)
}

// GetByUser 获取用户的订阅记录
func (r *premiumUserRepository) GetByUser(ctx context.Context, userID int64) (*domain.PremiumUser, error) {
	query := `SELECT ` + premiumColumns + ` FROM premium_users WHERE user_id = $1`
	var p domain.PremiumUser
	err := queryer(ctx, r.db).QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.StartDate, &p.EndDate, &p.AmountPaid, &p.TwoDayNotifiedAt, &p.OneHourNotifiedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSubscriptionNotFound
		}
		return nil, err
	}
	return &p, nil
}

// ListEndingBefore 获取在deadline前到期的订阅
func (r *premiumUserRepository) ListEndingBefore(ctx context.Context, deadline time.Time) ([]*domain.PremiumUser, error) {
	query := `SELECT ` + premiumColumns + ` FROM premium_users WHERE end_date <= $1 ORDER BY end_date`
	rows, err := queryer(ctx, r.db).Query(ctx, query, deadline)
	if err != nil {
		return nil, err
	}
	return collectPremiumUsers(rows)
}

// ListExpired 获取已到期的订阅
func (r *premiumUserRepository) ListExpired(ctx context.Context, now time.Time) ([]*domain.PremiumUser, error) {
	query := `SELECT ` + premiumColumns + ` FROM premium_users WHERE end_date < $1 ORDER BY end_date`
	rows, err := queryer(ctx, r.db).Query(ctx, query, now)
	if err != nil {
		return nil, err
	}
	return collectPremiumUsers(rows)
}

// MarkTwoDayNotified 记录2天到期提醒已发送
func (r *premiumUserRepository) MarkTwoDayNotified(ctx context.Context, id int64, at time.Time) error {
	_, err := queryer(ctx, r.db).Exec(ctx, `UPDATE premium_users SET two_day_notified_at = $2 WHERE id = $1`, id, at)
	return err
}

// MarkOneHourNotified 记录1小时到期提醒已发送
func (r *premiumUserRepository) MarkOneHourNotified(ctx context.Context, id int64, at time.Time) error {
	_, err := queryer(ctx, r.db).Exec(ctx, `UPDATE premium_users SET one_hour_notified_at = $2 WHERE id = $1`, id, at)
	return err
}

// Delete 删除订阅记录
func (r *premiumUserRepository) Delete(ctx context.Context, id int64) error {
	_, err := queryer(ctx, r.db).Exec(ctx, `DELETE FROM premium_users WHERE id = $1`, id)
	return err
}

// DeleteByUser 删除用户的订阅记录
func (r *premiumUserRepository) DeleteByUser(ctx context.Context, userID int64) error {
	_, err := queryer(ctx, r.db).Exec(ctx, `DELETE FROM premium_users WHERE user_id = $1`, userID)
	return err
}
