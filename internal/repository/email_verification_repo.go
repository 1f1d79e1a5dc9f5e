package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tunewave/server/internal/domain"
)

// emailVerificationRepository PostgreSQL邮箱验证仓储实现
type emailVerificationRepository struct {
	db *pgxpool.Pool
}

// NewEmailVerificationRepository 创建邮箱验证仓储
func NewEmailVerificationRepository(db *pgxpool.Pool) EmailVerificationRepository {
	return &emailVerificationRepository{db: db}
}

// Create 创建验证记录
func (r *emailVerificationRepository) Create(ctx context.Context, v *domain.EmailVerification) error {
	query := `
		INSERT INTO email_verifications (user_id, code, expires_at, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	return queryer(ctx, r.db).QueryRow(ctx, query, v.UserID, v.Code, v.ExpiresAt, v.CreatedAt).Scan(&v.ID)
}

// GetByUser 获取用户的验证记录
func (r *emailVerificationRepository) GetByUser(ctx context.Context, userID int64) (*domain.EmailVerification, error) {
	query := `SELECT id, user_id, code, expires_at, created_at FROM email_verifications WHERE user_id = $1`
	var v domain.EmailVerification
	err := queryer(ctx, r.db).QueryRow(ctx, query, userID).Scan(&v.ID, &v.UserID, &v.Code, &v.ExpiresAt, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrVerificationNotFound
		}
		return nil, err
	}
	return &v, nil
}

// DeleteByUser 删除用户的验证记录
func (r *emailVerificationRepository) DeleteByUser(ctx context.Context, userID int64) error {
	_, err := queryer(ctx, r.db).Exec(ctx, `DELETE FROM email_verifications WHERE user_id = $1`, userID)
	return err
}
