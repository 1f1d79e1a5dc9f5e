package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tunewave/server/internal/domain"
	"github.com/tunewave/server/internal/mail"
	"github.com/tunewave/server/internal/repository"
)

// VerificationService 邮箱验证服务
type VerificationService struct {
	verificationRepo repository.EmailVerificationRepository
	userRepo         repository.UserRepository
	mailer           mail.Mailer
	ttl              time.Duration
}

// NewVerificationService 创建邮箱验证服务
func NewVerificationService(
	verificationRepo repository.EmailVerificationRepository,
	userRepo repository.UserRepository,
	mailer mail.Mailer,
	ttl time.Duration,
) *VerificationService {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &VerificationService{
		verificationRepo: verificationRepo,
		userRepo:         userRepo,
		mailer:           mailer,
		ttl:              ttl,
	}
}

// SendCode 生成验证码并发送到用户邮箱，重复调用会覆盖旧验证码
func (s *VerificationService) SendCode(ctx context.Context, userID int64) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.verificationRepo.DeleteByUser(ctx, userID); err != nil {
		return err
	}

	now := time.Now()
	v := &domain.EmailVerification{
		UserID:    userID,
		Code:      uuid.NewString(),
		ExpiresAt: now.Add(s.ttl),
		CreatedAt: now,
	}
	if err := s.verificationRepo.Create(ctx, v); err != nil {
		return err
	}

	body := fmt.Sprintf(
		"<p>你好 %s，</p><p>你的邮箱验证码是：<b>%s</b></p><p>验证码将在 %d 分钟后失效。</p>",
		user.Username, v.Code, int(s.ttl.Minutes()),
	)
	return s.mailer.Send(ctx, user.Email, "邮箱验证", body)
}

// Confirm 校验验证码并激活用户，成功后删除验证记录
func (s *VerificationService) Confirm(ctx context.Context, userID int64, code string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	v, err := s.verificationRepo.GetByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrVerificationNotFound) {
			return nil, domain.ErrVerificationInvalid
		}
		return nil, err
	}
	if v.IsExpired(time.Now()) {
		return nil, domain.ErrVerificationExpired
	}
	if subtle.ConstantTimeCompare([]byte(v.Code), []byte(code)) != 1 {
		return nil, domain.ErrVerificationInvalid
	}

	user.Activate()
	if err := s.userRepo.UpdateStatus(ctx, userID, domain.StatusActive); err != nil {
		return nil, err
	}
	if err := s.verificationRepo.DeleteByUser(ctx, userID); err != nil {
		return nil, err
	}
	return user, nil
}
