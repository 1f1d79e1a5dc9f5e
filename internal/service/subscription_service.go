package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tunewave/server/internal/domain"
	"github.com/tunewave/server/internal/mail"
	"github.com/tunewave/server/internal/payment"
	"github.com/tunewave/server/internal/repository"
	"github.com/tunewave/server/pkg/logger"
)

// SubscriptionService 订阅服务：支付、激活、到期提醒与降级
type SubscriptionService struct {
	premiumRepo repository.PremiumUserRepository
	userRepo    repository.UserRepository
	gateway     payment.Gateway
	mailer      mail.Mailer
	log         logger.Logger
	tx          repository.Tx
}

// NewSubscriptionService 创建订阅服务
func NewSubscriptionService(
	premiumRepo repository.PremiumUserRepository,
	userRepo repository.UserRepository,
	gateway payment.Gateway,
	mailer mail.Mailer,
	log logger.Logger,
	tx repository.Tx,
) *SubscriptionService {
	return &SubscriptionService{
		premiumRepo: premiumRepo,
		userRepo:    userRepo,
		gateway:     gateway,
		mailer:      mailer,
		log:         log,
		tx:          tx,
	}
}

// CreateCheckoutSession 创建支付会话，用户已有有效订阅时拒绝
func (s *SubscriptionService) CreateCheckoutSession(ctx context.Context, userID int64, amount float64, durationDays int, successURL, cancelURL string) (*payment.CheckoutSession, error) {
	if amount <= 0 || durationDays <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if existing, err := s.premiumRepo.GetByUser(ctx, userID); err == nil {
		if !existing.IsExpired(time.Now()) {
			return nil, domain.ErrAlreadySubscribed
		}
	} else if !errors.Is(err, domain.ErrSubscriptionNotFound) {
		return nil, err
	}

	return s.gateway.CreateCheckoutSession(ctx, &payment.CheckoutRequest{
		UserID:       userID,
		Email:        user.Email,
		Amount:       amount,
		DurationDays: durationDays,
		SuccessURL:   successURL,
		CancelURL:    cancelURL,
	})
}

// ActivateSubscription 支付完成后激活订阅并将用户提升为PremiumUser
func (s *SubscriptionService) ActivateSubscription(ctx context.Context, userID int64, amount float64, durationDays int) (*domain.PremiumUser, error) {
	if amount <= 0 || durationDays <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if existing, err := s.premiumRepo.GetByUser(ctx, userID); err == nil {
		if !existing.IsExpired(time.Now()) {
			return nil, domain.ErrAlreadySubscribed
		}
		// 到期的旧记录在激活时清除
		if err := s.premiumRepo.DeleteByUser(ctx, userID); err != nil {
			return nil, err
		}
	} else if !errors.Is(err, domain.ErrSubscriptionNotFound) {
		return nil, err
	}

	now := time.Now()
	premium := &domain.PremiumUser{
		UserID:     userID,
		StartDate:  now,
		EndDate:    now.Add(time.Duration(durationDays) * 24 * time.Hour),
		AmountPaid: amount,
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.premiumRepo.Create(ctx, premium); err != nil {
			return err
		}
		if user.Role != domain.RoleAdmin {
			return s.userRepo.UpdateRole(ctx, userID, domain.RolePremiumUser)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return premium, nil
}

// GetSubscription 获取用户当前订阅
func (s *SubscriptionService) GetSubscription(ctx context.Context, userID int64) (*domain.PremiumUser, error) {
	return s.premiumRepo.GetByUser(ctx, userID)
}

// NotifyExpiring 发送2天与1小时到期提醒
// 只有邮件发送成功后才记录提醒时间戳，发送失败的记录留待下一轮重试
func (s *SubscriptionService) NotifyExpiring(ctx context.Context) error {
	now := time.Now()
	subs, err := s.premiumRepo.ListEndingBefore(ctx, now.Add(48*time.Hour))
	if err != nil {
		return err
	}

	for _, sub := range subs {
		user, err := s.userRepo.GetByID(ctx, sub.UserID)
		if err != nil {
			s.log.Error("查询订阅用户失败", logger.F("user_id", sub.UserID), logger.Err(err))
			continue
		}

		if sub.NeedsOneHourNotice(now) {
			if err := s.sendExpiryNotice(ctx, user, sub, "1小时"); err != nil {
				s.log.Error("发送1小时到期提醒失败", logger.F("user_id", sub.UserID), logger.Err(err))
				continue
			}
			if err := s.premiumRepo.MarkOneHourNotified(ctx, sub.ID, now); err != nil {
				return err
			}
			continue
		}

		if sub.NeedsTwoDayNotice(now) {
			if err := s.sendExpiryNotice(ctx, user, sub, "2天"); err != nil {
				s.log.Error("发送2天到期提醒失败", logger.F("user_id", sub.UserID), logger.Err(err))
				continue
			}
			if err := s.premiumRepo.MarkTwoDayNotified(ctx, sub.ID, now); err != nil {
				return err
			}
		}
	}
	return nil
}

// ExpireSubscriptions 清理已到期订阅并将用户降级回NormalUser
func (s *SubscriptionService) ExpireSubscriptions(ctx context.Context) error {
	now := time.Now()
	subs, err := s.premiumRepo.ListExpired(ctx, now)
	if err != nil {
		return err
	}

	for _, sub := range subs {
		err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
			user, err := s.userRepo.GetByID(ctx, sub.UserID)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					return s.premiumRepo.Delete(ctx, sub.ID)
				}
				return err
			}
			if user.Role == domain.RolePremiumUser {
				if err := s.userRepo.UpdateRole(ctx, sub.UserID, domain.RoleNormalUser); err != nil {
					return err
				}
			}
			return s.premiumRepo.Delete(ctx, sub.ID)
		})
		if err != nil {
			s.log.Error("处理到期订阅失败", logger.F("user_id", sub.UserID), logger.Err(err))
		}
	}
	return nil
}

func (s *SubscriptionService) sendExpiryNotice(ctx context.Context, user *domain.User, sub *domain.PremiumUser, window string) error {
	body := fmt.Sprintf(
		"<p>你好 %s，</p><p>你的订阅将在 %s 内到期（到期时间：%s）。</p><p>续费后可继续享受会员服务。</p>",
		user.Username, window, sub.EndDate.Format("2006-01-02 15:04"),
	)
	return s.mailer.Send(ctx, user.Email, "订阅到期提醒", body)
}
