package service

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/tunewave/server/internal/domain"
	"github.com/tunewave/server/internal/payment"
	"github.com/tunewave/server/pkg/logger"
)

func newSubscriptionService(
	premiumRepo *MockPremiumUserRepository,
	userRepo *MockUserRepository,
	gateway *MockGateway,
	mailer *MockMailer,
) *SubscriptionService {
	log := logger.New(logger.ErrorLevel, io.Discard)
	return NewSubscriptionService(premiumRepo, userRepo, gateway, mailer, log, fakeTx{})
}

// TestCreateCheckoutSession_Success 测试创建支付会话
func TestCreateCheckoutSession_Success(t *testing.T) {
	ctx := context.Background()
	premiumRepo := new(MockPremiumUserRepository)
	userRepo := new(MockUserRepository)
	gateway := new(MockGateway)
	svc := newSubscriptionService(premiumRepo, userRepo, gateway, nil)

	userRepo.On("GetByID", ctx, int64(1)).Return(&domain.User{ID: 1, Email: "alice@example.com"}, nil)
	premiumRepo.On("GetByUser", ctx, int64(1)).Return(nil, domain.ErrSubscriptionNotFound)
	session := &payment.CheckoutSession{SessionID: "sess-1", CheckoutURL: "https://pay.example.com/sess-1"}
	gateway.On("CreateCheckoutSession", ctx, mock.AnythingOfType("*payment.CheckoutRequest")).Return(session, nil)

	got, err := svc.CreateCheckoutSession(ctx, 1, 9.99, 30, "", "")

	assert.NoError(t, err)
	assert.Equal(t, session, got)
	gateway.AssertExpectations(t)
}

// TestCreateCheckoutSession_AlreadySubscribed 测试已有有效订阅时拒绝
func TestCreateCheckoutSession_AlreadySubscribed(t *testing.T) {
	ctx := context.Background()
	premiumRepo := new(MockPremiumUserRepository)
	userRepo := new(MockUserRepository)
	gateway := new(MockGateway)
	svc := newSubscriptionService(premiumRepo, userRepo, gateway, nil)

	userRepo.On("GetByID", ctx, int64(1)).Return(&domain.User{ID: 1}, nil)
	active := &domain.PremiumUser{ID: 5, UserID: 1, EndDate: time.Now().Add(10 * 24 * time.Hour)}
	premiumRepo.On("GetByUser", ctx, int64(1)).Return(active, nil)

	got, err := svc.CreateCheckoutSession(ctx, 1, 9.99, 30, "", "")

	assert.ErrorIs(t, err, domain.ErrAlreadySubscribed)
	assert.Nil(t, got)
	gateway.AssertNotCalled(t, "CreateCheckoutSession", mock.Anything, mock.Anything)
}

// TestActivateSubscription_PromotesRole 测试激活订阅后提升角色
func TestActivateSubscription_PromotesRole(t *testing.T) {
	ctx := context.Background()
	premiumRepo := new(MockPremiumUserRepository)
	userRepo := new(MockUserRepository)
	svc := newSubscriptionService(premiumRepo, userRepo, nil, nil)

	userRepo.On("GetByID", ctx, int64(1)).Return(&domain.User{ID: 1, Role: domain.RoleNormalUser}, nil)
	premiumRepo.On("GetByUser", ctx, int64(1)).Return(nil, domain.ErrSubscriptionNotFound)
	premiumRepo.On("Create", ctx, mock.AnythingOfType("*domain.PremiumUser")).Return(nil)
	userRepo.On("UpdateRole", ctx, int64(1), domain.RolePremiumUser).Return(nil)

	premium, err := svc.ActivateSubscription(ctx, 1, 9.99, 30)

	assert.NoError(t, err)
	assert.Equal(t, 9.99, premium.AmountPaid)
	assert.WithinDuration(t, time.Now().Add(30*24*time.Hour), premium.EndDate, time.Minute)
	userRepo.AssertExpectations(t)
}

// TestNotifyExpiring_TwoDayNotice 测试2天提醒发送成功后记录时间戳
func TestNotifyExpiring_TwoDayNotice(t *testing.T) {
	ctx := context.Background()
	premiumRepo := new(MockPremiumUserRepository)
	userRepo := new(MockUserRepository)
	mailer := new(MockMailer)
	svc := newSubscriptionService(premiumRepo, userRepo, nil, mailer)

	sub := &domain.PremiumUser{ID: 5, UserID: 1, EndDate: time.Now().Add(30 * time.Hour)}
	premiumRepo.On("ListEndingBefore", ctx, mock.AnythingOfType("time.Time")).Return([]*domain.PremiumUser{sub}, nil)
	userRepo.On("GetByID", ctx, int64(1)).Return(&domain.User{ID: 1, Username: "alice", Email: "alice@example.com"}, nil)
	mailer.On("Send", ctx, "alice@example.com", mock.AnythingOfType("string"), mock.AnythingOfType("string")).Return(nil)
	premiumRepo.On("MarkTwoDayNotified", ctx, int64(5), mock.AnythingOfType("time.Time")).Return(nil)

	err := svc.NotifyExpiring(ctx)

	assert.NoError(t, err)
	premiumRepo.AssertExpectations(t)
	mailer.AssertExpectations(t)
}

// TestNotifyExpiring_SendFailureSkipsStamp 测试发送失败时不记录时间戳
func TestNotifyExpiring_SendFailureSkipsStamp(t *testing.T) {
	ctx := context.Background()
	premiumRepo := new(MockPremiumUserRepository)
	userRepo := new(MockUserRepository)
	mailer := new(MockMailer)
	svc := newSubscriptionService(premiumRepo, userRepo, nil, mailer)

	sub := &domain.PremiumUser{ID: 5, UserID: 1, EndDate: time.Now().Add(30 * time.Hour)}
	premiumRepo.On("ListEndingBefore", ctx, mock.AnythingOfType("time.Time")).Return([]*domain.PremiumUser{sub}, nil)
	userRepo.On("GetByID", ctx, int64(1)).Return(&domain.User{ID: 1, Email: "alice@example.com"}, nil)
	mailer.On("Send", ctx, "alice@example.com", mock.AnythingOfType("string"), mock.AnythingOfType("string")).Return(errors.New("smtp down"))

	err := svc.NotifyExpiring(ctx)

	assert.NoError(t, err)
	premiumRepo.AssertNotCalled(t, "MarkTwoDayNotified", mock.Anything, mock.Anything, mock.Anything)
	premiumRepo.AssertNotCalled(t, "MarkOneHourNotified", mock.Anything, mock.Anything, mock.Anything)
}

// TestNotifyExpiring_OneHourTakesPrecedence 测试1小时窗口内只发送1小时提醒
func TestNotifyExpiring_OneHourTakesPrecedence(t *testing.T) {
	ctx := context.Background()
	premiumRepo := new(MockPremiumUserRepository)
	userRepo := new(MockUserRepository)
	mailer := new(MockMailer)
	svc := newSubscriptionService(premiumRepo, userRepo, nil, mailer)

	sub := &domain.PremiumUser{ID: 5, UserID: 1, EndDate: time.Now().Add(30 * time.Minute)}
	premiumRepo.On("ListEndingBefore", ctx, mock.AnythingOfType("time.Time")).Return([]*domain.PremiumUser{sub}, nil)
	userRepo.On("GetByID", ctx, int64(1)).Return(&domain.User{ID: 1, Email: "alice@example.com"}, nil)
	mailer.On("Send", ctx, "alice@example.com", mock.AnythingOfType("string"), mock.AnythingOfType("string")).Return(nil)
	premiumRepo.On("MarkOneHourNotified", ctx, int64(5), mock.AnythingOfType("time.Time")).Return(nil)

	err := svc.NotifyExpiring(ctx)

	assert.NoError(t, err)
	premiumRepo.AssertNotCalled(t, "MarkTwoDayNotified", mock.Anything, mock.Anything, mock.Anything)
	premiumRepo.AssertExpectations(t)
}

// TestExpireSubscriptions_DemotesRole 测试过期订阅清理并降级角色
func TestExpireSubscriptions_DemotesRole(t *testing.T) {
	ctx := context.Background()
	premiumRepo := new(MockPremiumUserRepository)
	userRepo := new(MockUserRepository)
	svc := newSubscriptionService(premiumRepo, userRepo, nil, nil)

	sub := &domain.PremiumUser{ID: 5, UserID: 1, EndDate: time.Now().Add(-time.Hour)}
	premiumRepo.On("ListExpired", ctx, mock.AnythingOfType("time.Time")).Return([]*domain.PremiumUser{sub}, nil)
	userRepo.On("GetByID", ctx, int64(1)).Return(&domain.User{ID: 1, Role: domain.RolePremiumUser}, nil)
	userRepo.On("UpdateRole", ctx, int64(1), domain.RoleNormalUser).Return(nil)
	premiumRepo.On("Delete", ctx, int64(5)).Return(nil)

	err := svc.ExpireSubscriptions(ctx)

	assert.NoError(t, err)
	userRepo.AssertExpectations(t)
	premiumRepo.AssertExpectations(t)
}
