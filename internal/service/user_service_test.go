package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/tunewave/server/internal/domain"
	"github.com/tunewave/server/pkg/crypto"
)

func newUserService(
	userRepo *MockUserRepository,
	playlistRepo *MockPlaylistRepository,
	playlistSongRepo *MockPlaylistSongRepository,
	favoriteRepo *MockFavoriteRepository,
	ratingRepo *MockRatingRepository,
	verificationRepo *MockEmailVerificationRepository,
	premiumRepo *MockPremiumUserRepository,
	tokens *MockTokenIssuer,
) *UserService {
	return NewUserService(userRepo, playlistRepo, playlistSongRepo, favoriteRepo, ratingRepo, verificationRepo, premiumRepo, tokens, fakeTx{})
}

// TestRegister_Success 测试注册成功
func TestRegister_Success(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	svc := newUserService(userRepo, nil, nil, nil, nil, nil, nil, nil)

	userRepo.On("GetByEmail", ctx, "alice@example.com").Return(nil, domain.ErrUserNotFound)
	userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

	user, err := svc.Register(ctx, "alice", "alice@example.com", "password123", domain.RoleNormalUser, time.Time{})

	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, domain.RoleNormalUser, user.Role)
	assert.NotEqual(t, "password123", user.PasswordHash)
	assert.NoError(t, crypto.VerifyPassword("password123", user.PasswordHash))

	userRepo.AssertExpectations(t)
}

// TestRegister_EmailTaken 测试邮箱重复注册
func TestRegister_EmailTaken(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	svc := newUserService(userRepo, nil, nil, nil, nil, nil, nil, nil)

	existing := &domain.User{ID: 1, Email: "alice@example.com"}
	userRepo.On("GetByEmail", ctx, "alice@example.com").Return(existing, nil)

	user, err := svc.Register(ctx, "alice", "alice@example.com", "password123", domain.RoleNormalUser, time.Time{})

	assert.ErrorIs(t, err, domain.ErrEmailTaken)
	assert.Nil(t, user)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// TestRegister_ShortPassword 测试密码过短
func TestRegister_ShortPassword(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	svc := newUserService(userRepo, nil, nil, nil, nil, nil, nil, nil)

	user, err := svc.Register(ctx, "alice", "alice@example.com", "short", domain.RoleNormalUser, time.Time{})

	assert.ErrorIs(t, err, domain.ErrInvalidPassword)
	assert.Nil(t, user)
	userRepo.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
}

// TestLogin_Success 测试登录成功并签发令牌
func TestLogin_Success(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	tokens := new(MockTokenIssuer)
	svc := newUserService(userRepo, nil, nil, nil, nil, nil, nil, tokens)

	hash, err := crypto.HashPassword("password123", crypto.DefaultParams())
	assert.NoError(t, err)

	user := &domain.User{
		ID:           7,
		Email:        "alice@example.com",
		Role:         domain.RoleNormalUser,
		PasswordHash: hash,
	}
	userRepo.On("GetByEmail", ctx, "alice@example.com").Return(user, nil)
	tokens.On("GenerateToken", int64(7), "alice@example.com", "NormalUser").Return("token-abc", nil)

	got, token, err := svc.Login(ctx, "alice@example.com", "password123")

	assert.NoError(t, err)
	assert.Equal(t, user, got)
	assert.Equal(t, "token-abc", token)
	tokens.AssertExpectations(t)
}

// TestLogin_WrongPassword 测试密码错误
func TestLogin_WrongPassword(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	tokens := new(MockTokenIssuer)
	svc := newUserService(userRepo, nil, nil, nil, nil, nil, nil, tokens)

	hash, err := crypto.HashPassword("password123", crypto.DefaultParams())
	assert.NoError(t, err)

	user := &domain.User{ID: 7, Email: "alice@example.com", PasswordHash: hash}
	userRepo.On("GetByEmail", ctx, "alice@example.com").Return(user, nil)

	_, _, err = svc.Login(ctx, "alice@example.com", "wrong-password")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	tokens.AssertNotCalled(t, "GenerateToken", mock.Anything, mock.Anything, mock.Anything)
}

// TestLogin_UnknownEmail 测试不存在的邮箱不泄露用户是否存在
func TestLogin_UnknownEmail(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	svc := newUserService(userRepo, nil, nil, nil, nil, nil, nil, nil)

	userRepo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, domain.ErrUserNotFound)

	_, _, err := svc.Login(ctx, "nobody@example.com", "password123")

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

// TestUpdateUser_EmailTaken 测试更新邮箱时新邮箱已被占用
func TestUpdateUser_EmailTaken(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	svc := newUserService(userRepo, nil, nil, nil, nil, nil, nil, nil)

	userRepo.On("GetByID", ctx, int64(1)).Return(&domain.User{ID: 1, Username: "alice", Email: "alice@example.com", Role: domain.RoleNormalUser}, nil)
	userRepo.On("GetByEmail", ctx, "bob@example.com").Return(&domain.User{ID: 2, Email: "bob@example.com"}, nil)

	user, err := svc.UpdateUser(ctx, 1, "", "bob@example.com", time.Time{})

	assert.ErrorIs(t, err, domain.ErrEmailTaken)
	assert.Nil(t, user)
	userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

// TestUpdateUser_ChangesEmail 测试更新邮箱成功
func TestUpdateUser_ChangesEmail(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	svc := newUserService(userRepo, nil, nil, nil, nil, nil, nil, nil)

	userRepo.On("GetByID", ctx, int64(1)).Return(&domain.User{ID: 1, Username: "alice", Email: "alice@example.com", Role: domain.RoleNormalUser}, nil)
	userRepo.On("GetByEmail", ctx, "new@example.com").Return(nil, domain.ErrUserNotFound)
	userRepo.On("Update", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

	user, err := svc.UpdateUser(ctx, 1, "", "new@example.com", time.Time{})

	assert.NoError(t, err)
	assert.Equal(t, "new@example.com", user.Email)
	userRepo.AssertExpectations(t)
}

// TestDeleteUser_Cascades测试删除用户级联清理全部关联数据
func TestDeleteUser_Cascades(t *testing.T) {
	ctx := context.Background()
	userRepo := new(MockUserRepository)
	playlistRepo := new(MockPlaylistRepository)
	playlistSongRepo := new(MockPlaylistSongRepository)
	favoriteRepo := new(MockFavoriteRepository)
	ratingRepo := new(MockRatingRepository)
	verificationRepo := new(MockEmailVerificationRepository)
	premiumRepo := new(MockPremiumUserRepository)
	svc := newUserService(userRepo, playlistRepo, playlistSongRepo, favoriteRepo, ratingRepo, verificationRepo, premiumRepo, nil)

	user := &domain.User{ID: 3, Username: "bob", Email: "bob@example.com", Role: domain.RoleNormalUser}
	playlists := []*domain.Playlist{{ID: 11, UserID: 3}, {ID: 12, UserID: 3}}

	userRepo.On("GetByID", ctx, int64(3)).Return(user, nil)
	playlistRepo.On("ListByUser", ctx, int64(3)).Return(playlists, nil)
	for _, p := range playlists {
		favoriteRepo.On("DeleteByPlaylist", ctx, p.ID).Return(nil)
		playlistSongRepo.On("DeleteByPlaylist", ctx, p.ID).Return(nil)
		playlistRepo.On("Delete", ctx, p.ID).Return(nil)
	}
	favoriteRepo.On("DeleteByUser", ctx, int64(3)).Return(nil)
	ratingRepo.On("DeleteByUser", ctx, int64(3)).Return(nil)
	verificationRepo.On("DeleteByUser", ctx, int64(3)).Return(nil)
	premiumRepo.On("DeleteByUser", ctx, int64(3)).Return(nil)
	userRepo.On("Delete", ctx, int64(3)).Return(nil)

	deleted, err := svc.DeleteUser(ctx, 3)

	assert.NoError(t, err)
	assert.Equal(t, user, deleted)
	userRepo.AssertExpectations(t)
	playlistRepo.AssertExpectations(t)
	playlistSongRepo.AssertExpectations(t)
	favoriteRepo.AssertExpectations(t)
	ratingRepo.AssertExpectations(t)
	verificationRepo.AssertExpectations(t)
	premiumRepo.AssertExpectations(t)
}
