package service

import (
	"context"
	"errors"
	"time"

	"github.com/tunewave/server/internal/domain"
	"github.com/tunewave/server/internal/repository"
	"github.com/tunewave/server/pkg/crypto"
)

const minPasswordLength = 8

// UserService 用户服务
type UserService struct {
	userRepo         repository.UserRepository
	playlistRepo     repository.PlaylistRepository
	playlistSongRepo repository.PlaylistSongRepository
	favoriteRepo     repository.FavoriteRepository
	ratingRepo       repository.RatingRepository
	verificationRepo repository.EmailVerificationRepository
	premiumRepo      repository.PremiumUserRepository
	tokens           TokenIssuer
	tx               repository.Tx
}

// NewUserService 创建用户服务
func NewUserService(
	userRepo repository.UserRepository,
	playlistRepo repository.PlaylistRepository,
	playlistSongRepo repository.PlaylistSongRepository,
	favoriteRepo repository.FavoriteRepository,
	ratingRepo repository.RatingRepository,
	verificationRepo repository.EmailVerificationRepository,
	premiumRepo repository.PremiumUserRepository,
	tokens TokenIssuer,
	tx repository.Tx,
) *UserService {
	return &UserService{
		userRepo:         userRepo,
		playlistRepo:     playlistRepo,
		playlistSongRepo: playlistSongRepo,
		favoriteRepo:     favoriteRepo,
		ratingRepo:       ratingRepo,
		verificationRepo: verificationRepo,
		premiumRepo:      premiumRepo,
		tokens:           tokens,
		tx:               tx,
	}
}

// Register 注册用户，邮箱全局唯一，密码使用argon2id散列存储
func (s *UserService) Register(ctx context.Context, username, email, password string, role domain.Role, dateOfBirth time.Time) (*domain.User, error) {
	if len(password) < minPasswordLength {
		return nil, domain.ErrInvalidPassword
	}

	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := crypto.HashPassword(password, crypto.DefaultParams())
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &domain.User{
		Username:     username,
		Email:        email,
		Role:         role,
		PasswordHash: hash,
		DateOfBirth:  dateOfBirth,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login 校验凭证并签发访问令牌
func (s *UserService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := crypto.VerifyPassword(password, user.PasswordHash); err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// GetUser 获取用户详情
func (s *UserService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// GetUserByEmail 按邮箱获取用户
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.userRepo.GetByEmail(ctx, email)
}

// ListUsers 获取全部用户
func (s *UserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.userRepo.List(ctx)
}

// UpdateUser 更新用户名与出生日期
func (s *UserService) UpdateUser(ctx context.Context, id int64, username, email string, dateOfBirth time.Time) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if username != "" {
		user.Username = username
	}
	if email != "" && email != user.Email {
		existing, err := s.userRepo.GetByEmail(ctx, email)
		if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrEmailTaken
		}
		user.Email = email
	}
	if !dateOfBirth.IsZero() {
		user.DateOfBirth = dateOfBirth
	}
	user.UpdatedAt = time.Now()

	if err := user.Validate(); err != nil {
		return nil, err
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword 修改密码，需要提供当前密码
func (s *UserService) ChangePassword(ctx context.Context, id int64, current, next string) error {
	if len(next) < minPasswordLength {
		return domain.ErrInvalidPassword
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := crypto.VerifyPassword(current, user.PasswordHash); err != nil {
		return domain.ErrInvalidCredentials
	}

	hash, err := crypto.HashPassword(next, crypto.DefaultParams())
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	user.UpdatedAt = time.Now()
	return s.userRepo.Update(ctx, user)
}

// DeleteUser 删除用户：在单个事务内级联清理其歌单、收藏、评分、验证记录与订阅
func (s *UserService) DeleteUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		playlists, err := s.playlistRepo.ListByUser(ctx, id)
		if err != nil {
			return err
		}
		for _, p := range playlists {
			if err := s.favoriteRepo.DeleteByPlaylist(ctx, p.ID); err != nil {
				return err
			}
			if err := s.playlistSongRepo.DeleteByPlaylist(ctx, p.ID); err != nil {
				return err
			}
			if err := s.playlistRepo.Delete(ctx, p.ID); err != nil {
				return err
			}
		}
		if err := s.favoriteRepo.DeleteByUser(ctx, id); err != nil {
			return err
		}
		if err := s.ratingRepo.DeleteByUser(ctx, id); err != nil {
			return err
		}
		if err := s.verificationRepo.DeleteByUser(ctx, id); err != nil {
			return err
		}
		if err := s.premiumRepo.DeleteByUser(ctx, id); err != nil {
			return err
		}
		return s.userRepo.Delete(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}
