package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/tunewave/server/internal/domain"
	"github.com/tunewave/server/internal/payment"
)

// fakeTx 测试用事务管理器，直接执行回调
type fakeTx struct{}

func (fakeTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// MockUserRepository 用户仓储Mock
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRole(ctx context.Context, id int64, role domain.Role) error {
	args := m.Called(ctx, id, role)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockArtistRepository 歌手仓储Mock
type MockArtistRepository struct {
	mock.Mock
}

func (m *MockArtistRepository) Create(ctx context.Context, artist *domain.Artist) error {
	args := m.Called(ctx, artist)
	return args.Error(0)
}

func (m *MockArtistRepository) GetByID(ctx context.Context, id int64) (*domain.Artist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Artist), args.Error(1)
}

func (m *MockArtistRepository) GetByName(ctx context.Context, name string) (*domain.Artist, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Artist), args.Error(1)
}

func (m *MockArtistRepository) List(ctx context.Context) ([]*domain.Artist, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Artist), args.Error(1)
}

func (m *MockArtistRepository) Update(ctx context.Context, artist *domain.Artist) error {
	args := m.Called(ctx, artist)
	return args.Error(0)
}

func (m *MockArtistRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAlbumRepository 专辑仓储Mock
type MockAlbumRepository struct {
	mock.Mock
}

func (m *MockAlbumRepository) Create(ctx context.Context, album *domain.Album) error {
	args := m.Called(ctx, album)
	return args.Error(0)
}

func (m *MockAlbumRepository) GetByID(ctx context.Context, id int64) (*domain.Album, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Album), args.Error(1)
}

func (m *MockAlbumRepository) List(ctx context.Context) ([]*domain.Album, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Album), args.Error(1)
}

func (m *MockAlbumRepository) ListByArtist(ctx context.Context, artistID int64) ([]*domain.Album, error) {
	args := m.Called(ctx, artistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Album), args.Error(1)
}

func (m *MockAlbumRepository) CountByArtist(ctx context.Context, artistID int64) (int64, error) {
	args := m.Called(ctx, artistID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAlbumRepository) Update(ctx context.Context, album *domain.Album) error {
	args := m.Called(ctx, album)
	return args.Error(0)
}

func (m *MockAlbumRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSongRepository 歌曲仓储Mock
type MockSongRepository struct {
	mock.Mock
}

func (m *MockSongRepository) Create(ctx context.Context, song *domain.Song) error {
	args := m.Called(ctx, song)
	return args.Error(0)
}

func (m *MockSongRepository) GetByID(ctx context.Context, id int64) (*domain.Song, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Song), args.Error(1)
}

func (m *MockSongRepository) List(ctx context.Context) ([]*domain.Song, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Song), args.Error(1)
}

func (m *MockSongRepository) ListByArtist(ctx context.Context, artistID int64) ([]*domain.Song, error) {
	args := m.Called(ctx, artistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Song), args.Error(1)
}

func (m *MockSongRepository) ListByAlbum(ctx context.Context, albumID int64) ([]*domain.Song, error) {
	args := m.Called(ctx, albumID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Song), args.Error(1)
}

func (m *MockSongRepository) CountByArtist(ctx context.Context, artistID int64) (int64, error) {
	args := m.Called(ctx, artistID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSongRepository) Update(ctx context.Context, song *domain.Song) error {
	args := m.Called(ctx, song)
	return args.Error(0)
}

func (m *MockSongRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPlaylistRepository 歌单仓储Mock
type MockPlaylistRepository struct {
	mock.Mock
}

func (m *MockPlaylistRepository) Create(ctx context.Context, playlist *domain.Playlist) error {
	args := m.Called(ctx, playlist)
	return args.Error(0)
}

func (m *MockPlaylistRepository) GetByID(ctx context.Context, id int64) (*domain.Playlist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Playlist, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) ListPublic(ctx context.Context) ([]*domain.Playlist, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Playlist), args.Error(1)
}

func (m *MockPlaylistRepository) CountByUser(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPlaylistRepository) Update(ctx context.Context, playlist *domain.Playlist) error {
	args := m.Called(ctx, playlist)
	return args.Error(0)
}

func (m *MockPlaylistRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPlaylistSongRepository 歌单歌曲关联仓储Mock
type MockPlaylistSongRepository struct {
	mock.Mock
}

func (m *MockPlaylistSongRepository) Add(ctx context.Context, ps *domain.PlaylistSong) error {
	args := m.Called(ctx, ps)
	return args.Error(0)
}

func (m *MockPlaylistSongRepository) Get(ctx context.Context, playlistID, songID int64) (*domain.PlaylistSong, error) {
	args := m.Called(ctx, playlistID, songID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlaylistSong), args.Error(1)
}

func (m *MockPlaylistSongRepository) List(ctx context.Context, playlistID int64) ([]*domain.PlaylistSong, error) {
	args := m.Called(ctx, playlistID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.PlaylistSong), args.Error(1)
}

func (m *MockPlaylistSongRepository) Count(ctx context.Context, playlistID int64) (int64, error) {
	args := m.Called(ctx, playlistID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPlaylistSongRepository) Exists(ctx context.Context, playlistID, songID int64) (bool, error) {
	args := m.Called(ctx, playlistID, songID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPlaylistSongRepository) Remove(ctx context.Context, playlistID, songID int64) error {
	args := m.Called(ctx, playlistID, songID)
	return args.Error(0)
}

func (m *MockPlaylistSongRepository) DeleteByPlaylist(ctx context.Context, playlistID int64) error {
	args := m.Called(ctx, playlistID)
	return args.Error(0)
}

func (m *MockPlaylistSongRepository) DeleteBySong(ctx context.Context, songID int64) error {
	args := m.Called(ctx, songID)
	return args.Error(0)
}

// MockFavoriteRepository 收藏仓储Mock
type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) Create(ctx context.Context, favorite *domain.Favorite) error {
	args := m.Called(ctx, favorite)
	return args.Error(0)
}

func (m *MockFavoriteRepository) GetByID(ctx context.Context, id int64) (*domain.Favorite, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Favorite), args.Error(1)
}

func (m *MockFavoriteRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Favorite, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Favorite), args.Error(1)
}

func (m *MockFavoriteRepository) ExistsSong(ctx context.Context, userID, songID int64) (bool, error) {
	args := m.Called(ctx, userID, songID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavoriteRepository) ExistsPlaylist(ctx context.Context, userID, playlistID int64) (bool, error) {
	args := m.Called(ctx, userID, playlistID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavoriteRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFavoriteRepository) DeleteByPlaylist(ctx context.Context, playlistID int64) error {
	args := m.Called(ctx, playlistID)
	return args.Error(0)
}

func (m *MockFavoriteRepository) DeleteBySong(ctx context.Context, songID int64) error {
	args := m.Called(ctx, songID)
	return args.Error(0)
}

func (m *MockFavoriteRepository) DeleteByUser(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockRatingRepository 评分仓储Mock
type MockRatingRepository struct {
	mock.Mock
}

func (m *MockRatingRepository) Create(ctx context.Context, rating *domain.Rating) error {
	args := m.Called(ctx, rating)
	return args.Error(0)
}

func (m *MockRatingRepository) GetByUserAndSong(ctx context.Context, userID, songID int64) (*domain.Rating, error) {
	args := m.Called(ctx, userID, songID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rating), args.Error(1)
}

func (m *MockRatingRepository) Update(ctx context.Context, rating *domain.Rating) error {
	args := m.Called(ctx, rating)
	return args.Error(0)
}

func (m *MockRatingRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRatingRepository) DeleteBySong(ctx context.Context, songID int64) error {
	args := m.Called(ctx, songID)
	return args.Error(0)
}

func (m *MockRatingRepository) DeleteByUser(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockRatingRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRatingRepository) TopRated(ctx context.Context) ([]*domain.SongRatingStat, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.SongRatingStat), args.Error(1)
}

// MockEmailVerificationRepository 邮箱验证仓储Mock
type MockEmailVerificationRepository struct {
	mock.Mock
}

func (m *MockEmailVerificationRepository) Create(ctx context.Context, v *domain.EmailVerification) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockEmailVerificationRepository) GetByUser(ctx context.Context, userID int64) (*domain.EmailVerification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmailVerification), args.Error(1)
}

func (m *MockEmailVerificationRepository) DeleteByUser(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockPremiumUserRepository 订阅仓储Mock
type MockPremiumUserRepository struct {
	mock.Mock
}

func (m *MockPremiumUserRepository) Create(ctx context.Context, p *domain.PremiumUser) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPremiumUserRepository) GetByUser(ctx context.Context, userID int64) (*domain.PremiumUser, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PremiumUser), args.Error(1)
}

func (m *MockPremiumUserRepository) ListEndingBefore(ctx context.Context, deadline time.Time) ([]*domain.PremiumUser, error) {
	args := m.Called(ctx, deadline)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.PremiumUser), args.Error(1)
}

func (m *MockPremiumUserRepository) ListExpired(ctx context.Context, now time.Time) ([]*domain.PremiumUser, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.PremiumUser), args.Error(1)
}

func (m *MockPremiumUserRepository) MarkTwoDayNotified(ctx context.Context, id int64, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func (m *MockPremiumUserRepository) MarkOneHourNotified(ctx context.Context, id int64, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func (m *MockPremiumUserRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPremiumUserRepository) DeleteByUser(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockMailer 邮件发送Mock
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	args := m.Called(ctx, to, subject, htmlBody)
	return args.Error(0)
}

// MockGateway 支付网关Mock
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) CreateCheckoutSession(ctx context.Context, req *payment.CheckoutRequest) (*payment.CheckoutSession, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.CheckoutSession), args.Error(1)
}

// MockTokenIssuer 令牌签发Mock
type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) GenerateToken(userID int64, email, role string) (string, error) {
	args := m.Called(userID, email, role)
	return args.String(0), args.Error(1)
}

func (m *MockTokenIssuer) GenerateShortLivedToken(userID int64, email, role string) (string, error) {
	args := m.Called(userID, email, role)
	return args.String(0), args.Error(1)
}
