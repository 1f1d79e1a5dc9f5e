package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/tunewave/server/internal/domain"
	"github.com/tunewave/server/internal/middleware"
	"github.com/tunewave/server/pkg/jwt"
	"github.com/tunewave/server/pkg/logger"
)

// Handlers 全部HTTP处理器
type Handlers struct {
	Auth         *AuthHandler
	User         *UserHandler
	Artist       *ArtistHandler
	Album        *AlbumHandler
	Song         *SongHandler
	Playlist     *PlaylistHandler
	Rating       *RatingHandler
	Favorite     *FavoriteHandler
	Subscription *SubscriptionHandler
	Export       *ExportHandler
}

// RouterConfig 路由配置
type RouterConfig struct {
	JWTManager      *jwt.Manager
	Logger          logger.Logger
	ServiceName     string
	RateLimitPerSec int
	RateLimitBurst  int
}

// NewRouter 组装gin路由
func NewRouter(h *Handlers, cfg *RouterConfig) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Tracing(cfg.ServiceName))
	r.Use(middleware.Logging(cfg.Logger))
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.CORS())

	if cfg.RateLimitPerSec > 0 {
		rl := middleware.NewRateLimiter(cfg.RateLimitPerSec, cfg.RateLimitBurst)
		r.Use(rl.Middleware())
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")

	// 公开接口
	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)

	authed := api.Group("")
	authed.Use(middleware.Auth(cfg.JWTManager, cfg.Logger))

	admin := authed.Group("")
	admin.Use(middleware.RequireRole(string(domain.RoleAdmin)))

	// 邮箱验证
	authed.POST("/auth/verify/send", h.Auth.SendVerification)
	authed.POST("/auth/verify/confirm", h.Auth.ConfirmVerification)

	// 用户
	admin.GET("/users", h.User.ListUsers)
	authed.GET("/users/:id", h.User.GetUser)
	authed.PUT("/users/:id", h.User.UpdateUser)
	authed.PUT("/users/:id/password", h.User.ChangePassword)
	authed.DELETE("/users/:id", h.User.DeleteUser)

	// 歌手
	authed.GET("/artists", h.Artist.ListArtists)
	authed.GET("/artists/:id", h.Artist.GetArtist)
	authed.GET("/artists/:id/albums", h.Album.ListAlbumsByArtist)
	authed.GET("/artists/:id/songs", h.Song.ListSongsByArtist)
	admin.POST("/artists", h.Artist.AddArtist)
	admin.PUT("/artists/:id", h.Artist.UpdateArtist)
	admin.DELETE("/artists/:id", h.Artist.DeleteArtist)

	// 专辑
	authed.GET("/albums", h.Album.ListAlbums)
	authed.GET("/albums/:id", h.Album.GetAlbum)
	authed.GET("/albums/:id/songs", h.Song.ListSongsByAlbum)
	admin.POST("/albums", h.Album.AddAlbum)
	admin.PUT("/albums/:id", h.Album.UpdateAlbum)
	admin.DELETE("/albums/:id", h.Album.DeleteAlbum)

	// 歌曲与评分排行
	authed.GET("/songs", h.Song.ListSongs)
	authed.GET("/songs/top-rated", h.Rating.TopRatedSongs)
	authed.GET("/songs/:id", h.Song.GetSong)
	admin.POST("/songs", h.Song.AddSong)
	admin.PUT("/songs/:id", h.Song.UpdateSong)
	admin.DELETE("/songs/:id", h.Song.DeleteSong)

	// 评分
	authed.POST("/songs/:id/ratings", h.Rating.AddRating)
	authed.PUT("/songs/:id/ratings", h.Rating.UpdateRating)
	authed.DELETE("/songs/:id/ratings", h.Rating.DeleteRating)
	authed.GET("/songs/:id/ratings/mine", h.Rating.GetMyRating)

	// 歌单
	authed.POST("/playlists", h.Playlist.AddPlaylist)
	authed.GET("/playlists/mine", h.Playlist.GetMyPlaylists)
	authed.GET("/playlists/public", h.Playlist.GetPublicPlaylists)
	authed.GET("/playlists/:id", h.Playlist.GetPlaylist)
	authed.PUT("/playlists/:id", h.Playlist.UpdatePlaylist)
	authed.DELETE("/playlists/:id", h.Playlist.DeletePlaylist)
	authed.POST("/playlists/:id/songs", h.Playlist.AddSongToPlaylist)
	authed.GET("/playlists/:id/songs", h.Playlist.GetSongsInPlaylist)
	authed.GET("/playlists/:id/songs/count", h.Playlist.GetSongCount)
	authed.DELETE("/playlists/:id/songs", h.Playlist.ClearPlaylist)
	authed.DELETE("/playlists/:id/songs/:song_id", h.Playlist.RemoveSongFromPlaylist)

	// 收藏
	authed.POST("/favorites", h.Favorite.AddFavorite)
	authed.GET("/favorites", h.Favorite.ListFavorites)
	authed.DELETE("/favorites/:id", h.Favorite.RemoveFavorite)

	// 订阅
	authed.POST("/subscriptions/checkout", h.Subscription.CreateCheckout)
	authed.GET("/subscriptions/mine", h.Subscription.GetMySubscription)
	admin.POST("/subscriptions/activate", h.Subscription.Activate)

	// 后台导出
	admin.GET("/admin/export", h.Export.ExportCatalog)

	return r
}
