package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/tunewave/server/internal/cache"
	"github.com/tunewave/server/internal/cron"
	"github.com/tunewave/server/internal/handler"
	"github.com/tunewave/server/internal/mail"
	"github.com/tunewave/server/internal/payment"
	"github.com/tunewave/server/internal/repository"
	"github.com/tunewave/server/internal/service"
	"github.com/tunewave/server/migrations"
	"github.com/tunewave/server/pkg/config"
	"github.com/tunewave/server/pkg/db"
	"github.com/tunewave/server/pkg/jwt"
	"github.com/tunewave/server/pkg/logger"
	"github.com/tunewave/server/pkg/telemetry"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	log := logger.Default()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("load config failed", logger.Err(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Init(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		OTLPEndpoint: cfg.Telemetry.OTLPEndpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
	})
	if err != nil {
		log.Fatal("init telemetry failed", logger.Err(err))
	}

	if err := db.Migrate(cfg.Database.DSN, migrations.FS, "."); err != nil {
		log.Fatal("run migrations failed", logger.Err(err))
	}

	pool, err := db.Connect(ctx, &db.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		log.Fatal("connect database failed", logger.Err(err))
	}
	defer pool.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	// 仓储层
	txManager := repository.NewTxManager(pool)
	userRepo := repository.NewUserRepository(pool)
	artistRepo := repository.NewArtistRepository(pool)
	albumRepo := repository.NewAlbumRepository(pool)
	songRepo := repository.NewSongRepository(pool)
	playlistRepo := repository.NewPlaylistRepository(pool)
	playlistSongRepo := repository.NewPlaylistSongRepository(pool)
	favoriteRepo := repository.NewFavoriteRepository(pool)
	ratingRepo := repository.NewRatingRepository(pool)
	verificationRepo := repository.NewEmailVerificationRepository(pool)
	premiumRepo := repository.NewPremiumUserRepository(pool)

	// 基础设施
	jwtManager := jwt.NewManager(&jwt.Config{
		Secret:           cfg.JWT.Secret,
		Issuer:           cfg.JWT.Issuer,
		TokenExpiry:      cfg.JWT.TokenExpiry,
		ShortTokenExpiry: cfg.JWT.ShortTokenExpiry,
	})
	mailer := mail.NewSMTPMailer(&mail.SMTPConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	})
	gateway := payment.NewClient(&payment.Config{
		BaseURL: cfg.Payment.BaseURL,
		APIKey:  cfg.Payment.APIKey,
		Timeout: cfg.Payment.Timeout,
	})
	leaderboard := cache.NewLeaderboard(redisClient, cfg.Redis.CacheTTL)
	limits := service.StaticLimits{
		MaxPlaylistsPerUser: cfg.Limits.MaxPlaylistsPerUser,
		MaxSongsPerPlaylist: cfg.Limits.MaxSongsPerPlaylist,
	}

	// 服务层
	userService := service.NewUserService(userRepo, playlistRepo, playlistSongRepo, favoriteRepo, ratingRepo, verificationRepo, premiumRepo, jwtManager, txManager)
	verificationService := service.NewVerificationService(verificationRepo, userRepo, mailer, cfg.Notifier.VerifyTTL)
	artistService := service.NewArtistService(artistRepo, albumRepo, songRepo)
	albumService := service.NewAlbumService(albumRepo, artistRepo, songRepo, playlistSongRepo, favoriteRepo, ratingRepo, txManager)
	songService := service.NewSongService(songRepo, artistRepo, albumRepo, playlistSongRepo, favoriteRepo, ratingRepo, txManager)
	playlistService := service.NewPlaylistService(playlistRepo, playlistSongRepo, favoriteRepo, userRepo, limits, txManager)
	playlistSongService := service.NewPlaylistSongService(playlistSongRepo, playlistRepo, songRepo, userRepo, limits, txManager)
	ratingService := service.NewRatingService(ratingRepo, songRepo, userRepo, leaderboard)
	favoriteService := service.NewFavoriteService(favoriteRepo, songRepo, playlistRepo, userRepo)
	subscriptionService := service.NewSubscriptionService(premiumRepo, userRepo, gateway, mailer, log, txManager)
	exportService := service.NewExportService(userRepo, artistRepo, songRepo, ratingRepo)

	// HTTP层
	handlers := &handler.Handlers{
		Auth:         handler.NewAuthHandler(userService, verificationService),
		User:         handler.NewUserHandler(userService),
		Artist:       handler.NewArtistHandler(artistService),
		Album:        handler.NewAlbumHandler(albumService),
		Song:         handler.NewSongHandler(songService),
		Playlist:     handler.NewPlaylistHandler(playlistService, playlistSongService),
		Rating:       handler.NewRatingHandler(ratingService),
		Favorite:     handler.NewFavoriteHandler(favoriteService),
		Subscription: handler.NewSubscriptionHandler(subscriptionService),
		Export:       handler.NewExportHandler(exportService),
	}
	router := handler.NewRouter(handlers, &handler.RouterConfig{
		JWTManager:      jwtManager,
		Logger:          log,
		ServiceName:     cfg.Telemetry.ServiceName,
		RateLimitPerSec: cfg.Server.RateLimitPerSec,
		RateLimitBurst:  cfg.Server.RateLimitBurst,
	})

	// 订阅到期定时任务
	cronManager := cron.NewManager(subscriptionService, log, cfg.Notifier.CronSpec)
	if err := cronManager.Start(); err != nil {
		log.Fatal("start cron failed", logger.Err(err))
	}
	defer cronManager.Stop()

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	go func() {
		log.Info("server listening", logger.F("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", logger.Err(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown failed", logger.Err(err))
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error("tracing shutdown failed", logger.Err(err))
	}
	log.Info("server stopped")
}
