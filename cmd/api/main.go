package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"seatwatch-srv/config"
	configPostgre "seatwatch-srv/config/postgre"
	configRedis "seatwatch-srv/config/redis"
	alertPostgre "seatwatch-srv/internal/alert/repository/postgre"
	alertUsecase "seatwatch-srv/internal/alert/usecase"
	authUsecase "seatwatch-srv/internal/auth/usecase"
	dispatcherRedis "seatwatch-srv/internal/dispatcher/repository/redis"
	dispatcherUsecase "seatwatch-srv/internal/dispatcher/usecase"
	"seatwatch-srv/internal/httpserver"
	operationRedis "seatwatch-srv/internal/operation/repository/redis"
	operationUpstream "seatwatch-srv/internal/operation/repository/upstream"
	operationUsecase "seatwatch-srv/internal/operation/usecase"
	terminalPostgre "seatwatch-srv/internal/terminal/repository/postgre"
	terminalStatic "seatwatch-srv/internal/terminal/repository/static"
	terminalUsecase "seatwatch-srv/internal/terminal/usecase"
	userPostgre "seatwatch-srv/internal/user/repository/postgre"
	userUsecase "seatwatch-srv/internal/user/usecase"
	"seatwatch-srv/pkg/discord"
	"seatwatch-srv/pkg/encrypter"
	"seatwatch-srv/pkg/jwt"
	"seatwatch-srv/pkg/kakao"
	"seatwatch-srv/pkg/log"
	"seatwatch-srv/pkg/mailer"
	"seatwatch-srv/pkg/push"
)

// @title       Seatwatch Service
// @description Bus seat availability alert service: terminal directory, operation catalog, and seat alerts
// @version     1.0
// @BasePath    /
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token authentication. Format: "Bearer {token}"
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config:", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting seatwatch API...")

	var discordClient discord.IDiscord
	if cfg.Discord.WebhookID != "" && cfg.Discord.WebhookToken != "" {
		discordClient, err = discord.New(logger, &discord.DiscordWebhook{
			ID:    cfg.Discord.WebhookID,
			Token: cfg.Discord.WebhookToken,
		})
		if err != nil {
			logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		}
	}

	db, err := configPostgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to PostgreSQL: %v", err)
		os.Exit(1)
	}
	defer configPostgre.Disconnect(ctx, db)

	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Redis: %v", err)
		os.Exit(1)
	}
	defer configRedis.Disconnect()

	enc := encrypter.New(cfg.Encrypter.Key)
	jwtMgr := jwt.NewManager(cfg.JWT.SecretKey, cfg.JWT.Issuer, cfg.JWT.TTL)
	kakaoClient := kakao.New(logger, cfg.Kakao.BaseURL, cfg.Kakao.Timeout)

	// Repositories
	terminalRepo := terminalPostgre.New(logger, db)
	terminalFallback := terminalStatic.New()
	operationSnaps := operationRedis.New(logger, redisClient, cfg.Catalog.SnapshotTTL)
	operationSource := operationUpstream.New(logger, cfg.Catalog.UpstreamBaseURL, cfg.Catalog.UpstreamTimeout)
	userRepo := userPostgre.New(logger, db, enc)
	alertRepo := alertPostgre.New(logger, db)
	failureStore := dispatcherRedis.New(logger, redisClient)

	// Usecases
	terminalUC := terminalUsecase.New(logger, terminalRepo, terminalFallback)
	operationUC := operationUsecase.New(logger, operationSource, operationSnaps, cfg.Catalog.FreshFor)
	userUC := userUsecase.New(logger, userRepo)
	authUC := authUsecase.New(logger, kakaoClient, userUC, jwtMgr)
	alertUC := alertUsecase.New(logger, alertRepo, operationUC)
	pushSender := push.New(logger, cfg.Push.BaseURL, cfg.Push.Timeout)
	mailSender := mailer.New(mailer.Config{
		Host:     cfg.Mailer.Host,
		Port:     cfg.Mailer.Port,
		Username: cfg.Mailer.Username,
		Password: cfg.Mailer.Password,
		From:     cfg.Mailer.From,
	})
	dispatcherUC := dispatcherUsecase.New(logger, pushSender, mailSender, failureStore)

	srv, err := httpserver.New(logger, httpserver.Config{
		Port: cfg.HTTPServer.Port,
		Mode: cfg.HTTPServer.Mode,

		TerminalUC:   terminalUC,
		OperationUC:  operationUC,
		AlertUC:      alertUC,
		AuthUC:       authUC,
		UserUC:       userUC,
		DispatcherUC: dispatcherUC,

		JWTManager: jwtMgr,

		DB:      db,
		Redis:   redisClient,
		Discord: discordClient,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to build HTTP server: %v", err)
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Errorf(ctx, "HTTP server exited with error: %v", err)
		os.Exit(1)
	}
}
