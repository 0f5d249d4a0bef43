package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"seatwatch-srv/config"
	configPostgre "seatwatch-srv/config/postgre"
	configRedis "seatwatch-srv/config/redis"
	alertPostgre "seatwatch-srv/internal/alert/repository/postgre"
	dispatcherRedis "seatwatch-srv/internal/dispatcher/repository/redis"
	dispatcherUsecase "seatwatch-srv/internal/dispatcher/usecase"
	operationRedis "seatwatch-srv/internal/operation/repository/redis"
	operationUpstream "seatwatch-srv/internal/operation/repository/upstream"
	operationUsecase "seatwatch-srv/internal/operation/usecase"
	userPostgre "seatwatch-srv/internal/user/repository/postgre"
	"seatwatch-srv/internal/watcher"
	"seatwatch-srv/pkg/encrypter"
	"seatwatch-srv/pkg/log"
	"seatwatch-srv/pkg/mailer"
	"seatwatch-srv/pkg/push"
)

// The watcher runs as a single instance per alert store: episode state
// lives in memory and two sweepers would double-notify.
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

	logger.Info(ctx, "Starting seatwatch watcher...")

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

	alertRepo := alertPostgre.New(logger, db)
	userRepo := userPostgre.New(logger, db, enc)
	operationSnaps := operationRedis.New(logger, redisClient, cfg.Catalog.SnapshotTTL)
	operationSource := operationUpstream.New(logger, cfg.Catalog.UpstreamBaseURL, cfg.Catalog.UpstreamTimeout)
	operationUC := operationUsecase.New(logger, operationSource, operationSnaps, cfg.Catalog.FreshFor)

	pushSender := push.New(logger, cfg.Push.BaseURL, cfg.Push.Timeout)
	mailSender := mailer.New(mailer.Config{
		Host:     cfg.Mailer.Host,
		Port:     cfg.Mailer.Port,
		Username: cfg.Mailer.Username,
		Password: cfg.Mailer.Password,
		From:     cfg.Mailer.From,
	})
	failureStore := dispatcherRedis.New(logger, redisClient)
	dispatcherUC := dispatcherUsecase.New(logger, pushSender, mailSender, failureStore)

	w := watcher.New(logger, watcher.Config{
		Interval:       cfg.Watcher.Interval,
		HousekeepEvery: cfg.Watcher.SweepEvery,
		Workers:        cfg.Watcher.Workers,
		DispatchWait:   cfg.Watcher.DispatchWait,
	}, alertRepo, userRepo, operationUC, dispatcherUC)

	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Errorf(ctx, "Watcher exited with error: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "Watcher stopped")
}
