package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	appsvc "gamestats-api/internal/app"
	"gamestats-api/internal/cache"
	"gamestats-api/internal/config"
	"gamestats-api/internal/logger"
	mysqlClient "gamestats-api/internal/platform/mysql"
	rabbitmqClient "gamestats-api/internal/platform/rabbitmq"
	redisClient "gamestats-api/internal/platform/redis"
	"gamestats-api/internal/repository"
	"gamestats-api/internal/repository/memory"
	"gamestats-api/internal/worker"
)

type App struct {
	Config *config.Config
	Logger *slog.Logger

	MySQL       *gorm.DB
	Redis       *redis.Client
	MQConn      *amqp.Connection
	MatchWorker *worker.MatchResultWorker

	AuthService     *appsvc.AuthService
	StatsService    *appsvc.StatsService
	FeedbackService *appsvc.FeedbackService

	StartedAt time.Time
}

type stores struct {
	accounts appsvc.AccountStore
	stats    appsvc.StatsStore
	feedback appsvc.FeedbackStore
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config failed: %w", err)
	}

	log := logger.New(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	a := &App{
		Config:    cfg,
		Logger:    log,
		StartedAt: time.Now(),
	}

	st, err := a.openStores(ctx)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	var leaderboardCache appsvc.LeaderboardCache
	if cfg.Redis.Enabled {
		a.Redis, err = redisClient.New(ctx, redisClient.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			_ = a.Close()
			return nil, err
		}
		leaderboardCache = cache.NewLeaderboardCache(a.Redis, time.Duration(cfg.Redis.LeaderboardTTLSeconds)*time.Second)
	}

	a.AuthService = appsvc.NewAuthService(st.accounts, st.stats, leaderboardCache, cfg.Auth.BcryptCost, log)
	a.StatsService = appsvc.NewStatsService(st.stats, leaderboardCache, log)
	a.FeedbackService = appsvc.NewFeedbackService(st.feedback)

	if cfg.RabbitMQ.Enabled {
		a.MQConn, err = rabbitmqClient.New(ctx, cfg.RabbitMQ.URL, cfg.RabbitMQ.MatchResultQueue)
		if err != nil {
			_ = a.Close()
			return nil, err
		}
		a.MatchWorker = worker.NewMatchResultWorker(a.MQConn, a.StatsService, cfg.RabbitMQ.MatchResultQueue, log)
		if err := a.MatchWorker.Start(ctx); err != nil {
			_ = a.Close()
			return nil, fmt.Errorf("start match result worker failed: %w", err)
		}
	}

	log.Info("application initialized",
		"store", cfg.App.StoreDriver,
		"redis", cfg.Redis.Enabled,
		"rabbitmq", cfg.RabbitMQ.Enabled,
	)
	return a, nil
}

func (a *App) openStores(ctx context.Context) (stores, error) {
	if a.Config.App.StoreDriver == config.StoreMemory {
		a.Logger.Warn("using in-memory store, data is lost on restart")
		mem := memory.New()
		return stores{accounts: mem.Accounts(), stats: mem.Stats(), feedback: mem.Feedback()}, nil
	}

	db, err := mysqlClient.New(ctx, a.Config.MySQLDSN(), a.Logger)
	if err != nil {
		return stores{}, err
	}
	a.MySQL = db

	if a.Config.MySQL.AutoMigrate {
		if err := mysqlClient.Migrate(db); err != nil {
			return stores{}, err
		}
	}

	return stores{
		accounts: repository.NewAccountRepository(db),
		stats:    repository.NewStatsRepository(db),
		feedback: repository.NewFeedbackRepository(db),
	}, nil
}

func (a *App) Close() error {
	var closeErr error
	if a.MatchWorker != nil {
		a.MatchWorker.Close()
	}
	if a.MQConn != nil {
		if err := a.MQConn.Close(); err != nil {
			closeErr = err
		}
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			closeErr = err
		}
	}
	if a.MySQL != nil {
		sqlDB, err := a.MySQL.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				closeErr = err
			}
		}
	}
	return closeErr
}
