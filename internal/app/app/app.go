package app

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/go-redis/redis/v8"

	"meetpay/internal/app/config"
	"meetpay/internal/app/logger"
	"meetpay/internal/app/notify"
	"meetpay/internal/app/service/dedup"
	"meetpay/internal/app/service/settlement"
	"meetpay/internal/app/service/sweeper"
	"meetpay/internal/app/session"
	"meetpay/internal/app/storage"
	"meetpay/internal/app/storage/postgres"
	"meetpay/pkg/push"
)

type App struct {
	config    config.Config
	logger    logger.Logger
	db        *sql.DB
	redis     *redis.Client
	users     storage.UserRepository
	movements storage.MovementRepository
	wallets   storage.WalletRepository
	meets     storage.MeetRepository
	engine    *settlement.Engine
	sweeper   *sweeper.Service
	guard     *dedup.Guard
	session   session.Manager
	stopCh    chan struct{}
}

func New(cfg config.Config, logger logger.Logger, e embed.FS) (*App, error) {
	ps, err := push.NewService(cfg.Push.RemoteURL, push.WithLogger(logger.Logger))
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("db open: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("db ping: %w", err)
	}

	if err := applyMigrations(e, db); err != nil {
		return nil, fmt.Errorf("db migrate: %w", err)
	}

	users, err := postgres.NewUserRepository(db)
	if err != nil {
		return nil, fmt.Errorf("user repository init: %w", err)
	}

	skills, err := postgres.NewSkillRepository(db)
	if err != nil {
		return nil, fmt.Errorf("skill repository init: %w", err)
	}

	meets, err := postgres.NewMeetRepository(db)
	if err != nil {
		return nil, fmt.Errorf("meet repository init: %w", err)
	}

	movements, err := postgres.NewMovementRepository(db)
	if err != nil {
		return nil, fmt.Errorf("movement repository init: %w", err)
	}

	wallets, err := postgres.NewWalletRepository(db)
	if err != nil {
		return nil, fmt.Errorf("wallet repository init: %w", err)
	}

	settings, err := postgres.NewSettingsRepository(db)
	if err != nil {
		return nil, fmt.Errorf("settings repository init: %w", err)
	}

	notifications, err := postgres.NewNotificationRepository(db)
	if err != nil {
		return nil, fmt.Errorf("notification repository init: %w", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	engine := settlement.New(db, users, skills, movements, wallets, settings, notify.NewService(ps, notifications))

	sw, err := sweeper.New(meets, engine, cfg.Sweep.Interval, cfg.Sweep.Horizon, cfg.Sweep.Timezone)
	if err != nil {
		return nil, fmt.Errorf("sweeper init: %w", err)
	}

	a := &App{
		config:    cfg,
		logger:    logger,
		stopCh:    make(chan struct{}),
		db:        db,
		redis:     rdb,
		users:     users,
		movements: movements,
		wallets:   wallets,
		meets:     meets,
		engine:    engine,
		sweeper:   sw,
		guard:     dedup.New(rdb, cfg.Events.DedupTTL),
		session:   session.NewMemory(cfg.SecretKey, users),
	}

	go func() {
		<-a.stopCh
		a.logger.Info().Msg("Shutting down application")
	}()

	return a, nil
}

func (a *App) Stop() {
	a.sweeper.Stop()
	_ = a.redis.Close()
	_ = a.db.Close()
	close(a.stopCh)
}
