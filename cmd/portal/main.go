// @title                       Wellness Portal API
// @version                     1.0
// @description                 Accounts, sessions, health articles and wellness tools.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/wellness/portal/docs"
	"github.com/wellness/portal/internal/api"
	"github.com/wellness/portal/internal/core/ports"
	"github.com/wellness/portal/internal/core/service"
	"github.com/wellness/portal/internal/infrastructure/config"
	"github.com/wellness/portal/internal/infrastructure/crypto"
	mongostore "github.com/wellness/portal/internal/infrastructure/db/mongo"
	redisstore "github.com/wellness/portal/internal/infrastructure/db/redis"
	sqlstore "github.com/wellness/portal/internal/infrastructure/db/sql"
	"github.com/wellness/portal/internal/infrastructure/http/handlers"
	"github.com/wellness/portal/internal/infrastructure/inference"
	"github.com/wellness/portal/internal/infrastructure/queue"
	"github.com/wellness/portal/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "portal: %v\n", err)
		os.Exit(1)
	}
}

// stores groups the repositories of whichever backend STORE_DRIVER selects.
type stores struct {
	accounts ports.AccountRepository
	articles ports.ArticleRepository
	audit    ports.AuditRepository
	probe    handlers.Pinger
	close    func(context.Context)
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty,
		Service: "wellness-portal",
		Env:     cfg.Env,
	})

	st, err := openStores(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.close(context.Background())
	log.Info().Str("driver", cfg.Store.Driver).Msg("store connected")

	rdb, err := redisstore.Connect(ctx, redisstore.Config{
		Addr:        cfg.Redis.Addr,
		Password:    cfg.Redis.Password,
		DB:          cfg.Redis.DB,
		PoolSize:    cfg.Redis.PoolSize,
		DialTimeout: cfg.Redis.DialTimeout,
	})
	if err != nil {
		return err
	}
	defer rdb.Close()

	hasher, err := crypto.New(cfg.Auth.PasswordHasher)
	if err != nil {
		return err
	}

	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()
	dispatcher := queue.NewDispatcher(cfg.Audit.Workers, st.audit, logger.Component("audit"))
	dispatcher.Start(workerCtx)

	authSvc := service.NewAuthService(st.accounts, hasher, dispatcher,
		service.AuthOptions{StrictLoginShape: cfg.Auth.StrictLoginShape}, logger.Component("auth"))
	sessionSvc := service.NewSessionService(redisstore.NewSessionStore(rdb), dispatcher,
		cfg.Auth.JWTSecret, cfg.Auth.SessionTTL, logger.Component("session"))
	articleSvc := service.NewArticleService(st.articles, dispatcher, logger.Component("articles"))
	wellnessSvc := service.NewWellnessService(
		inference.NewClient(cfg.Inference.URL, cfg.Inference.Timeout, logger.Component("inference")),
		logger.Component("wellness"))

	if cfg.Auth.AdminEmail != "" {
		if err := authSvc.EnsureAdmin(ctx, cfg.Auth.AdminEmail, cfg.Auth.AdminPassword); err != nil {
			return err
		}
	}
	if cfg.Inference.URL == "" {
		log.Warn().Msg("INFERENCE_URL not set, obesity classification disabled")
	}

	e := api.NewRouter(api.Deps{
		Auth:     authSvc,
		Sessions: sessionSvc,
		Articles: articleSvc,
		Wellness: wellnessSvc,
		Probes: map[string]handlers.Pinger{
			cfg.Store.Driver: st.probe,
			"redis":          redisstore.Pinger{Client: rdb},
		},
		Log: logger.Component("http"),
	})

	serverErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown requested")
	case err := <-serverErr:
		if err != nil {
			log.Error().Err(err).Msg("http server failed")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}

	stopWorkers()
	dispatcher.Wait()
	log.Info().Msg("shutdown complete")
	return nil
}

func openStores(ctx context.Context, cfg *config.Config) (*stores, error) {
	if cfg.Store.Driver == config.DriverMongo {
		client, db, err := mongostore.Connect(ctx, mongostore.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, err
		}
		if err := mongostore.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		return &stores{
			accounts: mongostore.NewAccountRepository(db),
			articles: mongostore.NewArticleRepository(db),
			audit:    mongostore.NewAuditRepository(db),
			probe:    mongostore.Pinger{DB: db},
			close:    func(ctx context.Context) { _ = client.Disconnect(ctx) },
		}, nil
	}

	db, err := sqlstore.Connect(ctx, sqlstore.Config{Driver: cfg.Store.Driver, DSN: cfg.Store.DSN})
	if err != nil {
		return nil, err
	}
	return &stores{
		accounts: sqlstore.NewAccountRepository(db),
		articles: sqlstore.NewArticleRepository(db),
		audit:    sqlstore.NewAuditRepository(db),
		probe:    sqlstore.Pinger{DB: db},
		close:    func(context.Context) { sqlstore.Close(db) },
	}, nil
}
