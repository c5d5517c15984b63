package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"learnit-service/internal/application/services"
	"learnit-service/internal/config"
	httpx "learnit-service/internal/delivery/http"
	"learnit-service/internal/domain/repositories"
	"learnit-service/internal/infrastructure"
	"learnit-service/internal/infrastructure/db/mongodb"
	"learnit-service/internal/infrastructure/db/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}

	log := infrastructure.NewLogger(cfg.LogLevel, cfg.LogFormat)

	if err := run(cfg, log); err != nil {
		log.WithError(err).Fatal("server stopped with error")
	}
}

func run(cfg *config.Config, log *logrus.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	userRepo, postRepo, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	jwtService, err := infrastructure.NewJWTService(cfg.AccessTokenSecret, cfg.AccessTokenTTL)
	if err != nil {
		return err
	}

	redisService := infrastructure.NewRedisService(ctx, cfg.RedisURL, log)
	defer redisService.Close()

	publisher := infrastructure.NewNATSPublisher(cfg.NatsURL, log)
	defer publisher.Close()

	userService := services.NewUserService(userRepo, jwtService, redisService, log)
	postService := services.NewPostService(postRepo, publisher, log)

	srv := httpx.NewServer(userService, postService, jwtService, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(cfg.Addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func openStore(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) (repositories.UserRepository, repositories.PostRepository, func(), error) {
	switch cfg.StoreDriver {
	case config.StoreMongo:
		client, db, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, nil, nil, err
		}
		log.WithField("database", cfg.MongoDatabase).Info("connected to mongo")
		closeFn := func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.WithError(err).Warn("mongo disconnect failed")
			}
		}
		return mongodb.NewUserRepository(db), mongodb.NewPostRepository(db), closeFn, nil

	case config.StorePostgres, config.StoreSQLite:
		db, err := postgres.Open(cfg.StoreDriver, cfg.DatabaseURL, log)
		if err != nil {
			return nil, nil, nil, err
		}
		log.WithField("driver", cfg.StoreDriver).Info("connected to database")
		closeFn := func() {
			if err := postgres.Close(db); err != nil {
				log.WithError(err).Warn("database close failed")
			}
		}
		return postgres.NewUserRepository(db), postgres.NewPostRepository(db), closeFn, nil
	}
	return nil, nil, nil, errors.New("unknown store driver " + cfg.StoreDriver)
}
