// @title        Legal Records API
// @version      1.0
// @description  Clients, case files, other documents and users of the legal practice.
// @BasePath     /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/calvacorro/legal-records-api/internal/api"
	"github.com/calvacorro/legal-records-api/internal/api/metrics"
	"github.com/calvacorro/legal-records-api/internal/core/ports"
	"github.com/calvacorro/legal-records-api/internal/core/service"
	"github.com/calvacorro/legal-records-api/internal/infrastructure/config"
	mongodb "github.com/calvacorro/legal-records-api/internal/infrastructure/db/mongo"
	redisdb "github.com/calvacorro/legal-records-api/internal/infrastructure/db/redis"
	"github.com/calvacorro/legal-records-api/internal/infrastructure/http/handlers"
	"github.com/calvacorro/legal-records-api/internal/infrastructure/queue"
	"github.com/calvacorro/legal-records-api/internal/infrastructure/storage/drive"
	"github.com/calvacorro/legal-records-api/pkg/logger"
)

const (
	serviceName     = "legal-records-api"
	shutdownTimeout = 10 * time.Second
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		// The logger is not configured yet.
		bootLog := logger.New(logger.Options{Pretty: true, Service: serviceName})
		bootLog.Fatal().Err(err).Msg("config load failed")
	}

	log := logger.New(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: serviceName,
		Env:     cfg.Env,
	})

	// --- MongoDB ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect failed")
	}
	log.Info().Str("database", cfg.Mongo.Database).Msg("mongo connected")

	clientRepo := mongodb.NewClientRepository(db)
	caseFileRepo := mongodb.NewCaseFileRepository(db)
	otherRepo := mongodb.NewOtherDocumentRepository(db)
	userRepo := mongodb.NewUserRepository(db)
	counterRepo := mongodb.NewCounterRepository(db)

	if err := mongodb.EnsureIndexes(ctx, clientRepo, caseFileRepo, otherRepo, userRepo); err != nil {
		// Legacy data may hold duplicates; the service-level checks still apply.
		log.Warn().Err(err).Msg("mongo index creation failed")
	}

	checks := []handlers.Check{handlers.MongoCheck(db)}

	// --- Redis (optional create locks) ---
	var locker ports.Locker = service.NoopLocker{}
	if cfg.Redis.Addr != "" {
		rdb, err := redisdb.Connect(ctx, redisdb.Config{
			Addr:           cfg.Redis.Addr,
			Password:       cfg.Redis.Password,
			DB:             cfg.Redis.DB,
			ConnectTimeout: cfg.Redis.ConnectTimeout,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connect failed")
		}
		defer rdb.Close()
		locker = redisdb.NewLocker(rdb, cfg.Redis.LockTTL)
		checks = append(checks, handlers.RedisCheck(rdb))
		log.Info().Str("addr", cfg.Redis.Addr).Msg("redis locks enabled")
	} else {
		log.Warn().Msg("REDIS_ADDR not set; concurrent creates are not serialised")
	}

	// --- Google Drive ---
	store, err := drive.Connect(ctx, drive.Config{
		CredentialsJSON: cfg.Drive.CredentialsJSON,
		CredentialsFile: cfg.Drive.CredentialsFile,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("drive client init failed")
	}
	store = store.WithObserver(metrics.DriveObserver{})
	checks = append(checks, handlers.Check{Name: "drive", Ping: store.Ping})

	// --- Services ---
	ids := service.NewCounterAllocator(counterRepo)
	workerCtx, stopWorkers := context.WithCancel(ctx)
	defer stopWorkers()
	cleaner := queue.NewCleaner(0, store, log)
	cleaner.Start(workerCtx)
	folders := service.NewFolderResolver(store, log).WithRemover(cleaner)

	var tokens service.TokenIssuer
	if cfg.Auth.JWTSecret != "" {
		tokens = service.NewJWTIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	}

	router := api.NewRouter(api.Dependencies{
		Log:            log,
		Production:     cfg.IsProduction(),
		AllowedOrigins: cfg.AllowedOrigins(),
		AuthRequired:   cfg.Auth.Required,
		JWTSecret:      cfg.Auth.JWTSecret,
		Clients:        service.NewClientService(clientRepo, locker, log),
		CaseFiles:      service.NewCaseFileService(caseFileRepo, clientRepo, ids, folders, locker, cfg.Drive.RootFolderID, log),
		OtherDocuments: service.NewOtherDocumentService(otherRepo, ids, folders, locker, cfg.Drive.RootFolderID, cfg.Drive.OthersFolder, log),
		Users:          service.NewUserService(userRepo, ids, locker, tokens, cfg.Auth.EnableUsersOnCreate, log),
		Checks:         checks,
	})

	srv := &http.Server{
		Addr:              net.JoinHostPort("", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Bool("auth_required", cfg.Auth.Required).Msg("api starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("api start failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdown(log, srv, cleaner, mongoClient)
}

func shutdown(log zerolog.Logger, srv *http.Server, cleaner *queue.Cleaner, mongoClient interface {
	Disconnect(context.Context) error
}) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	} else {
		// No requests are in flight; pending folder removals drain before exit.
		cleaner.Stop()
	}
	if err := mongoClient.Disconnect(ctx); err != nil {
		log.Error().Err(err).Msg("mongo disconnect")
	}
	log.Info().Msg("api stopped gracefully")
}
