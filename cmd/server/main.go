package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"campus-market.backend/internal/config"
	"campus-market.backend/internal/infrastructure/repositories"
	"campus-market.backend/internal/infrastructure/storage"
	"campus-market.backend/internal/interfaces/http/handlers"
	"campus-market.backend/internal/interfaces/http/middleware"
	"campus-market.backend/internal/usecases"
	"campus-market.backend/pkg/jwt"
	"campus-market.backend/pkg/logger"
	"campus-market.backend/pkg/redis"
)

const (
	serviceName    = "campus-market-backend"
	serviceVersion = "1.0.0"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt:    false,
			TranslateError: true,
		})
	}
	getStdDB        = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
	newSessionStore = redis.NewSessionStore
	newObjectStore  = storage.New
	signalContext   = func() (context.Context, context.CancelFunc) {
		return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	}
	listenAndServe = func(srv *http.Server) error { return srv.ListenAndServe() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	defer logger.Sync()
	ctx := context.Background()
	logger.Info(ctx, "Logger initialized", zap.String("env", cfg.Server.Env))

	if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
		logger.Error(ctx, "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	defer func() { _ = redis.Close() }()

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if cfg.Database.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	}
	if cfg.Database.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	}
	if err := sqlDB.Ping(); err != nil {
		logger.Warn(ctx, "Database not available, endpoints will return errors", zap.Error(err))
	} else {
		logger.Info(ctx, "Connected to PostgreSQL via GORM")
	}

	sessionStore, err := newSessionStore(cfg.Security.SessionEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	objectStore, err := newObjectStore(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to initialize image storage: %w", err)
	}
	if err := objectStore.EnsureBucket(ctx); err != nil {
		return fmt.Errorf("failed to prepare image storage: %w", err)
	}
	logger.Info(ctx, "Image storage ready", zap.String("driver", cfg.Storage.Driver), zap.String("bucket", objectStore.Bucket()))

	r := newRouter(cfg, buildRouteDeps(cfg, db, sessionStore, objectStore))

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	sigCtx, stop := signalContext()
	defer stop()

	logger.Info(ctx, "Campus Market backend starting",
		zap.String("port", cfg.Server.Port),
		zap.Int("routes", len(r.Routes())),
	)
	return serve(sigCtx, srv, cfg.Server.ShutdownTimeout)
}

// buildRouteDeps wires repositories, usecases and handlers.
func buildRouteDeps(cfg *config.Config, db *gorm.DB, sessions usecases.SessionStore, images storage.ObjectStorage) routeDeps {
	userRepo := repositories.NewUserRepository(db)
	productRepo := repositories.NewProductRepository(db)
	conversationRepo := repositories.NewConversationRepository(db)
	messageRepo := repositories.NewMessageRepository(db)
	paymentMethodRepo := repositories.NewPaymentMethodRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)
	reportRepo := repositories.NewReportRepository(db)
	uow := repositories.NewUnitOfWork(db)

	tokens := jwt.NewSessionTokenService(cfg.Session.Secret, cfg.Session.TTL)

	authUsecase := usecases.NewAuthUsecase(userRepo, sessions, tokens, cfg.Session.TTL, cfg.Security.BcryptCost)
	productUsecase := usecases.NewProductUsecase(productRepo)
	conversationUsecase := usecases.NewConversationUsecase(conversationRepo, messageRepo, productRepo, uow)
	paymentMethodUsecase := usecases.NewPaymentMethodUsecase(paymentMethodRepo, uow)
	purchaseUsecase := usecases.NewPurchaseUsecase(productRepo, paymentMethodRepo, transactionRepo, uow)
	reportUsecase := usecases.NewReportUsecase(reportRepo, productRepo)
	adminUsecase := usecases.NewAdminUsecase(userRepo, productRepo, reportRepo)
	userUsecase := usecases.NewUserUsecase(userRepo)
	uploadUsecase := usecases.NewUploadUsecase(images, cfg.Storage.MaxUploadBytes)

	return routeDeps{
		authHandler: handlers.NewAuthHandler(authUsecase, handlers.CookieSettings{
			Name:   cfg.Session.CookieName,
			Secure: cfg.Session.CookieSecure,
		}),
		productHandler:       handlers.NewProductHandler(productUsecase),
		userHandler:          handlers.NewUserHandler(userUsecase),
		conversationHandler:  handlers.NewConversationHandler(conversationUsecase),
		paymentMethodHandler: handlers.NewPaymentMethodHandler(paymentMethodUsecase),
		transactionHandler:   handlers.NewTransactionHandler(purchaseUsecase),
		reportHandler:        handlers.NewReportHandler(reportUsecase),
		adminHandler:         handlers.NewAdminHandler(adminUsecase),
		uploadHandler:        handlers.NewUploadHandler(uploadUsecase),
		sessionMiddleware:    middleware.SessionMiddleware(authUsecase, cfg.Session.CookieName),
	}
}

// serve runs srv until ctx is cancelled, then drains in-flight requests for
// at most shutdownTimeout.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() { errCh <- listenAndServe(srv) }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	logger.Info(context.Background(), "Shutting down server")
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
