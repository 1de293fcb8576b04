package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"denance.backend/internal/config"
	"denance.backend/internal/infrastructure/jobs"
	"denance.backend/internal/infrastructure/notify"
	"denance.backend/internal/infrastructure/repositories"
	"denance.backend/internal/interfaces/http/handlers"
	"denance.backend/internal/interfaces/http/middleware"
	"denance.backend/internal/usecases"
	"denance.backend/pkg/jwt"
	"denance.backend/pkg/logger"
	"denance.backend/pkg/redis"
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
			PrepareStmt: false,
		})
	}
	newSessionStore = redis.NewSessionStore
	runServer       = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB        = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize repositories
	profileRepo := repositories.NewProfileRepository(db)
	withdrawalRepo := repositories.NewWithdrawalRepository(db)
	purchaseRepo := repositories.NewPurchaseRepository(db)
	paymentDetailsRepo := repositories.NewPaymentDetailsRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Initialize Session Store
	sessionStore, err := newSessionStore(cfg.Security.SessionEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}

	// View state lives in Redis; sessions pick up at the dashboard after TTL
	viewStore := redis.NewViewStateStore(7 * 24 * time.Hour)

	// Operator notification channel
	notifier := notify.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID)

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(profileRepo, jwtService)
	refreshUsecase := usecases.NewRefreshUsecase(profileRepo, cfg.Policy)
	withdrawalUsecase := usecases.NewWithdrawalUsecase(profileRepo, withdrawalRepo, uow, notifier, cfg.Policy)
	purchaseUsecase := usecases.NewPurchaseUsecase(purchaseRepo, paymentDetailsRepo, notifier)
	activationAdminUsecase := usecases.NewActivationAdminUsecase(profileRepo)
	viewUsecase := usecases.NewViewSessionUsecase(viewStore, profileRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase, sessionStore, viewUsecase)
	profileHandler := handlers.NewProfileHandler(authUsecase, refreshUsecase)
	withdrawalHandler := handlers.NewWithdrawalHandler(withdrawalUsecase, viewUsecase)
	purchaseHandler := handlers.NewPurchaseHandler(purchaseUsecase)
	viewHandler := handlers.NewViewHandler(viewUsecase)
	adminHandler := handlers.NewAdminHandler(activationAdminUsecase)

	authMiddleware := middleware.AuthMiddleware(jwtService)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	expiryJob := jobs.NewPurchaseExpiryJob(purchaseRepo, cfg.Policy.PurchaseExpiryInterval, cfg.Policy.PurchaseMaxPendingAge)
	go expiryJob.Start(ctx)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		authHandler:       authHandler,
		profileHandler:    profileHandler,
		withdrawalHandler: withdrawalHandler,
		purchaseHandler:   purchaseHandler,
		viewHandler:       viewHandler,
		adminHandler:      adminHandler,
		authMiddleware:    authMiddleware,
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		expiryJob.Stop()
		cancel()
	}()

	// Start server
	log.Printf("🚀 Denance Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
