package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"muza-life.backend/internal/config"
	"muza-life.backend/internal/infrastructure/email"
	"muza-life.backend/internal/infrastructure/jobs"
	"muza-life.backend/internal/infrastructure/ledger"
	"muza-life.backend/internal/infrastructure/oauth"
	"muza-life.backend/internal/infrastructure/repositories"
	"muza-life.backend/internal/interfaces/http/handlers"
	"muza-life.backend/internal/interfaces/http/middleware"
	"muza-life.backend/internal/usecases"
	"muza-life.backend/pkg/jwt"
	"muza-life.backend/pkg/logger"
	"muza-life.backend/pkg/redis"
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
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
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
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	logger.Info(context.Background(), "Redis initialized")

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

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
	}

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiry)

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	productRepo := repositories.NewProductRepository(db)
	faqRepo := repositories.NewFAQRepository(db)
	reviewRepo := repositories.NewReviewRepository(db)
	pollRepo := repositories.NewPollRepository(db)
	savedRepo := repositories.NewSavedProductRepository(db)
	boughtRepo := repositories.NewBoughtProductRepository(db)
	personalOrderRepo := repositories.NewPersonalOrderRepository(db)
	viewRepo := repositories.NewProductViewRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Payment infrastructure
	verificationLedger := ledger.NewRedisVerificationLedger(redis.GetClient())
	orderStore := ledger.NewRedisAuthorizedOrderStore(redis.GetClient(), cfg.Payment.OrderTTL)
	emailSender := email.NewSendGridSender(cfg.Email.SendGridAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	checkoutBuilder := usecases.NewCheckoutBuilder(
		cfg.Payment,
		cfg.Server.FrontendURL+"/payment-result",
		cfg.Server.BackendURL+"/api/payments/webhook",
	)

	// Identity providers
	googleProvider := oauth.NewGoogleProvider(cfg.OAuth.RequestTimeout)
	facebookProvider := oauth.NewFacebookProvider(cfg.OAuth.FacebookAppID, cfg.OAuth.FacebookAppSecret, cfg.OAuth.RequestTimeout)

	// Usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, googleProvider, facebookProvider, jwtService)
	productUsecase := usecases.NewProductUsecase(productRepo, faqRepo)
	reviewUsecase := usecases.NewReviewUsecase(reviewRepo, productRepo, uow)
	pollUsecase := usecases.NewPollUsecase(pollRepo, uow)
	libraryUsecase := usecases.NewLibraryUsecase(savedRepo, boughtRepo, productRepo)
	personalOrderUsecase := usecases.NewPersonalOrderUsecase(personalOrderRepo)
	analyticsUsecase := usecases.NewAnalyticsUsecase(viewRepo, productRepo)
	paymentUsecase := usecases.NewPaymentUsecase(
		verificationLedger, orderStore, emailSender,
		userRepo, boughtRepo, uow,
		checkoutBuilder, cfg.Payment.CodeExpiry,
	)

	// Handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	productHandler := handlers.NewProductHandler(productUsecase)
	reviewHandler := handlers.NewReviewHandler(reviewUsecase)
	pollHandler := handlers.NewPollHandler(pollUsecase)
	libraryHandler := handlers.NewLibraryHandler(libraryUsecase)
	personalOrderHandler := handlers.NewPersonalOrderHandler(personalOrderUsecase)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsUsecase)
	paymentHandler := handlers.NewPaymentHandler(paymentUsecase)

	// Background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	expiryJob := jobs.NewOrderExpiryJob(personalOrderRepo)
	go expiryJob.Start(ctx)

	// Router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r, cfg.Server.FrontendURL)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIRoutes(r, routeDeps{
		authHandler:          authHandler,
		productHandler:       productHandler,
		reviewHandler:        reviewHandler,
		pollHandler:          pollHandler,
		libraryHandler:       libraryHandler,
		personalOrderHandler: personalOrderHandler,
		analyticsHandler:     analyticsHandler,
		paymentHandler:       paymentHandler,
		authMiddleware:       middleware.AuthMiddleware(jwtService),
		optionalAuth:         middleware.OptionalAuthMiddleware(jwtService),
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

	log.Printf("🚀 Muza Life Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
