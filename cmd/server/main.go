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

	"campus-canteen.backend/internal/config"
	"campus-canteen.backend/internal/infrastructure/jobs"
	"campus-canteen.backend/internal/infrastructure/repositories"
	"campus-canteen.backend/internal/interfaces/http/handlers"
	"campus-canteen.backend/internal/interfaces/http/middleware"
	"campus-canteen.backend/internal/usecases"
	"campus-canteen.backend/pkg/jwt"
	"campus-canteen.backend/pkg/logger"
	"campus-canteen.backend/pkg/redis"
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
		if err := repositories.AutoMigrate(db); err != nil {
			return fmt.Errorf("failed to migrate schema: %w", err)
		}
	}

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiry)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	walletRepo := repositories.NewWalletRepository(db)
	txRepo := repositories.NewTransactionRepository(db)
	mealRepo := repositories.NewMealRepository(db)
	slotRepo := repositories.NewTimeSlotRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	wellnessRepo := repositories.NewWellnessRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Initialize usecases
	walletUsecase := usecases.NewWalletUsecase(walletRepo, txRepo, uow)
	wellnessUsecase := usecases.NewWellnessUsecase(wellnessRepo, orderRepo)
	orderUsecase := usecases.NewOrderUsecase(orderRepo, mealRepo, slotRepo, userRepo, walletRepo, uow, walletUsecase, wellnessUsecase, cfg.Wellness)
	mealUsecase := usecases.NewMealUsecase(mealRepo)
	slotUsecase := usecases.NewTimeSlotUsecase(slotRepo)

	// Initialize handlers
	walletHandler := handlers.NewWalletHandler(walletUsecase, cfg.Pagination)
	orderHandler := handlers.NewOrderHandler(orderUsecase, cfg.Pagination)
	wellnessHandler := handlers.NewWellnessHandler(wellnessUsecase)
	mealHandler := handlers.NewMealHandler(mealUsecase, cfg.Pagination)
	slotHandler := handlers.NewTimeSlotHandler(slotUsecase)

	authMiddleware := middleware.AuthMiddleware(jwtService)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sweepJob := jobs.NewWellnessReconcilerJob(orderRepo, wellnessUsecase, cfg.Jobs.SweepInterval, cfg.Jobs.SweepBatchSize)
	go sweepJob.Start(ctx)

	resetJob := jobs.NewMonthlyResetJob(walletUsecase, cfg.Jobs.MonthlyResetSpec)
	if err := resetJob.Start(ctx); err != nil {
		return fmt.Errorf("failed to schedule monthly reset: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerAPIV1Routes(r, routeDeps{
		walletHandler:   walletHandler,
		orderHandler:    orderHandler,
		wellnessHandler: wellnessHandler,
		mealHandler:     mealHandler,
		slotHandler:     slotHandler,
		authMiddleware:  authMiddleware,
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		sweepJob.Stop()
		resetJob.Stop()
		cancel()
	}()

	log.Printf("🚀 Campus Canteen Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
