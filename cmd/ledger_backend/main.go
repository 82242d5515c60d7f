package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/chaikhata/shop_ledger_app/internal/core/services"
	"github.com/chaikhata/shop_ledger_app/internal/dto"
	"github.com/chaikhata/shop_ledger_app/internal/handlers"
	"github.com/chaikhata/shop_ledger_app/internal/infra/advice"
	"github.com/chaikhata/shop_ledger_app/internal/middleware"
	"github.com/chaikhata/shop_ledger_app/pkg/config"
	"github.com/chaikhata/shop_ledger_app/pkg/database"

	portsrepo "github.com/chaikhata/shop_ledger_app/internal/core/ports/repositories"
	"github.com/chaikhata/shop_ledger_app/internal/repositories/database/sqlite"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// @title Shop Ledger API
// @version 1.0
// @description Ledger, staff payroll and reporting backend for a small shop.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Open the database and apply embedded migrations
	db, err := database.NewSQLiteDB(cfg.SQLitePath)
	if err != nil {
		logger.Error("Failed to initialize database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()
	logger.Info("Database ready", slog.String("path", cfg.SQLitePath))

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	dto.RegisterCustomValidators()

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Wire repositories and services
	ledgerRepo := sqlite.NewLedgerRepository(db)
	repos := portsrepo.RepositoryProvider{
		TransactionRepo: ledgerRepo,
		PayrollRepo:     ledgerRepo,
		ProfileRepo:     ledgerRepo,
	}

	adviceClient := advice.NewClient(&http.Client{}, cfg.AdviceAPIURL, cfg.AdviceAPIKey, cfg.AdviceTimeout)
	serviceContainer := services.NewServiceContainer(repos, adviceClient)

	// Rate limit for the advice endpoint only
	adviceRate, err := limiter.NewRateFromFormatted(cfg.AdviceRateLimit)
	if err != nil {
		logger.Error("Invalid ADVICE_RATE_LIMIT", slog.String("value", cfg.AdviceRateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	adviceLimiter := limiter.New(memory.NewStore(), adviceRate)

	handlers.RegisterRoutes(r, serviceContainer, middleware.RateLimit(adviceLimiter))

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
