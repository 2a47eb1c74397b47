package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"

	"github.com/8180e/personal-finance-dashboard/internal/cache"
	"github.com/8180e/personal-finance-dashboard/internal/config"
	"github.com/8180e/personal-finance-dashboard/internal/handler"
	"github.com/8180e/personal-finance-dashboard/internal/hashing"
	"github.com/8180e/personal-finance-dashboard/internal/middleware"
	"github.com/8180e/personal-finance-dashboard/internal/models"
	"github.com/8180e/personal-finance-dashboard/internal/repository"
	"github.com/8180e/personal-finance-dashboard/internal/service"
	"github.com/8180e/personal-finance-dashboard/internal/token"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Database connection
	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		slog.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	if err := repository.RunMigrations(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Redis connection (dashboard summary cache)
	redisClient, err := cache.NewClient(cfg.RedisAddr, cfg.RedisPassword, 0)
	if err != nil {
		slog.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()

	// --- wiring ---
	tokens := token.NewService(cfg.TokenSecret)
	hasher := hashing.NewBcryptHasher()

	userRepo := repository.NewPostgresUserRepository(db)
	txRepo := repository.NewPostgresTransactionRepository(db)
	budgetRepo := repository.NewPostgresBudgetRepository(db)

	summaryCache := cache.NewViewCache[models.DashboardSummary](redisClient, cfg.SummaryTTL)
	dashboardSvc := service.NewDashboardService(txRepo, summaryCache)

	userSvc := service.NewUserService(userRepo, hasher)
	txSvc := service.NewTransactionService(txRepo, dashboardSvc)
	budgetSvc := service.NewBudgetService(budgetRepo)

	authHandler := handler.NewAuthHandler(userSvc, tokens)
	txHandler := handler.NewTransactionHandler(txSvc)
	budgetHandler := handler.NewBudgetHandler(budgetSvc)
	dashboardHandler := handler.NewDashboardHandler(dashboardSvc)

	// Setup router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logging())

	auth := router.Group("/v1/auth")
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/signin", authHandler.Signin)
	}

	transactions := router.Group("/v1/transactions", middleware.Auth(tokens))
	{
		transactions.POST("", txHandler.CreateTransaction)
		transactions.GET("", txHandler.ListTransactions)
		transactions.DELETE("/:transactionId", txHandler.DeleteTransaction)
	}

	budgets := router.Group("/v1/budgets", middleware.Auth(tokens))
	{
		budgets.POST("", budgetHandler.CreateBudget)
		budgets.GET("", budgetHandler.ListBudgets)
		budgets.PATCH("/:budgetId", budgetHandler.UpdateBudget)
		budgets.DELETE("/:budgetId", budgetHandler.DeleteBudget)
	}

	router.GET("/v1/dashboard/summary", middleware.Auth(tokens), dashboardHandler.GetSummary)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	slog.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown failed", "error", err)
	}
}
