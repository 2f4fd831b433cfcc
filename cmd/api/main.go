package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/rishav75way-bit/tracker/internal/config"
	"github.com/rishav75way-bit/tracker/internal/handler"
	"github.com/rishav75way-bit/tracker/internal/middleware"
	"github.com/rishav75way-bit/tracker/internal/repository"
	"github.com/rishav75way-bit/tracker/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := repository.RunMigrations(db); err != nil {
		slog.Error("migrations failed", "error", err)
		os.Exit(1)
	}

	userRepo := repository.NewUserRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	budgetRepo := repository.NewBudgetRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
	expenseService := service.NewExpenseService(expenseRepo)
	statsService := service.NewStatsService(expenseRepo)
	budgetService := service.NewBudgetService(budgetRepo)

	authHandler := handler.NewAuthHandler(authService)
	expenseHandler := handler.NewExpenseHandler(expenseService)
	statsHandler := handler.NewStatsHandler(statsService)
	budgetHandler := handler.NewBudgetHandler(budgetService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", handler.HandleHealth)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/api/auth/register", authHandler.HandleRegister)
		r.Post("/api/auth/login", authHandler.HandleLogin)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(cfg.JWTSecret))
		r.Get("/api/auth/me", authHandler.HandleMe)

		r.Post("/api/expenses", expenseHandler.HandleCreate)
		r.Get("/api/expenses", expenseHandler.HandleList)
		r.Get("/api/expenses/summary", statsHandler.HandleSummary)
		r.Get("/api/expenses/stats/categories", statsHandler.HandleCategoryStats)
		r.Get("/api/expenses/stats/monthly", statsHandler.HandleMonthlyStats)
		r.Get("/api/expenses/budget", budgetHandler.HandleGet)
		r.Post("/api/expenses/budget", budgetHandler.HandleSet)
		r.Get("/api/expenses/{id}", expenseHandler.HandleGet)
		r.Put("/api/expenses/{id}", expenseHandler.HandleUpdate)
		r.Delete("/api/expenses/{id}", expenseHandler.HandleDelete)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
