package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	accountcmd "github.com/miniatm/ledger-service/internal/command"
	"github.com/miniatm/ledger-service/internal/config"
	"github.com/miniatm/ledger-service/internal/handler"
	"github.com/miniatm/ledger-service/internal/middleware"
	accountqry "github.com/miniatm/ledger-service/internal/query"
	"github.com/miniatm/ledger-service/internal/repository"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// In-memory store, seeded before the server accepts traffic.
	repo := repository.NewAccountRepository()
	repo.Seed()

	// --- CQRS wiring ---
	commandSvc := accountcmd.NewAccountCommandService(repo)
	querySvc := accountqry.NewAccountQueryService(repo)

	accountHandler := handler.NewAccountHandler(commandSvc, querySvc)

	// Setup router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	accounts := router.Group("/accounts")
	{
		accounts.GET("/:accountNumber/balance", accountHandler.GetBalance)
		accounts.POST("/:accountNumber/deposit", accountHandler.Deposit)
		accounts.POST("/:accountNumber/withdraw", accountHandler.Withdraw)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		slog.Info("Ledger service starting", "env", cfg.Env, "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	slog.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}
	slog.Info("Server exited")
}
