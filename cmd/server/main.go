package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/pr-poehali-dev/coin-toss-betting-game/internal/bot"
	"github.com/pr-poehali-dev/coin-toss-betting-game/internal/config"
	"github.com/pr-poehali-dev/coin-toss-betting-game/internal/database"
	"github.com/pr-poehali-dev/coin-toss-betting-game/internal/handlers"
	"github.com/pr-poehali-dev/coin-toss-betting-game/internal/logging"
	"github.com/pr-poehali-dev/coin-toss-betting-game/internal/repository"
	"github.com/pr-poehali-dev/coin-toss-betting-game/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("failed to load config:", err)
	}

	logger := logging.SetupLogger(cfg.LogLevel)

	gin.SetMode(gin.ReleaseMode)

	if err := database.MigrateUp(cfg.DBURL); err != nil {
		logger.Error("failed to run migrations", "err", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	pool, err := database.Connect(ctx, cfg.DBURL, cfg.DBMaxConns)
	if err != nil {
		logger.Error("failed to connect to database", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	botAPI, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		logger.Error("failed to create bot api", "err", err)
		os.Exit(1)
	}

	repo := repository.NewGamePGRepository(pool, logger)
	svc := service.NewGameService(repo, service.NewRandFlipper(), cfg.StartingBalance, logger)
	gameHandler := handlers.NewGameHTTPHandler(svc, cfg.TONWalletAddress)
	botHandler := bot.NewBotHandler(botAPI, repo, cfg.IsAdmin, cfg.GameURL, cfg.BotWebhookURL, logger)

	r := gin.Default()
	r.Use(handlers.CORSMiddleware(), handlers.RequestIDMiddleware())
	gameHandler.RegisterRoutes(r)
	botHandler.RegisterRoutes(r)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.Info("Starting server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Error("Server forced to shutdown", "err", err)
	}
	logger.Info("Server exiting")
}
