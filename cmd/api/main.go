// cmd/api/main.go
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"points-calculator/internal/app"
	"points-calculator/internal/auth"
	"points-calculator/internal/bot"
	"points-calculator/internal/config"
	"points-calculator/internal/handler"
	"points-calculator/internal/metrics"
	"points-calculator/internal/middleware"
	"points-calculator/internal/session"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := config.MustLoad()
	app.SetupLogger(cfg.LogLevel)

	catalog, err := app.LoadCatalog(context.Background(), cfg)
	if err != nil {
		slog.Error("Failed to load catalog", "error", err)
		os.Exit(1)
	}

	rec := metrics.NewRecorder(cfg.MetricsNamespace, nil)
	store := session.NewStore(catalog, rec)
	go store.RunEviction(context.Background(), max(cfg.SessionIdleTTL/4, time.Second), cfg.SessionIdleTTL)
	tokenService := auth.NewTokenService(cfg)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	handler.RegisterRoutes(router,
		handler.NewFormHandler(store, tokenService, rec),
		handler.NewPageHandler(store),
		middleware.NewAuthMiddleware(tokenService).RequireAuth(),
	)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Telegram webhook
	if cfg.TelegramToken != "" {
		if err := setupWebhook(router, cfg, bot.NewHandler(store)); err != nil {
			slog.Error("Failed to set up Telegram webhook", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("🚀 Server started", "port", cfg.ServerPort, "catalog_entries", len(catalog))
	if err := router.Run(cfg.ServerPort); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}

func setupWebhook(router *gin.Engine, cfg config.Config, h *bot.Handler) error {
	api, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return err
	}

	webhookURL := cfg.ExternalURL + "/telegram"
	if _, err := api.MakeRequest("setWebhook", tgbotapi.Params{"url": webhookURL}); err != nil {
		return err
	}
	slog.Info("Telegram webhook set", "url", webhookURL)

	router.POST("/telegram", func(c *gin.Context) {
		var update tgbotapi.Update
		if err := c.ShouldBindJSON(&update); err != nil {
			slog.Error("Failed to parse update", "error", err)
			c.Status(http.StatusBadRequest)
			return
		}
		if msg := h.HandleUpdate(update); msg != nil {
			if _, err := api.Send(msg); err != nil {
				slog.Error("Failed to send reply", "error", err, "chat_id", msg.ChatID)
			}
		}
		c.Status(http.StatusOK)
	})
	return nil
}
