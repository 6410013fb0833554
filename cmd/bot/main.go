// cmd/bot/main.go
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"points-calculator/internal/app"
	"points-calculator/internal/bot"
	"points-calculator/internal/config"
	"points-calculator/internal/session"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func main() {
	cfg := config.MustLoad()
	app.SetupLogger(cfg.LogLevel)

	if cfg.TelegramToken == "" {
		slog.Error("TELEGRAM_BOT_TOKEN not set")
		os.Exit(1)
	}

	catalog, err := app.LoadCatalog(context.Background(), cfg)
	if err != nil {
		slog.Error("Failed to load catalog", "error", err)
		os.Exit(1)
	}

	store := session.NewStore(catalog, nil)
	go store.RunEviction(context.Background(), max(cfg.SessionIdleTTL/4, time.Second), cfg.SessionIdleTTL)
	h := bot.NewHandler(store)

	api, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		slog.Error("Failed to start bot", "error", err)
		os.Exit(1)
	}
	slog.Info("Bot started", "username", api.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	for update := range api.GetUpdatesChan(u) {
		msg := h.HandleUpdate(update)
		if msg == nil {
			continue
		}
		if _, err := api.Send(msg); err != nil {
			slog.Error("Failed to send reply", "error", err, "chat_id", msg.ChatID)
		}
	}
}
