// cmd/migrate/main.go
package main

import (
	"database/sql"
	"log/slog"
	"os"
	"path/filepath"

	"points-calculator/internal/app"
	"points-calculator/internal/config"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

func main() {
	cfg := config.MustLoad()
	app.SetupLogger(cfg.LogLevel)

	if cfg.DBConn == "" {
		slog.Error("DATABASE_URL not set")
		os.Exit(1)
	}

	db, err := sql.Open("pgx", cfg.DBConn)
	if err != nil {
		slog.Error("Failed to open DB", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	wd, err := os.Getwd()
	if err != nil {
		slog.Error("Failed to get working directory", "error", err)
		os.Exit(1)
	}
	migrationsDir := filepath.Join(wd, "migrations")

	if err := goose.SetDialect("postgres"); err != nil {
		slog.Error("Failed to set dialect", "error", err)
		os.Exit(1)
	}

	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}
	slog.Info("Running migrations", "dir", migrationsDir, "command", command)

	if err := goose.Run(command, db, migrationsDir); err != nil {
		slog.Error("Migrations failed", "error", err)
		os.Exit(1)
	}

	slog.Info("✅ Migrations applied")
}
