package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/studentorg/internal/config"
	"github.com/yukikurage/studentorg/internal/database"
	"github.com/yukikurage/studentorg/internal/logger"
	"github.com/yukikurage/studentorg/internal/router"
	"github.com/yukikurage/studentorg/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	logger.Setup(cfg)

	gin.SetMode(cfg.GinMode)

	db, err := database.Connect(cfg)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Flash messages live in redis when REDIS_ADDR is set, otherwise in a signed cookie
	store, err := router.NewSessionStore(cfg)
	if err != nil {
		slog.Error("failed to create session store", "error", err)
		os.Exit(1)
	}

	r := router.New(cfg, services.New(db, cfg), store)

	slog.Info("server starting", "addr", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
