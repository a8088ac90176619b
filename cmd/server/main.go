package main

import (
	"net/http"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/AnjaliVanamala/Wildlife-Tracker/internal/config"
	"github.com/AnjaliVanamala/Wildlife-Tracker/internal/db"
	"github.com/AnjaliVanamala/Wildlife-Tracker/internal/http/router"
	"github.com/AnjaliVanamala/Wildlife-Tracker/internal/logger"
	"github.com/AnjaliVanamala/Wildlife-Tracker/internal/security"
	"github.com/AnjaliVanamala/Wildlife-Tracker/internal/web"
)

func main() {
	// A .env file, when present, supplies environment overrides.
	_ = godotenv.Load()

	cfg, err := config.Load("config/app.yaml")
	if err != nil {
		cfg = config.Default()
	}

	log := logger.New(cfg.LogLevel)
	if err != nil {
		log.Warn("config file not loaded, using defaults", "error", err)
	}

	database, err := db.Init(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		log.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	views, err := web.NewRenderer()
	if err != nil {
		log.Error("failed to parse templates", "error", err)
		os.Exit(1)
	}

	sessions := security.NewSessionStore(cfg.SessionSecret)
	r := router.Setup(database, sessions, views, log)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	log.Info("starting server", "port", port, "driver", cfg.DBDriver)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
