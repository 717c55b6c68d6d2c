package main

import (
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/reviewflow/review-service/internal/config"
	"github.com/reviewflow/review-service/internal/service"
	"github.com/reviewflow/review-service/internal/store"
	httptr "github.com/reviewflow/review-service/internal/transport/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	setupLogger(cfg.Env)

	st, err := store.New(cfg.DatabaseURL)
	if err != nil {
		slog.Error("db connect failed", "error", err)
		os.Exit(1)
	}
	defer st.DB().Close()

	if err := st.Migrate(); err != nil {
		slog.Error("migrations failed", "error", err)
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	users := service.NewUserService(st)
	teams := service.NewTeamService(st)
	prs := service.NewPRService(st, rng)

	r := httptr.NewRouter(users, teams, prs)

	slog.Info("listening", "port", cfg.Port, "env", cfg.Env)
	if err := r.Run(":" + cfg.Port); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func setupLogger(env string) {
	var handler slog.Handler
	if env == "prod" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	slog.SetDefault(slog.New(handler))
}
