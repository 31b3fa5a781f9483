package main

import (
	"os"

	"battleforge/internal/api"
	"battleforge/internal/constants"
	"battleforge/internal/engine"
	"battleforge/internal/escrow"
	"battleforge/internal/events"
	"battleforge/internal/logging"
	"battleforge/internal/service"
)

func main() {
	if os.Getenv(constants.EnvPrettyLogs) != "" {
		logging.SetPretty()
	}

	// Path may be provided via BATTLEFORGE_CONFIG or defaults to
	// ./battleforge_config.json. A missing default file is fine; the
	// shipped class table and timeouts apply.
	cfg := loadConfigOrExit()
	repo := createRepositoryOrExit(cfg.DatabasePath)

	hub := events.NewHub()
	deps := service.Deps{
		Repo:   repo,
		Escrow: escrow.NewMemoryLedger(),
		Events: events.MultiSink{events.LogSink{}, hub},
		Rand:   engine.XORFoldSource{},
		Clock:  service.SystemClock{},
		Rules: service.Rules{
			TurnTimeout:             cfg.TurnTimeout,
			BattleExpiry:            cfg.BattleExpiry,
			WildcardDecisionTimeout: cfg.WildcardDecisionTimeout,
			ClassStats:              cfg.ClassStats,
		},
	}

	handler := api.NewBattleHandler(deps, hub)

	stop := startTimeoutScanner(deps, cfg.TurnTimeout)
	defer close(stop)

	router := setupRouter(handler)
	logging.Info("Starting server", logging.Fields{constants.LogFieldAddr: cfg.ServerAddress})
	if err := router.Run(cfg.ServerAddress); err != nil {
		logging.Fatal("Server terminated", err, nil)
	}
}
