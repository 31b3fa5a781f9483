package api

import (
	"battleforge/internal/events"
	"battleforge/internal/service"
	"battleforge/internal/storage"
)

// BattleHandler groups all HTTP handlers over the battle service.
type BattleHandler struct {
	deps service.Deps
	repo storage.Repository
	hub  *events.Hub
}

// NewBattleHandler creates a BattleHandler around the service dependency
// bundle. The hub may be nil when no live stream is wired.
func NewBattleHandler(deps service.Deps, hub *events.Hub) *BattleHandler {
	return &BattleHandler{deps: deps, repo: deps.Repo, hub: hub}
}
