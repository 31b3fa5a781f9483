package main

import (
	"time"

	"github.com/gin-gonic/gin"

	"battleforge/internal/api"
	"battleforge/internal/constants"
	"battleforge/internal/logging"
	"battleforge/internal/service"
)

func setupRouter(h *api.BattleHandler) *gin.Engine {
	router := gin.Default()

	g := router.Group(constants.RouteAPIPrefix)
	g.POST(constants.RouteCharacters, h.CreateCharacter)
	g.GET(constants.RouteCharacterByUUID, h.GetCharacter)
	g.POST(constants.RouteCharacterHeal, h.HealCharacter)
	g.GET(constants.RouteLeaderboard, h.ListLeaderboard)

	g.POST(constants.RouteBattles, h.CreateBattle)
	g.GET(constants.RouteBattleByUUID, h.GetBattle)
	g.GET(constants.RouteBattleLog, h.GetBattleLog)
	g.POST(constants.RouteBattleCommit, h.CommitStance)
	g.POST(constants.RouteBattleReveal, h.RevealTurn)
	g.POST(constants.RouteBattleWildcardDecision, h.DecideWildcard)
	g.POST(constants.RouteBattleWildcardTimeout, h.ResolveWildcardTimeout)
	g.POST(constants.RouteBattleAITurn, h.ExecuteAITurn)
	g.POST(constants.RouteBattleCheckTimeout, h.CheckTimeout)
	g.POST(constants.RouteBattleFinalize, h.FinalizeBattle)

	g.GET(constants.RouteVersion, api.Version)
	g.GET(constants.RouteHealth, api.Health)

	router.GET(constants.RouteBattleStream, h.StreamBattle)

	return router
}

// startTimeoutScanner sweeps stalled battles in the background: expired
// wildcard decision windows resolve with default declines, and sides that
// overran the turn timer forfeit. Closing the returned channel stops the
// scanner.
func startTimeoutScanner(deps service.Deps, turnTimeout time.Duration) chan struct{} {
	stop := make(chan struct{})
	interval := turnTimeout / 2
	if interval < time.Second {
		interval = time.Second
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				sweepBattles(deps)
			}
		}
	}()
	return stop
}

func sweepBattles(deps service.Deps) {
	battles, err := deps.Repo.FindActionableBattles(deps.Clock.Now(), int64(deps.Rules.TurnTimeout/time.Second))
	if err != nil {
		logging.Error("Timeout scan failed", err, nil)
		return
	}
	for _, b := range battles {
		if _, err := service.ResolveWildcardTimeout(deps, b.UUID); err == nil {
			continue
		}
		if _, forfeited, err := service.CheckTimeout(deps, b.UUID); err != nil {
			logging.Error("Failed to forfeit stalled battle", err, logging.Fields{constants.LogFieldBattleID: b.UUID})
		} else if forfeited {
			logging.Info("Stalled battle forfeited", logging.Fields{constants.LogFieldBattleID: b.UUID})
		}
	}
}
