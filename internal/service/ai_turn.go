package service

import (
	"errors"

	"battleforge/internal/constants"
	"battleforge/internal/engine"
	"battleforge/internal/events"
	"battleforge/internal/game"
	"battleforge/internal/logging"
)

var (
	ErrNotAIBattle = errors.New("battle has no AI opponent")
	ErrNotAITurn   = errors.New("it is not the AI's turn")
)

// ExecuteAITurn plays the scripted opponent's turn. The AI holds seat 2,
// skips commit-reveal (there is no hidden information to protect against a
// script) and feeds the heuristic stance straight into the execution core.
func ExecuteAITurn(d Deps, battleUUID string) (*game.Battle, error) {
	b, err := d.loadBattle(battleUUID)
	if err != nil {
		return nil, err
	}
	if b.IsFinished {
		return nil, ErrBattleFinished
	}
	now := d.Clock.Now()
	if d.expired(b, now) {
		return nil, ErrBattleExpired
	}
	if !b.IsVsAI {
		return nil, ErrNotAIBattle
	}
	if b.IsPlayer1Turn() {
		return nil, ErrNotAITurn
	}
	if b.WildcardPending() {
		return nil, ErrWildcardPending
	}

	player, ai, err := d.loadCombatants(b)
	if err != nil {
		return nil, err
	}

	b.Player2.Stance = engine.ChooseAIStance(b, ai, player, now, d.Rand)
	useSpecial := engine.AIShouldUseSpecial(b, ai)

	damage := engine.ExecuteTurn(b, ai, player, false, useSpecial, now, d.Rand)
	b.LastActionAt = now
	if err := d.Repo.UpdateBattle(b); err != nil {
		return nil, err
	}

	logging.Info("ai turn executed", logging.Fields{
		constants.LogFieldBattleID: b.UUID,
		constants.LogFieldTurn:     b.TurnNumber,
		constants.LogFieldDamage:   damage,
	})
	if b.IsFinished {
		d.publish(events.BattleEnded, b, "", map[string]interface{}{
			"winner": b.Winner,
		})
	}
	return b, nil
}
