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
	ErrBattleNotFinished = errors.New("battle is not finished")
	ErrAlreadyFinalized  = errors.New("battle already finalized")
)

// FinalizeBattle consumes a terminal battle exactly once: the progression
// resolver updates both character records, stakes are released to the
// winner and the battle is marked finalized.
func FinalizeBattle(d Deps, battleUUID string) (*game.Battle, error) {
	b, err := d.loadBattle(battleUUID)
	if err != nil {
		return nil, err
	}
	if !b.IsFinished || b.Winner == 0 {
		return nil, ErrBattleNotFinished
	}
	if b.Finalized {
		return nil, ErrAlreadyFinalized
	}

	p1, p2, err := d.loadCombatants(b)
	if err != nil {
		return nil, err
	}

	now := d.Clock.Now()
	xp := engine.ApplyBattleOutcome(b, p1, p2)
	p1.LastBattleAt = now
	p2.LastBattleAt = now
	if err := d.Repo.UpdateCharacter(p1); err != nil {
		return nil, err
	}
	if err := d.Repo.UpdateCharacter(p2); err != nil {
		return nil, err
	}

	// Forfeited battles released the stake when the forfeit fired; Release
	// is a no-op the second time.
	if b.StakeAmount > 0 && d.Escrow != nil {
		winnerUUID := b.Side(b.Winner == 1).CharacterUUID
		if err := d.Escrow.Release(b.UUID, winnerUUID); err != nil {
			logging.Error("stake release failed", err, logging.Fields{constants.LogFieldBattleID: b.UUID})
		}
	}

	b.Finalized = true
	if err := d.Repo.UpdateBattle(b); err != nil {
		return nil, err
	}

	d.publish(events.BattleFinalized, b, "", map[string]interface{}{
		"winner":    b.Winner,
		"xp_award":  xp,
		"abandoned": b.Abandoned,
	})
	return b, nil
}
