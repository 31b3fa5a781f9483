package service

import (
	"errors"

	"battleforge/internal/events"
	"battleforge/internal/game"
)

var (
	ErrAlreadyCommitted = errors.New("stance already committed this turn")
	ErrWildcardPending  = errors.New("a wildcard decision is pending")
)

// CommitStance stores a side's stance commitment hash for the current
// turn. The stance itself stays hidden until reveal; the opponent only ever
// sees the hash.
func CommitStance(d Deps, battleUUID, characterUUID string, stanceHash []byte) (*game.Battle, error) {
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
	if b.WildcardPending() {
		return nil, ErrWildcardPending
	}

	isPlayer1, err := sideOf(b, characterUUID)
	if err != nil {
		return nil, err
	}
	if b.IsPlayer1Turn() != isPlayer1 {
		return nil, ErrNotYourTurn
	}

	side := b.Side(isPlayer1)
	if side.StanceCommitted {
		return nil, ErrAlreadyCommitted
	}
	side.StanceCommitted = true
	side.StanceHash = stanceHash
	b.LastActionAt = now

	if err := d.Repo.UpdateBattle(b); err != nil {
		return nil, err
	}
	d.publish(events.StanceCommitted, b, characterUUID, map[string]interface{}{
		"turn": b.TurnNumber,
	})
	return b, nil
}
