package service

import (
	"errors"

	"battleforge/internal/engine"
	"battleforge/internal/events"
	"battleforge/internal/game"
)

var (
	ErrNoActiveWildcard   = errors.New("no wildcard decision is pending")
	ErrDecisionTimeout    = errors.New("wildcard decision window has closed")
	ErrAlreadyDecided     = errors.New("wildcard decision already recorded")
	ErrDecisionNotExpired = errors.New("wildcard decision window is still open")
)

// DecideWildcard records one side's accept/decline for the pending
// wildcard. Once both decisions are in, the wildcard resolves and the
// interrupted turn runs with the parked reveal payload. Returns whether
// resolution happened on this call.
func DecideWildcard(d Deps, battleUUID, characterUUID string, accept bool) (*game.Battle, bool, error) {
	b, err := d.loadBattle(battleUUID)
	if err != nil {
		return nil, false, err
	}
	if b.IsFinished {
		return nil, false, ErrBattleFinished
	}
	if !b.WildcardPending() {
		return nil, false, ErrNoActiveWildcard
	}
	now := d.Clock.Now()
	if now > b.WildcardDeadline {
		return nil, false, ErrDecisionTimeout
	}

	isPlayer1, err := sideOf(b, characterUUID)
	if err != nil {
		return nil, false, err
	}
	side := b.Side(isPlayer1)
	if side.WildcardDecision != nil {
		return nil, false, ErrAlreadyDecided
	}
	side.WildcardDecision = &accept

	d.publish(events.WildcardDecided, b, characterUUID, map[string]interface{}{
		"wildcard": string(b.WildcardType),
		"accept":   accept,
	})

	resolved := b.Player1.WildcardDecision != nil && b.Player2.WildcardDecision != nil
	if resolved {
		if err := resolveAndResume(d, b, now); err != nil {
			return nil, false, err
		}
	}

	b.LastActionAt = now
	if err := d.Repo.UpdateBattle(b); err != nil {
		return nil, false, err
	}
	return b, resolved, nil
}

// ResolveWildcardTimeout closes a lapsed decision window: missing
// decisions default to decline, the wildcard resolves and the interrupted
// turn runs. Any caller may invoke it; the timeout scanner does.
func ResolveWildcardTimeout(d Deps, battleUUID string) (*game.Battle, error) {
	b, err := d.loadBattle(battleUUID)
	if err != nil {
		return nil, err
	}
	if b.IsFinished {
		return nil, ErrBattleFinished
	}
	if !b.WildcardPending() {
		return nil, ErrNoActiveWildcard
	}
	now := d.Clock.Now()
	if now <= b.WildcardDeadline {
		return nil, ErrDecisionNotExpired
	}

	if err := resolveAndResume(d, b, now); err != nil {
		return nil, err
	}
	b.LastActionAt = now
	if err := d.Repo.UpdateBattle(b); err != nil {
		return nil, err
	}
	return b, nil
}

// resolveAndResume applies the decision matrix and replays the parked
// reveal through the execution core. The commitment held through the pause,
// so the stance entering the turn is exactly the one originally revealed.
func resolveAndResume(d Deps, b *game.Battle, now int64) error {
	useSpecial := b.PendingUseSpecial
	isPlayer1 := b.IsPlayer1Turn()

	engine.ResolveWildcardDecisions(b, now, d.Rand)

	attacker, defender, err := revealCombatants(d, b, isPlayer1)
	if err != nil {
		return err
	}
	engine.ExecuteTurn(b, attacker, defender, isPlayer1, useSpecial, now, d.Rand)

	if b.IsFinished {
		d.publish(events.BattleEnded, b, "", map[string]interface{}{
			"winner": b.Winner,
		})
	}
	return nil
}
