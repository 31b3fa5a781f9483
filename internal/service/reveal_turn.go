package service

import (
	"errors"
	"time"

	"battleforge/internal/constants"
	"battleforge/internal/engine"
	"battleforge/internal/events"
	"battleforge/internal/game"
	"battleforge/internal/logging"
)

var (
	ErrStanceNotCommitted  = errors.New("no stance commitment for this turn")
	ErrInvalidStanceReveal = errors.New("revealed stance does not match commitment")
	ErrSpecialOnCooldown   = errors.New("special ability is on cooldown")
)

// RevealTurn verifies the caller's stance against their commitment and
// executes the turn. A decision-required wildcard suspends execution
// instead: the reveal payload is parked on the battle and the turn resumes
// automatically once both decisions are in (or the window lapses). Returns
// whether the turn was suspended.
func RevealTurn(d Deps, battleUUID, characterUUID string, stance game.Stance, salt uint64, useSpecial bool) (*game.Battle, bool, error) {
	b, err := d.loadBattle(battleUUID)
	if err != nil {
		return nil, false, err
	}
	if b.IsFinished {
		return nil, false, ErrBattleFinished
	}
	now := d.Clock.Now()
	if d.expired(b, now) {
		return nil, false, ErrBattleExpired
	}
	if b.WildcardPending() {
		return nil, false, ErrWildcardPending
	}

	isPlayer1, err := sideOf(b, characterUUID)
	if err != nil {
		return nil, false, err
	}
	if b.IsPlayer1Turn() != isPlayer1 {
		return nil, false, ErrNotYourTurn
	}

	side := b.Side(isPlayer1)
	if !side.StanceCommitted {
		return nil, false, ErrStanceNotCommitted
	}
	if !stance.Valid() || !engine.VerifyStanceHash(side.StanceHash, stance, salt) {
		return nil, false, ErrInvalidStanceReveal
	}
	if useSpecial && side.SpecialCooldown > 0 {
		return nil, false, ErrSpecialOnCooldown
	}

	attacker, defender, err := revealCombatants(d, b, isPlayer1)
	if err != nil {
		return nil, false, err
	}

	side.Stance = stance

	if triggered, needsDecision := engine.MaybeTriggerWildcard(b, attacker.Class, now, d.Rand); triggered {
		d.publish(events.WildcardTriggered, b, characterUUID, map[string]interface{}{
			"wildcard":          string(b.WildcardType),
			"decision_required": needsDecision,
		})
		if needsDecision {
			// Park the reveal; execution resumes on resolution.
			b.WildcardDeadline = now + int64(d.Rules.WildcardDecisionTimeout/time.Second)
			b.PendingStance = stance
			b.PendingUseSpecial = useSpecial
			b.LastActionAt = now
			if err := d.Repo.UpdateBattle(b); err != nil {
				return nil, false, err
			}
			return b, true, nil
		}
	}

	damage := engine.ExecuteTurn(b, attacker, defender, isPlayer1, useSpecial, now, d.Rand)
	b.LastActionAt = now
	if err := d.Repo.UpdateBattle(b); err != nil {
		return nil, false, err
	}

	logging.Info("turn executed", logging.Fields{
		constants.LogFieldBattleID:  b.UUID,
		constants.LogFieldCharacter: characterUUID,
		constants.LogFieldTurn:      b.TurnNumber,
		constants.LogFieldDamage:    damage,
	})
	if b.IsFinished {
		d.publish(events.BattleEnded, b, "", map[string]interface{}{
			"winner": b.Winner,
		})
	}
	return b, false, nil
}

// revealCombatants loads the acting and defending character records in
// attacker-first order.
func revealCombatants(d Deps, b *game.Battle, isPlayer1 bool) (attacker, defender *game.Character, err error) {
	p1, p2, err := d.loadCombatants(b)
	if err != nil {
		return nil, nil, err
	}
	if isPlayer1 {
		return p1, p2, nil
	}
	return p2, p1, nil
}
