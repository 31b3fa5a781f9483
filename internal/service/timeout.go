package service

import (
	"fmt"
	"time"

	"battleforge/internal/constants"
	"battleforge/internal/events"
	"battleforge/internal/game"
	"battleforge/internal/logging"
)

// CheckTimeout is the maintenance entry point: if the turn holder has been
// inactive past the turn window, or the battle has outlived its absolute
// expiry, the holder forfeits and the other side wins. Expiry counting as
// forfeit-eligible keeps expired battles from being stuck forever. Returns
// whether a forfeiture happened.
func CheckTimeout(d Deps, battleUUID string) (*game.Battle, bool, error) {
	b, err := d.loadBattle(battleUUID)
	if err != nil {
		return nil, false, err
	}
	if b.IsFinished {
		return nil, false, ErrBattleFinished
	}

	now := d.Clock.Now()
	inactive := now-b.LastActionAt > int64(d.Rules.TurnTimeout/time.Second)
	if !inactive && !d.expired(b, now) {
		return b, false, nil
	}

	forfeiter := b.CurrentTurn
	var winner uint8 = 1
	if forfeiter == 1 {
		winner = 2
	}

	b.IsFinished = true
	b.Abandoned = true
	b.Winner = winner
	b.ClearWildcard()
	b.AppendLog(fmt.Sprintf("Player %d forfeits by timeout. Winner: player %d", forfeiter, winner))

	if b.StakeAmount > 0 && d.Escrow != nil {
		winnerUUID := b.Side(winner == 1).CharacterUUID
		if err := d.Escrow.Release(b.UUID, winnerUUID); err != nil {
			logging.Error("stake release failed", err, logging.Fields{constants.LogFieldBattleID: b.UUID})
		}
	}
	if err := d.Repo.UpdateBattle(b); err != nil {
		return nil, false, err
	}

	d.publish(events.BattleAbandoned, b, "", map[string]interface{}{
		"winner":    winner,
		"forfeiter": forfeiter,
	})
	return b, true, nil
}
