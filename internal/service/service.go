package service

import (
	"errors"
	"time"

	"battleforge/internal/engine"
	"battleforge/internal/escrow"
	"battleforge/internal/events"
	"battleforge/internal/game"
	"battleforge/internal/storage"
)

// Errors shared across operations. Operation-specific sentinels live next
// to their operation.
var (
	ErrCharacterNotFound = errors.New("character not found")
	ErrBattleNotFound    = errors.New("battle not found")
	ErrNotAParticipant   = errors.New("character is not part of this battle")
	ErrBattleFinished    = errors.New("battle already finished")
	ErrBattleExpired     = errors.New("battle expired")
	ErrNotYourTurn       = errors.New("not your turn")
)

// Clock supplies the current Unix timestamp. The engine never reads the
// wall clock directly so tests can pin time.
type Clock interface {
	Now() int64
}

type SystemClock struct{}

func (SystemClock) Now() int64 { return time.Now().Unix() }

// Rules carries the tunable protocol windows and class stat table.
type Rules struct {
	TurnTimeout             time.Duration
	BattleExpiry            time.Duration
	WildcardDecisionTimeout time.Duration
	ClassStats              map[game.CharacterClass]game.BaseStats
}

// DefaultRules matches the shipped protocol constants.
func DefaultRules() Rules {
	return Rules{
		TurnTimeout:             30 * time.Second,
		BattleExpiry:            3600 * time.Second,
		WildcardDecisionTimeout: 10 * time.Second,
		ClassStats:              game.DefaultBaseStats(),
	}
}

// Deps bundles the collaborators every operation needs. One value is built
// at startup and passed through; operations stay free functions.
type Deps struct {
	Repo   storage.Repository
	Escrow escrow.Escrow
	Events events.Sink
	Rand   engine.RandomSource
	Clock  Clock
	Rules  Rules
}

func (d Deps) loadBattle(uuid string) (*game.Battle, error) {
	b, err := d.Repo.GetBattleByUUID(uuid)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrBattleNotFound
		}
		return nil, err
	}
	return b, nil
}

func (d Deps) loadCharacter(uuid string) (*game.Character, error) {
	c, err := d.Repo.GetCharacterByUUID(uuid)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrCharacterNotFound
		}
		return nil, err
	}
	return c, nil
}

// sideOf resolves which seat a character occupies in the battle.
func sideOf(b *game.Battle, characterUUID string) (isPlayer1 bool, err error) {
	switch characterUUID {
	case b.Player1.CharacterUUID:
		return true, nil
	case b.Player2.CharacterUUID:
		return false, nil
	}
	return false, ErrNotAParticipant
}

func (d Deps) expired(b *game.Battle, now int64) bool {
	return now-b.CreatedAtUnix > int64(d.Rules.BattleExpiry/time.Second)
}

// loadCombatants returns the player-1 and player-2 character records.
func (d Deps) loadCombatants(b *game.Battle) (p1, p2 *game.Character, err error) {
	if p1, err = d.loadCharacter(b.Player1.CharacterUUID); err != nil {
		return nil, nil, err
	}
	if p2, err = d.loadCharacter(b.Player2.CharacterUUID); err != nil {
		return nil, nil, err
	}
	return p1, p2, nil
}

func (d Deps) publish(t events.Type, b *game.Battle, characterUUID string, payload map[string]interface{}) {
	if d.Events == nil {
		return
	}
	e := events.Event{Type: t, CharacterUUID: characterUUID, At: d.Clock.Now(), Payload: payload}
	if b != nil {
		e.BattleUUID = b.UUID
	}
	d.Events.Publish(e)
}
