package service

import (
	"errors"

	"github.com/google/uuid"

	"battleforge/internal/events"
	"battleforge/internal/game"
)

var (
	ErrSameCharacter    = errors.New("a character cannot battle itself")
	ErrCharacterDead    = errors.New("character has no health left")
	ErrInvalidMatchType = errors.New("unknown match type")
)

// CreateBattle opens a battle between two combatants, locking the stake
// with the escrow collaborator when one is posted. The defender's health is
// not checked for vs-AI battles; the scripted side always enters at full
// strength anyway.
func CreateBattle(d Deps, p1UUID, p2UUID string, matchType game.MatchType, stake uint64, vsAI bool) (*game.Battle, error) {
	if p1UUID == p2UUID {
		return nil, ErrSameCharacter
	}
	if !matchType.Valid() {
		return nil, ErrInvalidMatchType
	}

	p1, err := d.loadCharacter(p1UUID)
	if err != nil {
		return nil, err
	}
	p2, err := d.loadCharacter(p2UUID)
	if err != nil {
		return nil, err
	}
	if p1.CurrentHP == 0 {
		return nil, ErrCharacterDead
	}
	if !vsAI && p2.CurrentHP == 0 {
		return nil, ErrCharacterDead
	}

	now := d.Clock.Now()
	b := &game.Battle{
		UUID:          uuid.NewString(),
		MatchType:     matchType,
		StakeAmount:   stake,
		IsVsAI:        vsAI,
		CreatedAtUnix: now,
		LastActionAt:  now,
		CurrentTurn:   1,
		Player1: game.BattleSide{
			CharacterUUID: p1.UUID,
			HP:            p1.MaxHP,
			Stance:        game.StanceBalanced,
		},
		Player2: game.BattleSide{
			CharacterUUID: p2.UUID,
			HP:            p2.MaxHP,
			Stance:        game.StanceBalanced,
		},
	}

	if stake > 0 && d.Escrow != nil {
		if err := d.Escrow.Lock(b.UUID, p1.UUID, p2.UUID, stake); err != nil {
			return nil, err
		}
	}
	if err := d.Repo.CreateBattle(b); err != nil {
		return nil, err
	}

	d.publish(events.BattleCreated, b, "", map[string]interface{}{
		"match_type": string(matchType),
		"stake":      stake,
		"vs_ai":      vsAI,
	})
	return b, nil
}
