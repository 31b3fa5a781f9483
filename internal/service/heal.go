package service

import (
	"errors"

	"battleforge/internal/events"
	"battleforge/internal/game"
)

var ErrAlreadyFullHealth = errors.New("character is already at full health")

// HealCharacter restores a combatant's persisted health to max outside of
// battle.
func HealCharacter(d Deps, characterUUID string) (*game.Character, error) {
	c, err := d.loadCharacter(characterUUID)
	if err != nil {
		return nil, err
	}
	if c.CurrentHP >= c.MaxHP {
		return nil, ErrAlreadyFullHealth
	}
	c.CurrentHP = c.MaxHP
	if err := d.Repo.UpdateCharacter(c); err != nil {
		return nil, err
	}
	d.publish(events.CharacterHealed, nil, c.UUID, nil)
	return c, nil
}
