package service

import (
	"errors"

	"github.com/google/uuid"

	"battleforge/internal/events"
	"battleforge/internal/game"
)

const (
	maxNameLength = 32
	startingMMR   = 1000
)

var (
	ErrNameRequired = errors.New("name is required")
	ErrNameTooLong  = errors.New("name exceeds 32 characters")
	ErrInvalidClass = errors.New("unknown character class")
)

// CreateCharacter mints a level-1 combatant with the class's base stat
// line.
func CreateCharacter(d Deps, name string, class game.CharacterClass) (*game.Character, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	if len(name) > maxNameLength {
		return nil, ErrNameTooLong
	}
	stats, ok := d.Rules.ClassStats[class]
	if !ok {
		return nil, ErrInvalidClass
	}

	c := &game.Character{
		UUID:        uuid.NewString(),
		Class:       class,
		Name:        name,
		Level:       1,
		MaxHP:       stats.MaxHP,
		CurrentHP:   stats.MaxHP,
		DamageMin:   stats.DamageMin,
		DamageMax:   stats.DamageMax,
		CritChance:  stats.CritChance,
		DodgeChance: stats.DodgeChance,
		MMR:         startingMMR,
		RankTier:    game.TierForMMR(startingMMR),
	}
	if err := d.Repo.CreateCharacter(c); err != nil {
		return nil, err
	}

	d.publish(events.CharacterCreated, nil, c.UUID, map[string]interface{}{
		"class": string(class),
		"name":  name,
	})
	return c, nil
}
