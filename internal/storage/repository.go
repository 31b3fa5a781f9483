package storage

import (
	"battleforge/internal/game"
)

// Repository is the persistence surface the service layer depends on. UUIDs
// are the public identifiers everywhere; numeric gorm IDs never leave this
// package.
type Repository interface {
	CreateCharacter(c *game.Character) error
	GetCharacterByUUID(uuid string) (*game.Character, error)
	UpdateCharacter(c *game.Character) error
	// GetTopCharacters returns the leaderboard ordered by MMR, then total
	// wins, limited to the given count.
	GetTopCharacters(limit int) ([]game.Character, error)

	CreateBattle(b *game.Battle) error
	GetBattleByUUID(uuid string) (*game.Battle, error)
	UpdateBattle(b *game.Battle) error
	// FindActionableBattles returns unfinished battles whose turn deadline
	// or wildcard decision deadline is already in the past, for the timeout
	// scanner to sweep.
	FindActionableBattles(now int64, turnTimeoutSec int64) ([]game.Battle, error)
}
