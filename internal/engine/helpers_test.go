package engine

import (
	"battleforge/internal/game"
)

// newTestCharacter builds a level-1 character with the shipped base stats
// for its class.
func newTestCharacter(uuid, name string, class game.CharacterClass) *game.Character {
	stats := game.DefaultBaseStats()[class]
	return &game.Character{
		UUID:        uuid,
		Class:       class,
		Name:        name,
		Level:       1,
		MaxHP:       stats.MaxHP,
		CurrentHP:   stats.MaxHP,
		DamageMin:   stats.DamageMin,
		DamageMax:   stats.DamageMax,
		CritChance:  stats.CritChance,
		DodgeChance: stats.DodgeChance,
		MMR:         1000,
		RankTier:    game.TierForMMR(1000),
	}
}

// newTestBattle wires a fresh battle between two characters, player 1 to
// act first, both sides balanced.
func newTestBattle(p1, p2 *game.Character) *game.Battle {
	return &game.Battle{
		UUID:        "battle-1",
		MatchType:   game.MatchCasual,
		CurrentTurn: 1,
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
}

// quietRolls returns a source that rolls high on every luck stream so no
// crit, dodge, instant kill or wildcard fires unless a test overrides it.
func quietRolls() FixedSource {
	return FixedSource{
		streamWildcardTrigger: 99,
		streamCrit:            99,
		streamInstantKill:     99,
		streamDodge:           99,
	}
}

func boolPtr(v bool) *bool { return &v }
