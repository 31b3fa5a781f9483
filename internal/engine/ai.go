package engine

import "battleforge/internal/game"

const (
	aiDesperationHPPct = 30
	aiSpecialHPPct     = 50
)

// ChooseAIStance picks the scripted opponent's stance for this turn. The
// AI plays the second side: desperate below 30% health, aggressive against
// a weakened player, counter against aggression, otherwise a mixed pick.
func ChooseAIStance(b *game.Battle, aiChar, playerChar *game.Character, ts int64, rng RandomSource) game.Stance {
	aiHPPct := (b.Player2.HP * 100) / maxU64(aiChar.MaxHP, 1)
	playerHPPct := (b.Player1.HP * 100) / maxU64(playerChar.MaxHP, 1)

	switch {
	case aiHPPct < aiDesperationHPPct:
		if rng.Roll(ts, b.TurnNumber, streamAIDesperation)%2 == 0 {
			return game.StanceDefensive
		}
		return game.StanceBerserker
	case playerHPPct < aiDesperationHPPct:
		return game.StanceAggressive
	case b.Player1.Stance == game.StanceAggressive:
		return game.StanceCounter
	}

	switch rng.Roll(ts, b.TurnNumber, streamAIMixup) % 5 {
	case 0:
		return game.StanceAggressive
	case 1:
		return game.StanceDefensive
	case 2:
		return game.StanceCounter
	case 3:
		return game.StanceBerserker
	default:
		return game.StanceBalanced
	}
}

// AIShouldUseSpecial reports whether the AI burns its special this turn:
// whenever it is off cooldown and the AI has dropped below half health.
func AIShouldUseSpecial(b *game.Battle, aiChar *game.Character) bool {
	return b.Player2.SpecialCooldown == 0 && b.Player2.HP < percentOf(aiChar.MaxHP, aiSpecialHPPct)
}
