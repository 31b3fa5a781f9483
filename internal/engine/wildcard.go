package engine

import (
	"fmt"

	"battleforge/internal/game"
)

// Wildcard tuning.
const (
	baseWildcardChance      = 10
	tricksterWildcardChance = 25
	mysteryBoxHeal          = 50
	timeWarpHealCap         = 50
	rouletteHeal            = 100
	rouletteOverheal        = 999
)

// WildcardChance returns the trigger threshold out of 100 for the acting
// class. Tricksters bend the odds in their favor.
func WildcardChance(class game.CharacterClass) uint8 {
	if class == game.ClassTrickster {
		return tricksterWildcardChance
	}
	return baseWildcardChance
}

// MaybeTriggerWildcard rolls the wildcard trigger for the acting side and,
// on success, selects the event type. No roll happens while a wildcard is
// already active. Returns whether an event triggered and whether it needs
// an accept/decline round before the turn may proceed.
func MaybeTriggerWildcard(b *game.Battle, attackerClass game.CharacterClass, ts int64, rng RandomSource) (triggered, requiresDecision bool) {
	if b.WildcardActive {
		return false, false
	}
	chance := WildcardChance(attackerClass)
	if attackerClass == game.ClassTrickster {
		b.AppendLog("Trickster's wildcard manipulation is active!")
	}
	if rng.Roll(ts, b.TurnNumber, streamWildcardTrigger)%100 >= chance {
		return false, false
	}

	typeRoll := rng.Roll(ts, b.TurnNumber, streamWildcardType)
	b.WildcardActive = true
	b.WildcardType = game.WildcardFromRoll(typeRoll)
	if b.WildcardType.RequiresDecision() {
		b.AppendLog(fmt.Sprintf("Wildcard event: %s - decision required!", b.WildcardType))
		return true, true
	}
	b.AppendLog(fmt.Sprintf("Wildcard event: %s", b.WildcardType))
	return true, false
}

// applyImmediateWildcard applies the non-decision event modifiers to the
// damage computed this turn. Decision-gated events never reach this path;
// they resolve through ResolveWildcardDecisions before the turn re-runs.
func applyImmediateWildcard(damage uint64, b *game.Battle, p1Char, p2Char *game.Character, isPlayer1 bool, ts int64, rng RandomSource) uint64 {
	att := b.Side(isPlayer1)
	def := b.Opponent(isPlayer1)

	switch b.WildcardType {
	case game.WildcardReverseRoles:
		// Each side keeps the other's fraction of their own maximum.
		p1Pct := (b.Player1.HP * 100) / maxU64(p1Char.MaxHP, 1)
		p2Pct := (b.Player2.HP * 100) / maxU64(p2Char.MaxHP, 1)
		b.Player1.HP = (p1Char.MaxHP * p2Pct) / 100
		b.Player2.HP = (p2Char.MaxHP * p1Pct) / 100
		b.AppendLog("Reverse Roles: health fractions swapped!")

	case game.WildcardMysteryBox:
		switch rng.Roll(ts, b.TurnNumber, streamMysteryBox) % 4 {
		case 0:
			damage *= 3
			b.AppendLog("Mystery Box: triple damage!")
		case 1:
			att.Reflection = tankReflectionPct
			b.AppendLog("Mystery Box: 50% damage reflection!")
		case 2:
			att.HP += mysteryBoxHeal
			b.AppendLog("Mystery Box: +50 health!")
		default:
			att.Combo += 3
			b.AppendLog("Mystery Box: +3 combo!")
		}

	case game.WildcardComboBreaker:
		att.Combo += def.Combo
		def.Combo = 0
		b.AppendLog("Combo Breaker: combo stolen!")

	case game.WildcardTimeWarp:
		heal := damage
		if heal > timeWarpHealCap {
			heal = timeWarpHealCap
		}
		def.HP += heal
		damage = 0
		b.AppendLog("Time Warp: the attack heals its target instead!")

	case game.WildcardLuckySeven:
		if b.LastDamageRoll == 7 {
			damage *= 7
			b.AppendLog("Lucky Seven: 7x damage!")
		}

	case game.WildcardGamblersFallacy:
		// Consumed inside the damage pipeline as a crit-chance boost.
	}

	return damage
}

// ResolveWildcardDecisions applies the decision matrix for the pending
// wildcard using both sides' recorded choices (absent choices default to
// decline) and clears all wildcard state. Neither side accepting produces
// no effect.
func ResolveWildcardDecisions(b *game.Battle, ts int64, rng RandomSource) {
	p1Accepts := b.Player1.WildcardDecision != nil && *b.Player1.WildcardDecision
	p2Accepts := b.Player2.WildcardDecision != nil && *b.Player2.WildcardDecision

	switch b.WildcardType {
	case game.WildcardDoubleOrNothing:
		resolveDoubleOrNothing(b, p1Accepts, p2Accepts, ts, rng)
	case game.WildcardDeathRoulette:
		resolveDeathRoulette(b, p1Accepts, p2Accepts, ts, rng)
	}

	b.ClearWildcard()
}

func resolveDoubleOrNothing(b *game.Battle, p1Accepts, p2Accepts bool, ts int64, rng RandomSource) {
	switch {
	case p1Accepts && p2Accepts:
		if rng.Roll(ts, b.TurnNumber, streamDoubleOrNothing)%2 == 0 {
			// Both sides whiff; only the solo gamble records a miss.
			b.AppendLog("Double or Nothing: both attacks MISS!")
		} else {
			b.Player1.Combo += 2
			b.Player2.Combo += 2
			b.AppendLog("Double or Nothing: both sides gain double damage!")
		}
	case p1Accepts:
		if rng.Roll(ts, b.TurnNumber, streamDoubleOrNothing)%2 == 0 {
			b.Player1.MissCount++
			b.AppendLog("Player 1 Double or Nothing: MISS!")
		} else {
			b.Player1.Combo += 3
			b.AppendLog("Player 1 Double or Nothing: triple damage!")
		}
	case p2Accepts:
		if rng.Roll(ts, b.TurnNumber, streamMysteryBox)%2 == 0 {
			b.Player2.MissCount++
			b.AppendLog("Player 2 Double or Nothing: MISS!")
		} else {
			b.Player2.Combo += 3
			b.AppendLog("Player 2 Double or Nothing: triple damage!")
		}
	}
}

func resolveDeathRoulette(b *game.Battle, p1Accepts, p2Accepts bool, ts int64, rng RandomSource) {
	switch {
	case p1Accepts && p2Accepts:
		if rng.Roll(ts, b.TurnNumber, streamDeathRoulette)%2 == 0 {
			b.Player1.HP = 1
			b.Player2.HP += rouletteHeal
			b.AppendLog("Death Roulette: player 1 nearly killed, player 2 healed!")
		} else {
			b.Player2.HP = 1
			b.Player1.HP += rouletteHeal
			b.AppendLog("Death Roulette: player 2 nearly killed, player 1 healed!")
		}
	case p1Accepts:
		if rng.Roll(ts, b.TurnNumber, streamDeathRoulette)%2 == 0 {
			b.Player1.HP = 1
			b.AppendLog("Player 1 Death Roulette: nearly killed!")
		} else {
			b.Player1.HP = rouletteOverheal
			b.AppendLog("Player 1 Death Roulette: massive heal!")
		}
	case p2Accepts:
		if rng.Roll(ts, b.TurnNumber, streamDeathRouletteP2)%2 == 0 {
			b.Player2.HP = 1
			b.AppendLog("Player 2 Death Roulette: nearly killed!")
		} else {
			b.Player2.HP = rouletteOverheal
			b.AppendLog("Player 2 Death Roulette: massive heal!")
		}
	}
}

func maxU64(a, b uint64) uint64 {
	if a > b {
		return a
	}
	return b
}
