package engine

import (
	"fmt"

	"battleforge/internal/game"
)

const specialCooldownTurns = 3

// ExecuteTurn runs the execution core for one attack: DOT tick, damage
// pipeline, stance layer, wildcard modifiers, damage application with
// reflection, cooldown bookkeeping, termination check and turn advance.
// The caller has already validated turn ownership and (for player turns)
// the stance commitment. Returns the damage finally applied.
func ExecuteTurn(b *game.Battle, attacker, defender *game.Character, isPlayer1, useSpecial bool, ts int64, rng RandomSource) uint64 {
	att := b.Side(isPlayer1)
	def := b.Opponent(isPlayer1)

	// Damage-over-time ticks at the start of the afflicted side's own turn.
	if att.DOTTurns > 0 {
		att.HP = satSub(att.HP, att.DOTDamage)
		att.DOTTurns--
		b.AppendLog(fmt.Sprintf("%s takes %d damage over time", attacker.Name, att.DOTDamage))
	}

	damage := calculateDamage(attacker, defender, b, isPlayer1, useSpecial, ts, rng)
	damage = applyStanceModifiers(damage, att.Stance, def.Stance, isPlayer1, b)

	if b.WildcardActive && b.WildcardType != game.WildcardNone && !b.WildcardType.RequiresDecision() {
		p1Char, p2Char := attacker, defender
		if !isPlayer1 {
			p1Char, p2Char = defender, attacker
		}
		damage = applyImmediateWildcard(damage, b, p1Char, p2Char, isPlayer1, ts, rng)
	}

	def.HP = satSub(def.HP, damage)
	// Reflection guards the side being hit; a buff on the acting side sits
	// idle until they are attacked.
	if def.Reflection > 0 {
		reflected := percentOf(damage, uint64(def.Reflection))
		att.HP = satSub(att.HP, reflected)
		b.AppendLog(fmt.Sprintf("%s takes %d reflected damage", attacker.Name, reflected))
	}
	b.AppendLog(fmt.Sprintf("Damage dealt: %d", damage))

	// Using the special arms a 3-turn cooldown; the unconditional decrement
	// below nets it to 2. Cooldowns only decay on their owner's turns.
	if useSpecial {
		att.SpecialCooldown = specialCooldownTurns
	}
	att.SpecialCooldown = satSub8(att.SpecialCooldown, 1)

	if b.Player1.HP == 0 || b.Player2.HP == 0 {
		b.IsFinished = true
		if b.Player1.HP > 0 {
			b.Winner = 1
		} else {
			b.Winner = 2
		}
		b.AppendLog(fmt.Sprintf("Battle finished! Winner: player %d", b.Winner))
	}

	// Advance the turn.
	if b.CurrentTurn == 1 {
		b.CurrentTurn = 2
	} else {
		b.CurrentTurn = 1
	}
	b.TurnNumber++
	b.WildcardActive = false
	b.Player1.ClearCommitment()
	b.Player2.ClearCommitment()

	return damage
}
