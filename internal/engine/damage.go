package engine

import (
	"fmt"

	"battleforge/internal/game"
)

// critProfile describes how a class scales damage on a critical hit.
type critProfile struct {
	multiplier uint64
	flatBonus  uint64
}

var critProfiles = map[game.CharacterClass]critProfile{
	game.ClassWarrior:   {multiplier: 2},
	game.ClassAssassin:  {multiplier: 3},
	game.ClassMage:      {multiplier: 2},
	game.ClassTank:      {multiplier: 2},
	game.ClassTrickster: {multiplier: 2, flatBonus: 20},
}

// Thresholds used by the pipeline.
const (
	lowHealthPct       = 20 // instant-kill window opens below 20% of max HP
	instantKillChance  = 5
	comboBonusPct      = 15
	dotDamagePerTurn   = 15
	dotDurationTurns   = 3
	tankReflectionPct  = 50
	fallacyCritPerMiss = 5
)

// calculateDamage runs the damage pipeline for one attack: base roll with
// level bonus, critical/instant-kill checks, combo bonus, special ability,
// flat defense, and finally the dodge check. Side effects (DOT arming,
// reflection buffs, combo steals, stance swaps) land directly on the battle
// record.
func calculateDamage(attacker, defender *game.Character, b *game.Battle, isPlayer1 bool, useSpecial bool, ts int64, rng RandomSource) uint64 {
	att := b.Side(isPlayer1)
	def := b.Opponent(isPlayer1)

	damageRange := uint64(attacker.DamageMax - attacker.DamageMin)
	roll := uint64(rng.Roll(ts, b.TurnNumber, streamBaseDamage))
	baseDamage := uint64(attacker.DamageMin) + roll%(damageRange+1)
	b.LastDamageRoll = uint8(baseDamage)

	levelBonus := uint64(attacker.Level-1) * 2
	damage := baseDamage + levelBonus

	// Critical hit
	critRoll := uint64(rng.Roll(ts, b.TurnNumber, streamCrit) % 100)
	critChance := uint64(attacker.CritChance)
	// The boost outlives the triggering turn; only another wildcard event
	// replaces the type and ends it.
	if b.WildcardType == game.WildcardGamblersFallacy {
		critChance += uint64(att.MissCount) * fallacyCritPerMiss
	}
	if critRoll < critChance {
		profile := critProfiles[attacker.Class]
		damage = damage*profile.multiplier + profile.flatBonus

		// A crit against a nearly-dead defender can finish the job outright.
		if def.HP < percentOf(defender.MaxHP, lowHealthPct) {
			if rng.Roll(ts, b.TurnNumber, streamInstantKill)%100 < instantKillChance {
				damage = def.HP
				b.AppendLog("INSTANT KILL!")
			}
		}
	}

	// Combo bonus
	if att.Combo > 0 {
		damage += (damage * comboBonusPct * uint64(att.Combo)) / 100
	}

	if useSpecial {
		damage = applySpecial(attacker.Class, damage, b, isPlayer1, ts, rng)
		b.AppendLog(fmt.Sprintf("%s unleashes their special move!", attacker.Name))
	}

	damage = satSub(damage, uint64(defender.Defense))

	// Dodge overrides everything above.
	if uint64(rng.Roll(ts, b.TurnNumber, streamDodge)%100) < uint64(defender.DodgeChance) {
		damage = 0
		b.AppendLog(fmt.Sprintf("%s dodges the attack!", defender.Name))
	}

	return damage
}

// applySpecial dispatches the class special move. Each special consumes the
// action; the 3-turn cooldown is booked by the turn executor.
func applySpecial(class game.CharacterClass, damage uint64, b *game.Battle, isPlayer1 bool, ts int64, rng RandomSource) uint64 {
	att := b.Side(isPlayer1)
	def := b.Opponent(isPlayer1)

	switch class {
	case game.ClassWarrior:
		// Berserker Rage
		return damage * 2
	case game.ClassAssassin:
		// Shadow Strike
		return damage * 3
	case game.ClassMage:
		// Arcane Burst: arms a damage-over-time effect on the defender.
		def.DOTDamage = dotDamagePerTurn
		def.DOTTurns = dotDurationTurns
		return damage * 2
	case game.ClassTank:
		// Fortress Stance: subsequent hits reflect back at the attacker.
		att.Reflection = tankReflectionPct
		return damage
	case game.ClassTrickster:
		switch rng.Roll(ts, b.TurnNumber, streamTricksterSpecial) % 4 {
		case 0:
			// Steal the opponent's combo outright.
			att.Combo += def.Combo
			def.Combo = 0
			return damage * 2
		case 1:
			// Confusion: swap both stances.
			b.Player1.Stance, b.Player2.Stance = b.Player2.Stance, b.Player1.Stance
			return damage * 2
		case 2:
			// Evasion burst.
			return damage * 3
		default:
			// Arm a follow-up wildcard for this turn's modifier pass.
			b.WildcardActive = true
			return damage * 2
		}
	}
	return damage
}
