package engine

import "battleforge/internal/game"

// Stance modifier percentages. The attacker's stance applies first, then
// the defender's; the two multipliers compound.
const (
	aggressiveAttackPct  = 130
	defensiveAttackPct   = 70
	counterAttackPct     = 150
	berserkerRecoilPct   = 25
	defensiveDefensePct  = 50
	aggressiveDefensePct = 150
)

// applyStanceModifiers transforms the pipeline damage for the attacker and
// defender stance pairing. Berserker doubles damage but costs the attacker
// a quarter of the dealt damage; Counter only lands against an Aggressive
// defender and whiffs entirely otherwise.
func applyStanceModifiers(damage uint64, attackerStance, defenderStance game.Stance, isPlayer1 bool, b *game.Battle) uint64 {
	switch attackerStance {
	case game.StanceAggressive:
		damage = percentOf(damage, aggressiveAttackPct)
	case game.StanceDefensive:
		damage = percentOf(damage, defensiveAttackPct)
	case game.StanceBerserker:
		damage = damage * 2
		selfDamage := percentOf(damage, berserkerRecoilPct)
		att := b.Side(isPlayer1)
		att.HP = satSub(att.HP, selfDamage)
	case game.StanceCounter:
		if defenderStance == game.StanceAggressive {
			damage = percentOf(damage, counterAttackPct)
		} else {
			damage = 0
		}
	case game.StanceBalanced:
	}

	switch defenderStance {
	case game.StanceDefensive:
		damage = percentOf(damage, defensiveDefensePct)
	case game.StanceAggressive:
		damage = percentOf(damage, aggressiveDefensePct)
	}

	return damage
}
