package engine

import "battleforge/internal/game"

const maxLevel = 50

// xpCurve holds the XP needed to leave levels 1..10; beyond that the curve
// continues linearly at 500 XP per level.
var xpCurve = [11]uint64{0, 100, 250, 450, 700, 1000, 1400, 1900, 2500, 3200, 4000}

// RequiredXP returns the XP threshold to advance past the given level.
func RequiredXP(level uint16) uint64 {
	if level < 11 {
		return xpCurve[level]
	}
	return 4000 + uint64(level-10)*500
}

// ApplyBattleOutcome runs the progression resolver over a terminal battle:
// XP, win/loss counters, heals, achievements, level-ups, MMR and rank tier
// for both characters. Returns the XP awarded to the winner.
func ApplyBattleOutcome(b *game.Battle, p1, p2 *game.Character) uint64 {
	winnerIsP1 := b.Winner == 1
	winner, loser := p1, p2
	if !winnerIsP1 {
		winner, loser = p2, p1
	}

	levelDiff := absLevelDiff(p1.Level, p2.Level)
	xpBonus := levelDiff * 10
	if xpBonus > 50 {
		xpBonus = 50
	}
	totalXP := b.MatchType.BaseXP() + xpBonus

	// The flawless check reads the winner's battle-local health before the
	// post-battle heal wipes the evidence.
	flawless := b.Side(winnerIsP1).HP >= winner.MaxHP

	updateWinner(winner, totalXP, levelDiff, flawless)
	updateLoser(loser, levelDiff)
	return totalXP
}

func updateWinner(c *game.Character, xp, levelDiff uint64, flawless bool) {
	c.XP += xp
	c.TotalWins++
	c.SeasonWins++
	c.CurrentHP = c.MaxHP

	if c.TotalWins == 1 {
		c.Award(game.AchievementFirstWin)
	}
	if c.TotalWins == 10 {
		c.Award(game.AchievementTenWins)
	}
	if c.TotalWins == 100 {
		c.Award(game.AchievementHundredWins)
	}
	if flawless {
		c.Award(game.AchievementFlawless)
	}

	required := RequiredXP(c.Level)
	if c.XP >= required && c.Level < maxLevel {
		c.Level++
		c.XP -= required
		c.MaxHP += 5
		c.CurrentHP = c.MaxHP
		c.DamageMin += 2
		c.DamageMax += 2
		c.CritChance++
		c.Defense++
	}

	c.MMR += 25 + levelDiff*5
	c.RankTier = game.TierForMMR(c.MMR)
}

func updateLoser(c *game.Character, levelDiff uint64) {
	c.TotalLosses++
	c.SeasonLosses++
	c.CurrentHP = c.MaxHP

	c.MMR = satSub(c.MMR, 15+levelDiff*3)
	c.RankTier = game.TierForMMR(c.MMR)
}
