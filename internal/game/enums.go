package game

// CharacterClass is a string alias identifying a combatant's class.
// Using a dedicated type instead of plain string makes code safer and
// self-documenting.
type CharacterClass string

const (
	ClassWarrior   CharacterClass = "warrior"
	ClassAssassin  CharacterClass = "assassin"
	ClassMage      CharacterClass = "mage"
	ClassTank      CharacterClass = "tank"
	ClassTrickster CharacterClass = "trickster"
)

// Classes lists every playable class in a stable order.
var Classes = []CharacterClass{ClassWarrior, ClassAssassin, ClassMage, ClassTank, ClassTrickster}

func (c CharacterClass) Valid() bool {
	_, ok := classBaseStats[c]
	return ok
}

// BaseStats holds the creation-time stat line for a class. The values may
// be overridden via the server config file; these are the shipped defaults.
type BaseStats struct {
	MaxHP       uint64 `json:"max_hp"`
	DamageMin   uint16 `json:"damage_min"`
	DamageMax   uint16 `json:"damage_max"`
	CritChance  uint16 `json:"crit_chance"`
	DodgeChance uint16 `json:"dodge_chance"`
}

var classBaseStats = map[CharacterClass]BaseStats{
	ClassWarrior:   {MaxHP: 120, DamageMin: 8, DamageMax: 15, CritChance: 15, DodgeChance: 0},
	ClassAssassin:  {MaxHP: 90, DamageMin: 12, DamageMax: 20, CritChance: 35, DodgeChance: 20},
	ClassMage:      {MaxHP: 80, DamageMin: 10, DamageMax: 18, CritChance: 20, DodgeChance: 0},
	ClassTank:      {MaxHP: 150, DamageMin: 6, DamageMax: 12, CritChance: 10, DodgeChance: 0},
	ClassTrickster: {MaxHP: 100, DamageMin: 9, DamageMax: 16, CritChance: 25, DodgeChance: 15},
}

// DefaultBaseStats returns a copy of the built-in class stat table.
func DefaultBaseStats() map[CharacterClass]BaseStats {
	out := make(map[CharacterClass]BaseStats, len(classBaseStats))
	for k, v := range classBaseStats {
		out[k] = v
	}
	return out
}

// Stance is the per-turn tactical choice revealed through the commit-reveal
// protocol.
type Stance string

const (
	StanceAggressive Stance = "aggressive"
	StanceDefensive  Stance = "defensive"
	StanceBalanced   Stance = "balanced"
	StanceBerserker  Stance = "berserker"
	StanceCounter    Stance = "counter"
)

// stanceWireBytes fixes the byte each stance contributes to its commitment
// hash. The encoding is part of the protocol: clients hash the same byte.
var stanceWireBytes = map[Stance]byte{
	StanceAggressive: 0,
	StanceDefensive:  1,
	StanceBalanced:   2,
	StanceBerserker:  3,
	StanceCounter:    4,
}

func (s Stance) Valid() bool {
	_, ok := stanceWireBytes[s]
	return ok
}

// WireByte returns the canonical single-byte encoding used inside stance
// commitment hashes.
func (s Stance) WireByte() byte { return stanceWireBytes[s] }

// MatchType categorizes a battle for XP purposes.
type MatchType string

const (
	MatchCasual     MatchType = "casual"
	MatchRanked     MatchType = "ranked"
	MatchTournament MatchType = "tournament"
	MatchStaked     MatchType = "staked"
)

func (m MatchType) Valid() bool {
	switch m {
	case MatchCasual, MatchRanked, MatchTournament, MatchStaked:
		return true
	}
	return false
}

// BaseXP returns the flat XP award for finishing a battle of this category.
func (m MatchType) BaseXP() uint64 {
	switch m {
	case MatchCasual:
		return 50
	case MatchRanked:
		return 100
	case MatchTournament:
		return 200
	case MatchStaked:
		return 150
	}
	return 0
}

// WildcardEvent identifies one of the eight randomized turn modifiers.
type WildcardEvent string

const (
	WildcardNone            WildcardEvent = ""
	WildcardDoubleOrNothing WildcardEvent = "double_or_nothing"
	WildcardReverseRoles    WildcardEvent = "reverse_roles"
	WildcardMysteryBox      WildcardEvent = "mystery_box"
	WildcardDeathRoulette   WildcardEvent = "death_roulette"
	WildcardComboBreaker    WildcardEvent = "combo_breaker"
	WildcardTimeWarp        WildcardEvent = "time_warp"
	WildcardLuckySeven      WildcardEvent = "lucky_seven"
	WildcardGamblersFallacy WildcardEvent = "gamblers_fallacy"
)

// wildcardByRoll maps the 0..7 type roll onto an event, in the protocol's
// fixed order.
var wildcardByRoll = [8]WildcardEvent{
	WildcardDoubleOrNothing,
	WildcardReverseRoles,
	WildcardMysteryBox,
	WildcardDeathRoulette,
	WildcardComboBreaker,
	WildcardTimeWarp,
	WildcardLuckySeven,
	WildcardGamblersFallacy,
}

// WildcardFromRoll selects the event for a type roll already reduced mod 8.
func WildcardFromRoll(roll uint8) WildcardEvent { return wildcardByRoll[roll%8] }

// RequiresDecision reports whether the event pauses the turn for an
// accept/decline round from both sides.
func (w WildcardEvent) RequiresDecision() bool {
	return w == WildcardDoubleOrNothing || w == WildcardDeathRoulette
}

// RankTier is the bracket label derived from MMR.
type RankTier string

const (
	RankBronze   RankTier = "bronze"
	RankSilver   RankTier = "silver"
	RankGold     RankTier = "gold"
	RankPlatinum RankTier = "platinum"
	RankDiamond  RankTier = "diamond"
	RankMaster   RankTier = "master"
)

// TierForMMR maps an MMR value onto its rank tier.
func TierForMMR(mmr uint64) RankTier {
	switch {
	case mmr < 1000:
		return RankBronze
	case mmr < 1500:
		return RankSilver
	case mmr < 2000:
		return RankGold
	case mmr < 2500:
		return RankPlatinum
	case mmr < 3000:
		return RankDiamond
	default:
		return RankMaster
	}
}

// Achievement tags are appended to a character exactly once.
type Achievement string

const (
	AchievementFirstWin    Achievement = "first_win"
	AchievementTenWins     Achievement = "ten_wins"
	AchievementHundredWins Achievement = "hundred_wins"
	AchievementFlawless    Achievement = "flawless"
)
