package game

import (
	"gorm.io/gorm"
)

// battleLogCap bounds the per-battle text log. The oldest entries are
// preserved; appends past the cap are dropped.
const battleLogCap = 50

// Character is a combatant's persistent stat record. It is created once and
// afterwards mutated only by the progression resolver when a battle
// finalizes (plus the explicit heal operation).
type Character struct {
	gorm.Model
	UUID  string         `json:"uuid" gorm:"uniqueIndex"`
	Class CharacterClass `json:"class"`
	Name  string         `json:"name" gorm:"size:32"`

	Level uint16 `json:"level"`
	XP    uint64 `json:"xp"`

	MaxHP       uint64 `json:"max_hp"`
	CurrentHP   uint64 `json:"current_hp"`
	DamageMin   uint16 `json:"damage_min"`
	DamageMax   uint16 `json:"damage_max"`
	CritChance  uint16 `json:"crit_chance"`
	DodgeChance uint16 `json:"dodge_chance"`
	Defense     uint16 `json:"defense"`

	TotalWins    uint32 `json:"total_wins"`
	TotalLosses  uint32 `json:"total_losses"`
	SeasonWins   uint32 `json:"season_wins"`
	SeasonLosses uint32 `json:"season_losses"`

	MMR      uint64   `json:"mmr"`
	RankTier RankTier `json:"rank_tier"`

	// Achievements is append-only and de-duplicated; stored as a JSON array.
	Achievements []Achievement `json:"achievements" gorm:"serializer:json"`

	LastBattleAt int64 `json:"last_battle_at"`
}

func (Character) TableName() string { return "characters" }

// HasAchievement reports whether the tag was already awarded.
func (c *Character) HasAchievement(a Achievement) bool {
	for _, got := range c.Achievements {
		if got == a {
			return true
		}
	}
	return false
}

// Award appends the achievement unless it is already present.
func (c *Character) Award(a Achievement) {
	if !c.HasAchievement(a) {
		c.Achievements = append(c.Achievements, a)
	}
}

// BattleSide holds the battle-local transient state for one combatant.
// Battle HP starts from the character's max HP and is independent of the
// persisted character record; it may exceed max HP through wildcard heals.
type BattleSide struct {
	CharacterUUID string `json:"character_uuid"`

	HP     uint64 `json:"hp"`
	Combo  uint16 `json:"combo"`
	Stance Stance `json:"stance"`

	StanceCommitted bool   `json:"stance_committed"`
	StanceHash      []byte `json:"-" gorm:"type:blob"`

	DOTDamage uint64 `json:"dot_damage"`
	DOTTurns  uint8  `json:"dot_turns"`

	Reflection      uint16 `json:"reflection"`
	MissCount       uint16 `json:"miss_count"`
	SpecialCooldown uint8  `json:"special_cooldown"`

	// WildcardDecision is nil until the side answered the pending wildcard.
	WildcardDecision *bool `json:"wildcard_decision"`
}

// ClearCommitment resets the commit-reveal state for the next turn.
func (s *BattleSide) ClearCommitment() {
	s.StanceCommitted = false
	s.StanceHash = nil
}

// Battle is one combat session's full transient state between two
// combatants. It is mutated turn-by-turn by the service layer and consumed
// exactly once by the progression resolver.
type Battle struct {
	gorm.Model
	UUID string `json:"uuid" gorm:"uniqueIndex"`

	MatchType   MatchType `json:"match_type"`
	StakeAmount uint64    `json:"stake_amount"`
	IsVsAI      bool      `json:"is_vs_ai"`

	CreatedAtUnix int64 `json:"created_at_unix"`
	LastActionAt  int64 `json:"last_action_at"`

	TurnNumber  uint32 `json:"turn_number"`
	CurrentTurn uint8  `json:"current_turn"` // 1 or 2

	IsFinished bool  `json:"is_finished"`
	Winner     uint8 `json:"winner"` // 0 = unset
	Abandoned  bool  `json:"abandoned"`
	Finalized  bool  `json:"finalized"`

	Player1 BattleSide `json:"player1" gorm:"embedded;embeddedPrefix:player1_"`
	Player2 BattleSide `json:"player2" gorm:"embedded;embeddedPrefix:player2_"`

	// LastDamageRoll records the most recent base damage roll; consumed by
	// the LuckySeven wildcard.
	LastDamageRoll uint8 `json:"last_damage_roll"`

	WildcardActive   bool          `json:"wildcard_active"`
	WildcardType     WildcardEvent `json:"wildcard_type"`
	WildcardDeadline int64         `json:"wildcard_deadline"`

	// Pending reveal payload held while a decision-required wildcard is
	// active. The interrupted turn resumes automatically once both
	// decisions are in (or the decision window times out).
	PendingStance     Stance `json:"pending_stance"`
	PendingUseSpecial bool   `json:"pending_use_special"`

	Log []string `json:"log" gorm:"serializer:json"`
}

func (Battle) TableName() string { return "battles" }

// Side returns the battle-local state for player 1 or player 2.
func (b *Battle) Side(isPlayer1 bool) *BattleSide {
	if isPlayer1 {
		return &b.Player1
	}
	return &b.Player2
}

// Opponent returns the other side's battle-local state.
func (b *Battle) Opponent(isPlayer1 bool) *BattleSide {
	return b.Side(!isPlayer1)
}

// IsPlayer1Turn reports whether the turn indicator currently points at
// player 1.
func (b *Battle) IsPlayer1Turn() bool { return b.CurrentTurn == 1 }

// AppendLog records a battle event in the bounded log. Once the cap is
// reached new entries are dropped so the earliest history survives.
func (b *Battle) AppendLog(entry string) {
	if len(b.Log) < battleLogCap {
		b.Log = append(b.Log, entry)
	}
}

// ClearWildcard resets all wildcard decision state. Decision fields are
// never left populated while no wildcard is active.
func (b *Battle) ClearWildcard() {
	b.WildcardActive = false
	b.WildcardType = WildcardNone
	b.WildcardDeadline = 0
	b.Player1.WildcardDecision = nil
	b.Player2.WildcardDecision = nil
	b.PendingStance = ""
	b.PendingUseSpecial = false
}

// WildcardPending reports whether a decision-required wildcard is holding
// up turn execution.
func (b *Battle) WildcardPending() bool {
	return b.WildcardActive && b.WildcardType.RequiresDecision()
}
