package service

import (
	"battleforge/internal/engine"
	"battleforge/internal/escrow"
	"battleforge/internal/events"
	"battleforge/internal/game"
	"battleforge/internal/storage"
)

// Roll stream ids as fixed by the pseudo-random protocol, repeated here so
// scripted sources read clearly.
const (
	streamWildcardTrigger = 1
	streamWildcardType    = 2
	streamBaseDamage      = 3
	streamCrit            = 4
	streamInstantKill     = 5
	streamDodge           = 6
	streamDoubleOrNothing = 7
)

type mockRepo struct {
	characters map[string]*game.Character
	battles    map[string]*game.Battle
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		characters: make(map[string]*game.Character),
		battles:    make(map[string]*game.Battle),
	}
}

func (m *mockRepo) CreateCharacter(c *game.Character) error {
	m.characters[c.UUID] = c
	return nil
}

func (m *mockRepo) GetCharacterByUUID(uuid string) (*game.Character, error) {
	if c, ok := m.characters[uuid]; ok {
		return c, nil
	}
	return nil, storage.ErrNotFound
}

func (m *mockRepo) UpdateCharacter(c *game.Character) error {
	m.characters[c.UUID] = c
	return nil
}

func (m *mockRepo) GetTopCharacters(limit int) ([]game.Character, error) {
	out := make([]game.Character, 0, len(m.characters))
	for _, c := range m.characters {
		out = append(out, *c)
	}
	return out, nil
}

func (m *mockRepo) CreateBattle(b *game.Battle) error {
	m.battles[b.UUID] = b
	return nil
}

func (m *mockRepo) GetBattleByUUID(uuid string) (*game.Battle, error) {
	if b, ok := m.battles[uuid]; ok {
		return b, nil
	}
	return nil, storage.ErrNotFound
}

func (m *mockRepo) UpdateBattle(b *game.Battle) error {
	m.battles[b.UUID] = b
	return nil
}

func (m *mockRepo) FindActionableBattles(now int64, turnTimeoutSec int64) ([]game.Battle, error) {
	var out []game.Battle
	for _, b := range m.battles {
		if !b.IsFinished && b.LastActionAt <= now-turnTimeoutSec {
			out = append(out, *b)
		}
	}
	return out, nil
}

type fixedClock struct{ now int64 }

func (c *fixedClock) Now() int64 { return c.now }

type recordingSink struct{ events []events.Event }

func (s *recordingSink) Publish(e events.Event) { s.events = append(s.events, e) }

func (s *recordingSink) has(t events.Type) bool {
	for _, e := range s.events {
		if e.Type == t {
			return true
		}
	}
	return false
}

// quietRolls suppresses every luck stream so turns resolve on the base
// damage roll alone unless a test overrides a stream.
func quietRolls() engine.FixedSource {
	return engine.FixedSource{
		streamWildcardTrigger: 99,
		streamCrit:            99,
		streamInstantKill:     99,
		streamDodge:           99,
	}
}

type testEnv struct {
	repo   *mockRepo
	clock  *fixedClock
	ledger *escrow.MemoryLedger
	sink   *recordingSink
	deps   Deps
}

func newTestEnv(rng engine.RandomSource) *testEnv {
	env := &testEnv{
		repo:   newMockRepo(),
		clock:  &fixedClock{now: 1000},
		ledger: escrow.NewMemoryLedger(),
		sink:   &recordingSink{},
	}
	env.deps = Deps{
		Repo:   env.repo,
		Escrow: env.ledger,
		Events: env.sink,
		Rand:   rng,
		Clock:  env.clock,
		Rules:  DefaultRules(),
	}
	return env
}

func (env *testEnv) addCharacter(uuid, name string, class game.CharacterClass) *game.Character {
	stats := game.DefaultBaseStats()[class]
	c := &game.Character{
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
		MMR:         startingMMR,
		RankTier:    game.TierForMMR(startingMMR),
	}
	env.repo.characters[uuid] = c
	return c
}
