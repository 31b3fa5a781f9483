package service

import (
	"errors"
	"strings"
	"testing"

	"battleforge/internal/events"
	"battleforge/internal/game"
)

func TestCreateCharacter(t *testing.T) {
	env := newTestEnv(quietRolls())

	c, err := CreateCharacter(env.deps, "Ragnar", game.ClassWarrior)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.UUID == "" {
		t.Fatal("character must get a UUID")
	}
	if c.MaxHP != 120 || c.DamageMin != 8 || c.DamageMax != 15 || c.CritChance != 15 {
		t.Fatalf("warrior base stats off: %+v", c)
	}
	if c.Level != 1 || c.MMR != 1000 {
		t.Fatalf("fresh character starts at level 1 / 1000 MMR, got %d/%d", c.Level, c.MMR)
	}
	if c.RankTier != game.RankSilver {
		t.Fatalf("1000 MMR sits in silver, got %s", c.RankTier)
	}
	if _, ok := env.repo.characters[c.UUID]; !ok {
		t.Fatal("character must be persisted")
	}
	if !env.sink.has(events.CharacterCreated) {
		t.Fatal("character-created event missing")
	}
}

func TestCreateCharacterValidation(t *testing.T) {
	env := newTestEnv(quietRolls())

	if _, err := CreateCharacter(env.deps, "", game.ClassWarrior); !errors.Is(err, ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}
	if _, err := CreateCharacter(env.deps, strings.Repeat("x", 33), game.ClassWarrior); !errors.Is(err, ErrNameTooLong) {
		t.Fatalf("expected ErrNameTooLong, got %v", err)
	}
	if _, err := CreateCharacter(env.deps, "Ragnar", game.CharacterClass("paladin")); !errors.Is(err, ErrInvalidClass) {
		t.Fatalf("expected ErrInvalidClass, got %v", err)
	}
}

func TestHealCharacter(t *testing.T) {
	env := newTestEnv(quietRolls())
	c := env.addCharacter("p1", "Ragnar", game.ClassWarrior)
	c.CurrentHP = 40

	healed, err := HealCharacter(env.deps, "p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if healed.CurrentHP != healed.MaxHP {
		t.Fatalf("heal must restore to max, got %d", healed.CurrentHP)
	}
	if !env.sink.has(events.CharacterHealed) {
		t.Fatal("character-healed event missing")
	}

	if _, err := HealCharacter(env.deps, "p1"); !errors.Is(err, ErrAlreadyFullHealth) {
		t.Fatalf("expected ErrAlreadyFullHealth, got %v", err)
	}
	if _, err := HealCharacter(env.deps, "ghost"); !errors.Is(err, ErrCharacterNotFound) {
		t.Fatalf("expected ErrCharacterNotFound, got %v", err)
	}
}
