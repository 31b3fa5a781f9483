package service

import (
	"errors"
	"testing"

	"battleforge/internal/events"
	"battleforge/internal/game"
)

// Ranked battle, level difference zero: winner +100 XP and +25 MMR, loser
// -15 MMR, both healed to max.
func TestFinalizeBattleRanked(t *testing.T) {
	env := newTestEnv(quietRolls())
	b := createTestBattle(t, env, game.MatchRanked, 0, false)

	stored := env.repo.battles[b.UUID]
	stored.IsFinished = true
	stored.Winner = 1
	stored.Player1.HP = 40
	stored.Player2.HP = 0
	env.repo.characters["p1"].CurrentHP = 40
	env.repo.characters["p2"].CurrentHP = 10

	updated, err := FinalizeBattle(env.deps, b.UUID)
	if err != nil {
		t.Fatalf("FinalizeBattle: %v", err)
	}
	if !updated.Finalized {
		t.Fatal("battle must be marked finalized")
	}

	p1 := env.repo.characters["p1"]
	p2 := env.repo.characters["p2"]
	if p1.MMR != 1025 || p2.MMR != 985 {
		t.Fatalf("MMR off: winner=%d loser=%d", p1.MMR, p2.MMR)
	}
	if p1.Level != 2 || p1.XP != 0 {
		t.Fatalf("100 XP crosses level 1 exactly, got level %d xp %d", p1.Level, p1.XP)
	}
	if p1.CurrentHP != p1.MaxHP || p2.CurrentHP != p2.MaxHP {
		t.Fatal("both characters heal to max on finalize")
	}
	if p1.TotalWins != 1 || p2.TotalLosses != 1 {
		t.Fatalf("counters off: wins=%d losses=%d", p1.TotalWins, p2.TotalLosses)
	}
	if !env.sink.has(events.BattleFinalized) {
		t.Fatal("battle-finalized event missing")
	}

	if _, err := FinalizeBattle(env.deps, b.UUID); !errors.Is(err, ErrAlreadyFinalized) {
		t.Fatalf("expected ErrAlreadyFinalized, got %v", err)
	}
}

func TestFinalizeBattleNotFinished(t *testing.T) {
	env := newTestEnv(quietRolls())
	b := createTestBattle(t, env, game.MatchCasual, 0, false)

	if _, err := FinalizeBattle(env.deps, b.UUID); !errors.Is(err, ErrBattleNotFinished) {
		t.Fatalf("expected ErrBattleNotFinished, got %v", err)
	}
}

func TestFinalizeReleasesStake(t *testing.T) {
	env := newTestEnv(quietRolls())
	b := createTestBattle(t, env, game.MatchStaked, 100, false)

	stored := env.repo.battles[b.UUID]
	stored.IsFinished = true
	stored.Winner = 2
	stored.Player1.HP = 0

	if _, err := FinalizeBattle(env.deps, b.UUID); err != nil {
		t.Fatalf("FinalizeBattle: %v", err)
	}
	if env.ledger.Balance("p2") != 200 {
		t.Fatalf("winner takes the full pot, got %d", env.ledger.Balance("p2"))
	}
}

// A battle resolved by forfeit releases the stake once; finalize must not
// double-pay.
func TestFinalizeAfterForfeit(t *testing.T) {
	env := newTestEnv(quietRolls())
	b := createTestBattle(t, env, game.MatchStaked, 100, false)

	env.clock.now += 31
	if _, forfeited, err := CheckTimeout(env.deps, b.UUID); err != nil || !forfeited {
		t.Fatalf("forfeit expected, got %v/%v", forfeited, err)
	}
	if _, err := FinalizeBattle(env.deps, b.UUID); err != nil {
		t.Fatalf("FinalizeBattle: %v", err)
	}
	if env.ledger.Balance("p2") != 200 {
		t.Fatalf("stake pays out exactly once, got %d", env.ledger.Balance("p2"))
	}
}
