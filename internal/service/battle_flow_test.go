package service

import (
	"errors"
	"testing"

	"battleforge/internal/engine"
	"battleforge/internal/events"
	"battleforge/internal/game"
)

func createTestBattle(t *testing.T, env *testEnv, matchType game.MatchType, stake uint64, vsAI bool) *game.Battle {
	t.Helper()
	env.addCharacter("p1", "Ragnar", game.ClassWarrior)
	env.addCharacter("p2", "Bastion", game.ClassTank)
	b, err := CreateBattle(env.deps, "p1", "p2", matchType, stake, vsAI)
	if err != nil {
		t.Fatalf("CreateBattle: %v", err)
	}
	return b
}

func TestCreateBattleValidation(t *testing.T) {
	env := newTestEnv(quietRolls())
	env.addCharacter("p1", "Ragnar", game.ClassWarrior)
	p2 := env.addCharacter("p2", "Bastion", game.ClassTank)

	if _, err := CreateBattle(env.deps, "p1", "p1", game.MatchCasual, 0, false); !errors.Is(err, ErrSameCharacter) {
		t.Fatalf("expected ErrSameCharacter, got %v", err)
	}
	if _, err := CreateBattle(env.deps, "p1", "p2", game.MatchType("blitz"), 0, false); !errors.Is(err, ErrInvalidMatchType) {
		t.Fatalf("expected ErrInvalidMatchType, got %v", err)
	}
	if _, err := CreateBattle(env.deps, "p1", "ghost", game.MatchCasual, 0, false); !errors.Is(err, ErrCharacterNotFound) {
		t.Fatalf("expected ErrCharacterNotFound, got %v", err)
	}

	p2.CurrentHP = 0
	if _, err := CreateBattle(env.deps, "p1", "p2", game.MatchCasual, 0, false); !errors.Is(err, ErrCharacterDead) {
		t.Fatalf("expected ErrCharacterDead, got %v", err)
	}
	// A dead defender is fine when the AI plays that seat.
	if _, err := CreateBattle(env.deps, "p1", "p2", game.MatchCasual, 0, true); err != nil {
		t.Fatalf("vs-AI battle should not check defender health: %v", err)
	}
}

// Warrior vs Tank, both balanced, no specials, no wildcard: the turn
// resolves on the base roll plus level bonus alone.
func TestCommitRevealExecutesTurn(t *testing.T) {
	rolls := quietRolls()
	rolls[streamBaseDamage] = 3 // 8 + 3%8 = 11
	env := newTestEnv(rolls)
	b := createTestBattle(t, env, game.MatchCasual, 0, false)

	hash := engine.StanceHash(game.StanceBalanced, 42)
	if _, err := CommitStance(env.deps, b.UUID, "p1", hash); err != nil {
		t.Fatalf("CommitStance: %v", err)
	}
	if !env.sink.has(events.StanceCommitted) {
		t.Fatal("stance-committed event missing")
	}

	updated, suspended, err := RevealTurn(env.deps, b.UUID, "p1", game.StanceBalanced, 42, false)
	if err != nil {
		t.Fatalf("RevealTurn: %v", err)
	}
	if suspended {
		t.Fatal("no wildcard rolled; the turn must execute")
	}
	if updated.Player2.HP != 139 {
		t.Fatalf("defender HP should drop by 11, got %d", updated.Player2.HP)
	}
	if updated.CurrentTurn != 2 || updated.TurnNumber != 1 {
		t.Fatalf("turn should flip to player 2 / count 1, got %d/%d", updated.CurrentTurn, updated.TurnNumber)
	}
	if updated.Player1.StanceCommitted {
		t.Fatal("commitment must clear after execution")
	}
}

// A reveal that does not match the committed hash is rejected and leaves
// the battle untouched.
func TestRevealMismatchRejected(t *testing.T) {
	env := newTestEnv(quietRolls())
	b := createTestBattle(t, env, game.MatchCasual, 0, false)

	hash := engine.StanceHash(game.StanceAggressive, 42)
	if _, err := CommitStance(env.deps, b.UUID, "p1", hash); err != nil {
		t.Fatalf("CommitStance: %v", err)
	}

	_, _, err := RevealTurn(env.deps, b.UUID, "p1", game.StanceDefensive, 42, false)
	if !errors.Is(err, ErrInvalidStanceReveal) {
		t.Fatalf("expected ErrInvalidStanceReveal, got %v", err)
	}

	stored := env.repo.battles[b.UUID]
	if stored.TurnNumber != 0 || stored.Player2.HP != 150 {
		t.Fatal("a rejected reveal must not mutate the battle")
	}
	if !stored.Player1.StanceCommitted {
		t.Fatal("the commitment must survive a rejected reveal")
	}

	// The same commitment still opens with the right stance and salt.
	if _, _, err := RevealTurn(env.deps, b.UUID, "p1", game.StanceAggressive, 42, false); err != nil {
		t.Fatalf("matching reveal after a rejection: %v", err)
	}
}

func TestCommitRejections(t *testing.T) {
	env := newTestEnv(quietRolls())
	b := createTestBattle(t, env, game.MatchCasual, 0, false)
	hash := engine.StanceHash(game.StanceBalanced, 1)

	if _, err := CommitStance(env.deps, b.UUID, "p2", hash); !errors.Is(err, ErrNotYourTurn) {
		t.Fatalf("expected ErrNotYourTurn, got %v", err)
	}
	if _, err := CommitStance(env.deps, b.UUID, "ghost", hash); !errors.Is(err, ErrNotAParticipant) {
		t.Fatalf("expected ErrNotAParticipant, got %v", err)
	}

	if _, err := CommitStance(env.deps, b.UUID, "p1", hash); err != nil {
		t.Fatalf("first commit: %v", err)
	}
	// Rejection is idempotent regardless of the hash value.
	if _, err := CommitStance(env.deps, b.UUID, "p1", engine.StanceHash(game.StanceCounter, 9)); !errors.Is(err, ErrAlreadyCommitted) {
		t.Fatalf("expected ErrAlreadyCommitted, got %v", err)
	}
	if _, err := CommitStance(env.deps, b.UUID, "p1", hash); !errors.Is(err, ErrAlreadyCommitted) {
		t.Fatalf("second rejection must repeat, got %v", err)
	}
}

func TestRevealWithoutCommitment(t *testing.T) {
	env := newTestEnv(quietRolls())
	b := createTestBattle(t, env, game.MatchCasual, 0, false)

	if _, _, err := RevealTurn(env.deps, b.UUID, "p1", game.StanceBalanced, 1, false); !errors.Is(err, ErrStanceNotCommitted) {
		t.Fatalf("expected ErrStanceNotCommitted, got %v", err)
	}
}

func TestSpecialOnCooldownRejected(t *testing.T) {
	env := newTestEnv(quietRolls())
	b := createTestBattle(t, env, game.MatchCasual, 0, false)
	env.repo.battles[b.UUID].Player1.SpecialCooldown = 2

	hash := engine.StanceHash(game.StanceBalanced, 7)
	if _, err := CommitStance(env.deps, b.UUID, "p1", hash); err != nil {
		t.Fatalf("CommitStance: %v", err)
	}
	if _, _, err := RevealTurn(env.deps, b.UUID, "p1", game.StanceBalanced, 7, true); !errors.Is(err, ErrSpecialOnCooldown) {
		t.Fatalf("expected ErrSpecialOnCooldown, got %v", err)
	}
}

// Past the absolute expiry window commits and reveals fail, but the
// timeout path still resolves the battle by forfeit.
func TestExpiredBattle(t *testing.T) {
	env := newTestEnv(quietRolls())
	b := createTestBattle(t, env, game.MatchCasual, 0, false)
	env.clock.now += 3601

	hash := engine.StanceHash(game.StanceBalanced, 1)
	if _, err := CommitStance(env.deps, b.UUID, "p1", hash); !errors.Is(err, ErrBattleExpired) {
		t.Fatalf("expected ErrBattleExpired on commit, got %v", err)
	}
	if _, _, err := RevealTurn(env.deps, b.UUID, "p1", game.StanceBalanced, 1, false); !errors.Is(err, ErrBattleExpired) {
		t.Fatalf("expected ErrBattleExpired on reveal, got %v", err)
	}

	updated, forfeited, err := CheckTimeout(env.deps, b.UUID)
	if err != nil {
		t.Fatalf("CheckTimeout: %v", err)
	}
	if !forfeited || !updated.IsFinished || !updated.Abandoned {
		t.Fatal("expired battle must resolve by forfeit")
	}
	if updated.Winner != 2 {
		t.Fatalf("turn holder forfeits; winner should be player 2, got %d", updated.Winner)
	}
	if !env.sink.has(events.BattleAbandoned) {
		t.Fatal("battle-abandoned event missing")
	}
}

func TestCheckTimeoutInactivity(t *testing.T) {
	env := newTestEnv(quietRolls())
	b := createTestBattle(t, env, game.MatchStaked, 25, false)

	// Within the window: nothing happens.
	env.clock.now += 30
	if _, forfeited, err := CheckTimeout(env.deps, b.UUID); err != nil || forfeited {
		t.Fatalf("no forfeit inside the window, got %v/%v", forfeited, err)
	}

	env.clock.now += 1
	updated, forfeited, err := CheckTimeout(env.deps, b.UUID)
	if err != nil || !forfeited {
		t.Fatalf("expected forfeit, got %v/%v", forfeited, err)
	}
	if updated.Winner != 2 {
		t.Fatalf("winner should be player 2, got %d", updated.Winner)
	}
	if env.ledger.Balance("p2") != 50 {
		t.Fatalf("full pot goes to the winner, got %d", env.ledger.Balance("p2"))
	}

	if _, _, err := CheckTimeout(env.deps, b.UUID); !errors.Is(err, ErrBattleFinished) {
		t.Fatalf("a finished battle cannot forfeit again, got %v", err)
	}
}
