package engine

import (
	"testing"

	"battleforge/internal/game"
)

func TestStanceHashRoundTrip(t *testing.T) {
	h := StanceHash(game.StanceAggressive, 42)
	if !VerifyStanceHash(h, game.StanceAggressive, 42) {
		t.Fatal("reveal with matching stance and salt must verify")
	}
}

func TestStanceHashRejectsMutations(t *testing.T) {
	h := StanceHash(game.StanceAggressive, 42)
	if VerifyStanceHash(h, game.StanceDefensive, 42) {
		t.Fatal("different stance must not verify")
	}
	if VerifyStanceHash(h, game.StanceAggressive, 43) {
		t.Fatal("different salt must not verify")
	}
	if VerifyStanceHash(nil, game.StanceAggressive, 42) {
		t.Fatal("missing commitment must not verify")
	}
	if VerifyStanceHash(h[:16], game.StanceAggressive, 42) {
		t.Fatal("truncated commitment must not verify")
	}
}

func TestStanceWireBytesAreDistinct(t *testing.T) {
	seen := map[byte]game.Stance{}
	for _, s := range []game.Stance{game.StanceAggressive, game.StanceDefensive, game.StanceBalanced, game.StanceBerserker, game.StanceCounter} {
		b := s.WireByte()
		if prev, dup := seen[b]; dup {
			t.Fatalf("stances %s and %s share wire byte %d", prev, s, b)
		}
		seen[b] = s
	}
}
