package engine

import (
	"math/rand"
	"testing"

	"github.com/AnthonyPengelly/dodgeball-manager-api-sub000/internal/game"
)

func TestComputeTurnOrder_SpeedDominatesWhenGapIsLarge(t *testing.T) {
	slow := testPlayer(1, true, 0, 1)
	fast := testPlayer(2, false, 6, 1)
	fast.Player.Speed = 100
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		order := computeTurnOrder([]*game.PlayerState{slow, fast}, rng)
		if order[0] != 2 {
			t.Fatalf("a 99-point speed gap cannot be jittered away, got order %v", order)
		}
	}
}

func TestComputeTurnOrder_DeterministicPerSeed(t *testing.T) {
	players := []*game.PlayerState{
		testPlayer(1, true, 0, 3),
		testPlayer(2, true, 1, 3),
		testPlayer(3, false, 6, 3),
		testPlayer(4, false, 7, 3),
	}
	a := computeTurnOrder(players, rand.New(rand.NewSource(42)))
	b := computeTurnOrder(players, rand.New(rand.NewSource(42)))
	if len(a) != 4 || len(b) != 4 {
		t.Fatalf("expected all players scheduled, got %v / %v", a, b)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different orders: %v vs %v", a, b)
		}
	}
}

func TestComputeTurnOrder_IncludesEveryPlayerOnce(t *testing.T) {
	players := []*game.PlayerState{
		testPlayer(1, true, 0, 2),
		testPlayer(2, true, 1, 4),
		testPlayer(3, false, 6, 3),
	}
	order := computeTurnOrder(players, rand.New(rand.NewSource(5)))
	seen := make(map[uint]bool)
	for _, id := range order {
		if seen[id] {
			t.Fatalf("player %d scheduled twice: %v", id, order)
		}
		seen[id] = true
	}
	if len(seen) != 3 {
		t.Fatalf("expected 3 scheduled players, got %v", order)
	}
}
