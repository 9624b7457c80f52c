package engine

import (
	"math/rand"
	"testing"

	"github.com/AnthonyPengelly/dodgeball-manager-api-sub000/internal/game"
)

// testPlayer puts a player on court with every stat set to the same
// value; individual tests override the stats that matter.
func testPlayer(id uint, isHome bool, slot int, stat float64) *game.PlayerState {
	return &game.PlayerState{
		Player: game.MatchPlayer{
			ID:              id,
			IsHome:          isHome,
			Throwing:        stat,
			Catching:        stat,
			Dodging:         stat,
			Blocking:        stat,
			Speed:           stat,
			CatchAggression: 50,
			TargetPriority:  game.TargetRandom,
		},
		Position: intPtr(slot),
	}
}

func emptyTestState() *game.GameState {
	return &game.GameState{
		GameNumber: 1,
		Players:    make(map[uint]*game.PlayerState),
		Balls:      make(map[int]*game.BallState),
	}
}

func TestSortedIDs(t *testing.T) {
	s := emptyTestState()
	s.Players[9] = testPlayer(9, true, 0, 3)
	s.Players[2] = testPlayer(2, true, 1, 3)
	s.Players[5] = testPlayer(5, false, 6, 3)
	ids := sortedPlayerIDs(s)
	if len(ids) != 3 || ids[0] != 2 || ids[1] != 5 || ids[2] != 9 {
		t.Fatalf("expected ascending ids, got %v", ids)
	}

	s.Balls[4] = &game.BallState{Status: game.BallFree, Position: intPtr(0)}
	s.Balls[1] = &game.BallState{Status: game.BallFree, Position: intPtr(1)}
	bids := sortedBallIDs(s)
	if len(bids) != 2 || bids[0] != 1 || bids[1] != 4 {
		t.Fatalf("expected ascending ball ids, got %v", bids)
	}
}

func TestPlayersRemaining(t *testing.T) {
	s := emptyTestState()
	s.Players[1] = testPlayer(1, true, 0, 3)
	s.Players[2] = testPlayer(2, true, 1, 3)
	s.Players[3] = testPlayer(3, false, 6, 3)
	s.Players[2].Eliminated = true
	s.Players[2].Position = nil
	if got := playersRemaining(s, true); got != 1 {
		t.Fatalf("home remaining = %d, want 1", got)
	}
	if got := playersRemaining(s, false); got != 1 {
		t.Fatalf("away remaining = %d, want 1", got)
	}
}

func TestPlayerAtAndSlotOccupied(t *testing.T) {
	s := emptyTestState()
	s.Players[1] = testPlayer(1, true, 2, 3)
	s.Players[2] = testPlayer(2, false, 8, 3)

	if p := playerAt(s, 2); p == nil || p.Player.ID != 1 {
		t.Fatalf("expected player 1 at slot 2")
	}
	if p := playerAt(s, 3); p != nil {
		t.Fatalf("slot 3 should be empty, found player %d", p.Player.ID)
	}
	if !slotOccupied(s, 8, 1) {
		t.Fatalf("slot 8 should be occupied by player 2")
	}
	if slotOccupied(s, 8, 2) {
		t.Fatalf("a player must not block their own slot")
	}

	s.Players[2].Eliminated = true
	s.Players[2].Position = nil
	if slotOccupied(s, 8, 1) {
		t.Fatalf("eliminated players do not occupy slots")
	}
}

func TestUniform_Bounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		v := uniform(rng, -1.5, 3.5)
		if v < -1.5 || v >= 3.5 {
			t.Fatalf("uniform out of range: %f", v)
		}
	}
}
