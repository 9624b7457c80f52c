package engine

import (
	"math/rand"
	"testing"

	"github.com/AnthonyPengelly/dodgeball-manager-api-sub000/internal/game"
)

func TestReachableBall(t *testing.T) {
	s := emptyTestState()
	p := testPlayer(1, true, 2, 3)
	s.Players[1] = p

	s.Balls[0] = &game.BallState{Status: game.BallFree, Position: intPtr(4)}
	if got := reachableBall(s, p); got != nil {
		t.Fatalf("a free ball two slots away is out of reach, got %d", *got)
	}

	s.Balls[0].Position = intPtr(3)
	if got := reachableBall(s, p); got == nil || *got != 0 {
		t.Fatalf("adjacent free ball should be reachable, got %v", got)
	}

	// cross-side free balls are never reachable
	s.Balls[0].Position = intPtr(8)
	if got := reachableBall(s, p); got != nil {
		t.Fatalf("opposing side free ball should be unreachable, got %d", *got)
	}
}

func TestReachableBall_InitialReachableFromEitherSide(t *testing.T) {
	s := emptyTestState()
	away := testPlayer(1, false, 9, 3)
	s.Players[1] = away
	s.Balls[3] = &game.BallState{Status: game.BallInitial, Position: intPtr(3)}

	got := reachableBall(s, away)
	if got == nil || *got != 3 {
		t.Fatalf("racked ball opposite slot 9 should be reachable, got %v", got)
	}
}

func TestDecideAction_HolderAlwaysThrowsWithMaxedStat(t *testing.T) {
	s := emptyTestState()
	thrower := testPlayer(1, true, 0, 3)
	thrower.Player.Throwing = 200
	thrower.BallID = intPtr(0)
	s.Players[1] = thrower
	s.Players[2] = testPlayer(2, false, 6, 3)
	s.Balls[0] = &game.BallState{Status: game.BallHeld, Position: intPtr(0)}

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		d := decideAction(s, thrower, rng)
		if d.action != game.ActionThrow {
			t.Fatalf("overwhelming throwing stat must always throw, got %s", d.action)
		}
		if d.targetID == nil || *d.targetID != 2 {
			t.Fatalf("expected the only opponent as target, got %v", d.targetID)
		}
	}
}

func TestDecideAction_PicksUpReachableBall(t *testing.T) {
	s := emptyTestState()
	p := testPlayer(1, true, 2, 3)
	s.Players[1] = p
	s.Balls[4] = &game.BallState{Status: game.BallFree, Position: intPtr(2)}

	d := decideAction(s, p, rand.New(rand.NewSource(1)))
	if d.action != game.ActionPickUp || d.ballID == nil || *d.ballID != 4 {
		t.Fatalf("expected pick_up of ball 4, got %+v", d)
	}
}

func TestDecideAction_PreparesWhenNothingToDo(t *testing.T) {
	s := emptyTestState()
	p := testPlayer(1, true, 0, 3)
	s.Players[1] = p

	d := decideAction(s, p, rand.New(rand.NewSource(1)))
	if d.action != game.ActionPrepare {
		t.Fatalf("expected prepare, got %s", d.action)
	}
}

func TestSelectTarget_Priorities(t *testing.T) {
	s := emptyTestState()
	thrower := testPlayer(1, true, 0, 3)
	s.Players[1] = thrower

	big := testPlayer(10, false, 11, 3)
	big.Player.Throwing = 9
	big.Player.Catching = 1
	big.Player.Dodging = 1
	near := testPlayer(11, false, 6, 3)
	near.Player.Throwing = 2
	near.Player.Catching = 8
	near.Player.Dodging = 2
	s.Players[10] = big
	s.Players[11] = near

	rng := rand.New(rand.NewSource(1))

	thrower.Player.TargetPriority = game.TargetHighestThreat
	if got := selectTarget(s, thrower, rng); got.Player.ID != 10 {
		t.Fatalf("highest_threat should pick the best thrower, got %d", got.Player.ID)
	}

	thrower.Player.TargetPriority = game.TargetNearest
	if got := selectTarget(s, thrower, rng); got.Player.ID != 11 {
		t.Fatalf("nearest should pick slot 6 over slot 11, got %d", got.Player.ID)
	}

	thrower.Player.TargetPriority = game.TargetWeakestDefence
	if got := selectTarget(s, thrower, rng); got.Player.ID != 10 {
		t.Fatalf("weakest_defence should pick max(catch,dodge)=1, got %d", got.Player.ID)
	}

	thrower.Player.TargetPriority = game.TargetRandom
	if got := selectTarget(s, thrower, rng); got == nil {
		t.Fatalf("random priority must still pick someone")
	}
}

func TestSelectTarget_NoOpponentsStanding(t *testing.T) {
	s := emptyTestState()
	thrower := testPlayer(1, true, 0, 3)
	s.Players[1] = thrower
	out := testPlayer(2, false, 6, 3)
	out.Eliminated = true
	out.Position = nil
	s.Players[2] = out

	if got := selectTarget(s, thrower, rand.New(rand.NewSource(1))); got != nil {
		t.Fatalf("no standing opponents means no target, got %d", got.Player.ID)
	}
}

func TestDecideReaction(t *testing.T) {
	holder := testPlayer(1, true, 0, 3)
	holder.BallID = intPtr(0)
	if r := decideReaction(holder, rand.New(rand.NewSource(1))); r != game.ReactionBlock {
		t.Fatalf("a holder always blocks, got %s", r)
	}

	catcher := testPlayer(2, true, 1, 3)
	catcher.Player.CatchAggression = 100
	if r := decideReaction(catcher, rand.New(rand.NewSource(1))); r != game.ReactionCatch {
		t.Fatalf("catch aggression 100 always catches, got %s", r)
	}

	dodger := testPlayer(3, true, 2, 3)
	dodger.Player.CatchAggression = 0
	if r := decideReaction(dodger, rand.New(rand.NewSource(1))); r != game.ReactionDodge {
		t.Fatalf("catch aggression 0 always dodges, got %s", r)
	}
}
