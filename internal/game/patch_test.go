package game

import (
	"encoding/json"
	"testing"
)

func testState() *GameState {
	pos0, pos6 := 0, 6
	ball0 := 0
	return &GameState{
		GameNumber: 1,
		Players: map[uint]*PlayerState{
			1: {Player: MatchPlayer{ID: 1, IsHome: true}, Position: &pos0, BallID: &ball0},
			7: {Player: MatchPlayer{ID: 7, IsHome: false}, Position: &pos6},
		},
		Balls: map[int]*BallState{
			0: {Status: BallHeld, Position: &pos0},
			1: {Status: BallInitial, Position: intp(1)},
		},
		Round: RoundState{TurnOrder: []uint{1, 7}},
	}
}

func intp(v int) *int { return &v }

func TestApply_EmptyPatchIsNoOp(t *testing.T) {
	s := testState()
	before := s.Clone()
	s.Apply(GameStatePatch{})
	if *s.Players[1].Position != *before.Players[1].Position || s.Players[1].Eliminated != before.Players[1].Eliminated {
		t.Fatalf("empty patch changed player state")
	}
	if s.Balls[0].Status != before.Balls[0].Status {
		t.Fatalf("empty patch changed ball state")
	}
	if len(s.Round.TurnOrder) != 2 {
		t.Fatalf("empty patch changed turn order")
	}
}

func TestApply_SparseMerge(t *testing.T) {
	s := testState()
	s.Apply(GameStatePatch{
		Players: map[uint]PlayerStatePatch{
			7: {Eliminated: boolp(true), Position: ClearInt()},
		},
	})
	if !s.Players[7].Eliminated {
		t.Fatalf("expected player 7 eliminated")
	}
	if s.Players[7].Position != nil {
		t.Fatalf("expected player 7 position cleared, got %v", *s.Players[7].Position)
	}
	// untouched entities keep their state
	if s.Players[1].Eliminated || s.Players[1].Position == nil || *s.Players[1].Position != 0 {
		t.Fatalf("player 1 changed by a patch that never mentioned it")
	}
	if s.Balls[1].Status != BallInitial {
		t.Fatalf("ball 1 changed by a patch that never mentioned it")
	}
}

func TestApply_UnsetVsNull(t *testing.T) {
	s := testState()
	// an unset OptInt leaves the field alone; a null clears it
	s.Apply(GameStatePatch{Players: map[uint]PlayerStatePatch{1: {Eliminated: boolp(false)}}})
	if s.Players[1].BallID == nil || *s.Players[1].BallID != 0 {
		t.Fatalf("unset ball_id should be untouched")
	}
	s.Apply(GameStatePatch{Players: map[uint]PlayerStatePatch{1: {BallID: ClearInt()}}})
	if s.Players[1].BallID != nil {
		t.Fatalf("null ball_id should clear possession")
	}
}

func TestApply_TurnOrderReplacesWholesale(t *testing.T) {
	s := testState()
	s.Apply(GameStatePatch{Round: &RoundState{TurnOrder: []uint{7}}})
	if len(s.Round.TurnOrder) != 1 || s.Round.TurnOrder[0] != 7 {
		t.Fatalf("expected turn order replaced, got %v", s.Round.TurnOrder)
	}
}

func TestApply_Idempotent(t *testing.T) {
	s := testState()
	p := GameStatePatch{
		Players: map[uint]PlayerStatePatch{1: {Position: SetInt(3), BallID: ClearInt()}},
		Balls:   map[int]BallStatePatch{0: {Status: statusp(BallFree), Position: SetInt(3)}},
	}
	s.Apply(p)
	s.Apply(p)
	if *s.Players[1].Position != 3 || s.Players[1].BallID != nil {
		t.Fatalf("double apply diverged on player state")
	}
	if s.Balls[0].Status != BallFree || *s.Balls[0].Position != 3 {
		t.Fatalf("double apply diverged on ball state")
	}
}

func TestMergePlayer_LastWriteWins(t *testing.T) {
	var p GameStatePatch
	p.MergePlayer(1, PlayerStatePatch{Position: SetInt(2)})
	p.MergePlayer(1, PlayerStatePatch{Position: SetInt(4), Eliminated: boolp(true)})
	got := p.Players[1]
	if !got.Position.Defined || got.Position.Value == nil || *got.Position.Value != 4 {
		t.Fatalf("expected last position write to win, got %+v", got.Position)
	}
	if got.Eliminated == nil || !*got.Eliminated {
		t.Fatalf("expected eliminated flag carried through merge")
	}
}

func TestMatchStateApply(t *testing.T) {
	s := MatchState{CurrentGame: 1}
	s.Apply(MatchStatePatch{CurrentGame: intp(2), HomeScore: intp(1)})
	if s.CurrentGame != 2 || s.HomeScore != 1 || s.AwayScore != 0 {
		t.Fatalf("unexpected match state after apply: %+v", s)
	}
	s.Apply(MatchStatePatch{Completed: boolp(true)})
	if !s.Completed || s.HomeScore != 1 {
		t.Fatalf("completed patch must not disturb scores: %+v", s)
	}
}

func TestOptInt_JSONRoundTrip(t *testing.T) {
	raw, err := json.Marshal(PlayerStatePatch{Position: SetInt(5), BallID: ClearInt()})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"position":5,"ball_id":null}`
	if string(raw) != want {
		t.Fatalf("got %s, want %s", raw, want)
	}

	// unset fields must be dropped entirely, not serialized as null
	raw, err = json.Marshal(PlayerStatePatch{Eliminated: boolp(true)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `{"eliminated":true}` {
		t.Fatalf("unset OptInt leaked into JSON: %s", raw)
	}

	var pp PlayerStatePatch
	if err := json.Unmarshal([]byte(`{"position":null,"ball_id":3}`), &pp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !pp.Position.Defined || pp.Position.Value != nil {
		t.Fatalf("expected explicit null position, got %+v", pp.Position)
	}
	if !pp.BallID.Defined || pp.BallID.Value == nil || *pp.BallID.Value != 3 {
		t.Fatalf("expected ball_id 3, got %+v", pp.BallID)
	}
	if pp.Eliminated != nil {
		t.Fatalf("absent eliminated should stay nil")
	}
}

func TestClone_Detached(t *testing.T) {
	s := testState()
	c := s.Clone()
	s.Apply(GameStatePatch{Players: map[uint]PlayerStatePatch{1: {Position: SetInt(9)}}})
	if *c.Players[1].Position != 0 {
		t.Fatalf("clone shares player pointers with the live state")
	}
	s.Balls[0].Status = BallFree
	if c.Balls[0].Status != BallHeld {
		t.Fatalf("clone shares ball pointers with the live state")
	}
}

func boolp(v bool) *bool               { return &v }
func statusp(s BallStatus) *BallStatus { return &s }
