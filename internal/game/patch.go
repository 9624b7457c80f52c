package game

import (
	"bytes"
	"encoding/json"
)

// State patches. Every mutation during a simulation is expressed as one
// of these sparse patch values and folded into live state through Apply;
// nothing else writes to GameState or MatchState mid-game. Merge rules:
// maps merge per key and recurse per entity, everything else (scalars,
// the turn-order list) replaces wholesale. An empty patch is a no-op and
// applying the same patch twice leaves the state unchanged.

// OptInt is a three-state optional integer for patch fields that can be
// cleared: unset (leave the field alone), null (set it to nil) or a
// value. The unset/null distinction matters — omitting a field is "no
// change", null is an overwrite.
type OptInt struct {
	Defined bool
	Value   *int
}

// SetInt builds an OptInt carrying a value.
func SetInt(v int) OptInt { return OptInt{Defined: true, Value: &v} }

// ClearInt builds an OptInt carrying an explicit null.
func ClearInt() OptInt { return OptInt{Defined: true} }

// IsZero lets omitzero drop unset fields from serialized patches.
func (o OptInt) IsZero() bool { return !o.Defined }

func (o OptInt) MarshalJSON() ([]byte, error) {
	if !o.Defined || o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}

func (o *OptInt) UnmarshalJSON(b []byte) error {
	o.Defined = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		o.Value = nil
		return nil
	}
	var v int
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// PlayerStatePatch is a sparse update to one player's state.
type PlayerStatePatch struct {
	Position   OptInt `json:"position,omitzero"`
	Eliminated *bool  `json:"eliminated,omitempty"`
	BallID     OptInt `json:"ball_id,omitzero"`
}

// BallStatePatch is a sparse update to one ball's state.
type BallStatePatch struct {
	Status   *BallStatus `json:"status,omitempty"`
	Position OptInt      `json:"position,omitzero"`
}

// GameStatePatch is a sparse update to a game state. Round replaces the
// whole round state when present: the turn-order list is never merged
// element-wise.
type GameStatePatch struct {
	Players   map[uint]PlayerStatePatch `json:"players,omitempty"`
	Balls     map[int]BallStatePatch    `json:"balls,omitempty"`
	Round     *RoundState               `json:"round,omitempty"`
	Completed *bool                     `json:"completed,omitempty"`
}

// MatchStatePatch is a sparse update to the match state. Score fields
// carry absolute values, not deltas.
type MatchStatePatch struct {
	CurrentGame *int  `json:"current_game,omitempty"`
	Completed   *bool `json:"completed,omitempty"`
	HomeScore   *int  `json:"home_score,omitempty"`
	AwayScore   *int  `json:"away_score,omitempty"`
}

// Apply folds the given patches into the state, in order.
func (s *GameState) Apply(patches ...GameStatePatch) {
	for _, p := range patches {
		for id, pp := range p.Players {
			ps, ok := s.Players[id]
			if !ok {
				ps = &PlayerState{}
				s.Players[id] = ps
			}
			if pp.Position.Defined {
				ps.Position = copyInt(pp.Position.Value)
			}
			if pp.Eliminated != nil {
				ps.Eliminated = *pp.Eliminated
			}
			if pp.BallID.Defined {
				ps.BallID = copyInt(pp.BallID.Value)
			}
		}
		for id, bp := range p.Balls {
			bs, ok := s.Balls[id]
			if !ok {
				bs = &BallState{}
				s.Balls[id] = bs
			}
			if bp.Status != nil {
				bs.Status = *bp.Status
			}
			if bp.Position.Defined {
				bs.Position = copyInt(bp.Position.Value)
			}
		}
		if p.Round != nil {
			s.Round = RoundState{TurnOrder: append([]uint(nil), p.Round.TurnOrder...)}
		}
		if p.Completed != nil {
			s.Completed = *p.Completed
		}
	}
}

// Apply folds the given patches into the match state, in order.
func (s *MatchState) Apply(patches ...MatchStatePatch) {
	for _, p := range patches {
		if p.CurrentGame != nil {
			s.CurrentGame = *p.CurrentGame
		}
		if p.Completed != nil {
			s.Completed = *p.Completed
		}
		if p.HomeScore != nil {
			s.HomeScore = *p.HomeScore
		}
		if p.AwayScore != nil {
			s.AwayScore = *p.AwayScore
		}
	}
}

// MergePlayer folds a player patch into p with the same last-write-wins
// semantics as Apply, so a turn can accumulate several effects on the
// same player into one patch.
func (p *GameStatePatch) MergePlayer(id uint, pp PlayerStatePatch) {
	if p.Players == nil {
		p.Players = make(map[uint]PlayerStatePatch)
	}
	cur := p.Players[id]
	if pp.Position.Defined {
		cur.Position = pp.Position
	}
	if pp.Eliminated != nil {
		cur.Eliminated = pp.Eliminated
	}
	if pp.BallID.Defined {
		cur.BallID = pp.BallID
	}
	p.Players[id] = cur
}

// MergeBall folds a ball patch into p.
func (p *GameStatePatch) MergeBall(id int, bp BallStatePatch) {
	if p.Balls == nil {
		p.Balls = make(map[int]BallStatePatch)
	}
	cur := p.Balls[id]
	if bp.Status != nil {
		cur.Status = bp.Status
	}
	if bp.Position.Defined {
		cur.Position = bp.Position
	}
	p.Balls[id] = cur
}

// Merge folds another game state patch into p.
func (p *GameStatePatch) Merge(other GameStatePatch) {
	for id, pp := range other.Players {
		p.MergePlayer(id, pp)
	}
	for id, bp := range other.Balls {
		p.MergeBall(id, bp)
	}
	if other.Round != nil {
		p.Round = other.Round
	}
	if other.Completed != nil {
		p.Completed = other.Completed
	}
}
