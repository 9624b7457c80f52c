package engine

import (
	"math/rand"

	"github.com/AnthonyPengelly/dodgeball-manager-api-sub000/internal/game"
)

// throwChanceDivisor softens the throw probability: a thrower with stat
// t throws with probability t/105 rather than t/100, so even elite
// throwers occasionally hold the ball for a turn.
const throwChanceDivisor = 105.0

// decision is what a player chose to do this turn, before resolution.
type decision struct {
	action   game.ActionType
	targetID *uint
	ballID   *int
}

// decideAction picks the acting player's move. Holders either throw or
// ready up; empty-handed players grab a reachable ball or ready up.
func decideAction(s *game.GameState, p *game.PlayerState, rng *rand.Rand) decision {
	if p.BallID != nil {
		if rng.Float64() < p.Player.Throwing/throwChanceDivisor {
			d := decision{action: game.ActionThrow, ballID: p.BallID}
			if t := selectTarget(s, p, rng); t != nil {
				d.targetID = uintPtr(t.Player.ID)
			}
			return d
		}
		return decision{action: game.ActionPrepare}
	}
	if ballID := reachableBall(s, p); ballID != nil {
		return decision{action: game.ActionPickUp, ballID: ballID}
	}
	return decision{action: game.ActionPrepare}
}

// reachableBall returns the first ball the player can pick up without
// moving: a free ball within MaxPickUpDistance on their own side, or a
// ball still racked on the centre line, which counts as reachable from
// either side.
func reachableBall(s *game.GameState, p *game.PlayerState) *int {
	if p.Position == nil {
		return nil
	}
	for _, id := range sortedBallIDs(s) {
		b := s.Balls[id]
		if b.Position == nil {
			continue
		}
		switch b.Status {
		case game.BallFree:
			if onSameSide(*b.Position, *p.Position) && slotDistance(*b.Position, *p.Position) <= game.MaxPickUpDistance {
				return intPtr(id)
			}
		case game.BallInitial:
			if slotDistance(*b.Position, *p.Position) <= game.MaxPickUpDistance {
				return intPtr(id)
			}
		}
	}
	return nil
}

// selectTarget picks who to throw at according to the thrower's
// target-priority instruction. Returns nil when no opposing player is
// standing; ties resolve to the first candidate in id order.
func selectTarget(s *game.GameState, thrower *game.PlayerState, rng *rand.Rand) *game.PlayerState {
	var candidates []*game.PlayerState
	for _, id := range sortedPlayerIDs(s) {
		ps := s.Players[id]
		if ps.Eliminated || ps.Position == nil || ps.Player.IsHome == thrower.Player.IsHome {
			continue
		}
		candidates = append(candidates, ps)
	}
	if len(candidates) == 0 {
		return nil
	}

	switch thrower.Player.TargetPriority {
	case game.TargetHighestThreat:
		best := candidates[0]
		for _, c := range candidates[1:] {
			if c.Player.Throwing > best.Player.Throwing {
				best = c
			}
		}
		return best
	case game.TargetNearest:
		if thrower.Position == nil {
			break
		}
		best := candidates[0]
		for _, c := range candidates[1:] {
			if slotDistance(*c.Position, *thrower.Position) < slotDistance(*best.Position, *thrower.Position) {
				best = c
			}
		}
		return best
	case game.TargetWeakestDefence:
		best := candidates[0]
		for _, c := range candidates[1:] {
			if defenceRating(c) < defenceRating(best) {
				best = c
			}
		}
		return best
	}
	return candidates[rng.Intn(len(candidates))]
}

// defenceRating is a player's best answer to an incoming throw: the
// better of catching and dodging.
func defenceRating(p *game.PlayerState) float64 {
	if p.Player.Catching > p.Player.Dodging {
		return p.Player.Catching
	}
	return p.Player.Dodging
}

// decideReaction chooses how a targeted player responds. A player
// already holding a ball always uses it as a shield; otherwise they
// attempt a catch as often as their catch-aggression instruction says,
// and dodge the rest of the time.
func decideReaction(target *game.PlayerState, rng *rand.Rand) game.ReactionType {
	if target.BallID != nil {
		return game.ReactionBlock
	}
	if rng.Float64() < float64(target.Player.CatchAggression)/100.0 {
		return game.ReactionCatch
	}
	return game.ReactionDodge
}
