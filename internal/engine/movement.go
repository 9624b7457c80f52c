package engine

import "github.com/AnthonyPengelly/dodgeball-manager-api-sub000/internal/game"

// nearestFreeBall returns the id of the closest free ball on the
// player's own side of court. Ball ids are scanned in ascending order so
// distance ties resolve to the first found.
func nearestFreeBall(s *game.GameState, p *game.PlayerState) *int {
	if p.Position == nil {
		return nil
	}
	var best *int
	bestDist := 0
	for _, id := range sortedBallIDs(s) {
		b := s.Balls[id]
		if b.Status != game.BallFree || b.Position == nil || !onSameSide(*b.Position, *p.Position) {
			continue
		}
		d := slotDistance(*b.Position, *p.Position)
		if best == nil || d < bestDist {
			best = intPtr(id)
			bestDist = d
		}
	}
	return best
}

// planMovement computes the player's repositioning for this turn: up to
// MaxMoveDistance slots toward the nearest free ball on their own side,
// never overshooting it. A slot occupied by another standing player
// blocks the move; the full move is tried before the single step, and
// the player stays put when both are blocked. Ball holders never move.
// Returns nil for "no movement".
func planMovement(s *game.GameState, p *game.PlayerState, holdingBall bool) *int {
	if p.Eliminated || p.Position == nil || holdingBall {
		return nil
	}
	ballID := nearestFreeBall(s, p)
	if ballID == nil {
		return nil
	}
	ballPos := *s.Balls[*ballID].Position
	pos := *p.Position
	dist := slotDistance(ballPos, pos)
	if dist == 0 {
		return nil
	}

	dir := 1
	if ballPos < pos {
		dir = -1
	}
	step := game.MaxMoveDistance
	if dist < step {
		step = dist
	}
	for ; step > 0; step-- {
		dest := pos + step*dir
		if dest < 0 || dest >= game.CourtSlots || !onSameSide(dest, pos) {
			continue
		}
		if slotOccupied(s, dest, p.Player.ID) {
			continue
		}
		return intPtr(dest)
	}
	return nil
}
