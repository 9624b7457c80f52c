package engine

import (
	"math/rand"
	"sort"

	"github.com/AnthonyPengelly/dodgeball-manager-api-sub000/internal/game"
)

// uniform returns a random float64 in [lo, hi).
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func intPtr(v int) *int                            { return &v }
func uintPtr(v uint) *uint                         { return &v }
func boolPtr(v bool) *bool                         { return &v }
func statusPtr(s game.BallStatus) *game.BallStatus { return &s }

// sortedPlayerIDs returns every player id in ascending order. Go map
// iteration order is randomized by the runtime, so any scan that feeds a
// decision goes through this to keep simulations reproducible per seed.
func sortedPlayerIDs(s *game.GameState) []uint {
	ids := make([]uint, 0, len(s.Players))
	for id := range s.Players {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// sortedBallIDs returns every ball id in ascending order.
func sortedBallIDs(s *game.GameState) []int {
	ids := make([]int, 0, len(s.Balls))
	for id := range s.Balls {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// activePlayers returns all non-eliminated players, sorted by id.
func activePlayers(s *game.GameState) []*game.PlayerState {
	out := make([]*game.PlayerState, 0, len(s.Players))
	for _, id := range sortedPlayerIDs(s) {
		if ps := s.Players[id]; !ps.Eliminated {
			out = append(out, ps)
		}
	}
	return out
}

// playersRemaining counts the non-eliminated players on one side.
func playersRemaining(s *game.GameState, home bool) int {
	n := 0
	for _, ps := range s.Players {
		if !ps.Eliminated && ps.Player.IsHome == home {
			n++
		}
	}
	return n
}

// playerAt returns the non-eliminated player standing on the given slot,
// or nil if the slot is empty.
func playerAt(s *game.GameState, slot int) *game.PlayerState {
	for _, id := range sortedPlayerIDs(s) {
		ps := s.Players[id]
		if !ps.Eliminated && ps.Position != nil && *ps.Position == slot {
			return ps
		}
	}
	return nil
}

// slotOccupied reports whether another standing player already occupies
// the slot.
func slotOccupied(s *game.GameState, slot int, exceptID uint) bool {
	for _, ps := range s.Players {
		if ps.Player.ID == exceptID {
			continue
		}
		if !ps.Eliminated && ps.Position != nil && *ps.Position == slot {
			return true
		}
	}
	return false
}
