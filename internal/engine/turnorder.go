package engine

import (
	"math/rand"
	"sort"

	"github.com/AnthonyPengelly/dodgeball-manager-api-sub000/internal/game"
)

// Jitter added to each player's speed when ranking a round's turn order.
// The range is asymmetric on purpose: slower players get a real chance
// to act first without flattening speed into irrelevance.
const (
	turnOrderJitterMin = -1.5
	turnOrderJitterMax = 3.5
)

// computeTurnOrder ranks the given players by speed plus a fresh random
// jitter and returns their ids fastest first. It is re-rolled every
// round, so the order is not stable across rounds.
func computeTurnOrder(players []*game.PlayerState, rng *rand.Rand) []uint {
	type ranked struct {
		id        uint
		effective float64
	}
	rs := make([]ranked, 0, len(players))
	for _, p := range players {
		rs = append(rs, ranked{
			id:        p.Player.ID,
			effective: p.Player.Speed + uniform(rng, turnOrderJitterMin, turnOrderJitterMax),
		})
	}
	sort.SliceStable(rs, func(i, j int) bool { return rs[i].effective > rs[j].effective })
	order := make([]uint, len(rs))
	for i, r := range rs {
		order[i] = r.id
	}
	return order
}
