package engine

import (
	"math/rand"

	"github.com/AnthonyPengelly/dodgeball-manager-api-sub000/internal/game"
)

// resolveThrow rolls a contested throw against the chosen reaction. Both
// sides get a ±1 jitter on their governing stat and the thrower must win
// strictly to land a hit; otherwise the outcome maps straight from the
// reaction: a catch catches, a dodge means a miss, a block blocks.
func resolveThrow(thrower, target *game.PlayerState, reaction game.ReactionType, rng *rand.Rand) game.ActionResult {
	throwEffectiveness := thrower.Player.Throwing + uniform(rng, -1, 1)
	reactionEffectiveness := reactionStat(target, reaction) + uniform(rng, -1, 1)
	if throwEffectiveness > reactionEffectiveness {
		return game.ResultHit
	}
	switch reaction {
	case game.ReactionCatch:
		return game.ResultCaught
	case game.ReactionBlock:
		return game.ResultBlocked
	default:
		return game.ResultMiss
	}
}

// reactionStat returns the stat governing a reaction.
func reactionStat(p *game.PlayerState, r game.ReactionType) float64 {
	switch r {
	case game.ReactionCatch:
		return p.Player.Catching
	case game.ReactionBlock:
		return p.Player.Blocking
	default:
		return p.Player.Dodging
	}
}

// resolveThrowWide is an earlier resolution curve: a much wider ±3
// jitter and ties going to the defender's favor become hits less often.
// It is not called by the turn simulator; resolveThrow is the canonical
// path, and switching curves changes combat balance.
func resolveThrowWide(thrower, target *game.PlayerState, reaction game.ReactionType, rng *rand.Rand) game.ActionResult {
	throwEffectiveness := thrower.Player.Throwing + uniform(rng, -3, 3)
	reactionEffectiveness := reactionStat(target, reaction) + uniform(rng, -3, 3)
	if reactionEffectiveness >= throwEffectiveness {
		switch reaction {
		case game.ReactionCatch:
			return game.ResultCaught
		case game.ReactionBlock:
			return game.ResultBlocked
		default:
			return game.ResultMiss
		}
	}
	return game.ResultHit
}
