package engine

import (
	"math/rand"

	"github.com/AnthonyPengelly/dodgeball-manager-api-sub000/internal/game"
)

// RunMatchSimulation plays a full fixture between two rosters: three
// games back to back, scores accumulated between them through each
// game's end-of-game match state update. The series is always played out
// in full, even when it is already decided after two games.
//
// The provided rng drives every decision and roll, so the same seed and
// rosters reproduce the same match exactly. The function has no other
// state: concurrent simulations with independent rngs are safe.
func RunMatchSimulation(home, away game.Team, rng *rand.Rand) *game.MatchSimulation {
	matchState := newMatchState()
	sim := &game.MatchSimulation{
		HomeTeam:   home,
		AwayTeam:   away,
		StartState: matchState,
	}

	live := matchState
	for n := 1; n <= game.GamesPerMatch; n++ {
		g := simulateGame(home, away, n, live, rng)
		sim.Games = append(sim.Games, g)
		live.Apply(g.EndMatchUpdate)
		sim.HomeScore = live.HomeScore
		sim.AwayScore = live.AwayScore
	}
	live.Apply(game.MatchStatePatch{Completed: boolPtr(true)})

	switch {
	case sim.HomeScore > sim.AwayScore:
		sim.Winner = teamWinner(home.ID)
	case sim.AwayScore > sim.HomeScore:
		sim.Winner = teamWinner(away.ID)
	}
	// a level score leaves Winner nil: a tied match
	return sim
}
