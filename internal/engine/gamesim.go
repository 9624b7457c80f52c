package engine

import (
	"math/rand"
	"strconv"

	"github.com/AnthonyPengelly/dodgeball-manager-api-sub000/internal/game"
)

// isGameComplete reports whether one side has been wiped out.
func isGameComplete(s *game.GameState) bool {
	return playersRemaining(s, true) == 0 || playersRemaining(s, false) == 0
}

// simulateGame plays one game to its end: the opening ball race, then
// regular rounds until a side is eliminated or the round cap is hit. The
// cap guarantees termination; a capped game with survivors on both sides
// finishes with a nil winner, which the match simulator tolerates.
func simulateGame(home, away game.Team, gameNumber int, match game.MatchState, rng *rand.Rand) game.Game {
	state := newGameState(home, away, gameNumber)
	g := game.Game{GameNumber: gameNumber, StartState: state.Clone()}

	g.Rounds = append(g.Rounds, simulateInitialRound(state))
	for n := 2; !state.Completed && n <= game.MaxRoundsPerGame; n++ {
		g.Rounds = append(g.Rounds, simulateRound(state, n, rng))
	}

	g.HomePlayersRemaining = playersRemaining(state, true)
	g.AwayPlayersRemaining = playersRemaining(state, false)
	g.Winner, g.EndMatchUpdate = gameOutcome(g.HomePlayersRemaining, g.AwayPlayersRemaining, home, away, match, gameNumber)
	return g
}

// gameOutcome decides the game winner and builds the sparse match state
// update for the end of the game. A won game is worth one point; ties
// (mutual elimination in the same turn) and capped games score nothing.
func gameOutcome(homeRemaining, awayRemaining int, home, away game.Team, match game.MatchState, gameNumber int) (*string, game.MatchStatePatch) {
	update := game.MatchStatePatch{CurrentGame: intPtr(gameNumber + 1)}
	switch {
	case awayRemaining == 0 && homeRemaining > 0:
		update.HomeScore = intPtr(match.HomeScore + 1)
		return teamWinner(home.ID), update
	case homeRemaining == 0 && awayRemaining > 0:
		update.AwayScore = intPtr(match.AwayScore + 1)
		return teamWinner(away.ID), update
	case homeRemaining == 0 && awayRemaining == 0:
		tie := game.WinnerTie
		return &tie, update
	default:
		// round cap reached with both sides standing: undecided
		return nil, update
	}
}

func teamWinner(id uint) *string {
	s := strconv.FormatUint(uint64(id), 10)
	return &s
}
