package engine

import (
	"math/rand"

	"github.com/AnthonyPengelly/dodgeball-manager-api-sub000/internal/game"
)

// simulateRound runs one full round: a fresh turn order, then each
// scheduled player's turn in sequence. Every turn's patch is merged into
// the live state before the next actor moves, so later actors see
// earlier effects. The round stops dead as soon as one side has no
// players left; the remaining scheduled turns do not happen.
func simulateRound(s *game.GameState, roundNumber int, rng *rand.Rand) game.Round {
	order := computeTurnOrder(activePlayers(s), rng)
	roundState := game.RoundState{TurnOrder: order}
	s.Apply(game.GameStatePatch{Round: &roundState})

	round := game.Round{RoundNumber: roundNumber, State: roundState}
	for _, id := range order {
		ps, ok := s.Players[id]
		if !ok || ps.Eliminated {
			continue
		}
		turn := simulateTurn(s, ps, rng)
		round.Turns = append(round.Turns, turn)
		s.Apply(turn.StateUpdate)
		if isGameComplete(s) {
			s.Apply(game.GameStatePatch{Completed: boolPtr(true)})
			break
		}
	}
	return round
}

// simulateInitialRound plays the opening ball race of a game: for each
// racked ball, the two players standing opposite it sprint for
// possession and the faster one picks it up. The away player must be
// strictly faster; an exact tie goes to the home player. Each pick-up is
// applied before the next ball is contested.
func simulateInitialRound(s *game.GameState) game.Round {
	round := game.Round{RoundNumber: 1, State: s.Round}
	for _, ballID := range sortedBallIDs(s) {
		home := playerAt(s, ballID)
		away := playerAt(s, ballID+game.PlayersPerTeam)
		winner := home
		if winner == nil || (away != nil && away.Player.Speed > home.Player.Speed) {
			winner = away
		}
		if winner == nil {
			continue
		}

		turn := game.Turn{
			PlayerID: winner.Player.ID,
			Action:   game.ActionPickUp,
			BallID:   intPtr(ballID),
		}
		turn.StateUpdate.MergeBall(ballID, game.BallStatePatch{
			Status:   statusPtr(game.BallHeld),
			Position: game.SetInt(*winner.Position),
		})
		turn.StateUpdate.MergePlayer(winner.Player.ID, game.PlayerStatePatch{BallID: game.SetInt(ballID)})
		round.Turns = append(round.Turns, turn)
		s.Apply(turn.StateUpdate)
	}
	return round
}
