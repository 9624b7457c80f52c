package engine

import "github.com/AnthonyPengelly/dodgeball-manager-api-sub000/internal/game"

// State factories. Every game of a match starts from a fresh game state;
// only the match state carries over.

// newMatchState starts a match at game 1 with both scores explicitly
// zero.
func newMatchState() game.MatchState {
	return game.MatchState{CurrentGame: 1}
}

// newGameState lays out both rosters and the opening rack: home players
// on slots 0..N-1 in roster order, away players mirrored on N..2N-1, and
// one ball per home-side slot still racked on the centre line. The
// modulo on the slot index is defensive against oversized rosters; with
// exactly N players per side every player gets a unique slot.
func newGameState(home, away game.Team, gameNumber int) *game.GameState {
	s := &game.GameState{
		GameNumber: gameNumber,
		Players:    make(map[uint]*game.PlayerState, len(home.Players)+len(away.Players)),
		Balls:      make(map[int]*game.BallState, game.BallsPerGame),
	}
	for i, mp := range home.Players {
		s.Players[mp.ID] = &game.PlayerState{Player: mp, Position: intPtr(i % game.PlayersPerTeam)}
	}
	for i, mp := range away.Players {
		s.Players[mp.ID] = &game.PlayerState{Player: mp, Position: intPtr(game.PlayersPerTeam + i%game.PlayersPerTeam)}
	}
	for b := 0; b < game.BallsPerGame; b++ {
		s.Balls[b] = &game.BallState{Status: game.BallInitial, Position: intPtr(b)}
	}
	return s
}
