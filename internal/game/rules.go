package game

// League-wide simulation rules. Every club fields the same number of
// players and every game racks the same number of balls, so most of the
// engine is written against these two constants rather than roster sizes.
const (
	// PlayersPerTeam is the exact number of players each side must field.
	PlayersPerTeam = 6

	// BallsPerGame matches the team size: one ball per home-side slot in
	// the opening rack.
	BallsPerGame = PlayersPerTeam

	// CourtSlots is the total number of court positions. Slots
	// 0..PlayersPerTeam-1 belong to the home side, the rest to the away
	// side.
	CourtSlots = 2 * PlayersPerTeam

	// GamesPerMatch is fixed: a match is always three games, played out
	// in full even when the series is already decided.
	GamesPerMatch = 3

	// MaxRoundsPerGame caps a single game so a stalemate between two
	// passive rosters still terminates.
	MaxRoundsPerGame = 60

	// MaxPickUpDistance is how far (in slots) a player can reach for a
	// loose ball without moving.
	MaxPickUpDistance = 1

	// MaxMoveDistance is the most slots a player can cover in one turn.
	MaxMoveDistance = 2
)
