package game

import "gorm.io/gorm"

// Persisted records. These are the CRUD side of the system: the match
// engine never reads them directly, it consumes the in-memory Team /
// MatchPlayer values produced by the roster adapter.

// Club is a managed team in the league.
type Club struct {
	gorm.Model
	Name    string   `json:"name" gorm:"size:48;uniqueIndex"`
	Players []Player `json:"players"`
}

// Player is a persisted squad member. Stats come from generation in
// tiered quality buckets (typically 1-5), but nothing downstream assumes
// a bound: the engine compares them relatively.
type Player struct {
	gorm.Model
	ClubID uint   `json:"-"`
	Name   string `json:"name" gorm:"size:64"`

	Throwing int `json:"throwing"`
	Catching int `json:"catching"`
	Dodging  int `json:"dodging"`
	Blocking int `json:"blocking"`
	Speed    int `json:"speed"`

	PositionalSense int `json:"positional_sense"`
	Teamwork        int `json:"teamwork"`
	ClutchFactor    int `json:"clutch_factor"`

	// Tier is the generation quality bucket the player was rolled from.
	Tier int `json:"tier"`
}

// PlayerInstruction stores a club's per-fixture orders for one player.
// Missing instructions are replaced with random ones at match time.
type PlayerInstruction struct {
	gorm.Model
	FixtureID       uint           `json:"fixture_id" gorm:"uniqueIndex:idx_fixture_player"`
	PlayerID        uint           `json:"player_id" gorm:"uniqueIndex:idx_fixture_player"`
	ThrowAggression int            `json:"throw_aggression"`
	CatchAggression int            `json:"catch_aggression"`
	TargetPriority  TargetPriority `json:"target_priority"`
}

func (PlayerInstruction) TableName() string { return "player_instructions" }

// FixtureStatus is a string alias for a fixture's lifecycle state.
type FixtureStatus string

const (
	FixtureScheduled FixtureStatus = "scheduled"
	FixturePlayed    FixtureStatus = "played"
)

// Fixture is a scheduled or played league match between two clubs. Once
// played it carries the final score, the RNG seed the match was run with
// and the full simulation tree, so the result can be re-rendered or
// re-verified at any time.
type Fixture struct {
	gorm.Model
	Ref        string        `json:"ref" gorm:"uniqueIndex;size:36"`
	HomeClubID uint          `json:"home_club_id"`
	AwayClubID uint          `json:"away_club_id"`
	Status     FixtureStatus `json:"status"`
	HomeScore  int           `json:"home_score"`
	AwayScore  int           `json:"away_score"`
	Seed       int64         `json:"seed"`
	// SimulationJSON stores the serialized MatchSimulation verbatim. It
	// is omitted from list responses (`json:"-"`) and served through the
	// dedicated fixture detail endpoint.
	SimulationJSON []byte `json:"-" gorm:"column:simulation_json;type:blob"`
}

// Standing is one row of the league table, updated whenever a fixture is
// played. Wins are worth 3 points, draws 1.
type Standing struct {
	gorm.Model
	ClubID uint `json:"club_id" gorm:"uniqueIndex"`
	Played int  `json:"played"`
	Wins   int  `json:"wins"`
	Draws  int  `json:"draws"`
	Losses int  `json:"losses"`
	Points int  `json:"points"`
}
