package constants

// Centralized constants for env keys, routes and API messages.
const (
	// Environment variable keys
	EnvConfigPath = "DODGEBALL_CONFIG"
	EnvDBPath     = "DODGEBALL_DB"
)

// Routes used by the backend router
const (
	RouteAPIPrefix           = "/api"
	RouteHealth              = "/health"
	RouteClubs               = "/clubs"
	RouteClubPlayers         = "/clubs/:clubID/players"
	RouteStandings           = "/standings"
	RouteFixtures            = "/fixtures"
	RouteFixtureByRef        = "/fixtures/:fixtureRef"
	RouteFixturePlay         = "/fixtures/:fixtureRef/play"
	RouteFixtureInstructions = "/fixtures/:fixtureRef/instructions"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
	JSONKeyStatus  = "status"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest       = "Invalid request"
	ErrInvalidClubID        = "Invalid club ID"
	ErrInvalidFixtureRef    = "Invalid fixture reference"
	ErrClubNotFound         = "Club not found"
	ErrFixtureNotFound      = "Fixture not found"
	ErrFailedFetchClubs     = "Failed to fetch clubs"
	ErrFailedFetchPlayers   = "Failed to fetch players"
	ErrFailedFetchTable     = "Failed to fetch league table"
	ErrFailedFetchFixtures  = "Failed to fetch fixtures"
	ErrFailedCreateFixture  = "Failed to create fixture"
	ErrSameClubFixture      = "A club cannot play itself"
	ErrFixtureAlreadyPlayed = "Fixture has already been played"
	ErrFailedPlayFixture    = "Failed to play fixture"
	ErrShortRoster          = "Club cannot field a full team"
	ErrFailedSaveOrders     = "Failed to save instructions"
	ErrClubNotInFixture     = "Club is not part of this fixture"
	ErrInvalidAggression    = "Aggression values must be between 0 and 100"
	ErrUnknownPriority      = "Unknown target priority"
	ErrPlayerNotInClub      = "Player does not belong to this club"
)

// Logging field names
const (
	LogFieldFixtureID  = "fixture_id"
	LogFieldFixtureRef = "fixture_ref"
	LogFieldClubID     = "club_id"
	LogFieldSeed       = "seed"
	LogFieldAddr       = "addr"
)
