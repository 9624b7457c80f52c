package game

// Core match-simulation types. These are plain in-memory structures: the
// engine knows nothing about persistence, sessions or HTTP. The whole
// simulation tree is JSON-serializable so a played fixture can store it
// verbatim and a client can replay it turn by turn.

// TargetPriority is a per-match instruction telling a player how to pick
// who to throw at.
type TargetPriority string

const (
	TargetHighestThreat  TargetPriority = "highest_threat"
	TargetNearest        TargetPriority = "nearest"
	TargetWeakestDefence TargetPriority = "weakest_defence"
	TargetRandom         TargetPriority = "random"
)

// ActionType is what a player chose to do on their turn.
type ActionType string

const (
	ActionThrow   ActionType = "throw"
	ActionPickUp  ActionType = "pick_up"
	ActionPrepare ActionType = "prepare"
)

// ReactionType is how a targeted player responds to an incoming throw.
type ReactionType string

const (
	ReactionCatch ReactionType = "catch"
	ReactionDodge ReactionType = "dodge"
	ReactionBlock ReactionType = "block"
)

// ActionResult is the resolved outcome of a throw.
type ActionResult string

const (
	ResultHit     ActionResult = "hit"
	ResultCaught  ActionResult = "caught"
	ResultMiss    ActionResult = "miss"
	ResultBlocked ActionResult = "blocked"
)

// BallStatus tracks where a ball is in its lifecycle. Balls start the
// game racked on the centre line ("initial"), become free once disturbed
// and are held while a player carries them.
type BallStatus string

const (
	BallInitial BallStatus = "initial"
	BallFree    BallStatus = "free"
	BallHeld    BallStatus = "held"
)

// MatchPlayer is a player's identity for the duration of one match:
// stats plus the behavioral instructions in force for this fixture. It
// never changes during simulation; all mutable fields live on
// PlayerState.
type MatchPlayer struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	IsHome bool   `json:"is_home"`

	Throwing float64 `json:"throwing"`
	Catching float64 `json:"catching"`
	Dodging  float64 `json:"dodging"`
	Blocking float64 `json:"blocking"`
	Speed    float64 `json:"speed"`

	PositionalSense float64 `json:"positional_sense"`
	Teamwork        float64 `json:"teamwork"`
	ClutchFactor    float64 `json:"clutch_factor"`

	ThrowAggression int            `json:"throw_aggression"`
	CatchAggression int            `json:"catch_aggression"`
	TargetPriority  TargetPriority `json:"target_priority"`
}

// Team is one side of a match: exactly PlayersPerTeam players, assembled
// and validated by the roster adapter before simulation starts.
type Team struct {
	ID      uint          `json:"id"`
	Name    string        `json:"name"`
	IsHome  bool          `json:"is_home"`
	Players []MatchPlayer `json:"players"`
}

// PlayerState is a player's mutable in-game state. Position is nil while
// the player is off court; BallID is nil while they are empty-handed.
type PlayerState struct {
	Player     MatchPlayer `json:"player"`
	Position   *int        `json:"position"`
	Eliminated bool        `json:"eliminated"`
	BallID     *int        `json:"ball_id"`
}

// BallState is a ball's mutable in-game state. A held ball's position
// always equals its holder's position.
type BallState struct {
	Status   BallStatus `json:"status"`
	Position *int       `json:"position"`
}

// RoundState carries the ids scheduled to act this round, fastest first.
type RoundState struct {
	TurnOrder []uint `json:"turn_order"`
}

// GameState is the full mutable state of one game within a match. It is
// rebuilt from the two teams at the start of every game: positions,
// possession and eliminations never carry over between games.
type GameState struct {
	GameNumber int                   `json:"game_number"`
	Players    map[uint]*PlayerState `json:"players"`
	Balls      map[int]*BallState    `json:"balls"`
	Round      RoundState            `json:"round"`
	Completed  bool                  `json:"completed"`
}

// Clone returns a deep copy detached from the live maps, used to snapshot
// the state a game started from.
func (s *GameState) Clone() GameState {
	out := GameState{
		GameNumber: s.GameNumber,
		Players:    make(map[uint]*PlayerState, len(s.Players)),
		Balls:      make(map[int]*BallState, len(s.Balls)),
		Completed:  s.Completed,
	}
	for id, ps := range s.Players {
		cp := *ps
		cp.Position = copyInt(ps.Position)
		cp.BallID = copyInt(ps.BallID)
		out.Players[id] = &cp
	}
	for id, bs := range s.Balls {
		cb := *bs
		cb.Position = copyInt(bs.Position)
		out.Balls[id] = &cb
	}
	if s.Round.TurnOrder != nil {
		out.Round.TurnOrder = append([]uint(nil), s.Round.TurnOrder...)
	}
	return out
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// MatchState persists across the games of a match and accumulates the
// running score. Scores are explicit zero-valued fields so a fresh match
// state is unambiguous.
type MatchState struct {
	CurrentGame int  `json:"current_game"`
	Completed   bool `json:"completed"`
	HomeScore   int  `json:"home_score"`
	AwayScore   int  `json:"away_score"`
}

// Turn is one player's action record: what they did, how it resolved and
// the sparse state patch describing exactly what changed. The patch is
// the canonical mutation mechanism; the round simulator applies it, the
// turn simulator never touches live state directly.
type Turn struct {
	PlayerID           uint           `json:"player_id"`
	Action             ActionType     `json:"action"`
	TargetID           *uint          `json:"target_id,omitempty"`
	Reaction           ReactionType   `json:"reaction,omitempty"`
	ActionResult       ActionResult   `json:"action_result,omitempty"`
	NewPosition        *int           `json:"new_position,omitempty"`
	EliminatedPlayerID *uint          `json:"eliminated_player_id,omitempty"`
	ReEnteredPlayerID  *uint          `json:"re_entered_player_id,omitempty"`
	BallID             *int           `json:"ball_id,omitempty"`
	StateUpdate        GameStatePatch `json:"state_update"`
}

// Round is an ordered list of turns plus the round state (turn order)
// that was in effect when the round started.
type Round struct {
	RoundNumber int        `json:"round_number"`
	State       RoundState `json:"state"`
	Turns       []Turn     `json:"turns"`
}

// WinnerTie marks a game both sides lost simultaneously.
const WinnerTie = "tie"

// Game is the record of one game within a match. Winner holds the
// winning team's id (as a decimal string), WinnerTie, or nil for a game
// that hit the round cap undecided. EndMatchUpdate is the sparse match
// state patch to apply once the game ends.
type Game struct {
	GameNumber           int             `json:"game_number"`
	Rounds               []Round         `json:"rounds"`
	HomePlayersRemaining int             `json:"home_players_remaining"`
	AwayPlayersRemaining int             `json:"away_players_remaining"`
	Winner               *string         `json:"winner"`
	StartState           GameState       `json:"start_state"`
	EndMatchUpdate       MatchStatePatch `json:"end_match_update"`
}

// MatchSimulation is the immutable output artifact of a full match: both
// rosters, the three game records, final scores and the winner (nil for
// a tied match). Replaying every turn patch over each game's StartState
// reproduces the match exactly.
type MatchSimulation struct {
	HomeTeam   Team      `json:"home_team"`
	AwayTeam   Team      `json:"away_team"`
	HomeScore  int       `json:"home_score"`
	AwayScore  int       `json:"away_score"`
	Winner     *string   `json:"winner"`
	Games      []Game    `json:"games"`
	StartState MatchState `json:"start_state"`
}
