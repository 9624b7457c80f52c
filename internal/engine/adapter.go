package engine

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/AnthonyPengelly/dodgeball-manager-api-sub000/internal/game"
)

// ErrShortRoster is returned when a club cannot field the required
// number of players for a fixture. This is the engine's only validation
// boundary; beyond it the simulation trusts its inputs.
var ErrShortRoster = errors.New("club cannot field the required number of players")

// ConvertToMatchTeams builds the two in-memory rosters the simulation
// consumes from persisted player and instruction records. Players with
// saved instructions for this fixture are preferred; when fewer than a
// full complement carry instructions, selection falls back to the first
// players in input order and the missing instructions are rolled at
// random. Each side ends up with exactly game.PlayersPerTeam players or
// an error.
func ConvertToMatchTeams(
	homeID uint, homeName string, homePlayers []game.Player,
	awayID uint, awayName string, awayPlayers []game.Player,
	instructions []game.PlayerInstruction,
	rng *rand.Rand,
) (game.Team, game.Team, error) {
	byPlayer := make(map[uint]game.PlayerInstruction, len(instructions))
	for _, in := range instructions {
		byPlayer[in.PlayerID] = in
	}

	home, err := buildTeam(homeID, homeName, true, homePlayers, byPlayer, rng)
	if err != nil {
		return game.Team{}, game.Team{}, err
	}
	away, err := buildTeam(awayID, awayName, false, awayPlayers, byPlayer, rng)
	if err != nil {
		return game.Team{}, game.Team{}, err
	}
	return home, away, nil
}

func buildTeam(id uint, name string, isHome bool, players []game.Player, instr map[uint]game.PlayerInstruction, rng *rand.Rand) (game.Team, error) {
	var instructed []game.Player
	for _, p := range players {
		if _, ok := instr[p.ID]; ok {
			instructed = append(instructed, p)
		}
	}

	selected := instructed
	if len(selected) < game.PlayersPerTeam {
		// not enough instructed players; fall back to input order
		selected = players
	}
	if len(selected) < game.PlayersPerTeam {
		return game.Team{}, fmt.Errorf("%s: %w", name, ErrShortRoster)
	}
	selected = selected[:game.PlayersPerTeam]

	team := game.Team{ID: id, Name: name, IsHome: isHome, Players: make([]game.MatchPlayer, 0, game.PlayersPerTeam)}
	for _, p := range selected {
		team.Players = append(team.Players, toMatchPlayer(p, isHome, instr, rng))
	}
	return team, nil
}

func toMatchPlayer(p game.Player, isHome bool, instr map[uint]game.PlayerInstruction, rng *rand.Rand) game.MatchPlayer {
	in, ok := instr[p.ID]
	if !ok {
		in = game.PlayerInstruction{
			PlayerID:        p.ID,
			ThrowAggression: rng.Intn(100),
			CatchAggression: rng.Intn(100),
			TargetPriority:  game.TargetRandom,
		}
	}
	priority := in.TargetPriority
	switch priority {
	case game.TargetHighestThreat, game.TargetNearest, game.TargetWeakestDefence, game.TargetRandom:
	default:
		priority = game.TargetRandom
	}

	return game.MatchPlayer{
		ID:              p.ID,
		Name:            p.Name,
		IsHome:          isHome,
		Throwing:        float64(p.Throwing),
		Catching:        float64(p.Catching),
		Dodging:         float64(p.Dodging),
		Blocking:        float64(p.Blocking),
		Speed:           float64(p.Speed),
		PositionalSense: float64(p.PositionalSense),
		Teamwork:        float64(p.Teamwork),
		ClutchFactor:    float64(p.ClutchFactor),
		ThrowAggression: in.ThrowAggression,
		CatchAggression: in.CatchAggression,
		TargetPriority:  priority,
	}
}
