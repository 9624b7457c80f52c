package service

import (
	"errors"

	"github.com/AnthonyPengelly/dodgeball-manager-api-sub000/internal/game"
)

var (
	ErrFixtureNotFound      = errors.New("fixture not found")
	ErrClubNotFound         = errors.New("club not found")
	ErrFixtureAlreadyPlayed = errors.New("fixture has already been played")
	ErrClubNotInFixture     = errors.New("club is not part of this fixture")
	ErrInvalidAggression    = errors.New("aggression values must be between 0 and 100")
	ErrUnknownPriority      = errors.New("unknown target priority")
	ErrPlayerNotInClub      = errors.New("player does not belong to this club")
)

// FixtureRepo is the narrow repository surface needed to play a fixture.
type FixtureRepo interface {
	GetFixtureByID(id uint) (*game.Fixture, error)
	GetClubByID(id uint) (*game.Club, error)
	GetPlayersByClub(clubID uint) ([]game.Player, error)
	GetInstructionsForFixture(fixtureID uint) ([]game.PlayerInstruction, error)
	UpdateFixture(f *game.Fixture) error
	UpdateTableOnFixturePlayed(f *game.Fixture) error
}

// InstructionRepo is the narrow repository surface needed to store a
// club's per-fixture instructions.
type InstructionRepo interface {
	GetFixtureByID(id uint) (*game.Fixture, error)
	GetPlayersByClub(clubID uint) ([]game.Player, error)
	UpsertInstruction(in *game.PlayerInstruction) error
}
