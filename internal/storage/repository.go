package storage

import (
	"github.com/AnthonyPengelly/dodgeball-manager-api-sub000/internal/game"
)

type Repository interface {
	ListClubs() ([]game.Club, error)
	GetClubByID(id uint) (*game.Club, error)
	GetPlayersByClub(clubID uint) ([]game.Player, error)

	CreateFixture(f *game.Fixture) error
	GetFixtureByID(id uint) (*game.Fixture, error)
	// FindFixtureByRef resolves a fixture from its public reference code.
	FindFixtureByRef(ref string) (*game.Fixture, error)
	ListFixtures() ([]game.Fixture, error)
	UpdateFixture(f *game.Fixture) error

	GetInstructionsForFixture(fixtureID uint) ([]game.PlayerInstruction, error)
	UpsertInstruction(in *game.PlayerInstruction) error

	// UpdateTableOnFixturePlayed applies a played fixture's result to the
	// league table rows of both clubs.
	UpdateTableOnFixturePlayed(f *game.Fixture) error
	GetStandings() ([]game.Standing, error)
}
