package service

import (
	"encoding/json"
	"math/rand"
	"strconv"

	"github.com/AnthonyPengelly/dodgeball-manager-api-sub000/internal/constants"
	"github.com/AnthonyPengelly/dodgeball-manager-api-sub000/internal/dedupe"
	"github.com/AnthonyPengelly/dodgeball-manager-api-sub000/internal/engine"
	"github.com/AnthonyPengelly/dodgeball-manager-api-sub000/internal/game"
	"github.com/AnthonyPengelly/dodgeball-manager-api-sub000/internal/logging"
)

// PlayFixture simulates a scheduled fixture and persists the outcome:
// final score, the seed the match ran with and the full replayable
// simulation tree. Concurrent requests for the same fixture share a
// single simulation run.
func PlayFixture(repo FixtureRepo, fixtureID uint, seed int64) (*game.Fixture, error) {
	v, err, _ := dedupe.FixtureGroup.Do(strconv.FormatUint(uint64(fixtureID), 10), func() (interface{}, error) {
		return playFixture(repo, fixtureID, seed)
	})
	if err != nil {
		return nil, err
	}
	return v.(*game.Fixture), nil
}

func playFixture(repo FixtureRepo, fixtureID uint, seed int64) (*game.Fixture, error) {
	f, err := repo.GetFixtureByID(fixtureID)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, ErrFixtureNotFound
	}
	if f.Status == game.FixturePlayed {
		return nil, ErrFixtureAlreadyPlayed
	}

	homeClub, err := repo.GetClubByID(f.HomeClubID)
	if err != nil {
		return nil, err
	}
	awayClub, err := repo.GetClubByID(f.AwayClubID)
	if err != nil {
		return nil, err
	}
	if homeClub == nil || awayClub == nil {
		return nil, ErrClubNotFound
	}
	homePlayers, err := repo.GetPlayersByClub(f.HomeClubID)
	if err != nil {
		return nil, err
	}
	awayPlayers, err := repo.GetPlayersByClub(f.AwayClubID)
	if err != nil {
		return nil, err
	}
	instructions, err := repo.GetInstructionsForFixture(f.ID)
	if err != nil {
		return nil, err
	}

	// One rng per invocation: the stored seed reproduces the match
	// exactly, and concurrent fixtures never share random state.
	rng := rand.New(rand.NewSource(seed))
	home, away, err := engine.ConvertToMatchTeams(
		homeClub.ID, homeClub.Name, homePlayers,
		awayClub.ID, awayClub.Name, awayPlayers,
		instructions, rng,
	)
	if err != nil {
		return nil, err
	}

	sim := engine.RunMatchSimulation(home, away, rng)
	raw, err := json.Marshal(sim)
	if err != nil {
		return nil, err
	}

	f.Status = game.FixturePlayed
	f.HomeScore = sim.HomeScore
	f.AwayScore = sim.AwayScore
	f.Seed = seed
	f.SimulationJSON = raw
	if err := repo.UpdateFixture(f); err != nil {
		return nil, err
	}
	if err := repo.UpdateTableOnFixturePlayed(f); err != nil {
		// the played fixture is already stored; the table can be rebuilt
		logging.Error("failed to update league table", err, logging.Fields{constants.LogFieldFixtureID: f.ID})
	}

	logging.Info("fixture played", logging.Fields{
		constants.LogFieldFixtureID:  f.ID,
		constants.LogFieldFixtureRef: f.Ref,
		constants.LogFieldSeed:       seed,
		"home_score":                 f.HomeScore,
		"away_score":                 f.AwayScore,
	})
	return f, nil
}
