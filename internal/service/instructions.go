package service

import "github.com/AnthonyPengelly/dodgeball-manager-api-sub000/internal/game"

// SaveInstructions validates and stores a club's per-fixture player
// orders. The fixture must still be scheduled, the club must be one of
// the two participants, and every instruction must reference one of the
// club's own players with aggression values in 0..100. An empty target
// priority defaults to random.
func SaveInstructions(repo InstructionRepo, fixtureID, clubID uint, instructions []game.PlayerInstruction) error {
	f, err := repo.GetFixtureByID(fixtureID)
	if err != nil {
		return err
	}
	if f == nil {
		return ErrFixtureNotFound
	}
	if f.Status == game.FixturePlayed {
		return ErrFixtureAlreadyPlayed
	}
	if f.HomeClubID != clubID && f.AwayClubID != clubID {
		return ErrClubNotInFixture
	}

	players, err := repo.GetPlayersByClub(clubID)
	if err != nil {
		return err
	}
	clubPlayers := make(map[uint]struct{}, len(players))
	for _, p := range players {
		clubPlayers[p.ID] = struct{}{}
	}

	for i := range instructions {
		in := &instructions[i]
		if _, ok := clubPlayers[in.PlayerID]; !ok {
			return ErrPlayerNotInClub
		}
		if in.ThrowAggression < 0 || in.ThrowAggression > 100 || in.CatchAggression < 0 || in.CatchAggression > 100 {
			return ErrInvalidAggression
		}
		switch in.TargetPriority {
		case game.TargetHighestThreat, game.TargetNearest, game.TargetWeakestDefence, game.TargetRandom:
		case "":
			in.TargetPriority = game.TargetRandom
		default:
			return ErrUnknownPriority
		}
	}

	for i := range instructions {
		instructions[i].FixtureID = fixtureID
		if err := repo.UpsertInstruction(&instructions[i]); err != nil {
			return err
		}
	}
	return nil
}
